package remem

import (
	"unsafe"

	"github.com/pkg/errors"
)

// Multi-segment borrows split one pool allocation into several disjoint,
// individually aligned typed regions, each exposed as an ordinary View. The
// arity-specific functions below exist only because Go generics cannot
// express a variadic type-parameter list; all of them delegate to the same
// data-driven layout computation.

// borrowSegments validates the segments, lays them out, grows the pool if
// needed and marks it borrowed with one outstanding claim per segment. On
// success segs carries the assigned offsets.
func (p *Pool) borrowSegments(segs []segment) error {
	for i := range segs {
		if segs[i].layout.Size == 0 {
			return errors.Wrapf(ErrZeroSizedType, "segment %d", i)
		}
		if segs[i].count < 1 {
			return errors.Wrapf(ErrNonPositiveCount, "segment %d count %d", i, segs[i].count)
		}
	}
	if p.outstanding > 0 {
		return errors.Wrapf(ErrAlreadyBorrowed, "%d views outstanding", p.outstanding)
	}
	total, maxAlign, err := layoutSegments(segs)
	if err != nil {
		return err
	}
	if err := p.ensure(total, maxAlign); err != nil {
		return err
	}
	p.outstanding = len(segs)
	p.borrows++
	return nil
}

// segmentView pins a view of T to its segment's byte range.
func segmentView[T any](p *Pool, s segment) *View[T] {
	return &View[T]{ptr: unsafe.Add(p.base, s.offset), capacity: s.count, pool: p}
}

// Borrow2As borrows the pool as two disjoint typed segments. The pool
// becomes borrowable again only after both views have released.
func Borrow2As[T1, T2 any](p *Pool, count1, count2 int) (*View[T1], *View[T2], error) {
	segs := []segment{
		{layout: LayoutFor[T1](), count: count1},
		{layout: LayoutFor[T2](), count: count2},
	}
	if err := p.borrowSegments(segs); err != nil {
		return nil, nil, err
	}
	return segmentView[T1](p, segs[0]), segmentView[T2](p, segs[1]), nil
}

// Borrow3As borrows the pool as three disjoint typed segments.
func Borrow3As[T1, T2, T3 any](p *Pool, count1, count2, count3 int) (*View[T1], *View[T2], *View[T3], error) {
	segs := []segment{
		{layout: LayoutFor[T1](), count: count1},
		{layout: LayoutFor[T2](), count: count2},
		{layout: LayoutFor[T3](), count: count3},
	}
	if err := p.borrowSegments(segs); err != nil {
		return nil, nil, nil, err
	}
	return segmentView[T1](p, segs[0]), segmentView[T2](p, segs[1]), segmentView[T3](p, segs[2]), nil
}

// Borrow4As borrows the pool as four disjoint typed segments.
func Borrow4As[T1, T2, T3, T4 any](p *Pool, count1, count2, count3, count4 int) (*View[T1], *View[T2], *View[T3], *View[T4], error) {
	segs := []segment{
		{layout: LayoutFor[T1](), count: count1},
		{layout: LayoutFor[T2](), count: count2},
		{layout: LayoutFor[T3](), count: count3},
		{layout: LayoutFor[T4](), count: count4},
	}
	if err := p.borrowSegments(segs); err != nil {
		return nil, nil, nil, nil, err
	}
	return segmentView[T1](p, segs[0]), segmentView[T2](p, segs[1]), segmentView[T3](p, segs[2]), segmentView[T4](p, segs[3]), nil
}

// Borrow5As borrows the pool as five disjoint typed segments.
func Borrow5As[T1, T2, T3, T4, T5 any](p *Pool, count1, count2, count3, count4, count5 int) (*View[T1], *View[T2], *View[T3], *View[T4], *View[T5], error) {
	segs := []segment{
		{layout: LayoutFor[T1](), count: count1},
		{layout: LayoutFor[T2](), count: count2},
		{layout: LayoutFor[T3](), count: count3},
		{layout: LayoutFor[T4](), count: count4},
		{layout: LayoutFor[T5](), count: count5},
	}
	if err := p.borrowSegments(segs); err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return segmentView[T1](p, segs[0]), segmentView[T2](p, segs[1]), segmentView[T3](p, segs[2]), segmentView[T4](p, segs[3]), segmentView[T5](p, segs[4]), nil
}
