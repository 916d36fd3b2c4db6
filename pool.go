package remem

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// Pool owns a single untyped allocation that can be repeatedly borrowed as a
// bounded array of a caller-chosen type. The element type used to construct
// the pool only bootstraps the capacity and alignment bookkeeping; it does
// not constrain later borrows.
//
// A pool holds at most one outstanding borrow (single- or multi-segment) at
// a time. It is not safe for concurrent use; callers that share a pool
// across goroutines must serialize access externally.
type Pool struct {
	buf      []byte         // backing allocation, including alignment slack
	base     unsafe.Pointer // aligned start of the usable region
	capBytes int            // usable bytes from base
	align    uintptr        // alignment guarantee of base

	outstanding int // views from the current borrow not yet released

	borrows   uint64
	grows     uint64
	highWater int
}

// New creates an empty pool. B seeds the alignment bookkeeping and must not
// be zero-sized; no memory is allocated until the first borrow.
func New[B any]() (*Pool, error) {
	return WithCapacity[B](0)
}

// WithCapacity creates a pool pre-sized to hold count values of B, so that a
// first borrow within that footprint reuses the initial allocation instead
// of growing.
func WithCapacity[B any](count int) (*Pool, error) {
	lay := LayoutFor[B]()
	if lay.Size == 0 {
		var zero B
		return nil, errors.Wrapf(ErrZeroSizedType, "base type %T", zero)
	}
	if count < 0 {
		return nil, errors.Wrapf(ErrNonPositiveCount, "initial capacity %d", count)
	}
	p := &Pool{align: lay.Align}
	if count > 0 {
		bytes, err := lay.bytesFor(count)
		if err != nil {
			return nil, err
		}
		if err := p.grow(bytes, lay.Align); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// BorrowAs borrows the pool's memory as a fixed-capacity array of count
// elements of T. The existing allocation is reused when it already satisfies
// both the byte length and the alignment T requires; otherwise the pool
// reallocates to exactly the requested footprint, discarding the old bytes.
// The returned view starts empty and holds the pool exclusively until it is
// released.
func BorrowAs[T any](p *Pool, count int) (*View[T], error) {
	lay := LayoutFor[T]()
	if lay.Size == 0 {
		var zero T
		return nil, errors.Wrapf(ErrZeroSizedType, "borrow type %T", zero)
	}
	if count < 1 {
		return nil, errors.Wrapf(ErrNonPositiveCount, "count %d", count)
	}
	if p.outstanding > 0 {
		return nil, errors.Wrapf(ErrAlreadyBorrowed, "%d views outstanding", p.outstanding)
	}
	bytes, err := lay.bytesFor(count)
	if err != nil {
		return nil, err
	}
	if err := p.ensure(bytes, lay.Align); err != nil {
		return nil, err
	}
	p.outstanding = 1
	p.borrows++
	return &View[T]{ptr: p.base, capacity: count, pool: p}, nil
}

// ensure makes the allocation satisfy the requested byte length and
// alignment, reusing it as-is when it already does. Reuse never inspects
// the byte contents: between borrows they are garbage by contract.
func (p *Pool) ensure(bytes int, align uintptr) error {
	if bytes > p.highWater {
		p.highWater = bytes
	}
	if p.capBytes >= bytes && p.align >= align {
		return nil
	}
	return p.grow(bytes, align)
}

// grow replaces the allocation with a fresh block of exactly bytes usable
// bytes at the requested alignment. Old contents are never copied.
func (p *Pool) grow(bytes int, align uintptr) error {
	slack := int(align - 1)
	if bytes > math.MaxInt-slack {
		return errors.Wrapf(ErrSizeOverflow, "%d bytes at alignment %d", bytes, align)
	}
	buf := make([]byte, bytes+slack)
	base := unsafe.Pointer(unsafe.SliceData(buf))
	if off := uintptr(base) & (align - 1); off != 0 {
		base = unsafe.Add(base, align-off)
	}
	p.buf = buf
	p.base = base
	p.capBytes = len(buf) - int(uintptr(base)-uintptr(unsafe.Pointer(unsafe.SliceData(buf))))
	p.align = align
	p.grows++
	return nil
}

// release returns one view's claim on the pool. The pool becomes borrowable
// again once every view from the current borrow has released.
func (p *Pool) release() {
	p.outstanding--
}
