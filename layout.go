package remem

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// Layout describes the size and alignment of an element type, as needed to
// place values of that type inside an untyped allocation.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// LayoutFor returns the layout of T.
func LayoutFor[T any]() Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// bytesFor returns count * l.Size, or ErrSizeOverflow if the product does not
// fit in an int.
func (l Layout) bytesFor(count int) (int, error) {
	if count > math.MaxInt/int(l.Size) {
		return 0, errors.Wrapf(ErrSizeOverflow, "%d elements of %d bytes", count, l.Size)
	}
	return count * int(l.Size), nil
}

// BytesFor returns the number of bytes a borrow of count elements of T will
// require, not counting alignment slack. It fails for zero-sized types,
// non-positive counts and int overflow, exactly as BorrowAs would.
func BytesFor[T any](count int) (int, error) {
	lay := LayoutFor[T]()
	if lay.Size == 0 {
		var zero T
		return 0, errors.Wrapf(ErrZeroSizedType, "type %T", zero)
	}
	if count < 1 {
		return 0, errors.Wrapf(ErrNonPositiveCount, "count %d", count)
	}
	return lay.bytesFor(count)
}

// alignUp rounds n up to the next multiple of align. align must be a power
// of two.
func alignUp(n, align uintptr) uintptr {
	mask := align - 1
	return (n + mask) &^ mask
}

// segment is one typed region within a multi-segment borrow. offset is
// assigned by layoutSegments.
type segment struct {
	layout Layout
	count  int
	offset uintptr
}

// layoutSegments packs the segments in declaration order: each offset is
// rounded up to its type's alignment and the segment spans count*size bytes.
// It returns the total byte length and the maximum alignment across segments.
// Zero-size and count validation is expected to have happened already.
func layoutSegments(segs []segment) (total int, maxAlign uintptr, err error) {
	var end uintptr
	maxAlign = 1
	for i := range segs {
		s := &segs[i]
		span, err := s.layout.bytesFor(s.count)
		if err != nil {
			return 0, 0, err
		}
		off := alignUp(end, s.layout.Align)
		if off < end || uintptr(span) > math.MaxInt-off {
			return 0, 0, errors.Wrapf(ErrSizeOverflow, "segment %d at offset %d", i, end)
		}
		s.offset = off
		end = off + uintptr(span)
		if s.layout.Align > maxAlign {
			maxAlign = s.layout.Align
		}
	}
	return int(end), maxAlign, nil
}
