package remem

import (
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
)

// View is a temporary, exclusively-held window over a pool's allocation,
// behaving as a fixed-capacity array of T. Capacity is fixed for the view's
// lifetime; no operation on a view ever reallocates.
//
// A view must be released when done (typically with defer). Release clears
// any remaining elements and returns the pool to a borrowable state.
type View[T any] struct {
	ptr      unsafe.Pointer
	length   int
	capacity int
	pool     *Pool

	pending  *Drain[T] // unclosed drain, finished before the next mutation
	released bool
}

// elem returns a pointer to slot i of the backing memory. i may be past the
// current length but must be below capacity.
func (v *View[T]) elem(i int) *T {
	var zero T
	return (*T)(unsafe.Add(v.ptr, uintptr(i)*unsafe.Sizeof(zero)))
}

func (v *View[T]) panicIfReleased() {
	if v.released {
		panic("remem: use of released view")
	}
}

// finishPending completes an abandoned drain so the view is consistent
// before the next operation touches it.
func (v *View[T]) finishPending() {
	if v.pending != nil {
		v.pending.Close()
	}
}

// Len returns the number of live elements.
func (v *View[T]) Len() int { return v.length }

// Cap returns the fixed capacity requested at borrow time.
func (v *View[T]) Cap() int { return v.capacity }

// Slice returns the live elements [0, Len) backed by the pool's memory.
// The slice is valid only until the view is next mutated or released, and
// must not be retained past that.
func (v *View[T]) Slice() []T {
	v.panicIfReleased()
	return unsafe.Slice((*T)(v.ptr), v.length)
}

// Push appends value. It fails with ErrCapacityExceeded when the view is
// full, leaving the view unchanged.
func (v *View[T]) Push(value T) error {
	v.panicIfReleased()
	v.finishPending()
	if v.length == v.capacity {
		return errors.Wrapf(ErrCapacityExceeded, "capacity %d", v.capacity)
	}
	*v.elem(v.length) = value
	v.length++
	return nil
}

// PushSlice appends all of values, or fails with ErrCapacityExceeded and
// appends nothing if they do not all fit.
func (v *View[T]) PushSlice(values []T) error {
	v.panicIfReleased()
	v.finishPending()
	if len(values) > v.capacity-v.length {
		return errors.Wrapf(ErrCapacityExceeded, "%d elements into %d free slots", len(values), v.capacity-v.length)
	}
	copy(unsafe.Slice((*T)(v.ptr), v.capacity)[v.length:], values)
	v.length += len(values)
	return nil
}

// Pop removes and returns the last element. The second return is false when
// the view is empty.
func (v *View[T]) Pop() (T, bool) {
	v.panicIfReleased()
	v.finishPending()
	var zero T
	if v.length == 0 {
		return zero, false
	}
	v.length--
	value := *v.elem(v.length)
	*v.elem(v.length) = zero
	return value, true
}

// Clear removes all elements, clearing their slots, and sets the length
// to 0. The capacity is unchanged.
func (v *View[T]) Clear() {
	v.panicIfReleased()
	v.finishPending()
	clear(unsafe.Slice((*T)(v.ptr), v.length))
	v.length = 0
}

// Drain removes the elements in [start, end) and returns them as a
// one-shot iterator in original order. Elements at index >= end shift left
// to close the gap and the length drops by end-start.
//
// The view's visible length is truncated to start for as long as the drain
// is open; the shift happens when the drain is closed. Closing is safe to
// omit: an abandoned drain is finished by the view's next mutating
// operation, or at the latest by Release, and its unconsumed elements are
// cleared rather than leaked.
func (v *View[T]) Drain(start, end int) (*Drain[T], error) {
	v.panicIfReleased()
	v.finishPending()
	if start > end || end > v.length || start < 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "[%d, %d) of length %d", start, end, v.length)
	}
	d := &Drain[T]{view: v, next: start, end: end, tailLen: v.length - end}
	// Truncate up front so an abandoned drain can never expose the
	// removed elements as live.
	v.length = start
	v.pending = d
	return d, nil
}

// DrainAll drains the entire view, leaving it empty.
func (v *View[T]) DrainAll() *Drain[T] {
	d, _ := v.Drain(0, v.length)
	return d
}

// Release ends the view's lifetime: any open drain is finished, remaining
// elements are cleared, and the view's claim on the pool is returned. The
// pool is borrowable again once all views from the same borrow have
// released. Release is idempotent; any other use of a released view panics.
func (v *View[T]) Release() {
	if v.released {
		return
	}
	v.finishPending()
	clear(unsafe.Slice((*T)(v.ptr), v.length))
	v.length = 0
	v.released = true
	v.pool.release()
}

// String formats the view as "[len/cap] elements" for diagnostics.
func (v *View[T]) String() string {
	if v.released {
		return "[released]"
	}
	return fmt.Sprintf("[%d/%d] %v", v.length, v.capacity, v.Slice())
}
