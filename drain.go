package remem

import "unsafe"

// Drain yields the elements removed from a view by Drain or DrainAll, in
// their original order. It is finite and non-restartable. Close completes
// the removal: any unconsumed elements are cleared and the view's tail is
// shifted down over the vacated range.
type Drain[T any] struct {
	view    *View[T]
	next    int // index of the next unconsumed drained element
	end     int // one past the last drained element
	tailLen int // elements after the drained range at creation time
	done    bool
}

// Next returns the next drained element. The second return is false once
// the drain is exhausted or closed.
func (d *Drain[T]) Next() (T, bool) {
	var zero T
	if d.done || d.next == d.end {
		return zero, false
	}
	value := *d.view.elem(d.next)
	d.next++
	return value, true
}

// Remaining returns the number of drained elements not yet consumed.
func (d *Drain[T]) Remaining() int {
	if d.done {
		return 0
	}
	return d.end - d.next
}

// Collect consumes the rest of the drain into a freshly allocated slice and
// closes it.
func (d *Drain[T]) Collect() []T {
	out := make([]T, 0, d.Remaining())
	for value, ok := d.Next(); ok; value, ok = d.Next() {
		out = append(out, value)
	}
	d.Close()
	return out
}

// Close completes the drain. The tail elements move down to sit directly
// after index start, the view's length becomes start+tailLen, and every
// vacated slot past the new length is cleared, consumed or not. Closing an
// already-closed drain is a no-op.
func (d *Drain[T]) Close() {
	if d.done {
		return
	}
	d.done = true
	v := d.view
	start := v.length // Drain truncated the view here
	oldLen := d.end + d.tailLen
	if d.tailLen > 0 && start != d.end {
		src := unsafe.Slice(v.elem(d.end), d.tailLen)
		dst := unsafe.Slice(v.elem(start), d.tailLen)
		copy(dst, src)
	}
	v.length = start + d.tailLen
	if v.length < oldLen {
		clear(unsafe.Slice(v.elem(v.length), oldLen-v.length))
	}
	v.pending = nil
}
