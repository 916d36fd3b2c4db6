// Package remem implements a typed-memory-reuse pool: one untyped allocation
// that can be repeatedly borrowed as a bounded, growable-length array of a
// caller-chosen type, used, and returned, so the same bytes are recycled for
// a different type on the next borrow.
//
// # Overview
//
// Code that cycles through many short-lived typed scratch buffers pays for an
// allocation on every cycle even when the buffers never overlap in time. A
// Pool amortizes that cost: it keeps a single raw allocation and hands out
// exclusive, fixed-capacity typed views into it on demand. The element type
// may change freely between borrows; the pool only grows when a borrow needs
// more bytes or stricter alignment than the current allocation provides.
//
// # Basic Usage
//
//	pool, err := remem.New[byte]()
//	if err != nil {
//		// only fails for zero-sized base types
//	}
//
//	view, err := remem.BorrowAs[uint64](pool, 3)
//	if err != nil {
//		// pool already borrowed, or the layout is invalid
//	}
//	defer view.Release()
//
//	view.Push(1)
//	view.Push(2)
//	fmt.Println(view.Slice()) // [1 2]
//
// Releasing the view clears its remaining elements and makes the pool
// borrowable again, as a different type if desired:
//
//	view.Release()
//	bytes, _ := remem.BorrowAs[byte](pool, 10) // reuses the same allocation
//	defer bytes.Release()
//
// # Multi-Segment Borrows
//
// Borrow2As through Borrow5As split one allocation into several disjoint,
// individually aligned typed segments, each an independent View. The pool is
// released only once every segment's view has been released:
//
//	counts, flags, err := remem.Borrow2As[uint64, byte](pool, 8, 64)
//	if err != nil { ... }
//	defer counts.Release()
//	defer flags.Release()
//
// # Exclusivity
//
// A pool holds at most one outstanding borrow at a time; a second borrow
// attempt fails with ErrAlreadyBorrowed until every view from the current
// borrow has released. The pool itself is not goroutine-safe: callers that
// share one across goroutines must serialize access externally.
//
// # Growth
//
// The pool reuses its allocation only when both the byte length and the
// alignment of a borrow are already satisfied; otherwise it allocates a
// fresh block sized exactly to the request and discards the old bytes. It
// never copies old contents (no live values survive between borrows by
// contract) and never shrinks.
//
// # Important Notes
//
//   - Views have fixed capacity; Push fails with ErrCapacityExceeded rather
//     than reallocating.
//   - A view's Slice is backed by pool memory and is invalidated by the next
//     mutation or release.
//   - The backing allocation is untyped bytes, so pointers stored in
//     elements are invisible to the garbage collector; element types that
//     contain pointers must have their referents kept reachable elsewhere
//     for the lifetime of the view.
//   - Allocation failure follows Go semantics: a grow that cannot obtain
//     memory panics in the runtime. Layouts whose byte size would overflow
//     int are rejected with ErrSizeOverflow instead.
package remem
