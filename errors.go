package remem

import "github.com/pkg/errors"

// Sentinel errors returned by pool and view operations. Callers should match
// them with errors.Is; the returned errors carry additional context about the
// failing request.
var (
	// ErrZeroSizedType is returned when a pool is constructed over, or a
	// borrow requests, a type whose size is zero. Capacity and offset
	// arithmetic degenerates for zero-sized elements.
	ErrZeroSizedType = errors.New("remem: zero sized type")

	// ErrCapacityExceeded is returned by Push and PushSlice when the view
	// is already at its fixed capacity.
	ErrCapacityExceeded = errors.New("remem: view capacity exceeded")

	// ErrInvalidRange is returned by Drain when the requested range is
	// inverted or extends past the view's length.
	ErrInvalidRange = errors.New("remem: invalid drain range")

	// ErrAlreadyBorrowed is returned by a borrow attempt while a view over
	// the same pool is still outstanding.
	ErrAlreadyBorrowed = errors.New("remem: pool already borrowed")

	// ErrNonPositiveCount is returned when a borrow requests a capacity
	// below one.
	ErrNonPositiveCount = errors.New("remem: count must be positive")

	// ErrSizeOverflow is returned when a requested layout does not fit in
	// an int worth of bytes.
	ErrSizeOverflow = errors.New("remem: byte size overflows int")
)
