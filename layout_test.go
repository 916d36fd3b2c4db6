package remem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	tests := []struct {
		n, align, expected uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{5, 1, 5},
		{7, 4, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, alignUp(tt.n, tt.align), "alignUp(%d, %d)", tt.n, tt.align)
	}
}

func TestLayoutFor(t *testing.T) {
	assert.Equal(t, Layout{Size: 1, Align: 1}, LayoutFor[byte]())
	assert.Equal(t, Layout{Size: 8, Align: 8}, LayoutFor[uint64]())

	type padded struct {
		a byte
		b uint64
	}
	assert.Equal(t, Layout{Size: 16, Align: 8}, LayoutFor[padded]())

	assert.Zero(t, LayoutFor[struct{}]().Size)
}

func TestBytesFor(t *testing.T) {
	n, err := BytesFor[uint64](3)
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	_, err = BytesFor[struct{}](1)
	require.ErrorIs(t, err, ErrZeroSizedType)

	_, err = BytesFor[uint64](0)
	require.ErrorIs(t, err, ErrNonPositiveCount)

	_, err = BytesFor[uint64](math.MaxInt/4)
	require.ErrorIs(t, err, ErrSizeOverflow)
}

func TestLayoutSegments(t *testing.T) {
	t.Run("packed with alignment gaps", func(t *testing.T) {
		segs := []segment{
			{layout: LayoutFor[uint64](), count: 1},
			{layout: LayoutFor[byte](), count: 2},
		}
		total, maxAlign, err := layoutSegments(segs)
		require.NoError(t, err)
		assert.Equal(t, uintptr(0), segs[0].offset)
		assert.Equal(t, uintptr(8), segs[1].offset)
		assert.Equal(t, 10, total)
		assert.Equal(t, uintptr(8), maxAlign)
	})

	t.Run("offset rounds up per segment", func(t *testing.T) {
		segs := []segment{
			{layout: LayoutFor[byte](), count: 3},
			{layout: LayoutFor[uint32](), count: 2},
		}
		total, maxAlign, err := layoutSegments(segs)
		require.NoError(t, err)
		assert.Equal(t, uintptr(0), segs[0].offset)
		assert.Equal(t, uintptr(4), segs[1].offset)
		assert.Equal(t, 12, total)
		assert.Equal(t, uintptr(4), maxAlign)
	})

	t.Run("single segment", func(t *testing.T) {
		segs := []segment{{layout: LayoutFor[byte](), count: 1}}
		total, maxAlign, err := layoutSegments(segs)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, uintptr(1), maxAlign)
	})

	t.Run("overflow", func(t *testing.T) {
		segs := []segment{
			{layout: LayoutFor[uint64](), count: math.MaxInt / 8},
			{layout: LayoutFor[uint64](), count: 1},
		}
		_, _, err := layoutSegments(segs)
		require.ErrorIs(t, err, ErrSizeOverflow)
	})
}
