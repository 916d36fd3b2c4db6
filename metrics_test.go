package remem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	p, err := New[byte]()
	require.NoError(t, err)
	m := p.Metrics()
	assert.EqualValues(t, 0, m.Grows)
	assert.EqualValues(t, 0, m.Borrows)
	assert.Equal(t, 0, m.HighWaterBytes)

	v, err := BorrowAs[uint64](p, 4)
	require.NoError(t, err)
	v.Release()
	m = p.Metrics()
	assert.EqualValues(t, 1, m.Grows)
	assert.EqualValues(t, 1, m.Borrows)
	assert.Equal(t, 32, m.HighWaterBytes)

	// A smaller borrow bumps Borrows but not Grows or the high water mark.
	w, err := BorrowAs[byte](p, 8)
	require.NoError(t, err)
	w.Release()
	m = p.Metrics()
	assert.EqualValues(t, 1, m.Grows)
	assert.EqualValues(t, 2, m.Borrows)
	assert.Equal(t, 32, m.HighWaterBytes)
}

func TestMetricsBorrowed(t *testing.T) {
	p, err := New[byte]()
	require.NoError(t, err)
	assert.False(t, p.Metrics().Borrowed)

	a, b, err := Borrow2As[uint32, byte](p, 1, 1)
	require.NoError(t, err)
	assert.True(t, p.Metrics().Borrowed)

	a.Release()
	assert.True(t, p.Metrics().Borrowed)
	b.Release()
	assert.False(t, p.Metrics().Borrowed)
}

func TestMetricsString(t *testing.T) {
	p, err := WithCapacity[uint64](4)
	require.NoError(t, err)
	s := p.Metrics().String()
	assert.Contains(t, s, "capacity")
	assert.Contains(t, s, "align 8")
	assert.Contains(t, s, "1 grows")
}
