package remem

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// CapacityBytes returns the usable size of the pool's current allocation.
func (p *Pool) CapacityBytes() int {
	return p.capBytes
}

// Alignment returns the alignment guarantee of the current allocation.
func (p *Pool) Alignment() int {
	return int(p.align)
}

// Borrowed reports whether a view over the pool is currently outstanding.
func (p *Pool) Borrowed() bool {
	return p.outstanding > 0
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		CapacityBytes:  p.capBytes,
		Alignment:      int(p.align),
		Borrows:        p.borrows,
		Grows:          p.grows,
		HighWaterBytes: p.highWater,
		Borrowed:       p.outstanding > 0,
	}
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	CapacityBytes  int    // Usable bytes in the current allocation
	Alignment      int    // Alignment guarantee of the allocation
	Borrows        uint64 // Borrows served since construction
	Grows          uint64 // Reallocations since construction
	HighWaterBytes int    // Largest byte footprint ever requested
	Borrowed       bool   // Whether a view is currently outstanding
}

// String formats the snapshot with humanized byte counts.
func (m PoolMetrics) String() string {
	return fmt.Sprintf("pool: %s capacity (align %d), %s high water, %d borrows, %d grows",
		humanize.IBytes(uint64(m.CapacityBytes)), m.Alignment,
		humanize.IBytes(uint64(m.HighWaterBytes)), m.Borrows, m.Grows)
}
