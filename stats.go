package temparena

// Stats is a snapshot of allocation statistics. All byte counts use the
// aligned allocation size (what the arena actually consumes), so max,
// total and average share one unit. Counters reset on every arena Reset.
type Stats struct {
	MaxAllocation       int // largest single allocation, aligned bytes
	AllocationCount     int
	AverageAllocation   int // TotalAllocatedBytes / AllocationCount
	TotalAllocatedBytes int
	OverflowPages       int // pages created since the last Reset
}

// Stats returns a snapshot of the current statistics. The zero value is
// returned while tracking is disabled.
func (a *Arena) Stats() Stats {
	if !a.tracking {
		return Stats{}
	}
	s := a.stats
	if s.AllocationCount > 0 {
		s.AverageAllocation = s.TotalAllocatedBytes / s.AllocationCount
	}
	return s
}

// Used returns the number of bytes consumed in the active region.
func (a *Arena) Used() int { return a.used }

// Cap returns the capacity of the active region: the primary buffer, or
// the newest overflow page once overflow has begun.
func (a *Arena) Cap() int { return len(a.buf) }

// PageSize returns the configured capacity, which also sizes standard
// overflow pages.
func (a *Arena) PageSize() int { return a.pageSize }

// NumOverflowPages returns the current length of the overflow page chain.
func (a *Arena) NumOverflowPages() int {
	n := 0
	for p := a.pages; p != nil; p = p.next {
		n++
	}
	return n
}
