// Package temparena implements a per-cycle scratch arena for Go.
//
// # Overview
//
// A scratch arena serves workloads that allocate heavily within one
// iteration of a loop and discard everything at the iteration boundary,
// such as a simulation or render loop. Allocation is a bump of a cursor
// through a primary buffer; when the buffer is exhausted, allocation
// transparently spills into a chain of overflow pages. Reset reclaims
// everything at once:
//
//   - no per-object deallocation cost
//   - no fragmentation across cycles
//   - fewer calls into the backing allocator
//
// Individual allocations are never freed, compacted or defragmented.
//
// # Basic Usage
//
//	a := temparena.New(0) // 64 MiB primary buffer
//	defer a.Release()
//
//	for running {
//		buf := a.AllocBytes(1024)
//		obj := temparena.Alloc[Particle](a)
//		scratch := temparena.AllocSlice[float64](a, 512)
//		_ = buf, obj, scratch
//
//		a.Reset() // end of cycle: everything above is reclaimed
//	}
//
// # Overflow Pages
//
// A request that does not fit the active region creates one overflow page,
// normally sized to the configured capacity, or to request+capacity when
// the request alone would not fit a standard page. No allocation ever
// spans a page boundary. Reset drains the whole chain and rewinds to the
// primary buffer, so a well-sized arena pays for overflow only on
// exceptional cycles.
//
// # Important Notes
//
//   - Everything handed out by the arena, including storage obtained
//     through an Allocator and strings built by Sprintf or CopyString, is
//     invalidated by Reset and Release. Using it afterwards is undefined
//     behavior, not a performance concern. Generation() helps debug such
//     misuse.
//   - An Arena is not safe for concurrent use. There are no locks and no
//     atomics; create one arena per goroutine.
//   - A failing backing allocator is fatal: the arena panics rather than
//     returning an error, since a scratch allocator cannot recover from
//     out-of-memory mid-cycle.
//
// # Statistics
//
// With tracking enabled, the arena counts allocations per cycle:
//
//	a := temparena.New(0, temparena.WithTracking(true))
//	...
//	s := a.Stats()
//	fmt.Printf("%d allocations, %d bytes, %d overflow pages\n",
//		s.AllocationCount, s.TotalAllocatedBytes, s.OverflowPages)
//
// All byte counters use the aligned allocation size and reset to zero on
// every Reset, so Stats describes the current cycle.
package temparena
