package temparena

import (
	"runtime"
	"testing"
)

// BenchmarkCycleUsage measures the intended workload shape: many
// allocations per cycle with a Reset at every cycle boundary.
func BenchmarkCycleUsage(b *testing.B) {

	b.Run("ManySmallAllocs/Arena", func(b *testing.B) {
		a := New(64 * 1024)
		defer a.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				a.AllocBytes(64)
			}
			a.Reset()
		}
	})

	b.Run("ManySmallAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			objects := make([][]byte, 100)
			for j := 0; j < 100; j++ {
				objects[j] = make([]byte, 64)
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	type testStruct struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("StructAllocs/Arena", func(b *testing.B) {
		a := New(64 * 1024)
		defer a.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 50; j++ {
				s := Alloc[testStruct](a)
				s.ID = int64(j)
			}
			a.Reset()
		}
	})

	b.Run("StructAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			structs := make([]*testStruct, 50)
			for j := 0; j < 50; j++ {
				structs[j] = &testStruct{ID: int64(j)}
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})
}

// BenchmarkOverflowChurn measures cycles that run past the primary buffer
// and pay for page creation plus drain on every Reset.
func BenchmarkOverflowChurn(b *testing.B) {
	b.Run("WellSized", func(b *testing.B) {
		a := New(64 * 1024)
		defer a.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 32; j++ {
				a.AllocBytes(1024)
			}
			a.Reset()
		}
	})

	b.Run("Undersized", func(b *testing.B) {
		a := New(4 * 1024) // every cycle spills into pages
		defer a.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 32; j++ {
				a.AllocBytes(1024)
			}
			a.Reset()
		}
	})
}

// BenchmarkTrackingOverhead compares the allocation path with and without
// statistics collection.
func BenchmarkTrackingOverhead(b *testing.B) {
	b.Run("Off", func(b *testing.B) {
		a := New(1 << 20)
		defer a.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a.AllocBytes(128)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})

	b.Run("On", func(b *testing.B) {
		a := New(1<<20, WithTracking(true))
		defer a.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a.AllocBytes(128)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})
}

// BenchmarkSprintf compares arena-backed formatting with fmt.Sprintf.
func BenchmarkSprintf(b *testing.B) {
	b.Run("Arena", func(b *testing.B) {
		a := New(1 << 20)
		defer a.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = Sprintf(a, "entity %d of %d", i, b.N)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})
}
