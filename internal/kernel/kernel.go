// Package kernel exposes the dense (missing-free) summation primitives,
// dispatched to the best registered variant for the current CPU.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-colsum/internal/cpu"
	"github.com/cwbudde/algo-colsum/internal/kernel/registry"
)

var (
	selected *registry.OpEntry
	initOnce sync.Once
)

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no summation kernel registered")
	}
	if entry.SumFloat64 == nil || entry.SumInt32 == nil {
		panic("kernel: selected implementation " + entry.Name + " is incomplete")
	}
	selected = entry
}

// SumFloat64 returns the sum of x. NaN elements propagate.
func SumFloat64(x []float64) float64 {
	initOnce.Do(initKernels)
	return selected.SumFloat64(x)
}

// SumInt32 returns the exact sum of x in a 64-bit accumulator. x must not
// contain missing elements.
func SumInt32(x []int32) int64 {
	initOnce.Do(initKernels)
	return selected.SumInt32(x)
}

// Implementation returns the name of the selected variant.
func Implementation() string {
	initOnce.Do(initKernels)
	return selected.Name
}
