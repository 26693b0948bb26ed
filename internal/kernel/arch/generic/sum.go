// Package generic provides the portable dense summation kernels.
package generic

import (
	"github.com/cwbudde/algo-colsum/internal/cpu"
	"github.com/cwbudde/algo-colsum/internal/kernel/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		SumFloat64: SumFloat64,
		SumInt32:   SumInt32,
	})
}

// SumFloat64 returns the left-to-right sum of x.
func SumFloat64(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum
}

// SumInt32 returns the sum of x in a 64-bit accumulator.
func SumInt32(x []int32) int64 {
	var sum int64
	for _, v := range x {
		sum += int64(v)
	}
	return sum
}
