//go:build arm64

package unrolled

import (
	"github.com/cwbudde/algo-colsum/internal/cpu"
	"github.com/cwbudde/algo-colsum/internal/kernel/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "unrolled-neon",
		SIMDLevel:  cpu.SIMDNEON,
		Priority:   15,
		SumFloat64: SumFloat64,
		SumInt32:   SumInt32,
	})
}
