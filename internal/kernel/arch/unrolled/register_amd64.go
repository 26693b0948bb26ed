//go:build amd64

package unrolled

import (
	"github.com/cwbudde/algo-colsum/internal/cpu"
	"github.com/cwbudde/algo-colsum/internal/kernel/registry"
)

// SSE2 is always present on amd64; the four float lanes map onto two
// 128-bit registers.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "unrolled-sse2",
		SIMDLevel:  cpu.SIMDSSE2,
		Priority:   10,
		SumFloat64: SumFloat64,
		SumInt32:   SumInt32,
	})
}
