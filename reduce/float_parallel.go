package reduce

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-colsum/internal/kernel"
	"github.com/cwbudde/algo-colsum/internal/team"
)

// sumFloatParallel is sumFloat on a team of threads goroutines. Partial sums
// are combined in chunk order, so the result may differ from the sequential
// kernel only by rounding.
func sumFloatParallel(x []float64, skip bool, threads int) float64 {
	if !skip {
		// NaN poisons a + reduction in any order.
		ranges := team.Split(len(x), threads)
		partial := make([]float64, len(ranges))
		team.Run(ranges, func(i int, r team.Range) {
			partial[i] = kernel.SumFloat64(x[r.Lo:r.Hi])
		})
		return kernel.SumFloat64(partial)
	}

	j := 1
	sum := x[0]
	for math.IsNaN(sum) && j != len(x) {
		sum = x[j]
		j++
	}
	if j == len(x) {
		return sum
	}

	rest := x[j:]
	ranges := team.Split(len(rest), threads)
	partial := make([]float64, len(ranges))
	team.Run(ranges, func(i int, r team.Range) {
		s := 0.0
		for _, v := range rest[r.Lo:r.Hi] {
			if !math.IsNaN(v) {
				s += v
			}
		}
		partial[i] = s
	})
	return sum + kernel.SumFloat64(partial)
}

// sumFloatGroupedParallel is sumFloatGrouped on a team of threads goroutines.
// Every slot update is a compare-and-swap on the slot's bit pattern, so the
// first value landing in a missing slot cannot race with a concurrent add.
func sumFloatGroupedParallel(out, x []float64, g []int32, skip bool, threads int) {
	slots := make([]atomic.Uint64, len(out))
	if skip {
		nan := math.Float64bits(math.NaN())
		for k := range slots {
			slots[k].Store(nan)
		}
	}

	ranges := team.Split(len(x), threads)
	team.Run(ranges, func(_ int, r team.Range) {
		for i := r.Lo; i < r.Hi; i++ {
			v := x[i]
			if skip && math.IsNaN(v) {
				continue
			}
			addSlot(&slots[g[i]-1], v, skip)
		}
	})

	for k := range out {
		out[k] = math.Float64frombits(slots[k].Load())
	}
}

// addSlot atomically adds v into slot. With seed set, a slot holding NaN is
// treated as empty and replaced by v.
func addSlot(slot *atomic.Uint64, v float64, seed bool) {
	for {
		old := slot.Load()
		cur := math.Float64frombits(old)
		next := cur + v
		if seed && math.IsNaN(cur) {
			next = v
		}
		if slot.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}
