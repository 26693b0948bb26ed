package reduce

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-colsum/column"
	"github.com/cwbudde/algo-colsum/internal/kernel"
	"github.com/cwbudde/algo-colsum/internal/team"
)

// Representable integer results. math.MinInt32 is reserved as the interop
// missing sentinel.
const (
	maxInt = math.MaxInt32
	minInt = -math.MaxInt32
)

func inIntRange(s int64) bool {
	return s >= minInt && s <= maxInt
}

// sumInt returns the exact sum of a non-empty integer vector in a 64-bit
// accumulator and whether the result is present.
func sumInt(x []int32, valid column.Bitmap, skip bool) (int64, bool) {
	if valid == nil {
		return kernel.SumInt32(x), true
	}

	if skip {
		j := len(x) - 1
		for !valid.IsValid(j) && j != 0 {
			j--
		}
		if !valid.IsValid(j) {
			return 0, false
		}
		sum := int64(x[j])
		for i := j - 1; i >= 0; i-- {
			if valid.IsValid(i) {
				sum += int64(x[i])
			}
		}
		return sum, true
	}

	var sum int64
	for i, v := range x {
		if !valid.IsValid(i) {
			return 0, false
		}
		sum += int64(v)
	}
	return sum, true
}

// sumIntParallel is sumInt on a team of threads goroutines. Integer partials
// make the result identical to the sequential kernel.
func sumIntParallel(x []int32, valid column.Bitmap, skip bool, threads int) (int64, bool) {
	ranges := team.Split(len(x), threads)
	partial := make([]int64, len(ranges))
	present := make([]int, len(ranges))
	missing := make([]bool, len(ranges))

	team.Run(ranges, func(p int, r team.Range) {
		if valid == nil {
			partial[p] = kernel.SumInt32(x[r.Lo:r.Hi])
			present[p] = r.Len()
			return
		}
		var s int64
		n := 0
		for i := r.Lo; i < r.Hi; i++ {
			if !valid.IsValid(i) {
				if !skip {
					missing[p] = true
					return
				}
				continue
			}
			s += int64(x[i])
			n++
		}
		partial[p] = s
		present[p] = n
	})

	var sum int64
	n := 0
	for p := range ranges {
		if missing[p] {
			return 0, false
		}
		sum += partial[p]
		n += present[p]
	}
	return sum, n > 0
}

// sumIntGrouped writes per-group integer sums into out and their presence
// into present, both of length ng. A group value or running group sum
// leaving the representable range fails the whole call with ErrIntegerOverflow; out is
// then unusable.
func sumIntGrouped(out []int32, present []bool, x []int32, valid column.Bitmap, g []int32, skip bool) error {
	if skip {
		clear(out)
		clear(present)
		for i := len(x) - 1; i >= 0; i-- {
			if !valid.IsValid(i) {
				continue
			}
			k := g[i] - 1
			if !present[k] {
				if !inIntRange(int64(x[i])) {
					return fmt.Errorf("%w: group %d", ErrIntegerOverflow, k+1)
				}
				out[k] = x[i]
				present[k] = true
				continue
			}
			s := int64(out[k]) + int64(x[i])
			if !inIntRange(s) {
				return fmt.Errorf("%w: group %d", ErrIntegerOverflow, k+1)
			}
			out[k] = int32(s)
		}
		return nil
	}

	clear(out)
	for k := range present {
		present[k] = true
	}
	for i := len(x) - 1; i >= 0; i-- {
		k := g[i] - 1
		if !valid.IsValid(i) {
			present[k] = false
			continue
		}
		if !present[k] {
			continue
		}
		s := int64(out[k]) + int64(x[i])
		if !inIntRange(s) {
			return fmt.Errorf("%w: group %d", ErrIntegerOverflow, k+1)
		}
		out[k] = int32(s)
	}
	return nil
}
