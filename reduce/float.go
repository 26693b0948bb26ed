package reduce

import "math"

// sumFloat returns the sum of x, which must not be empty. NaN is the
// missing marker.
func sumFloat(x []float64, skip bool) float64 {
	if skip {
		// Seed from the last present element.
		j := len(x) - 1
		sum := x[j]
		for math.IsNaN(sum) && j != 0 {
			j--
			sum = x[j]
		}
		for i := j - 1; i >= 0; i-- {
			if !math.IsNaN(x[i]) {
				sum += x[i]
			}
		}
		return sum
	}

	sum := 0.0
	for _, v := range x {
		if math.IsNaN(v) {
			return v
		}
		sum += v
	}
	return sum
}

// sumFloatGrouped writes the per-group sums of x into out, which has one slot
// per group. g holds 1-based group ids.
func sumFloatGrouped(out, x []float64, g []int32, skip bool) {
	if skip {
		nan := math.NaN()
		for k := range out {
			out[k] = nan
		}
		for i := len(x) - 1; i >= 0; i-- {
			v := x[i]
			if math.IsNaN(v) {
				continue
			}
			k := g[i] - 1
			if math.IsNaN(out[k]) {
				out[k] = v
			} else {
				out[k] += v
			}
		}
		return
	}

	clear(out)
	for i := len(x) - 1; i >= 0; i-- {
		out[g[i]-1] += x[i]
	}
}

// sumFloatInto reduces x into out (length 1 ungrouped, ng grouped), choosing
// the parallel kernels when threads > 1.
func sumFloatInto(out, x []float64, g []int32, skip bool, threads int) {
	switch {
	case g == nil && threads > 1:
		out[0] = sumFloatParallel(x, skip, threads)
	case g == nil:
		out[0] = sumFloat(x, skip)
	case threads > 1:
		sumFloatGroupedParallel(out, x, g, skip, threads)
	default:
		sumFloatGrouped(out, x, g, skip)
	}
}
