package reduce

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// weightedMissing reports whether position i of the value/weight pair is
// missing in either input.
func weightedMissing(x, w []float64, i int) bool {
	return math.IsNaN(x[i]) || math.IsNaN(w[i])
}

// sumWeighted returns sum(x[i]*w[i]) over a non-empty pair of equally long
// vectors. prod is scratch space of the same length.
func sumWeighted(x, w, prod []float64, skip bool) float64 {
	vecmath.MulBlock(prod, x, w)

	if skip {
		j := len(x) - 1
		for weightedMissing(x, w, j) && j != 0 {
			j--
		}
		sum := prod[j]
		for i := j - 1; i >= 0; i-- {
			if weightedMissing(x, w, i) {
				continue
			}
			sum += prod[i]
		}
		return sum
	}

	sum := 0.0
	for i := range x {
		if weightedMissing(x, w, i) {
			// x[i] + w[i] is NaN: the marker of whichever input was missing.
			return x[i] + w[i]
		}
		sum += prod[i]
	}
	return sum
}

// sumWeightedGrouped writes per-group weighted sums into out.
func sumWeightedGrouped(out, x, w, prod []float64, g []int32, skip bool) {
	vecmath.MulBlock(prod, x, w)

	if skip {
		nan := math.NaN()
		for k := range out {
			out[k] = nan
		}
		for i := len(x) - 1; i >= 0; i-- {
			if weightedMissing(x, w, i) {
				continue
			}
			k := g[i] - 1
			if math.IsNaN(out[k]) {
				out[k] = prod[i]
			} else {
				out[k] += prod[i]
			}
		}
		return
	}

	clear(out)
	for i := len(x) - 1; i >= 0; i-- {
		out[g[i]-1] += prod[i]
	}
}

// sumWeightedInto reduces the pair into out (length 1 ungrouped, ng grouped).
func sumWeightedInto(out, x, w, prod []float64, g []int32, skip bool) {
	if g == nil {
		out[0] = sumWeighted(x, w, prod, skip)
		return
	}
	sumWeightedGrouped(out, x, w, prod, g, skip)
}
