package testutil

import (
	"math"
	"math/rand"
)

// DeterministicFloats returns n values in [-amplitude, amplitude) from a
// fixed seed. Every missingEvery-th element (when > 0) is NaN.
func DeterministicFloats(seed int64, n int, amplitude float64, missingEvery int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
		if missingEvery > 0 && i%missingEvery == missingEvery-1 {
			out[i] = math.NaN()
		}
	}
	return out
}

// DeterministicInts returns n integers in [-bound, bound] from a fixed seed,
// together with a validity slice in which every missingEvery-th element
// (when > 0) is false.
func DeterministicInts(seed int64, n int, bound int32, missingEvery int) ([]int32, []bool) {
	out := make([]int32, n)
	valid := make([]bool, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Int31n(2*bound+1) - bound
		valid[i] = missingEvery <= 0 || i%missingEvery != missingEvery-1
	}
	return out, valid
}

// DeterministicGroups returns n 1-based group ids drawn uniformly from 1..ng.
func DeterministicGroups(seed int64, n, ng int) []int32 {
	out := make([]int32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int32(rng.Intn(ng)) + 1
	}
	return out
}

// SkipMissingSum is the reference skip-missing sum: NaN when every element
// is NaN.
func SkipMissingSum(x []float64) float64 {
	sum, seen := 0.0, false
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		seen = true
	}
	if !seen {
		return math.NaN()
	}
	return sum
}
