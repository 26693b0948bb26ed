// Package unrolled provides dense summation kernels with independent
// accumulators, shaped so the compiler can keep several lanes in flight.
package unrolled

// SumFloat64 returns the sum of x using four partial accumulators.
// Rounding may differ from a left-to-right sum in the last bits.
func SumFloat64(x []float64) float64 {
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= len(x); i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	for ; i < len(x); i++ {
		s0 += x[i]
	}
	return (s0 + s1) + (s2 + s3)
}

// SumInt32 returns the exact sum of x using eight 64-bit partial accumulators.
func SumInt32(x []int32) int64 {
	var s0, s1, s2, s3, s4, s5, s6, s7 int64
	i := 0
	for ; i+8 <= len(x); i += 8 {
		s0 += int64(x[i])
		s1 += int64(x[i+1])
		s2 += int64(x[i+2])
		s3 += int64(x[i+3])
		s4 += int64(x[i+4])
		s5 += int64(x[i+5])
		s6 += int64(x[i+6])
		s7 += int64(x[i+7])
	}
	for ; i < len(x); i++ {
		s0 += int64(x[i])
	}
	return s0 + s1 + s2 + s3 + s4 + s5 + s6 + s7
}
