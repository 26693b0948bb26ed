package kernel

import (
	"math"
	"testing"
)

func TestSumFloat64(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
		want float64
	}{
		{name: "empty", x: nil, want: 0},
		{name: "single", x: []float64{3.5}, want: 3.5},
		{name: "mixed", x: []float64{-1, 2, -3, 0.5}, want: -1.5},
		{name: "odd length", x: []float64{1, 2, 3, 4, 5}, want: 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SumFloat64(tc.x); math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("SumFloat64() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSumInt32(t *testing.T) {
	x := []int32{math.MaxInt32, math.MaxInt32, -5, 1}
	want := int64(math.MaxInt32)*2 - 4
	if got := SumInt32(x); got != want {
		t.Fatalf("SumInt32() = %d, want %d", got, want)
	}
}

func TestImplementationSelected(t *testing.T) {
	if Implementation() == "" {
		t.Fatal("Implementation() returned an empty name")
	}
}
