// Package team runs a bounded team of goroutines over a fixed index range.
//
// A team lives for exactly one call: Run spawns one goroutine per range and
// joins them before returning. There is no queue and no persistent pool.
// Team members cannot fail: kernels report errors only from sequential code.
package team

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Bounds clamps requested thread counts. A zero Max means GOMAXPROCS.
type Bounds struct {
	Min int
	Max int
}

// Clamp returns n limited to [b.Min, b.Max] and to at least 1.
func (b Bounds) Clamp(n int) int {
	hi := b.Max
	if hi <= 0 {
		hi = runtime.GOMAXPROCS(0)
	}
	lo := max(b.Min, 1)
	if lo > hi {
		lo = hi
	}
	return min(max(n, lo), hi)
}

// Range is the half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.Hi - r.Lo }

// Split divides [0, n) into at most parts contiguous, non-empty ranges of
// near-equal length. It returns nil for n <= 0.
func Split(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	parts = min(max(parts, 1), n)
	chunk := (n + parts - 1) / parts

	out := make([]Range, 0, parts)
	for lo := 0; lo < n; lo += chunk {
		out = append(out, Range{Lo: lo, Hi: min(lo+chunk, n)})
	}
	return out
}

// Run calls fn once per range, each on its own goroutine, and waits for all
// of them. A single range runs on the calling goroutine.
func Run(ranges []Range, fn func(i int, r Range)) {
	if len(ranges) == 1 {
		fn(0, ranges[0])
		return
	}

	var g errgroup.Group
	for i, r := range ranges {
		g.Go(func() error {
			fn(i, r)
			return nil
		})
	}
	_ = g.Wait() // members always return nil
}
