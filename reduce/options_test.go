package reduce

import "testing"

func TestApplyOptionsDefaults(t *testing.T) {
	cfg := ApplyOptions()
	if !cfg.SkipMissing || cfg.Threads != 1 || cfg.MinThreads != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ParallelThreshold != DefaultParallelThreshold {
		t.Fatalf("ParallelThreshold = %d, want %d", cfg.ParallelThreshold, DefaultParallelThreshold)
	}
	if got := cfg.threadsFor(10 * DefaultParallelThreshold); got != 1 {
		t.Fatalf("default threadsFor = %d, want 1", got)
	}
}

func TestApplyOptionsIgnoresInvalid(t *testing.T) {
	cfg := ApplyOptions(WithThreads(0), WithThreadBounds(-1, 0), WithParallelThreshold(-5), nil)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("ApplyOptions = %+v, want %+v", cfg, def)
	}
}

func TestThreadsFor(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
		n    int
		want int
	}{
		{name: "below threshold", opts: []Option{WithThreads(4), WithThreadBounds(1, 8)}, n: DefaultParallelThreshold, want: 1},
		{name: "above threshold", opts: []Option{WithThreads(4), WithThreadBounds(1, 8)}, n: DefaultParallelThreshold + 1, want: 4},
		{name: "clamped to max", opts: []Option{WithThreads(64), WithThreadBounds(1, 3), WithParallelThreshold(0)}, n: 10, want: 3},
		{name: "raised to min", opts: []Option{WithThreads(1), WithThreadBounds(2, 8), WithParallelThreshold(0)}, n: 10, want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyOptions(tc.opts...).threadsFor(tc.n); got != tc.want {
				t.Fatalf("threadsFor(%d) = %d, want %d", tc.n, got, tc.want)
			}
		})
	}
}

func TestWithConfigFillsZeroFields(t *testing.T) {
	cfg := ApplyOptions(WithConfig(Config{SkipMissing: false, Threads: 3}))
	if cfg.SkipMissing {
		t.Fatal("SkipMissing not taken from config")
	}
	if cfg.Threads != 3 || cfg.MinThreads != 1 || cfg.MaxThreads != DefaultConfig().MaxThreads {
		t.Fatalf("unexpected thread settings: %+v", cfg)
	}
	if cfg.ParallelThreshold != 0 {
		t.Fatalf("ParallelThreshold = %d, want 0", cfg.ParallelThreshold)
	}
}
