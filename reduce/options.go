package reduce

import (
	"runtime"

	"github.com/cwbudde/algo-colsum/internal/team"
)

// DefaultParallelThreshold is the column length above which a multi-threaded
// configuration switches to the parallel kernels.
const DefaultParallelThreshold = 100000

// Config controls missing-value handling and threading.
type Config struct {
	// SkipMissing ignores missing elements instead of propagating them.
	SkipMissing bool `yaml:"skip_missing"`

	// Threads is the requested team size, clamped to [MinThreads, MaxThreads].
	Threads int `yaml:"threads"`

	MinThreads int `yaml:"min_threads"`
	MaxThreads int `yaml:"max_threads"`

	// ParallelThreshold is the minimum column length, exclusive, for the
	// parallel kernels.
	ParallelThreshold int `yaml:"parallel_threshold"`
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns skip-missing, single-threaded settings.
func DefaultConfig() Config {
	return Config{
		SkipMissing:       true,
		Threads:           1,
		MinThreads:        1,
		MaxThreads:        runtime.GOMAXPROCS(0),
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// WithSkipMissing selects skip-missing (true) or propagate (false) mode.
func WithSkipMissing(skip bool) Option {
	return func(cfg *Config) {
		cfg.SkipMissing = skip
	}
}

// WithThreads sets the requested number of threads.
func WithThreads(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Threads = n
		}
	}
}

// WithThreadBounds sets the clamp applied to the requested thread count.
func WithThreadBounds(minThreads, maxThreads int) Option {
	return func(cfg *Config) {
		if minThreads > 0 {
			cfg.MinThreads = minThreads
		}
		if maxThreads > 0 {
			cfg.MaxThreads = maxThreads
		}
	}
}

// WithParallelThreshold sets the column length above which the parallel
// kernels are used.
func WithParallelThreshold(n int) Option {
	return func(cfg *Config) {
		if n >= 0 {
			cfg.ParallelThreshold = n
		}
	}
}

// WithConfig replaces the whole configuration, e.g. one loaded from a file.
// Zero thread fields fall back to the defaults.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		def := DefaultConfig()
		if c.Threads <= 0 {
			c.Threads = def.Threads
		}
		if c.MinThreads <= 0 {
			c.MinThreads = def.MinThreads
		}
		if c.MaxThreads <= 0 {
			c.MaxThreads = def.MaxThreads
		}
		if c.ParallelThreshold < 0 {
			c.ParallelThreshold = def.ParallelThreshold
		}
		*cfg = c
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// threadsFor returns the team size for a column of length n, 1 meaning the
// sequential kernels.
func (c Config) threadsFor(n int) int {
	bounds := team.Bounds{Min: c.MinThreads, Max: c.MaxThreads}
	nth := bounds.Clamp(c.Threads)
	if nth > 1 && n > c.ParallelThreshold {
		return nth
	}
	return 1
}
