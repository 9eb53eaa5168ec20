package anomaly

import (
	"math"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

const (
	defaultTrees         = 100
	defaultMaxSamples    = 256
	defaultContamination = 0.05
	defaultSeed          = 42
)

// Config defines the isolation forest parameters.
type Config struct {
	Trees         int
	MaxSamples    int // subsample size per tree, capped at the input length
	Contamination float64
	Seed          int64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 100 trees of at most 256 samples, contamination
// 0.05 and seed 42.
func DefaultConfig() Config {
	return Config{
		Trees:         defaultTrees,
		MaxSamples:    defaultMaxSamples,
		Contamination: defaultContamination,
		Seed:          defaultSeed,
	}
}

// WithTrees sets the number of trees.
func WithTrees(n int) Option {
	return func(cfg *Config) { cfg.Trees = n }
}

// WithMaxSamples sets the per-tree subsample size.
func WithMaxSamples(n int) Option {
	return func(cfg *Config) { cfg.MaxSamples = n }
}

// WithContamination sets the expected outlier fraction, in (0, 1).
func WithContamination(fraction float64) Option {
	return func(cfg *Config) { cfg.Contamination = fraction }
}

// WithSeed sets the tree-building random seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) { cfg.Seed = seed }
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

// Validate checks the parameter ranges.
func (c Config) Validate() error {
	switch {
	case c.Trees < 1:
		return core.InvalidParameter("trees must be >= 1: %d", c.Trees)
	case c.MaxSamples < 1:
		return core.InvalidParameter("max samples must be >= 1: %d", c.MaxSamples)
	case math.IsNaN(c.Contamination) || c.Contamination <= 0 || c.Contamination >= 1:
		return core.InvalidParameter("contamination must be in (0, 1): %v", c.Contamination)
	}
	return nil
}
