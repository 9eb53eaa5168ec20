package core

import "math"

// Config holds the parameters shared by pulse synthesis, low-pass
// filtering and anomaly flagging. A single value is passed to every stage
// so the sample rate used for synthesis is the one the filter is designed for.
type Config struct {
	Frequency    float64 `yaml:"frequency" json:"frequency"`         // pulse frequency (Hz)
	Duration     float64 `yaml:"duration" json:"duration"`           // signal length (s)
	SampleRate   float64 `yaml:"sample_rate" json:"sample_rate"`     // samples over Duration, also the filter rate (Hz)
	NoiseLevel   float64 `yaml:"noise_level" json:"noise_level"`     // std-dev of additive noise
	JitterAmount float64 `yaml:"jitter_amount" json:"jitter_amount"` // std-dev of timing jitter (s)

	Cutoff float64 `yaml:"cutoff" json:"cutoff"` // low-pass cutoff (Hz)
	Order  int     `yaml:"order" json:"order"`   // Butterworth order

	Contamination float64 `yaml:"contamination" json:"contamination"` // expected outlier fraction

	Seed int64 `yaml:"seed" json:"seed"`
}

// MaxOrder bounds the Butterworth order any stage accepts.
const MaxOrder = 32

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the demonstration defaults: a 5 Hz pulse over one
// second at 2000 samples, filtered at 15 Hz with a 4th-order Butterworth.
func DefaultConfig() Config {
	return Config{
		Frequency:     5,
		Duration:      1,
		SampleRate:    2000,
		NoiseLevel:    0.2,
		JitterAmount:  0.01,
		Cutoff:        15,
		Order:         4,
		Contamination: 0.05,
		Seed:          1,
	}
}

// WithFrequency sets the pulse frequency.
func WithFrequency(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.Frequency = hz
		}
	}
}

// WithDuration sets the signal duration.
func WithDuration(seconds float64) Option {
	return func(cfg *Config) {
		if seconds > 0 {
			cfg.Duration = seconds
		}
	}
}

// WithSampleRate sets the sampling rate used by both synthesis and filtering.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithNoiseLevel sets the additive noise std-dev.
func WithNoiseLevel(level float64) Option {
	return func(cfg *Config) {
		if level >= 0 {
			cfg.NoiseLevel = level
		}
	}
}

// WithJitter sets the timing jitter std-dev in seconds.
func WithJitter(seconds float64) Option {
	return func(cfg *Config) {
		if seconds >= 0 {
			cfg.JitterAmount = seconds
		}
	}
}

// WithCutoff sets the low-pass cutoff.
func WithCutoff(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.Cutoff = hz
		}
	}
}

// WithOrder sets the Butterworth order.
func WithOrder(order int) Option {
	return func(cfg *Config) {
		if order > 0 {
			cfg.Order = order
		}
	}
}

// WithContamination sets the expected anomaly fraction.
func WithContamination(fraction float64) Option {
	return func(cfg *Config) {
		if fraction > 0 && fraction < 1 {
			cfg.Contamination = fraction
		}
	}
}

// WithSeed sets the random seed for synthesis.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
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

// Nyquist returns half the sample rate.
func (c Config) Nyquist() float64 {
	return c.SampleRate / 2
}

// Validate checks every field and returns an error wrapping
// ErrInvalidParameter for the first violation found.
func (c Config) Validate() error {
	switch {
	case !IsFinite(c.Frequency) || c.Frequency <= 0:
		return InvalidParameter("frequency must be > 0: %v", c.Frequency)
	case !IsFinite(c.Duration) || c.Duration <= 0:
		return InvalidParameter("duration must be > 0: %v", c.Duration)
	case !IsFinite(c.SampleRate) || c.SampleRate <= 0:
		return InvalidParameter("sample rate must be > 0: %v", c.SampleRate)
	case c.SampleRate != math.Trunc(c.SampleRate):
		return InvalidParameter("sample rate must be a whole sample count: %v", c.SampleRate)
	case !IsFinite(c.NoiseLevel) || c.NoiseLevel < 0:
		return InvalidParameter("noise level must be >= 0: %v", c.NoiseLevel)
	case !IsFinite(c.JitterAmount) || c.JitterAmount < 0:
		return InvalidParameter("jitter amount must be >= 0: %v", c.JitterAmount)
	case !IsFinite(c.Cutoff) || c.Cutoff <= 0:
		return InvalidParameter("cutoff must be > 0: %v", c.Cutoff)
	case c.Cutoff >= c.Nyquist():
		return InvalidParameter("cutoff %v Hz must be below nyquist %v Hz", c.Cutoff, c.Nyquist())
	case c.Order < 1 || c.Order > MaxOrder:
		return InvalidParameter("order must be in [1, %d]: %d", MaxOrder, c.Order)
	case !IsFinite(c.Contamination) || c.Contamination <= 0 || c.Contamination >= 1:
		return InvalidParameter("contamination must be in (0,1): %v", c.Contamination)
	}
	return nil
}
