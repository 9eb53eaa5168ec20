package core

import (
	"errors"
	"math"
	"testing"
)

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(
		WithFrequency(10),
		WithSampleRate(4000),
		WithCutoff(40),
		WithOrder(6),
		WithSeed(7),
	)
	if cfg.Frequency != 10 || cfg.SampleRate != 4000 || cfg.Cutoff != 40 || cfg.Order != 6 || cfg.Seed != 7 {
		t.Fatalf("unexpected cfg: %#v", cfg)
	}
	if cfg.Duration != 1 {
		t.Fatalf("duration = %v, want default 1", cfg.Duration)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyOptions(
		WithSampleRate(0),
		WithOrder(-1),
		WithNoiseLevel(-1),
		WithContamination(1.5),
		nil,
	)
	def := DefaultConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero frequency", func(c *Config) { c.Frequency = 0 }},
		{"negative duration", func(c *Config) { c.Duration = -1 }},
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"fractional sample rate", func(c *Config) { c.SampleRate = 1000.5 }},
		{"negative noise", func(c *Config) { c.NoiseLevel = -0.1 }},
		{"negative jitter", func(c *Config) { c.JitterAmount = -0.1 }},
		{"nan cutoff", func(c *Config) { c.Cutoff = math.NaN() }},
		{"cutoff at nyquist", func(c *Config) { c.Cutoff = c.SampleRate / 2 }},
		{"zero order", func(c *Config) { c.Order = 0 }},
		{"order above max", func(c *Config) { c.Order = MaxOrder + 1 }},
		{"zero contamination", func(c *Config) { c.Contamination = 0 }},
		{"full contamination", func(c *Config) { c.Contamination = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Validate() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestNyquist(t *testing.T) {
	if got := DefaultConfig().Nyquist(); got != 1000 {
		t.Fatalf("Nyquist() = %v, want 1000", got)
	}
}

func TestShapeMismatch(t *testing.T) {
	err := ShapeMismatch("x/y", 3, 4)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
	if errors.Is(err, ErrInvalidParameter) {
		t.Fatal("shape mismatch must not match ErrInvalidParameter")
	}
}
