package signal

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

const defaultSeed = 1

// Generator synthesizes signals from an explicit random stream.
//
// Successive calls consume the same stream, so two pulses drawn from one
// generator differ while two generators with the same seed agree.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng    *rand.Rand
	seed   int64
	seeded bool // false once the stream comes from WithRand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed seeds the generator's random stream.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.SetSeed(seed)
	}
}

// WithRand makes the generator draw from r. The caller keeps ownership of
// the stream and may share it between generators that run sequentially.
// The seed of r is unknown to the generator, so Seed reports false.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
			g.seed, g.seeded = 0, false
		}
	}
}

// NewGenerator creates a generator seeded with 1 unless an option says otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	g.SetSeed(defaultSeed)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// NewGeneratorFromConfig creates a generator seeded from cfg.Seed.
func NewGeneratorFromConfig(cfg core.Config) *Generator {
	return NewGenerator(WithSeed(cfg.Seed))
}

// Seed returns the seed the stream was last reset with. ok is false when
// the stream was supplied through WithRand.
func (g *Generator) Seed() (seed int64, ok bool) {
	return g.seed, g.seeded
}

// SetSeed resets the random stream.
func (g *Generator) SetSeed(seed int64) {
	g.seed, g.seeded = seed, true
	g.rng = rand.New(rand.NewSource(seed))
}

// Pulse is one synthesized square pulse train.
type Pulse struct {
	Time  []float64 // unperturbed sample grid (s)
	Clean []float64 // ideal logic levels, 0 or 1
	Noisy []float64 // Clean plus Gaussian noise
}

// Len returns the number of samples.
func (p Pulse) Len() int {
	return len(p.Time)
}

// ComplexPulse synthesizes a square pulse with timing jitter and additive noise.
//
// sampleRate is the whole number of samples spread over [0, duration],
// endpoints included. The square wave is evaluated at timestamps perturbed by
// N(0, jitterAmount) while the returned Time is the unperturbed grid.
// Jitter is drawn before noise so a seeded stream reproduces both.
func (g *Generator) ComplexPulse(frequency, duration, sampleRate, noiseLevel, jitterAmount float64) (Pulse, error) {
	if err := validatePulse(frequency, duration, sampleRate, noiseLevel, jitterAmount); err != nil {
		return Pulse{}, err
	}

	n := int(sampleRate)
	t := TimeGrid(duration, n)

	clean := make([]float64, n)
	w := 2 * math.Pi * frequency
	for i, ti := range t {
		tj := ti + g.rng.NormFloat64()*jitterAmount
		if math.Sin(w*tj) > 0 {
			clean[i] = 1
		}
	}

	noise := g.normal(noiseLevel, n)
	noisy := make([]float64, n)
	copy(noisy, clean)
	vecmath.AddBlockInPlace(noisy, noise)

	return Pulse{Time: t, Clean: clean, Noisy: noisy}, nil
}

// PulseFromConfig synthesizes a pulse from the shared configuration.
func (g *Generator) PulseFromConfig(cfg core.Config) (Pulse, error) {
	return g.ComplexPulse(cfg.Frequency, cfg.Duration, cfg.SampleRate, cfg.NoiseLevel, cfg.JitterAmount)
}

// GaussianNoise draws n samples from N(0, std).
func (g *Generator) GaussianNoise(std float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, core.InvalidParameter("noise samples must be > 0: %d", n)
	}
	if !core.IsFinite(std) || std < 0 {
		return nil, core.InvalidParameter("noise std-dev must be >= 0: %v", std)
	}
	return g.normal(std, n), nil
}

func (g *Generator) normal(std float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.rng.NormFloat64() * std
	}
	return out
}

// TimeGrid returns n evenly spaced timestamps over [0, duration], both
// endpoints included. A single sample sits at 0.
func TimeGrid(duration float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		return out
	}

	step := duration / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[n-1] = duration
	return out
}

// Sine generates n samples of a sine wave at sampleRate.
func Sine(freqHz, amplitude, sampleRate float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, core.InvalidParameter("sine samples must be > 0: %d", n)
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, core.InvalidParameter("sine sample rate must be > 0: %v", sampleRate)
	}
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Constant returns n samples of value.
func Constant(value float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, core.InvalidParameter("constant samples must be > 0: %d", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out, nil
}

func validatePulse(frequency, duration, sampleRate, noiseLevel, jitterAmount float64) error {
	switch {
	case !core.IsFinite(frequency) || frequency <= 0:
		return core.InvalidParameter("pulse frequency must be > 0: %v", frequency)
	case !core.IsFinite(duration) || duration <= 0:
		return core.InvalidParameter("pulse duration must be > 0: %v", duration)
	case !core.IsFinite(sampleRate) || sampleRate <= 0:
		return core.InvalidParameter("pulse sample rate must be > 0: %v", sampleRate)
	case sampleRate != math.Trunc(sampleRate):
		return core.InvalidParameter("pulse sample rate must be a whole sample count: %v", sampleRate)
	case !core.IsFinite(noiseLevel) || noiseLevel < 0:
		return core.InvalidParameter("noise level must be >= 0: %v", noiseLevel)
	case !core.IsFinite(jitterAmount) || jitterAmount < 0:
		return core.InvalidParameter("jitter amount must be >= 0: %v", jitterAmount)
	}
	return nil
}
