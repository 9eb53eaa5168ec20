package testutil

import "math/rand"

// GaussianNoise returns n samples of N(0, std) from a fixed seed.
func GaussianNoise(seed int64, std float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = std * rng.NormFloat64()
	}
	return out
}

// WithSpikes returns a copy of x with x[i] replaced by v for every entry of
// spikes.
func WithSpikes(x []float64, spikes map[int]float64) []float64 {
	out := append([]float64(nil), x...)
	for i, v := range spikes {
		out[i] = v
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
