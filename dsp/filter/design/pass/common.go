package pass

import (
	"math"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/filter/biquad"
)

// bilinearK computes the prewarped analog cutoff tan(π*freq/sampleRate).
// Returns (0, false) unless 0 < freq < sampleRate/2.
func bilinearK(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}
	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) {
		return 0, false
	}

	return math.Tan(math.Pi * freq / sampleRate), true
}

// butterworthQ returns the quality factor of the index-th conjugate pole
// pair of an order-n Butterworth prototype, index in [0, order/2).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

// secondOrderLP maps wc^2 / (s^2 + (wc/q) s + wc^2) through s = (1-z^-1)/(1+z^-1).
func secondOrderLP(k, q float64) biquad.Coefficients {
	k2 := k * k
	a0 := 1 + k/q + k2

	return biquad.Coefficients{
		B0: k2 / a0,
		B1: 2 * k2 / a0,
		B2: k2 / a0,
		A1: 2 * (k2 - 1) / a0,
		A2: (1 - k/q + k2) / a0,
	}
}

// firstOrderLP maps wc / (s + wc) through the bilinear transform.
func firstOrderLP(k float64) biquad.Coefficients {
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}
