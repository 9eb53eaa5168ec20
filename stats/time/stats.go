package time

import (
	"math"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int     `json:"length"`
	Mean          float64 `json:"mean"`
	Variance      float64 `json:"variance"` // population variance
	StdDev        float64 `json:"std_dev"`
	RMS           float64 `json:"rms"`
	Min           float64 `json:"min"`
	MinPos        int     `json:"min_pos"`
	Max           float64 `json:"max"`
	MaxPos        int     `json:"max_pos"`
	Peak          float64 `json:"peak"`         // max(|max|, |min|)
	CrestFactor   float64 `json:"crest_factor"` // peak / RMS
	Skewness      float64 `json:"skewness"`
	Kurtosis      float64 `json:"kurtosis"` // excess
	ZeroCrossings int     `json:"zero_crossings"`
}

// RMSdB returns the RMS level in dB relative to 1.
func (s Stats) RMSdB() float64 {
	return core.LinearToDB(s.RMS)
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for the central moments. An empty signal yields the zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var mean, m2, m3, m4, sumSq float64
	maxVal, minVal := signal[0], signal[0]
	var maxPos, minPos, crossings int

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 before M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if x > maxVal {
			maxVal, maxPos = x, i
		}
		if x < minVal {
			minVal, minPos = x, i
		}
		if i > 0 && signal[i-1]*x < 0 {
			crossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))
	variance := m2 / nf

	var crest, skew, kurt float64
	if rms > 0 {
		crest = peak / rms
	}
	if variance > 0 {
		skew = (m3 / nf) / (variance * math.Sqrt(variance))
		kurt = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:        n,
		Mean:          mean,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		RMS:           rms,
		Min:           minVal,
		MinPos:        minPos,
		Max:           maxVal,
		MaxPos:        maxPos,
		Peak:          peak,
		CrestFactor:   crest,
		Skewness:      skew,
		Kurtosis:      kurt,
		ZeroCrossings: crossings,
	}
}

// Residual returns a - b sample by sample.
func Residual(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, core.ShapeMismatch("residual", len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// FractionEqual returns the share of samples exactly equal to v, or 0 for an
// empty signal.
func FractionEqual(signal []float64, v float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	count := 0
	for _, x := range signal {
		if x == v {
			count++
		}
	}
	return float64(count) / float64(len(signal))
}

// SNRdB returns 10*log10(P_signal / P_noise) from the mean-square values of
// the two signals.
func SNRdB(signal, noise []float64) (float64, error) {
	if len(signal) == 0 || len(noise) == 0 {
		return 0, core.InvalidParameter("snr needs non-empty signal and noise")
	}
	ps := Calculate(signal).RMS
	pn := Calculate(noise).RMS
	if pn == 0 {
		return math.Inf(1), nil
	}
	return 20 * math.Log10(ps/pn), nil
}
