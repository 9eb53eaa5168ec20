package spectrum

import (
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/window"
)

// Spectrum is a one-sided power spectrum. Freqs[k] is the centre of bin k
// and Power[k] its share of the signal's mean-square value.
type Spectrum struct {
	SampleRate float64
	FFTSize    int
	Window     window.Type
	Freqs      []float64
	Magnitude  []float64
	Power      []float64

	// NoiseBandwidth is the window's equivalent noise bandwidth in Hz.
	NoiseBandwidth float64
}

// Analyze computes the spectrum of x sampled at sampleRate with the given
// window. The FFT size is the next power of two >= len(x).
func Analyze(x []float64, sampleRate float64, win window.Type) (*Spectrum, error) {
	if len(x) < 2 {
		return nil, core.InvalidParameter("spectrum needs at least 2 samples: %d", len(x))
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, core.InvalidParameter("spectrum sample rate must be > 0: %v", sampleRate)
	}
	if !core.IsFinite(x...) {
		return nil, core.InvalidParameter("spectrum input must be finite")
	}

	coeffs := window.Generate(win, len(x))
	windowed, err := window.ApplyCoefficients(x, coeffs)
	if err != nil {
		return nil, err
	}

	fftSize := NextPowerOfTwo(len(x))
	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan of size %d: %w", fftSize, err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	sumSquares := 0.0
	for _, c := range coeffs {
		sumSquares += c * c
	}

	half := fftSize/2 + 1
	bins := out[:half]
	power := Power(bins)
	scale := 1 / (float64(fftSize) * sumSquares)
	for k := range power {
		power[k] *= scale
		if k > 0 && k < fftSize/2 {
			power[k] *= 2
		}
	}

	freqs := make([]float64, half)
	df := sampleRate / float64(fftSize)
	for k := range freqs {
		freqs[k] = float64(k) * df
	}

	enbw, err := window.EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return nil, err
	}

	return &Spectrum{
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Window:     win,
		Freqs:      freqs,
		Magnitude:  Magnitude(bins),
		Power:      power,

		NoiseBandwidth: enbw * df,
	}, nil
}

// BinWidth returns the frequency spacing of the bins in Hz.
func (s *Spectrum) BinWidth() float64 {
	return s.SampleRate / float64(s.FFTSize)
}

// BandPower sums the bin powers with lo <= f <= hi.
func (s *Spectrum) BandPower(lo, hi float64) (float64, error) {
	if !core.IsFinite(lo, hi) || lo < 0 || hi < lo {
		return 0, core.InvalidParameter("band must satisfy 0 <= lo <= hi: [%g, %g]", lo, hi)
	}
	sum := 0.0
	for k, f := range s.Freqs {
		if f >= lo && f <= hi {
			sum += s.Power[k]
		}
	}
	return sum, nil
}

// BandPowerDB returns BandPower in dB.
func (s *Spectrum) BandPowerDB(lo, hi float64) (float64, error) {
	p, err := s.BandPower(lo, hi)
	if err != nil {
		return 0, err
	}
	return core.LinearPowerToDB(p), nil
}

// Total returns the summed power of all bins.
func (s *Spectrum) Total() float64 {
	sum := 0.0
	for _, p := range s.Power {
		sum += p
	}
	return sum
}

// Peak returns the frequency and power of the strongest bin above DC.
func (s *Spectrum) Peak() (freq, power float64) {
	best := 1
	for k := 2; k < len(s.Power); k++ {
		if s.Power[k] > s.Power[best] {
			best = k
		}
	}
	return s.Freqs[best], s.Power[best]
}

// NextPowerOfTwo returns the smallest power of two >= n, or 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
