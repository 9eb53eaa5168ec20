package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeFlatTop
)

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
	flatTopCoeffs  = []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368}
)

var names = map[Type]string{
	TypeRectangular: "Rectangular",
	TypeHann:        "Hann",
	TypeHamming:     "Hamming",
	TypeBlackman:    "Blackman",
	TypeFlatTop:     "FlatTop",
}

// String returns the window name.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a case-insensitive window name.
func ParseType(name string) (Type, error) {
	for t, n := range names {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	return 0, core.InvalidParameter("unknown window %q", name)
}

// Option adjusts Generate.
type Option func(*options)

type options struct {
	periodic bool
}

// WithPeriodic selects the DFT-even form.
func WithPeriodic() Option {
	return func(o *options) { o.periodic = true }
}

// Generate returns window coefficients of the given length, or nil when
// length <= 0.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	terms := cosineTerms(t)
	w := make([]float64, length)
	for i := range w {
		w[i] = cosineSum(samplePosition(i, length, o.periodic), terms)
	}
	return w
}

// ApplyCoefficients returns samples[i]*coeffs[i] in a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, core.ShapeMismatch("window coefficients", len(samples), len(coeffs))
	}
	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)
	return out, nil
}

// EquivalentNoiseBandwidth returns N*sum(w^2)/sum(w)^2, the width in bins of
// the rectangular filter passing the same white-noise power.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, core.InvalidParameter("window coefficients must not be empty")
	}
	var s1, s2 float64
	for _, w := range coeffs {
		s1 += w
		s2 += w * w
	}
	if s1 == 0 {
		return 0, core.InvalidParameter("window sums to zero")
	}
	return float64(len(coeffs)) * s2 / (s1 * s1), nil
}

func cosineTerms(t Type) []float64 {
	switch t {
	case TypeHann:
		return hannCoeffs
	case TypeHamming:
		return hammingCoeffs
	case TypeBlackman:
		return blackmanCoeffs
	case TypeFlatTop:
		return flatTopCoeffs
	default:
		return nil
	}
}

// cosineSum evaluates sum c[k] cos(2 pi k x); no terms means rectangular.
func cosineSum(x float64, coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 1
	}
	var v float64
	for k, c := range coeffs {
		v += c * math.Cos(2*math.Pi*float64(k)*x)
	}
	return v
}

// samplePosition maps index n to [0, 1]; the periodic form stops one step
// short of 1.
func samplePosition(n, size int, periodic bool) float64 {
	switch {
	case size <= 1:
		return 0
	case periodic:
		return float64(n) / float64(size)
	default:
		return float64(n) / float64(size-1)
	}
}
