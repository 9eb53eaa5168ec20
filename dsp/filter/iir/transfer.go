package iir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/conv"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/filter/biquad"
	"github.com/rominafarhad/pulse-ai-analyzer/internal/polyroot"
)

// Transfer is a rational transfer function in powers of z^-1:
//
//	H(z) = (B[0] + B[1] z^-1 + ...) / (A[0] + A[1] z^-1 + ...)
type Transfer struct {
	B []float64 // feedforward
	A []float64 // feedback
}

// FromSections multiplies the section polynomials of a cascade into one
// transfer function scaled by gain. First-order sections contribute degree
// one, so an order-n design yields n+1 coefficients in B and A.
func FromSections(sections []biquad.Coefficients, gain float64) (Transfer, error) {
	if len(sections) == 0 {
		return Transfer{}, core.InvalidParameter("no sections")
	}

	b := []float64{gain}
	a := []float64{1}
	for i, s := range sections {
		num, den := s.Numerator(), s.Denominator()
		if s.IsFirstOrder() {
			num, den = num[:2], den[:2]
		}

		var err error
		if b, err = conv.Direct(b, num); err != nil {
			return Transfer{}, fmt.Errorf("iir: section %d numerator: %w", i, err)
		}
		if a, err = conv.Direct(a, den); err != nil {
			return Transfer{}, fmt.Errorf("iir: section %d denominator: %w", i, err)
		}
	}
	return Transfer{B: b, A: a}, nil
}

// Order returns the larger polynomial degree of B and A.
func (t Transfer) Order() int {
	return max(len(t.B), len(t.A)) - 1
}

// Validate reports whether t can be run by Filter.
func (t Transfer) Validate() error {
	if len(t.B) == 0 || len(t.A) == 0 {
		return core.InvalidParameter("empty coefficient vector (len(b)=%d, len(a)=%d)", len(t.B), len(t.A))
	}
	if t.A[0] == 0 {
		return core.InvalidParameter("a[0] must be non-zero")
	}
	if !core.IsFinite(t.B...) || !core.IsFinite(t.A...) {
		return core.InvalidParameter("coefficients must be finite")
	}
	return nil
}

// Filter runs x through the transfer function in Direct Form II Transposed
// with zero initial conditions and returns a new slice of len(x). The
// coefficients are normalized by A[0].
func (t Transfer) Filter(x []float64) ([]float64, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	n := t.Order() + 1
	b := make([]float64, n)
	a := make([]float64, n)
	a0 := t.A[0]
	for i, v := range t.B {
		b[i] = v / a0
	}
	for i, v := range t.A {
		a[i] = v / a0
	}

	y := make([]float64, len(x))
	if n == 1 {
		for i, v := range x {
			y[i] = b[0] * v
		}
		return y, nil
	}

	z := make([]float64, n-1)
	last := n - 2
	for i, v := range x {
		out := b[0]*v + z[0]
		for k := 0; k < last; k++ {
			z[k] = b[k+1]*v + z[k+1] - a[k+1]*out
		}
		z[last] = b[n-1]*v - a[n-1]*out
		y[i] = out
	}
	return y, nil
}

// Response evaluates H(e^jw) at freqHz.
func (t Transfer) Response(freqHz, sampleRate float64) complex128 {
	zInv := cmplx.Exp(complex(0, -2*math.Pi*freqHz/sampleRate))
	return horner(t.B, zInv) / horner(t.A, zInv)
}

// MagnitudeDB returns 20*log10|H(f)|.
func (t Transfer) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(t.Response(freqHz, sampleRate)))
}

// DCGain returns sum(B) / sum(A).
func (t Transfer) DCGain() float64 {
	var sb, sa float64
	for _, v := range t.B {
		sb += v
	}
	for _, v := range t.A {
		sa += v
	}
	return sb / sa
}

// Poles returns the z-plane roots of A.
func (t Transfer) Poles() ([]complex128, error) {
	return roots("a", t.A)
}

// Zeros returns the z-plane roots of B.
func (t Transfer) Zeros() ([]complex128, error) {
	return roots("b", t.B)
}

// Stable reports whether every pole lies strictly inside the unit circle.
func (t Transfer) Stable() (bool, error) {
	p, err := t.Poles()
	if err != nil {
		return false, err
	}
	return polyroot.MaxAbs(p) < 1, nil
}

// roots treats coefficients in powers of z^-1 as a polynomial in z.
func roots(name string, c []float64) ([]complex128, error) {
	if len(c) < 2 {
		return nil, nil
	}
	r, err := polyroot.Real(c)
	if err != nil {
		return nil, fmt.Errorf("iir: roots of %s: %w", name, err)
	}
	return r, nil
}

func horner(p []float64, zInv complex128) complex128 {
	var acc complex128
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*zInv + complex(p[i], 0)
	}
	return acc
}
