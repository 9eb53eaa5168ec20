// Package polyroot finds the roots of real polynomials, used to recover the
// poles and zeros of folded transfer functions.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned for a zero leading coefficient, fewer
// than two coefficients, or an iteration that fails to converge.
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

const (
	maxIter  = 500
	stepTol  = 1e-14
	residTol = 1e-6
)

// Real returns the roots of c[0]*z^n + ... + c[n]. Trailing zero
// coefficients yield exact roots at the origin.
func Real(c []float64) ([]complex128, error) {
	if len(c) < 2 || c[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}

	origin := 0
	for len(c) > 1 && c[len(c)-1] == 0 {
		c = c[:len(c)-1]
		origin++
	}
	roots := make([]complex128, origin, origin+len(c)-1)
	if len(c) == 1 {
		return roots, nil
	}

	monic := make([]float64, len(c))
	for i, v := range c {
		monic[i] = v / c[0]
	}
	found, err := aberth(monic)
	if err != nil {
		return nil, err
	}
	return append(roots, found...), nil
}

// aberth runs the Aberth-Ehrlich simultaneous iteration on a monic
// polynomial.
func aberth(p []float64) ([]complex128, error) {
	n := len(p) - 1
	z := initialGuess(p)

	for range maxIter {
		var worst float64
		for k := range z {
			v, dv := Eval(p, z[k])
			if v == 0 {
				continue
			}
			var repel complex128
			for j := range z {
				if j != k {
					repel += 1 / (z[k] - z[j])
				}
			}
			ratio := v / dv
			step := ratio / (1 - ratio*repel)
			if cmplx.IsNaN(step) || cmplx.IsInf(step) {
				z[k] += complex(1e-8, 1e-8)
				worst = math.Inf(1)
				continue
			}
			z[k] -= step
			worst = math.Max(worst, cmplx.Abs(step)/math.Max(1, cmplx.Abs(z[k])))
		}
		if worst < stepTol {
			break
		}
	}

	scale := 1.0
	for _, a := range p {
		scale = math.Max(scale, math.Abs(a))
	}
	for _, r := range z {
		if v, _ := Eval(p, r); cmplx.Abs(v) > residTol*scale*math.Max(1, math.Pow(cmplx.Abs(r), float64(n))) {
			return nil, ErrDegeneratePolynomial
		}
	}
	return z, nil
}

// initialGuess spreads n points on a circle of the Cauchy-bound radius,
// rotated off the real axis so conjugate pairs can separate.
func initialGuess(p []float64) []complex128 {
	n := len(p) - 1
	bound := 0.0
	for _, a := range p[1:] {
		bound = math.Max(bound, math.Abs(a))
	}
	radius := math.Max(0.5, math.Min(1+bound, 2))

	z := make([]complex128, n)
	for k := range z {
		theta := (2*math.Pi*float64(k) + 0.4) / float64(n)
		z[k] = cmplx.Rect(radius, theta)
	}
	return z
}

// Eval returns p(x) and p'(x) for descending-order coefficients.
func Eval(p []float64, x complex128) (v, dv complex128) {
	for _, a := range p {
		dv = dv*x + v
		v = v*x + complex(a, 0)
	}
	return v, dv
}

// MaxAbs returns the largest root magnitude, or 0 for no roots.
func MaxAbs(roots []complex128) float64 {
	m := 0.0
	for _, r := range roots {
		m = math.Max(m, cmplx.Abs(r))
	}
	return m
}
