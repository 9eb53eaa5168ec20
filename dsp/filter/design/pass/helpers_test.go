package pass

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/filter/biquad"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func cascadeMagDB(sections []biquad.Coefficients, freq, sr float64) float64 {
	h := complex(1, 0)
	for _, s := range sections {
		h *= s.Response(freq, sr)
	}
	return 20 * math.Log10(cmplx.Abs(h))
}

func assertFiniteCoefficients(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	v := []float64{c.B0, c.B1, c.B2, c.A1, c.A2}
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			t.Fatalf("invalid coefficient[%d]=%v", i, v[i])
		}
	}
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	p := c.Poles()
	if cmplx.Abs(p[0]) >= 1+tol || cmplx.Abs(p[1]) >= 1+tol {
		t.Fatalf("unstable poles: |p1|=%v |p2|=%v coeff=%#v", cmplx.Abs(p[0]), cmplx.Abs(p[1]), c)
	}
}
