package testutil

import (
	"errors"
	"math"
	"testing"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 3})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if d != 0.5 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}
	if _, err := MaxAbsDiff([]float64{1}, nil); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestGaussianNoiseDeterministic(t *testing.T) {
	a := GaussianNoise(7, 0.5, 256)
	b := GaussianNoise(7, 0.5, 256)
	RequireSliceNearlyEqual(t, a, b, 0)
	RequireFinite(t, a)

	var sq float64
	for _, v := range a {
		sq += v * v
	}
	if rms := math.Sqrt(sq / float64(len(a))); math.Abs(rms-0.5) > 0.1 {
		t.Fatalf("rms = %v, want about 0.5", rms)
	}
}

func TestWithSpikesCopies(t *testing.T) {
	x := []float64{0, 0, 0}
	y := WithSpikes(x, map[int]float64{1: 9})
	if x[1] != 0 || y[1] != 9 {
		t.Fatalf("x = %v, y = %v", x, y)
	}
}

func TestImpulse(t *testing.T) {
	RequireSliceNearlyEqual(t, Impulse(4, 2), []float64{0, 0, 1, 0}, 0)
	RequireSliceNearlyEqual(t, Impulse(2, 5), []float64{0, 0}, 0)
}
