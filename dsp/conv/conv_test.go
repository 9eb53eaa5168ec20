package conv

import (
	"errors"
	"math"
	"testing"
)

func TestDirectShortKernel(t *testing.T) {
	got, err := Direct([]float64{1, 2, 3}, []float64{1, 1})
	if err != nil {
		t.Fatalf("Direct() error = %v", err)
	}
	want := []float64{1, 3, 5, 3}
	assertSlice(t, got, want)
}

func TestDirectLongKernelMatchesScalar(t *testing.T) {
	a := []float64{0.5, -1, 2, 0.25, 3}
	b := []float64{1, 2, 3, 4, 5, 6}

	got, err := Direct(a, b)
	if err != nil {
		t.Fatalf("Direct() error = %v", err)
	}

	want := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			want[i+j] += a[i] * b[j]
		}
	}
	assertSlice(t, got, want)
}

func TestDirectPolynomialProduct(t *testing.T) {
	// (1 + z)^2 (1 + z) = 1 + 3z + 3z^2 + z^3
	sq, err := Direct([]float64{1, 1}, []float64{1, 1})
	if err != nil {
		t.Fatalf("Direct() error = %v", err)
	}
	cube, err := Direct(sq, []float64{1, 1})
	if err != nil {
		t.Fatalf("Direct() error = %v", err)
	}
	assertSlice(t, cube, []float64{1, 3, 3, 1})
}

func TestDirectEmpty(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("error = %v, want ErrEmptyKernel", err)
	}
}

func TestDirectToClearsDestination(t *testing.T) {
	dst := []float64{9, 9, 9}
	DirectTo(dst, []float64{1, 2}, []float64{1, 0})
	assertSlice(t, dst, []float64{1, 2, 0})
}

func assertSlice(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
