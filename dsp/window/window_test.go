package window

import (
	"errors"
	"math"
	"testing"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

func TestGenerateSymmetric(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman, TypeFlatTop} {
		w := Generate(typ, 33)
		for i := range w {
			j := len(w) - 1 - i
			if math.Abs(w[i]-w[j]) > 1e-12 {
				t.Fatalf("%s: w[%d]=%v w[%d]=%v", typ, i, w[i], j, w[j])
			}
		}
		if math.Abs(w[16]-maxOf(w)) > 1e-12 {
			t.Fatalf("%s: center %v is not the peak %v", typ, w[16], maxOf(w))
		}
	}
}

func TestGenerateHannEndpoints(t *testing.T) {
	w := Generate(TypeHann, 9)
	if math.Abs(w[0]) > 1e-12 || math.Abs(w[8]) > 1e-12 {
		t.Fatalf("endpoints = %v, %v, want 0", w[0], w[8])
	}
	if math.Abs(w[4]-1) > 1e-12 {
		t.Fatalf("center = %v, want 1", w[4])
	}
}

func TestGeneratePeriodic(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())
	if math.Abs(w[0]) > 1e-12 {
		t.Fatalf("w[0] = %v, want 0", w[0])
	}
	if math.Abs(w[4]-1) > 1e-12 {
		t.Fatalf("w[4] = %v, want 1", w[4])
	}
	if w[7] == 0 {
		t.Fatal("periodic window should not end at zero")
	}
}

func TestGenerateRectangularAndInvalid(t *testing.T) {
	for _, v := range Generate(TypeRectangular, 5) {
		if v != 1 {
			t.Fatalf("rectangular coefficient = %v", v)
		}
	}
	if Generate(TypeHann, 0) != nil {
		t.Fatal("expected nil for zero length")
	}
	if w := Generate(TypeHann, 1); len(w) != 1 {
		t.Fatalf("len = %d, want 1", len(w))
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{1, 2, 3}, []float64{0.5, 0.5, 2})
	if err != nil {
		t.Fatalf("ApplyCoefficients() error = %v", err)
	}
	if out[0] != 0.5 || out[1] != 1 || out[2] != 6 {
		t.Fatalf("out = %v", out)
	}
	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestENBW(t *testing.T) {
	w := Generate(TypeHann, 4096, WithPeriodic())
	enbw, err := EquivalentNoiseBandwidth(w)
	if err != nil {
		t.Fatalf("EquivalentNoiseBandwidth() error = %v", err)
	}
	if math.Abs(enbw-1.5) > 1e-6 {
		t.Fatalf("ENBW = %v, want 1.5", enbw)
	}

	if _, err := EquivalentNoiseBandwidth(nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
	if _, err := EquivalentNoiseBandwidth([]float64{1, -1}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestParseType(t *testing.T) {
	for typ, name := range names {
		got, err := ParseType(name)
		if err != nil || got != typ {
			t.Fatalf("ParseType(%q) = %v, %v", name, got, err)
		}
	}
	if got, err := ParseType("hann"); err != nil || got != TypeHann {
		t.Fatalf("ParseType(hann) = %v, %v", got, err)
	}
	if _, err := ParseType("kaiser"); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
	if s := Type(99).String(); s != "Type(99)" {
		t.Fatalf("String() = %q", s)
	}
}

func maxOf(x []float64) float64 {
	m := math.Inf(-1)
	for _, v := range x {
		m = math.Max(m, v)
	}
	return m
}
