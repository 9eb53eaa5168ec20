package time

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

func TestCalculateKnownValues(t *testing.T) {
	s := Calculate([]float64{1, -2, 3, -4})
	if s.Length != 4 {
		t.Fatalf("Length = %d", s.Length)
	}
	assertNear(t, "mean", s.Mean, -0.5)
	assertNear(t, "variance", s.Variance, 7.25)
	assertNear(t, "std", s.StdDev, math.Sqrt(7.25))
	assertNear(t, "rms", s.RMS, math.Sqrt(7.5))
	assertNear(t, "peak", s.Peak, 4)
	assertNear(t, "crest", s.CrestFactor, 4/math.Sqrt(7.5))
	if s.Max != 3 || s.MaxPos != 2 || s.Min != -4 || s.MinPos != 3 {
		t.Fatalf("extrema = %+v", s)
	}
	if s.ZeroCrossings != 3 {
		t.Fatalf("ZeroCrossings = %d, want 3", s.ZeroCrossings)
	}
}

func TestCalculateMomentsMatchTwoPass(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	x := make([]float64, 5000)
	for i := range x {
		x[i] = rng.ExpFloat64() + 10
	}
	s := Calculate(x)

	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	var m2, m3, m4 float64
	for _, v := range x {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	n := float64(len(x))
	variance := m2 / n
	assertNear(t, "mean", s.Mean, mean)
	assertNear(t, "variance", s.Variance, variance)
	assertNear(t, "skew", s.Skewness, (m3/n)/math.Pow(variance, 1.5))
	assertNear(t, "kurt", s.Kurtosis, (m4/n)/(variance*variance)-3)
}

func TestCalculateConstantAndEmpty(t *testing.T) {
	s := Calculate([]float64{2, 2, 2})
	if s.Variance != 0 || s.Skewness != 0 || s.Kurtosis != 0 {
		t.Fatalf("constant stats = %+v", s)
	}
	assertNear(t, "crest", s.CrestFactor, 1)

	if (Calculate(nil) != Stats{}) {
		t.Fatal("empty input should give zero Stats")
	}
	if Calculate([]float64{0, 0}).CrestFactor != 0 {
		t.Fatal("silent signal should have zero crest factor")
	}
}

func TestResidual(t *testing.T) {
	r, err := Residual([]float64{1, 2, 3}, []float64{0.5, 2, 4})
	if err != nil {
		t.Fatalf("Residual() error = %v", err)
	}
	want := []float64{0.5, 0, -1}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("r[%d] = %v, want %v", i, r[i], want[i])
		}
	}
	if _, err := Residual([]float64{1}, []float64{1, 2}); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("error = %v, want ErrShapeMismatch", err)
	}
}

func TestFractionEqual(t *testing.T) {
	if got := FractionEqual([]float64{0, 1, 1, 0}, 1); got != 0.5 {
		t.Fatalf("FractionEqual() = %v, want 0.5", got)
	}
	if got := FractionEqual(nil, 1); got != 0 {
		t.Fatalf("FractionEqual(nil) = %v", got)
	}
}

func TestSNRdB(t *testing.T) {
	got, err := SNRdB([]float64{2, -2}, []float64{0.2, -0.2})
	if err != nil {
		t.Fatalf("SNRdB() error = %v", err)
	}
	assertNear(t, "snr", got, 20)
	if got, _ := SNRdB([]float64{1}, []float64{0}); !math.IsInf(got, 1) {
		t.Fatalf("SNRdB with silent noise = %v", got)
	}
	if _, err := SNRdB(nil, []float64{1}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
		t.Fatalf("%s = %.12g, want %.12g", name, got, want)
	}
}
