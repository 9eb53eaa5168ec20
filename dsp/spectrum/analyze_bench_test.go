package spectrum

import (
	"testing"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/window"
)

func BenchmarkAnalyze2000(b *testing.B) {
	x := make([]float64, 2000)
	for i := range x {
		x[i] = float64(i%40) / 40
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Analyze(x, 2000, window.TypeHann); err != nil {
			b.Fatal(err)
		}
	}
}
