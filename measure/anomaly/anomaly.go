package anomaly

import (
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

// Label marks a sample as normal or anomalous.
type Label int

const (
	// Anomaly marks an outlier sample.
	Anomaly Label = -1
	// Normal marks an inlier sample.
	Normal Label = 1
)

// String returns "anomaly" or "normal".
func (l Label) String() string {
	if l == Anomaly {
		return "anomaly"
	}
	return "normal"
}

// Classifier labels every sample of x.
type Classifier interface {
	Classify(x []float64) ([]Label, error)
}

// Count returns the number of anomalous labels.
func Count(labels []Label) int {
	n := 0
	for _, l := range labels {
		if l == Anomaly {
			n++
		}
	}
	return n
}

// Select returns the timestamps and values of the samples labelled as
// anomalies, in order.
func Select(t, x []float64, labels []Label) (ts, xs []float64, err error) {
	if len(t) != len(x) {
		return nil, nil, core.ShapeMismatch("anomaly time/value", len(t), len(x))
	}
	if len(x) != len(labels) {
		return nil, nil, core.ShapeMismatch("anomaly value/label", len(x), len(labels))
	}

	ts = make([]float64, 0, Count(labels))
	xs = make([]float64, 0, cap(ts))
	for i, l := range labels {
		if l == Anomaly {
			ts = append(ts, t[i])
			xs = append(xs, x[i])
		}
	}
	return ts, xs, nil
}
