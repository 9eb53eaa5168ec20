package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rominafarhad/pulse-ai-analyzer/internal/plot"
	"github.com/rominafarhad/pulse-ai-analyzer/measure/anomaly"
)

// ErrUnknownFigure is returned by Figure for an unregistered name.
var ErrUnknownFigure = errors.New("pipeline: unknown figure")

const (
	timeLabel      = "Time [s]"
	amplitudeLabel = "Amplitude [V]"
)

var figures = map[string]func(*Result) (*plot.Figure, error){
	"generate": GeneratorFigure,
	"filter":   FilterFigure,
	"detect":   DetectorFigure,
}

// FigureNames lists the registered figure names in sorted order.
func FigureNames() []string {
	names := make([]string, 0, len(figures))
	for n := range figures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Figure builds the named figure from r.
func Figure(name string, r *Result) (*plot.Figure, error) {
	build, ok := figures[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFigure, name)
	}
	return build(r)
}

// GeneratorFigure overlays the noisy and the ideal pulse.
func GeneratorFigure(r *Result) (*plot.Figure, error) {
	p := r.Pulse
	return &plot.Figure{
		Name:   "generate",
		Title:  "Advanced Digital Pulse Analysis - Signal & Systems Project",
		Width:  12,
		Height: 6,
		Panels: []plot.Panel{{
			Title:      "Advanced Digital Pulse Analysis - Signal & Systems Project",
			XLabel:     timeLabel,
			YLabel:     amplitudeLabel,
			Grid:       true,
			DashedGrid: true,
			Legend:     true,
			Series: []plot.Series{
				{Label: "Real-world Noisy Signal (EMI)", Color: "red", Alpha: 0.5, X: p.Time, Y: p.Noisy},
				{Label: "Ideal Digital Logic (Theory)", Color: "blue", Width: 2, X: p.Time, Y: p.Clean},
			},
		}},
	}, nil
}

// FilterFigure shows the noisy input above the filtered output and the
// ideal reference.
func FilterFigure(r *Result) (*plot.Figure, error) {
	p := r.Pulse
	return &plot.Figure{
		Name:   "filter",
		Title:  "Butterworth Lowpass Filtering",
		Width:  12,
		Height: 7,
		Panels: []plot.Panel{
			{
				Title:  "Before Processing: Raw Sensor Data with EMI",
				Grid:   true,
				Legend: true,
				Series: []plot.Series{
					{Label: "Noisy Input", Color: "red", Alpha: 0.4, X: p.Time, Y: p.Noisy},
				},
			},
			{
				Title:  "After DSP: Cleaned Signal using Butterworth Lowpass Filter",
				XLabel: timeLabel,
				Grid:   true,
				Legend: true,
				Series: []plot.Series{
					{Label: "Filtered Output", Color: "green", Width: 2, X: p.Time, Y: r.Filtered},
					{Label: "Original Ideal Reference", Color: "blue", Kind: plot.KindDashed, Alpha: 0.5, X: p.Time, Y: p.Clean},
				},
			},
		},
	}, nil
}

// DetectorFigure marks the labelled anomalies on the noisy signal.
func DetectorFigure(r *Result) (*plot.Figure, error) {
	p := r.Pulse
	ts, xs, err := anomaly.Select(p.Time, p.Noisy, r.Labels)
	if err != nil {
		return nil, err
	}
	return &plot.Figure{
		Name:   "detect",
		Title:  "AI-Powered Signal Anomaly Detection",
		Width:  12,
		Height: 6,
		Panels: []plot.Panel{{
			Title:  "AI-Powered Signal Anomaly Detection",
			XLabel: timeLabel,
			YLabel: amplitudeLabel,
			Grid:   true,
			Legend: true,
			Series: []plot.Series{
				{Label: "Original Noisy Signal", Color: "gray", Alpha: 0.5, X: p.Time, Y: p.Noisy},
				{Label: "AI Detected Anomalies", Color: "red", Kind: plot.KindScatter, Width: 1.6, X: ts, Y: xs},
			},
		}},
	}, nil
}
