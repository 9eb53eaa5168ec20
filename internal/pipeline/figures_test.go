package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
	"github.com/rominafarhad/pulse-ai-analyzer/internal/plot"
	"github.com/rominafarhad/pulse-ai-analyzer/measure/anomaly"
)

func runDefault(t *testing.T) *Result {
	t.Helper()
	res, err := Run(core.DefaultConfig())
	require.NoError(t, err)
	return res
}

func TestFigureNames(t *testing.T) {
	assert.Equal(t, []string{"detect", "filter", "generate"}, FigureNames())
}

func TestFiguresValidate(t *testing.T) {
	res := runDefault(t)
	for _, name := range FigureNames() {
		f, err := Figure(name, res)
		require.NoError(t, err, name)
		require.NoError(t, f.Validate(), name)
		assert.Equal(t, name, f.Name)
	}
}

func TestGeneratorFigure(t *testing.T) {
	res := runDefault(t)
	f, err := GeneratorFigure(res)
	require.NoError(t, err)
	require.Len(t, f.Panels, 1)

	s := f.Panels[0].Series
	require.Len(t, s, 2)
	assert.Equal(t, "red", s[0].Color)
	assert.Equal(t, res.Pulse.Noisy, s[0].Y)
	assert.Equal(t, "blue", s[1].Color)
	assert.Equal(t, res.Pulse.Clean, s[1].Y)
	assert.Equal(t, "Amplitude [V]", f.Panels[0].YLabel)
}

func TestFilterFigure(t *testing.T) {
	res := runDefault(t)
	f, err := FilterFigure(res)
	require.NoError(t, err)
	require.Len(t, f.Panels, 2)
	assert.Equal(t, "Before Processing: Raw Sensor Data with EMI", f.Panels[0].Title)
	assert.Equal(t, res.Filtered, f.Panels[1].Series[0].Y)
	assert.Equal(t, plot.KindDashed, f.Panels[1].Series[1].Kind)
}

func TestDetectorFigure(t *testing.T) {
	res := runDefault(t)
	f, err := DetectorFigure(res)
	require.NoError(t, err)

	scatter := f.Panels[0].Series[1]
	assert.Equal(t, plot.KindScatter, scatter.Kind)
	assert.Len(t, scatter.X, anomaly.Count(res.Labels))
	assert.Len(t, scatter.Y, anomaly.Count(res.Labels))
}

func TestFigureUnknown(t *testing.T) {
	_, err := Figure("spectrogram", runDefault(t))
	require.ErrorIs(t, err, ErrUnknownFigure)
}
