package anomaly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
	"github.com/rominafarhad/pulse-ai-analyzer/internal/testutil"
)

func gaussian(seed int64, n int) []float64 {
	return testutil.GaussianNoise(seed, 1, n)
}

func TestClassifyLabelsEverySample(t *testing.T) {
	f, err := NewIsolationForest()
	require.NoError(t, err)

	x := gaussian(1, 2000)
	labels, err := f.Classify(x)
	require.NoError(t, err)
	require.Len(t, labels, len(x))
	for _, l := range labels {
		assert.Contains(t, []Label{Anomaly, Normal}, l)
	}
}

func TestClassifyFlagsContaminationShare(t *testing.T) {
	for _, c := range []float64{0.01, 0.05, 0.2} {
		f, err := NewIsolationForest(WithContamination(c))
		require.NoError(t, err)

		labels, err := f.Classify(gaussian(2, 2000))
		require.NoError(t, err)
		assert.InDelta(t, c*2000, float64(Count(labels)), 0.01*2000+2, "contamination %v", c)
	}
}

func TestClassifyFlagsSpikes(t *testing.T) {
	spikes := map[int]float64{50: 15, 120: -18, 250: 20, 380: -22, 470: 25}
	x := testutil.WithSpikes(gaussian(3, 500), spikes)

	f, err := NewIsolationForest()
	require.NoError(t, err)
	d, err := f.Detect(x)
	require.NoError(t, err)

	for i := range spikes {
		assert.Equal(t, Anomaly, d.Labels[i], "spike at %d", i)
		assert.Greater(t, d.Scores[i], 0.5, "spike at %d", i)
	}
}

func TestDetectScoresAndOffset(t *testing.T) {
	f, err := NewIsolationForest()
	require.NoError(t, err)
	d, err := f.Detect(gaussian(4, 300))
	require.NoError(t, err)

	for i, s := range d.Scores {
		require.True(t, s > 0 && s <= 1, "score[%d] = %v", i, s)
		assert.Equal(t, -s < d.Offset, d.Labels[i] == Anomaly)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	x := gaussian(5, 400)
	a, err := NewIsolationForest(WithSeed(9))
	require.NoError(t, err)
	b, err := NewIsolationForest(WithSeed(9))
	require.NoError(t, err)

	la, err := a.Classify(x)
	require.NoError(t, err)
	lb, err := b.Classify(x)
	require.NoError(t, err)
	assert.Equal(t, la, lb)
}

func TestClassifyConstantInput(t *testing.T) {
	f, err := NewIsolationForest()
	require.NoError(t, err)
	d, err := f.Detect([]float64{3, 3, 3, 3, 3, 3})
	require.NoError(t, err)

	for i := range d.Labels {
		assert.Equal(t, Normal, d.Labels[i])
		assert.InDelta(t, 0.5, d.Scores[i], 1e-12)
	}
}

func TestClassifySingleSample(t *testing.T) {
	f, err := NewIsolationForest()
	require.NoError(t, err)
	d, err := f.Detect([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, []Label{Normal}, d.Labels)
	assert.InDelta(t, 0.5, d.Scores[0], 1e-12)
}

func TestClassifyInvalidInput(t *testing.T) {
	f, err := NewIsolationForest()
	require.NoError(t, err)

	_, err = f.Classify(nil)
	require.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = f.Classify([]float64{1, math.NaN()})
	require.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestNewIsolationForestInvalid(t *testing.T) {
	tests := map[string]Option{
		"zero contamination":     WithContamination(0),
		"full contamination":     WithContamination(1),
		"negative contamination": WithContamination(-0.1),
		"nan contamination":      WithContamination(math.NaN()),
		"zero trees":             WithTrees(0),
		"zero samples":           WithMaxSamples(0),
	}
	for name, opt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewIsolationForest(opt)
			require.ErrorIs(t, err, core.ErrInvalidParameter)
		})
	}
}

func TestAveragePathLength(t *testing.T) {
	assert.Equal(t, 0.0, averagePathLength(0))
	assert.Equal(t, 0.0, averagePathLength(1))
	assert.Equal(t, 1.0, averagePathLength(2))
	// 2*(ln(255)+gamma) - 2*255/256
	assert.InDelta(t, 10.244770920116851, averagePathLength(256), 1e-9)
}

func TestPercentile(t *testing.T) {
	x := []float64{4, 1, 3, 2, 5}
	assert.InDelta(t, 1.0, percentile(x, 0), 1e-12)
	assert.InDelta(t, 3.0, percentile(x, 50), 1e-12)
	assert.InDelta(t, 1.2, percentile(x, 5), 1e-12)
	assert.InDelta(t, 5.0, percentile(x, 100), 1e-12)
	assert.Equal(t, []float64{4, 1, 3, 2, 5}, x, "input must not be reordered")
}
