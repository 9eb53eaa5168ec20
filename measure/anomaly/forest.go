package anomaly

import (
	"math"
	"math/rand"
	"sort"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
)

const eulerGamma = 0.5772156649

// IsolationForest scores samples by how quickly random axis splits isolate
// them. Trees are grown on the data being classified.
type IsolationForest struct {
	cfg Config
}

var _ Classifier = (*IsolationForest)(nil)

// Detection is the full output of one classification run.
type Detection struct {
	Labels []Label
	// Scores are in (0, 1]; higher is more anomalous.
	Scores []float64
	// Offset is the decision threshold on -Scores.
	Offset float64
}

// NewIsolationForest returns a forest configured by opts.
func NewIsolationForest(opts ...Option) (*IsolationForest, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &IsolationForest{cfg: cfg}, nil
}

// Config returns the forest parameters.
func (f *IsolationForest) Config() Config { return f.cfg }

// Classify labels the samples whose negated score falls below the
// contamination percentile as anomalies.
func (f *IsolationForest) Classify(x []float64) ([]Label, error) {
	d, err := f.Detect(x)
	if err != nil {
		return nil, err
	}
	return d.Labels, nil
}

// Detect grows the forest on x and returns labels, scores and threshold.
// Equal seeds on equal input reproduce the result.
func (f *IsolationForest) Detect(x []float64) (Detection, error) {
	if len(x) == 0 {
		return Detection{}, core.InvalidParameter("anomaly input must not be empty")
	}
	if !core.IsFinite(x...) {
		return Detection{}, core.InvalidParameter("anomaly input must be finite")
	}

	scores := f.score(x)

	neg := make([]float64, len(scores))
	for i, s := range scores {
		neg[i] = -s
	}
	offset := percentile(neg, 100*f.cfg.Contamination)

	labels := make([]Label, len(x))
	for i, v := range neg {
		labels[i] = Normal
		if v < offset {
			labels[i] = Anomaly
		}
	}
	return Detection{Labels: labels, Scores: scores, Offset: offset}, nil
}

func (f *IsolationForest) score(x []float64) []float64 {
	rng := rand.New(rand.NewSource(f.cfg.Seed))
	psi := min(f.cfg.MaxSamples, len(x))
	limit := int(math.Ceil(math.Log2(float64(max(psi, 2)))))

	depth := make([]float64, len(x))
	sample := make([]float64, psi)
	for range f.cfg.Trees {
		for i, j := range rng.Perm(len(x))[:psi] {
			sample[i] = x[j]
		}
		root := grow(rng, sample, 0, limit)
		for i, v := range x {
			depth[i] += root.pathLength(v, 0)
		}
	}

	norm := averagePathLength(psi)
	scores := make([]float64, len(x))
	for i := range x {
		ratio := 1.0
		if norm > 0 {
			ratio = depth[i] / float64(f.cfg.Trees) / norm
		}
		scores[i] = math.Pow(2, -ratio)
	}
	return scores
}

type node struct {
	split       float64
	left, right *node
	size        int
}

// grow partitions data in place. A node becomes a leaf at the height limit,
// with one sample, or when all samples are equal.
func grow(rng *rand.Rand, data []float64, height, limit int) *node {
	if height >= limit || len(data) <= 1 {
		return &node{size: len(data)}
	}
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return &node{size: len(data)}
	}

	split := lo + rng.Float64()*(hi-lo)
	i := 0
	for j, v := range data {
		if v < split {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	return &node{
		split: split,
		left:  grow(rng, data[:i], height+1, limit),
		right: grow(rng, data[i:], height+1, limit),
	}
}

func (n *node) pathLength(v float64, depth int) float64 {
	for n.left != nil {
		if v < n.split {
			n = n.left
		} else {
			n = n.right
		}
		depth++
	}
	return float64(depth) + averagePathLength(n.size)
}

// averagePathLength is the mean unsuccessful-search depth of a binary
// search tree over n points.
func averagePathLength(n int) float64 {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	}
	m := float64(n - 1)
	return 2*(math.Log(m)+eulerGamma) - 2*m/float64(n)
}

// percentile interpolates linearly between the closest ranks.
func percentile(x []float64, p float64) float64 {
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	rank := p / 100 * float64(len(s)-1)
	lo := int(math.Floor(rank))
	if lo >= len(s)-1 {
		return s[len(s)-1]
	}
	frac := rank - float64(lo)
	return s[lo] + frac*(s[lo+1]-s[lo])
}
