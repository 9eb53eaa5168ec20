package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/filter/iir"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/signal"
	"github.com/rominafarhad/pulse-ai-analyzer/measure/anomaly"
)

// Result holds every intermediate sequence of one run.
type Result struct {
	Config   core.Config
	Pulse    signal.Pulse
	Filtered []float64
	Labels   []anomaly.Label
}

type options struct {
	gen        *signal.Generator
	classifier anomaly.Classifier
	log        logrus.FieldLogger
}

// Option configures Run.
type Option func(*options)

// WithGenerator uses g instead of a generator seeded from the config.
func WithGenerator(g *signal.Generator) Option {
	return func(o *options) { o.gen = g }
}

// WithClassifier replaces the default isolation forest.
func WithClassifier(c anomaly.Classifier) Option {
	return func(o *options) { o.classifier = c }
}

// WithLogger sets the logger for stage timings and counts.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

// Run validates cfg, synthesizes a pulse, low-pass filters the noisy
// samples and labels outliers in them.
func Run(cfg core.Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.gen == nil {
		o.gen = signal.NewGeneratorFromConfig(cfg)
	}
	if o.classifier == nil {
		forest, err := anomaly.NewIsolationForest(anomaly.WithContamination(cfg.Contamination))
		if err != nil {
			return nil, err
		}
		o.classifier = forest
	}
	log := o.log
	if seed, ok := o.gen.Seed(); ok {
		log = log.WithField("seed", seed)
	}

	pulse, err := o.gen.PulseFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	log.WithField("samples", pulse.Len()).Debug("pulse generated")

	filtered, err := iir.LowpassFromConfig(pulse.Noisy, cfg)
	if err != nil {
		return nil, fmt.Errorf("lowpass: %w", err)
	}
	log.WithFields(logrus.Fields{"cutoff": cfg.Cutoff, "order": cfg.Order}).Debug("pulse filtered")

	labels, err := o.classifier.Classify(pulse.Noisy)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	if len(labels) != pulse.Len() {
		return nil, core.ShapeMismatch("classifier labels", pulse.Len(), len(labels))
	}
	log.WithField("anomalies", anomaly.Count(labels)).Debug("anomalies labelled")

	return &Result{
		Config:   cfg,
		Pulse:    pulse,
		Filtered: filtered,
		Labels:   labels,
	}, nil
}
