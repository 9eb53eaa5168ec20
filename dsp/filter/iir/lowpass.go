package iir

import (
	"fmt"
	"math"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/filter/biquad"
	"github.com/rominafarhad/pulse-ai-analyzer/dsp/filter/design/pass"
)

// ButterworthLowpass designs an order-n Butterworth low-pass with its -3 dB
// point at cutoff and returns it as one (B, A) pair, A[0] = 1.
func ButterworthLowpass(cutoff, sampleRate float64, order int) (Transfer, error) {
	sections, err := butterworthSections(cutoff, sampleRate, order)
	if err != nil {
		return Transfer{}, err
	}
	return FromSections(sections, 1)
}

// dcGainTol is the largest DC gain error accepted from a folded design.
const dcGainTol = 0.01

// Lowpass filters data with a causal order-n Butterworth low-pass. The
// output has the same length as data; an empty input yields an empty
// output.
//
// High orders at low cutoffs lose precision once folded into one (B, A)
// pair. Such designs are rejected with ErrInvalidParameter; LowpassSOS
// runs them accurately.
func Lowpass(data []float64, cutoff, sampleRate float64, order int) ([]float64, error) {
	tf, err := ButterworthLowpass(cutoff, sampleRate, order)
	if err != nil {
		return nil, err
	}
	if err := checkFolded(tf, cutoff, order); err != nil {
		return nil, err
	}
	if !core.IsFinite(data...) {
		return nil, core.InvalidParameter("data must be finite")
	}
	return tf.Filter(data)
}

// checkFolded rejects a b/a design that is unstable or whose DC gain has
// drifted from 1.
func checkFolded(tf Transfer, cutoff float64, order int) error {
	stable, err := tf.Stable()
	if err != nil {
		return core.InvalidParameter("order %d at %g Hz: poles of b/a form not found (%v); use LowpassSOS", order, cutoff, err)
	}
	if !stable {
		return core.InvalidParameter("order %d at %g Hz is numerically unstable in b/a form; use LowpassSOS", order, cutoff)
	}
	if g := tf.DCGain(); !core.IsFinite(g) || math.Abs(g-1) > dcGainTol {
		return core.InvalidParameter("order %d at %g Hz has DC gain %g in b/a form; use LowpassSOS", order, cutoff, g)
	}
	return nil
}

// LowpassSOS applies the same design as Lowpass through a biquad cascade.
func LowpassSOS(data []float64, cutoff, sampleRate float64, order int) ([]float64, error) {
	sections, err := butterworthSections(cutoff, sampleRate, order)
	if err != nil {
		return nil, err
	}
	if !core.IsFinite(data...) {
		return nil, core.InvalidParameter("data must be finite")
	}
	return biquad.NewChain(sections).Filter(data), nil
}

// LowpassFromConfig filters data with cfg.Cutoff, cfg.SampleRate and
// cfg.Order.
func LowpassFromConfig(data []float64, cfg core.Config) ([]float64, error) {
	return Lowpass(data, cfg.Cutoff, cfg.SampleRate, cfg.Order)
}

func butterworthSections(cutoff, sampleRate float64, order int) ([]biquad.Coefficients, error) {
	if !core.IsFinite(cutoff, sampleRate) || sampleRate <= 0 {
		return nil, core.InvalidParameter("sample rate must be > 0: %f", sampleRate)
	}
	if order < 1 || order > core.MaxOrder {
		return nil, core.InvalidParameter("order must be in [1, %d]: %d", core.MaxOrder, order)
	}
	if nyq := sampleRate / 2; cutoff <= 0 || cutoff >= nyq {
		return nil, core.InvalidParameter("cutoff must be in (0, %g): %g", nyq, cutoff)
	}

	sections := pass.ButterworthLP(cutoff, order, sampleRate)
	if sections == nil {
		return nil, fmt.Errorf("iir: butterworth design failed for order %d at %g Hz: %w",
			order, cutoff, core.ErrInvalidParameter)
	}
	return sections, nil
}
