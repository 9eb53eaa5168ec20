package pass

import "github.com/rominafarhad/pulse-ai-analyzer/dsp/filter/biquad"

// ButterworthLP designs an order-n lowpass Butterworth cascade with its
// -3 dB point at freq. Sections run from lowest to highest Q; odd orders end
// with a first-order section (B2=A2=0).
//
// Returns nil when order < 1 or freq is not strictly between 0 and Nyquist.
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, secondOrderLP(k, butterworthQ(order, i)))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLP(k))
	}
	return sections
}
