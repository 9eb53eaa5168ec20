// Package pass designs lowpass IIR filters as cascades of biquad sections.
//
// Designs use the bilinear transform with the cutoff prewarped by
// tan(π f / fs), so the digital -3 dB point lands exactly on the requested
// frequency.
package pass
