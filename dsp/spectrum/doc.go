// Package spectrum estimates one-sided power spectra of real signals.
//
// [Analyze] windows the input, zero-pads it to a power of two and runs a
// forward FFT through algo-fft. Bin powers are scaled so that their sum over
// a band is the mean-square value the signal carries in that band.
package spectrum
