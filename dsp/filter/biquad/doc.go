// Package biquad provides second-order IIR section runtime primitives.
//
// A [Section] runs Direct Form II Transposed processing for one set of
// [Coefficients]. Sections cascade through [Chain] for higher orders.
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
