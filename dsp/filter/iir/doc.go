// Package iir applies recursive filters described by a single feedforward
// and feedback polynomial pair.
//
// Designs come from [pass] as cascaded biquad sections and are folded into
// one (B, A) transfer function; [Transfer.Filter] then runs the causal
// difference equation
//
//	a[0]*y[n] = b[0]*x[n] + ... + b[M]*x[n-M] - a[1]*y[n-1] - ... - a[N]*y[n-N]
//
// with zero initial state. The result is a single forward pass: there is no
// padding and no phase compensation, so the start-up transient and the group
// delay are part of the output.
//
// For high orders the folded polynomials lose precision; [LowpassSOS] runs
// the same design section by section.
package iir
