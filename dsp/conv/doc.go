// Package conv provides direct linear convolution.
//
// Beyond filtering signals with FIR kernels, convolution of coefficient
// vectors is polynomial multiplication, which is how cascaded IIR sections
// are folded into a single transfer function.
package conv
