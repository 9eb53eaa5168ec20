package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports a parameter outside its valid domain,
	// such as a cutoff at or above Nyquist or a non-positive sample rate.
	ErrInvalidParameter = errors.New("dsp: invalid parameter")

	// ErrShapeMismatch reports sequences that must share a length but do not.
	ErrShapeMismatch = errors.New("dsp: shape mismatch")
)

// InvalidParameter returns an error wrapping ErrInvalidParameter with a
// formatted detail message.
func InvalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// ShapeMismatch returns an error wrapping ErrShapeMismatch for two lengths.
func ShapeMismatch(what string, a, b int) error {
	return fmt.Errorf("%w: %s lengths differ: %d != %d", ErrShapeMismatch, what, a, b)
}
