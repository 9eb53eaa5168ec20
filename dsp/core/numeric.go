package core

import "math"

// IsFinite reports whether every value is neither NaN nor infinite.
func IsFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// LinearToDB converts an amplitude ratio to 20*log10(v).
func LinearToDB(v float64) float64 { return decibels(v, 20) }

// LinearPowerToDB converts a power ratio to 10*log10(v).
func LinearPowerToDB(v float64) float64 { return decibels(v, 10) }

// decibels maps 0 to -Inf and negative ratios to NaN.
func decibels(v, factor float64) float64 {
	switch {
	case v < 0:
		return math.NaN()
	case v == 0:
		return math.Inf(-1)
	default:
		return factor * math.Log10(v)
	}
}
