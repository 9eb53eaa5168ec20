// Package time computes time-domain statistics of sampled signals.
package time
