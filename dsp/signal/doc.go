// Package signal synthesizes test signals: jittered, noisy square pulses,
// sines, constants and Gaussian noise.
//
// Random draws come from an explicit stream owned by a [Generator]; seed it
// with [WithSeed] or hand it a shared [math/rand.Rand] with [WithRand].
package signal
