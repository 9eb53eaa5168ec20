// Package anomaly labels outlying samples of a one-dimensional signal.
//
// Each sample is treated as a single-feature observation. A [Classifier]
// returns one [Label] per sample; [IsolationForest] is the default
// implementation and flags roughly the configured contamination fraction.
package anomaly
