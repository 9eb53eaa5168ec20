// Package core holds the configuration and error taxonomy shared by the
// synthesis, filtering and detection stages.
//
// A single [Config] carries every stage parameter so the generator and the
// filter always agree on the sample rate. Validation failures wrap
// [ErrInvalidParameter]; sequences of unequal length wrap [ErrShapeMismatch].
package core
