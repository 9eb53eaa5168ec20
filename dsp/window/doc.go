// Package window generates the tapering windows used before spectral
// analysis.
//
// Only cosine-sum windows are provided. Coefficients are generated in
// symmetric form by default; [WithPeriodic] selects the DFT-even form used
// for framing.
package window
