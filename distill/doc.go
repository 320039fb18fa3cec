// Package distill turns raw shot histograms into distillation verdicts:
// post-selection, fidelity estimation, closed-form theory predictions,
// and the end-to-end Run / Sweep entry points.
//
// 🚀 Pipeline
//
//	program → sampler histogram → PostSelect → Fidelity vs IdealOutput
//	                                 │
//	                                 └── compared against Theory(ε)
//
// Post-selection applies the protocol's acceptance rule to every outcome,
// discards rejected shots, and projects the survivors onto the data bits.
// The fidelity estimate is the classical Bhattacharyya coefficient
// squared between the surviving data distribution and the protocol's
// ideal reference. It is computed from measurement statistics alone, so
// it is blind to coherences; treat it as a diagnostics proxy, not a full
// state fidelity.
//
// ✨ Conventions:
//   - Degenerate analyses (no shots, or nothing accepted) are reported
//     in-value via Selection.Degenerate, never as an error.
//   - Sentinel errors propagate from the circuit, noise and sampler
//     packages unchanged; this package introduces none of its own.
//   - Run and Sweep are deterministic for a fixed seed, like the sampler
//     underneath them.
package distill
