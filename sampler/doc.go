// Package sampler executes a circuit program for many independent shots
// and aggregates the measured bitstrings into a histogram.
//
// 🚀 Execution model
//
//	Each shot owns a fresh state vector, a fresh noise channel and a
//	private random stream derived from the run seed and the shot index.
//	Shots therefore commute: the histogram is identical for any worker
//	count and any scheduling order, and two runs with the same seed
//	produce the same counts bit for bit.
//
// ✨ Guarantees:
//   - Determinism: Run(seed s) is a pure function of (program, spec,
//     shots, s). Worker count only changes wall-clock time.
//   - ΣCounts == Completed at all times, including after cancellation.
//   - Cancellation stops the run between shots; every counted shot is a
//     whole shot, and the partial histogram is returned with ctx.Err().
//   - A shot-level error (out-of-range qubit, numerical instability,
//     malformed classical wiring) aborts the run and surfaces wrapped.
//     Such errors indicate a broken program, not statistical noise.
//
// Histogram keys are bitstrings with classical bit 0 leftmost, matching
// circuit.Bits.String.
package sampler
