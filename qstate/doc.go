// Package qstate implements the numerical heart of the simulator: a pure
// quantum state over n qubits and the small set of operations the
// distillation protocols need.
//
// 🚀 What is qstate?
//
//	A dense state-vector engine over complex128 amplitudes:
//	  • In-place single-qubit gates: H, T, T†, S, S†, Phase(θ), Ry(θ), X, Y, Z
//	  • The two-qubit controlled-NOT
//	  • Born-rule projective measurement in the computational (Z) or the
//	    Hadamard-rotated (X) basis, with explicit renormalization guards
//
// ✨ Design guarantees:
//   - Deterministic: gates are pure functions of the state; the only
//     randomness is the *rand.Rand the caller hands to Measure.
//   - Owned, never shared: a StateVector belongs to exactly one simulated
//     shot; no locks, no aliasing.
//   - No NaN propagation: a measurement branch whose probability falls
//     below Epsilon returns ErrNumericalInstability instead of dividing
//     by (nearly) zero.
//   - No panics at runtime: invalid qubit indices surface as sentinel
//     errors checked via errors.Is.
//
// Qubit q maps to amplitude-index bit 1<<q (little-endian), so basis
// state |q_{n-1} … q_1 q_0⟩ lives at index Σ q_i·2^i.
//
// Complexity: every gate and measurement is O(2^n) time, O(1) extra space.
package qstate
