// Package noise models the per-gate depolarizing error channel the
// distillation protocols are evaluated under.
//
// 🚀 What is the channel?
//
//	After each noisy ideal gate, with probability p (the noise strength),
//	the affected qubits are hit by a uniformly random non-identity Pauli:
//	  • one-qubit gates: uniform over {X, Y, Z}
//	  • two-qubit gates: uniform over the 15 non-identity Pauli pairs,
//	    at an effective strength of TwoQubitFactor·p (2× by default)
//
// ✨ Design guarantees:
//   - One decision draw per gate application; draws across shots are
//     independent because every shot owns its own *rand.Rand.
//   - No ambient state: the Spec and the random stream are passed in
//     explicitly, so runs are reproducible and safely parallel.
//   - Validation up front: a strength outside [0,1] is a configuration
//     error (ErrInvalidStrength), not a runtime surprise.
//
// The two-qubit multiplier mirrors the protocols in scope, which model
// controlled-NOT noise as twice the single-qubit strength.
package noise
