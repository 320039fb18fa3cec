// Package circuit declares the fixed distillation-protocol programs as
// data: ordered gate sequences, measurement maps, acceptance predicates
// and data-bit locators.
//
// 🚀 What is a Program?
//
//	A declarative description of one protocol run, consumed by the
//	sampler. Four fixed topologies are in scope:
//	  • BBPSSW       — 4-qubit Bell-pair purification
//	  • Magic3       — 3-to-1 magic-state distillation (repetition code)
//	  • Magic15Ring  — 15-to-1, 4-layer ring encode (the "optimized" form)
//	  • Magic15Star  — 15-to-1, star + cross-link encode ("conceptual" form)
//
// ✨ Design guarantees:
//   - Closed variant set: protocols are an enum, not user-defined circuits.
//   - Deterministic op order: the same constructor always emits the same
//     program, byte for byte.
//   - Structural inverse: every magic-state decode layer is generated by
//     reversing the recorded encode layer, so syndromes detect errors
//     instead of scrambling them.
//   - The transversal layer applies the non-Clifford T gate to all k
//     qubits; on the fanned-out block T⊗k acts as the k-th power of the
//     logical phase gate (T⊗15 is a logical T†), which is the protocol's
//     defining algebraic property.
//
// A Program never touches a state vector; execution lives in the sampler.
package circuit
