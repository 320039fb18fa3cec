// SPDX-License-Identifier: MIT
// Package: qdistill/circuit
//
// impl_bbpssw.go — the BBPSSW Bell-pair purification program.
//
// Topology (4 qubits; A1=q0, A2=q1, B1=q2, B2=q3):
//   - Prepare pair 1: H(q0), CNOT(q0,q2) → Φ+ on (A1,B1).
//   - Prepare pair 2: H(q1), CNOT(q1,q3) → Φ+ on (A2,B2).
//   - Cross-pair CNOTs: Alice CNOT(q0,q1), Bob CNOT(q2,q3).
//   - Measure everything in the computational basis, qubit i → bit i.
//
// Acceptance: the A2/B2 measurements agree (c1 == c3); at zero noise they
// always do. Data: the surviving pair-1 bits (c0, c2), ideally uniform
// over {00, 11}.

package circuit

import "github.com/katalvlaran/qdistill/qstate"

// File-local constants (stable method tags, no magic numbers).
const (
	bbpsswQubits = 4
)

// NewBBPSSW returns the Bell-pair purification program.
func NewBBPSSW() *Program {
	ops := []Op{
		// Pair 1 (A1, B1).
		opH(0), opCNOT(0, 2),
		opBarrier(),
		// Pair 2 (A2, B2).
		opH(1), opCNOT(1, 3),
		opBarrier(),
		// Cross-pair parity transfer.
		opCNOT(0, 1), opCNOT(2, 3),
		opBarrier(),
	}
	for q := 0; q < bbpsswQubits; q++ {
		ops = append(ops, opMeasure(q, qstate.BasisZ, q))
	}

	return &Program{
		Protocol:      BBPSSW,
		Qubits:        bbpsswQubits,
		ClassicalBits: bbpsswQubits,
		Ops:           ops,
		Rule:          AcceptAllEqual,
		SyndromeBits:  []int{1, 3},
		DataBits:      []int{0, 2},
	}
}
