// SPDX-License-Identifier: MIT
// Package: qdistill/circuit
//
// impl_magic.go — the k-to-1 magic-state distillation programs.
//
// Shared structure (state machine per shot):
//   Init → Prepare → Encode → Transversal-T → Decode → Measure-syndromes
//        → Measure-data → Terminal.
//
// Contract:
//   - Prepare puts the data qubit (q0) in |+⟩; non-data qubits stay |0⟩.
//   - Encode is a fan-out layer of CNOTs whose data chain reaches every
//     qubit, so the transversal T⊗k acts as the logical T^k on the block
//     (k=3 ⇒ logical T³, k=15 ⇒ logical T† — a magic state again).
//   - Decode is generated by reversing the recorded encode ops; this
//     structural inverse is what lets the syndromes detect bit-type errors
//     rather than scramble them.
//   - Syndromes (q1..q_{k-1}) are measured in the computational basis and
//     are deterministically 0 at zero noise; the data qubit is read out
//     after a Hadamard pre-rotation, giving P(0) = cos²(kπ/8) ideally.
//
// Determinism:
//   - Constructors emit a fixed op order; same call, same Program.

package circuit

import "github.com/katalvlaran/qdistill/qstate"

const (
	magic3Qubits  = 3
	magic15Qubits = 15
)

// buildMagic assembles a k-to-1 program around one encode layer.
func buildMagic(p Protocol, k int, encode []Op) *Program {
	ops := make([]Op, 0, 4*k+2*len(encode)+8)

	// Prepare: data qubit into |+⟩.
	ops = append(ops, opH(0), opBarrier())

	// Encode.
	ops = append(ops, encode...)
	ops = append(ops, opBarrier())

	// Transversal T — the k consumed magic resources.
	for q := 0; q < k; q++ {
		ops = append(ops, opT(q))
	}
	ops = append(ops, opBarrier())

	// Decode: exact structural inverse of the encode.
	ops = append(ops, reverseOps(encode)...)
	ops = append(ops, opBarrier())

	// Syndrome readout, then the pre-rotated data readout.
	syndromes := make([]int, 0, k-1)
	for q := 1; q < k; q++ {
		ops = append(ops, opMeasure(q, qstate.BasisZ, q))
		syndromes = append(syndromes, q)
	}
	ops = append(ops, opMeasure(0, qstate.BasisX, 0))

	return &Program{
		Protocol:      p,
		Qubits:        k,
		ClassicalBits: k,
		Ops:           ops,
		Rule:          AcceptAllZero,
		SyndromeBits:  syndromes,
		DataBits:      []int{0},
	}
}

// NewMagic3 returns the 3-to-1 repetition-code program: a single star
// encode rooted at the data qubit, two syndrome bits.
func NewMagic3() *Program {
	encode := []Op{
		opCNOT(0, 1),
		opCNOT(0, 2),
	}
	return buildMagic(Magic3, magic3Qubits, encode)
}

// NewMagic15Ring returns the 15-to-1 program with the 4-layer ring encode:
// the data qubit feeds a first ring of four, each ring feeds the next, and
// two final spokes complete the block.
func NewMagic15Ring() *Program {
	encode := []Op{
		// Layer 1: data → first ring.
		opCNOT(0, 1), opCNOT(0, 2), opCNOT(0, 3), opCNOT(0, 4),
		// Layer 2: first ring → second ring.
		opCNOT(1, 5), opCNOT(2, 6), opCNOT(3, 7), opCNOT(4, 8),
		// Layer 3: second ring → third ring.
		opCNOT(5, 9), opCNOT(6, 10), opCNOT(7, 11), opCNOT(8, 12),
		// Layer 4: final spokes.
		opCNOT(9, 13), opCNOT(10, 14),
	}
	return buildMagic(Magic15Ring, magic15Qubits, encode)
}

// NewMagic15Star returns the 15-to-1 program with the star + cross-link
// encode: a seven-leaf star on the data qubit, three stabilizer links, and
// seven pairwise cross-links. The stabilizer links precede the pairwise
// layer so the data chain reaches all fifteen qubits.
func NewMagic15Star() *Program {
	encode := []Op{
		// Star rooted at the data qubit.
		opCNOT(0, 1), opCNOT(0, 2), opCNOT(0, 3), opCNOT(0, 4),
		opCNOT(0, 5), opCNOT(0, 6), opCNOT(0, 7),
		// Stabilizer links among the outer block.
		opCNOT(8, 9), opCNOT(10, 11), opCNOT(12, 13),
		// Pairwise cross-links into the outer block.
		opCNOT(1, 8), opCNOT(2, 9), opCNOT(3, 10), opCNOT(4, 11),
		opCNOT(5, 12), opCNOT(6, 13), opCNOT(7, 14),
	}
	return buildMagic(Magic15Star, magic15Qubits, encode)
}
