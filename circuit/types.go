// SPDX-License-Identifier: MIT
// Package: qdistill/circuit
//
// types.go — gate-operation variant, classical register, acceptance rules.
//
// Contract:
//   - Op is a closed tagged variant; unused fields hold zero values and
//     Control/CBit use -1 when not applicable.
//   - Bits is the per-shot classical register: each bit is written exactly
//     once by the measurement that owns it and never mutated afterwards
//     (the sampler enforces write-once).

package circuit

import "github.com/katalvlaran/qdistill/qstate"

// OpKind enumerates the closed set of circuit operations.
type OpKind int

const (
	// OpH is the single-qubit Hadamard gate.
	OpH OpKind = iota

	// OpT is the single-qubit π/8 (phase π/4) gate.
	OpT

	// OpTdg is the inverse π/8 gate.
	OpTdg

	// OpS is the single-qubit phase gate (T squared).
	OpS

	// OpSdg is the inverse phase gate.
	OpSdg

	// OpRy is a single-qubit rotation about Y by Theta.
	OpRy

	// OpCNOT is the two-qubit controlled-NOT.
	OpCNOT

	// OpBarrier is a structural no-op marking protocol stage boundaries.
	OpBarrier

	// OpMeasure collapses one qubit into one classical bit.
	OpMeasure
)

// String returns the conventional lower-case gate mnemonic.
func (k OpKind) String() string {
	switch k {
	case OpH:
		return "h"
	case OpT:
		return "t"
	case OpTdg:
		return "tdg"
	case OpS:
		return "s"
	case OpSdg:
		return "sdg"
	case OpRy:
		return "ry"
	case OpCNOT:
		return "cx"
	case OpBarrier:
		return "barrier"
	case OpMeasure:
		return "measure"
	default:
		return "?"
	}
}

// Noisy reports whether the depolarizing channel applies after this kind.
// Barriers and measurements (including their internal pre-rotations) are
// noise-free; everything unitary is noisy.
func (k OpKind) Noisy() bool {
	switch k {
	case OpH, OpT, OpTdg, OpS, OpSdg, OpRy, OpCNOT:
		return true
	default:
		return false
	}
}

// Op is one circuit operation. Kind selects the variant; the remaining
// fields are meaningful only for the kinds noted on them.
type Op struct {
	Kind    OpKind
	Target  int          // acted-on qubit (all kinds except OpBarrier)
	Control int          // OpCNOT control; -1 otherwise
	Theta   float64      // OpRy angle
	Basis   qstate.Basis // OpMeasure frame
	CBit    int          // OpMeasure destination bit; -1 otherwise
}

// opH, opT, opCNOT, opBarrier and opMeasure are the emission helpers the
// topology constructors share.
func opH(q int) Op    { return Op{Kind: OpH, Target: q, Control: -1, CBit: -1} }
func opT(q int) Op    { return Op{Kind: OpT, Target: q, Control: -1, CBit: -1} }
func opBarrier() Op   { return Op{Kind: OpBarrier, Target: -1, Control: -1, CBit: -1} }
func opCNOT(c, t int) Op {
	return Op{Kind: OpCNOT, Target: t, Control: c, CBit: -1}
}
func opMeasure(q int, basis qstate.Basis, cbit int) Op {
	return Op{Kind: OpMeasure, Target: q, Control: -1, Basis: basis, CBit: cbit}
}

// Bits is one shot's classical register, indexed by classical-bit offset.
// Values are 0 or 1.
type Bits []uint8

// String renders the register as a bitstring with bit 0 leftmost — the
// histogram key format.
func (b Bits) String() string {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = '0' + v
	}
	return string(out)
}

// AcceptRule is the closed set of post-selection predicates.
type AcceptRule int

const (
	// AcceptAllZero accepts a shot iff every syndrome bit equals 0
	// (magic-state family).
	AcceptAllZero AcceptRule = iota

	// AcceptAllEqual accepts a shot iff all syndrome bits agree
	// (BBPSSW pair-measurement agreement).
	AcceptAllEqual
)
