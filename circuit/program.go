// SPDX-License-Identifier: MIT
// Package: qdistill/circuit
//
// program.go — the Program type, protocol enum and dispatch.
//
// Contract:
//   - New(p) is the single dispatch point over the closed Protocol set;
//     unknown values return ErrUnknownProtocol, never panic.
//   - Accept and DataKey are total over well-formed registers produced by
//     the sampler for this program (len(bits) == ClassicalBits).
//
// Determinism:
//   - Constructors are pure; identical protocol ⇒ identical Program value.

package circuit

import (
	"errors"
	"fmt"
)

// ErrUnknownProtocol indicates a Protocol value outside the closed set.
var ErrUnknownProtocol = errors.New("circuit: unknown protocol")

// Protocol enumerates the fixed distillation topologies in scope.
type Protocol int

const (
	// BBPSSW is 4-qubit Bell-pair purification.
	BBPSSW Protocol = iota

	// Magic3 is 3-to-1 magic-state distillation on the repetition code.
	Magic3

	// Magic15Ring is 15-to-1 distillation with the 4-layer ring encode.
	Magic15Ring

	// Magic15Star is 15-to-1 distillation with the star + cross-link encode.
	Magic15Star
)

// protocolNames maps Protocol values to their stable wire/CLI names.
var protocolNames = map[Protocol]string{
	BBPSSW:      "bbpssw",
	Magic3:      "magic3",
	Magic15Ring: "magic15ring",
	Magic15Star: "magic15star",
}

// String returns the stable lower-case protocol name.
func (p Protocol) String() string {
	if name, ok := protocolNames[p]; ok {
		return name
	}
	return fmt.Sprintf("protocol(%d)", int(p))
}

// ParseProtocol resolves a stable name back to its Protocol value.
func ParseProtocol(name string) (Protocol, error) {
	for p, n := range protocolNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("ParseProtocol(%q): %w", name, ErrUnknownProtocol)
}

// Program is one protocol's complete declarative description: the gate
// sequence, the qubit→classical-bit measurement map embedded in Ops, the
// acceptance predicate and the data-bit locator.
type Program struct {
	Protocol      Protocol
	Qubits        int
	ClassicalBits int
	Ops           []Op

	// Rule and SyndromeBits define the acceptance predicate; DataBits
	// locate the surviving logical output in the classical register.
	Rule         AcceptRule
	SyndromeBits []int
	DataBits     []int
}

// New builds the Program for a protocol.
func New(p Protocol) (*Program, error) {
	switch p {
	case BBPSSW:
		return NewBBPSSW(), nil
	case Magic3:
		return NewMagic3(), nil
	case Magic15Ring:
		return NewMagic15Ring(), nil
	case Magic15Star:
		return NewMagic15Star(), nil
	default:
		return nil, fmt.Errorf("New(%d): %w", int(p), ErrUnknownProtocol)
	}
}

// Accept evaluates the acceptance predicate on one shot's register.
func (p *Program) Accept(bits Bits) bool {
	switch p.Rule {
	case AcceptAllEqual:
		for _, idx := range p.SyndromeBits[1:] {
			if bits[idx] != bits[p.SyndromeBits[0]] {
				return false
			}
		}
		return true
	default: // AcceptAllZero
		for _, idx := range p.SyndromeBits {
			if bits[idx] != 0 {
				return false
			}
		}
		return true
	}
}

// DataKey extracts the logical-output bitstring named by DataBits.
func (p *Program) DataKey(bits Bits) string {
	out := make([]byte, len(p.DataBits))
	for i, idx := range p.DataBits {
		out[i] = '0' + bits[idx]
	}
	return string(out)
}

// reverseOps returns a new slice with ops in reverse order — the exact
// structural inverse of a CNOT-only encode layer.
func reverseOps(ops []Op) []Op {
	out := make([]Op, len(ops))
	for i, op := range ops {
		out[len(ops)-1-i] = op
	}
	return out
}
