// SPDX-License-Identifier: MIT
// Package: qdistill/noise
//
// noise.go — depolarizing channel specification and application.
//
// Contract:
//   - Spec.Validate enforces Strength ∈ [0,1] and TwoQubitFactor ≥ 0.
//   - NewChannel(spec, rng) validates and binds the channel to an explicit
//     random stream (ErrNilRand otherwise); the channel never owns a
//     process-wide RNG.
//   - AfterGate(sv, qubits...) consumes one decision draw. On corruption it
//     applies one uniformly random non-identity Pauli over the given qubits
//     (3 choices for one qubit, 15 for two).
//   - The effective strength for two qubits is min(1, Strength·TwoQubitFactor).
//
// Determinism:
//   - Identical Spec + RNG stream ⇒ identical corruption decisions.

package noise

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qdistill/qstate"
)

// DefaultTwoQubitFactor is the conventional two-qubit noise multiplier
// used by the protocols in scope.
const DefaultTwoQubitFactor = 2.0

// pauliCount is the number of non-identity single-qubit Paulis.
const pauliCount = 3

// ErrInvalidStrength indicates a noise probability outside [0,1] or a
// negative two-qubit factor. Configuration error: fatal, not retried.
var ErrInvalidStrength = errors.New("noise: strength out of range")

// ErrNilRand indicates a channel was constructed without a random stream.
var ErrNilRand = errors.New("noise: rand source is nil")

// ErrBadArity indicates AfterGate was called for other than 1 or 2 qubits.
var ErrBadArity = errors.New("noise: unsupported gate arity")

// Spec is the value-type description of a depolarizing error model:
// a base strength and the multiplier applied to two-qubit gates.
type Spec struct {
	// Strength is the per-gate corruption probability for single-qubit
	// gates, in [0,1].
	Strength float64

	// TwoQubitFactor scales Strength for two-qubit gates. The effective
	// probability is clamped to 1.
	TwoQubitFactor float64
}

// NewSpec returns a Spec with the conventional 2× two-qubit factor.
func NewSpec(strength float64) Spec {
	return Spec{Strength: strength, TwoQubitFactor: DefaultTwoQubitFactor}
}

// Validate checks the Spec's numeric domain.
func (sp Spec) Validate() error {
	if sp.Strength < 0 || sp.Strength > 1 {
		return fmt.Errorf("Spec{Strength:%g}: %w", sp.Strength, ErrInvalidStrength)
	}
	if sp.TwoQubitFactor < 0 {
		return fmt.Errorf("Spec{TwoQubitFactor:%g}: %w", sp.TwoQubitFactor, ErrInvalidStrength)
	}
	return nil
}

// twoQubitStrength returns the effective two-qubit probability, clamped.
func (sp Spec) twoQubitStrength() float64 {
	p := sp.Strength * sp.TwoQubitFactor
	if p > 1 {
		return 1
	}
	return p
}

// Channel applies a Spec's stochastic corruption to a state, drawing from
// one explicit random stream. One Channel serves exactly one shot.
type Channel struct {
	spec Spec
	rng  *rand.Rand
}

// NewChannel validates the Spec and binds it to rng.
func NewChannel(spec Spec, rng *rand.Rand) (*Channel, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("NewChannel: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("NewChannel: %w", ErrNilRand)
	}
	return &Channel{spec: spec, rng: rng}, nil
}

// AfterGate possibly corrupts the qubits a just-applied gate acted on.
// Call it strictly after the ideal unitary, before the next circuit step.
func (c *Channel) AfterGate(sv *qstate.StateVector, qubits ...int) error {
	var p float64
	switch len(qubits) {
	case 1:
		p = c.spec.Strength
	case 2:
		p = c.spec.twoQubitStrength()
	default:
		return fmt.Errorf("AfterGate(arity=%d): %w", len(qubits), ErrBadArity)
	}
	if p == 0 || c.rng.Float64() >= p {
		return nil
	}

	switch len(qubits) {
	case 1:
		// Uniform over {X, Y, Z}.
		return c.applyPauli(sv, qubits[0], 1+c.rng.Intn(pauliCount))
	default:
		// Uniform over the 15 non-identity two-qubit Paulis: draw a pair
		// index in [1,16) and decode each qubit's factor in base 4.
		pair := 1 + c.rng.Intn(pauliCount*pauliCount + 2*pauliCount)
		if err := c.applyPauli(sv, qubits[0], pair%4); err != nil {
			return err
		}
		return c.applyPauli(sv, qubits[1], pair/4)
	}
}

// applyPauli applies I (code 0), X (1), Y (2) or Z (3) to qubit q.
func (c *Channel) applyPauli(sv *qstate.StateVector, q, code int) error {
	switch code {
	case 0:
		return nil
	case 1:
		return sv.X(q)
	case 2:
		return sv.Y(q)
	default:
		return sv.Z(q)
	}
}
