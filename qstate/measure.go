// SPDX-License-Identifier: MIT
// Package: qdistill/qstate
//
// measure.go — Born-rule projective measurement.
//
// Contract:
//   - Measure(q, basis, rng) consumes exactly one draw from rng to pick the
//     outcome, projects the register onto it, and renormalizes.
//   - P(bit=0) = Σ|amp_i|² over indices with bit q clear, after the basis
//     pre-rotation (none for BasisZ, Hadamard for BasisX).
//   - A branch probability below Epsilon is an explicit failure
//     (ErrNumericalInstability), never a silent NaN.
//
// Determinism:
//   - For a fixed rng stream the outcome sequence is reproducible.

package qstate

import (
	"fmt"
	"math"
	"math/rand"
)

// Basis selects the measurement frame. The closed set matches the
// protocols in scope: computational readout, or the complementary frame
// reached by a Hadamard pre-rotation.
type Basis int

const (
	// BasisZ measures in the computational basis, no pre-rotation.
	BasisZ Basis = iota

	// BasisX applies a Hadamard pre-rotation, then measures. Used for the
	// phase-state data readout of the magic-state protocols.
	BasisX
)

// String returns the conventional one-letter basis label.
func (b Basis) String() string {
	switch b {
	case BasisZ:
		return "Z"
	case BasisX:
		return "X"
	default:
		return "?"
	}
}

// Measure performs a projective measurement of qubit q in the given basis.
// It returns the observed bit (0 or 1) and leaves the register in the
// renormalized post-measurement state.
func (s *StateVector) Measure(q int, basis Basis, rng *rand.Rand) (int, error) {
	if err := s.checkQubit("Measure", q); err != nil {
		return 0, err
	}
	if rng == nil {
		return 0, fmt.Errorf("Measure(q=%d): %w", q, ErrNilRand)
	}
	switch basis {
	case BasisZ:
		// no pre-rotation
	case BasisX:
		if err := s.H(q); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("Measure(q=%d, basis=%d): %w", q, basis, ErrUnknownBasis)
	}

	// Both branch weights are summed explicitly rather than assuming
	// p1 = 1−p0, so a drifting norm is caught by the guard below instead
	// of skewing the draw.
	bit := 1 << uint(q)
	var p0, p1 float64
	for i, a := range s.amps {
		w := real(a)*real(a) + imag(a)*imag(a)
		if i&bit == 0 {
			p0 += w
		} else {
			p1 += w
		}
	}

	outcome := 0
	p := p0
	if rng.Float64()*(p0+p1) >= p0 {
		outcome = 1
		p = p1
	}
	if p < Epsilon {
		return 0, fmt.Errorf("Measure(q=%d): branch probability %g: %w", q, p, ErrNumericalInstability)
	}

	// Project onto the observed branch and renormalize in one pass.
	inv := complex(1/math.Sqrt(p), 0)
	keepSet := outcome == 1
	for i := range s.amps {
		if (i&bit != 0) == keepSet {
			s.amps[i] *= inv
		} else {
			s.amps[i] = 0
		}
	}
	return outcome, nil
}
