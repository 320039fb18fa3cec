// SPDX-License-Identifier: MIT
// Package: qdistill/qstate
//
// statevector.go — dense state-vector representation and gate kernels.
//
// Contract:
//   - New(n) allocates |0…0⟩ for 1 ≤ n ≤ MaxQubits (else ErrInvalidQubitCount).
//   - All gates mutate the receiver in place and preserve the norm exactly
//     (up to float rounding); they return ErrQubitOutOfRange for bad indices
//     and otherwise cannot fail.
//   - Qubit q addresses amplitude-index bit 1<<q (little-endian).
//
// Complexity:
//   - Every kernel: O(2^n) time, O(1) extra space.
//
// Determinism:
//   - Gates are pure; identical call sequences yield identical amplitudes.

package qstate

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	// MaxQubits caps dense simulation at a 2^24-amplitude register.
	// The protocols in scope use at most 15 qubits.
	MaxQubits = 24

	// Epsilon is the non-negative tolerance used by renormalization and
	// norm checks.
	Epsilon = 1e-9
)

// invSqrt2 is the Hadamard amplitude factor 1/√2.
var invSqrt2 = complex(1/math.Sqrt2, 0)

// StateVector holds 2^n complex amplitudes for an n-qubit register.
// It is owned by exactly one simulation run and must not be shared.
type StateVector struct {
	amps []complex128
	n    int
}

// New returns an n-qubit register initialized to |0…0⟩.
func New(n int) (*StateVector, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("New(n=%d): %w", n, ErrInvalidQubitCount)
	}
	amps := make([]complex128, 1<<uint(n))
	amps[0] = 1
	return &StateVector{amps: amps, n: n}, nil
}

// NumQubits reports the register width n.
func (s *StateVector) NumQubits() int { return s.n }

// Amplitude returns the amplitude of basis state i (for tests and
// diagnostics; i is not range-checked beyond the slice bound).
func (s *StateVector) Amplitude(i int) complex128 { return s.amps[i] }

// Norm returns Σ|amp|², which is 1 within Epsilon after every operation.
func (s *StateVector) Norm() float64 {
	var sum float64
	for _, a := range s.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum
}

// Clone returns an independent deep copy of the register.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.amps))
	copy(amps, s.amps)
	return &StateVector{amps: amps, n: s.n}
}

// checkQubit validates a qubit index against the register width.
func (s *StateVector) checkQubit(method string, q int) error {
	if q < 0 || q >= s.n {
		return fmt.Errorf("%s(q=%d, n=%d): %w", method, q, s.n, ErrQubitOutOfRange)
	}
	return nil
}

// H applies the Hadamard gate to qubit q.
func (s *StateVector) H(q int) error {
	if err := s.checkQubit("H", q); err != nil {
		return err
	}
	bit := 1 << uint(q)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = invSqrt2 * (a0 + a1)
			s.amps[j] = invSqrt2 * (a0 - a1)
		}
	}
	return nil
}

// phase multiplies the |1⟩ component of qubit q by e^{iθ}.
func (s *StateVector) phase(q int, theta float64) {
	f := cmplx.Exp(complex(0, theta))
	bit := 1 << uint(q)
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= f
		}
	}
}

// T applies the π/8 gate (phase π/4) to qubit q.
func (s *StateVector) T(q int) error {
	if err := s.checkQubit("T", q); err != nil {
		return err
	}
	s.phase(q, math.Pi/4)
	return nil
}

// Tdg applies the inverse π/8 gate (phase −π/4) to qubit q.
func (s *StateVector) Tdg(q int) error {
	if err := s.checkQubit("Tdg", q); err != nil {
		return err
	}
	s.phase(q, -math.Pi/4)
	return nil
}

// S applies the phase-π/2 gate to qubit q.
func (s *StateVector) S(q int) error {
	if err := s.checkQubit("S", q); err != nil {
		return err
	}
	s.phase(q, math.Pi/2)
	return nil
}

// Sdg applies the phase-(−π/2) gate to qubit q.
func (s *StateVector) Sdg(q int) error {
	if err := s.checkQubit("Sdg", q); err != nil {
		return err
	}
	s.phase(q, -math.Pi/2)
	return nil
}

// Phase applies an arbitrary phase e^{iθ} to the |1⟩ component of qubit q.
func (s *StateVector) Phase(q int, theta float64) error {
	if err := s.checkQubit("Phase", q); err != nil {
		return err
	}
	s.phase(q, theta)
	return nil
}

// Ry rotates qubit q by θ about the Y axis.
func (s *StateVector) Ry(q int, theta float64) error {
	if err := s.checkQubit("Ry", q); err != nil {
		return err
	}
	c := complex(math.Cos(theta/2), 0)
	d := complex(math.Sin(theta/2), 0)
	bit := 1 << uint(q)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = c*a0 - d*a1
			s.amps[j] = d*a0 + c*a1
		}
	}
	return nil
}

// X applies the Pauli-X (bit-flip) gate to qubit q.
func (s *StateVector) X(q int) error {
	if err := s.checkQubit("X", q); err != nil {
		return err
	}
	bit := 1 << uint(q)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// Y applies the Pauli-Y gate to qubit q.
func (s *StateVector) Y(q int) error {
	if err := s.checkQubit("Y", q); err != nil {
		return err
	}
	bit := 1 << uint(q)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = -1i * a1
			s.amps[j] = 1i * a0
		}
	}
	return nil
}

// Z applies the Pauli-Z (phase-flip) gate to qubit q.
func (s *StateVector) Z(q int) error {
	if err := s.checkQubit("Z", q); err != nil {
		return err
	}
	bit := 1 << uint(q)
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
	return nil
}

// CNOT applies a controlled-NOT with control c and target t.
func (s *StateVector) CNOT(c, t int) error {
	if err := s.checkQubit("CNOT", c); err != nil {
		return err
	}
	if err := s.checkQubit("CNOT", t); err != nil {
		return err
	}
	if c == t {
		return fmt.Errorf("CNOT(c=%d, t=%d): control equals target: %w", c, t, ErrQubitOutOfRange)
	}
	cbit := 1 << uint(c)
	tbit := 1 << uint(t)
	for i := range s.amps {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}
