// SPDX-License-Identifier: MIT
// Package: qdistill/qstate
//
// errors.go — sentinel errors for the qstate package.
//
// Error policy (strict):
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Sentinels carry no parameters; implementations attach context via %w.
//   • Runtime code never panics: an out-of-range qubit is a programmer
//     error, but it is still surfaced as a sentinel so a broken circuit
//     aborts one sweep point instead of the whole process.

package qstate

import "errors"

// ErrInvalidQubitCount indicates a requested register size outside the
// supported range (1..MaxQubits). Dense simulation is exponential in n;
// the cap keeps allocation failures from masquerading as physics.
var ErrInvalidQubitCount = errors.New("qstate: invalid qubit count")

// ErrQubitOutOfRange indicates a gate or measurement referenced a qubit
// index outside [0, NumQubits). Fatal for the current run, never retried.
var ErrQubitOutOfRange = errors.New("qstate: qubit index out of range")

// ErrNumericalInstability indicates a measurement tried to renormalize a
// branch whose probability is below Epsilon. Guarded explicitly so NaN
// never propagates into amplitudes or statistics.
var ErrNumericalInstability = errors.New("qstate: renormalization below tolerance")

// ErrNilRand indicates a measurement was invoked without a random source.
// Randomness is always explicit here; there is no package-level stream.
var ErrNilRand = errors.New("qstate: rand source is nil")

// ErrUnknownBasis indicates a measurement basis outside the closed set
// {BasisZ, BasisX}.
var ErrUnknownBasis = errors.New("qstate: unknown measurement basis")
