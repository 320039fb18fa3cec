// SPDX-License-Identifier: MIT
// Package: qdistill/sampler
//
// errors.go — sentinel errors for shot execution and configuration.
//
// Contract:
//   - Every failure path wraps exactly one sentinel below, so callers can
//     branch with errors.Is regardless of the wrapping message.
//   - Shot-level execution propagates qstate and noise sentinels through
//     %w unchanged; this file only adds the sampler's own failure modes.

package sampler

import "errors"

var (
	// ErrNilProgram is returned when Run receives a nil program.
	ErrNilProgram = errors.New("sampler: nil program")

	// ErrNegativeShots is returned when the requested shot count is < 0.
	// Zero shots is valid and yields an empty histogram.
	ErrNegativeShots = errors.New("sampler: negative shot count")

	// ErrBadWorkerCount panics out of WithWorkers when n < 1.
	ErrBadWorkerCount = errors.New("sampler: worker count must be >= 1")

	// ErrBadBit is returned when a measurement names a classical bit
	// outside the program's register.
	ErrBadBit = errors.New("sampler: classical bit out of range")

	// ErrBitRewritten is returned when a shot measures into a classical
	// bit that already holds an outcome. Registers are write-once.
	ErrBitRewritten = errors.New("sampler: classical bit written twice")

	// ErrBitUnwritten is returned when a shot finishes with a classical
	// bit never assigned, which would forge a phantom 0 in the key.
	ErrBitUnwritten = errors.New("sampler: classical bit never written")

	// ErrUnknownOp is returned when a program carries an operation kind
	// the executor does not recognize.
	ErrUnknownOp = errors.New("sampler: unknown operation kind")
)
