// SPDX-License-Identifier: MIT
// Package: qdistill/distill
//
// theory.go — closed-form predictions per protocol and noise level.
//
// Contract:
//   - Theory validates ε exactly like the noise package (wrapping
//     noise.ErrInvalidStrength) and rejects unknown protocols with
//     circuit.ErrUnknownProtocol.
//   - Predictions are leading-order estimates for small ε; they are the
//     comparison baseline for sweeps, not exact simulation results.

package distill

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/noise"
)

// magic3ErrorCoefficient is the empirical quadratic fit for the 3-to-1
// protocol. With distance-2 detection only, single faults dominate and
// the residual error scales as ε².
const magic3ErrorCoefficient = 3.0

// Prediction is the closed-form expectation for one (protocol, ε) pair.
type Prediction struct {
	OutputErrorRate  float64 // residual error after acceptance
	OutputFidelity   float64 // 1 − OutputErrorRate
	PredictedSuccess float64 // acceptance probability
}

// Theory returns the analytic prediction for the protocol at input noise
// strength eps.
//
// The 15-to-1 code suppresses error cubically: ε_out = 35ε³, with
// acceptance (1−2ε)¹⁴. The 3-to-1 variant detects but does not correct,
// giving ε_out ≈ 3ε² and acceptance (1−2ε)². BBPSSW is reported as its
// ideal reference (no residual error, unit acceptance); empirical runs
// are compared directly against that baseline.
func Theory(p circuit.Protocol, eps float64) (Prediction, error) {
	if err := noise.NewSpec(eps).Validate(); err != nil {
		return Prediction{}, fmt.Errorf("Theory(%s): %w", p, err)
	}

	var outErr, success float64
	switch p {
	case circuit.BBPSSW:
		outErr, success = 0, 1
	case circuit.Magic3:
		outErr = magic3ErrorCoefficient * eps * eps
		success = math.Pow(1-2*eps, 2)
	case circuit.Magic15Ring, circuit.Magic15Star:
		outErr = 35 * eps * eps * eps
		success = math.Pow(1-2*eps, 14)
	default:
		return Prediction{}, fmt.Errorf("Theory(%d): %w", p, circuit.ErrUnknownProtocol)
	}

	if outErr > 1 {
		outErr = 1
	}
	return Prediction{
		OutputErrorRate:  outErr,
		OutputFidelity:   1 - outErr,
		PredictedSuccess: success,
	}, nil
}
