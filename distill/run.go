// SPDX-License-Identifier: MIT
// Package: qdistill/distill
//
// run.go — end-to-end distillation runs and noise sweeps.
//
// Contract:
//   - Run composes program construction, sampling and analysis; every
//     stage error surfaces wrapped with its own sentinel.
//   - Sweep preserves the input level order. A per-level configuration
//     error is recorded on the point, not fatal to the sweep;
//     cancellation returns only fully completed points with ctx.Err().
//
// Determinism:
//   - Fixed seed ⇒ identical Results across runs and worker counts.

package distill

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/noise"
	"github.com/katalvlaran/qdistill/sampler"
)

// Option configures the sampling stage of Run and Sweep.
type Option = sampler.Option

// WithSeed sets the base seed for the run's random streams.
func WithSeed(seed int64) Option { return sampler.WithSeed(seed) }

// WithWorkers sets the number of concurrent shot executors.
// Must pass a value >= 1; anything lower panics, see sampler.WithWorkers.
func WithWorkers(n int) Option { return sampler.WithWorkers(n) }

// Result is one completed distillation experiment.
type Result struct {
	Protocol         circuit.Protocol
	Noise            float64        // input depolarizing strength ε
	Shots            int            // requested shots
	Completed        int            // shots that actually ran
	SuccessRate      float64        // post-selection acceptance rate
	Output           map[string]int // accepted data-bit distribution
	FidelityEstimate float64        // Bhattacharyya proxy vs the ideal
	Degenerate       bool           // nothing accepted; estimates are void
}

// Run executes one full distillation experiment: build the protocol's
// program, sample it shots times at noise strength eps, post-select and
// estimate fidelity against the ideal output.
func Run(ctx context.Context, p circuit.Protocol, eps float64, shots int, opts ...Option) (Result, error) {
	prog, err := circuit.New(p)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}

	h, err := sampler.Run(ctx, prog, noise.NewSpec(eps), shots, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("Run(%s, eps=%g): %w", p, eps, err)
	}

	sel := PostSelect(h, prog)
	return Result{
		Protocol:         p,
		Noise:            eps,
		Shots:            shots,
		Completed:        h.Completed,
		SuccessRate:      sel.SuccessRate,
		Output:           sel.Output,
		FidelityEstimate: Fidelity(sel.Output, IdealOutput(p)),
		Degenerate:       sel.Degenerate,
	}, nil
}

// Point is one sweep entry: the empirical result at a noise level next
// to its analytic prediction. Err records a per-level failure; when set,
// Result holds only the identifying fields.
type Point struct {
	Result     Result
	Prediction Prediction
	Err        error
}

// Sweep runs the protocol across the given noise levels, in order, and
// pairs each empirical Result with its Theory prediction.
//
// A level that fails validation (for example ε outside [0,1]) yields a
// Point with Err set and the sweep continues. Cancellation stops the
// sweep and returns the points completed so far together with ctx.Err().
func Sweep(ctx context.Context, p circuit.Protocol, levels []float64, shots int, opts ...Option) ([]Point, error) {
	points := make([]Point, 0, len(levels))
	for _, eps := range levels {
		if err := ctx.Err(); err != nil {
			return points, err
		}

		stub := Result{Protocol: p, Noise: eps, Shots: shots}
		pred, err := Theory(p, eps)
		if err != nil {
			points = append(points, Point{Result: stub, Err: err})
			continue
		}

		res, err := Run(ctx, p, eps, shots, opts...)
		if err != nil {
			if ctx.Err() != nil {
				return points, ctx.Err()
			}
			points = append(points, Point{Result: stub, Prediction: pred, Err: err})
			continue
		}
		points = append(points, Point{Result: res, Prediction: pred})
	}
	return points, nil
}
