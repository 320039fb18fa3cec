// SPDX-License-Identifier: MIT
// Package: qdistill/sampler
//
// sampler.go — Monte-Carlo shot loop over a circuit program.
//
// Contract:
//   - Run executes the program once per shot and counts the resulting
//     classical bitstrings. ΣCounts == Completed always holds.
//   - The histogram is a pure function of (program, spec, shots, seed);
//     worker count and scheduling never change it.
//   - ctx cancellation stops feeding new shots; in-flight shots finish,
//     and the partial histogram is returned together with ctx.Err().
//
// Complexity:
//   - O(shots · ops · 2^qubits) time, O(2^qubits) memory per worker.

package sampler

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/noise"
	"github.com/katalvlaran/qdistill/qstate"
)

// Histogram aggregates the classical outcomes of a sampling run.
// Keys are bitstrings with classical bit 0 leftmost.
type Histogram struct {
	Counts    map[string]int // outcome bitstring → occurrences
	Completed int            // shots that ran to completion
}

// Run samples the program shots times under the given noise specification
// and returns the outcome histogram.
//
// Shots execute concurrently on a small worker pool; each shot derives a
// private random stream from the run seed and its own index, so the
// result is reproducible and independent of scheduling. On cancellation
// the partial histogram is returned alongside ctx.Err(); any shot-level
// execution error aborts the run and is returned wrapped.
func Run(ctx context.Context, prog *circuit.Program, spec noise.Spec, shots int, opts ...Option) (Histogram, error) {
	h := Histogram{Counts: make(map[string]int)}
	if prog == nil {
		return h, ErrNilProgram
	}
	if shots < 0 {
		return h, fmt.Errorf("Run(shots=%d): %w", shots, ErrNegativeShots)
	}
	if err := spec.Validate(); err != nil {
		return h, fmt.Errorf("Run: %w", err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if shots == 0 {
		return h, nil
	}
	workers := o.Workers
	if workers > shots {
		workers = shots
	}

	// Feed shot indices to the pool. Cancellation (external, or internal
	// after a shot error) closes the feed; workers drain and report their
	// local tallies, so every counted shot is a whole shot.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type tally struct {
		counts map[string]int
		err    error
	}
	jobs := make(chan int)
	results := make(chan tally, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make(map[string]int)
			for shot := range jobs {
				key, err := oneShot(prog, spec, shotSeed(o.Seed, uint64(shot)))
				if err != nil {
					results <- tally{counts: local, err: fmt.Errorf("shot %d: %w", shot, err)}
					cancel()
					return
				}
				local[key]++
			}
			results <- tally{counts: local}
		}()
	}

	go func() {
		defer close(jobs)
		for shot := 0; shot < shots; shot++ {
			select {
			case jobs <- shot:
			case <-runCtx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)

	var shotErr error
	for t := range results {
		for key, n := range t.counts {
			h.Counts[key] += n
			h.Completed += n
		}
		if t.err != nil && shotErr == nil {
			shotErr = t.err
		}
	}
	if shotErr != nil {
		return h, shotErr
	}
	if err := ctx.Err(); err != nil {
		return h, err
	}
	return h, nil
}

// oneShot executes the program once on a fresh register and returns the
// classical outcome key. The seed fully determines the shot.
func oneShot(prog *circuit.Program, spec noise.Spec, seed int64) (string, error) {
	rng := rand.New(rand.NewSource(seed))

	sv, err := qstate.New(prog.Qubits)
	if err != nil {
		return "", err
	}
	ch, err := noise.NewChannel(spec, rng)
	if err != nil {
		return "", err
	}

	bits := make(circuit.Bits, prog.ClassicalBits)
	written := make([]bool, prog.ClassicalBits)

	for _, op := range prog.Ops {
		switch op.Kind {
		case circuit.OpH:
			err = sv.H(op.Target)
		case circuit.OpT:
			err = sv.T(op.Target)
		case circuit.OpTdg:
			err = sv.Tdg(op.Target)
		case circuit.OpS:
			err = sv.S(op.Target)
		case circuit.OpSdg:
			err = sv.Sdg(op.Target)
		case circuit.OpRy:
			err = sv.Ry(op.Target, op.Theta)
		case circuit.OpCNOT:
			err = sv.CNOT(op.Control, op.Target)
		case circuit.OpBarrier:
			continue
		case circuit.OpMeasure:
			if op.CBit < 0 || op.CBit >= len(bits) {
				return "", fmt.Errorf("measure q%d into bit %d of %d: %w",
					op.Target, op.CBit, len(bits), ErrBadBit)
			}
			if written[op.CBit] {
				return "", fmt.Errorf("classical bit %d: %w", op.CBit, ErrBitRewritten)
			}
			var outcome int
			if outcome, err = sv.Measure(op.Target, op.Basis, rng); err == nil {
				bits[op.CBit] = uint8(outcome)
				written[op.CBit] = true
			}
		default:
			return "", fmt.Errorf("op kind %d: %w", op.Kind, ErrUnknownOp)
		}
		if err != nil {
			return "", fmt.Errorf("%s: %w", op.Kind, err)
		}
		if op.Kind.Noisy() {
			targets := []int{op.Target}
			if op.Control >= 0 {
				targets = []int{op.Control, op.Target}
			}
			if err = ch.AfterGate(sv, targets...); err != nil {
				return "", fmt.Errorf("noise after %s: %w", op.Kind, err)
			}
		}
	}

	for i, w := range written {
		if !w {
			return "", fmt.Errorf("classical bit %d: %w", i, ErrBitUnwritten)
		}
	}
	return bits.String(), nil
}
