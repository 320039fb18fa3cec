// SPDX-License-Identifier: MIT
// Package: qdistill/sampler
//
// options.go — functional options for Run.
//
// Contract:
//   - Options carry only run-shaping knobs; the physics inputs (program,
//     noise spec, shot count) stay positional on Run.
//   - Option constructors panic on invalid arguments: a bad worker count
//     is a programming error, caught at configuration time rather than
//     surfacing as a hung or skewed run.

package sampler

import "runtime"

// Options configures a sampling run.
//
// Seed    – base seed for the per-shot random streams. Two runs with the
//
//	same seed produce identical histograms.
//
// Workers – number of concurrent shot executors. Defaults to
//
//	runtime.NumCPU(); capped at the shot count internally.
type Options struct {
	Seed    int64 // Base seed; per-shot streams are derived from it
	Workers int   // Concurrent shot executors (>= 1)
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// defaultOptions returns the baseline configuration Run starts from.
func defaultOptions() Options {
	return Options{
		Seed:    defaultSeed,
		Workers: runtime.NumCPU(),
	}
}

// WithSeed sets the base seed for the run's random streams.
// Any value is valid; 0 is kept verbatim (the default is non-zero).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets the number of concurrent shot executors.
// Must pass a value >= 1; anything lower causes ErrBadWorkerCount.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkerCount.Error())
		}
		o.Workers = n
	}
}
