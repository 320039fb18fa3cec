// SPDX-License-Identifier: MIT
// Package: qdistill/internal/cli
//
// run.go — single-experiment subcommand.

package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/theapemachine/errnie"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/distill"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Protocol string
	Noise    float64
	Shots    int
	Seed     int64
	Workers  int
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one distillation experiment",
		Long: `Run samples one protocol at one noise level and reports the
post-selected result.

Example:
  qdistill run --protocol bbpssw --noise 0.0 --shots 10000
  qdistill run --protocol magic15ring --noise 0.001 --shots 2000 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Protocol, "protocol", "", "protocol name (bbpssw|magic3|magic15ring|magic15star)")
	cmd.Flags().Float64Var(&opts.Noise, "noise", 0, "depolarizing strength in [0,1]")
	cmd.Flags().IntVar(&opts.Shots, "shots", 10000, "number of shots")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "base random seed")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "shot executors (0 = one per CPU)")
	_ = cmd.MarkFlagRequired("protocol")

	return cmd
}

func runExperiment(cmd *cobra.Command, opts *RunOptions) error {
	proto, err := circuit.ParseProtocol(opts.Protocol)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.Verbose {
		errnie.Info("run - protocol %s, noise %.4f, shots %d, seed %d",
			proto, opts.Noise, opts.Shots, opts.Seed)
	}

	sampleOpts := []distill.Option{distill.WithSeed(opts.Seed)}
	if opts.Workers > 0 {
		sampleOpts = append(sampleOpts, distill.WithWorkers(opts.Workers))
	}

	res, err := distill.Run(ctx, proto, opts.Noise, opts.Shots, sampleOpts...)
	if err != nil {
		return err
	}

	writeResult(cmd.OutOrStdout(), res)
	return nil
}
