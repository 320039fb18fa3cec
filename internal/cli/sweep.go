// SPDX-License-Identifier: MIT
// Package: qdistill/internal/cli
//
// sweep.go — noise-sweep subcommand.

package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/theapemachine/errnie"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/distill"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*RootOptions
	Config string
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep a protocol across noise levels",
		Long: `Sweep runs one protocol at every noise level listed in the YAML
config and prints an empirical-versus-theory table.

Example config:

  protocol: magic15ring
  shots: 2000
  seed: 7
  levels: [0.0, 0.001, 0.005, 0.01]
  tolerance: 0.05

Example:
  qdistill sweep --config sweep.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Config, "config", "", "path to sweep YAML (required)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runSweep(cmd *cobra.Command, opts *SweepOptions) error {
	cfg, err := LoadSweepConfig(opts.Config)
	if err != nil {
		return err
	}
	proto, err := circuit.ParseProtocol(cfg.Protocol)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.Verbose {
		errnie.Info("sweep - protocol %s, %d levels, %d shots each, seed %d",
			proto, len(cfg.Levels), cfg.Shots, cfg.Seed)
	}

	sampleOpts := []distill.Option{distill.WithSeed(cfg.Seed)}
	if cfg.Workers > 0 {
		sampleOpts = append(sampleOpts, distill.WithWorkers(cfg.Workers))
	}

	points, err := distill.Sweep(ctx, proto, cfg.Levels, cfg.Shots, sampleOpts...)
	if err != nil {
		// Cancellation still has completed rows worth showing.
		writeSweep(cmd.OutOrStdout(), proto, points, cfg.Tolerance)
		return err
	}

	writeSweep(cmd.OutOrStdout(), proto, points, cfg.Tolerance)
	return nil
}
