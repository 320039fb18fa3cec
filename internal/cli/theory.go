// SPDX-License-Identifier: MIT
// Package: qdistill/internal/cli
//
// theory.go — closed-form prediction subcommand.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qdistill/circuit"
	"github.com/katalvlaran/qdistill/distill"
)

// TheoryOptions holds flags for the theory command.
type TheoryOptions struct {
	*RootOptions
	Protocol string
	Noise    float64
}

// NewTheoryCommand creates the theory command.
func NewTheoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TheoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "theory",
		Short: "Print the analytic prediction for a protocol",
		Long: `Theory prints the closed-form output error rate, fidelity and
acceptance probability for one protocol at one noise level, without
running any simulation.

Example:
  qdistill theory --protocol magic15ring --noise 0.001`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proto, err := circuit.ParseProtocol(opts.Protocol)
			if err != nil {
				return err
			}
			pred, err := distill.Theory(proto, opts.Noise)
			if err != nil {
				return err
			}
			writePrediction(cmd.OutOrStdout(), proto, opts.Noise, pred)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Protocol, "protocol", "", "protocol name (bbpssw|magic3|magic15ring|magic15star)")
	cmd.Flags().Float64Var(&opts.Noise, "noise", 0, "depolarizing strength in [0,1]")
	_ = cmd.MarkFlagRequired("protocol")

	return cmd
}
