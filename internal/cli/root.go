// SPDX-License-Identifier: MIT
// Package: qdistill/internal/cli
//
// root.go — cobra command tree for the qdistill binary.
//
// Contract:
//   - The CLI is a thin reporting boundary: it parses flags, drives the
//     distill package and renders tables. All physics lives below it.
//   - Progress logging happens here and only here; the library packages
//     stay silent.

package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the qdistill CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "qdistill",
		Short: "Monte-Carlo distillation experiments",
		Long: `qdistill simulates entanglement purification and magic-state
distillation circuits under depolarizing noise, post-selects on the
protocol syndromes and reports empirical results next to closed-form
theory predictions.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "progress logging")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewTheoryCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))

	return cmd
}
