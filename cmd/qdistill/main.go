// SPDX-License-Identifier: MIT
// Package: qdistill/cmd/qdistill
//
// main.go — binary entry point.

package main

import (
	"os"

	"github.com/katalvlaran/qdistill/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
