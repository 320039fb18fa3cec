// SPDX-License-Identifier: MIT
// Package: qdistill/internal/cli
//
// config.go — YAML sweep configuration.
//
// Contract:
//   - Unknown fields are rejected, so a typo in a config file fails
//     loudly instead of silently falling back to a default.
//   - Validation happens at load time; a config that loads is runnable.

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qdistill/circuit"
)

// defaultMatchTolerance is the |simulated − predicted| bound under which
// a sweep row is marked as agreeing with theory.
const defaultMatchTolerance = 0.05

// ErrBadSweepConfig is returned for structurally invalid sweep configs.
var ErrBadSweepConfig = errors.New("cli: invalid sweep config")

// SweepConfig describes one sweep: a protocol sampled across a list of
// noise levels.
type SweepConfig struct {
	Protocol  string    `yaml:"protocol"`
	Shots     int       `yaml:"shots"`
	Seed      int64     `yaml:"seed"`
	Workers   int       `yaml:"workers"`
	Levels    []float64 `yaml:"levels"`
	Tolerance float64   `yaml:"tolerance"`
}

// LoadSweepConfig reads and validates a sweep YAML file.
func LoadSweepConfig(path string) (*SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sweep config: %w", err)
	}

	var cfg SweepConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse sweep config %s: %w", path, err)
	}

	if _, err := circuit.ParseProtocol(cfg.Protocol); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSweepConfig, err)
	}
	if cfg.Shots <= 0 {
		return nil, fmt.Errorf("%w: shots must be > 0, got %d", ErrBadSweepConfig, cfg.Shots)
	}
	if len(cfg.Levels) == 0 {
		return nil, fmt.Errorf("%w: at least one noise level required", ErrBadSweepConfig)
	}
	if cfg.Tolerance < 0 {
		return nil, fmt.Errorf("%w: tolerance must be >= 0, got %g", ErrBadSweepConfig, cfg.Tolerance)
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = defaultMatchTolerance
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	return &cfg, nil
}
