// Package uq evaluates parameter uncertainty in a device design point by
// sampling perturbed parameter sets, running the build calculators on each,
// and analysing the spread of a chosen figure of merit.
//
// Three methods are supported: plain Monte Carlo sampling, the Morris
// elementary-effects screening method, and Saltelli sampling with Sobol
// first-order and total-order sensitivity indices. The driver consumes only
// the machine-record output of each evaluation, never solver internals.
package uq

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/fusionkit/torus/pkg/errors"
)

// =============================================================================
// Method & Distribution
// =============================================================================

// Method selects the uncertainty analysis technique.
type Method string

const (
	MonteCarlo Method = "monte_carlo"
	Morris     Method = "morris"
	Sobol      Method = "sobol"
)

// Distribution names the sampling distribution of one uncertain parameter.
type Distribution string

const (
	Uniform    Distribution = "uniform"
	Normal     Distribution = "normal"
	HalfNormal Distribution = "halfnormal"
	Triangular Distribution = "triangular"
)

// =============================================================================
// Configuration
// =============================================================================

// Parameter is one uncertain input.
type Parameter struct {
	Name string       `toml:"name"` // input symbol, e.g. "dr_blkt_outboard"
	Dist Distribution `toml:"dist"`

	// Bounds are required for every distribution; Morris and Saltelli
	// sample the [Lower, Upper] box directly.
	Lower float64 `toml:"lower_bound"`
	Upper float64 `toml:"upper_bound"`

	Mean   float64 `toml:"mean"`    // normal, halfnormal
	StdDev float64 `toml:"std_dev"` // normal, halfnormal
	Mode   float64 `toml:"mode"`    // triangular
}

// Config is the study configuration, loaded from TOML.
type Config struct {
	Method        Method  `toml:"method"`
	Samples       int     `toml:"no_samples"`
	Seed          uint64  `toml:"seed"`
	FigureOfMerit string  `toml:"figure_of_merit"`
	OutputMean    float64 `toml:"output_mean"` // FoM substitute for failed runs
	MorrisLevels  int     `toml:"morris_levels"`
	Workers       int     `toml:"workers"` // 0 means one per CPU

	Parameters []Parameter `toml:"parameters"`
}

// LoadConfig reads and validates a study configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read uq config: %w", err)
	}
	cfg := &Config{
		Method:        MonteCarlo,
		Samples:       100,
		Seed:          1,
		FigureOfMerit: "fwarea",
		MorrisLevels:  4,
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse uq config: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown key %q in uq config", undec[0].String())
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("uq config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Method {
	case MonteCarlo, Morris, Sobol:
	default:
		return fmt.Errorf("unknown method %q", c.Method)
	}
	if c.Samples < 1 {
		return fmt.Errorf("no_samples must be positive, got %d", c.Samples)
	}
	if len(c.Parameters) == 0 {
		return fmt.Errorf("no uncertain parameters given")
	}
	if c.Method == Morris && c.MorrisLevels < 2 {
		return fmt.Errorf("morris_levels must be at least 2, got %d", c.MorrisLevels)
	}
	for i, p := range c.Parameters {
		if p.Name == "" {
			return fmt.Errorf("parameter %d has no name", i)
		}
		if err := apperrors.ValidateSymbol(p.Name); err != nil {
			return err
		}
		if err := apperrors.ValidateBounds(p.Name, p.Lower, p.Upper); err != nil {
			return err
		}
		switch p.Dist {
		case Uniform, Triangular:
		case Normal, HalfNormal:
			if p.StdDev <= 0 {
				return fmt.Errorf("parameter %s: std_dev must be positive", p.Name)
			}
		case "":
			return fmt.Errorf("parameter %s has no distribution", p.Name)
		default:
			return fmt.Errorf("parameter %s: unknown distribution %q", p.Name, p.Dist)
		}
	}
	return nil
}
