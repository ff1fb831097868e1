// Package config loads CLI driver settings from an optional YAML file,
// merged under command-line flags, following the flag-plus-struct pattern
// the CLI and benchmark commands use elsewhere in this codebase.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Run describes one layout run: graph shape, frame size and simulation
// schedule.
type Run struct {
	Vertices    int     `yaml:"vertices"`
	Probability float64 `yaml:"probability"`
	Seed        uint64  `yaml:"seed"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	C      float64 `yaml:"scaling_constant"`

	Iterations   int     `yaml:"iterations"`
	Temperature  float64 `yaml:"temperature"`
	CoolingRate  float64 `yaml:"cooling_rate"`
	TMin         float64 `yaml:"temperature_floor"`
	Strategy     string  `yaml:"strategy"` // "bruteforce" or "barneshut"
	Theta        float64 `yaml:"theta"`

	OutputDir string `yaml:"output_dir"`
}

// Default returns the baseline run configuration, matching the defaults
// documented for LayoutEngine and the standard Barnes-Hut theta.
func Default() Run {
	return Run{
		Vertices:    100,
		Probability: 0.05,
		Width:       1000,
		Height:      1000,
		C:           1.0,
		Iterations:  200,
		Temperature: 100,
		CoolingRate: 0.95,
		TMin:        1e-3,
		Strategy:    "bruteforce",
		Theta:       0.5,
		OutputDir:   ".",
	}
}

// Load reads a YAML file at path and merges its fields into base, returning
// the merged Run. Every field present (non-zero) in the file overrides
// base; fields the file omits keep base's value. Seed is the one exception:
// it merges unconditionally so an explicit "seed: 0" in the file is
// honored rather than mistaken for "not set".
func Load(path string, base Run) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var override Run
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Run{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	merged := base
	if override.Vertices != 0 {
		merged.Vertices = override.Vertices
	}
	if override.Probability != 0 {
		merged.Probability = override.Probability
	}
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.Height != 0 {
		merged.Height = override.Height
	}
	if override.C != 0 {
		merged.C = override.C
	}
	if override.Iterations != 0 {
		merged.Iterations = override.Iterations
	}
	if override.Temperature != 0 {
		merged.Temperature = override.Temperature
	}
	if override.CoolingRate != 0 {
		merged.CoolingRate = override.CoolingRate
	}
	if override.TMin != 0 {
		merged.TMin = override.TMin
	}
	if override.Strategy != "" {
		merged.Strategy = override.Strategy
	}
	if override.Theta != 0 {
		merged.Theta = override.Theta
	}
	if override.OutputDir != "" {
		merged.OutputDir = override.OutputDir
	}
	merged.Seed = override.Seed

	return merged, nil
}
