package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds editor preferences, read from an optional curvelab.toml
// next to the binary. A missing file yields the defaults; a malformed one
// is an error.
type Config struct {
	Port        int  `toml:"port"`
	Share       bool `toml:"share"`
	SampleSteps int  `toml:"sample_steps"`

	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`

	ViewOffset [2]float64 `toml:"view_offset"`
	ViewRange  [2]float64 `toml:"view_range"`

	// Seed curve; parallel slices, times strictly increasing.
	SeedTimes  []float64 `toml:"seed_times"`
	SeedValues []float64 `toml:"seed_values"`
}

func Default() Config {
	return Config{
		Port:         8890,
		Share:        true,
		SampleSteps:  256,
		WindowWidth:  1024,
		WindowHeight: 600,
		ViewOffset:   [2]float64{0.0, -0.5},
		ViewRange:    [2]float64{2.0, 3.5},
		SeedTimes:    []float64{0, 1, 1.3, 1.6, 1.7, 1.8, 1.9, 2},
		SeedValues:   []float64{3, 0, 1, 0, 0.5, 0, 0.25, 0},
	}
}

// Load reads path over the defaults. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(cfg.SeedTimes) != len(cfg.SeedValues) {
		return cfg, fmt.Errorf("%s: seed_times and seed_values must have the same length", path)
	}
	if cfg.SampleSteps < 2 {
		cfg.SampleSteps = 2
	}
	return cfg, nil
}
