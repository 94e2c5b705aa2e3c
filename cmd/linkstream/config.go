package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkstream/stream"
)

// Config holds the defaults read from the yaml file. Positional arguments and
// flags win over it.
type Config struct {
	// Delta is the Δ window used when DELTA is not given.
	Delta stream.Time `yaml:"delta"`
	// Nodes is the node count used when NBNODES is not given.
	Nodes int `yaml:"nodes"`
	// Policy is "lower" or "upper".
	Policy string `yaml:"policy"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
	// Ascending means the input is sorted oldest first.
	Ascending bool `yaml:"ascending"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{Policy: "lower"}
}

// loadConfig reads path on top of DefaultConfig, then applies the
// LINKSTREAM_DELTA and LINKSTREAM_NODES environment overrides. A missing file
// is not an error.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	default:
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
		}
	}

	if v, ok := os.LookupEnv("LINKSTREAM_DELTA"); ok {
		d, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("LINKSTREAM_DELTA: %w", err)
		}
		cfg.Delta = d
	}
	if v, ok := os.LookupEnv("LINKSTREAM_NODES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("LINKSTREAM_NODES: %w", err)
		}
		cfg.Nodes = n
	}

	return cfg, nil
}
