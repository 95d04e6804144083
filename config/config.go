// Package config loads the launcher's YAML configuration: the wire server's
// listen address, its stop-poll read timeout, and the driver command the
// launcher spawns for the "run" subcommand.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/anuragh27crony/cucumberwire/server"
)

// Config is the launcher's full configuration surface.
type Config struct {
	// Listen is the wire server's bind address, e.g. "0.0.0.0:7878".
	Listen string `yaml:"listen"`
	// ReadTimeout is parsed from the file but is not passed to the server:
	// the server's read loop always waits its fixed one-second poll interval
	// between stop polls.
	ReadTimeout time.Duration `yaml:"read_timeout"`
	// Driver is the command line of the external driver process the "run"
	// subcommand spawns after the server is listening, grounded on
	// helpers.rs's cucumber_command().
	Driver []string `yaml:"driver"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{Listen: server.DefaultAddr}
}

// Load reads and parses a YAML configuration file at path. Missing fields
// fall back to Default()'s values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Listen == "" {
		cfg.Listen = server.DefaultAddr
	}
	return cfg, nil
}
