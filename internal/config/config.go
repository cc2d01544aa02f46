// Package config loads the relay CLI configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/relay/internal/logging"
	"github.com/aretw0/relay/pkg/codec"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file read when no --config flag is given.
const DefaultPath = "relay.yaml"

// Config holds the settings of a relay store built by the CLI.
type Config struct {
	LogLevel        string   `yaml:"log_level" json:"log_level"`
	Codec           string   `yaml:"codec" json:"codec"`
	Strict          bool     `yaml:"strict" json:"strict"`
	StrictEnvelopes bool     `yaml:"strict_envelopes" json:"strict_envelopes"`
	Recover         bool     `yaml:"recover" json:"recover"`
	Metrics         bool     `yaml:"metrics" json:"metrics"`
	People          []string `yaml:"people" json:"people"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel: "info",
		Codec:    "json",
	}
}

// Load reads path (YAML, or JSON by extension) over the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := codec.ByName(c.Codec); err != nil {
		return err
	}
	return nil
}
