// Package config loads the optional bindings file. The tool works
// without any configuration; a config file only adds named aliases for
// target lists, so keybindings can say "overfocus tab-next" instead of
// spelling out the full sequence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/korreman/sway-overfocus/internal/target"
)

const (
	DefaultConfigDir  = ".config/overfocus"
	DefaultConfigFile = "config.yaml"
)

// Config is the parsed bindings file.
type Config struct {
	// Bindings maps an alias to an ordered target token list.
	Bindings map[string][]string `yaml:"bindings" json:"bindings"`
}

// DefaultPath returns the default config location, or "" when the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// Load reads and validates a config file. Supports both .yaml and
// .json extensions.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks every binding: a nonempty name, at least one target,
// and every token parseable by the target grammar.
func (c *Config) Validate() error {
	for name, tokens := range c.Bindings {
		if name == "" {
			return fmt.Errorf("binding with empty name")
		}
		if len(tokens) == 0 {
			return fmt.Errorf("binding %s: no targets", name)
		}
		for _, tok := range tokens {
			if _, err := target.Parse(tok); err != nil {
				return fmt.Errorf("binding %s: %w", name, err)
			}
		}
	}
	return nil
}

// Resolve expands a binding name to its parsed target list. Returns
// false when the name is unknown.
func (c *Config) Resolve(name string) ([]target.Target, bool) {
	tokens, ok := c.Bindings[name]
	if !ok {
		return nil, false
	}
	targets, err := target.ParseAll(tokens)
	if err != nil {
		// Validate has already run; an error here means the config was
		// mutated after loading.
		return nil, false
	}
	return targets, true
}
