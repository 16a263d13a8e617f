package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/gsh"
)

// Config is the optional YAML configuration of the shell.
type Config struct {
	// Prompt shown before each command line in interactive mode.
	Prompt string `yaml:"prompt"`
	// Banner controls the startup banner in interactive mode.
	Banner bool `yaml:"banner"`
	// Plain disables markdown rendering of help text.
	Plain bool `yaml:"plain"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Prompt: gsh.DefaultPrompt,
		Banner: true,
	}
}

// LoadConfig reads path over the defaults. A missing file is only an
// error when the user named the path explicitly.
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
