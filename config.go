package grove

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds session settings read from a YAML file.
type Config struct {
	Prompt  string   `yaml:"prompt"`
	History string   `yaml:"history"`
	// Prelude controls loading of the bundled library, on unless set to
	// false. The library binds version, space and empty, so a session set up
	// with it does not start empty; user assignments may rebind those names.
	Prelude *bool    `yaml:"prelude"`
	Preload []string `yaml:"preload"`
	Trace   bool     `yaml:"trace"`
	Jobs    int      `yaml:"jobs"`
}

const (
	DefaultPrompt  = "Grove>> "
	DefaultHistory = ".grove_history"
)

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prompt:  DefaultPrompt,
		History: DefaultHistory,
	}
}

// LoadConfig reads the YAML file at path over the defaults. Unknown keys are errors.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeConfig(f, path)
}

// DecodeConfig reads YAML settings from r; name is used in error messages.
func DecodeConfig(r io.Reader, name string) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", name, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	for _, m := range c.Preload {
		if !IsIdentifier(m) {
			return fmt.Errorf("preload: invalid module name %q", m)
		}
	}
	return nil
}

// UsePrelude reports whether the bundled library should be loaded.
func (c *Config) UsePrelude() bool {
	return c.Prelude == nil || *c.Prelude
}

// Setup prepares a fresh env according to c.
func (c *Config) Setup(env *Env) error {
	if c.Trace {
		env.SetTrace(os.Stderr)
	}
	if c.UsePrelude() {
		if err := LoadLib(env); err != nil {
			return err
		}
	}
	for _, m := range c.Preload {
		if err := env.Import(m); err != nil {
			return err
		}
	}
	return nil
}
