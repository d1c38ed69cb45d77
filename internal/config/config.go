package config

import (
	"fmt"
	"os"

	"github.com/san-kum/love/internal/message"
	"gopkg.in/yaml.v3"
)

const (
	DefaultColor  = "white"
	DefaultPetite = false
)

// Config is the snapshot the animation runs with. It is built once at
// startup and not modified afterwards.
type Config struct {
	Message string `yaml:"message"`
	Petite  bool   `yaml:"petite"`
	Color   string `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Petite: DefaultPetite,
		Color:  DefaultColor,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the message length and returns a copy with the message
// sanitized for terminal output.
func (c *Config) Validate() (*Config, error) {
	msg, err := message.Validate(c.Message)
	if err != nil {
		return nil, err
	}
	out := *c
	out.Message = msg
	return &out, nil
}
