package main

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
)

// Config holds the settings of the command. A config file is YAML, e.g.
//
//	prompt: "> "
//	trace: false
//	strict_division: true
type Config struct {
	// Prompt is printed before reading each token from a terminal.
	Prompt string `json:"prompt"`
	// Echo prints the term so far after every token even when the input is
	// not a terminal.
	Echo bool `json:"echo"`
	// Trace prints the term after every reduction.
	Trace bool `json:"trace"`
	// StrictDivision reports division by zero as an error.
	StrictDivision bool `json:"strict_division"`
	// Dump prints each token sequence before it is evaluated.
	Dump bool `json:"dump"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Prompt: "Input: ",
		Trace:  true,
	}
}

// LoadConfig reads a config file. Settings missing from the file keep their
// defaults.
func LoadConfig(name string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}
