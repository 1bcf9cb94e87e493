// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config describes one optical train: the state entering it, the elements
// in the order the light meets them, and how results are printed.
type Config struct {
	Input    InputConfig     `yaml:"input"`
	Elements []ElementConfig `yaml:"elements"`
	Output   OutputConfig    `yaml:"output"`
}

// InputConfig selects the entering state. Exactly one field must be set.
type InputConfig struct {
	State   string        `yaml:"state,omitempty"`
	Jones   *JonesInput   `yaml:"jones,omitempty"`
	Stokes  []float64     `yaml:"stokes,omitempty"`
	Ellipse *EllipseInput `yaml:"ellipse,omitempty"`
}

// JonesInput holds Ex and Ey as [re, im] pairs.
type JonesInput struct {
	Ex []float64 `yaml:"ex"`
	Ey []float64 `yaml:"ey"`
}

// EllipseInput holds the ellipse amplitudes and the phase in degrees.
type EllipseInput struct {
	E0x      float64 `yaml:"e0x"`
	E0y      float64 `yaml:"e0y"`
	PhaseDeg float64 `yaml:"phase_deg"`
}

// ElementConfig is one optical element. Angles are in degrees.
type ElementConfig struct {
	Kind          string   `yaml:"kind"`
	Name          string   `yaml:"name,omitempty"`
	AngleDeg      float64  `yaml:"angle_deg,omitempty"`
	RetardanceDeg float64  `yaml:"retardance_deg,omitempty"`
	Transparency  *float64 `yaml:"transparency,omitempty"`
}

// OutputConfig controls rendering and the agreement check.
type OutputConfig struct {
	Degrees bool    `yaml:"degrees"`
	Epsilon float64 `yaml:"epsilon"`
}

// Default returns a small sample train: diagonal light through a
// horizontal polarizer and a quarter-wave plate at 45°.
func Default() *Config {
	return &Config{
		Input: InputConfig{State: "linear_diagonal"},
		Elements: []ElementConfig{
			{Kind: kindPolarizer, AngleDeg: 0},
			{Kind: kindQuarterWave, AngleDeg: 45},
		},
		Output: defaultOutput(),
	}
}

func defaultOutput() OutputConfig {
	return OutputConfig{Degrees: true, Epsilon: 1e-9}
}

// Load reads a train from a YAML file. Output settings missing from the
// file keep their defaults; input and elements come from the file only.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a train from YAML bytes.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{Output: defaultOutput()}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads config from path, or returns Default if not found.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return Default().Save(path)
}
