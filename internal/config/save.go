package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileHeader = "# libsm64-go simulation config\n"

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Simulation.CellSize <= 0:
		return fmt.Errorf("simulation.cell_size must be positive, got %d", c.Simulation.CellSize)
	case c.Simulation.MaxTriangles <= 0:
		return fmt.Errorf("simulation.max_triangles must be positive, got %d", c.Simulation.MaxTriangles)
	case c.Simulation.MaxInstances < 0:
		return fmt.Errorf("simulation.max_instances must not be negative, got %d", c.Simulation.MaxInstances)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}

// Marshal renders the config as a commented YAML document.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo validates the config and writes it to path, creating parent
// directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
