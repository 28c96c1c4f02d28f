// Package config handles simulation configuration loading and management.
package config

import "time"

// Config holds all simulation settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Audio      AudioConfig      `yaml:"audio"`
	Data       DataConfig       `yaml:"data"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DataConfig holds data file paths.
type DataConfig struct {
	AssetPack string `yaml:"asset_pack"` // Empty selects the built-in pack
	Level     string `yaml:"level"`      // YAML level description
	Record    string `yaml:"record"`     // Replay output path
	Verify    string `yaml:"verify"`     // Replay to check instead of running the script
}

// SimulationConfig holds core simulation tuning.
type SimulationConfig struct {
	CellSize     int           `yaml:"cell_size"`
	MaxTriangles int           `yaml:"max_triangles"`
	TickRate     int           `yaml:"tick_rate"`
	Ticks        int           `yaml:"ticks"`
	MaxInstances int           `yaml:"max_instances"` // 0 means unbounded
	StepTimeout  time.Duration `yaml:"step_timeout"`  // 0 disables the watchdog
	Realtime     bool          `yaml:"realtime"`      // pace ticks at TickRate
}

// TickInterval returns the wall-clock length of one tick.
func (s SimulationConfig) TickInterval() time.Duration {
	if s.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(s.TickRate)
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	FrameMs      int     `yaml:"frame_ms"`
	MasterVolume float32 `yaml:"master_volume"`
	MusicVolume  float32 `yaml:"music_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			CellSize:     1024,
			MaxTriangles: 1024,
			TickRate:     30,
			Ticks:        300,
			MaxInstances: 0,
			StepTimeout:  0,
			Realtime:     false,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   32000,
			FrameMs:      33,
			MasterVolume: 0.8,
			MusicVolume:  0.7,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
