package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test simulation defaults
	if cfg.Simulation.CellSize != 1024 {
		t.Errorf("expected cell size 1024, got %d", cfg.Simulation.CellSize)
	}
	if cfg.Simulation.MaxTriangles != 1024 {
		t.Errorf("expected max triangles 1024, got %d", cfg.Simulation.MaxTriangles)
	}
	if cfg.Simulation.TickRate != 30 {
		t.Errorf("expected tick rate 30, got %d", cfg.Simulation.TickRate)
	}

	// Test audio defaults
	if !cfg.Audio.Enabled {
		t.Error("expected audio to be enabled by default")
	}
	if cfg.Audio.SampleRate != 32000 {
		t.Errorf("expected sample rate 32000, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.MasterVolume != 0.8 {
		t.Errorf("expected master volume 0.8, got %f", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.MusicVolume != 0.7 {
		t.Errorf("expected music volume 0.7, got %f", cfg.Audio.MusicVolume)
	}

	// Test data defaults
	if cfg.Data.AssetPack != "" {
		t.Errorf("expected built-in asset pack, got %s", cfg.Data.AssetPack)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestTickInterval(t *testing.T) {
	s := SimulationConfig{TickRate: 30}
	if got := s.TickInterval(); got != time.Second/30 {
		t.Errorf("expected %v, got %v", time.Second/30, got)
	}

	s.TickRate = 0
	if got := s.TickInterval(); got != time.Second/30 {
		t.Errorf("expected fallback %v, got %v", time.Second/30, got)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
simulation:
  cell_size: 512
  max_triangles: 256
  tick_rate: 60
  ticks: 90
  max_instances: 4

audio:
  enabled: false
  sample_rate: 44100
  master_volume: 0.5
  muted: true

data:
  asset_pack: "mario.pack"
  level: "levels/plaza.yaml"

logging:
  level: "debug"
  log_file: "sim.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Simulation.CellSize != 512 {
		t.Errorf("expected cell size 512, got %d", cfg.Simulation.CellSize)
	}
	if cfg.Simulation.MaxTriangles != 256 {
		t.Errorf("expected max triangles 256, got %d", cfg.Simulation.MaxTriangles)
	}
	if cfg.Simulation.TickRate != 60 {
		t.Errorf("expected tick rate 60, got %d", cfg.Simulation.TickRate)
	}
	if cfg.Simulation.MaxInstances != 4 {
		t.Errorf("expected max instances 4, got %d", cfg.Simulation.MaxInstances)
	}

	if cfg.Audio.Enabled {
		t.Error("expected audio to be disabled")
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("expected sample rate 44100, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("expected master volume 0.5, got %f", cfg.Audio.MasterVolume)
	}
	// Untouched keys keep their defaults
	if cfg.Audio.FrameMs != 33 {
		t.Errorf("expected frame 33ms, got %d", cfg.Audio.FrameMs)
	}

	if cfg.Data.AssetPack != "mario.pack" {
		t.Errorf("expected asset pack mario.pack, got %s", cfg.Data.AssetPack)
	}
	if cfg.Data.Level != "levels/plaza.yaml" {
		t.Errorf("expected level levels/plaza.yaml, got %s", cfg.Data.Level)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sim.log" {
		t.Errorf("expected log file 'sim.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
simulation:
  cell_size: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("simulation:\n  ticks: 10\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "level flag",
			setup: func() { *flagLevel = "castle.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Data.Level != "castle.yaml" {
					t.Errorf("expected level castle.yaml, got %s", cfg.Data.Level)
				}
			},
			teardown: func() { *flagLevel = "" },
		},
		{
			name:  "ticks flag",
			setup: func() { *flagTicks = 45 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Simulation.Ticks != 45 {
					t.Errorf("expected 45 ticks, got %d", cfg.Simulation.Ticks)
				}
			},
			teardown: func() { *flagTicks = 0 },
		},
		{
			name: "pack and record flags",
			setup: func() {
				*flagPack = "custom.pack"
				*flagRecord = "run.replay"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Data.AssetPack != "custom.pack" {
					t.Errorf("expected pack custom.pack, got %s", cfg.Data.AssetPack)
				}
				if cfg.Data.Record != "run.replay" {
					t.Errorf("expected record run.replay, got %s", cfg.Data.Record)
				}
			},
			teardown: func() {
				*flagPack = ""
				*flagRecord = ""
			},
		},
		{
			name:  "no-audio flag",
			setup: func() { *flagNoAudio = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Audio.Enabled {
					t.Error("expected audio to be disabled with no-audio flag")
				}
			},
			teardown: func() { *flagNoAudio = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
simulation:
  ticks: 120
  tick_rate: 60
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagTicks = 10
	defer func() {
		*flagConfig = ""
		*flagTicks = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Ticks from flag, tick rate from file
	if cfg.Simulation.Ticks != 10 {
		t.Errorf("expected 10 ticks from flag, got %d", cfg.Simulation.Ticks)
	}
	if cfg.Simulation.TickRate != 60 {
		t.Errorf("expected tick rate 60 from file, got %d", cfg.Simulation.TickRate)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Simulation.Ticks = 77
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Simulation.Ticks != 77 {
		t.Errorf("expected 77 ticks after reload, got %d", loaded.Simulation.Ticks)
	}
}

func TestSaveToWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Default().SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), fileHeader) {
		t.Errorf("saved config does not start with the header: %q", data[:20])
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	cfg := Default()
	cfg.Simulation.CellSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a zero cell size")
	}
	if err := cfg.SaveTo(filepath.Join(t.TempDir(), "bad.yaml")); err == nil {
		t.Error("expected SaveTo to refuse an invalid config")
	}

	cfg = Default()
	cfg.Audio.SampleRate = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a zero sample rate with audio on")
	}
	cfg.Audio.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample rate is irrelevant with audio off: %v", err)
	}
}
