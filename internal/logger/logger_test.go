package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// capture installs a sink at level and returns the lines it receives.
func capture(t *testing.T, level string) *[]string {
	t.Helper()
	var lines []string
	InitWithSink(level, func(line string) {
		lines = append(lines, line)
	})
	t.Cleanup(Reset)
	return &lines
}

func TestLogRotation(t *testing.T) {
	tempDir := t.TempDir()
	logFile := filepath.Join(tempDir, "sim.log")

	// MaxSize is in MB and lumberjack checks it on every write
	cfg := FileConfig{
		Path:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 2,
		MaxAgeDays: 1,
		Compress:   false,
	}

	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Reset()

	// Roughly 300 bytes per entry, well past 1MB in total
	action := strings.Repeat("walking ", 25)
	for i := 0; i < 15000; i++ {
		Debug("character",
			zap.Int("tick", i),
			zap.Int32("id", int32(i%4)),
			zap.String("action", action))
	}
	Sync()

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		t.Error("main log file does not exist")
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read temp dir: %v", err)
	}

	var logFiles []string
	for _, f := range files {
		if strings.HasPrefix(f.Name(), "sim") && strings.Contains(f.Name(), ".log") {
			logFiles = append(logFiles, f.Name())
		}
	}
	t.Logf("Found %d log files: %v", len(logFiles), logFiles)

	if len(logFiles) < 2 {
		t.Errorf("expected at least 2 log files (rotation), got %d", len(logFiles))
	}
	for _, name := range logFiles {
		// Rotated files look like sim-YYYY-MM-DDTHH-MM-SS.SSS.log
		if name != "sim.log" && !strings.Contains(name, "-20") {
			t.Errorf("rotated file %s doesn't have expected timestamp format", name)
		}
	}
}

func TestSinkLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
		},
		{
			level:    "bogus",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			lines := capture(t, tt.level)

			Debug("geometry buffer full", zap.Int("dropped", 3))
			Info("library initialized")
			Warn("invalid mario handle", zap.Int32("id", 2), zap.String("op", "mario_tick"))
			Error("saving replay", zap.String("path", "run.replay"))

			out := strings.Join(*lines, "\n")
			if got, want := len(*lines), len(tt.expected); got != want {
				t.Errorf("expected %d lines, got %d:\n%s", want, got, out)
			}
			for _, exp := range tt.expected {
				if !strings.Contains(out, exp) {
					t.Errorf("expected %s in sink output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(out, exc) {
					t.Errorf("unexpected %s in sink output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestFileLevels(t *testing.T) {
	tempDir := t.TempDir()

	for _, level := range []string{"warn", "debug"} {
		t.Run(level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, level+".log")
			cfg := DefaultFileConfig(logFile)
			cfg.Compress = false
			if err := InitWithFileConfig(level, cfg, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}
			defer Reset()

			Debug("geometry buffer full", zap.Int("dropped", 3))
			Warn("invalid mario handle", zap.Int32("id", 5), zap.String("op", "mario_delete"))
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(content)

			if !strings.Contains(out, `"id": 5`) || !strings.Contains(out, `"op": "mario_delete"`) {
				t.Errorf("handle fields missing from %q", out)
			}
			if got := strings.Contains(out, "geometry buffer full"); got != (level == "debug") {
				t.Errorf("debug line present=%v at level %s", got, level)
			}
		})
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/sm64sim.log")

	if cfg.Path != "/tmp/sm64sim.log" {
		t.Errorf("expected path /tmp/sm64sim.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 50 || cfg.MaxBackups != 3 || cfg.MaxAgeDays != 7 {
		t.Errorf("unexpected rotation settings %+v", cfg)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestNopBeforeInit(t *testing.T) {
	Reset()
	// Must not panic with no cores installed
	Warn("invalid mario handle", zap.Int32("id", 7), zap.String("op", "mario_tick"))
	Sync()
}

func TestSinkCarriesHandleFields(t *testing.T) {
	lines := capture(t, "info")

	Debug("hidden")
	Warn("invalid mario handle", zap.Int32("id", 3), zap.String("op", "mario_tick"))

	if len(*lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %v", len(*lines), *lines)
	}
	line := (*lines)[0]
	if !strings.Contains(line, "WARN") || !strings.Contains(line, "invalid mario handle") {
		t.Errorf("unexpected line %q", line)
	}
	if !strings.Contains(line, `"id": 3`) {
		t.Errorf("expected id field in %q", line)
	}
	if !strings.Contains(line, `"op": "mario_tick"`) {
		t.Errorf("expected op field in %q", line)
	}
	if strings.HasSuffix(line, "\n") {
		t.Errorf("line should not end with newline: %q", line)
	}
}

func TestSinkReplacedByReinit(t *testing.T) {
	first := capture(t, "debug")
	Info("to first")

	second := capture(t, "debug")
	Info("to second")

	if len(*first) != 1 || len(*second) != 1 {
		t.Fatalf("expected one line per sink, got %v and %v", *first, *second)
	}
	if !strings.Contains((*second)[0], "to second") {
		t.Errorf("unexpected line %q", (*second)[0])
	}
}

func TestInitWithNilSink(t *testing.T) {
	InitWithSink("debug", nil)
	defer Reset()
	Info("dropped")
}
