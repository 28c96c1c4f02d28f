package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/libsm64-go/internal/config"
	"github.com/Faultbox/libsm64-go/internal/replay"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Audio.Enabled = false
	cfg.Data.Record = filepath.Join(t.TempDir(), "run.replay")
	return cfg
}

func TestRunRecordsAndVerifies(t *testing.T) {
	cfg := testConfig(t)

	sim, err := newSimulation(cfg)
	require.NoError(t, err)
	require.NoError(t, sim.Run(context.Background()))
	assert.Equal(t, 150, sim.world.Tick())
	sim.Close()

	rec, err := replay.LoadFile(cfg.Data.Record)
	require.NoError(t, err)
	assert.Equal(t, "builtin", rec.Level)
	assert.Len(t, rec.Frames, 150)

	check, err := newSimulation(cfg)
	require.NoError(t, err)
	defer check.Close()
	assert.NoError(t, check.Verify(cfg.Data.Record))
}

func TestRunStopsWhenCancelled(t *testing.T) {
	cfg := testConfig(t)
	sim, err := newSimulation(cfg)
	require.NoError(t, err)
	defer sim.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, sim.Run(ctx))
	assert.Zero(t, sim.world.Tick())

	_, err = os.Stat(cfg.Data.Record)
	assert.NoError(t, err, "the partial replay is still written")
}

func TestStepWatchdog(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Record = ""
	cfg.Simulation.StepTimeout = time.Nanosecond

	sim, err := newSimulation(cfg)
	require.NoError(t, err)
	defer sim.Close()

	assert.ErrorContains(t, sim.Run(context.Background()), "tick 0 took")
}

func TestMissingLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Level = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := newSimulation(cfg)
	assert.Error(t, err)
}
