package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/config"
	"github.com/Faultbox/libsm64-go/internal/level"
	"github.com/Faultbox/libsm64-go/internal/logger"
	"github.com/Faultbox/libsm64-go/internal/mario"
	"github.com/Faultbox/libsm64-go/internal/replay"
	"github.com/Faultbox/libsm64-go/pkg/sm64"
)

// builtinLevel runs when no level file is configured.
const builtinLevel = `
name: builtin
floors:
  - {y: 0, min_x: -4000, min_z: -4000, max_x: 4000, max_z: 4000}
spawns:
  - name: mario
    position: [0, 0, 0]
script:
  - ticks: 30
  - ticks: 90
    stick: [0, -1]
  - ticks: 30
    a: true
`

// simulation owns everything one run needs.
type simulation struct {
	cfg   *config.Config
	lib   *sm64.Library
	level *level.Level
	world *level.World
	buf   *sm64.GeometryBuffers

	recorder *replay.Recorder
	samples  atomic.Int64
}

func newSimulation(cfg *config.Config) (*simulation, error) {
	s := &simulation{cfg: cfg}

	opts := sm64.DefaultOptions()
	opts.CellSize = cfg.Simulation.CellSize
	opts.MaxInstances = cfg.Simulation.MaxInstances
	opts.Audio = cfg.Audio.Enabled
	opts.SampleRate = cfg.Audio.SampleRate
	opts.LogLevel = cfg.Logging.Level
	if cfg.Audio.FrameMs > 0 {
		opts.Frame = time.Duration(cfg.Audio.FrameMs) * time.Millisecond
	}
	opts.Sink = audio.SinkFunc(func(pcm []int16) error {
		s.samples.Add(int64(len(pcm)))
		return nil
	})
	s.lib = sm64.NewLibrary(opts)

	var blob []byte
	if path := cfg.Data.AssetPack; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading pack %s: %w", path, err)
		}
		blob = data
	}
	if _, err := s.lib.GlobalInit(blob, nil); err != nil {
		return nil, err
	}

	if a := s.lib.Audio(); a != nil {
		a.SetMasterVolume(float64(cfg.Audio.MasterVolume))
		a.SetMusicVolume(float64(cfg.Audio.MusicVolume))
		a.SetSFXVolume(float64(cfg.Audio.SFXVolume))
		a.SetMuted(cfg.Audio.Muted)
	}

	var err error
	if cfg.Data.Level != "" {
		s.level, err = level.Load(cfg.Data.Level)
	} else {
		s.level, err = level.Parse([]byte(builtinLevel))
	}
	if err != nil {
		s.Close()
		return nil, err
	}

	s.world, err = s.level.Apply(s.lib)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.buf = sm64.NewGeometryBuffers(cfg.Simulation.MaxTriangles)

	if cfg.Data.Record != "" {
		names := make([]string, len(s.world.Characters))
		for i, c := range s.world.Characters {
			names[i] = c.Name
		}
		if s.recorder, err = replay.NewRecorder(s.level, names); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

// ticks returns how long the run lasts: the script length when the level
// has one, the configured tick count otherwise.
func (s *simulation) ticks() int {
	if d := s.level.Duration(); d > 0 {
		return d
	}
	return s.cfg.Simulation.Ticks
}

// Run steps the world to the end of the run or until ctx is cancelled.
func (s *simulation) Run(ctx context.Context) error {
	total := s.ticks()
	logger.Info("running",
		zap.String("level", s.level.Name),
		zap.Int("ticks", total),
		zap.Bool("realtime", s.cfg.Simulation.Realtime))

	var pace <-chan time.Time
	if s.cfg.Simulation.Realtime {
		ticker := time.NewTicker(s.cfg.Simulation.TickInterval())
		defer ticker.Stop()
		pace = ticker.C
	}

	start := time.Now()
	for s.world.Tick() < total {
		if pace != nil {
			select {
			case <-ctx.Done():
				return s.finish(ctx.Err())
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return s.finish(err)
		}

		if err := s.step(); err != nil {
			return s.finish(err)
		}
	}

	logger.Info("run complete",
		zap.Int("ticks", s.world.Tick()),
		zap.Duration("elapsed", time.Since(start)))
	return s.finish(nil)
}

// step runs one tick under the watchdog.
func (s *simulation) step() error {
	tick := s.world.Tick()
	begin := time.Now()

	ins := s.world.Step(s.buf, nil)
	if s.recorder != nil {
		s.recorder.Record(tick, ins, s.world.States())
	}

	took := time.Since(begin)
	if limit := s.cfg.Simulation.StepTimeout; limit > 0 && took > limit {
		return fmt.Errorf("tick %d took %v, limit %v", tick, took, limit)
	}
	if s.buf.Dropped > 0 {
		logger.Debug("geometry buffer full",
			zap.Int("tick", tick),
			zap.Int("dropped", s.buf.Dropped))
	}
	return nil
}

// finish writes the replay and logs every character's final state. cause
// is returned unchanged unless saving fails.
func (s *simulation) finish(cause error) error {
	for _, c := range s.world.Characters {
		logger.Info("character",
			zap.String("name", c.Name),
			zap.Float32s("position", c.State.Position[:]),
			zap.String("action", mario.Action(c.State.Action).String()),
			zap.Int16("health", c.State.Health))
	}
	if s.lib.Audio() != nil {
		logger.Info("audio", zap.Int64("samples", s.samples.Load()))
	}

	if s.recorder != nil {
		rec := s.recorder.Recording()
		if err := replay.SaveFile(s.cfg.Data.Record, rec); err != nil {
			logger.Error("saving replay", zap.Error(err))
			if cause == nil {
				cause = err
			}
		} else {
			logger.Info("replay saved",
				zap.String("path", s.cfg.Data.Record),
				zap.String("run", rec.RunID),
				zap.Int("frames", len(rec.Frames)))
		}
	}
	if errors.Is(cause, context.Canceled) {
		logger.Warn("interrupted", zap.Int("tick", s.world.Tick()))
		return nil
	}
	return cause
}

// Verify replays the recording at path against the level instead of
// running the script.
func (s *simulation) Verify(path string) error {
	rec, err := replay.LoadFile(path)
	if err != nil {
		return err
	}
	// The replay needs the library to itself.
	s.world.Close()
	s.world = nil

	logger.Info("verifying",
		zap.String("path", path),
		zap.String("run", rec.RunID),
		zap.Int("frames", len(rec.Frames)))
	return replay.Verify(s.lib, s.level, rec)
}

// Close releases the world and the library.
func (s *simulation) Close() {
	if s.world != nil {
		s.world.Close()
		s.world = nil
	}
	s.lib.GlobalTerminate()
}
