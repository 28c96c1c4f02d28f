// Package sm64 is the host-facing API of the character simulation. A Library
// owns the surface index, the asset pack, the audio engine and the pool of
// character instances; the package-level functions drive a default Library
// for hosts that want a single global context.
//
// A Library is not safe for concurrent use. Hosts must serialize every call
// on one goroutine or behind their own lock, and must not move or delete
// surface objects while a tick is in progress.
package sm64

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/assets"
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/logger"
	"github.com/Faultbox/libsm64-go/internal/mario"
	"github.com/Faultbox/libsm64-go/internal/surface"
)

// APIVersion is the version of the host API.
const APIVersion = "1.0.0"

// Version returns APIVersion.
func Version() string { return APIVersion }

// InvalidHandle is returned when a character could not be created.
const InvalidHandle int32 = -1

// Atlas dimensions in pixels. The atlas is RGBA, four bytes per pixel.
const (
	TextureWidth  = anim.TextureWidth
	TextureHeight = anim.TextureHeight
	AtlasSize     = assets.AtlasSize
)

// ErrNotInitialized is returned by operations that need GlobalInit first.
var ErrNotInitialized = errors.New("sm64: library not initialized")

// Surface is one collision triangle as supplied by the host.
type Surface = surface.Def

// ObjectTransform places a surface object. Rotations are Euler angles in
// degrees, applied in Z, X, Y order.
type ObjectTransform struct {
	Position      [3]float32
	EulerRotation [3]float32
}

// SurfaceObject is a group of surfaces that move together.
type SurfaceObject struct {
	Transform ObjectTransform
	Surfaces  []Surface
}

// Inputs is one tick of controller and camera input.
type Inputs = mario.Inputs

// AnimInfo is the animation playback cursor of a character.
type AnimInfo = anim.Info

// GeometryBuffers receives the character mesh each tick.
type GeometryBuffers = anim.MeshBuffer

// NewGeometryBuffers allocates buffers for up to maxTriangles triangles. A
// non-positive size selects anim.MaxTriangles.
func NewGeometryBuffers(maxTriangles int) *GeometryBuffers {
	return anim.NewMeshBuffer(maxTriangles)
}

// State is the per-tick snapshot handed back to the host. FaceAngle is the
// facing yaw in radians.
type State struct {
	Position      [3]float32
	Velocity      [3]float32
	FaceAngle     float32
	Health        int16
	Action        uint32
	Flags         uint32
	ParticleFlags uint32
	InvincTimer   int16
}

// Options configures a Library.
type Options struct {
	// CellSize is the surface grid cell edge in world units.
	CellSize int
	// MaxInstances caps live characters; 0 means unbounded.
	MaxInstances int

	// Audio enables the audio engine and its mixing thread.
	Audio      bool
	SampleRate int
	Frame      time.Duration
	// Sink receives mixed PCM frames; nil discards them.
	Sink audio.Sink

	// LogLevel applies to the debug print function given to GlobalInit.
	LogLevel string
}

// DefaultOptions returns the default grid, an unbounded pool and audio at
// 32 kHz in 33 ms frames.
func DefaultOptions() Options {
	return Options{
		CellSize:   surface.DefaultCellSize,
		Audio:      true,
		SampleRate: int(audio.DefaultSampleRate),
		Frame:      audio.DefaultFrame,
		LogLevel:   "debug",
	}
}

// Library holds all simulation state for one host.
type Library struct {
	opts Options

	initialized bool
	packs       *assets.Manager
	pack        *assets.Pack
	clips       *anim.Library
	eval        *anim.Evaluator
	index       *surface.Index
	audio       *audio.Engine

	instances []*instance
	live      int
}

// NewLibrary creates an uninitialized Library.
func NewLibrary(opts Options) *Library {
	if opts.CellSize <= 0 {
		opts.CellSize = surface.DefaultCellSize
	}
	if opts.LogLevel == "" {
		opts.LogLevel = "debug"
	}
	return &Library{
		opts:  opts,
		packs: assets.NewManager(),
	}
}

// GlobalInit loads the asset pack in blob and prepares the library. An empty
// blob selects the built-in pack. debugPrint, when set, receives every log
// line. Calling GlobalInit again terminates the previous session first. The
// returned atlas is a fresh copy of the pack texture.
func (l *Library) GlobalInit(blob []byte, debugPrint func(string)) ([]byte, error) {
	if l.initialized {
		l.GlobalTerminate()
	}

	if debugPrint != nil {
		logger.InitWithSink(l.opts.LogLevel, debugPrint)
	}

	pack, err := l.packs.FromBlob(blob)
	if err != nil {
		return nil, fmt.Errorf("sm64: global init: %w", err)
	}

	l.pack = pack
	l.clips = pack.Library()
	l.eval = anim.NewEvaluator(nil, pack.Colors)
	l.index = surface.NewIndex(l.opts.CellSize)
	l.instances = nil
	l.live = 0

	if l.opts.Audio {
		l.audio = audio.New(beep.SampleRate(l.opts.SampleRate), l.opts.Frame, l.opts.Sink)
		if err := l.audio.Start(context.Background()); err != nil {
			return nil, fmt.Errorf("sm64: starting audio: %w", err)
		}
	}

	l.initialized = true
	logger.Log.Info("library initialized",
		zap.String("pack", pack.Name),
		zap.Int("clips", l.clips.Len()),
		zap.Bool("audio", l.opts.Audio))

	return l.Atlas()
}

// GlobalTerminate deletes every character, unloads all surfaces and stops
// audio. It is a no-op when the library is not initialized.
func (l *Library) GlobalTerminate() {
	if !l.initialized {
		return
	}

	for i := range l.instances {
		l.instances[i] = nil
	}
	l.instances = nil
	l.live = 0
	l.index.Clear()

	if l.audio != nil {
		if err := l.audio.Stop(); err != nil {
			logger.Log.Warn("audio thread ended with error", zap.Error(err))
		}
		l.audio.Reset()
		l.audio = nil
	}

	l.packs.Close()
	l.pack = nil
	l.clips = nil
	l.eval = nil
	l.initialized = false
	logger.Log.Info("library terminated")
}

// Initialized reports whether GlobalInit has succeeded since the last
// terminate.
func (l *Library) Initialized() bool { return l.initialized }

// Pack returns the asset pack in use, or nil before init.
func (l *Library) Pack() *assets.Pack { return l.pack }

// Atlas returns a copy of the texture atlas of the loaded pack.
func (l *Library) Atlas() ([]byte, error) {
	if !l.initialized {
		return nil, ErrNotInitialized
	}
	atlas := make([]byte, len(l.pack.Atlas))
	copy(atlas, l.pack.Atlas)
	return atlas, nil
}

// Audio returns the audio engine, or nil when audio is disabled or the
// library is not initialized.
func (l *Library) Audio() *audio.Engine { return l.audio }

func (l *Library) ready(op string) bool {
	if l.initialized {
		return true
	}
	logger.Log.Warn("library not initialized", zap.String("op", op))
	return false
}
