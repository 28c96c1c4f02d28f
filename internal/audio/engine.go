// Package audio is the sound side channel of the simulation: sequence
// players for music, one-shot sound effects and a fixed-rate mixing thread
// that hands PCM frames to a host sink.
package audio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/libsm64-go/internal/logger"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// Defaults match the console output: 32 kHz, one frame per 33 ms.
const (
	DefaultSampleRate = beep.SampleRate(32000)
	DefaultFrame      = 33 * time.Millisecond
)

// NoBackgroundMusic is returned by CurrentBackgroundMusic when the queue is empty.
const NoBackgroundMusic uint16 = 0xFFFF

// Number of sequence players and queued background tracks.
const (
	NumPlayers         = 3
	maxBackgroundQueue = 6
)

// ErrRunning is returned by Start when the mixing thread is already up.
var ErrRunning = errors.New("audio: engine already running")

// Sink receives interleaved stereo 16-bit frames from the mixing thread.
type Sink interface {
	Play(pcm []int16) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(pcm []int16) error

// Play calls f.
func (f SinkFunc) Play(pcm []int16) error { return f(pcm) }

// player is one sequence player.
type player struct {
	seqArgs uint16
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	level   float32
	fade    *gween.Tween
	stopped bool // stop once the fade completes
}

func (p *player) playing() bool { return p.ctrl != nil && p.ctrl.Streamer != nil }

// voice is the effect currently sounding in one bank.
type voice struct {
	bits uint32
	ctrl *beep.Ctrl
}

// bgEntry is a queued background track.
type bgEntry struct {
	seqID    uint16
	priority uint16
}

// Engine mixes sequences and sound effects. Commands may come from any
// goroutine; they and the mixing thread share one mutex held per call or per
// frame, never per sample.
type Engine struct {
	mu sync.Mutex

	sampleRate beep.SampleRate
	frame      time.Duration
	sink       Sink

	mixer   *beep.Mixer
	players [NumPlayers]player
	voices  [NumBanks]voice
	bgQueue []bgEntry

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	musicVolume  float64
	sfxVolume    float64
	muted        bool

	pcm    []int16
	buf    [][2]float64
	frames uint64

	running atomic.Bool
	cancel  context.CancelFunc
	group   *errgroup.Group
}

// New creates an engine rendering at sampleRate in frame-sized chunks. A nil
// sink discards the output.
func New(sampleRate beep.SampleRate, frame time.Duration, sink Sink) *Engine {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if frame <= 0 {
		frame = DefaultFrame
	}
	return &Engine{
		sampleRate:   sampleRate,
		frame:        frame,
		sink:         sink,
		mixer:        &beep.Mixer{},
		masterVolume: 1.0,
		musicVolume:  0.7,
		sfxVolume:    1.0,
	}
}

// SampleRate returns the output rate.
func (e *Engine) SampleRate() beep.SampleRate { return e.sampleRate }

// FrameSamples returns the number of stereo samples per frame.
func (e *Engine) FrameSamples() int { return e.sampleRate.N(e.frame) }

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (e *Engine) SetMasterVolume(vol float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.masterVolume = clamp(vol, 0, 1)
	e.updateMusicVolume()
}

// SetMusicVolume sets the sequence volume (0.0 to 1.0).
func (e *Engine) SetMusicVolume(vol float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.musicVolume = clamp(vol, 0, 1)
	e.updateMusicVolume()
}

// SetSFXVolume sets the sound effect volume (0.0 to 1.0).
func (e *Engine) SetSFXVolume(vol float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sfxVolume = clamp(vol, 0, 1)
}

// SetMuted silences the output without stopping playback.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

// Volumes returns the master, music and effect volumes.
func (e *Engine) Volumes() (master, music, sfx float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.masterVolume, e.musicVolume, e.sfxVolume
}

func (e *Engine) updateMusicVolume() {
	for i := range e.players {
		e.applyPlayerVolume(&e.players[i])
	}
}

func (e *Engine) applyPlayerVolume(p *player) {
	if p.volume == nil {
		return
	}
	setGain(p.volume, e.masterVolume*e.musicVolume*float64(p.level))
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = volumeToDb(gain) / 20
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// PlaySequence starts sequence seqID on player, fading in over fadeIn frames.
func (e *Engine) PlaySequence(playerID uint8, seqID uint8, fadeIn uint16) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playSequence(playerID, uint16(seqID), fadeIn)
}

func (e *Engine) playSequence(playerID uint8, seqArgs uint16, fadeIn uint16) {
	if int(playerID) >= NumPlayers {
		logger.Log.Warn("sequence player out of range", zap.Uint8("player", playerID))
		return
	}
	seqID := seqArgs & 0xFF
	if seqID >= SeqCount {
		logger.Log.Warn("unknown sequence", zap.Uint16("seq", seqID))
		return
	}

	p := &e.players[playerID]
	e.stopPlayer(p)

	p.seqArgs = seqArgs
	p.ctrl = &beep.Ctrl{Streamer: newSequenceStreamer(e.sampleRate, seqID)}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 10}
	p.stopped = false
	p.fade = nil
	p.level = 1
	if fadeIn > 0 {
		p.level = 0
		p.fade = gween.New(0, 1, e.frameSeconds(fadeIn), ease.Linear)
	}
	e.applyPlayerVolume(p)
	e.mixer.Add(p.volume)

	logger.Log.Debug("sequence started",
		zap.Uint8("player", playerID),
		zap.Uint16("seq", seqID),
		zap.Uint16("fade_in", fadeIn))
}

func (e *Engine) frameSeconds(frames uint16) float32 {
	return float32(frames) * float32(e.frame.Seconds())
}

func (e *Engine) stopPlayer(p *player) {
	if p.ctrl != nil {
		p.ctrl.Streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.fade = nil
	p.stopped = false
	p.seqArgs = 0
}

// fadeOutPlayer fades p to silence over frames and then stops it.
func (e *Engine) fadeOutPlayer(p *player, frames uint16) {
	if !p.playing() {
		return
	}
	if frames == 0 {
		e.stopPlayer(p)
		return
	}
	p.fade = gween.New(p.level, 0, e.frameSeconds(frames), ease.Linear)
	p.stopped = true
}

// PlayMusic queues seqArgs (priority << 8 | sequence id). On the level player
// the highest-priority queued track is the one that sounds; other players
// simply start the sequence.
func (e *Engine) PlayMusic(playerID uint8, seqArgs uint16, fadeTimer uint16) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if playerID != SeqPlayerLevel {
		e.playSequence(playerID, seqArgs, fadeTimer)
		return
	}

	entry := bgEntry{seqID: seqArgs & 0xFF, priority: seqArgs >> 8}
	for i, q := range e.bgQueue {
		if q.seqID == entry.seqID {
			e.bgQueue = append(e.bgQueue[:i], e.bgQueue[i+1:]...)
			break
		}
	}
	e.bgQueue = append(e.bgQueue, entry)
	sort.SliceStable(e.bgQueue, func(i, j int) bool {
		return e.bgQueue[i].priority > e.bgQueue[j].priority
	})
	if len(e.bgQueue) > maxBackgroundQueue {
		e.bgQueue = e.bgQueue[:maxBackgroundQueue]
	}

	if e.bgQueue[0] == entry {
		e.playSequence(SeqPlayerLevel, seqArgs, fadeTimer)
	}
}

// StopBackgroundMusic removes seqID from the background queue. When it was
// the sounding track the next one takes over.
func (e *Engine) StopBackgroundMusic(seqID uint16) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeBackground(seqID&0xFF, 0)
}

// FadeoutBackgroundMusic fades seqID out over fadeOut frames and removes it
// from the queue.
func (e *Engine) FadeoutBackgroundMusic(seqID uint16, fadeOut uint16) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeBackground(seqID&0xFF, fadeOut)
}

func (e *Engine) removeBackground(seqID uint16, fadeOut uint16) {
	idx := -1
	for i, q := range e.bgQueue {
		if q.seqID == seqID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	e.bgQueue = append(e.bgQueue[:idx], e.bgQueue[idx+1:]...)
	if idx != 0 {
		return
	}

	p := &e.players[SeqPlayerLevel]
	if len(e.bgQueue) == 0 {
		e.fadeOutPlayer(p, fadeOut)
		return
	}
	next := e.bgQueue[0]
	e.playSequence(SeqPlayerLevel, next.priority<<8|next.seqID, fadeOut)
}

// CurrentBackgroundMusic returns the sounding background track as sequence
// args, or NoBackgroundMusic.
func (e *Engine) CurrentBackgroundMusic() uint16 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.bgQueue) == 0 {
		return NoBackgroundMusic
	}
	q := e.bgQueue[0]
	return q.priority<<8 | q.seqID
}

// PlayingSequence returns the sequence args on a player, and whether it is
// sounding.
func (e *Engine) PlayingSequence(playerID uint8) (uint16, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if int(playerID) >= NumPlayers {
		return 0, false
	}
	p := &e.players[playerID]
	return p.seqArgs, p.playing()
}

// PlaySound starts a one-shot effect heard from pos, relative to a listener
// at the origin. A sound replaces the one in its bank unless that one has
// higher priority.
func (e *Engine) PlaySound(bits uint32, pos smath.Vec3) {
	pan := float64(smath.Clampf(pos.X/1000, -1, 1))
	gain := 1 / (1 + float64(pos.Length())/2000)
	e.playSound(bits, pan, gain)
}

// PlaySoundGlobal starts a one-shot effect with no position.
func (e *Engine) PlaySoundGlobal(bits uint32) {
	e.playSound(bits, 0, 1)
}

func (e *Engine) playSound(bits uint32, pan, gain float64) {
	bank := SoundBank(bits)
	if bank >= NumBanks {
		logger.Log.Warn("sound bank out of range", zap.Uint32("bits", bits))
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	v := &e.voices[bank]
	if v.ctrl != nil && v.ctrl.Streamer != nil {
		// Held sounds are requested every tick and keep playing.
		if v.bits == bits || SoundPriority(v.bits) > SoundPriority(bits) {
			return
		}
	}
	if v.ctrl != nil {
		v.ctrl.Streamer = nil
	}

	ctrl := &beep.Ctrl{Streamer: soundStreamer(e.sampleRate, bits)}
	vol := &effects.Volume{Streamer: ctrl, Base: 10}
	setGain(vol, e.masterVolume*e.sfxVolume*gain)
	e.mixer.Add(&effects.Pan{Streamer: vol, Pan: pan})
	*v = voice{bits: bits, ctrl: ctrl}
}

// Tick renders one frame and returns it as interleaved stereo samples. The
// returned slice is reused by the next call.
func (e *Engine) Tick() []int16 {
	e.mu.Lock()
	defer e.mu.Unlock()

	dt := float32(e.frame.Seconds())
	for i := range e.players {
		p := &e.players[i]
		if p.fade == nil || !p.playing() {
			continue
		}
		level, done := p.fade.Update(dt)
		p.level = level
		e.applyPlayerVolume(p)
		if done {
			p.fade = nil
			if p.stopped {
				e.stopPlayer(p)
			}
		}
	}

	n := e.sampleRate.N(e.frame)
	if cap(e.buf) < n {
		e.buf = make([][2]float64, n)
		e.pcm = make([]int16, 2*n)
	}
	buf := e.buf[:n]
	pcm := e.pcm[:2*n]

	filled, _ := e.mixer.Stream(buf)
	for i := filled; i < n; i++ {
		buf[i] = [2]float64{}
	}
	for i, s := range buf {
		if e.muted {
			s = [2]float64{}
		}
		pcm[2*i] = toPCM(s[0])
		pcm[2*i+1] = toPCM(s[1])
	}
	e.frames++
	return pcm
}

func toPCM(v float64) int16 {
	v = clamp(v, -1, 1)
	return int16(math.Round(v * math.MaxInt16))
}

// Frames returns the number of frames rendered so far.
func (e *Engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Running reports whether the mixing thread is up.
func (e *Engine) Running() bool { return e.running.Load() }

// Start launches the mixing thread. It renders one frame per frame period
// into the sink until ctx ends, Stop is called or the sink fails.
func (e *Engine) Start(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	e.cancel = cancel
	e.group = g

	g.Go(func() error {
		return e.loop(ctx)
	})
	logger.Log.Debug("audio thread started",
		zap.Int("sample_rate", int(e.sampleRate)),
		zap.Duration("frame", e.frame))
	return nil
}

func (e *Engine) loop(ctx context.Context) error {
	ticker := time.NewTicker(e.frame)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			pcm := e.Tick()
			if e.sink == nil {
				continue
			}
			if err := e.sink.Play(pcm); err != nil {
				return fmt.Errorf("audio sink: %w", err)
			}
		}
	}
}

// Stop halts the mixing thread and waits for it. It returns the error that
// ended the thread early, if any. Stopping an idle engine is a no-op.
func (e *Engine) Stop() error {
	if !e.running.CompareAndSwap(true, false) {
		return nil
	}
	e.cancel()
	err := e.group.Wait()
	logger.Log.Debug("audio thread stopped")
	return err
}

// Reset stops every player and voice and empties the background queue.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.players {
		e.stopPlayer(&e.players[i])
	}
	for i := range e.voices {
		if e.voices[i].ctrl != nil {
			e.voices[i].ctrl.Streamer = nil
		}
		e.voices[i] = voice{}
	}
	e.bgQueue = nil
	e.mixer.Clear()
}
