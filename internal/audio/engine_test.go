package audio

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewEngine(t *testing.T) {
	e := New(0, 0, nil)
	if e.SampleRate() != DefaultSampleRate {
		t.Errorf("sample rate = %d, want %d", e.SampleRate(), DefaultSampleRate)
	}
	if e.FrameSamples() != 1056 {
		t.Errorf("frame samples = %d, want 1056", e.FrameSamples())
	}

	master, music, sfx := e.Volumes()
	if master != 1.0 || music != 0.7 || sfx != 1.0 {
		t.Errorf("default volumes = %f/%f/%f", master, music, sfx)
	}
}

func TestSetVolume(t *testing.T) {
	e := New(0, 0, nil)

	e.SetMasterVolume(0.5)
	if master, _, _ := e.Volumes(); master != 0.5 {
		t.Errorf("master volume = %f, want 0.5", master)
	}

	e.SetMasterVolume(2.0)
	if master, _, _ := e.Volumes(); master != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", master)
	}

	e.SetSFXVolume(-1.0)
	if _, _, sfx := e.Volumes(); sfx != 0.0 {
		t.Errorf("sfx volume = %f, want 0.0 (clamped)", sfx)
	}
}

func silent(pcm []int16) bool {
	for _, s := range pcm {
		if s != 0 {
			return false
		}
	}
	return true
}

func TestTickSilentWhenIdle(t *testing.T) {
	e := New(0, 0, nil)
	pcm := e.Tick()
	if len(pcm) != 2*e.FrameSamples() {
		t.Fatalf("frame length = %d, want %d", len(pcm), 2*e.FrameSamples())
	}
	if !silent(pcm) {
		t.Error("idle engine produced sound")
	}
	if e.Frames() != 1 {
		t.Errorf("frames = %d, want 1", e.Frames())
	}
}

func TestPlaySequenceProducesSound(t *testing.T) {
	e := New(0, 0, nil)
	e.PlaySequence(SeqPlayerLevel, uint8(SeqLevelGrass), 0)

	seq, ok := e.PlayingSequence(SeqPlayerLevel)
	if !ok || seq != SeqLevelGrass {
		t.Fatalf("playing = %#x/%v, want %#x", seq, ok, SeqLevelGrass)
	}
	if silent(e.Tick()) {
		t.Error("sequence frame is silent")
	}

	e.SetMuted(true)
	if !silent(e.Tick()) {
		t.Error("muted frame has sound")
	}
}

func TestPlaySequenceRejectsBadIDs(t *testing.T) {
	e := New(0, 0, nil)
	e.PlaySequence(NumPlayers, uint8(SeqLevelGrass), 0)
	e.PlaySequence(SeqPlayerLevel, uint8(SeqCount), 0)
	if _, ok := e.PlayingSequence(SeqPlayerLevel); ok {
		t.Error("invalid sequence started")
	}
}

func TestBackgroundMusicPriority(t *testing.T) {
	e := New(0, 0, nil)
	if got := e.CurrentBackgroundMusic(); got != NoBackgroundMusic {
		t.Fatalf("empty queue = %#x, want %#x", got, NoBackgroundMusic)
	}

	e.PlayMusic(SeqPlayerLevel, SequenceArgs(0, SeqLevelGrass), 0)
	e.PlayMusic(SeqPlayerLevel, SequenceArgs(4, SeqEventPowerup), 0)
	if got := e.CurrentBackgroundMusic(); got != SequenceArgs(4, SeqEventPowerup) {
		t.Fatalf("current = %#x, want power-up", got)
	}

	// A lower priority track queues behind the power-up.
	e.PlayMusic(SeqPlayerLevel, SequenceArgs(1, SeqLevelWater), 0)
	if got := e.CurrentBackgroundMusic(); got != SequenceArgs(4, SeqEventPowerup) {
		t.Fatalf("current = %#x, want power-up", got)
	}

	e.StopBackgroundMusic(SequenceArgs(4, SeqEventPowerup))
	if got := e.CurrentBackgroundMusic(); got != SequenceArgs(1, SeqLevelWater) {
		t.Fatalf("after stop = %#x, want water", got)
	}
	if seq, ok := e.PlayingSequence(SeqPlayerLevel); !ok || seq&0xFF != SeqLevelWater {
		t.Errorf("level player = %#x/%v, want water", seq, ok)
	}
}

func TestFadeoutStopsPlayer(t *testing.T) {
	e := New(0, 0, nil)
	e.PlayMusic(SeqPlayerLevel, SequenceArgs(4, SeqEventMetalCap), 0)
	e.FadeoutBackgroundMusic(SeqEventMetalCap, 3)

	if got := e.CurrentBackgroundMusic(); got != NoBackgroundMusic {
		t.Errorf("queue after fadeout = %#x", got)
	}
	if _, ok := e.PlayingSequence(SeqPlayerLevel); !ok {
		t.Fatal("player stopped before the fade ran")
	}
	for i := 0; i < 4; i++ {
		e.Tick()
	}
	if _, ok := e.PlayingSequence(SeqPlayerLevel); ok {
		t.Error("player still sounding after fade")
	}
}

func TestSoundBankPriority(t *testing.T) {
	e := New(0, 0, nil)
	e.PlaySoundGlobal(SoundMarioAttacked)
	e.PlaySound(SoundMarioYahoo, smath.Vec3{X: 500})

	e.mu.Lock()
	got := e.voices[BankVoice].bits
	e.mu.Unlock()
	if got != SoundMarioAttacked {
		t.Errorf("voice bank holds %#x, want the higher priority sound", got)
	}
	if silent(e.Tick()) {
		t.Error("sound frame is silent")
	}
}

func TestStartStop(t *testing.T) {
	var frames atomic.Int32
	sink := SinkFunc(func(pcm []int16) error {
		frames.Add(1)
		return nil
	})
	e := New(0, time.Millisecond, sink)

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := e.Start(context.Background()); !errors.Is(err, ErrRunning) {
		t.Errorf("second Start = %v, want ErrRunning", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for frames.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if err := e.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if frames.Load() < 3 {
		t.Errorf("sink received %d frames", frames.Load())
	}
	if e.Running() {
		t.Error("engine still running")
	}
	if err := e.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}

func TestSinkErrorEndsThread(t *testing.T) {
	boom := errors.New("device lost")
	e := New(0, time.Millisecond, SinkFunc(func([]int16) error { return boom }))
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := e.Stop(); !errors.Is(err, boom) {
		t.Errorf("Stop = %v, want sink error", err)
	}
}
