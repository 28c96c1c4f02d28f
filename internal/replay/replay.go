// Package replay records the inputs fed to a level run together with a
// digest of every resulting character state, so a run can be replayed and
// checked for divergence.
package replay

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/Faultbox/libsm64-go/internal/level"
	"github.com/Faultbox/libsm64-go/internal/logger"
	"github.com/Faultbox/libsm64-go/internal/mario"
	"github.com/Faultbox/libsm64-go/pkg/sm64"
)

// FormatVersion is bumped whenever Recording changes shape.
const FormatVersion = 1

// Button bits of Input.Buttons.
const (
	ButtonA uint8 = 1 << iota
	ButtonB
	ButtonZ
)

// Errors returned by Load and Verify.
var (
	ErrVersion       = errors.New("replay: unsupported format version")
	ErrLevelMismatch = errors.New("replay: recording was made on a different level")
	ErrDiverged      = errors.New("replay: state diverged")
)

// Input is one character's controller state for one tick.
type Input struct {
	StickX  float32 `msgpack:"sx"`
	StickY  float32 `msgpack:"sy"`
	CamX    float32 `msgpack:"cx"`
	CamZ    float32 `msgpack:"cz"`
	Buttons uint8   `msgpack:"b"`
}

// FromInputs packs mario inputs.
func FromInputs(in mario.Inputs) Input {
	out := Input{StickX: in.StickX, StickY: in.StickY, CamX: in.CamLookX, CamZ: in.CamLookZ}
	if in.ButtonA {
		out.Buttons |= ButtonA
	}
	if in.ButtonB {
		out.Buttons |= ButtonB
	}
	if in.ButtonZ {
		out.Buttons |= ButtonZ
	}
	return out
}

// Inputs unpacks the controller state.
func (i Input) Inputs() mario.Inputs {
	return mario.Inputs{
		StickX:   i.StickX,
		StickY:   i.StickY,
		CamLookX: i.CamX,
		CamLookZ: i.CamZ,
		ButtonA:  i.Buttons&ButtonA != 0,
		ButtonB:  i.Buttons&ButtonB != 0,
		ButtonZ:  i.Buttons&ButtonZ != 0,
	}
}

// Frame is one recorded tick: the inputs of every character, in spawn order,
// and the digest of the states they produced.
type Frame struct {
	Tick   int     `msgpack:"t"`
	Inputs []Input `msgpack:"i"`
	Digest uint64  `msgpack:"d"`
}

// Recording is a complete run.
type Recording struct {
	Version     int       `msgpack:"version"`
	RunID       string    `msgpack:"run_id"`
	Level       string    `msgpack:"level"`
	LevelDigest uint64    `msgpack:"level_digest"`
	Created     time.Time `msgpack:"created"`
	Characters  []string  `msgpack:"characters"`
	Frames      []Frame   `msgpack:"frames"`
}

// StateDigest hashes the observable part of a set of states. Floats are
// hashed by bit pattern so any drift shows up.
func StateDigest(states []sm64.State) uint64 {
	h := xxhash.New()
	var buf [4]byte
	put32 := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putf := func(vs ...float32) {
		for _, v := range vs {
			put32(math.Float32bits(v))
		}
	}
	for _, s := range states {
		putf(s.Position[:]...)
		putf(s.Velocity[:]...)
		putf(s.FaceAngle)
		put32(uint32(uint16(s.Health)))
		put32(s.Action)
		put32(s.Flags)
		put32(s.ParticleFlags)
		put32(uint32(uint16(s.InvincTimer)))
	}
	return h.Sum64()
}

// LevelDigest hashes the level definition, so a recording can refuse to
// replay against an edited level.
func LevelDigest(lv *level.Level) (uint64, error) {
	data, err := msgpack.Marshal(lv)
	if err != nil {
		return 0, fmt.Errorf("replay: hashing level: %w", err)
	}
	return xxhash.Sum64(data), nil
}

// Recorder accumulates frames of a running world.
type Recorder struct {
	rec *Recording
}

// NewRecorder starts a recording of lv with the given character names.
func NewRecorder(lv *level.Level, names []string) (*Recorder, error) {
	digest, err := LevelDigest(lv)
	if err != nil {
		return nil, err
	}
	return &Recorder{rec: &Recording{
		Version:     FormatVersion,
		RunID:       uuid.NewString(),
		Level:       lv.Name,
		LevelDigest: digest,
		Created:     time.Now().UTC(),
		Characters:  append([]string(nil), names...),
	}}, nil
}

// Record appends one tick.
func (r *Recorder) Record(tick int, ins []mario.Inputs, states []sm64.State) {
	f := Frame{Tick: tick, Inputs: make([]Input, len(ins)), Digest: StateDigest(states)}
	for i, in := range ins {
		f.Inputs[i] = FromInputs(in)
	}
	r.rec.Frames = append(r.rec.Frames, f)
}

// Recording returns what has been recorded so far.
func (r *Recorder) Recording() *Recording { return r.rec }

// Save writes rec to w.
func Save(w io.Writer, rec *Recording) error {
	bw := bufio.NewWriter(w)
	if err := msgpack.NewEncoder(bw).Encode(rec); err != nil {
		return fmt.Errorf("replay: encoding: %w", err)
	}
	return bw.Flush()
}

// Load reads a recording written by Save.
func Load(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(bufio.NewReader(r)).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decoding: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, rec.Version)
	}
	return &rec, nil
}

// SaveFile writes rec to path.
func SaveFile(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	if err := Save(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads the recording at path.
func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Verify applies lv to lib, feeds it the recorded inputs and checks every
// frame digest. The world is closed before returning.
func Verify(lib *sm64.Library, lv *level.Level, rec *Recording) error {
	digest, err := LevelDigest(lv)
	if err != nil {
		return err
	}
	if digest != rec.LevelDigest {
		return fmt.Errorf("%w: %q", ErrLevelMismatch, rec.Level)
	}

	w, err := lv.Apply(lib)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	defer w.Close()

	ins := make([]mario.Inputs, len(w.Characters))
	for _, f := range rec.Frames {
		for i := range ins {
			ins[i] = mario.Inputs{}
			if i < len(f.Inputs) {
				ins[i] = f.Inputs[i].Inputs()
			}
		}
		w.StepWith(ins, nil)
		if got := StateDigest(w.States()); got != f.Digest {
			logger.Log.Warn("replay diverged",
				zap.String("run", rec.RunID),
				zap.Int("tick", f.Tick),
				zap.Uint64("want", f.Digest),
				zap.Uint64("got", got))
			return fmt.Errorf("%w at tick %d", ErrDiverged, f.Tick)
		}
	}

	logger.Log.Info("replay verified",
		zap.String("run", rec.RunID),
		zap.Int("frames", len(rec.Frames)))
	return nil
}
