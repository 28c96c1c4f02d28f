// Package anim advances character animation clips and turns the resulting
// skeleton pose into a flat triangle buffer.
package anim

import m "github.com/Faultbox/libsm64-go/pkg/math"

// Clip flags.
const (
	FlagNoLoop    int16 = 1 << 0
	FlagBackward  int16 = 1 << 1
	FlagFrozen    int16 = 1 << 2
	FlagHorTrans  int16 = 1 << 3
	FlagVertTrans int16 = 1 << 4
	FlagNoAccel   int16 = 1 << 5
)

// DefaultYTrans is the vertical translation scale the character uses for
// every clip.
const DefaultYTrans int16 = 189

// Clip is one animation. Each channel reads Values[offset+min(frame, length-1)]
// where (length, offset) is its pair in Index. The first three channels are
// root translation, followed by x, y, z rotation per joint.
type Clip struct {
	Flags         int16    `msgpack:"flags"`
	YTransDivisor int16    `msgpack:"y_trans_divisor"`
	StartFrame    int16    `msgpack:"start_frame"`
	LoopStart     int16    `msgpack:"loop_start"`
	LoopEnd       int16    `msgpack:"loop_end"`
	Index         []uint16 `msgpack:"index"`
	Values        []int16  `msgpack:"values"`
}

// Channels returns the number of channels the clip encodes.
func (c *Clip) Channels() int { return len(c.Index) / 2 }

// Value returns channel ch at frame. Missing channels read as zero.
func (c *Clip) Value(ch int, frame int16) int16 {
	if c == nil || ch*2+1 >= len(c.Index) {
		return 0
	}
	length := int(c.Index[ch*2])
	offset := int(c.Index[ch*2+1])
	if length == 0 {
		return 0
	}
	f := int(frame)
	if f < 0 {
		f = 0
	}
	if f >= length {
		f = length - 1
	}
	i := offset + f
	if i >= len(c.Values) {
		return 0
	}
	return c.Values[i]
}

// Pose is a clip sampled at one frame.
type Pose struct {
	Root   m.Vec3
	Joints [NumJoints]m.Vec3s
}

// Sample evaluates the clip at frame. yTrans scales the vertical root
// translation against the clip's divisor.
func (c *Clip) Sample(frame int16, yTrans int16) Pose {
	var p Pose
	if c == nil {
		return p
	}
	scale := float32(1)
	if c.YTransDivisor != 0 {
		scale = float32(yTrans) / float32(c.YTransDivisor)
	}
	p.Root = m.Vec3{
		X: float32(c.Value(0, frame)),
		Y: float32(c.Value(1, frame)) * scale,
		Z: float32(c.Value(2, frame)),
	}
	for j := 0; j < NumJoints; j++ {
		base := 3 + j*3
		p.Joints[j] = m.Vec3s{
			X: c.Value(base, frame),
			Y: c.Value(base+1, frame),
			Z: c.Value(base+2, frame),
		}
	}
	return p
}

// Library is the clip table loaded from an asset pack.
type Library struct {
	clips map[int16]*Clip
}

// NewLibrary wraps a clip table.
func NewLibrary(clips map[int16]*Clip) *Library {
	if clips == nil {
		clips = make(map[int16]*Clip)
	}
	return &Library{clips: clips}
}

// Clip returns the clip for id, or nil.
func (l *Library) Clip(id int16) *Clip {
	if l == nil {
		return nil
	}
	return l.clips[id]
}

// Fallback groups pick a stand-in clip when a pack lacks the requested one.
type Fallback uint8

const (
	FallbackIdle Fallback = iota
	FallbackWalk
	FallbackAir
	FallbackSwim
	FallbackCutscene
)

var fallbackClips = [...]int16{
	FallbackIdle:     IdleHeadLeft,
	FallbackWalk:     Walking,
	FallbackAir:      GeneralFall,
	FallbackSwim:     WaterIdle,
	FallbackCutscene: APose,
}

// Resolve returns the clip for id, or the group's stand-in when the library
// has no such clip.
func (l *Library) Resolve(id int16, group Fallback) *Clip {
	if c := l.Clip(id); c != nil {
		return c
	}
	if int(group) >= len(fallbackClips) {
		return nil
	}
	return l.Clip(fallbackClips[group])
}

// Len returns the number of clips.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.clips)
}
