package assets

import (
	"math"
	"strings"

	"github.com/Faultbox/libsm64-go/internal/anim"
)

// motion is a family of procedural clips sharing one pose function.
type motion int

const (
	motionStatic motion = iota
	motionIdle
	motionGait
	motionSwim
	motionAir
	motionSpin
	motionLand
	motionCrouch
	motionHang
	motionStrike
	motionDeath
	motionLying
)

// rule assigns a motion to every clip whose name contains key. The first
// matching rule wins.
type rule struct {
	key    string
	motion motion
	frames int16
	loop   bool
}

var motionRules = []rule{
	{"a_pose", motionStatic, 1, true},
	{"first_person", motionStatic, 1, true},
	{"dying", motionDeath, 60, false},
	{"drowning", motionDeath, 60, false},
	{"water_dying", motionDeath, 60, false},
	{"electrocution", motionDeath, 60, false},
	{"suffocating", motionDeath, 60, false},
	{"fall_over", motionDeath, 70, false},
	{"stomach", motionLying, 20, false},
	{"lying", motionLying, 40, true},
	{"sleep", motionLying, 30, true},
	{"punch", motionStrike, 6, false},
	{"kick", motionStrike, 14, false},
	{"breakdance", motionStrike, 20, false},
	{"throw", motionStrike, 16, false},
	{"cap", motionStrike, 36, false},
	{"flip", motionSpin, 20, false},
	{"spinning", motionSpin, 16, true},
	{"twirl", motionSpin, 16, true},
	{"swim", motionSwim, 30, true},
	{"flutterkick", motionSwim, 20, true},
	{"water", motionSwim, 30, true},
	{"ledge", motionHang, 24, false},
	{"hang", motionHang, 24, true},
	{"handstand", motionHang, 24, true},
	{"wire_net", motionHang, 24, false},
	{"pole", motionHang, 24, true},
	{"land", motionLand, 12, false},
	{"stop", motionLand, 12, false},
	{"bonk", motionLand, 40, false},
	{"kb", motionLand, 20, false},
	{"crouch", motionCrouch, 12, true},
	{"crawl", motionCrouch, 30, true},
	{"slide", motionCrouch, 20, true},
	{"bottom", motionCrouch, 20, true},
	{"jump", motionAir, 20, false},
	{"fall", motionAir, 20, true},
	{"dive", motionAir, 16, false},
	{"fly", motionAir, 30, true},
	{"airborne", motionAir, 20, true},
	{"ground_pound", motionAir, 12, false},
	{"running", motionGait, 24, true},
	{"walk", motionGait, 30, true},
	{"tiptoe", motionGait, 30, true},
	{"sidestep", motionGait, 30, true},
	{"pushing", motionGait, 30, true},
	{"move", motionGait, 30, true},
	{"turning", motionGait, 16, false},
	{"skid", motionLand, 16, false},
	{"idle", motionIdle, 40, true},
	{"shivering", motionIdle, 90, true},
	{"coughing", motionIdle, 40, true},
	{"stand", motionIdle, 40, true},
}

// clipFrames pins clip lengths the movement code waits on.
var clipFrames = map[int16]int16{
	anim.DyingOnBack:          55,
	anim.DyingOnStomach:       50,
	anim.DyingFallOver:        80,
	anim.FallOverBackwards:    70,
	anim.SlowLedgeGrab:        40,
	anim.FastLedgeGrab:        20,
	anim.PutCapOn:             36,
	anim.StartTiptoe:          30,
	anim.ShiveringWarmingHand: 90,
	anim.TripleJumpFly:        20,
	anim.Slideflip:            16,
	anim.FirstPunchFast:       4,
	anim.SecondPunchFast:      4,
	anim.GroundKick:           12,
}

func classify(name string) rule {
	for _, r := range motionRules {
		if strings.Contains(name, r.key) {
			return r
		}
	}
	return rule{motion: motionIdle, frames: 40, loop: true}
}

// Default returns the built-in pack: procedurally generated clips for every
// clip id, the stock palette and a procedural atlas.
func Default() *Pack {
	clips := make(map[int16]*anim.Clip, anim.NumClips)
	for id := int16(0); id < anim.NumClips; id++ {
		clips[id] = proceduralClip(id)
	}
	return &Pack{
		Version: PackVersion,
		Name:    "builtin",
		Clips:   clips,
		Colors:  anim.DefaultColors,
		Atlas:   DefaultAtlas(),
	}
}

// proceduralClip builds the clip for id from its name's motion family.
func proceduralClip(id int16) *anim.Clip {
	name := anim.ClipName(id)
	r := classify(name)
	frames := r.frames
	if n, ok := clipFrames[id]; ok {
		frames = n
	}
	if frames < 1 {
		frames = 1
	}

	var flags int16
	if !r.loop {
		flags |= anim.FlagNoLoop
	}

	channels := make([][]int16, anim.NumChannels)
	for f := int16(0); f < frames; f++ {
		p := samplePose(r.motion, name, float64(f), float64(frames))
		for ch := range channels {
			channels[ch] = append(channels[ch], p[ch])
		}
	}

	c := &anim.Clip{
		Flags:         flags,
		YTransDivisor: anim.DefaultYTrans,
		LoopEnd:       frames,
	}
	packChannels(c, channels)
	return c
}

// packChannels stores constant channels as a single value.
func packChannels(c *anim.Clip, channels [][]int16) {
	c.Index = make([]uint16, 0, len(channels)*2)
	for _, ch := range channels {
		values := ch
		if constant(ch) {
			values = ch[:1]
		}
		c.Index = append(c.Index, uint16(len(values)), uint16(len(c.Values)))
		c.Values = append(c.Values, values...)
	}
}

func constant(ch []int16) bool {
	for _, v := range ch[1:] {
		if v != ch[0] {
			return false
		}
	}
	return true
}

// channelPose is one frame of every clip channel.
type channelPose [anim.NumChannels]int16

func (p *channelPose) joint(j int, x, y, z float64) {
	base := 3 + j*3
	p[base] = angle(x)
	p[base+1] = angle(y)
	p[base+2] = angle(z)
}

// angle converts a fraction of a half turn to binary angle units.
func angle(halfTurns float64) int16 {
	return int16(int32(math.Round(halfTurns * 32768)))
}

func samplePose(mo motion, name string, f, n float64) channelPose {
	var p channelPose
	phase := 2 * math.Pi * f / n
	progress := f / math.Max(n-1, 1)
	rootY := float64(anim.RestHeight)

	switch mo {
	case motionIdle:
		p.joint(anim.JointTorso, 0.01*math.Sin(phase), 0, 0)
		p.joint(anim.JointHead, 0, 0.04*math.Sin(phase/2), 0)

	case motionGait:
		amp := 0.15
		switch {
		case strings.Contains(name, "running"):
			amp = 0.25
		case strings.Contains(name, "tiptoe"):
			amp = 0.08
		}
		s := math.Sin(phase)
		p.joint(anim.JointLeftThigh, -amp*s, 0, 0)
		p.joint(anim.JointRightThigh, amp*s, 0, 0)
		p.joint(anim.JointLeftShin, amp*math.Max(0, s), 0, 0)
		p.joint(anim.JointRightShin, amp*math.Max(0, -s), 0, 0)
		p.joint(anim.JointLeftUpperArm, 0.7*amp*s, 0, 0)
		p.joint(anim.JointRightUpperArm, -0.7*amp*s, 0, 0)
		p.joint(anim.JointTorso, amp/4, 0, 0)
		rootY += 4 * math.Abs(math.Cos(phase))

	case motionSwim:
		p.joint(anim.JointRoot, 0.3, 0, 0)
		sweep := 0.3 * math.Sin(phase)
		p.joint(anim.JointLeftUpperArm, 0, 0, 0.3+sweep)
		p.joint(anim.JointRightUpperArm, 0, 0, -0.3-sweep)
		flutter := 0.08 * math.Sin(2*phase)
		p.joint(anim.JointLeftThigh, flutter, 0, 0)
		p.joint(anim.JointRightThigh, -flutter, 0, 0)

	case motionAir:
		p.joint(anim.JointLeftUpperArm, 0, 0, 0.45)
		p.joint(anim.JointRightUpperArm, 0, 0, -0.45)
		p.joint(anim.JointLeftThigh, -0.1, 0, 0)
		p.joint(anim.JointLeftShin, 0.2, 0, 0)
		p.joint(anim.JointRightThigh, 0.05, 0, 0)

	case motionSpin:
		turn := 2 * progress
		if strings.Contains(name, "twirl") || strings.Contains(name, "spinning") && !strings.Contains(name, "flip") {
			p.joint(anim.JointRoot, 0, turn, 0)
		} else {
			if strings.Contains(name, "back") {
				turn = -turn
			}
			p.joint(anim.JointRoot, turn, 0, 0)
		}
		p.joint(anim.JointLeftThigh, -0.25, 0, 0)
		p.joint(anim.JointRightThigh, -0.25, 0, 0)
		p.joint(anim.JointLeftShin, 0.4, 0, 0)
		p.joint(anim.JointRightShin, 0.4, 0, 0)

	case motionLand:
		k := 1 - progress
		p.joint(anim.JointLeftThigh, -0.15*k, 0, 0)
		p.joint(anim.JointRightThigh, -0.15*k, 0, 0)
		p.joint(anim.JointLeftShin, 0.3*k, 0, 0)
		p.joint(anim.JointRightShin, 0.3*k, 0, 0)
		rootY -= 15 * k

	case motionCrouch:
		p.joint(anim.JointLeftThigh, -0.3, 0, 0)
		p.joint(anim.JointRightThigh, -0.3, 0, 0)
		p.joint(anim.JointLeftShin, 0.55, 0, 0)
		p.joint(anim.JointRightShin, 0.55, 0, 0)
		p.joint(anim.JointTorso, 0.1+0.02*math.Sin(phase), 0, 0)
		rootY -= 28

	case motionHang:
		reach := 0.85
		if strings.Contains(name, "ledge") {
			reach = 0.6 * (1 - progress)
			rootY -= 40 * (1 - progress)
		}
		p.joint(anim.JointLeftUpperArm, 0, 0, reach)
		p.joint(anim.JointRightUpperArm, 0, 0, -reach)
		swing := 0.06 * math.Sin(phase)
		p.joint(anim.JointLeftThigh, swing, 0, 0)
		p.joint(anim.JointRightThigh, -swing, 0, 0)

	case motionStrike:
		arc := math.Sin(math.Pi * progress)
		switch {
		case strings.Contains(name, "kick") || strings.Contains(name, "breakdance"):
			p.joint(anim.JointRightThigh, -0.35*arc, 0, 0)
			p.joint(anim.JointRightShin, 0.1*arc, 0, 0)
		case strings.Contains(name, "cap"):
			p.joint(anim.JointRightUpperArm, 0, 0, -0.9*arc)
			p.joint(anim.JointRightForearm, 0, 0, -0.3*arc)
		default:
			p.joint(anim.JointRightUpperArm, -0.5*arc, 0, 0)
			p.joint(anim.JointTorso, 0, 0.08*arc, 0)
		}

	case motionDeath:
		k := math.Min(1, progress/0.6)
		p.joint(anim.JointRoot, -0.5*k, 0, 0)
		rootY -= 50 * k

	case motionLying:
		p.joint(anim.JointRoot, 0.5, 0, 0)
		p.joint(anim.JointTorso, 0.01*math.Sin(phase), 0, 0)
		rootY = 18
	}

	p[1] = int16(math.Round(rootY))
	return p
}
