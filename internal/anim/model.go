package anim

import m "github.com/Faultbox/libsm64-go/pkg/math"

// RGB is an 8-bit colour.
type RGB [3]uint8

// ColorGroupDef is the shaded and lit colour of one material.
type ColorGroupDef struct {
	Shade RGB `msgpack:"shade" yaml:"shade"`
	Color RGB `msgpack:"color" yaml:"color"`
}

// ColorGroups is the palette indexed by ColorGroup.
type ColorGroups [NumColorGroups]ColorGroupDef

// DefaultColors is the stock palette.
var DefaultColors = ColorGroups{
	GroupBlue:   {Shade: RGB{0, 0, 127}, Color: RGB{0, 0, 255}},
	GroupRed:    {Shade: RGB{127, 0, 0}, Color: RGB{255, 0, 0}},
	GroupWhite:  {Shade: RGB{127, 127, 127}, Color: RGB{255, 255, 255}},
	GroupBrown1: {Shade: RGB{57, 14, 7}, Color: RGB{114, 28, 14}},
	GroupBeige:  {Shade: RGB{127, 96, 60}, Color: RGB{254, 193, 121}},
	GroupBrown2: {Shade: RGB{57, 3, 2}, Color: RGB{115, 6, 0}},
}

var metalColor = ColorGroupDef{Shade: RGB{90, 90, 100}, Color: RGB{200, 200, 215}}

// Eye states.
const (
	EyesBlink uint8 = iota
	EyesOpen
	EyesHalfClosed
	EyesClosed
	EyesDead uint8 = 8
)

// Hand states.
const (
	HandFists uint8 = iota
	HandOpen
	HandPeaceSign
	HandHoldingCap
	HandHoldingWingCap
	HandRightOpen
)

// ModelState is the per-tick appearance derived from character flags.
type ModelState struct {
	CapOnHead  bool
	WingCap    bool
	HandState  uint8
	EyeState   uint8
	Metal      bool
	Vanish     bool
	Invisible  bool
	HeadAngle  [3]int16
	TorsoAngle [3]int16
	// Scale stretches the whole model; the zero value means unscaled.
	Scale m.Vec3
}

var blinkFrames = [7]uint8{1, 2, 1, 0, 1, 2, 1}

// eyeTile maps the eye state to an atlas tile, blinking on counter.
func (s ModelState) eyeTile(counter uint16) int {
	state := s.EyeState
	if state == EyesBlink {
		f := (uint32(counter) >> 1) & 0x1F
		state = EyesOpen
		if f < uint32(len(blinkFrames)) {
			state = EyesOpen + blinkFrames[f]
		}
	}
	switch state {
	case EyesHalfClosed:
		return TileEyesHalf
	case EyesClosed:
		return TileEyesClosed
	case EyesDead:
		return TileEyesDead
	default:
		return TileEyesOpen
	}
}
