package mario

import (
	"errors"

	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

// ErrNoFloor is returned when a spawn point has no floor below it.
var ErrNoFloor = errors.New("mario: no floor below spawn point")

// SoundSink receives sound and music cues. Implementations must not block.
type SoundSink interface {
	PlaySound(bits uint32, pos smath.Vec3)
	PlayMusic(player uint8, seqArgs uint16, fadeTimer uint16)
	StopBackgroundMusic(seqID uint16)
	FadeoutBackgroundMusic(seqID uint16, fadeOut uint16)
}

// Inputs is one tick of host input.
type Inputs struct {
	CamLookX, CamLookZ float32
	StickX, StickY     float32
	ButtonA            bool
	ButtonB            bool
	ButtonZ            bool
}

// Controller is the virtual pad the movement code reads.
type Controller struct {
	StickX, StickY float32
	StickMag       float32
	ButtonDown     uint16
	ButtonPressed  uint16
}

// BodyState is the per-tick appearance request from the action code.
type BodyState struct {
	CapState    uint8
	EyeState    uint8
	HandState   uint8
	WingFlutter bool
	ModelState  uint16
	PunchState  uint8
	HeadAngle   smath.Vec3s
	TorsoAngle  smath.Vec3s
}

// Model state bits.
const (
	ModelStateNoiseAlpha uint16 = 0x180
	ModelStateMetal      uint16 = 0x200
)

// Hitbox is the interaction cylinder.
type Hitbox struct {
	Radius float32
	Height float32
}

// Mario is one simulated character.
type Mario struct {
	idx   *surface.Index
	anims *anim.Library
	sound SoundSink

	Action     Action
	PrevAction Action
	ActionArg  uint32
	// ActionState and ActionTimer are reset on every transition.
	ActionState uint16
	ActionTimer uint16

	Flags         uint32
	Input         uint16
	ParticleFlags uint32

	FramesSinceA    uint8
	FramesSinceB    uint8
	WallKickTimer   uint8
	DoubleJumpTimer uint8

	Pos        smath.Vec3
	Vel        smath.Vec3
	FaceAngle  smath.Vec3s
	AngleVel   smath.Vec3s
	ForwardVel float32
	SlideVelX  float32
	SlideVelZ  float32
	SlideYaw   int16
	TwirlYaw   int16

	IntendedMag float32
	IntendedYaw int16
	CameraYaw   int16

	PeakHeight     float32
	QuicksandDepth float32
	InvincTimer    int16
	SquishTimer    uint8

	Health      int16
	HurtCounter uint8
	HealCounter uint8
	CapTimer    uint16

	WaterLevel int16

	Wall        *surface.Surface
	Ceil        *surface.Surface
	Floor       *surface.Surface
	FloorHeight float32
	CeilHeight  float32
	FloorAngle  int16

	TerrainSoundAddend uint32

	Controller Controller
	Body       BodyState
	Anim       anim.Info
	Hitbox     Hitbox

	GfxPos    smath.Vec3
	GfxAngle  smath.Vec3s
	GfxScale  smath.Vec3
	Invisible bool

	// Platform is the surface object the character stands on, if any.
	Platform     surface.ObjectHandle
	platformLast surface.Transform

	// Set by Stomp and consumed on the next tick.
	interactDamage uint32
	stomped        bool

	steepJumpYaw   int16
	walkingPitch   int16
	burnTimer      int32
	longJumpIsSlow bool
	windGravity    float32

	// Swimming state carried between strokes.
	swimStrength int16
	wasAtSurface bool
	bobAngle     int16
	bobIncrement int16
	bobHeight    float32

	floorOverride   bool
	overrideTerrain uint16
	overrideFloor   int16

	capMusic uint16
	counter  uint16
	rng      uint16
	fake     bool
}

// New creates a character bound to idx. lib and sound may be nil.
func New(idx *surface.Index, lib *anim.Library, sound SoundSink) *Mario {
	if lib == nil {
		lib = anim.NewLibrary(nil)
	}
	mario := &Mario{
		idx:          idx,
		anims:        lib,
		sound:        sound,
		Health:       HealthFull,
		WaterLevel:   NoWaterLevel,
		swimStrength: minSwimStrength,
		GfxScale:     smath.Vec3{X: 1, Y: 1, Z: 1},
		Hitbox:       Hitbox{Radius: HitboxRadius, Height: HitboxHeight},
	}
	mario.Anim.Reset()
	return mario
}

// Init places the character at pos. Unless fake is set the spawn point must
// have a floor below it, and the character starts in the spawn spin.
func (m *Mario) Init(pos smath.Vec3, fake bool) error {
	m.fake = fake
	m.ActionTimer = 0
	m.FramesSinceA = 0xFF
	m.FramesSinceB = 0xFF
	m.InvincTimer = 0
	m.Flags = FlagCapOnHead | FlagNormalCap
	m.ForwardVel = 0
	m.SquishTimer = 0
	m.HurtCounter = 0
	m.HealCounter = 0
	m.CapTimer = 0
	m.QuicksandDepth = 0
	m.Health = HealthFull
	m.Anim.Reset()

	m.FaceAngle = smath.Vec3s{}
	m.AngleVel = smath.Vec3s{}
	m.Pos = pos
	m.Vel = smath.Vec3{}

	m.FloorHeight, m.Floor = m.findFloor(m.Pos.X, m.Pos.Y, m.Pos.Z)
	if m.Pos.Y < m.FloorHeight {
		m.Pos.Y = m.FloorHeight
	}
	m.GfxPos = m.Pos
	m.GfxAngle = smath.Vec3s{Y: m.FaceAngle.Y}

	if m.Pos.Y <= float32(m.WaterLevel)-100 {
		m.Action = ActWaterIdle
	} else {
		m.Action = ActIdle
	}
	m.resetBodyState()
	m.Body.PunchState = 0

	if fake {
		return nil
	}
	if m.Floor == nil {
		return ErrNoFloor
	}
	m.SetAction(ActSpawnSpinAirborne, 0)
	m.FloorHeight, m.Floor = m.findFloor(m.Pos.X, m.Pos.Y, m.Pos.Z)
	return nil
}

// Fake reports whether the character skipped spawn validation.
func (m *Mario) Fake() bool { return m.fake }

// Counter returns the tick counter used for animation and flicker timing.
func (m *Mario) Counter() uint16 { return m.counter }

// Index returns the surface index the character collides with.
func (m *Mario) Index() *surface.Index { return m.idx }

// SetSoundSink replaces the sound sink. nil silences the character.
func (m *Mario) SetSoundSink(s SoundSink) { m.sound = s }

func (m *Mario) resetBodyState() {
	m.Body.CapState = CapOff
	m.Body.EyeState = anim.EyesBlink
	m.Body.HandState = anim.HandFists
	m.Body.ModelState = 0
	m.Body.WingFlutter = false
	m.Flags &^= FlagMetalShock
}

// random returns the next value of the per-character pseudo random stream.
func (m *Mario) random() uint16 {
	if m.rng == 22026 {
		m.rng = 0
	}
	t1 := (m.rng & 0x00FF) << 8
	t1 ^= m.rng
	m.rng = ((t1 & 0x00FF) << 8) + ((t1 & 0xFF00) >> 8)
	t1 = ((t1 & 0x00FF) << 1) ^ m.rng
	t2 := (t1 >> 1) ^ 0xFF80
	if t1&1 == 0 {
		if t2 == 43605 {
			m.rng = 0
		} else {
			m.rng = t2 ^ 0x1FF4
		}
	} else {
		m.rng = t2 ^ 0x8180
	}
	return m.rng
}

// SetForwardVel sets the forward speed and derives horizontal velocity.
func (m *Mario) SetForwardVel(v float32) {
	m.ForwardVel = v
	m.SlideVelX = smath.Sins(m.FaceAngle.Y) * v
	m.SlideVelZ = smath.Coss(m.FaceAngle.Y) * v
	m.Vel.X = m.SlideVelX
	m.Vel.Z = m.SlideVelZ
}

// Animation helpers.

func (m *Mario) setAnim(id int16) int16 {
	m.Anim.Fallback = clipFallback(m.Action)
	return m.Anim.Set(m.anims, id)
}

func (m *Mario) setAnimWithAccel(id int16, accel int32) int16 {
	m.Anim.Fallback = clipFallback(m.Action)
	return m.Anim.SetWithAccel(m.anims, id, accel)
}

// clipFallback maps an action to the stand-in clip group used when the
// loaded pack lacks the clip the action asks for.
func clipFallback(a Action) anim.Fallback {
	switch {
	case a.IsSwimming() || a.Group() == GroupSubmerged:
		return anim.FallbackSwim
	case a.IsAir():
		return anim.FallbackAir
	case a.Group() == GroupMoving:
		return anim.FallbackWalk
	case a.Group() == GroupCutscene:
		return anim.FallbackCutscene
	}
	return anim.FallbackIdle
}

func (m *Mario) isAnimAtEnd() bool   { return m.Anim.IsAtEnd() }
func (m *Mario) isAnimPastEnd() bool { return m.Anim.IsPastEnd() }

func (m *Mario) isAnimPastFrame(frame int16) bool { return m.Anim.IsPastFrame(frame) }

func (m *Mario) setAnimFrame(frame int16) { m.Anim.SetFrame(frame) }

// Sound helpers.

func (m *Mario) playSound(bits uint32) {
	if m.sound != nil {
		m.sound.PlaySound(bits, m.Pos)
	}
}

func (m *Mario) playSoundIfNoFlag(bits uint32, flag uint32) {
	if m.Flags&flag == 0 {
		m.playSound(bits)
		m.Flags |= flag
	}
}

func (m *Mario) playJumpSound() {
	if m.Flags&FlagMarioSoundPlayed != 0 {
		return
	}
	if m.Action == ActTripleJump {
		m.playSound(audio.SoundMarioYahooWahaYippee + uint32(m.random()%5)<<16)
	} else {
		m.playSound(audio.SoundMarioYahWahHoo + uint32(m.random()%3)<<16)
	}
	m.Flags |= FlagMarioSoundPlayed
}

func (m *Mario) playSoundAndSpawnParticles(bits uint32, wave bool) {
	switch m.TerrainSoundAddend {
	case audio.TerrainSoundWater << 16:
		if wave {
			m.ParticleFlags |= ParticleShallowWaterSplash
		} else {
			m.ParticleFlags |= ParticleShallowWaterWave
		}
	case audio.TerrainSoundSand << 16:
		m.ParticleFlags |= ParticleDirt
	case audio.TerrainSoundSnow << 16:
		m.ParticleFlags |= ParticleSnow
	}

	if m.Flags&FlagMetalCap != 0 || bits == audio.SoundActionUnstuckFromGround || bits == audio.SoundMarioPunchHoo {
		m.playSound(bits)
	} else {
		m.playSound(m.TerrainSoundAddend + bits)
	}
}

func (m *Mario) playActionSound(bits uint32, wave bool) {
	if m.Flags&FlagActionSoundPlayed == 0 {
		m.playSoundAndSpawnParticles(bits, wave)
		m.Flags |= FlagActionSoundPlayed
	}
}

func (m *Mario) landingSound(bits uint32) uint32 {
	if m.Flags&FlagMetalCap != 0 {
		return audio.SoundActionMetalLanding
	}
	return bits
}

func (m *Mario) heavyLandingSound(bits uint32) uint32 {
	if m.Flags&FlagMetalCap != 0 {
		return audio.SoundActionMetalHeavyLanding
	}
	return bits
}

func (m *Mario) playLandingSound(bits uint32) {
	m.playSoundAndSpawnParticles(m.landingSound(bits), true)
}

func (m *Mario) playLandingSoundOnce(bits uint32) {
	m.playActionSound(m.landingSound(bits), true)
}

func (m *Mario) playHeavyLandingSound(bits uint32) {
	m.playSoundAndSpawnParticles(m.heavyLandingSound(bits), true)
}

func (m *Mario) playHeavyLandingSoundOnce(bits uint32) {
	m.playActionSound(m.heavyLandingSound(bits), true)
}

// Voice arguments for playMarioSound.
const (
	voiceJump uint32 = 0
	voiceNone uint32 = 0xFFFFFFFF
)

func (m *Mario) playMarioSound(actionSound, voice uint32) {
	if actionSound == audio.SoundActionTerrainJump {
		bits := audio.SoundActionTerrainJump
		if m.Flags&FlagMetalCap != 0 {
			bits = audio.SoundActionMetalJump
		}
		m.playActionSound(bits, true)
	} else {
		m.playSoundIfNoFlag(actionSound, FlagActionSoundPlayed)
	}

	switch voice {
	case voiceJump:
		m.playJumpSound()
	case voiceNone:
	default:
		m.playSoundIfNoFlag(voice, FlagMarioSoundPlayed)
	}
}

// Music helpers for cap power-ups.

func (m *Mario) playCapMusic(seqArgs uint16) {
	if m.sound == nil {
		return
	}
	m.sound.PlayMusic(audio.SeqPlayerLevel, seqArgs, 0)
	if m.capMusic != audio.NoMusic && m.capMusic != seqArgs {
		m.sound.StopBackgroundMusic(m.capMusic)
	}
	m.capMusic = seqArgs
}

func (m *Mario) stopCapMusic() {
	if m.capMusic == audio.NoMusic {
		return
	}
	if m.sound != nil {
		m.sound.StopBackgroundMusic(m.capMusic)
	}
	m.capMusic = audio.NoMusic
}

func (m *Mario) fadeoutCapMusic() {
	if m.capMusic != audio.NoMusic && m.sound != nil {
		m.sound.FadeoutBackgroundMusic(m.capMusic, 600)
	}
}
