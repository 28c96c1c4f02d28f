package mario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/libsm64-go/internal/audio"
	"github.com/Faultbox/libsm64-go/internal/surface"
	smath "github.com/Faultbox/libsm64-go/pkg/math"
)

type recordedSound struct {
	bits uint32
	pos  smath.Vec3
}

// soundRecorder collects everything the character asks to play.
type soundRecorder struct {
	sounds []recordedSound
	music  []uint16
	stops  []uint16
}

func (r *soundRecorder) PlaySound(bits uint32, pos smath.Vec3) {
	r.sounds = append(r.sounds, recordedSound{bits, pos})
}

func (r *soundRecorder) PlayMusic(_ uint8, seqArgs uint16, _ uint16) {
	r.music = append(r.music, seqArgs)
}

func (r *soundRecorder) StopBackgroundMusic(seqID uint16) {
	r.stops = append(r.stops, seqID)
}

func (r *soundRecorder) FadeoutBackgroundMusic(uint16, uint16) {}

func (r *soundRecorder) played(bits uint32) bool {
	for _, s := range r.sounds {
		if s.bits == bits {
			return true
		}
	}
	return false
}

func flatFloor(half, y int32, typ int16) []surface.Def {
	return []surface.Def{
		{Type: typ, Vertices: [3][3]int32{{-half, y, -half}, {-half, y, half}, {half, y, half}}},
		{Type: typ, Vertices: [3][3]int32{{-half, y, -half}, {half, y, half}, {half, y, -half}}},
	}
}

func newTestMario(t *testing.T, fake bool, pos smath.Vec3) (*Mario, *soundRecorder) {
	t.Helper()
	idx := surface.NewIndex(surface.DefaultCellSize)
	idx.LoadStatic(flatFloor(4000, 0, surface.TypeDefault))

	rec := &soundRecorder{}
	m := New(idx, nil, rec)
	require.NoError(t, m.Init(pos, fake))
	return m, rec
}

func tickUntil(m *Mario, in Inputs, limit int, done func() bool) bool {
	for i := 0; i < limit; i++ {
		m.Tick(in)
		if done() {
			return true
		}
	}
	return false
}

func TestInitWithoutFloor(t *testing.T) {
	m := New(surface.NewIndex(surface.DefaultCellSize), nil, nil)
	assert.ErrorIs(t, m.Init(smath.Vec3{Y: 100}, false), ErrNoFloor)

	m = New(surface.NewIndex(surface.DefaultCellSize), nil, nil)
	assert.NoError(t, m.Init(smath.Vec3{Y: 100}, true))
	assert.True(t, m.Fake())
	assert.Equal(t, ActIdle, m.Action)
}

func TestSpawnFallsToFloor(t *testing.T) {
	m, rec := newTestMario(t, false, smath.Vec3{Y: 1000})
	assert.Equal(t, ActSpawnSpinAirborne, m.Action)
	assert.Equal(t, HealthFull, m.Health)

	landed := tickUntil(m, Inputs{}, 300, func() bool { return m.Action == ActIdle })
	require.True(t, landed, "still in %v", m.Action)
	assert.Equal(t, float32(0), m.Pos.Y)
	assert.Equal(t, float32(0), m.Vel.Y)
	assert.True(t, rec.played(audio.SoundActionSpin))
}

func TestSpawnDropsOnFirstTick(t *testing.T) {
	m, _ := newTestMario(t, false, smath.Vec3{Y: 1000})
	m.Tick(Inputs{})
	assert.Less(t, m.Pos.Y, float32(1000))
	assert.Less(t, m.Vel.Y, float32(0))
	assert.Equal(t, ActSpawnSpinAirborne, m.Action)
}

func TestSpawnBelowFloorSnapsUp(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{Y: -20})
	assert.Equal(t, float32(0), m.Pos.Y)
}

func TestSpawnUnderwater(t *testing.T) {
	idx := surface.NewIndex(surface.DefaultCellSize)
	idx.LoadStatic(flatFloor(4000, 0, surface.TypeDefault))
	m := New(idx, nil, nil)
	m.WaterLevel = 1000
	require.NoError(t, m.Init(smath.Vec3{Y: 200}, true))
	assert.Equal(t, ActWaterIdle, m.Action)

	for i := 0; i < 10; i++ {
		m.Tick(Inputs{})
	}
	assert.Equal(t, GroupSubmerged, m.Action.Group())
}

func TestJumpFromIdle(t *testing.T) {
	m, rec := newTestMario(t, true, smath.Vec3{})

	m.Tick(Inputs{ButtonA: true})
	assert.Equal(t, ActJump, m.Action)
	assert.Greater(t, m.Pos.Y, float32(0))
	assert.NotEmpty(t, rec.sounds)

	// Holding A does not press it again.
	landed := tickUntil(m, Inputs{ButtonA: true}, 200, func() bool {
		return m.Action.Group() != GroupAirborne
	})
	require.True(t, landed)
	assert.Equal(t, float32(0), m.Pos.Y)
}

func TestPunchReturnsToIdle(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{})

	m.Tick(Inputs{ButtonB: true})
	assert.Equal(t, ActPunching, m.Action)

	done := tickUntil(m, Inputs{}, 30, func() bool { return m.Action == ActIdle })
	assert.True(t, done, "stuck in %v", m.Action)
}

func TestWalkOnStick(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{})

	in := Inputs{CamLookZ: 1, StickY: -1}
	for i := 0; i < 30; i++ {
		m.Tick(in)
	}
	assert.Equal(t, GroupMoving, m.Action.Group())
	assert.Greater(t, m.ForwardVel, float32(0))
	moved := m.Pos.X*m.Pos.X + m.Pos.Z*m.Pos.Z
	assert.Greater(t, moved, float32(100))
}

func TestUnknownActionFallsBack(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{})

	unknown := Action(0x0000013F)
	require.False(t, Implemented(unknown))
	m.Action = unknown

	m.Tick(Inputs{})
	assert.True(t, Implemented(m.Action))
	assert.Equal(t, GroupStationary, m.Action.Group())
}

func TestFallbackAction(t *testing.T) {
	assert.Equal(t, ActWaterIdle, fallbackAction(Action(0x000000FF)|GroupSubmerged))
	assert.Equal(t, ActFreefall, fallbackAction(Action(0x000000BF)|ActFlagAir))
	assert.Equal(t, ActIdle, fallbackAction(Action(0x0000013F)))
}

func TestImplementedActions(t *testing.T) {
	actions := []Action{
		ActIdle, ActStartSleeping, ActSleeping, ActWakingUp, ActPanting, ActStandingAgainstWall,
		ActCrouching, ActStartCrouching, ActStopCrouching, ActStartCrawling, ActStopCrawling,
		ActJumpLandStop, ActDoubleJumpLandStop, ActFreefallLandStop, ActSideFlipLandStop,
		ActTripleJumpLandStop, ActBackflipLandStop, ActLongJumpLandStop, ActGroundPoundLand,
		ActTwirlLand, ActLavaBoostLand, ActBrakingStop, ActButtSlideStop, ActSlideKickSlideStop,

		ActWalking, ActTurningAround, ActFinishTurningAround, ActBraking, ActDecelerating,
		ActCrawling, ActBurningGround, ActButtSlide, ActStomachSlide, ActDiveSlide,
		ActCrouchSlide, ActSlideKickSlide, ActMovePunching, ActGroundBonk,
		ActHardBackwardGroundKb, ActHardForwardGroundKb, ActBackwardGroundKb,
		ActForwardGroundKb, ActSoftBackwardGroundKb, ActSoftForwardGroundKb,
		ActJumpLand, ActFreefallLand, ActDoubleJumpLand, ActSideFlipLand, ActTripleJumpLand,
		ActBackflipLand, ActLongJumpLand,

		ActJump, ActDoubleJump, ActTripleJump, ActBackflip, ActSideFlip, ActLongJump,
		ActWallKickAir, ActSteepJump, ActWaterJump, ActDive, ActFreefall, ActButtSlideAir,
		ActFlying, ActFlyingTripleJump, ActTwirling, ActForwardRollout, ActBackwardRollout,
		ActAirHitWall, ActGroundPound, ActSlideKick, ActJumpKick, ActBackwardAirKb,
		ActForwardAirKb, ActHardBackwardAirKb, ActHardForwardAirKb, ActSoftBonk,
		ActLavaBoost, ActBurningJump, ActBurningFall, ActGettingBlown, ActVerticalWind,

		ActWaterIdle, ActBreaststroke, ActSwimmingEnd, ActFlutterKick, ActWaterPlunge,
		ActWaterActionEnd, ActBackwardWaterKb, ActForwardWaterKb, ActDrowning, ActWaterDeath,
		ActWaterPunch,

		ActSpawnSpinAirborne, ActSpawnSpinLanding, ActSpawnNoSpinAirborne,
		ActSpawnNoSpinLanding, ActPuttingOnCap, ActStandingDeath, ActQuicksandDeath,
		ActDeathOnStomach, ActDeathOnBack, ActElectrocution, ActSuffocation,
		ActDisappeared, ActSquished,

		ActLedgeGrab, ActLedgeClimbSlow1, ActLedgeClimbSlow2, ActLedgeClimbDown,
		ActLedgeClimbFast, ActStartHanging, ActHanging, ActHangMoving,

		ActPunching, ActStomachSlideStop,
	}
	assert.GreaterOrEqual(t, len(actions), 95)
	for _, a := range actions {
		assert.True(t, Implemented(a), "%v has no handler", a)
	}
}

func TestInteractCapWhileIdle(t *testing.T) {
	m, rec := newTestMario(t, true, smath.Vec3{})

	m.InteractCap(FlagWingCap, 0, true)
	assert.Equal(t, WingCapTime, m.CapTimer)
	assert.Equal(t, ActPuttingOnCap, m.Action)
	assert.NotZero(t, m.Flags&FlagWingCap)
	assert.NotZero(t, m.Flags&FlagCapInHand)
	assert.Zero(t, m.Flags&FlagCapOnHead)
	assert.True(t, rec.played(audio.SoundMarioHereWeGo))
	assert.Equal(t, []uint16{audio.SequenceArgs(4, audio.SeqEventPowerup)}, rec.music)

	// A second cap while the first goes on is ignored.
	m.InteractCap(FlagVanishCap, 0, false)
	assert.Zero(t, m.Flags&FlagVanishCap)
	assert.Equal(t, WingCapTime, m.CapTimer)
}

func TestInteractCapInAir(t *testing.T) {
	m, rec := newTestMario(t, true, smath.Vec3{})
	m.Action = ActJump
	m.CapTimer = 900

	m.InteractCap(FlagMetalCap, 0, false)
	assert.Equal(t, ActJump, m.Action)
	assert.Equal(t, uint16(900), m.CapTimer, "a shorter cap must not cut the timer")
	assert.NotZero(t, m.Flags&FlagCapOnHead)
	assert.Empty(t, rec.music)

	m.InteractCap(FlagVanishCap, 1200, false)
	assert.Equal(t, uint16(1200), m.CapTimer)
}

func TestInteractCapWhileBlown(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{})
	m.Action = ActGettingBlown

	m.InteractCap(FlagWingCap, 0, false)
	assert.Zero(t, m.Flags&FlagWingCap)
	assert.Zero(t, m.CapTimer)
}

func TestCapTimerRunsOut(t *testing.T) {
	m, rec := newTestMario(t, true, smath.Vec3{})
	m.Action = ActJump
	m.InteractCap(FlagVanishCap, 3, true)
	m.Action = ActIdle

	for i := 0; i < 4; i++ {
		m.Tick(Inputs{})
	}
	assert.Zero(t, m.Flags&FlagVanishCap)
	assert.Zero(t, m.CapTimer)
	assert.Equal(t, []uint16{audio.SequenceArgs(4, audio.SeqEventPowerup)}, rec.stops)
}

func TestHealthShims(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{})

	m.SetHealth(0x400)
	m.Heal(2)
	assert.Equal(t, uint8(2), m.HealCounter)
	m.Tick(Inputs{})
	assert.Equal(t, int16(0x400+HealthStep), m.Health)

	m.Kill()
	assert.Equal(t, HealthDead, m.Health)
}

func TestTakeDamageKnocksBack(t *testing.T) {
	m, rec := newTestMario(t, true, smath.Vec3{})

	// Struck from straight ahead.
	hit := m.TakeDamage(2, 0, smath.Vec3{Z: 100})
	require.True(t, hit)
	assert.Equal(t, ActBackwardGroundKb, m.Action)
	assert.Equal(t, float32(-16), m.ForwardVel)
	assert.Equal(t, uint8(8), m.HurtCounter)
	assert.True(t, rec.played(audio.SoundMarioAttacked))
}

func TestTakeDamageFromBehind(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{})
	m.Flags &^= FlagCapOnHead

	require.True(t, m.TakeDamage(4, DamageBigKnockback, smath.Vec3{Z: -100}))
	assert.Equal(t, ActHardForwardGroundKb, m.Action)
	assert.Equal(t, float32(40), m.ForwardVel)
	assert.Equal(t, uint8(4*6), m.HurtCounter, "no cap takes half again")
}

func TestTakeDamageIgnored(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{})

	m.InvincTimer = 10
	assert.False(t, m.TakeDamage(2, 0, smath.Vec3{Z: 100}))

	m.InvincTimer = 0
	m.Flags |= FlagVanishCap
	assert.False(t, m.TakeDamage(2, 0, smath.Vec3{Z: 100}))

	m.Flags &^= FlagVanishCap
	assert.False(t, m.TakeDamage(2, DamageDelayInvincibility, smath.Vec3{Z: 100}))
	assert.Equal(t, ActIdle, m.Action)
	assert.Zero(t, m.HurtCounter)
}

func TestAttackQueryIsPure(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{})
	m.Action = ActFreefall
	m.Pos.Y = 100
	m.Vel.Y = -10

	below := smath.Vec3{Y: 60}
	before := *m
	assert.True(t, m.AttackQuery(below, 50))
	assert.Equal(t, before.Pos, m.Pos)
	assert.Equal(t, before.Vel, m.Vel)
	assert.Equal(t, before.Action, m.Action)

	assert.False(t, m.AttackQuery(smath.Vec3{X: 15000, Z: 15000}, 50), "too far away")
	assert.False(t, m.AttackQuery(smath.Vec3{X: HitboxRadius + AttackTargetRadius + 1, Y: 60}, 50), "just out of reach")
	assert.True(t, m.AttackQuery(smath.Vec3{X: HitboxRadius + AttackTargetRadius - 1, Y: 60}, 50), "just in reach")
	assert.False(t, m.AttackQuery(smath.Vec3{}, 50), "top of the target is below the feet")

	m.Vel.Y = 10
	assert.False(t, m.AttackQuery(below, 50), "rising past something is not an attack")

	m.Action = ActIdle
	assert.False(t, m.AttackQuery(below, 50))

	m.Flags |= FlagMetalCap
	assert.True(t, m.AttackQuery(below, 50))
	assert.False(t, m.AttackQuery(smath.Vec3{X: 15000, Z: 15000}, 50), "metal cap still needs contact")
}

func TestBounceFromAttack(t *testing.T) {
	m, rec := newTestMario(t, true, smath.Vec3{})
	m.Action = ActFreefall
	m.Pos.Y = 100
	m.Vel.Y = -10

	// Out of reach: nothing happens.
	m.BounceFromAttack(smath.Vec3{X: 1000, Y: 60}, 50)
	assert.Equal(t, float32(100), m.Pos.Y)
	assert.Equal(t, float32(-10), m.Vel.Y)

	m.BounceFromAttack(smath.Vec3{Y: 60}, 50)
	assert.Equal(t, float32(110), m.Pos.Y)
	assert.Equal(t, float32(30), m.Vel.Y)
	assert.True(t, rec.played(audio.SoundActionBounceOffObject))

	// Nothing happens when the attack would not land.
	m.Vel.Y = 10
	m.BounceFromAttack(smath.Vec3{Y: 200}, 50)
	assert.Equal(t, float32(110), m.Pos.Y)
}

func TestStompBouncesIdle(t *testing.T) {
	m, _ := newTestMario(t, true, smath.Vec3{})

	m.Stomp(0)
	m.Tick(Inputs{})
	assert.Equal(t, ActShockwaveBounce, m.Action)
}

func TestPlatformCarriesCharacter(t *testing.T) {
	idx := surface.NewIndex(surface.DefaultCellSize)
	idx.LoadStatic(flatFloor(4000, -1000, surface.TypeDefault))
	h := idx.LoadObject(surface.ObjectDef{Surfaces: flatFloor(300, 0, surface.TypeDefault)})

	m := New(idx, nil, nil)
	require.NoError(t, m.Init(smath.Vec3{}, true))

	m.Tick(Inputs{})
	require.Equal(t, h, m.Platform)

	require.True(t, idx.MoveObject(h, surface.Transform{Position: smath.Vec3{X: 100}}))
	m.Tick(Inputs{})
	assert.InDelta(t, 100, m.Pos.X, 0.01)
	assert.InDelta(t, 0, m.Pos.Y, 0.01)
	assert.Equal(t, h, m.Platform)
}

func TestPlatformDeletion(t *testing.T) {
	idx := surface.NewIndex(surface.DefaultCellSize)
	idx.LoadStatic(flatFloor(4000, -1000, surface.TypeDefault))
	h := idx.LoadObject(surface.ObjectDef{Surfaces: flatFloor(300, 0, surface.TypeDefault)})

	m := New(idx, nil, nil)
	require.NoError(t, m.Init(smath.Vec3{}, true))
	m.Tick(Inputs{})
	require.Equal(t, h, m.Platform)

	freed, ok := idx.UnloadObject(h)
	require.True(t, ok)
	m.ForgetPlatform(freed)
	assert.Equal(t, surface.NoObject, m.Platform)

	// A new object in the same slot must not be mistaken for the old one.
	h2 := idx.LoadObject(surface.ObjectDef{
		Transform: surface.Transform{Position: smath.Vec3{X: 3000}},
		Surfaces:  flatFloor(100, 0, surface.TypeDefault),
	})
	assert.NotEqual(t, h, h2)

	m.Tick(Inputs{})
	assert.Equal(t, surface.NoObject, m.Platform)
	assert.Equal(t, ActFreefall, m.Action)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "idle", ActIdle.String())
	assert.Equal(t, GroupStationary, ActIdle.Group())
	assert.True(t, ActJump.IsAir())
	assert.True(t, ActWaterIdle.IsSwimming())
	assert.True(t, ActIdle.IsIdle())
}
