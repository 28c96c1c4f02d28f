package mario

// Character flags.
const (
	FlagNormalCap         uint32 = 0x00000001
	FlagVanishCap         uint32 = 0x00000002
	FlagMetalCap          uint32 = 0x00000004
	FlagWingCap           uint32 = 0x00000008
	FlagCapOnHead         uint32 = 0x00000010
	FlagCapInHand         uint32 = 0x00000020
	FlagMetalShock        uint32 = 0x00000040
	FlagTeleporting       uint32 = 0x00000080
	FlagJumping           uint32 = 0x00000100
	FlagActionSoundPlayed uint32 = 0x00010000
	FlagMarioSoundPlayed  uint32 = 0x00020000
	FlagFallingFar        uint32 = 0x00040000
	FlagPunching          uint32 = 0x00100000
	FlagKicking           uint32 = 0x00200000
	FlagTripping          uint32 = 0x00400000
	FlagHitWallInAir      uint32 = 0x40000000

	FlagSpecialCaps = FlagVanishCap | FlagMetalCap | FlagWingCap
	FlagCaps        = FlagNormalCap | FlagSpecialCaps
)

// Per-tick input flags.
const (
	InputNonzeroAnalog uint16 = 0x0001
	InputAPressed      uint16 = 0x0002
	InputOffFloor      uint16 = 0x0004
	InputAboveSlide    uint16 = 0x0008
	InputFirstPerson   uint16 = 0x0010
	InputNoMovement    uint16 = 0x0020
	InputSquished      uint16 = 0x0040
	InputADown         uint16 = 0x0080
	InputInPoisonGas   uint16 = 0x0100
	InputInWater       uint16 = 0x0200
	InputStomped       uint16 = 0x0400
	InputBPressed      uint16 = 0x2000
	InputZDown         uint16 = 0x4000
	InputZPressed      uint16 = 0x8000
)

// Particle flags reported in the output state.
const (
	ParticleDust               uint32 = 1 << 0
	ParticleVerticalStar       uint32 = 1 << 1
	ParticleSparkles           uint32 = 1 << 3
	ParticleHorizontalStar     uint32 = 1 << 4
	ParticleBubble             uint32 = 1 << 5
	ParticleWaterSplash        uint32 = 1 << 6
	ParticleIdleWaterWave      uint32 = 1 << 7
	ParticleShallowWaterWave   uint32 = 1 << 8
	ParticlePlungeBubble       uint32 = 1 << 9
	ParticleWaveTrail          uint32 = 1 << 10
	ParticleFire               uint32 = 1 << 11
	ParticleShallowWaterSplash uint32 = 1 << 12
	ParticleLeaf               uint32 = 1 << 13
	ParticleSnow               uint32 = 1 << 14
	ParticleDirt               uint32 = 1 << 15
	ParticleMistCircle         uint32 = 1 << 16
	ParticleBreath             uint32 = 1 << 17
	ParticleTriangle           uint32 = 1 << 18
)

// Controller buttons.
const (
	ButtonA uint16 = 0x8000
	ButtonB uint16 = 0x4000
	ButtonZ uint16 = 0x2000
)

// Health values. The upper byte is the number of wedges.
const (
	HealthFull int16 = 0x880
	HealthDead int16 = 0xFF
	HealthStep int16 = 0x40
)

// Default cap durations in ticks.
const (
	VanishCapTime uint16 = 600
	MetalCapTime  uint16 = 600
	WingCapTime   uint16 = 1800
)

// Physics limits.
const (
	TerminalVelocity   float32 = -75
	FloorStepTolerance float32 = 78
	HitboxRadius       float32 = 37
	HitboxHeight       float32 = 160
	ShortHitboxHeight  float32 = 100
	WaterSurfaceOffset float32 = 80
	NoWaterLevel       int16   = -11000
)

// Floor classes used by slide and slope checks.
const (
	FloorClassDefault      int16 = 0x0000
	FloorClassVerySlippery int16 = 0x0013
	FloorClassSlippery     int16 = 0x0014
	FloorClassNotSlippery  int16 = 0x0015
)

// Ground step results.
const (
	GroundStepLeftGround = iota
	GroundStepNone
	GroundStepHitWall
	GroundStepHitWallContinueQSteps
)

// GroundStepHitWallStopQSteps ends the remaining quarter steps.
const GroundStepHitWallStopQSteps = GroundStepHitWall

// Air step arguments.
const (
	AirStepCheckLedgeGrab uint32 = 1 << 0
	AirStepCheckHang      uint32 = 1 << 1
)

// Air step results.
const (
	AirStepNone = iota
	AirStepLanded
	AirStepHitWall
	AirStepGrabbedLedge
	AirStepGrabbedCeiling
	_
	AirStepHitLavaWall
)

// Water step results.
const (
	WaterStepNone = iota
	WaterStepHitFloor
	WaterStepHitCeiling
	WaterStepCancelled
	WaterStepHitWall
)

// Cap state for the model.
const (
	CapOff uint8 = iota
	CapOn
	WingCapOff
	WingCapOn
)
