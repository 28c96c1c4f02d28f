package audio

// Sound banks.
const (
	BankAction   uint32 = 0
	BankMoving   uint32 = 1
	BankVoice    uint32 = 2
	BankGeneral  uint32 = 3
	BankEnv      uint32 = 4
	BankObj      uint32 = 5
	BankAir      uint32 = 6
	BankMenu     uint32 = 7
	BankGeneral2 uint32 = 8
	BankObj2     uint32 = 9
	NumBanks            = 10
)

// SoundArgLoad packs a sound id word.
func SoundArgLoad(bank, playFlags, id, priority, flags uint32) uint32 {
	return bank<<28 | playFlags<<24 | id<<16 | priority<<8 | flags<<4 | 1
}

// SoundBank extracts the bank of a sound id word.
func SoundBank(bits uint32) uint32 { return bits >> 28 }

// SoundID extracts the per-bank id of a sound id word.
func SoundID(bits uint32) uint32 { return (bits >> 16) & 0xFF }

// SoundPriority extracts the priority of a sound id word.
func SoundPriority(bits uint32) uint32 { return (bits >> 8) & 0xFF }

// Footstep terrain kinds, added to terrain sound ids as (kind << 16).
const (
	TerrainSoundDefault uint32 = 0
	TerrainSoundGrass   uint32 = 1
	TerrainSoundWater   uint32 = 2
	TerrainSoundStone   uint32 = 3
	TerrainSoundSpooky  uint32 = 4
	TerrainSoundSnow    uint32 = 5
	TerrainSoundIce     uint32 = 6
	TerrainSoundSand    uint32 = 7
)

// Action sounds.
var (
	SoundActionTerrainJump          = SoundArgLoad(BankAction, 4, 0x00, 0x80, 8)
	SoundActionTerrainLanding       = SoundArgLoad(BankAction, 4, 0x08, 0x80, 8)
	SoundActionTerrainStep          = SoundArgLoad(BankAction, 6, 0x10, 0x80, 8)
	SoundActionTerrainBodyHitGround = SoundArgLoad(BankAction, 4, 0x18, 0x80, 8)
	SoundActionTerrainStepTiptoe    = SoundArgLoad(BankAction, 6, 0x20, 0x80, 8)
	SoundActionTerrainStuckInGround = SoundArgLoad(BankAction, 4, 0x48, 0x80, 8)
	SoundActionTerrainHeavyLanding  = SoundArgLoad(BankAction, 4, 0x60, 0x80, 8)
	SoundActionMetalJump            = SoundArgLoad(BankAction, 4, 0x28, 0x90, 8)
	SoundActionMetalLanding         = SoundArgLoad(BankAction, 4, 0x29, 0x90, 8)
	SoundActionMetalStep            = SoundArgLoad(BankAction, 4, 0x2A, 0x90, 8)
	SoundActionMetalHeavyLanding    = SoundArgLoad(BankAction, 4, 0x2B, 0x90, 8)
	SoundActionHangingStep          = SoundArgLoad(BankAction, 4, 0x2D, 0xA0, 8)
	SoundActionQuicksandStep        = SoundArgLoad(BankAction, 4, 0x2E, 0x00, 8)
	SoundActionMetalStepTiptoe      = SoundArgLoad(BankAction, 4, 0x2F, 0x90, 8)
	SoundActionWaterEnter           = SoundArgLoad(BankAction, 4, 0x30, 0xC0, 8)
	SoundActionWaterExit            = SoundArgLoad(BankAction, 4, 0x31, 0x60, 8)
	SoundActionSwim                 = SoundArgLoad(BankAction, 4, 0x33, 0x80, 8)
	SoundActionUnstuckFromGround    = SoundArgLoad(BankAction, 4, 0x34, 0x80, 8)
	SoundActionSpin                 = SoundArgLoad(BankAction, 4, 0x37, 0x80, 8)
	SoundActionTwirl                = SoundArgLoad(BankAction, 4, 0x38, 0x80, 8)
	SoundActionSwimFast             = SoundArgLoad(BankAction, 4, 0x3C, 0x80, 8)
	SoundActionSideFlip             = SoundArgLoad(BankAction, 4, 0x3D, 0x80, 8)
	SoundActionMetalBonk            = SoundArgLoad(BankAction, 4, 0x42, 0x80, 8)
	SoundActionHit                  = SoundArgLoad(BankAction, 4, 0x44, 0xC0, 8)
	SoundActionBonk                 = SoundArgLoad(BankAction, 4, 0x45, 0xA0, 8)
	SoundActionBrushHair            = SoundArgLoad(BankAction, 4, 0x40, 0x80, 8)
	SoundActionPatBack              = SoundArgLoad(BankAction, 4, 0x3F, 0x80, 8)
	SoundActionFlyingFast           = SoundArgLoad(BankAction, 4, 0x56, 0x80, 8)
	SoundActionHitWallInAir         = SoundArgLoad(BankAction, 4, 0x5B, 0x80, 8)
	SoundActionWaterJump            = SoundArgLoad(BankAction, 4, 0x5E, 0x80, 8)
	SoundActionClapHandsCold        = SoundArgLoad(BankAction, 4, 0x2C, 0x00, 8)
	SoundActionThrow                = SoundArgLoad(BankAction, 4, 0x35, 0x80, 8)
	SoundActionKeySwish             = SoundArgLoad(BankAction, 4, 0x36, 0x80, 8)
	SoundActionSwimKick             = SoundArgLoad(BankAction, 4, 0x39, 0x80, 8)
	SoundActionWaterPlunge          = SoundArgLoad(BankAction, 0, 0x32, 0x80, 8)
	SoundActionPutCapOn             = SoundArgLoad(BankAction, 4, 0x3E, 0x80, 8)
	SoundActionHit2                 = SoundArgLoad(BankAction, 4, 0x44, 0xB0, 8)
	SoundActionBounceOffObject      = SoundArgLoad(BankAction, 0, 0x59, 0xB0, 8)
)

// Moving sounds are held while the owning action repeats them every tick.
var (
	SoundMovingTerrainSlide   = SoundArgLoad(BankMoving, 4, 0x00, 0x00, 0)
	SoundMovingLavaBurn       = SoundArgLoad(BankMoving, 4, 0x10, 0x00, 0)
	SoundMovingQuicksandDeath = SoundArgLoad(BankMoving, 4, 0x14, 0x00, 0)
	SoundMovingShocked        = SoundArgLoad(BankMoving, 4, 0x16, 0x00, 0)
	SoundMovingFlying         = SoundArgLoad(BankMoving, 4, 0x17, 0x00, 0)
	SoundMovingAlmostDrowning = SoundArgLoad(BankMoving, 0xC, 0x18, 0x00, 0)
)

// Voice sounds.
var (
	SoundMarioYahWahHoo       = SoundArgLoad(BankVoice, 4, 0x00, 0x80, 8)
	SoundMarioHoohoo          = SoundArgLoad(BankVoice, 4, 0x03, 0x80, 8)
	SoundMarioYahoo           = SoundArgLoad(BankVoice, 4, 0x04, 0x80, 8)
	SoundMarioUh              = SoundArgLoad(BankVoice, 4, 0x05, 0x80, 8)
	SoundMarioHrmm            = SoundArgLoad(BankVoice, 4, 0x06, 0x80, 8)
	SoundMarioWah2            = SoundArgLoad(BankVoice, 4, 0x07, 0x80, 8)
	SoundMarioWhoa            = SoundArgLoad(BankVoice, 4, 0x08, 0xC0, 8)
	SoundMarioEeuh            = SoundArgLoad(BankVoice, 4, 0x09, 0x80, 8)
	SoundMarioAttacked        = SoundArgLoad(BankVoice, 4, 0x0A, 0xFF, 8)
	SoundMarioOoof            = SoundArgLoad(BankVoice, 4, 0x0B, 0x80, 8)
	SoundMarioOoof2           = SoundArgLoad(BankVoice, 4, 0x0B, 0xD0, 8)
	SoundMarioHereWeGo        = SoundArgLoad(BankVoice, 4, 0x0C, 0x80, 8)
	SoundMarioYawning         = SoundArgLoad(BankVoice, 4, 0x0D, 0x80, 8)
	SoundMarioSnoring1        = SoundArgLoad(BankVoice, 4, 0x0E, 0x00, 8)
	SoundMarioSnoring2        = SoundArgLoad(BankVoice, 4, 0x0F, 0x00, 8)
	SoundMarioWaaaooow        = SoundArgLoad(BankVoice, 4, 0x10, 0xC0, 8)
	SoundMarioHaha            = SoundArgLoad(BankVoice, 4, 0x11, 0x80, 8)
	SoundMarioUh2             = SoundArgLoad(BankVoice, 4, 0x13, 0xD0, 8)
	SoundMarioUh2Low          = SoundArgLoad(BankVoice, 4, 0x13, 0x80, 8)
	SoundMarioOnFire          = SoundArgLoad(BankVoice, 4, 0x14, 0xA0, 8)
	SoundMarioDying           = SoundArgLoad(BankVoice, 4, 0x15, 0xFF, 8)
	SoundMarioPantingCold     = SoundArgLoad(BankVoice, 4, 0x16, 0x80, 8)
	SoundMarioPanting         = SoundArgLoad(BankVoice, 4, 0x18, 0x80, 8)
	SoundMarioCoughing1       = SoundArgLoad(BankVoice, 4, 0x1B, 0x80, 8)
	SoundMarioCoughing2       = SoundArgLoad(BankVoice, 4, 0x1C, 0x80, 8)
	SoundMarioCoughing3       = SoundArgLoad(BankVoice, 4, 0x1D, 0x80, 8)
	SoundMarioPunchYah        = SoundArgLoad(BankVoice, 4, 0x1E, 0x80, 8)
	SoundMarioPunchHoo        = SoundArgLoad(BankVoice, 4, 0x1F, 0x80, 8)
	SoundMarioMamaMia         = SoundArgLoad(BankVoice, 4, 0x20, 0x80, 8)
	SoundMarioGroundPoundWah  = SoundArgLoad(BankVoice, 4, 0x22, 0x80, 8)
	SoundMarioDrowning        = SoundArgLoad(BankVoice, 4, 0x23, 0xF0, 8)
	SoundMarioPunchWah        = SoundArgLoad(BankVoice, 4, 0x24, 0x80, 8)
	SoundMarioYahooWahaYippee = SoundArgLoad(BankVoice, 4, 0x2B, 0x80, 8)
	SoundMarioDoh             = SoundArgLoad(BankVoice, 4, 0x30, 0x80, 8)
	SoundMarioTwirlBounce     = SoundArgLoad(BankVoice, 4, 0x34, 0x80, 8)
	SoundMarioImaTired        = SoundArgLoad(BankVoice, 4, 0x37, 0x80, 8)
	SoundMarioSnoring3        = SoundArgLoad(BankVoice, 4, 0x35, 0x00, 0)
)

// Environment and menu sounds.
var (
	SoundEnvWind2           = SoundArgLoad(BankEnv, 4, 0x10, 0x80, 0)
	SoundGeneralFlameOut    = SoundArgLoad(BankGeneral, 0, 0x03, 0x80, 8)
	SoundGeneralElectrocute = SoundArgLoad(BankGeneral, 0, 0x40, 0xF0, 8)
	SoundMenuStarSound      = SoundArgLoad(BankMenu, 0, 0x1E, 0xFF, 8)
	SoundMenuEnterHole      = SoundArgLoad(BankMenu, 0, 0x19, 0x80, 0)
)

// Sequence ids.
const (
	SeqSoundPlayer      uint16 = 0x00
	SeqLevelGrass       uint16 = 0x03
	SeqLevelWater       uint16 = 0x05
	SeqLevelSlide       uint16 = 0x09
	SeqEventPowerup     uint16 = 0x0E
	SeqEventMetalCap    uint16 = 0x0F
	SeqEventCollectStar uint16 = 0x01
	SeqCount            uint16 = 0x23
)

// Sequence players.
const (
	SeqPlayerLevel uint8 = 0
	SeqPlayerEnv   uint8 = 1
	SeqPlayerSFX   uint8 = 2
)

// SequenceArgs packs a priority and sequence id.
func SequenceArgs(priority uint16, seqID uint16) uint16 {
	return priority<<8 | seqID
}

// NoMusic marks an empty cap music slot.
const NoMusic uint16 = 0
