package sm64

// std is the Library behind the package-level functions.
var std = NewLibrary(DefaultOptions())

// Default returns the Library used by the package-level functions.
func Default() *Library { return std }

// SetDefault replaces the Library used by the package-level functions. The
// previous one is terminated.
func SetDefault(l *Library) {
	std.GlobalTerminate()
	std = l
}

func GlobalInit(blob []byte, debugPrint func(string)) ([]byte, error) {
	return std.GlobalInit(blob, debugPrint)
}

func GlobalTerminate() { std.GlobalTerminate() }

func StaticSurfacesLoad(surfaces []Surface) { std.StaticSurfacesLoad(surfaces) }

func SurfaceObjectCreate(obj SurfaceObject) uint32 { return std.SurfaceObjectCreate(obj) }

func SurfaceObjectMove(id uint32, t ObjectTransform) { std.SurfaceObjectMove(id, t) }

func SurfaceObjectDelete(id uint32) { std.SurfaceObjectDelete(id) }

func MarioCreate(x, y, z float32, rx, ry, rz int16, fake bool) int32 {
	return std.MarioCreate(x, y, z, rx, ry, rz, fake)
}

func MarioTick(h int32, in Inputs, state *State, buf *GeometryBuffers) {
	std.MarioTick(h, in, state, buf)
}

func MarioGetAnimInfo(h int32) (AnimInfo, [3]int16, bool) { return std.MarioGetAnimInfo(h) }

func MarioAnimTick(h int32, stateFlags uint32, info AnimInfo, rot [3]int16, buf *GeometryBuffers) {
	std.MarioAnimTick(h, stateFlags, info, rot, buf)
}

func MarioDelete(h int32) { std.MarioDelete(h) }

func MarioSetAction(h int32, action uint32) { std.MarioSetAction(h, action) }

func MarioSetActionArg(h int32, action, arg uint32) { std.MarioSetActionArg(h, action, arg) }

func MarioSetAnimation(h int32, id int16) { std.MarioSetAnimation(h, id) }

func MarioSetAnimFrame(h int32, frame int16) { std.MarioSetAnimFrame(h, frame) }

func MarioSetState(h int32, flags uint32) { std.MarioSetState(h, flags) }

func MarioSetPosition(h int32, x, y, z float32) { std.MarioSetPosition(h, x, y, z) }

func MarioSetAngle(h int32, x, y, z float32) { std.MarioSetAngle(h, x, y, z) }

func MarioSetFaceAngle(h int32, y float32) { std.MarioSetFaceAngle(h, y) }

func MarioSetVelocity(h int32, x, y, z float32) { std.MarioSetVelocity(h, x, y, z) }

func MarioSetForwardVelocity(h int32, v float32) { std.MarioSetForwardVelocity(h, v) }

func MarioSetWaterLevel(h int32, level int32) { std.MarioSetWaterLevel(h, level) }

func MarioGetWaterLevel(h int32) int32 { return std.MarioGetWaterLevel(h) }

func MarioSetFloorOverride(h int32, terrain uint16, floorType int16) {
	std.MarioSetFloorOverride(h, terrain, floorType)
}

func MarioTakeDamage(h int32, damage, subtype uint32, x, y, z float32) {
	std.MarioTakeDamage(h, damage, subtype, x, y, z)
}

func MarioHeal(h int32, n uint8) { std.MarioHeal(h, n) }

func MarioSetHealth(h int32, health uint16) { std.MarioSetHealth(h, health) }

func MarioKill(h int32) { std.MarioKill(h) }

func MarioInteractCap(h int32, capFlag uint32, capTime uint16, playMusic bool) {
	std.MarioInteractCap(h, capFlag, capTime, playMusic)
}

func MarioAttack(h int32, x, y, z, hitboxHeight float32) bool {
	return std.MarioAttack(h, x, y, z, hitboxHeight)
}

func MarioBounceFromAttack(h int32, x, y, z, hitboxHeight float32) {
	std.MarioBounceFromAttack(h, x, y, z, hitboxHeight)
}

func SeqPlayerPlaySequence(player, seqID uint8, fadeIn uint16) {
	std.SeqPlayerPlaySequence(player, seqID, fadeIn)
}

func PlayMusic(player uint8, seqArgs, fadeTimer uint16) { std.PlayMusic(player, seqArgs, fadeTimer) }

func StopBackgroundMusic(seqID uint16) { std.StopBackgroundMusic(seqID) }

func FadeoutBackgroundMusic(seqID, fadeOut uint16) { std.FadeoutBackgroundMusic(seqID, fadeOut) }

func CurrentBackgroundMusic() uint16 { return std.CurrentBackgroundMusic() }

func PlaySound(soundBits uint32, pos [3]float32) { std.PlaySound(soundBits, pos) }

func PlaySoundGlobal(soundBits uint32) { std.PlaySoundGlobal(soundBits) }

func SurfaceFindFloor(x, y, z float32) (float32, int16, bool) { return std.SurfaceFindFloor(x, y, z) }
