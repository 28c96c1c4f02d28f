package math

import "math"

// Binary angles: 0x10000 units per full turn, stored in int16 so that
// arithmetic wraps naturally. Yaw 0 faces +Z, yaw 0x4000 faces +X.

// AngleLUTSize is the number of entries in the sine table (one per 16 units).
const AngleLUTSize = 0x1000

// AngleUnitsPerRadian converts radians to binary angle units.
const AngleUnitsPerRadian = 32768.0 / math.Pi

var sineLUT [AngleLUTSize + AngleLUTSize/4]float32

func init() {
	// Extra quarter turn so cosine is a shifted read of the same table
	for i := range sineLUT {
		rad := 2.0 * math.Pi * float64(i) / AngleLUTSize
		sineLUT[i] = float32(math.Sin(rad))
	}
}

// Sins returns the sine of a binary angle.
func Sins(a int16) float32 {
	return sineLUT[uint16(a)>>4]
}

// Coss returns the cosine of a binary angle.
func Coss(a int16) float32 {
	return sineLUT[(uint16(a)>>4)+AngleLUTSize/4]
}

// Atan2s returns the binary angle whose sine follows x and cosine follows z,
// so that (Sins(a), Coss(a)) points along (x, z).
func Atan2s(z, x float32) int16 {
	rad := math.Atan2(float64(x), float64(z))
	return int16(int32(math.Round(rad * AngleUnitsPerRadian)))
}

// AngleToRadians converts a binary angle to radians in [-π, π).
func AngleToRadians(a int16) float32 {
	return float32(float64(a) / 32768.0 * math.Pi)
}

// RadiansToAngle converts radians to the nearest binary angle, wrapping.
func RadiansToAngle(r float32) int16 {
	return int16(int32(math.Round(float64(r) * AngleUnitsPerRadian)))
}

// Approach moves current toward target by at most inc (upward) or dec (downward).
func Approach(current, target, inc, dec float32) float32 {
	if current < target {
		current += inc
		if current > target {
			current = target
		}
	} else {
		current -= dec
		if current < target {
			current = target
		}
	}
	return current
}

// ApproachAngle moves a binary angle toward target along the 32-bit difference,
// matching the integer semantics used by the movement code.
func ApproachAngle(current, target int16, inc, dec int32) int16 {
	c := int32(current)
	t := int32(target)
	if c < t {
		c += inc
		if c > t {
			c = t
		}
	} else {
		c -= dec
		if c < t {
			c = t
		}
	}
	return int16(c)
}

// ApproachInt moves an int32 toward target by at most inc/dec.
func ApproachInt(current, target, inc, dec int32) int32 {
	if current < target {
		current += inc
		if current > target {
			current = target
		}
	} else {
		current -= dec
		if current < target {
			current = target
		}
	}
	return current
}

// Clampf clamps v to [lo, hi].
func Clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
