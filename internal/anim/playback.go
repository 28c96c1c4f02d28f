package anim

// Info is the playback cursor of one character. Hosts may read it and hand a
// modified copy back for pose-only evaluation.
type Info struct {
	ID               int16
	YTrans           int16
	Clip             *Clip
	Frame            int16
	Timer            uint16
	FrameAccelAssist int32
	Accel            int32

	// Fallback selects the stand-in clip used when a clip is missing.
	Fallback Fallback
}

// Reset clears playback so the next Set always takes effect.
func (i *Info) Reset() {
	*i = Info{ID: -1, Fallback: i.Fallback}
}

// Set switches to clip id from lib. Nothing changes when id is already
// playing. It returns the current frame.
func (i *Info) Set(lib *Library, id int16) int16 {
	if i.ID == id {
		return i.Frame
	}
	clip := lib.Resolve(id, i.Fallback)
	i.ID = id
	i.Clip = clip
	i.Accel = 0
	i.YTrans = DefaultYTrans
	if clip == nil {
		i.Frame = 0
		return 0
	}
	switch {
	case clip.Flags&FlagFrozen != 0:
		i.Frame = clip.StartFrame
	case clip.Flags&FlagBackward != 0:
		i.Frame = clip.StartFrame + 1
	default:
		i.Frame = clip.StartFrame - 1
	}
	return i.Frame
}

// SetWithAccel is Set with a fractional playback rate; accel is 16.16
// fixed point, 0x10000 being one frame per tick.
func (i *Info) SetWithAccel(lib *Library, id int16, accel int32) int16 {
	if i.ID != id {
		clip := lib.Resolve(id, i.Fallback)
		i.ID = id
		i.Clip = clip
		i.YTrans = DefaultYTrans
		start := int32(0)
		var flags int16
		if clip != nil {
			start = int32(clip.StartFrame)
			flags = clip.Flags
		}
		switch {
		case flags&FlagFrozen != 0:
			i.FrameAccelAssist = start << 16
		case flags&FlagBackward != 0:
			i.FrameAccelAssist = (start << 16) + accel
		default:
			i.FrameAccelAssist = (start << 16) - accel
		}
		i.Frame = int16(i.FrameAccelAssist >> 16)
	}
	i.Accel = accel
	return i.Frame
}

// SetFrame positions the cursor so that the next advance lands on frame.
func (i *Info) SetFrame(frame int16) {
	backward := i.Clip != nil && i.Clip.Flags&FlagBackward != 0
	if i.Accel != 0 {
		if backward {
			i.FrameAccelAssist = (int32(frame) << 16) + i.Accel
		} else {
			i.FrameAccelAssist = (int32(frame) << 16) - i.Accel
		}
	} else {
		if backward {
			i.Frame = frame + 1
		} else {
			i.Frame = frame - 1
		}
	}
}

// IsAtEnd reports whether the next advance shows the last frame.
func (i *Info) IsAtEnd() bool {
	if i.Clip == nil {
		return true
	}
	return i.Frame+1 == i.Clip.LoopEnd
}

// IsPastEnd reports whether playback is within two frames of the end.
func (i *Info) IsPastEnd() bool {
	if i.Clip == nil {
		return true
	}
	return i.Frame >= i.Clip.LoopEnd-2
}

// IsPastFrame reports whether the next advance reaches frame.
func (i *Info) IsPastFrame(frame int16) bool {
	backward := i.Clip != nil && i.Clip.Flags&FlagBackward != 0
	target := int32(frame) << 16
	if i.Accel != 0 {
		if backward {
			return i.FrameAccelAssist > target && target >= i.FrameAccelAssist-i.Accel
		}
		return i.FrameAccelAssist < target && target <= i.FrameAccelAssist+i.Accel
	}
	if backward {
		return i.Frame == frame+1
	}
	return i.Frame+1 == frame
}

// Advance steps playback once per distinct counter value, wrapping between
// the loop markers. Frozen clips and repeated counters leave it unchanged.
func (i *Info) Advance(counter uint16) int16 {
	clip := i.Clip
	if clip == nil {
		i.Timer = counter
		return i.Frame
	}
	if i.Timer == counter || clip.Flags&FlagFrozen != 0 {
		i.Timer = counter
		return i.Frame
	}
	i.Timer = counter

	var result int32
	if clip.Flags&FlagBackward != 0 {
		if i.Accel != 0 {
			result = i.FrameAccelAssist - i.Accel
		} else {
			result = (int32(i.Frame) << 16) - (1 << 16)
		}
		if int16(result>>16) < clip.LoopStart {
			if clip.Flags&FlagNoLoop != 0 {
				result = setHigh(result, clip.LoopStart)
			} else {
				result = setHigh(result, clip.LoopEnd-1)
			}
		}
	} else {
		if i.Accel != 0 {
			result = i.FrameAccelAssist + i.Accel
		} else {
			result = (int32(i.Frame) << 16) + (1 << 16)
		}
		if int16(result>>16) >= clip.LoopEnd {
			if clip.Flags&FlagNoLoop != 0 {
				result = setHigh(result, clip.LoopEnd-1)
			} else {
				result = setHigh(result, clip.LoopStart)
			}
		}
	}

	i.FrameAccelAssist = result
	i.Frame = int16(result >> 16)
	if i.Frame < clip.StartFrame && clip.Flags&FlagBackward == 0 {
		i.Frame = clip.StartFrame
	}
	return i.Frame
}

func setHigh(v int32, high int16) int32 {
	return int32(uint32(uint16(high))<<16 | uint32(v)&0xFFFF)
}
