package mario

import (
	"github.com/Faultbox/libsm64-go/internal/anim"
	"github.com/Faultbox/libsm64-go/internal/audio"
)

var punchingForwardVel = [8]float32{0, 1, 1, 2, 3, 5, 7, 10}

func init() {
	registerActions(map[Action]handler{
		ActPunching:         (*Mario).actPunching,
		ActStomachSlideStop: (*Mario).actStomachSlideStop,
	})
}

// updatePunchSequence advances the punch, punch, kick combo. ActionArg holds
// the combo stage; 9 is the breakdance sweep from a crouch.
func (m *Mario) updatePunchSequence() bool {
	endAction, crouchEndAction := ActIdle, ActCrouching
	if m.Action&ActFlagMoving != 0 {
		endAction, crouchEndAction = ActWalking, ActCrouchSlide
	}

	switch m.ActionArg {
	case 0, 1:
		if m.ActionArg == 0 {
			m.playSound(audio.SoundMarioPunchYah)
		}
		m.setAnim(anim.FirstPunch)
		if m.isAnimPastEnd() {
			m.ActionArg = 2
		} else {
			m.ActionArg = 1
		}
		if m.Anim.Frame >= 2 {
			m.Flags |= FlagPunching
		}
		if m.ActionArg == 2 {
			m.Body.PunchState = 0<<6 | 4
		}

	case 2:
		m.setAnim(anim.FirstPunchFast)
		if m.Anim.Frame <= 0 {
			m.Flags |= FlagPunching
		}
		if m.Input&InputBPressed != 0 {
			m.ActionArg = 3
		}
		if m.isAnimAtEnd() {
			m.SetAction(endAction, 0)
		}

	case 3, 4:
		if m.ActionArg == 3 {
			m.playSound(audio.SoundMarioPunchWah)
		}
		m.setAnim(anim.SecondPunch)
		if m.isAnimPastEnd() {
			m.ActionArg = 5
		} else {
			m.ActionArg = 4
		}
		if m.Anim.Frame > 0 {
			m.Flags |= FlagPunching
		}
		if m.ActionArg == 5 {
			m.Body.PunchState = 1<<6 | 4
		}

	case 5:
		m.setAnim(anim.SecondPunchFast)
		if m.Anim.Frame <= 0 {
			m.Flags |= FlagPunching
		}
		if m.Input&InputBPressed != 0 {
			m.ActionArg = 6
		}
		if m.isAnimAtEnd() {
			m.SetAction(endAction, 0)
		}

	case 6:
		m.playActionSound(audio.SoundMarioPunchHoo, true)
		frame := m.setAnim(anim.GroundKick)
		if frame == 0 {
			m.Body.PunchState = 2<<6 | 6
		}
		if frame >= 0 && frame < 8 {
			m.Flags |= FlagKicking
		}
		if m.isAnimAtEnd() {
			m.SetAction(endAction, 0)
		}

	case 9:
		m.playActionSound(audio.SoundMarioPunchHoo, true)
		m.setAnim(anim.Breakdance)
		if frame := m.Anim.Frame; frame >= 2 && frame < 8 {
			m.Flags |= FlagTripping
		}
		if m.isAnimAtEnd() {
			m.SetAction(crouchEndAction, 0)
		}
	}
	return false
}

func (m *Mario) actPunching() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.dropAndSetAction(ActShockwaveBounce, 0)
	case m.Input&inputCommonExits != 0:
		return m.checkCommonActionExits()
	case m.ActionState == 0 && m.Input&InputADown != 0:
		return m.SetAction(ActJumpKick, 0)
	}

	m.ActionState = 1
	if m.ActionArg == 0 {
		m.ActionTimer = 7
	}

	m.SetForwardVel(punchingForwardVel[m.ActionTimer])
	if m.ActionTimer > 0 {
		m.ActionTimer--
	}

	m.updatePunchSequence()
	m.performGroundStep()
	return false
}

func (m *Mario) actStomachSlideStop() bool {
	switch {
	case m.Input&InputStomped != 0:
		return m.SetAction(ActShockwaveBounce, 0)
	case m.Input&InputOffFloor != 0:
		return m.SetAction(ActFreefall, 0)
	case m.Input&InputAboveSlide != 0:
		return m.SetAction(ActBeginSliding, 0)
	}

	m.stoppingStep(anim.SlowLandFromDive, ActIdle)
	return false
}
