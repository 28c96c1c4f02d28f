// Package mario simulates one character: input handling, the action state
// machine, quarter-step physics against a surface index, and the host
// interaction shims.
package mario

import "fmt"

// Action is a 32-bit action word.
type Action uint32

// Action layout masks.
const (
	ActIDMask    Action = 0x000001FF
	ActGroupMask Action = 0x000001C0
)

// Action groups.
const (
	GroupStationary Action = 0 << 6
	GroupMoving     Action = 1 << 6
	GroupAirborne   Action = 2 << 6
	GroupSubmerged  Action = 3 << 6
	GroupCutscene   Action = 4 << 6
	GroupAutomatic  Action = 5 << 6
	GroupObject     Action = 6 << 6
)

// Action flags.
const (
	ActFlagStationary              Action = 1 << 9
	ActFlagMoving                  Action = 1 << 10
	ActFlagAir                     Action = 1 << 11
	ActFlagIntangible              Action = 1 << 12
	ActFlagSwimming                Action = 1 << 13
	ActFlagMetalWater              Action = 1 << 14
	ActFlagShortHitbox             Action = 1 << 15
	ActFlagRidingShell             Action = 1 << 16
	ActFlagInvulnerable            Action = 1 << 17
	ActFlagButtOrStomachSlide      Action = 1 << 18
	ActFlagDiving                  Action = 1 << 19
	ActFlagOnPole                  Action = 1 << 20
	ActFlagHanging                 Action = 1 << 21
	ActFlagIdle                    Action = 1 << 22
	ActFlagAttacking               Action = 1 << 23
	ActFlagAllowVerticalWindAction Action = 1 << 24
	ActFlagControlJumpHeight       Action = 1 << 25
	ActFlagAllowFirstPerson        Action = 1 << 26
	ActFlagPauseExit               Action = 1 << 27
	ActFlagSwimmingOrFlying        Action = 1 << 28
	ActFlagWaterOrText             Action = 1 << 29
	ActFlagThrowing                Action = 1 << 31
)

// Group returns the group bits of the action.
func (a Action) Group() Action { return a & ActGroupMask }

// ID returns the id bits of the action.
func (a Action) ID() uint32 { return uint32(a & ActIDMask) }

// Has reports whether every bit of flag is set.
func (a Action) Has(flag Action) bool { return a&flag == flag }

// IsAir reports whether the action is airborne.
func (a Action) IsAir() bool { return a&ActFlagAir != 0 }

// IsIntangible reports whether interactions skip this action.
func (a Action) IsIntangible() bool { return a&ActFlagIntangible != 0 }

// IsInvulnerable reports whether damage is ignored during this action.
func (a Action) IsInvulnerable() bool { return a&ActFlagInvulnerable != 0 }

// IsSwimming reports whether the action is a swimming action.
func (a Action) IsSwimming() bool { return a&ActFlagSwimming != 0 }

// IsIdle reports whether the action counts as idle.
func (a Action) IsIdle() bool { return a&ActFlagIdle != 0 }

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action_%08x", uint32(a))
}

// GroupName returns the group of the action as text.
func (a Action) GroupName() string {
	switch a.Group() {
	case GroupStationary:
		return "stationary"
	case GroupMoving:
		return "moving"
	case GroupAirborne:
		return "airborne"
	case GroupSubmerged:
		return "submerged"
	case GroupCutscene:
		return "cutscene"
	case GroupAutomatic:
		return "automatic"
	default:
		return "object"
	}
}
