package anim

// Clip identifiers. The numbering is the one hosts already use for
// character animation tables, so ids can be passed through unchanged.
const (
	SlowLedgeGrab int16 = iota
	FallOverBackwards
	BackwardAirKb
	DyingOnBack
	Backflip
	ClimbUpPole
	GrabPoleShort
	GrabPoleSwingPart1
	GrabPoleSwingPart2
	HandstandIdle
	HandstandJump
	StartHandstand
	ReturnFromHandstand
	IdleOnPole
	APose
	SkidOnGround
	StopSkid
	CrouchFromFastLongjump
	CrouchFromSlowLongjump
	FastLongjump
	SlowLongjump
	AirborneOnStomach
	WalkWithLightObj
	RunWithLightObj
	SlowWalkWithLightObj
	ShiveringWarmingHand
	ShiveringReturnToIdle
	Shivering
	ClimbDownLedge
	CreditsWaving
	CreditsLookUp
	CreditsReturnFromLookUp
	CreditsRaiseHand
	CreditsLowerHand
	CreditsTakeOffCap
	CreditsStartWalkLookUp
	CreditsLookBackThenRun
	FinalBowserRaiseHandSpin
	FinalBowserWingCapTakeOff
	CreditsPeaceSign
	StandUpFromLavaBoost
	FireLavaBurn
	WingCapFly
	HangOnOwl
	LandOnStomach
	AirForwardKb
	DyingOnStomach
	Suffocating
	Coughing
	ThrowCatchKey
	DyingFallOver
	IdleOnLedge
	FastLedgeGrab
	HangOnCeiling
	PutCapOn
	TakeCapOffThenOn
	QuicklyPutCapOn
	HeadStuckInGround
	GroundPoundLanding
	TripleJumpGroundPound
	StartGroundPound
	GroundPound
	BottomStuckInGround
	IdleWithLightObj
	JumpLandWithLightObj
	JumpWithLightObj
	FallLandWithLightObj
	FallWithLightObj
	FallFromSlidingWithLightObj
	SlidingOnBottomWithLightObj
	StandUpFromSlidingWithLightObj
	RidingShell
	Walking
	ForwardFlip
	JumpRidingShell
	LandFromDoubleJump
	DoubleJumpFall
	SingleJump
	LandFromSingleJump
	AirKick
	DoubleJumpRise
	StartForwardSpinning
	ThrowLightObject
	FallFromSlideKick
	BendKnessRidingShell
	LegsStuckInGround
	GeneralFall
	GeneralLand
	BeingGrabbed
	GrabHeavyObject
	SlowLandFromDive
	FlyFromCannon
	MoveOnWireNetRight
	MoveOnWireNetLeft
	MissingCap
	PullDoorWalkIn
	PushDoorWalkIn
	UnlockDoor
	StartReachPocket
	ReachPocket
	StopReachPocket
	GroundThrow
	GroundKick
	FirstPunch
	SecondPunch
	FirstPunchFast
	SecondPunchFast
	PickUpLightObj
	Pushing
	StartRidingShell
	PlaceLightObj
	ForwardSpinning
	BackwardSpinning
	Breakdance
	Running
	RunningUnused
	SoftBackKb
	SoftFrontKb
	DyingInQuicksand
	IdleInQuicksand
	MoveInQuicksand
	Electrocution
	Shocked
	BackwardKb
	ForwardKb
	IdleHeavyObj
	StandAgainstWall
	SidestepLeft
	SidestepRight
	StartSleepIdle
	StartSleepScratch
	StartSleepYawn
	StartSleepSitting
	SleepIdle
	SleepStartLying
	SleepLying
	Dive
	SlideDive
	GroundBonk
	StopSlideLightObj
	SlideKick
	CrouchFromSlideKick
	SlideMotionless
	StopSlide
	FallFromSlide
	Slide
	Tiptoe
	TwirlLand
	Twirl
	StartTwirl
	StopCrouching
	StartCrouching
	Crouching
	Crawling
	StopCrawling
	StartCrawling
	SummonStar
	ReturnStarApproachDoor
	BackwardsWaterKb
	SwimWithObjPart1
	SwimWithObjPart2
	FlutterkickWithObj
	WaterActionEndWithObj
	StopGrabObjWater
	WaterIdleWithObj
	DrowningPart1
	DrowningPart2
	WaterDying
	WaterForwardKb
	FallFromWater
	SwimPart1
	SwimPart2
	Flutterkick
	WaterActionEnd
	WaterPickUpObj
	WaterGrabObjPart2
	WaterGrabObjPart1
	WaterThrowObj
	WaterIdle
	WaterStarDance
	ReturnFromWaterStarDance
	GrabBowser
	SwingingBowser
	ReleaseBowser
	HoldingBowser
	HeavyThrow
	WalkPanting
	WalkWithHeavyObj
	TurningPart1
	TurningPart2
	SlideflipLand
	Slideflip
	TripleJumpLand
	TripleJump
	FirstPerson
	IdleHeadLeft
	IdleHeadRight
	IdleHeadCenter
	HandstandLeft
	HandstandRight
	WakeFromSleep
	WakeFromLying
	StartTiptoe
	Slidejump
	StartWallKick
	StarDance
	ReturnFromStarDance
	ForwardSpinningFlip
	TripleJumpFly

	// NumClips is the size of the clip table.
	NumClips
)

var clipNames = [NumClips]string{
	SlowLedgeGrab:                  "slow_ledge_grab",
	FallOverBackwards:              "fall_over_backwards",
	BackwardAirKb:                  "backward_air_kb",
	DyingOnBack:                    "dying_on_back",
	Backflip:                       "backflip",
	ClimbUpPole:                    "climb_up_pole",
	GrabPoleShort:                  "grab_pole_short",
	GrabPoleSwingPart1:             "grab_pole_swing_part1",
	GrabPoleSwingPart2:             "grab_pole_swing_part2",
	HandstandIdle:                  "handstand_idle",
	HandstandJump:                  "handstand_jump",
	StartHandstand:                 "start_handstand",
	ReturnFromHandstand:            "return_from_handstand",
	IdleOnPole:                     "idle_on_pole",
	APose:                          "a_pose",
	SkidOnGround:                   "skid_on_ground",
	StopSkid:                       "stop_skid",
	CrouchFromFastLongjump:         "crouch_from_fast_longjump",
	CrouchFromSlowLongjump:         "crouch_from_slow_longjump",
	FastLongjump:                   "fast_longjump",
	SlowLongjump:                   "slow_longjump",
	AirborneOnStomach:              "airborne_on_stomach",
	WalkWithLightObj:               "walk_with_light_obj",
	RunWithLightObj:                "run_with_light_obj",
	SlowWalkWithLightObj:           "slow_walk_with_light_obj",
	ShiveringWarmingHand:           "shivering_warming_hand",
	ShiveringReturnToIdle:          "shivering_return_to_idle",
	Shivering:                      "shivering",
	ClimbDownLedge:                 "climb_down_ledge",
	CreditsWaving:                  "credits_waving",
	CreditsLookUp:                  "credits_look_up",
	CreditsReturnFromLookUp:        "credits_return_from_look_up",
	CreditsRaiseHand:               "credits_raise_hand",
	CreditsLowerHand:               "credits_lower_hand",
	CreditsTakeOffCap:              "credits_take_off_cap",
	CreditsStartWalkLookUp:         "credits_start_walk_look_up",
	CreditsLookBackThenRun:         "credits_look_back_then_run",
	FinalBowserRaiseHandSpin:       "final_bowser_raise_hand_spin",
	FinalBowserWingCapTakeOff:      "final_bowser_wing_cap_take_off",
	CreditsPeaceSign:               "credits_peace_sign",
	StandUpFromLavaBoost:           "stand_up_from_lava_boost",
	FireLavaBurn:                   "fire_lava_burn",
	WingCapFly:                     "wing_cap_fly",
	HangOnOwl:                      "hang_on_owl",
	LandOnStomach:                  "land_on_stomach",
	AirForwardKb:                   "air_forward_kb",
	DyingOnStomach:                 "dying_on_stomach",
	Suffocating:                    "suffocating",
	Coughing:                       "coughing",
	ThrowCatchKey:                  "throw_catch_key",
	DyingFallOver:                  "dying_fall_over",
	IdleOnLedge:                    "idle_on_ledge",
	FastLedgeGrab:                  "fast_ledge_grab",
	HangOnCeiling:                  "hang_on_ceiling",
	PutCapOn:                       "put_cap_on",
	TakeCapOffThenOn:               "take_cap_off_then_on",
	QuicklyPutCapOn:                "quickly_put_cap_on",
	HeadStuckInGround:              "head_stuck_in_ground",
	GroundPoundLanding:             "ground_pound_landing",
	TripleJumpGroundPound:          "triple_jump_ground_pound",
	StartGroundPound:               "start_ground_pound",
	GroundPound:                    "ground_pound",
	BottomStuckInGround:            "bottom_stuck_in_ground",
	IdleWithLightObj:               "idle_with_light_obj",
	JumpLandWithLightObj:           "jump_land_with_light_obj",
	JumpWithLightObj:               "jump_with_light_obj",
	FallLandWithLightObj:           "fall_land_with_light_obj",
	FallWithLightObj:               "fall_with_light_obj",
	FallFromSlidingWithLightObj:    "fall_from_sliding_with_light_obj",
	SlidingOnBottomWithLightObj:    "sliding_on_bottom_with_light_obj",
	StandUpFromSlidingWithLightObj: "stand_up_from_sliding_with_light_obj",
	RidingShell:                    "riding_shell",
	Walking:                        "walking",
	ForwardFlip:                    "forward_flip",
	JumpRidingShell:                "jump_riding_shell",
	LandFromDoubleJump:             "land_from_double_jump",
	DoubleJumpFall:                 "double_jump_fall",
	SingleJump:                     "single_jump",
	LandFromSingleJump:             "land_from_single_jump",
	AirKick:                        "air_kick",
	DoubleJumpRise:                 "double_jump_rise",
	StartForwardSpinning:           "start_forward_spinning",
	ThrowLightObject:               "throw_light_object",
	FallFromSlideKick:              "fall_from_slide_kick",
	BendKnessRidingShell:           "bend_kness_riding_shell",
	LegsStuckInGround:              "legs_stuck_in_ground",
	GeneralFall:                    "general_fall",
	GeneralLand:                    "general_land",
	BeingGrabbed:                   "being_grabbed",
	GrabHeavyObject:                "grab_heavy_object",
	SlowLandFromDive:               "slow_land_from_dive",
	FlyFromCannon:                  "fly_from_cannon",
	MoveOnWireNetRight:             "move_on_wire_net_right",
	MoveOnWireNetLeft:              "move_on_wire_net_left",
	MissingCap:                     "missing_cap",
	PullDoorWalkIn:                 "pull_door_walk_in",
	PushDoorWalkIn:                 "push_door_walk_in",
	UnlockDoor:                     "unlock_door",
	StartReachPocket:               "start_reach_pocket",
	ReachPocket:                    "reach_pocket",
	StopReachPocket:                "stop_reach_pocket",
	GroundThrow:                    "ground_throw",
	GroundKick:                     "ground_kick",
	FirstPunch:                     "first_punch",
	SecondPunch:                    "second_punch",
	FirstPunchFast:                 "first_punch_fast",
	SecondPunchFast:                "second_punch_fast",
	PickUpLightObj:                 "pick_up_light_obj",
	Pushing:                        "pushing",
	StartRidingShell:               "start_riding_shell",
	PlaceLightObj:                  "place_light_obj",
	ForwardSpinning:                "forward_spinning",
	BackwardSpinning:               "backward_spinning",
	Breakdance:                     "breakdance",
	Running:                        "running",
	RunningUnused:                  "running_unused",
	SoftBackKb:                     "soft_back_kb",
	SoftFrontKb:                    "soft_front_kb",
	DyingInQuicksand:               "dying_in_quicksand",
	IdleInQuicksand:                "idle_in_quicksand",
	MoveInQuicksand:                "move_in_quicksand",
	Electrocution:                  "electrocution",
	Shocked:                        "shocked",
	BackwardKb:                     "backward_kb",
	ForwardKb:                      "forward_kb",
	IdleHeavyObj:                   "idle_heavy_obj",
	StandAgainstWall:               "stand_against_wall",
	SidestepLeft:                   "sidestep_left",
	SidestepRight:                  "sidestep_right",
	StartSleepIdle:                 "start_sleep_idle",
	StartSleepScratch:              "start_sleep_scratch",
	StartSleepYawn:                 "start_sleep_yawn",
	StartSleepSitting:              "start_sleep_sitting",
	SleepIdle:                      "sleep_idle",
	SleepStartLying:                "sleep_start_lying",
	SleepLying:                     "sleep_lying",
	Dive:                           "dive",
	SlideDive:                      "slide_dive",
	GroundBonk:                     "ground_bonk",
	StopSlideLightObj:              "stop_slide_light_obj",
	SlideKick:                      "slide_kick",
	CrouchFromSlideKick:            "crouch_from_slide_kick",
	SlideMotionless:                "slide_motionless",
	StopSlide:                      "stop_slide",
	FallFromSlide:                  "fall_from_slide",
	Slide:                          "slide",
	Tiptoe:                         "tiptoe",
	TwirlLand:                      "twirl_land",
	Twirl:                          "twirl",
	StartTwirl:                     "start_twirl",
	StopCrouching:                  "stop_crouching",
	StartCrouching:                 "start_crouching",
	Crouching:                      "crouching",
	Crawling:                       "crawling",
	StopCrawling:                   "stop_crawling",
	StartCrawling:                  "start_crawling",
	SummonStar:                     "summon_star",
	ReturnStarApproachDoor:         "return_star_approach_door",
	BackwardsWaterKb:               "backwards_water_kb",
	SwimWithObjPart1:               "swim_with_obj_part1",
	SwimWithObjPart2:               "swim_with_obj_part2",
	FlutterkickWithObj:             "flutterkick_with_obj",
	WaterActionEndWithObj:          "water_action_end_with_obj",
	StopGrabObjWater:               "stop_grab_obj_water",
	WaterIdleWithObj:               "water_idle_with_obj",
	DrowningPart1:                  "drowning_part1",
	DrowningPart2:                  "drowning_part2",
	WaterDying:                     "water_dying",
	WaterForwardKb:                 "water_forward_kb",
	FallFromWater:                  "fall_from_water",
	SwimPart1:                      "swim_part1",
	SwimPart2:                      "swim_part2",
	Flutterkick:                    "flutterkick",
	WaterActionEnd:                 "water_action_end",
	WaterPickUpObj:                 "water_pick_up_obj",
	WaterGrabObjPart2:              "water_grab_obj_part2",
	WaterGrabObjPart1:              "water_grab_obj_part1",
	WaterThrowObj:                  "water_throw_obj",
	WaterIdle:                      "water_idle",
	WaterStarDance:                 "water_star_dance",
	ReturnFromWaterStarDance:       "return_from_water_star_dance",
	GrabBowser:                     "grab_bowser",
	SwingingBowser:                 "swinging_bowser",
	ReleaseBowser:                  "release_bowser",
	HoldingBowser:                  "holding_bowser",
	HeavyThrow:                     "heavy_throw",
	WalkPanting:                    "walk_panting",
	WalkWithHeavyObj:               "walk_with_heavy_obj",
	TurningPart1:                   "turning_part1",
	TurningPart2:                   "turning_part2",
	SlideflipLand:                  "slideflip_land",
	Slideflip:                      "slideflip",
	TripleJumpLand:                 "triple_jump_land",
	TripleJump:                     "triple_jump",
	FirstPerson:                    "first_person",
	IdleHeadLeft:                   "idle_head_left",
	IdleHeadRight:                  "idle_head_right",
	IdleHeadCenter:                 "idle_head_center",
	HandstandLeft:                  "handstand_left",
	HandstandRight:                 "handstand_right",
	WakeFromSleep:                  "wake_from_sleep",
	WakeFromLying:                  "wake_from_lying",
	StartTiptoe:                    "start_tiptoe",
	Slidejump:                      "slidejump",
	StartWallKick:                  "start_wall_kick",
	StarDance:                      "star_dance",
	ReturnFromStarDance:            "return_from_star_dance",
	ForwardSpinningFlip:            "forward_spinning_flip",
	TripleJumpFly:                  "triple_jump_fly",
}

// ClipName returns a readable name for a clip id.
func ClipName(id int16) string {
	if id < 0 || id >= NumClips {
		return "unknown"
	}
	return clipNames[id]
}
