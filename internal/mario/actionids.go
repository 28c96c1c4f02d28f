package mario

// Action words. Bits 0-8 are the id, bits 6-8 of that the group, and bits
// 9-31 behaviour flags.
const (
	ActUninitialized          Action = 0x00000000
	ActIdle                   Action = 0x0C400201
	ActStartSleeping          Action = 0x0C400202
	ActSleeping               Action = 0x0C000203
	ActWakingUp               Action = 0x0C000204
	ActPanting                Action = 0x0C400205
	ActHoldPantingUnused      Action = 0x08000206
	ActHoldIdle               Action = 0x08000207
	ActHoldHeavyIdle          Action = 0x08000208
	ActStandingAgainstWall    Action = 0x0C400209
	ActCoughing               Action = 0x0C40020A
	ActShivering              Action = 0x0C40020B
	ActInQuicksand            Action = 0x0002020D
	ActCrouching              Action = 0x0C008220
	ActStartCrouching         Action = 0x0C008221
	ActStopCrouching          Action = 0x0C008222
	ActStartCrawling          Action = 0x0C008223
	ActStopCrawling           Action = 0x0C008224
	ActSlideKickSlideStop     Action = 0x08000225
	ActShockwaveBounce        Action = 0x00020226
	ActFirstPerson            Action = 0x0C000227
	ActBackflipLandStop       Action = 0x0800022F
	ActJumpLandStop           Action = 0x0C000230
	ActDoubleJumpLandStop     Action = 0x0C000231
	ActFreefallLandStop       Action = 0x0C000232
	ActSideFlipLandStop       Action = 0x0C000233
	ActHoldJumpLandStop       Action = 0x08000234
	ActHoldFreefallLandStop   Action = 0x08000235
	ActAirThrowLand           Action = 0x80000A36
	ActTwirlLand              Action = 0x18800238
	ActLavaBoostLand          Action = 0x08000239
	ActTripleJumpLandStop     Action = 0x0800023A
	ActLongJumpLandStop       Action = 0x0800023B
	ActGroundPoundLand        Action = 0x0080023C
	ActBrakingStop            Action = 0x0C00023D
	ActButtSlideStop          Action = 0x0C00023E
	ActHoldButtSlideStop      Action = 0x0800043F
	ActWalking                Action = 0x04000440
	ActHoldWalking            Action = 0x00000442
	ActTurningAround          Action = 0x00000443
	ActFinishTurningAround    Action = 0x00000444
	ActBraking                Action = 0x04000445
	ActRidingShellGround      Action = 0x20810446
	ActHoldHeavyWalking       Action = 0x00000447
	ActCrawling               Action = 0x04008448
	ActBurningGround          Action = 0x00020449
	ActDecelerating           Action = 0x0400044A
	ActHoldDecelerating       Action = 0x0000044B
	ActBeginSliding           Action = 0x00000050
	ActHoldBeginSliding       Action = 0x00000051
	ActButtSlide              Action = 0x00840452
	ActStomachSlide           Action = 0x008C0453
	ActHoldButtSlide          Action = 0x00840454
	ActHoldStomachSlide       Action = 0x008C0455
	ActDiveSlide              Action = 0x00880456
	ActMovePunching           Action = 0x00800457
	ActCrouchSlide            Action = 0x04808459
	ActSlideKickSlide         Action = 0x0080045A
	ActHardBackwardGroundKb   Action = 0x00020460
	ActHardForwardGroundKb    Action = 0x00020461
	ActBackwardGroundKb       Action = 0x00020462
	ActForwardGroundKb        Action = 0x00020463
	ActSoftBackwardGroundKb   Action = 0x00020464
	ActSoftForwardGroundKb    Action = 0x00020465
	ActGroundBonk             Action = 0x00020466
	ActDeathExitLand          Action = 0x00020467
	ActJumpLand               Action = 0x04000470
	ActFreefallLand           Action = 0x04000471
	ActDoubleJumpLand         Action = 0x04000472
	ActSideFlipLand           Action = 0x04000473
	ActHoldJumpLand           Action = 0x00000474
	ActHoldFreefallLand       Action = 0x00000475
	ActQuicksandJumpLand      Action = 0x00000476
	ActHoldQuicksandJumpLand  Action = 0x00000477
	ActTripleJumpLand         Action = 0x04000478
	ActLongJumpLand           Action = 0x00000479
	ActBackflipLand           Action = 0x0400047A
	ActJump                   Action = 0x03000880
	ActDoubleJump             Action = 0x03000881
	ActTripleJump             Action = 0x01000882
	ActBackflip               Action = 0x01000883
	ActSteepJump              Action = 0x03000885
	ActWallKickAir            Action = 0x03000886
	ActSideFlip               Action = 0x01000887
	ActLongJump               Action = 0x03000888
	ActWaterJump              Action = 0x01000889
	ActDive                   Action = 0x0188088A
	ActFreefall               Action = 0x0100088C
	ActTopOfPoleJump          Action = 0x0300088D
	ActButtSlideAir           Action = 0x0300088E
	ActFlyingTripleJump       Action = 0x03000894
	ActShotFromCannon         Action = 0x00880898
	ActFlying                 Action = 0x10880899
	ActRidingShellJump        Action = 0x0281089A
	ActRidingShellFall        Action = 0x0081089B
	ActVerticalWind           Action = 0x1008089C
	ActHoldJump               Action = 0x030008A0
	ActHoldFreefall           Action = 0x010008A1
	ActHoldButtSlideAir       Action = 0x010008A2
	ActHoldWaterJump          Action = 0x010008A3
	ActTwirling               Action = 0x108008A4
	ActForwardRollout         Action = 0x010008A6
	ActAirHitWall             Action = 0x000008A7
	ActRidingHoot             Action = 0x000004A8
	ActGroundPound            Action = 0x008008A9
	ActSlideKick              Action = 0x018008AA
	ActAirThrow               Action = 0x830008AB
	ActJumpKick               Action = 0x018008AC
	ActBackwardRollout        Action = 0x010008AD
	ActCrazyBoxBounce         Action = 0x000008AE
	ActSpecialTripleJump      Action = 0x030008AF
	ActBackwardAirKb          Action = 0x010208B0
	ActForwardAirKb           Action = 0x010208B1
	ActHardForwardAirKb       Action = 0x010208B2
	ActHardBackwardAirKb      Action = 0x010208B3
	ActBurningJump            Action = 0x010208B4
	ActBurningFall            Action = 0x010208B5
	ActSoftBonk               Action = 0x010208B6
	ActLavaBoost              Action = 0x010208B7
	ActGettingBlown           Action = 0x010208B8
	ActThrownForward          Action = 0x010208BD
	ActThrownBackward         Action = 0x010208BE
	ActWaterIdle              Action = 0x380022C0
	ActHoldWaterIdle          Action = 0x380022C1
	ActWaterActionEnd         Action = 0x300022C2
	ActHoldWaterActionEnd     Action = 0x300022C3
	ActDrowning               Action = 0x300032C4
	ActBackwardWaterKb        Action = 0x300222C5
	ActForwardWaterKb         Action = 0x300222C6
	ActWaterDeath             Action = 0x300032C7
	ActWaterShocked           Action = 0x300222C8
	ActBreaststroke           Action = 0x300024D0
	ActSwimmingEnd            Action = 0x300024D1
	ActFlutterKick            Action = 0x300024D2
	ActHoldBreaststroke       Action = 0x300024D3
	ActHoldSwimmingEnd        Action = 0x300024D4
	ActHoldFlutterKick        Action = 0x300024D5
	ActWaterShellSwimming     Action = 0x300024D6
	ActWaterThrow             Action = 0x300024E0
	ActWaterPunch             Action = 0x300024E1
	ActWaterPlunge            Action = 0x300022E2
	ActCaughtInWhirlpool      Action = 0x300222E3
	ActMetalWaterStanding     Action = 0x080042F0
	ActHoldMetalWaterStanding Action = 0x080042F1
	ActMetalWaterWalking      Action = 0x000044F2
	ActHoldMetalWaterWalking  Action = 0x000044F3
	ActMetalWaterFalling      Action = 0x000042F4
	ActHoldMetalWaterFalling  Action = 0x000042F5
	ActMetalWaterFallLand     Action = 0x000042F6
	ActHoldMetalWaterFallLand Action = 0x000042F7
	ActMetalWaterJump         Action = 0x000044F8
	ActHoldMetalWaterJump     Action = 0x000044F9
	ActMetalWaterJumpLand     Action = 0x000044FA
	ActHoldMetalWaterJumpLand Action = 0x000044FB
	ActDisappeared            Action = 0x00001300
	ActIntroCutscene          Action = 0x04001301
	ActStarDanceExit          Action = 0x00001302
	ActStarDanceWater         Action = 0x00001303
	ActFallAfterStarGrab      Action = 0x00001904
	ActReadingAutomaticDialog Action = 0x20001305
	ActReadingNpcDialog       Action = 0x20001306
	ActStarDanceNoExit        Action = 0x00001307
	ActReadingSign            Action = 0x00001308
	ActJumboStarCutscene      Action = 0x00001909
	ActWaitingForDialog       Action = 0x0000130A
	ActDebugFreeMove          Action = 0x0000130F
	ActStandingDeath          Action = 0x00021311
	ActQuicksandDeath         Action = 0x00021312
	ActElectrocution          Action = 0x00021313
	ActSuffocation            Action = 0x00021314
	ActDeathOnStomach         Action = 0x00021315
	ActDeathOnBack            Action = 0x00021316
	ActEatenByBubba           Action = 0x00021317
	ActEndPeachCutscene       Action = 0x00001918
	ActCreditsCutscene        Action = 0x00001319
	ActEndWavingCutscene      Action = 0x0000131A
	ActPullingDoor            Action = 0x00001320
	ActPushingDoor            Action = 0x00001321
	ActWarpDoorSpawn          Action = 0x00001322
	ActEmergeFromPipe         Action = 0x00001923
	ActSpawnSpinAirborne      Action = 0x00001924
	ActSpawnSpinLanding       Action = 0x00001325
	ActExitAirborne           Action = 0x00001926
	ActExitLandSaveDialog     Action = 0x00001327
	ActDeathExit              Action = 0x00001928
	ActUnusedDeathExit        Action = 0x00001929
	ActFallingDeathExit       Action = 0x0000192A
	ActSpecialExitAirborne    Action = 0x0000192B
	ActSpecialDeathExit       Action = 0x0000192C
	ActFallingExitAirborne    Action = 0x0000192D
	ActUnlockingKeyDoor       Action = 0x0000132E
	ActUnlockingStarDoor      Action = 0x0000132F
	ActEnteringStarDoor       Action = 0x00001331
	ActSpawnNoSpinAirborne    Action = 0x00001932
	ActSpawnNoSpinLanding     Action = 0x00001333
	ActBbhEnterJump           Action = 0x00001934
	ActBbhEnterSpin           Action = 0x00001535
	ActTeleportFadeOut        Action = 0x00001336
	ActTeleportFadeIn         Action = 0x00001337
	ActShocked                Action = 0x00020338
	ActSquished               Action = 0x00020339
	ActHeadStuckInGround      Action = 0x0002033A
	ActButtStuckInGround      Action = 0x0002033B
	ActFeetStuckInGround      Action = 0x0002033C
	ActPuttingOnCap           Action = 0x0000133D
	ActHoldingPole            Action = 0x08100340
	ActGrabPoleSlow           Action = 0x00100341
	ActGrabPoleFast           Action = 0x00100342
	ActClimbingPole           Action = 0x00100343
	ActTopOfPoleTransition    Action = 0x00100344
	ActTopOfPole              Action = 0x00100345
	ActStartHanging           Action = 0x08200348
	ActHanging                Action = 0x00200349
	ActHangMoving             Action = 0x0020054A
	ActLedgeGrab              Action = 0x0800034B
	ActLedgeClimbSlow1        Action = 0x0000054C
	ActLedgeClimbSlow2        Action = 0x0000054D
	ActLedgeClimbDown         Action = 0x0000054E
	ActLedgeClimbFast         Action = 0x0000054F
	ActGrabbed                Action = 0x00020370
	ActInCannon               Action = 0x00001371
	ActTornadoTwirling        Action = 0x10020372
	ActPunching               Action = 0x00800380
	ActPickingUp              Action = 0x00000383
	ActDivePickingUp          Action = 0x00000385
	ActStomachSlideStop       Action = 0x00000386
	ActPlacingDown            Action = 0x00000387
	ActThrowing               Action = 0x80000588
	ActHeavyThrow             Action = 0x80000589
	ActPickingUpBowser        Action = 0x00000390
	ActHoldingBowser          Action = 0x00000391
	ActReleasingBowser        Action = 0x00000392
)

var actionNames = map[Action]string{
	ActUninitialized:          "uninitialized",
	ActIdle:                   "idle",
	ActStartSleeping:          "start_sleeping",
	ActSleeping:               "sleeping",
	ActWakingUp:               "waking_up",
	ActPanting:                "panting",
	ActHoldPantingUnused:      "hold_panting_unused",
	ActHoldIdle:               "hold_idle",
	ActHoldHeavyIdle:          "hold_heavy_idle",
	ActStandingAgainstWall:    "standing_against_wall",
	ActCoughing:               "coughing",
	ActShivering:              "shivering",
	ActInQuicksand:            "in_quicksand",
	ActCrouching:              "crouching",
	ActStartCrouching:         "start_crouching",
	ActStopCrouching:          "stop_crouching",
	ActStartCrawling:          "start_crawling",
	ActStopCrawling:           "stop_crawling",
	ActSlideKickSlideStop:     "slide_kick_slide_stop",
	ActShockwaveBounce:        "shockwave_bounce",
	ActFirstPerson:            "first_person",
	ActBackflipLandStop:       "backflip_land_stop",
	ActJumpLandStop:           "jump_land_stop",
	ActDoubleJumpLandStop:     "double_jump_land_stop",
	ActFreefallLandStop:       "freefall_land_stop",
	ActSideFlipLandStop:       "side_flip_land_stop",
	ActHoldJumpLandStop:       "hold_jump_land_stop",
	ActHoldFreefallLandStop:   "hold_freefall_land_stop",
	ActAirThrowLand:           "air_throw_land",
	ActTwirlLand:              "twirl_land",
	ActLavaBoostLand:          "lava_boost_land",
	ActTripleJumpLandStop:     "triple_jump_land_stop",
	ActLongJumpLandStop:       "long_jump_land_stop",
	ActGroundPoundLand:        "ground_pound_land",
	ActBrakingStop:            "braking_stop",
	ActButtSlideStop:          "butt_slide_stop",
	ActHoldButtSlideStop:      "hold_butt_slide_stop",
	ActWalking:                "walking",
	ActHoldWalking:            "hold_walking",
	ActTurningAround:          "turning_around",
	ActFinishTurningAround:    "finish_turning_around",
	ActBraking:                "braking",
	ActRidingShellGround:      "riding_shell_ground",
	ActHoldHeavyWalking:       "hold_heavy_walking",
	ActCrawling:               "crawling",
	ActBurningGround:          "burning_ground",
	ActDecelerating:           "decelerating",
	ActHoldDecelerating:       "hold_decelerating",
	ActBeginSliding:           "begin_sliding",
	ActHoldBeginSliding:       "hold_begin_sliding",
	ActButtSlide:              "butt_slide",
	ActStomachSlide:           "stomach_slide",
	ActHoldButtSlide:          "hold_butt_slide",
	ActHoldStomachSlide:       "hold_stomach_slide",
	ActDiveSlide:              "dive_slide",
	ActMovePunching:           "move_punching",
	ActCrouchSlide:            "crouch_slide",
	ActSlideKickSlide:         "slide_kick_slide",
	ActHardBackwardGroundKb:   "hard_backward_ground_kb",
	ActHardForwardGroundKb:    "hard_forward_ground_kb",
	ActBackwardGroundKb:       "backward_ground_kb",
	ActForwardGroundKb:        "forward_ground_kb",
	ActSoftBackwardGroundKb:   "soft_backward_ground_kb",
	ActSoftForwardGroundKb:    "soft_forward_ground_kb",
	ActGroundBonk:             "ground_bonk",
	ActDeathExitLand:          "death_exit_land",
	ActJumpLand:               "jump_land",
	ActFreefallLand:           "freefall_land",
	ActDoubleJumpLand:         "double_jump_land",
	ActSideFlipLand:           "side_flip_land",
	ActHoldJumpLand:           "hold_jump_land",
	ActHoldFreefallLand:       "hold_freefall_land",
	ActQuicksandJumpLand:      "quicksand_jump_land",
	ActHoldQuicksandJumpLand:  "hold_quicksand_jump_land",
	ActTripleJumpLand:         "triple_jump_land",
	ActLongJumpLand:           "long_jump_land",
	ActBackflipLand:           "backflip_land",
	ActJump:                   "jump",
	ActDoubleJump:             "double_jump",
	ActTripleJump:             "triple_jump",
	ActBackflip:               "backflip",
	ActSteepJump:              "steep_jump",
	ActWallKickAir:            "wall_kick_air",
	ActSideFlip:               "side_flip",
	ActLongJump:               "long_jump",
	ActWaterJump:              "water_jump",
	ActDive:                   "dive",
	ActFreefall:               "freefall",
	ActTopOfPoleJump:          "top_of_pole_jump",
	ActButtSlideAir:           "butt_slide_air",
	ActFlyingTripleJump:       "flying_triple_jump",
	ActShotFromCannon:         "shot_from_cannon",
	ActFlying:                 "flying",
	ActRidingShellJump:        "riding_shell_jump",
	ActRidingShellFall:        "riding_shell_fall",
	ActVerticalWind:           "vertical_wind",
	ActHoldJump:               "hold_jump",
	ActHoldFreefall:           "hold_freefall",
	ActHoldButtSlideAir:       "hold_butt_slide_air",
	ActHoldWaterJump:          "hold_water_jump",
	ActTwirling:               "twirling",
	ActForwardRollout:         "forward_rollout",
	ActAirHitWall:             "air_hit_wall",
	ActRidingHoot:             "riding_hoot",
	ActGroundPound:            "ground_pound",
	ActSlideKick:              "slide_kick",
	ActAirThrow:               "air_throw",
	ActJumpKick:               "jump_kick",
	ActBackwardRollout:        "backward_rollout",
	ActCrazyBoxBounce:         "crazy_box_bounce",
	ActSpecialTripleJump:      "special_triple_jump",
	ActBackwardAirKb:          "backward_air_kb",
	ActForwardAirKb:           "forward_air_kb",
	ActHardForwardAirKb:       "hard_forward_air_kb",
	ActHardBackwardAirKb:      "hard_backward_air_kb",
	ActBurningJump:            "burning_jump",
	ActBurningFall:            "burning_fall",
	ActSoftBonk:               "soft_bonk",
	ActLavaBoost:              "lava_boost",
	ActGettingBlown:           "getting_blown",
	ActThrownForward:          "thrown_forward",
	ActThrownBackward:         "thrown_backward",
	ActWaterIdle:              "water_idle",
	ActHoldWaterIdle:          "hold_water_idle",
	ActWaterActionEnd:         "water_action_end",
	ActHoldWaterActionEnd:     "hold_water_action_end",
	ActDrowning:               "drowning",
	ActBackwardWaterKb:        "backward_water_kb",
	ActForwardWaterKb:         "forward_water_kb",
	ActWaterDeath:             "water_death",
	ActWaterShocked:           "water_shocked",
	ActBreaststroke:           "breaststroke",
	ActSwimmingEnd:            "swimming_end",
	ActFlutterKick:            "flutter_kick",
	ActHoldBreaststroke:       "hold_breaststroke",
	ActHoldSwimmingEnd:        "hold_swimming_end",
	ActHoldFlutterKick:        "hold_flutter_kick",
	ActWaterShellSwimming:     "water_shell_swimming",
	ActWaterThrow:             "water_throw",
	ActWaterPunch:             "water_punch",
	ActWaterPlunge:            "water_plunge",
	ActCaughtInWhirlpool:      "caught_in_whirlpool",
	ActMetalWaterStanding:     "metal_water_standing",
	ActHoldMetalWaterStanding: "hold_metal_water_standing",
	ActMetalWaterWalking:      "metal_water_walking",
	ActHoldMetalWaterWalking:  "hold_metal_water_walking",
	ActMetalWaterFalling:      "metal_water_falling",
	ActHoldMetalWaterFalling:  "hold_metal_water_falling",
	ActMetalWaterFallLand:     "metal_water_fall_land",
	ActHoldMetalWaterFallLand: "hold_metal_water_fall_land",
	ActMetalWaterJump:         "metal_water_jump",
	ActHoldMetalWaterJump:     "hold_metal_water_jump",
	ActMetalWaterJumpLand:     "metal_water_jump_land",
	ActHoldMetalWaterJumpLand: "hold_metal_water_jump_land",
	ActDisappeared:            "disappeared",
	ActIntroCutscene:          "intro_cutscene",
	ActStarDanceExit:          "star_dance_exit",
	ActStarDanceWater:         "star_dance_water",
	ActFallAfterStarGrab:      "fall_after_star_grab",
	ActReadingAutomaticDialog: "reading_automatic_dialog",
	ActReadingNpcDialog:       "reading_npc_dialog",
	ActStarDanceNoExit:        "star_dance_no_exit",
	ActReadingSign:            "reading_sign",
	ActJumboStarCutscene:      "jumbo_star_cutscene",
	ActWaitingForDialog:       "waiting_for_dialog",
	ActDebugFreeMove:          "debug_free_move",
	ActStandingDeath:          "standing_death",
	ActQuicksandDeath:         "quicksand_death",
	ActElectrocution:          "electrocution",
	ActSuffocation:            "suffocation",
	ActDeathOnStomach:         "death_on_stomach",
	ActDeathOnBack:            "death_on_back",
	ActEatenByBubba:           "eaten_by_bubba",
	ActEndPeachCutscene:       "end_peach_cutscene",
	ActCreditsCutscene:        "credits_cutscene",
	ActEndWavingCutscene:      "end_waving_cutscene",
	ActPullingDoor:            "pulling_door",
	ActPushingDoor:            "pushing_door",
	ActWarpDoorSpawn:          "warp_door_spawn",
	ActEmergeFromPipe:         "emerge_from_pipe",
	ActSpawnSpinAirborne:      "spawn_spin_airborne",
	ActSpawnSpinLanding:       "spawn_spin_landing",
	ActExitAirborne:           "exit_airborne",
	ActExitLandSaveDialog:     "exit_land_save_dialog",
	ActDeathExit:              "death_exit",
	ActUnusedDeathExit:        "unused_death_exit",
	ActFallingDeathExit:       "falling_death_exit",
	ActSpecialExitAirborne:    "special_exit_airborne",
	ActSpecialDeathExit:       "special_death_exit",
	ActFallingExitAirborne:    "falling_exit_airborne",
	ActUnlockingKeyDoor:       "unlocking_key_door",
	ActUnlockingStarDoor:      "unlocking_star_door",
	ActEnteringStarDoor:       "entering_star_door",
	ActSpawnNoSpinAirborne:    "spawn_no_spin_airborne",
	ActSpawnNoSpinLanding:     "spawn_no_spin_landing",
	ActBbhEnterJump:           "bbh_enter_jump",
	ActBbhEnterSpin:           "bbh_enter_spin",
	ActTeleportFadeOut:        "teleport_fade_out",
	ActTeleportFadeIn:         "teleport_fade_in",
	ActShocked:                "shocked",
	ActSquished:               "squished",
	ActHeadStuckInGround:      "head_stuck_in_ground",
	ActButtStuckInGround:      "butt_stuck_in_ground",
	ActFeetStuckInGround:      "feet_stuck_in_ground",
	ActPuttingOnCap:           "putting_on_cap",
	ActHoldingPole:            "holding_pole",
	ActGrabPoleSlow:           "grab_pole_slow",
	ActGrabPoleFast:           "grab_pole_fast",
	ActClimbingPole:           "climbing_pole",
	ActTopOfPoleTransition:    "top_of_pole_transition",
	ActTopOfPole:              "top_of_pole",
	ActStartHanging:           "start_hanging",
	ActHanging:                "hanging",
	ActHangMoving:             "hang_moving",
	ActLedgeGrab:              "ledge_grab",
	ActLedgeClimbSlow1:        "ledge_climb_slow_1",
	ActLedgeClimbSlow2:        "ledge_climb_slow_2",
	ActLedgeClimbDown:         "ledge_climb_down",
	ActLedgeClimbFast:         "ledge_climb_fast",
	ActGrabbed:                "grabbed",
	ActInCannon:               "in_cannon",
	ActTornadoTwirling:        "tornado_twirling",
	ActPunching:               "punching",
	ActPickingUp:              "picking_up",
	ActDivePickingUp:          "dive_picking_up",
	ActStomachSlideStop:       "stomach_slide_stop",
	ActPlacingDown:            "placing_down",
	ActThrowing:               "throwing",
	ActHeavyThrow:             "heavy_throw",
	ActPickingUpBowser:        "picking_up_bowser",
	ActHoldingBowser:          "holding_bowser",
	ActReleasingBowser:        "releasing_bowser",
}
