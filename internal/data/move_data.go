package data

// moveDefs хранит встроенную базу атак в Go-литералах.
// Numeric data only; the resolution strategy is selected by Mechanic.
var moveDefs = []MoveDef{
	// Basic damaging moves
	{Symbol: "tackle", Type: TypeNormal, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 35, Mechanic: "s_basic", Flags: FlagContact},
	{Symbol: "quick_attack", Type: TypeNormal, Category: CategoryPhysical, Power: 40, Accuracy: 100, PP: 30, Priority: 1, Mechanic: "s_basic", Flags: FlagContact},
	{Symbol: "facade", Type: TypeNormal, Category: CategoryPhysical, Power: 70, Accuracy: 100, PP: 20, Mechanic: "s_facade", Flags: FlagContact},
	{Symbol: "ember", Type: TypeFire, Category: CategorySpecial, Power: 40, Accuracy: 100, PP: 25, Mechanic: "s_basic", EffectChance: 10, Status: "burn"},
	{Symbol: "flamethrower", Type: TypeFire, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15, Mechanic: "s_basic", EffectChance: 10, Status: "burn"},
	{Symbol: "flame_wheel", Type: TypeFire, Category: CategoryPhysical, Power: 60, Accuracy: 100, PP: 25, Mechanic: "s_basic", EffectChance: 10, Status: "burn", Flags: FlagContact | FlagThawUser},
	{Symbol: "water_gun", Type: TypeWater, Category: CategorySpecial, Power: 40, Accuracy: 100, PP: 25, Mechanic: "s_basic"},
	{Symbol: "surf", Type: TypeWater, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15, Target: TargetAllAdjacent, Mechanic: "s_basic"},
	{Symbol: "hydro_pump", Type: TypeWater, Category: CategorySpecial, Power: 110, Accuracy: 80, PP: 5, Mechanic: "s_basic"},
	{Symbol: "scald", Type: TypeWater, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 15, Mechanic: "s_basic", EffectChance: 30, Status: "burn", Flags: FlagThawUser},
	{Symbol: "thunderbolt", Type: TypeElectric, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 15, Mechanic: "s_basic", EffectChance: 10, Status: "paralysis"},
	{Symbol: "thunder", Type: TypeElectric, Category: CategorySpecial, Power: 110, Accuracy: 70, PP: 10, Mechanic: "s_basic", EffectChance: 30, Status: "paralysis"},
	{Symbol: "vine_whip", Type: TypeGrass, Category: CategoryPhysical, Power: 45, Accuracy: 100, PP: 25, Mechanic: "s_basic", Flags: FlagContact},
	{Symbol: "energy_ball", Type: TypeGrass, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Mechanic: "s_basic", EffectChance: 10, StatChanges: []StatChange{{Stat: StatDfs, Stages: -1}}},
	{Symbol: "giga_drain", Type: TypeGrass, Category: CategorySpecial, Power: 75, Accuracy: 100, PP: 10, Mechanic: "s_basic", DrainPercent: 50},
	{Symbol: "ice_beam", Type: TypeIce, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Mechanic: "s_basic", EffectChance: 10, Status: "freeze"},
	{Symbol: "blizzard", Type: TypeIce, Category: CategorySpecial, Power: 110, Accuracy: 70, PP: 5, Target: TargetAllAdjacentFoe, Mechanic: "s_basic", EffectChance: 10, Status: "freeze"},
	{Symbol: "earthquake", Type: TypeGround, Category: CategoryPhysical, Power: 100, Accuracy: 100, PP: 10, Target: TargetAllAdjacent, Mechanic: "s_basic"},
	{Symbol: "rock_slide", Type: TypeRock, Category: CategoryPhysical, Power: 75, Accuracy: 90, PP: 10, Target: TargetAllAdjacentFoe, Mechanic: "s_basic", EffectChance: 30, Status: "flinch"},
	{Symbol: "gust", Type: TypeFlying, Category: CategorySpecial, Power: 40, Accuracy: 100, PP: 35, Mechanic: "s_basic"},
	{Symbol: "hurricane", Type: TypeFlying, Category: CategorySpecial, Power: 110, Accuracy: 70, PP: 10, Mechanic: "s_basic", EffectChance: 30, Status: "confusion"},
	{Symbol: "sludge_bomb", Type: TypePoison, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Mechanic: "s_basic", EffectChance: 30, Status: "poison"},
	{Symbol: "psychic", Type: TypePsychic, Category: CategorySpecial, Power: 90, Accuracy: 100, PP: 10, Mechanic: "s_basic", EffectChance: 10, StatChanges: []StatChange{{Stat: StatDfs, Stages: -1}}},
	{Symbol: "shadow_ball", Type: TypeGhost, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 15, Mechanic: "s_basic", EffectChance: 20, StatChanges: []StatChange{{Stat: StatDfs, Stages: -1}}},
	{Symbol: "dragon_claw", Type: TypeDragon, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15, Mechanic: "s_basic", Flags: FlagContact},
	{Symbol: "crunch", Type: TypeDark, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 15, Mechanic: "s_basic", EffectChance: 20, StatChanges: []StatChange{{Stat: StatDfe, Stages: -1}}, Flags: FlagContact | FlagBite},
	{Symbol: "close_combat", Type: TypeFighting, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 5, Mechanic: "s_basic", Flags: FlagContact},
	{Symbol: "snore", Type: TypeNormal, Category: CategorySpecial, Power: 50, Accuracy: 100, PP: 15, Mechanic: "s_snore", EffectChance: 30, Status: "flinch", Flags: FlagSound | FlagSleepUsable},
	{Symbol: "struggle", Type: TypeNone, Category: CategoryPhysical, Power: 50, Accuracy: 0, PP: 1, Mechanic: "s_struggle", Flags: FlagContact},

	// Status moves
	{Symbol: "thunder_wave", Type: TypeElectric, Category: CategoryStatus, Accuracy: 90, PP: 20, Mechanic: "s_status", Status: "paralysis"},
	{Symbol: "toxic", Type: TypePoison, Category: CategoryStatus, Accuracy: 90, PP: 10, Mechanic: "s_status", Status: "toxic"},
	{Symbol: "will_o_wisp", Type: TypeFire, Category: CategoryStatus, Accuracy: 85, PP: 15, Mechanic: "s_status", Status: "burn"},
	{Symbol: "spore", Type: TypeGrass, Category: CategoryStatus, Accuracy: 100, PP: 15, Mechanic: "s_status", Status: "sleep", Flags: FlagPowder},
	{Symbol: "hypnosis", Type: TypePsychic, Category: CategoryStatus, Accuracy: 60, PP: 20, Mechanic: "s_status", Status: "sleep"},
	{Symbol: "confuse_ray", Type: TypeGhost, Category: CategoryStatus, Accuracy: 100, PP: 10, Mechanic: "s_status", Status: "confusion"},
	{Symbol: "growl", Type: TypeNormal, Category: CategoryStatus, Accuracy: 100, PP: 40, Target: TargetAllAdjacentFoe, Mechanic: "s_stat", StatChanges: []StatChange{{Stat: StatAtk, Stages: -1}}, Flags: FlagSound},
	{Symbol: "swords_dance", Type: TypeNormal, Category: CategoryStatus, PP: 20, Target: TargetUser, Mechanic: "s_self_stat", StatChanges: []StatChange{{Stat: StatAtk, Stages: 2}}},
	{Symbol: "agility", Type: TypePsychic, Category: CategoryStatus, PP: 30, Target: TargetUser, Mechanic: "s_self_stat", StatChanges: []StatChange{{Stat: StatSpd, Stages: 2}}},
	{Symbol: "sleep_talk", Type: TypeNormal, Category: CategoryStatus, PP: 10, Target: TargetUser, Mechanic: "s_sleep_talk", Flags: FlagSleepUsable},
	{Symbol: "rain_dance", Type: TypeWater, Category: CategoryStatus, PP: 5, Target: TargetField, Mechanic: "s_weather", Weather: "rain"},
	{Symbol: "sunny_day", Type: TypeFire, Category: CategoryStatus, PP: 5, Target: TargetField, Mechanic: "s_weather", Weather: "sunny"},
	{Symbol: "sandstorm", Type: TypeRock, Category: CategoryStatus, PP: 10, Target: TargetField, Mechanic: "s_weather", Weather: "sandstorm"},
	{Symbol: "hail", Type: TypeIce, Category: CategoryStatus, PP: 10, Target: TargetField, Mechanic: "s_weather", Weather: "hail"},
	{Symbol: "snowscape", Type: TypeIce, Category: CategoryStatus, PP: 10, Target: TargetField, Mechanic: "s_weather", Weather: "snow"},
	{Symbol: "electric_terrain", Type: TypeElectric, Category: CategoryStatus, PP: 10, Target: TargetField, Mechanic: "s_terrain", Terrain: "electric_terrain"},
	{Symbol: "grassy_terrain", Type: TypeGrass, Category: CategoryStatus, PP: 10, Target: TargetField, Mechanic: "s_terrain", Terrain: "grassy_terrain"},
	{Symbol: "misty_terrain", Type: TypeFairy, Category: CategoryStatus, PP: 10, Target: TargetField, Mechanic: "s_terrain", Terrain: "misty_terrain"},
	{Symbol: "psychic_terrain", Type: TypePsychic, Category: CategoryStatus, PP: 10, Target: TargetField, Mechanic: "s_terrain", Terrain: "psychic_terrain"},
	{Symbol: "transform", Type: TypeNormal, Category: CategoryStatus, PP: 10, Mechanic: "s_transform"},

	// Counter family
	{Symbol: "counter", Type: TypeFighting, Category: CategoryPhysical, Accuracy: 100, PP: 20, Priority: -5, Mechanic: "s_counter", Flags: FlagContact},
	{Symbol: "mirror_coat", Type: TypePsychic, Category: CategorySpecial, Accuracy: 100, PP: 20, Priority: -5, Mechanic: "s_counter"},
	{Symbol: "metal_burst", Type: TypeSteel, Category: CategoryPhysical, Accuracy: 100, PP: 10, Mechanic: "s_counter"},

	// Item based
	{Symbol: "natural_gift", Type: TypeNormal, Category: CategoryPhysical, Accuracy: 100, PP: 15, Mechanic: "s_natural_gift"},
	{Symbol: "fling", Type: TypeDark, Category: CategoryPhysical, Accuracy: 100, PP: 10, Mechanic: "s_fling"},
	{Symbol: "judgment", Type: TypeNormal, Category: CategorySpecial, Power: 100, Accuracy: 100, PP: 10, Mechanic: "s_judgment"},
	{Symbol: "techno_blast", Type: TypeNormal, Category: CategorySpecial, Power: 120, Accuracy: 100, PP: 5, Mechanic: "s_techno_blast"},
	{Symbol: "multi_attack", Type: TypeNormal, Category: CategoryPhysical, Power: 120, Accuracy: 100, PP: 10, Mechanic: "s_multi_attack", Flags: FlagContact},

	// Multi hit
	{Symbol: "double_slap", Type: TypeNormal, Category: CategoryPhysical, Power: 15, Accuracy: 85, PP: 10, Mechanic: "s_multi_hit", Flags: FlagContact},
	{Symbol: "bullet_seed", Type: TypeGrass, Category: CategoryPhysical, Power: 25, Accuracy: 100, PP: 30, Mechanic: "s_multi_hit"},
	{Symbol: "double_kick", Type: TypeFighting, Category: CategoryPhysical, Power: 30, Accuracy: 100, PP: 30, Mechanic: "s_2hits", Flags: FlagContact},
	{Symbol: "triple_dive", Type: TypeWater, Category: CategoryPhysical, Power: 30, Accuracy: 95, PP: 10, Mechanic: "s_3hits", Flags: FlagContact},
	{Symbol: "triple_kick", Type: TypeFighting, Category: CategoryPhysical, Power: 10, Accuracy: 90, PP: 10, Mechanic: "s_triple_kick", Flags: FlagContact},
	{Symbol: "triple_axel", Type: TypeIce, Category: CategoryPhysical, Power: 20, Accuracy: 90, PP: 10, Mechanic: "s_triple_kick", Flags: FlagContact},
	{Symbol: "population_bomb", Type: TypeNormal, Category: CategoryPhysical, Power: 20, Accuracy: 90, PP: 10, Mechanic: "s_population_bomb", Flags: FlagContact},
	{Symbol: "water_shuriken", Type: TypeWater, Category: CategorySpecial, Power: 15, Accuracy: 100, PP: 20, Priority: 1, Mechanic: "s_water_shuriken"},

	// Two turns
	{Symbol: "solar_beam", Type: TypeGrass, Category: CategorySpecial, Power: 120, Accuracy: 100, PP: 10, Mechanic: "s_2turns", Flags: FlagCharge},
	{Symbol: "solar_blade", Type: TypeGrass, Category: CategoryPhysical, Power: 125, Accuracy: 100, PP: 10, Mechanic: "s_2turns", Flags: FlagCharge | FlagContact},
	{Symbol: "fly", Type: TypeFlying, Category: CategoryPhysical, Power: 90, Accuracy: 95, PP: 15, Mechanic: "s_2turns", Flags: FlagCharge | FlagContact},
	{Symbol: "bounce", Type: TypeFlying, Category: CategoryPhysical, Power: 85, Accuracy: 85, PP: 5, Mechanic: "s_2turns", EffectChance: 30, Status: "paralysis", Flags: FlagCharge | FlagContact},
	{Symbol: "dig", Type: TypeGround, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 10, Mechanic: "s_2turns", Flags: FlagCharge | FlagContact},
	{Symbol: "dive", Type: TypeWater, Category: CategoryPhysical, Power: 80, Accuracy: 100, PP: 10, Mechanic: "s_2turns", Flags: FlagCharge | FlagContact},
	{Symbol: "phantom_force", Type: TypeGhost, Category: CategoryPhysical, Power: 90, Accuracy: 100, PP: 10, Mechanic: "s_2turns", Flags: FlagCharge | FlagContact},
	{Symbol: "skull_bash", Type: TypeNormal, Category: CategoryPhysical, Power: 130, Accuracy: 100, PP: 10, Mechanic: "s_2turns", Flags: FlagCharge | FlagContact},
	{Symbol: "meteor_beam", Type: TypeRock, Category: CategorySpecial, Power: 120, Accuracy: 90, PP: 10, Mechanic: "s_2turns", Flags: FlagCharge},
	{Symbol: "sky_attack", Type: TypeFlying, Category: CategoryPhysical, Power: 140, Accuracy: 90, PP: 5, Mechanic: "s_2turns", EffectChance: 30, Status: "flinch", CriticalRate: 1, Flags: FlagCharge},
	{Symbol: "razor_wind", Type: TypeNormal, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 10, Target: TargetAllAdjacentFoe, Mechanic: "s_2turns", CriticalRate: 1, Flags: FlagCharge},

	// Pledges
	{Symbol: "fire_pledge", Type: TypeFire, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 10, Mechanic: "s_pledge"},
	{Symbol: "water_pledge", Type: TypeWater, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 10, Mechanic: "s_pledge"},
	{Symbol: "grass_pledge", Type: TypeGrass, Category: CategorySpecial, Power: 80, Accuracy: 100, PP: 10, Mechanic: "s_pledge"},
}
