package data

// MegaDef describes the mega evolved form of a species.
type MegaDef struct {
	Stone   string
	Types   [2]TypeID
	Ability string
	Base    BaseStats
}

// SpeciesDef is the content definition of a species.
type SpeciesDef struct {
	Symbol    string
	Types     [2]TypeID
	Base      BaseStats
	Abilities []string
	Moves     []string // default moveset used by fixtures and self-play
	Mega      *MegaDef
}

// speciesDefs хранит встроенную базу видов.
var speciesDefs = []SpeciesDef{
	{
		Symbol: "charizard", Types: [2]TypeID{TypeFire, TypeFlying},
		Base:      BaseStats{HP: 78, Atk: 84, Dfe: 78, Ats: 109, Dfs: 85, Spd: 100},
		Abilities: []string{"blaze", "solar_power"},
		Moves:     []string{"flamethrower", "solar_beam", "fly", "fire_pledge"},
		Mega: &MegaDef{
			Stone: "charizardite_x", Types: [2]TypeID{TypeFire, TypeDragon}, Ability: "tough_claws",
			Base: BaseStats{HP: 78, Atk: 130, Dfe: 111, Ats: 130, Dfs: 85, Spd: 100},
		},
	},
	{
		Symbol: "venusaur", Types: [2]TypeID{TypeGrass, TypePoison},
		Base:      BaseStats{HP: 80, Atk: 82, Dfe: 83, Ats: 100, Dfs: 100, Spd: 80},
		Abilities: []string{"overgrow", "chlorophyll"},
		Moves:     []string{"giga_drain", "sludge_bomb", "spore", "grass_pledge"},
		Mega: &MegaDef{
			Stone: "venusaurite", Types: [2]TypeID{TypeGrass, TypePoison}, Ability: "thick_fat",
			Base: BaseStats{HP: 80, Atk: 100, Dfe: 123, Ats: 122, Dfs: 120, Spd: 80},
		},
	},
	{
		Symbol: "blastoise", Types: [2]TypeID{TypeWater, TypeNone},
		Base:      BaseStats{HP: 79, Atk: 83, Dfe: 100, Ats: 85, Dfs: 105, Spd: 78},
		Abilities: []string{"torrent", "rain_dish"},
		Moves:     []string{"hydro_pump", "ice_beam", "mirror_coat", "water_pledge"},
		Mega: &MegaDef{
			Stone: "blastoisinite", Types: [2]TypeID{TypeWater, TypeNone}, Ability: "mega_launcher",
			Base: BaseStats{HP: 79, Atk: 103, Dfe: 120, Ats: 135, Dfs: 115, Spd: 78},
		},
	},
	{
		Symbol: "pikachu", Types: [2]TypeID{TypeElectric, TypeNone},
		Base:      BaseStats{HP: 35, Atk: 55, Dfe: 40, Ats: 50, Dfs: 50, Spd: 90},
		Abilities: []string{"static", "lightning_rod"},
		Moves:     []string{"thunderbolt", "quick_attack", "thunder_wave", "fling"},
	},
	{
		Symbol: "tyranitar", Types: [2]TypeID{TypeRock, TypeDark},
		Base:      BaseStats{HP: 100, Atk: 134, Dfe: 110, Ats: 95, Dfs: 100, Spd: 61},
		Abilities: []string{"sand_stream"},
		Moves:     []string{"rock_slide", "crunch", "earthquake", "sandstorm"},
	},
	{
		Symbol: "garchomp", Types: [2]TypeID{TypeDragon, TypeGround},
		Base:      BaseStats{HP: 108, Atk: 130, Dfe: 95, Ats: 80, Dfs: 85, Spd: 102},
		Abilities: []string{"sand_veil", "rough_skin"},
		Moves:     []string{"earthquake", "dragon_claw", "dig", "swords_dance"},
	},
	{
		Symbol: "greninja", Types: [2]TypeID{TypeWater, TypeDark},
		Base:      BaseStats{HP: 72, Atk: 95, Dfe: 67, Ats: 103, Dfs: 71, Spd: 122},
		Abilities: []string{"battle_bond", "torrent"},
		Moves:     []string{"water_shuriken", "surf", "ice_beam", "crunch"},
	},
	{
		Symbol: "cinccino", Types: [2]TypeID{TypeNormal, TypeNone},
		Base:      BaseStats{HP: 75, Atk: 95, Dfe: 60, Ats: 65, Dfs: 60, Spd: 115},
		Abilities: []string{"skill_link", "technician"},
		Moves:     []string{"bullet_seed", "double_slap", "triple_axel", "facade"},
	},
	{
		Symbol: "gengar", Types: [2]TypeID{TypeGhost, TypePoison},
		Base:      BaseStats{HP: 60, Atk: 65, Dfe: 60, Ats: 130, Dfs: 75, Spd: 110},
		Abilities: []string{"cursed_body"},
		Moves:     []string{"shadow_ball", "sludge_bomb", "hypnosis", "phantom_force"},
	},
	{
		Symbol: "abomasnow", Types: [2]TypeID{TypeGrass, TypeIce},
		Base:      BaseStats{HP: 90, Atk: 92, Dfe: 75, Ats: 92, Dfs: 85, Spd: 60},
		Abilities: []string{"snow_warning"},
		Moves:     []string{"blizzard", "energy_ball", "hail", "grass_pledge"},
	},
	{
		Symbol: "kyogre", Types: [2]TypeID{TypeWater, TypeNone},
		Base:      BaseStats{HP: 100, Atk: 100, Dfe: 90, Ats: 150, Dfs: 140, Spd: 90},
		Abilities: []string{"drizzle", "primordial_sea"},
		Moves:     []string{"surf", "thunder", "ice_beam", "dive"},
	},
	{
		Symbol: "groudon", Types: [2]TypeID{TypeGround, TypeNone},
		Base:      BaseStats{HP: 100, Atk: 150, Dfe: 140, Ats: 100, Dfs: 90, Spd: 90},
		Abilities: []string{"drought", "desolate_land"},
		Moves:     []string{"earthquake", "solar_beam", "rock_slide", "sunny_day"},
	},
	{
		Symbol: "rayquaza", Types: [2]TypeID{TypeDragon, TypeFlying},
		Base:      BaseStats{HP: 105, Atk: 150, Dfe: 90, Ats: 150, Dfs: 90, Spd: 95},
		Abilities: []string{"air_lock", "delta_stream"},
		Moves:     []string{"dragon_claw", "fly", "earthquake", "hurricane"},
	},
	{
		Symbol: "arceus", Types: [2]TypeID{TypeNormal, TypeNone},
		Base:      BaseStats{HP: 120, Atk: 120, Dfe: 120, Ats: 120, Dfs: 120, Spd: 120},
		Abilities: []string{"multitype"},
		Moves:     []string{"judgment", "swords_dance", "earthquake", "shadow_ball"},
	},
	{
		Symbol: "silvally", Types: [2]TypeID{TypeNormal, TypeNone},
		Base:      BaseStats{HP: 95, Atk: 95, Dfe: 95, Ats: 95, Dfs: 95, Spd: 95},
		Abilities: []string{"rks_system"},
		Moves:     []string{"multi_attack", "crunch", "swords_dance", "flamethrower"},
	},
	{
		Symbol: "genesect", Types: [2]TypeID{TypeBug, TypeSteel},
		Base:      BaseStats{HP: 71, Atk: 120, Dfe: 95, Ats: 120, Dfs: 95, Spd: 99},
		Abilities: []string{"download"},
		Moves:     []string{"techno_blast", "ice_beam", "thunderbolt", "metal_burst"},
	},
	{
		Symbol: "snorlax", Types: [2]TypeID{TypeNormal, TypeNone},
		Base:      BaseStats{HP: 160, Atk: 110, Dfe: 65, Ats: 65, Dfs: 110, Spd: 30},
		Abilities: []string{"thick_fat", "guts"},
		Moves:     []string{"facade", "sleep_talk", "snore", "natural_gift"},
	},
	{
		Symbol: "machamp", Types: [2]TypeID{TypeFighting, TypeNone},
		Base:      BaseStats{HP: 90, Atk: 130, Dfe: 80, Ats: 65, Dfs: 85, Spd: 55},
		Abilities: []string{"guts", "no_guard"},
		Moves:     []string{"close_combat", "counter", "triple_kick", "double_kick"},
	},
	{
		Symbol: "maushold", Types: [2]TypeID{TypeNormal, TypeNone},
		Base:      BaseStats{HP: 74, Atk: 75, Dfe: 70, Ats: 65, Dfs: 75, Spd: 111},
		Abilities: []string{"technician", "cheek_pouch"},
		Moves:     []string{"population_bomb", "crunch", "quick_attack", "growl"},
	},
	{
		Symbol: "ditto", Types: [2]TypeID{TypeNormal, TypeNone},
		Base:      BaseStats{HP: 48, Atk: 48, Dfe: 48, Ats: 48, Dfs: 48, Spd: 48},
		Abilities: []string{"limber", "imposter"},
		Moves:     []string{"transform"},
	},
	{
		Symbol: "skarmory", Types: [2]TypeID{TypeSteel, TypeFlying},
		Base:      BaseStats{HP: 65, Atk: 80, Dfe: 140, Ats: 40, Dfs: 70, Spd: 70},
		Abilities: []string{"sturdy", "keen_eye"},
		Moves:     []string{"sky_attack", "toxic", "triple_dive", "agility"},
	},
}
