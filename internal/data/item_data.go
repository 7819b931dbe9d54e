package data

// ItemKind groups items by how the battle engine uses them.
type ItemKind uint8

const (
	ItemHeld      ItemKind = iota // passive held item (Leftovers, Life Orb...)
	ItemBerry                     // consumable held berry
	ItemMedicine                  // bag item restoring HP and/or curing status
	ItemBattle                    // bag item raising a stat stage (X items)
	ItemMegaStone                 // held stone enabling mega evolution
)

// ItemDef is the content definition of an item.
type ItemDef struct {
	Symbol string
	Kind   ItemKind

	// Bag usage
	HealHP       int      // HP restored (-1 = full)
	CureStatuses []string // statuses cured; "all" cures any major status
	BoostStat    Stat
	BoostStages  int

	// Move tables
	FlingPower       int
	NaturalGiftType  TypeID
	NaturalGiftPower int
	PlateType        TypeID // Judgment
	DriveType        TypeID // Techno Blast
	MemoryType       TypeID // Multi-Attack

	// Mega stone
	MegaSpecies string
}

// itemDefs хранит встроенную базу предметов.
var itemDefs = []ItemDef{
	// Medicine
	{Symbol: "potion", Kind: ItemMedicine, HealHP: 20, FlingPower: 30},
	{Symbol: "super_potion", Kind: ItemMedicine, HealHP: 60, FlingPower: 30},
	{Symbol: "hyper_potion", Kind: ItemMedicine, HealHP: 120, FlingPower: 30},
	{Symbol: "max_potion", Kind: ItemMedicine, HealHP: -1, FlingPower: 30},
	{Symbol: "full_restore", Kind: ItemMedicine, HealHP: -1, CureStatuses: []string{"all"}, FlingPower: 30},
	{Symbol: "full_heal", Kind: ItemMedicine, CureStatuses: []string{"all"}, FlingPower: 30},
	{Symbol: "antidote", Kind: ItemMedicine, CureStatuses: []string{"poison", "toxic"}, FlingPower: 30},
	{Symbol: "burn_heal", Kind: ItemMedicine, CureStatuses: []string{"burn"}, FlingPower: 30},
	{Symbol: "paralyze_heal", Kind: ItemMedicine, CureStatuses: []string{"paralysis"}, FlingPower: 30},
	{Symbol: "awakening", Kind: ItemMedicine, CureStatuses: []string{"sleep"}, FlingPower: 30},
	{Symbol: "ice_heal", Kind: ItemMedicine, CureStatuses: []string{"freeze"}, FlingPower: 30},

	// Battle items
	{Symbol: "x_attack", Kind: ItemBattle, BoostStat: StatAtk, BoostStages: 2, FlingPower: 30},
	{Symbol: "x_defense", Kind: ItemBattle, BoostStat: StatDfe, BoostStages: 2, FlingPower: 30},
	{Symbol: "x_speed", Kind: ItemBattle, BoostStat: StatSpd, BoostStages: 2, FlingPower: 30},
	{Symbol: "x_sp_atk", Kind: ItemBattle, BoostStat: StatAts, BoostStages: 2, FlingPower: 30},
	{Symbol: "x_sp_def", Kind: ItemBattle, BoostStat: StatDfs, BoostStages: 2, FlingPower: 30},

	// Held items
	{Symbol: "leftovers", Kind: ItemHeld, FlingPower: 10},
	{Symbol: "life_orb", Kind: ItemHeld, FlingPower: 30},
	{Symbol: "choice_band", Kind: ItemHeld, FlingPower: 10},
	{Symbol: "choice_specs", Kind: ItemHeld, FlingPower: 10},
	{Symbol: "safety_goggles", Kind: ItemHeld, FlingPower: 80},
	{Symbol: "damp_rock", Kind: ItemHeld, FlingPower: 60},
	{Symbol: "heat_rock", Kind: ItemHeld, FlingPower: 60},
	{Symbol: "smooth_rock", Kind: ItemHeld, FlingPower: 10},
	{Symbol: "icy_rock", Kind: ItemHeld, FlingPower: 40},
	{Symbol: "big_root", Kind: ItemHeld, FlingPower: 10},
	{Symbol: "shed_shell", Kind: ItemHeld, FlingPower: 10},
	{Symbol: "power_herb", Kind: ItemHeld, FlingPower: 10},
	{Symbol: "iron_ball", Kind: ItemHeld, FlingPower: 130},

	// Berries
	{Symbol: "lum_berry", Kind: ItemBerry, FlingPower: 10, NaturalGiftType: TypeFlying, NaturalGiftPower: 80},
	{Symbol: "sitrus_berry", Kind: ItemBerry, FlingPower: 10, NaturalGiftType: TypePsychic, NaturalGiftPower: 80},
	{Symbol: "chesto_berry", Kind: ItemBerry, FlingPower: 10, NaturalGiftType: TypeWater, NaturalGiftPower: 80},
	{Symbol: "cheri_berry", Kind: ItemBerry, FlingPower: 10, NaturalGiftType: TypeFire, NaturalGiftPower: 80},
	{Symbol: "rawst_berry", Kind: ItemBerry, FlingPower: 10, NaturalGiftType: TypeGrass, NaturalGiftPower: 80},
	{Symbol: "liechi_berry", Kind: ItemBerry, FlingPower: 10, NaturalGiftType: TypeGrass, NaturalGiftPower: 100},

	// Plates, drives, memories
	{Symbol: "flame_plate", Kind: ItemHeld, FlingPower: 90, PlateType: TypeFire},
	{Symbol: "splash_plate", Kind: ItemHeld, FlingPower: 90, PlateType: TypeWater},
	{Symbol: "zap_plate", Kind: ItemHeld, FlingPower: 90, PlateType: TypeElectric},
	{Symbol: "meadow_plate", Kind: ItemHeld, FlingPower: 90, PlateType: TypeGrass},
	{Symbol: "burn_drive", Kind: ItemHeld, FlingPower: 70, DriveType: TypeFire},
	{Symbol: "douse_drive", Kind: ItemHeld, FlingPower: 70, DriveType: TypeWater},
	{Symbol: "shock_drive", Kind: ItemHeld, FlingPower: 70, DriveType: TypeElectric},
	{Symbol: "chill_drive", Kind: ItemHeld, FlingPower: 70, DriveType: TypeIce},
	{Symbol: "fire_memory", Kind: ItemHeld, FlingPower: 50, MemoryType: TypeFire},
	{Symbol: "water_memory", Kind: ItemHeld, FlingPower: 50, MemoryType: TypeWater},
	{Symbol: "dragon_memory", Kind: ItemHeld, FlingPower: 50, MemoryType: TypeDragon},
	{Symbol: "electric_memory", Kind: ItemHeld, FlingPower: 50, MemoryType: TypeElectric},

	// Mega stones
	{Symbol: "charizardite_x", Kind: ItemMegaStone, FlingPower: 80, MegaSpecies: "charizard"},
	{Symbol: "venusaurite", Kind: ItemMegaStone, FlingPower: 80, MegaSpecies: "venusaur"},
	{Symbol: "blastoisinite", Kind: ItemMegaStone, FlingPower: 80, MegaSpecies: "blastoise"},
}
