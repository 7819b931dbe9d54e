package data

// MoveCategory is physical, special or status.
type MoveCategory uint8

const (
	CategoryPhysical MoveCategory = iota
	CategorySpecial
	CategoryStatus
)

func (c MoveCategory) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategorySpecial:
		return "special"
	default:
		return "status"
	}
}

// MoveTarget describes which battlers a move can aim at.
type MoveTarget uint8

const (
	TargetAdjacentFoe    MoveTarget = iota // one adjacent foe (chosen)
	TargetAllAdjacentFoe                   // every adjacent foe
	TargetAllAdjacent                      // every adjacent battler (allies included)
	TargetUser                             // the user itself
	TargetAlly                             // one adjacent ally
	TargetField                            // no battler (weather, terrain)
	TargetRandomFoe                        // one random foe
)

// MoveFlag is a bit set of move properties.
type MoveFlag uint16

const (
	FlagContact MoveFlag = 1 << iota
	FlagSound
	FlagPunch
	FlagBite
	FlagPulse
	FlagThawUser    // thaws a frozen user before moving (Flame Wheel, Scald...)
	FlagSleepUsable // may be selected while asleep (Sleep Talk, Snore)
	FlagCharge      // two-turn move
	FlagRecharge
	FlagPowder
)

// StatChange is a stat stage change applied by a move.
type StatChange struct {
	Stat   Stat `yaml:"stat"`
	Stages int  `yaml:"stages"`
}

// MoveDef is the immutable content definition of a move.
// The battle engine never mutates it; per-battler state (PP, phase)
// lives on battle.Move.
type MoveDef struct {
	Symbol       string
	Type         TypeID
	Category     MoveCategory
	Power        int
	Accuracy     int // 0 = never misses
	PP           int
	Priority     int
	Target       MoveTarget
	Mechanic     string // resolution strategy symbol (s_basic, s_multi_hit, s_2turns...)
	EffectChance int    // % chance of Status/StatChanges for damaging moves (0 = always for status moves)
	Status       string // status/volatile symbol applied (poison, burn, flinch, confusion...)
	StatChanges  []StatChange
	Weather      string // weather set by s_weather
	Terrain      string // terrain set by s_terrain
	DrainPercent int    // % of dealt damage restored to the user
	CriticalRate int    // extra critical stage
	Flags        MoveFlag
}

// Has reports whether the move carries every flag in f.
func (d *MoveDef) Has(f MoveFlag) bool { return d.Flags&f == f }

// IsDamaging reports whether the move deals direct damage.
func (d *MoveDef) IsDamaging() bool { return d.Category != CategoryStatus }

// IsPhysical reports whether the move is physical.
func (d *MoveDef) IsPhysical() bool { return d.Category == CategoryPhysical }

// IsSpecial reports whether the move is special.
func (d *MoveDef) IsSpecial() bool { return d.Category == CategorySpecial }
