package battle

import (
	"fmt"

	"github.com/udisondev/monbattle/internal/data"
)

const (
	// MaxMoves is the size of a moveset.
	MaxMoves = 4
	// MaxStage bounds stat stages to [-MaxStage, MaxStage].
	MaxStage = 6
	// OffField is the Position of a battler that is not on the field.
	OffField = -1
)

// DamageRecord is one hit a battler took from a move.
type DamageRecord struct {
	Turn     int
	Launcher *Battler
	Move     *Move
	Damage   int
}

// BattlerOptions customizes NewBattler. Zero values fall back to species defaults.
type BattlerOptions struct {
	Name    string
	Level   int
	Ability string
	Item    string
	Moves   []string
}

// Battler is one creature of a party.
type Battler struct {
	Name       string
	Species    *data.SpeciesDef
	Level      int
	Bank       int
	Position   int
	PartyIndex int

	types [2]data.TypeID
	base  data.BaseStats
	hp    int
	maxHP int

	stages [data.StatCount]int

	Moves    []*Move
	struggle *Move

	ability       string
	abilityEffect Effect
	item          string
	itemEffect    Effect
	consumedItem  string
	status        Status

	// Effects holds the volatile effects, discarded on switch out.
	Effects *EffectsHandler

	damageHistory []DamageRecord
	lastMove      *Move
	lastMoveTurn  int
	switchTurn    int
	fleeAttempts  int
	megaEvolved   bool
	transformed   bool
	// what Transform overwrote, restored on switch out
	preTransform transformSnapshot

	logic *Logic
}

// NewBattler builds a battler from species data. Every move, its mechanic and the
// statuses/weathers/terrains it references are validated here.
func NewBattler(species string, opts BattlerOptions) (*Battler, error) {
	def, ok := data.GetSpecies(species)
	if !ok {
		return nil, fmt.Errorf("battler %s: %w", species, data.ErrUnknownSpecies)
	}
	level := opts.Level
	if level <= 0 {
		level = 50
	}
	name := opts.Name
	if name == "" {
		name = displayName(def.Symbol)
	}
	ability := opts.Ability
	if ability == "" && len(def.Abilities) > 0 {
		ability = def.Abilities[0]
	}
	moves := opts.Moves
	if len(moves) == 0 {
		moves = def.Moves
	}
	if len(moves) > MaxMoves {
		return nil, fmt.Errorf("battler %s: %w: %d", species, ErrTooManyMoves, len(moves))
	}
	if opts.Item != "" {
		if _, ok := data.GetItem(opts.Item); !ok {
			return nil, fmt.Errorf("battler %s: %w: %s", species, data.ErrUnknownItem, opts.Item)
		}
	}

	b := &Battler{
		Name:     name,
		Species:  def,
		Level:    level,
		Position: OffField,
		types:    def.Types,
		base:     def.Base,
		ability:  ability,
		item:     opts.Item,
		Effects:  NewEffectsHandler(),
	}
	b.maxHP = data.CalcHP(def.Base.HP, level)
	b.hp = b.maxHP

	for _, sym := range moves {
		m, err := NewMove(sym)
		if err != nil {
			return nil, fmt.Errorf("battler %s: %w", species, err)
		}
		b.Moves = append(b.Moves, m)
	}
	struggle, err := NewMove("struggle")
	if err != nil {
		return nil, fmt.Errorf("battler %s: %w", species, err)
	}
	b.struggle = struggle
	return b, nil
}

// MustNewBattler is NewBattler that panics on data errors.
func MustNewBattler(species string, opts BattlerOptions) *Battler {
	b, err := NewBattler(species, opts)
	if err != nil {
		panic(err)
	}
	return b
}

// attach binds the battler to a battle and builds its ability and item effects.
func (b *Battler) attach(l *Logic) {
	b.logic = l
	b.abilityEffect = newAbilityEffect(l, b, b.ability)
	b.itemEffect = newItemEffect(l, b, b.item)
}

func (b *Battler) String() string { return b.Name }

// HP returns the current HP.
func (b *Battler) HP() int { return b.hp }

// MaxHP returns the maximum HP.
func (b *Battler) MaxHP() int { return b.maxHP }

// HPRate returns hp/maxHP in [0, 1].
func (b *Battler) HPRate() float64 {
	if b.maxHP == 0 {
		return 0
	}
	return float64(b.hp) / float64(b.maxHP)
}

// IsDead reports whether the battler fainted.
func (b *Battler) IsDead() bool { return b.hp <= 0 }

// IsAlive reports whether the battler can still fight.
func (b *Battler) IsAlive() bool { return b.hp > 0 }

// OnField reports whether the battler currently holds a position.
func (b *Battler) OnField() bool { return b.Position != OffField }

// Types returns the current types (TypeNone for an empty slot).
func (b *Battler) Types() [2]data.TypeID { return b.types }

// HasType reports whether the battler currently has type t.
func (b *Battler) HasType(t data.TypeID) bool {
	return t != data.TypeNone && (b.types[0] == t || b.types[1] == t)
}

// Ability returns the ability symbol.
func (b *Battler) Ability() string { return b.ability }

// HasAbility reports whether the battler has one of the given abilities.
func (b *Battler) HasAbility(symbols ...string) bool {
	for _, s := range symbols {
		if b.ability == s {
			return true
		}
	}
	return false
}

// Item returns the held item symbol ("" = none).
func (b *Battler) Item() string { return b.item }

// ItemDef returns the held item definition.
func (b *Battler) ItemDef() (*data.ItemDef, bool) {
	if b.item == "" {
		return nil, false
	}
	return data.GetItem(b.item)
}

// HasItem reports whether the battler holds one of the given items.
func (b *Battler) HasItem(symbols ...string) bool {
	for _, s := range symbols {
		if b.item != "" && b.item == s {
			return true
		}
	}
	return false
}

// ConsumedItem returns the last item the battler consumed.
func (b *Battler) ConsumedItem() string { return b.consumedItem }

// Status returns the major status (nil = healthy).
func (b *Battler) Status() Status { return b.status }

// StatusSymbol returns the major status symbol ("" = healthy).
func (b *Battler) StatusSymbol() string {
	if b.status == nil {
		return ""
	}
	return b.status.Name()
}

// HasStatus reports whether the battler has one of the given major statuses.
func (b *Battler) HasStatus(symbols ...string) bool {
	cur := b.StatusSymbol()
	if cur == "" {
		return false
	}
	for _, s := range symbols {
		if s == cur {
			return true
		}
	}
	return false
}

// Stage returns the stage of stat.
func (b *Battler) Stage(stat data.Stat) int { return b.stages[stat] }

// Struggle returns the move used when nothing else is usable.
func (b *Battler) Struggle() *Move { return b.struggle }

// LastMove returns the last move the battler used.
func (b *Battler) LastMove() *Move { return b.lastMove }

// SwitchTurn returns the turn the battler last entered the field.
func (b *Battler) SwitchTurn() int { return b.switchTurn }

// Transformed reports whether the battler used Transform.
func (b *Battler) Transformed() bool { return b.transformed }

// MegaEvolved reports whether the battler is in its mega form.
func (b *Battler) MegaEvolved() bool { return b.megaEvolved }

// DamageHistory returns the hits taken, oldest first.
func (b *Battler) DamageHistory() []DamageRecord { return b.damageHistory }

// Grounded reports whether the battler touches the ground (terrains, Arena Trap).
func (b *Battler) Grounded() bool {
	if b.HasItem("iron_ball") {
		return true
	}
	if b.HasType(data.TypeFlying) || b.HasAbility("levitate") {
		return false
	}
	return !b.Effects.HasFunc(func(e Effect) bool {
		m, ok := e.(*ChargeMarker)
		return ok && m.outOfReach
	})
}

// stageMultiplier returns the multiplier of a stat stage for atk/dfe/spd/ats/dfs.
func stageMultiplier(stage int) float64 {
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}

// accuracyStageMultiplier returns the multiplier of an accuracy/evasion stage.
func accuracyStageMultiplier(stage int) float64 {
	if stage >= 0 {
		return float64(3+stage) / 3
	}
	return 3 / float64(3-stage)
}

func (b *Battler) rawStat(stat data.Stat) int {
	switch stat {
	case data.StatAtk:
		return data.CalcStat(b.base.Atk, b.Level)
	case data.StatDfe:
		return data.CalcStat(b.base.Dfe, b.Level)
	case data.StatSpd:
		return data.CalcStat(b.base.Spd, b.Level)
	case data.StatAts:
		return data.CalcStat(b.base.Ats, b.Level)
	case data.StatDfs:
		return data.CalcStat(b.base.Dfs, b.Level)
	default:
		return 0
	}
}

// StatBasis returns the stat after stage without owner modifiers.
func (b *Battler) StatBasis(stat data.Stat) int {
	return int(float64(b.rawStat(stat)) * stageMultiplier(b.stages[stat]))
}

func (b *Battler) modifiedStat(stat data.Stat, modifier func(Effect) float64) int {
	value := float64(b.StatBasis(stat))
	if b.logic != nil {
		value *= b.logic.foldMultiplier(modifier, b)
	}
	return max(1, int(value))
}

// Atk returns the attack including stage and owner modifiers.
func (b *Battler) Atk() int {
	return b.modifiedStat(data.StatAtk, func(e Effect) float64 { return e.AtkModifier() })
}

// Dfe returns the defense including stage and owner modifiers.
func (b *Battler) Dfe() int {
	return b.modifiedStat(data.StatDfe, func(e Effect) float64 { return e.DfeModifier() })
}

// Spd returns the speed including stage and owner modifiers.
func (b *Battler) Spd() int {
	return b.modifiedStat(data.StatSpd, func(e Effect) float64 { return e.SpdModifier() })
}

// Ats returns the special attack including stage and owner modifiers.
func (b *Battler) Ats() int {
	return b.modifiedStat(data.StatAts, func(e Effect) float64 { return e.AtsModifier() })
}

// Dfs returns the special defense including stage and owner modifiers.
func (b *Battler) Dfs() int {
	return b.modifiedStat(data.StatDfs, func(e Effect) float64 { return e.DfsModifier() })
}

// FindMove returns the battler's move with the given symbol.
func (b *Battler) FindMove(symbol string) *Move {
	for _, m := range b.Moves {
		if m.Symbol() == symbol {
			return m
		}
	}
	return nil
}

// transformSnapshot holds the battler's own form while it is transformed.
type transformSnapshot struct {
	types   [2]data.TypeID
	base    data.BaseStats
	moves   []*Move
	ability string
}

// resetOnSwitchOut clears what does not survive leaving the field.
func (b *Battler) resetOnSwitchOut() {
	if b.transformed {
		b.revertTransform()
	}
	b.stages = [data.StatCount]int{}
	b.Effects.KillAll()
	b.Effects = NewEffectsHandler()
	for _, m := range b.Moves {
		m.resetCharge()
	}
	b.lastMove = nil
	b.damageHistory = nil
}

// revertTransform restores the form saved by Transform. The ability comes
// back silently: the battler is already off the field.
func (b *Battler) revertTransform() {
	snap := b.preTransform
	b.types = snap.types
	b.base = snap.base
	b.Moves = snap.moves
	if old := b.abilityEffect; old != nil {
		old.Kill()
		notifyDelete(old)
	}
	b.ability = snap.ability
	b.abilityEffect = newAbilityEffect(b.logic, b, b.ability)
	b.preTransform = transformSnapshot{}
	b.transformed = false
}

// recordDamage stores a hit for Counter-like moves.
func (b *Battler) recordDamage(turn int, launcher *Battler, move *Move, damage int) {
	b.damageHistory = append(b.damageHistory, DamageRecord{Turn: turn, Launcher: launcher, Move: move, Damage: damage})
}

// lastDamageThisTurn returns the most recent hit of this turn matching pred.
func (b *Battler) lastDamageThisTurn(turn int, pred func(DamageRecord) bool) (DamageRecord, bool) {
	for i := len(b.damageHistory) - 1; i >= 0; i-- {
		rec := b.damageHistory[i]
		if rec.Turn != turn {
			break
		}
		if pred(rec) {
			return rec, true
		}
	}
	return DamageRecord{}, false
}
