package battle

import (
	"math"

	"github.com/udisondev/monbattle/internal/data"
)

// Infinity is the counter of effects that never expire on their own.
const Infinity = math.MaxInt

// EffectBase supplies the neutral default of every hook.
// Embed it (by value) in concrete effects and override what changes.
type EffectBase struct {
	logic   *Logic
	name    string
	counter int
	killed  bool
	deleted bool
}

// NewEffectBase creates a base living for turns end-of-turn updates.
func NewEffectBase(l *Logic, name string, turns int) EffectBase {
	return EffectBase{logic: l, name: name, counter: turns}
}

func (e *EffectBase) base() *EffectBase { return e }

// Logic returns the battle the effect belongs to.
func (e *EffectBase) Logic() *Logic { return e.logic }

func (e *EffectBase) Name() string         { return e.name }
func (e *EffectBase) Counter() int         { return e.counter }
func (e *EffectBase) SetCounter(turns int) { e.counter = turns }

func (e *EffectBase) UpdateCounter() {
	if e.counter != Infinity {
		e.counter--
	}
}

func (e *EffectBase) Dead() bool {
	return e.killed || e.counter <= 0
}

func (e *EffectBase) Kill()     { e.killed = true }
func (e *EffectBase) OnDelete() {}

func (e *EffectBase) OnStatIncreasePrevention(*StatChangeHandler, data.Stat, *Battler, *Battler, *Move) HookResult {
	return Continue
}

func (e *EffectBase) OnStatDecreasePrevention(*StatChangeHandler, data.Stat, *Battler, *Battler, *Move) HookResult {
	return Continue
}

func (e *EffectBase) OnStatChange(_ *StatChangeHandler, _ data.Stat, power int, _, _ *Battler, _ *Move) int {
	return power
}

func (e *EffectBase) OnStatChangePost(*StatChangeHandler, data.Stat, int, *Battler, *Battler, *Move) {
}

func (e *EffectBase) OnItemChangePrevention(*ItemChangeHandler, string, *Battler, *Battler, *Move) HookResult {
	return Continue
}

func (e *EffectBase) OnPreItemChange(*ItemChangeHandler, string, *Battler, *Battler, *Move)  {}
func (e *EffectBase) OnPostItemChange(*ItemChangeHandler, string, *Battler, *Battler, *Move) {}

func (e *EffectBase) OnAbilityChangePrevention(*AbilityChangeHandler, string, *Battler, *Battler, *Move) HookResult {
	return Continue
}

func (e *EffectBase) OnPreAbilityChange(*AbilityChangeHandler, string, *Battler, *Battler, *Move)  {}
func (e *EffectBase) OnPostAbilityChange(*AbilityChangeHandler, string, *Battler, *Battler, *Move) {}

func (e *EffectBase) OnStatusPrevention(*StatusChangeHandler, string, *Battler, *Battler, *Move) HookResult {
	return Continue
}

func (e *EffectBase) OnPostStatusChange(*StatusChangeHandler, string, *Battler, *Battler, *Move) {}

func (e *EffectBase) OnDamagePrevention(_ *DamageHandler, hp int, _, _ *Battler, _ *Move) (HookResult, int) {
	return Continue, hp
}

func (e *EffectBase) OnPostDamage(*DamageHandler, int, *Battler, *Battler, *Move)      {}
func (e *EffectBase) OnPostDamageDeath(*DamageHandler, int, *Battler, *Battler, *Move) {}

func (e *EffectBase) OnDrainPrevention(*DamageHandler, int, *Battler, *Battler, *Move) HookResult {
	return Continue
}

func (e *EffectBase) OnPreDrain(_ *DamageHandler, hp int, _, _ *Battler, _ *Move) int { return hp }

func (e *EffectBase) OnSwitchPassthrough(*SwitchHandler, *Battler, *Battler) bool { return false }

func (e *EffectBase) OnSwitchPrevention(*SwitchHandler, *Battler, *Battler) HookResult {
	return Continue
}

func (e *EffectBase) OnSwitchEvent(*SwitchHandler, *Battler, *Battler)          {}
func (e *EffectBase) OnEndTurnEvent(*Logic, Scene, []*Battler)                  {}
func (e *EffectBase) OnPostWeatherChange(*WeatherChangeHandler, string, string) {}

func (e *EffectBase) OnWeatherPrevention(*WeatherChangeHandler, string, string) HookResult {
	return Continue
}

func (e *EffectBase) OnFTerrainPrevention(*FTerrainChangeHandler, string, string) HookResult {
	return Continue
}

func (e *EffectBase) OnPostFTerrainChange(*FTerrainChangeHandler, string, string) {}

func (e *EffectBase) OnPreAccuracyCheck(*Logic, *Battler, *Battler, *Move) AccuracyOverride {
	return AccuracyDefault
}

func (e *EffectBase) OnPostAccuracyCheck(*Logic, *Battler, *Battler, *Move, bool) {}

func (e *EffectBase) OnMovePreventionUser(*Logic, *Battler, []*Battler, *Move) HookResult {
	return Continue
}

func (e *EffectBase) OnMovePreventionTarget(*Logic, *Battler, *Battler, *Move) HookResult {
	return Continue
}

func (e *EffectBase) OnMoveTypeChange(_, _ *Battler, _ *Move, typ data.TypeID) data.TypeID {
	return typ
}

func (e *EffectBase) OnMoveDisabledCheck(*Battler, *Move) bool { return false }

func (e *EffectBase) OnMovePriorityChange(_ *Battler, priority int, _ *Move) int { return priority }

func (e *EffectBase) OnMoveAbilityImmunity(*Battler, *Battler, *Move) bool { return false }
func (e *EffectBase) OnTransformEvent(*TransformHandler, *Battler)         {}

func (e *EffectBase) OnSingleTypeMultiplierOverwrite(*Battler, data.TypeID, data.TypeID, *Move) (float64, bool) {
	return 0, false
}

func (e *EffectBase) ForceNextMove() (ForcedMove, bool) { return ForcedMove{}, false }

func (e *EffectBase) BasePowerMultiplier(*Battler, *Battler, *Move) float64   { return 1 }
func (e *EffectBase) SpAtkMultiplier(*Battler, *Battler, *Move) float64       { return 1 }
func (e *EffectBase) SpDefMultiplier(*Battler, *Battler, *Move) float64       { return 1 }
func (e *EffectBase) Mod1Multiplier(*Battler, *Battler, *Move) float64        { return 1 }
func (e *EffectBase) Mod2Multiplier(*Battler, *Battler, *Move) float64        { return 1 }
func (e *EffectBase) Mod3Multiplier(*Battler, *Battler, *Move) float64        { return 1 }
func (e *EffectBase) EffectChanceModifier(*Battler, *Move) float64            { return 1 }
func (e *EffectBase) ChanceOfHitMultiplier(*Battler, *Battler, *Move) float64 { return 1 }

func (e *EffectBase) AtkModifier() float64 { return 1 }
func (e *EffectBase) DfeModifier() float64 { return 1 }
func (e *EffectBase) SpdModifier() float64 { return 1 }
func (e *EffectBase) AtsModifier() float64 { return 1 }
func (e *EffectBase) DfsModifier() float64 { return 1 }

// BattlerEffect is an effect tied to one battler (statuses, abilities, items, volatiles).
type BattlerEffect struct {
	EffectBase
	target *Battler
}

// NewBattlerEffect creates a base tied to target.
func NewBattlerEffect(l *Logic, target *Battler, name string, turns int) BattlerEffect {
	return BattlerEffect{EffectBase: NewEffectBase(l, name, turns), target: target}
}

// Target returns the battler the effect is tied to.
func (e *BattlerEffect) Target() *Battler { return e.target }

// PositionEffect is an effect tied to a bank (position < 0) or to one position of a bank.
type PositionEffect struct {
	EffectBase
	bank     int
	position int
}

// NewPositionEffect creates a base tied to bank/position. Use position -1 for a whole bank.
func NewPositionEffect(l *Logic, bank, position int, name string, turns int) PositionEffect {
	return PositionEffect{EffectBase: NewEffectBase(l, name, turns), bank: bank, position: position}
}

func (e *PositionEffect) Bank() int     { return e.bank }
func (e *PositionEffect) Position() int { return e.position }

// covers reports whether b stands on the bank (and position) of the effect.
func (e *PositionEffect) covers(b *Battler) bool {
	if b == nil || b.Bank != e.bank {
		return false
	}
	return e.position < 0 || b.Position == e.position
}
