package battle

import "github.com/udisondev/monbattle/internal/data"

// HookResult is the answer of a prevention hook.
type HookResult uint8

const (
	// Continue lets the operation go on (default of every prevention hook).
	Continue HookResult = iota
	// Prevent stops the operation. The first effect returning Prevent
	// short-circuits the remaining effects of the same pass.
	Prevent
)

func (r HookResult) String() string {
	if r == Prevent {
		return "prevent"
	}
	return "continue"
}

// AccuracyOverride is the answer of OnPreAccuracyCheck.
type AccuracyOverride uint8

const (
	AccuracyDefault AccuracyOverride = iota // roll accuracy normally
	AccuracyHit                             // move always hits (No Guard)
	AccuracyMiss                            // move always misses (target out of reach)
)

// ForcedMove is the action an effect imposes on its owner for the next turn.
type ForcedMove struct {
	Move    *Move
	Targets []*Battler
}

// Effect is a hookable battle modifier tied to a battler, a bank/position or the field.
//
// Every hook has a neutral default in EffectBase: prevention hooks return Continue,
// rewrite hooks return their input, multipliers return 1.0. Concrete effects embed
// EffectBase (or BattlerEffect / PositionEffect) and override only what they change.
//
// Dispatch rules (see Logic.eachEffect):
//   - prevention hooks: the first Prevent wins, remaining effects are skipped
//   - rewrite hooks (OnStatChange, OnDamagePrevention, OnPreDrain, OnMoveTypeChange,
//     OnMovePriorityChange): the value is threaded through every effect in order
//   - multiplier hooks: every live effect is folded by multiplication in order
type Effect interface {
	// Name is the db symbol of the effect.
	Name() string
	// Counter returns the remaining turns (Infinity = never expires).
	Counter() int
	SetCounter(turns int)
	// UpdateCounter is called once per end of turn.
	UpdateCounter()
	// Dead reports whether the effect was killed or its counter ran out. Pure.
	Dead() bool
	// Kill marks the effect dead. OnDelete follows exactly once when it is purged.
	Kill()
	// OnDelete is the one-shot notification sent when a dead effect is removed.
	OnDelete()

	// Stat change hooks
	OnStatIncreasePrevention(h *StatChangeHandler, stat data.Stat, target, launcher *Battler, move *Move) HookResult
	OnStatDecreasePrevention(h *StatChangeHandler, stat data.Stat, target, launcher *Battler, move *Move) HookResult
	OnStatChange(h *StatChangeHandler, stat data.Stat, power int, target, launcher *Battler, move *Move) int
	OnStatChangePost(h *StatChangeHandler, stat data.Stat, power int, target, launcher *Battler, move *Move)

	// Item change hooks
	OnItemChangePrevention(h *ItemChangeHandler, item string, target, launcher *Battler, move *Move) HookResult
	OnPreItemChange(h *ItemChangeHandler, item string, target, launcher *Battler, move *Move)
	OnPostItemChange(h *ItemChangeHandler, item string, target, launcher *Battler, move *Move)

	// Ability change hooks
	OnAbilityChangePrevention(h *AbilityChangeHandler, ability string, target, launcher *Battler, move *Move) HookResult
	OnPreAbilityChange(h *AbilityChangeHandler, ability string, target, launcher *Battler, move *Move)
	OnPostAbilityChange(h *AbilityChangeHandler, ability string, target, launcher *Battler, move *Move)

	// Status hooks
	OnStatusPrevention(h *StatusChangeHandler, status string, target, launcher *Battler, move *Move) HookResult
	OnPostStatusChange(h *StatusChangeHandler, status string, target, launcher *Battler, move *Move)

	// Damage hooks. OnDamagePrevention may rewrite the HP about to be lost.
	OnDamagePrevention(h *DamageHandler, hp int, target, launcher *Battler, move *Move) (HookResult, int)
	OnPostDamage(h *DamageHandler, hp int, target, launcher *Battler, move *Move)
	OnPostDamageDeath(h *DamageHandler, hp int, target, launcher *Battler, move *Move)
	OnDrainPrevention(h *DamageHandler, hp int, target, launcher *Battler, move *Move) HookResult
	OnPreDrain(h *DamageHandler, hp int, target, launcher *Battler, move *Move) int

	// Switch hooks
	OnSwitchPassthrough(h *SwitchHandler, who, with *Battler) bool
	OnSwitchPrevention(h *SwitchHandler, who, with *Battler) HookResult
	OnSwitchEvent(h *SwitchHandler, who, with *Battler)

	OnEndTurnEvent(l *Logic, scene Scene, battlers []*Battler)

	// Field hooks
	OnWeatherPrevention(h *WeatherChangeHandler, weather, last string) HookResult
	OnPostWeatherChange(h *WeatherChangeHandler, weather, last string)
	OnFTerrainPrevention(h *FTerrainChangeHandler, terrain, last string) HookResult
	OnPostFTerrainChange(h *FTerrainChangeHandler, terrain, last string)

	// Accuracy hooks
	OnPreAccuracyCheck(l *Logic, user, target *Battler, move *Move) AccuracyOverride
	OnPostAccuracyCheck(l *Logic, user, target *Battler, move *Move, hit bool)

	// Move hooks
	OnMovePreventionUser(l *Logic, user *Battler, targets []*Battler, move *Move) HookResult
	OnMovePreventionTarget(l *Logic, user, target *Battler, move *Move) HookResult
	OnMoveTypeChange(user, target *Battler, move *Move, typ data.TypeID) data.TypeID
	OnMoveDisabledCheck(user *Battler, move *Move) bool
	OnMovePriorityChange(user *Battler, priority int, move *Move) int
	OnMoveAbilityImmunity(user, target *Battler, move *Move) bool
	OnTransformEvent(h *TransformHandler, target *Battler)
	OnSingleTypeMultiplierOverwrite(target *Battler, targetType, moveType data.TypeID, move *Move) (float64, bool)
	ForceNextMove() (ForcedMove, bool)

	// Damage formula multipliers
	BasePowerMultiplier(user, target *Battler, move *Move) float64
	SpAtkMultiplier(user, target *Battler, move *Move) float64
	SpDefMultiplier(user, target *Battler, move *Move) float64
	Mod1Multiplier(user, target *Battler, move *Move) float64
	Mod2Multiplier(user, target *Battler, move *Move) float64
	Mod3Multiplier(user, target *Battler, move *Move) float64
	EffectChanceModifier(user *Battler, move *Move) float64
	ChanceOfHitMultiplier(user, target *Battler, move *Move) float64

	// Owner stat modifiers
	AtkModifier() float64
	DfeModifier() float64
	SpdModifier() float64
	AtsModifier() float64
	DfsModifier() float64

	base() *EffectBase
}
