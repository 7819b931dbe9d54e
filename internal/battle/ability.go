package battle

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/data"
)

var abilityRegistry = map[string]func(l *Logic, owner *Battler) Effect{}

// RegisterAbility registers the effect of an ability by symbol.
// Abilities without a registered effect are only checked by name.
func RegisterAbility(symbol string, factory func(l *Logic, owner *Battler) Effect) {
	abilityRegistry[symbol] = factory
}

// newAbilityEffect returns nil for abilities without effect.
func newAbilityEffect(l *Logic, owner *Battler, symbol string) Effect {
	factory, ok := abilityRegistry[symbol]
	if !ok {
		return nil
	}
	return factory(l, owner)
}

func abilityBase(l *Logic, owner *Battler) BattlerEffect {
	return NewBattlerEffect(l, owner, owner.ability, Infinity)
}

// statusImmunityAbility prevents a set of statuses on its owner (Limber, Insomnia...).
type statusImmunityAbility struct {
	BattlerEffect
	statuses []string
}

func (a *statusImmunityAbility) OnStatusPrevention(h *StatusChangeHandler, status string, target, _ *Battler, _ *Move) HookResult {
	if target != a.target || !lo.Contains(a.statuses, status) {
		return Continue
	}
	return h.preventWithAbility(target, fmt.Sprintf("%s's %s prevents it!", target.Name, displayName(a.name)))
}

func statusImmunity(statuses ...string) func(*Logic, *Battler) Effect {
	return func(l *Logic, owner *Battler) Effect {
		return &statusImmunityAbility{BattlerEffect: abilityBase(l, owner), statuses: statuses}
	}
}

// statusBoostAbility multiplies a stat while its owner has a major status (Guts, Quick Feet).
type statusBoostAbility struct {
	BattlerEffect
	stat data.Stat
}

func (a *statusBoostAbility) boost(stat data.Stat) float64 {
	if a.stat == stat && a.target.status != nil {
		return 1.5
	}
	return 1
}

func (a *statusBoostAbility) AtkModifier() float64 { return a.boost(data.StatAtk) }
func (a *statusBoostAbility) SpdModifier() float64 { return a.boost(data.StatSpd) }

// weatherSpeedAbility doubles speed in some weathers (Swift Swim, Chlorophyll...).
type weatherSpeedAbility struct {
	BattlerEffect
	weathers []string
}

func (a *weatherSpeedAbility) SpdModifier() float64 {
	if a.logic.HasWeather(a.weathers...) {
		return 2
	}
	return 1
}

// weatherEvasionAbility lowers the accuracy of moves against its owner (Sand Veil, Snow Cloak).
type weatherEvasionAbility struct {
	BattlerEffect
	weathers []string
}

func (a *weatherEvasionAbility) ChanceOfHitMultiplier(_, target *Battler, _ *Move) float64 {
	if target == a.target && a.logic.HasWeather(a.weathers...) {
		return 0.8
	}
	return 1
}

// weatherSetterAbility starts a weather when its owner enters the field (Drizzle, Drought...).
type weatherSetterAbility struct {
	BattlerEffect
	weather string
}

func (a *weatherSetterAbility) OnSwitchEvent(h *SwitchHandler, _, with *Battler) {
	if with != a.target {
		return
	}
	l := h.logic
	if l.WeatherSymbol() == a.weather {
		return
	}
	l.scene.ShowAbility(with)
	l.weatherChange.ChangeWeather(a.weather, l.weatherChange.WeatherDuration(with, a.weather))
}

// primalAbility holds a primal weather while its owner stays on the field.
type primalAbility struct {
	weatherSetterAbility
	release string
}

func (a *primalAbility) OnSwitchEvent(h *SwitchHandler, who, with *Battler) {
	if who == a.target {
		a.releaseWeather()
		return
	}
	a.weatherSetterAbility.OnSwitchEvent(h, who, with)
}

func (a *primalAbility) OnPostDamageDeath(_ *DamageHandler, _ int, target, _ *Battler, _ *Move) {
	if target == a.target {
		a.releaseWeather()
	}
}

func (a *primalAbility) releaseWeather() {
	l := a.logic
	if l.WeatherSymbol() != a.weather {
		return
	}
	holder := lo.SomeBy(l.AliveBattlers(), func(b *Battler) bool {
		return b != a.target && b.HasAbility(a.name)
	})
	if !holder {
		l.weatherChange.EndWeather(a.release)
	}
}

// typePinchAbility boosts moves of one type at 1/3 HP or less (Blaze, Torrent, Overgrow).
type typePinchAbility struct {
	BattlerEffect
	typ data.TypeID
}

func (a *typePinchAbility) BasePowerMultiplier(user, target *Battler, move *Move) float64 {
	if user != a.target || user.HP()*3 > user.MaxHP() {
		return 1
	}
	if a.logic.MoveType(user, target, move) == a.typ {
		return 1.5
	}
	return 1
}

type technician struct{ BattlerEffect }

func (a *technician) BasePowerMultiplier(user, target *Battler, move *Move) float64 {
	if user == a.target && move.IsDamaging() && a.logic.MovePower(user, target, move) <= 60 {
		return 1.5
	}
	return 1
}

type sereneGrace struct{ BattlerEffect }

func (a *sereneGrace) EffectChanceModifier(user *Battler, _ *Move) float64 {
	if user == a.target {
		return 2
	}
	return 1
}

type sandForce struct{ BattlerEffect }

func (a *sandForce) BasePowerMultiplier(user, target *Battler, move *Move) float64 {
	if user != a.target || !a.logic.HasWeather(WeatherSandstorm) {
		return 1
	}
	switch a.logic.MoveType(user, target, move) {
	case data.TypeRock, data.TypeGround, data.TypeSteel:
		return 1.3
	}
	return 1
}

type toughClaws struct{ BattlerEffect }

func (a *toughClaws) BasePowerMultiplier(user, _ *Battler, move *Move) float64 {
	if user == a.target && move.Has(data.FlagContact) {
		return 1.3
	}
	return 1
}

type thickFat struct{ BattlerEffect }

func (a *thickFat) SpAtkMultiplier(user, target *Battler, move *Move) float64 {
	if target != a.target {
		return 1
	}
	switch a.logic.MoveType(user, target, move) {
	case data.TypeFire, data.TypeIce:
		return 0.5
	}
	return 1
}

type solarPower struct{ BattlerEffect }

func (a *solarPower) AtsModifier() float64 {
	if a.logic.HasWeather(WeatherSunny, WeatherHardSun) {
		return 1.5
	}
	return 1
}

type iceBody struct{ BattlerEffect }

func (a *iceBody) OnEndTurnEvent(l *Logic, _ Scene, _ []*Battler) {
	if a.target.IsAlive() && a.target.OnField() && l.HasWeather(WeatherHail, WeatherSnow) {
		l.damage.Heal(a.target, max(1, a.target.MaxHP()/16), fmt.Sprintf("%s's Ice Body restored its HP.", a.target.Name))
	}
}

type rainDish struct{ BattlerEffect }

func (a *rainDish) OnEndTurnEvent(l *Logic, _ Scene, _ []*Battler) {
	if a.target.IsAlive() && a.target.OnField() && l.HasWeather(WeatherRain, WeatherHardRain) {
		l.damage.Heal(a.target, max(1, a.target.MaxHP()/16), fmt.Sprintf("%s's Rain Dish restored its HP.", a.target.Name))
	}
}

type magicGuard struct{ BattlerEffect }

// OnDamagePrevention blocks indirect damage (statuses, weather, recoil).
func (a *magicGuard) OnDamagePrevention(_ *DamageHandler, hp int, target, launcher *Battler, move *Move) (HookResult, int) {
	if target == a.target && move == nil && launcher != target {
		return Prevent, hp
	}
	return Continue, hp
}

type noGuard struct{ BattlerEffect }

func (a *noGuard) OnPreAccuracyCheck(_ *Logic, user, target *Battler, _ *Move) AccuracyOverride {
	if user == a.target || target == a.target {
		return AccuracyHit
	}
	return AccuracyDefault
}

type levitate struct{ BattlerEffect }

func (a *levitate) OnMoveAbilityImmunity(user, target *Battler, move *Move) bool {
	return target == a.target && move.IsDamaging() && a.logic.MoveType(user, target, move) == data.TypeGround
}

type overcoat struct{ BattlerEffect }

func (a *overcoat) OnMovePreventionTarget(l *Logic, user, target *Battler, move *Move) HookResult {
	if target != a.target || user == target || !move.Has(data.FlagPowder) {
		return Continue
	}
	l.scene.ShowAbility(target)
	l.DisplayMessage("It doesn't affect %s...", target.Name)
	return Prevent
}

type stickyHold struct{ BattlerEffect }

func (a *stickyHold) OnItemChangePrevention(h *ItemChangeHandler, _ string, target, launcher *Battler, _ *Move) HookResult {
	if target != a.target || launcher == nil || launcher == target {
		return Continue
	}
	return h.preventWithAbility(target, fmt.Sprintf("%s's item cannot be removed!", target.Name))
}

// lockedAbility cannot be replaced (Multitype, RKS System).
type lockedAbility struct{ BattlerEffect }

func (a *lockedAbility) OnAbilityChangePrevention(h *AbilityChangeHandler, _ string, target, _ *Battler, _ *Move) HookResult {
	if target != a.target {
		return Continue
	}
	return h.PreventChange("But it failed!")
}

type simple struct{ BattlerEffect }

func (a *simple) OnStatChange(_ *StatChangeHandler, _ data.Stat, power int, target, _ *Battler, _ *Move) int {
	if target == a.target {
		return power * 2
	}
	return power
}

type contrary struct{ BattlerEffect }

func (a *contrary) OnStatChange(_ *StatChangeHandler, _ data.Stat, power int, target, _ *Battler, _ *Move) int {
	if target == a.target {
		return -power
	}
	return power
}

type keenEye struct{ BattlerEffect }

func (a *keenEye) OnStatDecreasePrevention(h *StatChangeHandler, stat data.Stat, target, launcher *Battler, _ *Move) HookResult {
	if target != a.target || stat != data.StatAcc || launcher == target {
		return Continue
	}
	return h.preventWithAbility(target, fmt.Sprintf("%s's Keen Eye prevents accuracy loss!", target.Name))
}

type arenaTrap struct{ BattlerEffect }

func (a *arenaTrap) OnSwitchPrevention(h *SwitchHandler, who, _ *Battler) HookResult {
	if who.Bank == a.target.Bank || !a.target.OnField() || !who.Grounded() {
		return Continue
	}
	return h.PreventChange(fmt.Sprintf("%s can't escape!", who.Name))
}

type sturdy struct{ BattlerEffect }

func (a *sturdy) OnDamagePrevention(h *DamageHandler, hp int, target, _ *Battler, move *Move) (HookResult, int) {
	if target != a.target || move == nil || target.HP() != target.MaxHP() || hp < target.HP() {
		return Continue, hp
	}
	h.logic.scene.ShowAbility(target)
	h.logic.DisplayMessage("%s endured the hit!", target.Name)
	return Continue, target.HP() - 1
}

// contactPunisher reacts to contact moves hitting its owner (Static, Rough Skin).
type contactPunisher struct {
	BattlerEffect
	react func(l *Logic, owner, attacker *Battler, move *Move)
}

func (a *contactPunisher) OnPostDamage(h *DamageHandler, _ int, target, launcher *Battler, move *Move) {
	if target != a.target || launcher == nil || launcher == target || launcher.IsDead() || move == nil {
		return
	}
	if move.Has(data.FlagContact) {
		a.react(h.logic, target, launcher, move)
	}
}

func staticReaction(l *Logic, owner, attacker *Battler, _ *Move) {
	if l.rng.Chance(30) && l.statusChange.StatusAppliable(StatusParalysis, attacker, owner, nil) {
		l.scene.ShowAbility(owner)
		l.statusChange.StatusChange(StatusParalysis, attacker, owner, nil)
	}
}

func roughSkinReaction(l *Logic, owner, attacker *Battler, _ *Move) {
	l.scene.ShowAbility(owner)
	l.DisplayMessage("%s was hurt!", attacker.Name)
	l.damage.DamageChange(max(1, attacker.MaxHP()/8), attacker, nil, nil)
}

// imposter transforms its owner into the foe facing it when it enters the field.
type imposter struct{ BattlerEffect }

func (a *imposter) OnSwitchEvent(h *SwitchHandler, _, with *Battler) {
	if with != a.target {
		return
	}
	l := h.logic
	foe := l.Battler(1-with.Bank, with.Position)
	if foe == nil || foe.IsDead() {
		foes := l.Foes(with)
		if len(foes) == 0 {
			return
		}
		foe = foes[0]
	}
	if l.transform.CanTransform(with, foe) {
		l.scene.ShowAbility(with)
		l.transform.Transform(with, foe)
	}
}

// plain adapts the constructor of an ability without parameters.
func plain[P Effect](wrap func(BattlerEffect) P) func(*Logic, *Battler) Effect {
	return func(l *Logic, owner *Battler) Effect { return wrap(abilityBase(l, owner)) }
}

func init() {
	RegisterAbility("limber", statusImmunity(StatusParalysis))
	RegisterAbility("insomnia", statusImmunity(StatusSleep))
	RegisterAbility("vital_spirit", statusImmunity(StatusSleep))
	RegisterAbility("immunity", statusImmunity(StatusPoison, StatusToxic))
	RegisterAbility("water_veil", statusImmunity(StatusBurn))
	RegisterAbility("magma_armor", statusImmunity(StatusFreeze))
	RegisterAbility("own_tempo", statusImmunity(StatusConfusion))
	RegisterAbility("inner_focus", statusImmunity(StatusFlinch))

	RegisterAbility("guts", func(l *Logic, o *Battler) Effect {
		return &statusBoostAbility{BattlerEffect: abilityBase(l, o), stat: data.StatAtk}
	})
	RegisterAbility("quick_feet", func(l *Logic, o *Battler) Effect {
		return &statusBoostAbility{BattlerEffect: abilityBase(l, o), stat: data.StatSpd}
	})

	for sym, weathers := range map[string][]string{
		"swift_swim":  {WeatherRain, WeatherHardRain},
		"chlorophyll": {WeatherSunny, WeatherHardSun},
		"sand_rush":   {WeatherSandstorm},
		"slush_rush":  {WeatherHail, WeatherSnow},
	} {
		RegisterAbility(sym, func(l *Logic, o *Battler) Effect {
			return &weatherSpeedAbility{BattlerEffect: abilityBase(l, o), weathers: weathers}
		})
	}
	RegisterAbility("sand_veil", func(l *Logic, o *Battler) Effect {
		return &weatherEvasionAbility{BattlerEffect: abilityBase(l, o), weathers: []string{WeatherSandstorm}}
	})
	RegisterAbility("snow_cloak", func(l *Logic, o *Battler) Effect {
		return &weatherEvasionAbility{BattlerEffect: abilityBase(l, o), weathers: []string{WeatherHail, WeatherSnow}}
	})

	for sym, weather := range map[string]string{
		"drizzle":      WeatherRain,
		"drought":      WeatherSunny,
		"sand_stream":  WeatherSandstorm,
		"snow_warning": WeatherSnow,
	} {
		RegisterAbility(sym, func(l *Logic, o *Battler) Effect {
			return &weatherSetterAbility{BattlerEffect: abilityBase(l, o), weather: weather}
		})
	}
	for sym, p := range map[string][2]string{
		"primordial_sea": {WeatherHardRain, "The heavy rain has lifted!"},
		"desolate_land":  {WeatherHardSun, "The extremely harsh sunlight faded!"},
		"delta_stream":   {WeatherStrongWinds, "The mysterious strong winds have dissipated!"},
	} {
		RegisterAbility(sym, func(l *Logic, o *Battler) Effect {
			return &primalAbility{
				weatherSetterAbility: weatherSetterAbility{BattlerEffect: abilityBase(l, o), weather: p[0]},
				release:              p[1],
			}
		})
	}

	for sym, typ := range map[string]data.TypeID{
		"blaze":    data.TypeFire,
		"torrent":  data.TypeWater,
		"overgrow": data.TypeGrass,
	} {
		RegisterAbility(sym, func(l *Logic, o *Battler) Effect {
			return &typePinchAbility{BattlerEffect: abilityBase(l, o), typ: typ}
		})
	}

	RegisterAbility("technician", plain(func(b BattlerEffect) *technician { return &technician{b} }))
	RegisterAbility("serene_grace", plain(func(b BattlerEffect) *sereneGrace { return &sereneGrace{b} }))
	RegisterAbility("sand_force", plain(func(b BattlerEffect) *sandForce { return &sandForce{b} }))
	RegisterAbility("tough_claws", plain(func(b BattlerEffect) *toughClaws { return &toughClaws{b} }))
	RegisterAbility("thick_fat", plain(func(b BattlerEffect) *thickFat { return &thickFat{b} }))
	RegisterAbility("solar_power", plain(func(b BattlerEffect) *solarPower { return &solarPower{b} }))
	RegisterAbility("ice_body", plain(func(b BattlerEffect) *iceBody { return &iceBody{b} }))
	RegisterAbility("rain_dish", plain(func(b BattlerEffect) *rainDish { return &rainDish{b} }))
	RegisterAbility("magic_guard", plain(func(b BattlerEffect) *magicGuard { return &magicGuard{b} }))
	RegisterAbility("no_guard", plain(func(b BattlerEffect) *noGuard { return &noGuard{b} }))
	RegisterAbility("levitate", plain(func(b BattlerEffect) *levitate { return &levitate{b} }))
	RegisterAbility("overcoat", plain(func(b BattlerEffect) *overcoat { return &overcoat{b} }))
	RegisterAbility("sticky_hold", plain(func(b BattlerEffect) *stickyHold { return &stickyHold{b} }))
	RegisterAbility("multitype", plain(func(b BattlerEffect) *lockedAbility { return &lockedAbility{b} }))
	RegisterAbility("rks_system", plain(func(b BattlerEffect) *lockedAbility { return &lockedAbility{b} }))
	RegisterAbility("simple", plain(func(b BattlerEffect) *simple { return &simple{b} }))
	RegisterAbility("contrary", plain(func(b BattlerEffect) *contrary { return &contrary{b} }))
	RegisterAbility("keen_eye", plain(func(b BattlerEffect) *keenEye { return &keenEye{b} }))
	RegisterAbility("arena_trap", plain(func(b BattlerEffect) *arenaTrap { return &arenaTrap{b} }))
	RegisterAbility("sturdy", plain(func(b BattlerEffect) *sturdy { return &sturdy{b} }))
	RegisterAbility("imposter", plain(func(b BattlerEffect) *imposter { return &imposter{b} }))
	RegisterAbility("static", func(l *Logic, o *Battler) Effect {
		return &contactPunisher{BattlerEffect: abilityBase(l, o), react: staticReaction}
	})
	RegisterAbility("rough_skin", func(l *Logic, o *Battler) Effect {
		return &contactPunisher{BattlerEffect: abilityBase(l, o), react: roughSkinReaction}
	})
}
