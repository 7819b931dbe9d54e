package battle

import (
	"log/slog"

	"github.com/udisondev/monbattle/internal/data"
)

// DamageBreakdown holds every intermediate value of one damage computation.
type DamageBreakdown struct {
	BasePower int
	Attack    int
	Defense   int
	Base      int
	Mod1      float64
	Mod2      float64
	Mod3      float64
	CH        float64
	STAB      float64
	TypeMod   float64
	Random    int
	Final     int
}

// Damage roll bounds (percent).
const (
	minDamageRoll = 85
	maxDamageRoll = 100
)

// critStageChances are the 1/n denominators of the critical stages.
var critStageChances = [...]int{24, 8, 2, 1}

// calcDamage computes the damage of move against target with the given base
// power. random is the damage roll in [85, 100].
//
// Each step truncates like the cartridge formula:
// ((((2L/5+2) * BP * A/D) / 50) * Mod1 + 2) * CH * Mod2 * R/100 * STAB * Type * Mod3.
func (l *Logic) calcDamage(user, target *Battler, m *Move, power int, crit bool, random int) DamageBreakdown {
	bd := DamageBreakdown{Random: random, CH: 1}
	bd.TypeMod = l.TypeModifier(user, target, m)
	if bd.TypeMod == 0 || power <= 0 {
		return bd
	}

	bd.BasePower = max(1, int(float64(power)*
		l.foldMultiplier(func(e Effect) float64 { return e.BasePowerMultiplier(user, target, m) }, user, target)))
	bd.Attack = max(1, int(float64(l.attackStat(user, m, crit))*
		l.foldMultiplier(func(e Effect) float64 { return e.SpAtkMultiplier(user, target, m) }, user, target)))
	bd.Defense = max(1, int(float64(l.defenseStat(target, m, crit))*
		l.foldMultiplier(func(e Effect) float64 { return e.SpDefMultiplier(user, target, m) }, user, target)))

	bd.Base = (user.Level*2/5 + 2) * bd.BasePower * bd.Attack / bd.Defense / 50

	bd.Mod1 = l.foldMultiplier(func(e Effect) float64 { return e.Mod1Multiplier(user, target, m) }, user, target)
	bd.Mod2 = l.foldMultiplier(func(e Effect) float64 { return e.Mod2Multiplier(user, target, m) }, user, target)
	bd.Mod3 = l.foldMultiplier(func(e Effect) float64 { return e.Mod3Multiplier(user, target, m) }, user, target)
	if crit {
		bd.CH = 2
	}
	bd.STAB = 1
	if typ := l.MoveType(user, target, m); typ != data.TypeNone && user.HasType(typ) {
		bd.STAB = 1.5
		if user.HasAbility("adaptability") {
			bd.STAB = 2
		}
	}

	dmg := int(float64(bd.Base) * bd.Mod1)
	dmg += 2
	dmg = int(float64(dmg) * bd.CH)
	dmg = int(float64(dmg) * bd.Mod2)
	dmg = dmg * random / 100
	dmg = int(float64(dmg) * bd.STAB)
	dmg = int(float64(dmg) * bd.TypeMod)
	dmg = int(float64(dmg) * bd.Mod3)
	bd.Final = max(1, dmg)
	return bd
}

// attackStat returns the attacking stat of user for move. A critical hit
// ignores the negative stages.
func (l *Logic) attackStat(user *Battler, m *Move, crit bool) int {
	stat := data.StatAts
	mod := func(e Effect) float64 { return e.AtsModifier() }
	if m.IsPhysical() {
		stat = data.StatAtk
		mod = func(e Effect) float64 { return e.AtkModifier() }
	}
	stage := user.stages[stat]
	if crit {
		stage = max(0, stage)
	}
	return max(1, int(float64(user.rawStat(stat))*stageMultiplier(stage)*l.foldMultiplier(mod, user)))
}

// defenseStat returns the defending stat of target. A critical hit ignores the
// positive stages.
func (l *Logic) defenseStat(target *Battler, m *Move, crit bool) int {
	stat := data.StatDfs
	mod := func(e Effect) float64 { return e.DfsModifier() }
	if m.IsPhysical() {
		stat = data.StatDfe
		mod = func(e Effect) float64 { return e.DfeModifier() }
	}
	stage := target.stages[stat]
	if crit {
		stage = min(0, stage)
	}
	return max(1, int(float64(target.rawStat(stat))*stageMultiplier(stage)*l.foldMultiplier(mod, target)))
}

// TypeModifier returns the type effectiveness of move used by user on target,
// with single-type overrides applied per defending type.
func (l *Logic) TypeModifier(user, target *Battler, m *Move) float64 {
	typ := l.MoveType(user, target, m)
	if typ == data.TypeNone {
		return 1
	}
	result := 1.0
	for _, def := range target.types {
		if def == data.TypeNone {
			continue
		}
		mult := data.Effectiveness(typ, def)
		l.eachEffect(func(e Effect) bool {
			if v, ok := e.OnSingleTypeMultiplierOverwrite(target, def, typ, m); ok {
				mult = v
				return false
			}
			return true
		}, user, target)
		result *= mult
	}
	return result
}

// rollCritical draws the critical hit of move on target.
func (l *Logic) rollCritical(user *Battler, m *Move) bool {
	stage := min(len(critStageChances)-1, max(0, m.def.CriticalRate))
	if user.HasAbility("super_luck") {
		stage = min(len(critStageChances)-1, stage+1)
	}
	return l.rng.IntN(critStageChances[stage]) == 0
}

// hitTarget deals one hit of the given power to target and returns the HP lost.
func (r *Resolution) hitTarget(target *Battler, power int) int {
	l, user, m := r.Logic, r.User, r.Move
	if target.IsDead() {
		return 0
	}
	crit := l.rollCritical(user, m)
	bd := l.calcDamage(user, target, m, power, crit, l.rng.IntRange(minDamageRoll, maxDamageRoll))
	if bd.Final == 0 {
		return 0
	}
	if crit {
		l.DisplayMessage("A critical hit!")
	}
	dealt := l.damage.DamageChange(bd.Final, target, user, m)
	slog.Debug("hit", "user", user.Name, "target", target.Name, "move", m.Symbol(),
		"power", bd.BasePower, "final", bd.Final, "dealt", dealt)
	r.Result.Hits++
	r.Result.Damage += dealt
	if dealt > 0 && m.def.DrainPercent > 0 {
		if l.damage.Drain(dealt*m.def.DrainPercent/100, target, user, m) > 0 {
			l.DisplayMessage("%s had its energy drained!", target.Name)
		}
	}
	return dealt
}

// effectivenessMessage shows the effectiveness of a damaging hit.
func (l *Logic) effectivenessMessage(user, target *Battler, m *Move) {
	switch mod := l.TypeModifier(user, target, m); {
	case mod > 1:
		l.DisplayMessage("It's super effective!")
	case mod > 0 && mod < 1:
		l.DisplayMessage("It's not very effective...")
	}
}

// ExpectedDamage estimates the damage of move on target without randomness:
// full roll, no critical hit, average number of hits.
func (l *Logic) ExpectedDamage(user, target *Battler, m *Move) DamageBreakdown {
	if !m.IsDamaging() {
		return DamageBreakdown{TypeMod: l.TypeModifier(user, target, m)}
	}
	bd := l.calcDamage(user, target, m, l.MovePower(user, target, m), false, maxDamageRoll)
	bd.Final = int(float64(bd.Final) * m.behavior.ExpectedHits(l, user, m))
	return bd
}
