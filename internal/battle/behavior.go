package battle

import (
	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/data"
)

// Behavior is the resolution strategy of a move, selected by the mechanic
// symbol when the move is built.
type Behavior interface {
	// Selectable reports archetype conditions for choosing the move (Sleep Talk needs sleep...).
	Selectable(l *Logic, user *Battler, m *Move) bool
	ConsumesPP(r *Resolution) bool
	// Intercept runs before target resolution. Returning true ends the use
	// (charging turn, pledge wait).
	Intercept(r *Resolution) bool
	Targets(r *Resolution) []*Battler
	// Execute applies the move to r.Hit and reports success.
	Execute(r *Resolution) bool
	BasePower(l *Logic, user, target *Battler, m *Move) int
	MoveType(l *Logic, user *Battler, m *Move) data.TypeID
	// Interrupted is called when the user is prevented from moving.
	Interrupted(r *Resolution)
	// ExpectedHits is the average number of hits, used by damage estimates.
	ExpectedHits(l *Logic, user *Battler, m *Move) float64
}

var behaviorRegistry = map[string]func(def *data.MoveDef) Behavior{}

// RegisterBehavior registers the behavior factory of a mechanic symbol.
// Called from init; registering twice replaces the factory.
func RegisterBehavior(mechanic string, factory func(def *data.MoveDef) Behavior) {
	behaviorRegistry[mechanic] = factory
}

// IsKnownMechanic reports whether a behavior is registered for mechanic.
func IsKnownMechanic(mechanic string) bool {
	_, ok := behaviorRegistry[mechanic]
	return ok
}

// BasicBehavior deals damage to every target and applies the secondary effects.
// Other behaviors embed it and override what differs.
type BasicBehavior struct{}

func (BasicBehavior) Selectable(*Logic, *Battler, *Move) bool { return true }
func (BasicBehavior) ConsumesPP(*Resolution) bool             { return true }
func (BasicBehavior) Intercept(*Resolution) bool              { return false }
func (BasicBehavior) Interrupted(*Resolution)                 {}

func (BasicBehavior) Targets(r *Resolution) []*Battler {
	return r.Logic.resolveTargets(r.User, r.Move, r.Targets)
}

func (BasicBehavior) Execute(r *Resolution) bool {
	return r.dealDamageAll()
}

func (BasicBehavior) BasePower(_ *Logic, _, _ *Battler, m *Move) int { return m.Power() }

func (BasicBehavior) MoveType(_ *Logic, _ *Battler, m *Move) data.TypeID { return m.Type() }

func (BasicBehavior) ExpectedHits(*Logic, *Battler, *Move) float64 { return 1 }

// resolveTargets keeps the chosen targets still able to be hit; when none is
// left the default targets of the move are used.
func (l *Logic) resolveTargets(user *Battler, m *Move, chosen []*Battler) []*Battler {
	switch m.Target() {
	case data.TargetUser, data.TargetField:
		return l.DefaultTargets(user, m)
	case data.TargetAllAdjacentFoe, data.TargetAllAdjacent:
		return l.DefaultTargets(user, m)
	}
	valid := lo.Filter(chosen, func(t *Battler, _ int) bool {
		return t != nil && t.IsAlive() && t.OnField()
	})
	if len(valid) > 0 {
		return valid
	}
	return l.DefaultTargets(user, m)
}

// dealDamageAll hits every target once with the move power.
func (r *Resolution) dealDamageAll() bool {
	dealt := false
	for _, t := range r.Hit {
		power := r.Logic.MovePower(r.User, t, r.Move)
		if r.hitTarget(t, power) > 0 {
			dealt = true
			r.applySecondary(t)
		}
		r.Logic.effectivenessMessage(r.User, t, r.Move)
	}
	return dealt
}

// dealStatusAll applies the status and stat changes of a status move.
func (r *Resolution) dealStatusAll() bool {
	l, def := r.Logic, r.Move.def
	success := false
	for _, t := range r.Hit {
		if def.Status != "" && l.statusChange.StatusChange(def.Status, t, r.User, r.Move) {
			success = true
		}
		for _, sc := range def.StatChanges {
			if l.statChange.StatChange(sc.Stat, sc.Stages, t, r.User, r.Move) != 0 {
				success = true
			}
		}
	}
	if !success {
		l.DisplayMessage("But it failed!")
	}
	return success
}

func init() {
	RegisterBehavior("s_basic", func(*data.MoveDef) Behavior { return BasicBehavior{} })
}
