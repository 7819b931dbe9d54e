package ai

import (
	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/battle"
)

// Controller decides for the battlers of one bank.
type Controller interface {
	// Decide returns the actions of b for this turn: one main action, plus a
	// MegaAction in front of it when the battler mega evolves. It never
	// returns an empty slice for a battler able to act. plan holds the
	// actions already chosen for the bank this turn and receives the new ones.
	Decide(sb *battle.Sandbox, b *battle.Battler, plan *Plan) []battle.Action

	// Replacement picks the party member sent in place of the fainted b, or
	// nil when the bank has nobody left.
	Replacement(sb *battle.Sandbox, b *battle.Battler) *battle.Battler

	// Level returns the AI level of the controller.
	Level() Level
}

// Plan collects the actions of one bank for a turn, so that two battlers
// never switch to the same member or both mega evolve.
type Plan struct {
	Actions []battle.Action
}

func (p *Plan) add(actions ...battle.Action) {
	if p == nil {
		return
	}
	p.Actions = append(p.Actions, actions...)
}

func (p *Plan) megaPlanned() bool {
	if p == nil {
		return false
	}
	return lo.ContainsBy(p.Actions, func(a battle.Action) bool {
		_, ok := a.(battle.MegaAction)
		return ok
	})
}

func (p *Plan) switchingTo(b *battle.Battler) bool {
	if p == nil {
		return false
	}
	return lo.ContainsBy(p.Actions, func(a battle.Action) bool {
		s, ok := a.(battle.SwitchAction)
		return ok && s.With == b
	})
}
