package battle

import "github.com/udisondev/monbattle/internal/data"

// Freeze prevents moving until thawed: 20% per attempt, thawing moves or Fire damage.
type Freeze struct {
	StatusBase
}

func newFreeze(l *Logic, target *Battler) Status {
	return &Freeze{StatusBase: newStatusBase(l, target, StatusFreeze,
		"%s was frozen solid!", "%s thawed out!", "%s is already frozen!")}
}

func (s *Freeze) OnMovePreventionUser(l *Logic, user *Battler, _ []*Battler, move *Move) HookResult {
	if user != s.target {
		return Continue
	}
	if move.Has(data.FlagThawUser) || l.rng.Chance(20) {
		l.statusChange.Cure(user)
		return Continue
	}
	l.DisplayMessage("%s is frozen solid!", user.Name)
	return Prevent
}

func (s *Freeze) OnPostDamage(h *DamageHandler, _ int, target, launcher *Battler, move *Move) {
	if target != s.target || move == nil || target.IsDead() {
		return
	}
	if h.logic.MoveType(launcher, target, move) == data.TypeFire {
		h.logic.statusChange.Cure(target)
	}
}
