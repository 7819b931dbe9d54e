package battle

import "github.com/udisondev/monbattle/internal/data"

// Sleep prevents moving for 1-3 turns. Sleep Talk and Snore stay usable.
type Sleep struct {
	StatusBase
	turns int
}

func newSleep(l *Logic, target *Battler) Status {
	return &Sleep{
		StatusBase: newStatusBase(l, target, StatusSleep,
			"%s fell asleep!", "%s woke up!", "%s is already asleep!"),
		turns: l.rng.IntRange(1, 3),
	}
}

// Turns returns the number of actions sleep still blocks.
func (s *Sleep) Turns() int { return s.turns }

func (s *Sleep) OnMovePreventionUser(l *Logic, user *Battler, _ []*Battler, move *Move) HookResult {
	if user != s.target {
		return Continue
	}
	if s.turns <= 0 {
		l.statusChange.Cure(user)
		return Continue
	}
	s.turns--
	if user.HasAbility("early_bird") {
		s.turns--
	}
	if move.Has(data.FlagSleepUsable) {
		l.DisplayMessage("%s is fast asleep.", user.Name)
		return Continue
	}
	l.DisplayMessage("%s is fast asleep.", user.Name)
	return Prevent
}
