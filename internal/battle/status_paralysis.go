package battle

// Paralysis halves speed and fully paralyzes 25% of the time.
type Paralysis struct {
	StatusBase
}

func newParalysis(l *Logic, target *Battler) Status {
	return &Paralysis{StatusBase: newStatusBase(l, target, StatusParalysis,
		"%s is paralyzed! It may be unable to move!", "%s was cured of paralysis.", "%s is already paralyzed!")}
}

func (s *Paralysis) OnMovePreventionUser(l *Logic, user *Battler, _ []*Battler, _ *Move) HookResult {
	if user != s.target || !l.rng.Chance(25) {
		return Continue
	}
	l.DisplayMessage("%s is paralyzed! It can't move!", user.Name)
	return Prevent
}

func (s *Paralysis) SpdModifier() float64 {
	if s.target.HasAbility("quick_feet") {
		return 1
	}
	return 0.5
}
