package battle

// Burn deals 1/16 of max HP at end of turn and halves physical damage dealt.
type Burn struct {
	StatusBase
}

func newBurn(l *Logic, target *Battler) Status {
	return &Burn{StatusBase: newStatusBase(l, target, StatusBurn,
		"%s was burned!", "%s's burn was healed.", "%s is already burned!")}
}

func (s *Burn) OnEndTurnEvent(l *Logic, _ Scene, _ []*Battler) {
	if !s.canAct() {
		return
	}
	l.DisplayMessage("%s is hurt by its burn!", s.target.Name)
	l.damage.DamageChange(max(1, s.target.MaxHP()/16), s.target, nil, nil)
}

func (s *Burn) Mod1Multiplier(user, _ *Battler, move *Move) float64 {
	if user != s.target || !move.IsPhysical() {
		return 1
	}
	if user.HasAbility("guts") || move.Symbol() == "facade" {
		return 1
	}
	return 0.5
}
