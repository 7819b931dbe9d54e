package battle

import "fmt"

// toxicMaxCounter caps the Toxic damage multiplier.
const toxicMaxCounter = 15

// Poison deals 1/8 of max HP at end of turn.
type Poison struct {
	StatusBase
}

func newPoison(l *Logic, target *Battler) Status {
	return &Poison{StatusBase: newStatusBase(l, target, StatusPoison,
		"%s was poisoned!", "%s was cured of its poisoning.", "%s is already poisoned!")}
}

func (s *Poison) OnEndTurnEvent(l *Logic, _ Scene, _ []*Battler) {
	if !s.canAct() {
		return
	}
	poisonEndTurn(l, s.target, max(1, s.target.MaxHP()/8))
}

// Toxic deals max(1, maxHP/16) x counter; the counter grows each turn and
// restarts at 1 when the battler switches out.
type Toxic struct {
	StatusBase
	count int
}

func newToxic(l *Logic, target *Battler) Status {
	return &Toxic{
		StatusBase: newStatusBase(l, target, StatusToxic,
			"%s was badly poisoned!", "%s was cured of its poisoning.", "%s is already poisoned!"),
		count: 1,
	}
}

// Count returns the current multiplier.
func (s *Toxic) Count() int { return s.count }

// Reset restarts the multiplier at 1.
func (s *Toxic) Reset() { s.count = 1 }

func (s *Toxic) OnStatusPrevention(h *StatusChangeHandler, status string, target, launcher *Battler, move *Move) HookResult {
	if target == s.target && status == StatusPoison {
		return h.PreventChange(fmt.Sprintf(s.already, s.target.Name))
	}
	return s.StatusBase.OnStatusPrevention(h, status, target, launcher, move)
}

func (s *Toxic) OnEndTurnEvent(l *Logic, _ Scene, _ []*Battler) {
	if !s.canAct() {
		return
	}
	poisonEndTurn(l, s.target, max(1, s.target.MaxHP()/16)*s.count)
	s.count = min(s.count+1, toxicMaxCounter)
}

func (s *Toxic) OnSwitchEvent(_ *SwitchHandler, who, _ *Battler) {
	if who == s.target {
		s.Reset()
	}
}

// poisonEndTurn hurts (or heals with Poison Heal) the poisoned battler.
func poisonEndTurn(l *Logic, target *Battler, hp int) {
	if target.HasAbility("poison_heal") {
		if target.HP() < target.MaxHP() {
			l.scene.ShowAbility(target)
			l.damage.Heal(target, max(1, target.MaxHP()/8), "")
		}
		return
	}
	l.DisplayMessage("%s is hurt by poison!", target.Name)
	l.damage.DamageChange(hp, target, nil, nil)
}
