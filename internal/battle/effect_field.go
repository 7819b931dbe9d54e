package battle

import "github.com/udisondev/monbattle/internal/data"

// pledgeFieldTurns is the duration of the fields created by combined pledges.
const pledgeFieldTurns = 4

// Rainbow doubles the chance of secondary effects of the bank's battlers.
type Rainbow struct {
	PositionEffect
}

func newRainbow(l *Logic, bank int) *Rainbow {
	return &Rainbow{PositionEffect: NewPositionEffect(l, bank, -1, "rainbow", pledgeFieldTurns)}
}

func (e *Rainbow) EffectChanceModifier(user *Battler, _ *Move) float64 {
	if e.covers(user) {
		return 2
	}
	return 1
}

func (e *Rainbow) OnDelete() {
	e.logic.DisplayMessage("The rainbow on side %d disappeared!", e.bank)
}

// SeaOfFire burns 1/8 of max HP of the bank's non Fire battlers each turn.
type SeaOfFire struct {
	PositionEffect
}

func newSeaOfFire(l *Logic, bank int) *SeaOfFire {
	return &SeaOfFire{PositionEffect: NewPositionEffect(l, bank, -1, "sea_of_fire", pledgeFieldTurns)}
}

func (e *SeaOfFire) OnEndTurnEvent(l *Logic, _ Scene, battlers []*Battler) {
	for _, b := range battlers {
		if !e.covers(b) || b.IsDead() || b.HasType(data.TypeFire) || b.HasAbility("magic_guard") {
			continue
		}
		l.DisplayMessage("%s is hurt by the sea of fire!", b.Name)
		l.damage.DamageChange(max(1, b.MaxHP()/8), b, nil, nil)
	}
}

func (e *SeaOfFire) OnDelete() {
	e.logic.DisplayMessage("The sea of fire on side %d disappeared!", e.bank)
}

// Swamp quarters the speed of the bank's battlers.
type Swamp struct {
	PositionEffect
}

func newSwamp(l *Logic, bank int) *Swamp {
	return &Swamp{PositionEffect: NewPositionEffect(l, bank, -1, "swamp", pledgeFieldTurns)}
}

func (e *Swamp) SpdModifier() float64 { return 0.25 }

func (e *Swamp) OnDelete() {
	e.logic.DisplayMessage("The swamp on side %d disappeared!", e.bank)
}
