package battle

import "github.com/udisondev/monbattle/internal/data"

const pledgeComboPower = 150

// pledgeCombo is the result of two different pledges used by allies in one turn.
type pledgeCombo struct {
	typ   data.TypeID
	field string
}

type typePair [2]data.TypeID

var pledgeCombos = map[typePair]pledgeCombo{
	{data.TypeFire, data.TypeGrass}:  {typ: data.TypeFire, field: "sea_of_fire"},
	{data.TypeGrass, data.TypeWater}: {typ: data.TypeGrass, field: "swamp"},
	{data.TypeWater, data.TypeFire}:  {typ: data.TypeWater, field: "rainbow"},
}

func comboOf(a, b data.TypeID) (pledgeCombo, bool) {
	if c, ok := pledgeCombos[typePair{a, b}]; ok {
		return c, true
	}
	c, ok := pledgeCombos[typePair{b, a}]
	return c, ok
}

// pledgeBehavior waits for an ally using another pledge later in the turn; the
// ally then fires the combined move and leaves a field on the battle.
type pledgeBehavior struct{ BasicBehavior }

func (pledgeBehavior) Intercept(r *Resolution) bool {
	l, user, m := r.Logic, r.User, r.Move
	m.pledge = nil

	if e, ok := user.Effects.Get("pledge_wait").(*PledgeWait); ok && e.from.IsAlive() {
		if combo, ok := comboOf(e.typ, m.Type()); ok {
			e.Kill()
			m.pledge = &combo
			l.DisplayMessage("The two moves have become one! It's a combined move!")
			return false
		}
	}

	ally, allyMove := l.pendingPledgeAlly(user)
	if ally == nil {
		return false
	}
	if _, ok := comboOf(m.Type(), allyMove.Type()); !ok {
		return false
	}
	ally.Effects.Add(newPledgeWait(l, ally, user, m.Type()))
	l.DisplayMessage("%s is waiting for %s's move...", user.Name, ally.Name)
	r.Result.Success = true
	return true
}

func (pledgeBehavior) BasePower(_ *Logic, _, _ *Battler, m *Move) int {
	if m.pledge != nil {
		return pledgeComboPower
	}
	return m.Power()
}

func (pledgeBehavior) MoveType(_ *Logic, _ *Battler, m *Move) data.TypeID {
	if m.pledge != nil {
		return m.pledge.typ
	}
	return m.Type()
}

func (pledgeBehavior) Execute(r *Resolution) bool {
	m := r.Move
	combo := m.pledge
	dealt := r.dealDamageAll()
	m.pledge = nil
	if combo != nil && dealt {
		r.Logic.createPledgeField(r.User, combo.field)
	}
	return dealt
}

// createPledgeField installs a pledge field: the rainbow on the user's bank,
// the others on the opposing bank.
func (l *Logic) createPledgeField(user *Battler, field string) {
	foe := 1 - user.Bank
	byName := func(name string) func(Effect) bool {
		return func(e Effect) bool { return e.Name() == name }
	}
	switch field {
	case "rainbow":
		l.banks[user.Bank].Effects.Replace(newRainbow(l, user.Bank), byName(field))
		l.DisplayMessage("A rainbow appeared in the sky on side %d!", user.Bank)
	case "sea_of_fire":
		l.banks[foe].Effects.Replace(newSeaOfFire(l, foe), byName(field))
		l.DisplayMessage("A sea of fire enveloped side %d!", foe)
	case "swamp":
		l.banks[foe].Effects.Replace(newSwamp(l, foe), byName(field))
		l.DisplayMessage("A swamp enveloped side %d!", foe)
	}
}

func init() {
	RegisterBehavior("s_pledge", func(*data.MoveDef) Behavior { return pledgeBehavior{} })
}
