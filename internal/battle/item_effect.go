package battle

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/data"
)

var itemRegistry = map[string]func(l *Logic, owner *Battler) Effect{}

// RegisterItemEffect registers the effect of a held item by symbol.
// Items without a registered effect are only checked by name (rocks, Power Herb, plates).
func RegisterItemEffect(symbol string, factory func(l *Logic, owner *Battler) Effect) {
	itemRegistry[symbol] = factory
}

// newItemEffect returns nil for items without effect.
func newItemEffect(l *Logic, owner *Battler, symbol string) Effect {
	factory, ok := itemRegistry[symbol]
	if symbol == "" || !ok {
		return nil
	}
	return factory(l, owner)
}

func itemBase(l *Logic, owner *Battler) BattlerEffect {
	return NewBattlerEffect(l, owner, owner.item, Infinity)
}

type leftovers struct{ BattlerEffect }

func (e *leftovers) OnEndTurnEvent(l *Logic, _ Scene, _ []*Battler) {
	b := e.target
	if b.IsAlive() && b.OnField() {
		l.damage.Heal(b, max(1, b.MaxHP()/16), fmt.Sprintf("%s restored a little HP using its Leftovers!", b.Name))
	}
}

type lifeOrb struct {
	BattlerEffect
	// recoil is taken once per action
	lastTurn, lastAction int
}

func (e *lifeOrb) Mod2Multiplier(user, _ *Battler, move *Move) float64 {
	if user == e.target && move.IsDamaging() {
		return 1.3
	}
	return 1
}

func (e *lifeOrb) OnPostDamage(h *DamageHandler, _ int, target, launcher *Battler, move *Move) {
	l := h.logic
	if launcher != e.target || target == launcher || move == nil || launcher.IsDead() {
		return
	}
	if e.lastTurn == l.turn && e.lastAction == l.actionIndex {
		return
	}
	e.lastTurn, e.lastAction = l.turn, l.actionIndex
	l.DisplayMessage("%s lost some of its HP!", launcher.Name)
	l.damage.DamageChange(max(1, launcher.MaxHP()/10), launcher, nil, nil)
}

// choiceItem boosts a stat and locks its owner into the first move it uses.
type choiceItem struct {
	BattlerEffect
	stat data.Stat
}

func (e *choiceItem) AtkModifier() float64 {
	if e.stat == data.StatAtk {
		return 1.5
	}
	return 1
}

func (e *choiceItem) AtsModifier() float64 {
	if e.stat == data.StatAts {
		return 1.5
	}
	return 1
}

func (e *choiceItem) OnMoveDisabledCheck(user *Battler, move *Move) bool {
	if user != e.target || user.lastMove == nil || user.lastMoveTurn < user.switchTurn {
		return false
	}
	return move.Symbol() != user.lastMove.Symbol()
}

type safetyGoggles struct{ BattlerEffect }

func (e *safetyGoggles) OnMovePreventionTarget(l *Logic, user, target *Battler, move *Move) HookResult {
	if target != e.target || user == target || !move.Has(data.FlagPowder) {
		return Continue
	}
	l.DisplayMessage("It doesn't affect %s...", target.Name)
	return Prevent
}

type bigRoot struct{ BattlerEffect }

func (e *bigRoot) OnPreDrain(_ *DamageHandler, hp int, _, launcher *Battler, _ *Move) int {
	if launcher == e.target {
		return hp * 13 / 10
	}
	return hp
}

type shedShell struct{ BattlerEffect }

func (e *shedShell) OnSwitchPassthrough(_ *SwitchHandler, who, _ *Battler) bool {
	return who == e.target
}

type ironBall struct{ BattlerEffect }

func (e *ironBall) SpdModifier() float64 { return 0.5 }

// curingBerry cures some statuses right after they are inflicted (Lum, Chesto...).
type curingBerry struct {
	BattlerEffect
	statuses []string
}

func (e *curingBerry) OnPostStatusChange(h *StatusChangeHandler, status string, target, _ *Battler, _ *Move) {
	if target != e.target || !lo.Contains(e.statuses, status) {
		return
	}
	l := h.logic
	l.DisplayMessage("%s ate its %s!", target.Name, displayName(e.name))
	l.itemChange.ConsumeItem(target)
	if status == StatusConfusion {
		for _, c := range target.Effects.GetAll(StatusConfusion) {
			c.Kill()
		}
		l.DisplayMessage("%s snapped out of its confusion!", target.Name)
		return
	}
	h.Cure(target)
}

// pinchBerry triggers when its owner falls to a fraction of its HP (Sitrus, Liechi).
type pinchBerry struct {
	BattlerEffect
	divisor int
	eat     func(l *Logic, owner *Battler)
}

func (e *pinchBerry) OnPostDamage(h *DamageHandler, _ int, target, _ *Battler, _ *Move) {
	if target != e.target || target.IsDead() || target.HP()*e.divisor > target.MaxHP() {
		return
	}
	l := h.logic
	l.DisplayMessage("%s ate its %s!", target.Name, displayName(e.name))
	l.itemChange.ConsumeItem(target)
	e.eat(l, target)
}

func init() {
	RegisterItemEffect("leftovers", func(l *Logic, o *Battler) Effect { return &leftovers{itemBase(l, o)} })
	RegisterItemEffect("life_orb", func(l *Logic, o *Battler) Effect { return &lifeOrb{BattlerEffect: itemBase(l, o)} })
	RegisterItemEffect("choice_band", func(l *Logic, o *Battler) Effect {
		return &choiceItem{BattlerEffect: itemBase(l, o), stat: data.StatAtk}
	})
	RegisterItemEffect("choice_specs", func(l *Logic, o *Battler) Effect {
		return &choiceItem{BattlerEffect: itemBase(l, o), stat: data.StatAts}
	})
	RegisterItemEffect("safety_goggles", func(l *Logic, o *Battler) Effect { return &safetyGoggles{itemBase(l, o)} })
	RegisterItemEffect("big_root", func(l *Logic, o *Battler) Effect { return &bigRoot{itemBase(l, o)} })
	RegisterItemEffect("shed_shell", func(l *Logic, o *Battler) Effect { return &shedShell{itemBase(l, o)} })
	RegisterItemEffect("iron_ball", func(l *Logic, o *Battler) Effect { return &ironBall{itemBase(l, o)} })

	for sym, statuses := range map[string][]string{
		"lum_berry":    {StatusPoison, StatusToxic, StatusBurn, StatusParalysis, StatusSleep, StatusFreeze, StatusConfusion},
		"chesto_berry": {StatusSleep},
		"cheri_berry":  {StatusParalysis},
		"rawst_berry":  {StatusBurn},
	} {
		RegisterItemEffect(sym, func(l *Logic, o *Battler) Effect {
			return &curingBerry{BattlerEffect: itemBase(l, o), statuses: statuses}
		})
	}
	RegisterItemEffect("sitrus_berry", func(l *Logic, o *Battler) Effect {
		return &pinchBerry{BattlerEffect: itemBase(l, o), divisor: 2, eat: func(l *Logic, b *Battler) {
			l.damage.Heal(b, max(1, b.MaxHP()/4), fmt.Sprintf("%s restored its health!", b.Name))
		}}
	})
	RegisterItemEffect("liechi_berry", func(l *Logic, o *Battler) Effect {
		return &pinchBerry{BattlerEffect: itemBase(l, o), divisor: 4, eat: func(l *Logic, b *Battler) {
			l.statChange.StatChange(data.StatAtk, 1, b, b, nil)
		}}
	})
}
