package battle

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/data"
)

// fleeOddsCap is the escape odds above which fleeing always succeeds.
const fleeOddsCap = 255

type orderedAction struct {
	action   Action
	priority int
	speed    int
	tie      int
}

// PlayTurn resolves one turn: forced moves replace the choices of their
// battlers, actions run in class, priority and speed order (random tie
// break), then the end of turn events.
func (l *Logic) PlayTurn(actions []Action) error {
	if l.outcome.Finished {
		return ErrBattleFinished
	}
	for _, a := range actions {
		if err := l.validate(a); err != nil {
			return err
		}
	}
	actions = l.applyForcedMoves(actions)
	l.actions = l.order(actions)
	slog.Debug("turn start", "turn", l.turn, "actions", len(l.actions))

	for i, a := range l.actions {
		l.actionIndex = i
		if l.outcome.Finished {
			break
		}
		l.execute(a)
		l.checkEnd()
	}
	l.actions = nil
	l.actionIndex = 0
	if !l.outcome.Finished {
		l.endTurn()
	}
	return nil
}

func (l *Logic) validate(a Action) error {
	actor := a.Actor()
	if actor == nil || actor.logic != l || !actor.OnField() {
		return fmt.Errorf("%w: %v: actor not on the field", ErrInvalidAction, a)
	}
	switch a := a.(type) {
	case AttackAction:
		if a.Move == nil {
			return fmt.Errorf("%w: %v: no move", ErrInvalidAction, a)
		}
		if a.Move != a.User.struggle && !slices.Contains(a.User.Moves, a.Move) {
			return fmt.Errorf("%w: %v: move not known", ErrInvalidAction, a)
		}
	case SwitchAction:
		if a.With == nil || a.With.Bank != a.Who.Bank || a.With.IsDead() || a.With.OnField() {
			return fmt.Errorf("%w: %v: invalid switch target", ErrInvalidAction, a)
		}
	case ItemAction:
		def, ok := data.GetItem(a.Item)
		if !ok || l.banks[a.User.Bank].Bag[a.Item] <= 0 {
			return fmt.Errorf("%w: %v: item not in bag", ErrInvalidAction, a)
		}
		if def.Kind != data.ItemMedicine && def.Kind != data.ItemBattle {
			return fmt.Errorf("%w: %v: item not usable in battle", ErrInvalidAction, a)
		}
		if a.Target == nil || a.Target.Bank != a.User.Bank {
			return fmt.Errorf("%w: %v: invalid item target", ErrInvalidAction, a)
		}
	case MegaAction:
		if !l.CanMegaEvolve(a.User) {
			return fmt.Errorf("%w: %v: cannot mega evolve", ErrInvalidAction, a)
		}
	case FleeAction:
		if !l.roaming {
			return fmt.Errorf("%w: %v: cannot flee a trainer battle", ErrInvalidAction, a)
		}
	}
	return nil
}

// applyForcedMoves drops the choices of battlers locked into a move and adds
// the forced attack instead.
func (l *Logic) applyForcedMoves(actions []Action) []Action {
	for _, b := range l.AliveBattlers() {
		forced, ok := l.ForcedMove(b)
		if !ok {
			continue
		}
		actions = lo.Reject(actions, func(a Action, _ int) bool { return a.Actor() == b })
		actions = append(actions, AttackAction{User: b, Move: forced.Move, Targets: forced.Targets})
	}
	return actions
}

// order sorts the actions. The tie break is drawn for every action in input order.
func (l *Logic) order(actions []Action) []Action {
	keyed := make([]orderedAction, len(actions))
	for i, a := range actions {
		k := orderedAction{action: a, speed: a.Actor().Spd(), tie: l.rng.IntN(1 << 16)}
		if atk, ok := a.(AttackAction); ok {
			k.priority = l.MovePriority(atk.User, atk.Move)
		}
		keyed[i] = k
	}
	slices.SortStableFunc(keyed, func(a, b orderedAction) int {
		return cmp.Or(
			cmp.Compare(a.action.class(), b.action.class()),
			cmp.Compare(b.priority, a.priority),
			cmp.Compare(b.speed, a.speed),
			cmp.Compare(a.tie, b.tie),
		)
	})
	return lo.Map(keyed, func(k orderedAction, _ int) Action { return k.action })
}

func (l *Logic) execute(a Action) {
	actor := a.Actor()
	if actor.IsDead() || !actor.OnField() {
		return
	}
	switch a := a.(type) {
	case AttackAction:
		a.Move.Proceed(l, a.User, a.Targets)
	case SwitchAction:
		if !l.switching.Switch(a.Who, a.With) {
			l.DisplayMessage("%s can't be switched out!", a.Who.Name)
		}
	case ItemAction:
		l.useItem(a)
	case MegaAction:
		l.megaEvolve(a.User)
	case FleeAction:
		l.flee(a.User)
	}
}

// endTurn runs the end of turn events in speed order, counts effects down and purges them.
func (l *Logic) endTurn() {
	battlers := l.AliveBattlers()
	slices.SortStableFunc(battlers, func(a, b *Battler) int { return cmp.Compare(b.Spd(), a.Spd()) })
	l.notify(func(e Effect) {
		e.OnEndTurnEvent(l, l.scene, battlers)
	}, battlers...)

	for _, h := range l.handlers() {
		h.UpdateCounter()
	}
	for _, h := range l.handlers() {
		h.DeleteDeadEffects()
	}
	l.checkEnd()
	slog.Debug("turn end", "turn", l.turn, "weather", l.WeatherSymbol(), "terrain", l.TerrainSymbol())
	l.turn++
}

// handlers returns every effects handler of the battle.
func (l *Logic) handlers() []*EffectsHandler {
	out := []*EffectsHandler{l.field}
	for _, bank := range l.banks {
		out = append(out, bank.Effects)
		out = append(out, bank.Positions...)
		for _, b := range bank.Active {
			if b != nil {
				out = append(out, b.Effects)
			}
		}
	}
	return out
}

// checkEnd finishes the battle when a bank has no battler left.
func (l *Logic) checkEnd() {
	if l.outcome.Finished {
		return
	}
	alive := func(bank int) bool {
		return lo.SomeBy(l.banks[bank].Party, func(b *Battler) bool { return b.IsAlive() })
	}
	a0, a1 := alive(0), alive(1)
	switch {
	case a0 && a1:
		return
	case a0:
		l.outcome = Outcome{Finished: true, Winner: 0}
	case a1:
		l.outcome = Outcome{Finished: true, Winner: 1}
	default:
		l.outcome = Outcome{Finished: true, Winner: -1}
	}
	slog.Debug("battle finished", "winner", l.outcome.Winner, "turn", l.turn)
}

// NeedsReplacement returns the fainted battlers on the field whose bank can send a replacement.
func (l *Logic) NeedsReplacement() []*Battler {
	var out []*Battler
	for i, bank := range l.banks {
		candidates := len(l.SwitchCandidates(i))
		for _, b := range bank.Active {
			if b != nil && b.IsDead() && candidates > 0 {
				out = append(out, b)
				candidates--
			}
		}
	}
	return out
}

// Replace sends with in place of the fainted who.
func (l *Logic) Replace(who, with *Battler) error {
	if who == nil || !who.IsDead() || !who.OnField() {
		return fmt.Errorf("%w: %v does not need a replacement", ErrInvalidAction, who)
	}
	if !l.switching.Switch(who, with) {
		return fmt.Errorf("%w: cannot replace %v by %v", ErrInvalidAction, who, with)
	}
	return nil
}

// useItem applies a bag item. The item is spent even when it has no effect.
func (l *Logic) useItem(a ItemAction) {
	bank := l.banks[a.User.Bank]
	def, _ := data.GetItem(a.Item)
	bank.Bag[a.Item]--
	if bank.Bag[a.Item] <= 0 {
		delete(bank.Bag, a.Item)
	}
	l.DisplayMessage("%s used a %s!", bankOwner(a.User.Bank), displayName(a.Item))
	slog.Debug("bag item used", "bank", a.User.Bank, "item", a.Item, "target", a.Target.Name)

	target := a.Target
	effective := false
	if target.IsAlive() {
		switch def.Kind {
		case data.ItemMedicine:
			if def.HealHP != 0 {
				hp := def.HealHP
				if hp < 0 {
					hp = target.maxHP
				}
				if l.damage.Heal(target, hp, fmt.Sprintf("%s's HP was restored.", target.Name)) > 0 {
					effective = true
				}
			}
			if target.status != nil && def.Cures(target.status.Name()) {
				l.statusChange.Cure(target)
				effective = true
			}
		case data.ItemBattle:
			if l.statChange.StatChange(def.BoostStat, def.BoostStages, target, target, nil) != 0 {
				effective = true
			}
		}
	}
	if !effective {
		l.DisplayMessage("It had no effect.")
	}
}

func bankOwner(bank int) string {
	return fmt.Sprintf("Side %d", bank)
}

// CanMegaEvolve reports whether b holds its mega stone and its bank has not mega evolved yet.
func (l *Logic) CanMegaEvolve(b *Battler) bool {
	if b == nil || b.IsDead() || !b.OnField() || b.megaEvolved || b.transformed {
		return false
	}
	mega := b.Species.Mega
	if mega == nil || l.banks[b.Bank].MegaUsed {
		return false
	}
	return b.HasItem(mega.Stone)
}

func (l *Logic) megaEvolve(b *Battler) {
	if !l.CanMegaEvolve(b) {
		return
	}
	mega := b.Species.Mega
	b.types = mega.Types
	b.base = mega.Base
	b.megaEvolved = true
	l.banks[b.Bank].MegaUsed = true
	l.DisplayMessage("%s has Mega Evolved into Mega %s!", b.Name, displayName(b.Species.Symbol))
	if mega.Ability != "" {
		l.abilityChange.setAbility(mega.Ability, b, b, nil)
	}
}

// flee tries to escape: odds = spd*128/foeSpd + 30*attempts, out of 256.
func (l *Logic) flee(b *Battler) {
	b.fleeAttempts++
	foeSpd := 1
	for _, f := range l.Foes(b) {
		foeSpd = max(foeSpd, f.Spd())
	}
	odds := b.Spd()*128/foeSpd + 30*(b.fleeAttempts-1)
	if odds > fleeOddsCap || l.rng.IntN(256) < odds {
		l.DisplayMessage("Got away safely!")
		l.outcome = Outcome{Finished: true, Winner: -1, Fled: true}
		return
	}
	l.DisplayMessage("Can't escape!")
}

// pendingPledgeAlly returns an ally of user that uses a pledge later this turn.
func (l *Logic) pendingPledgeAlly(user *Battler) (*Battler, *Move) {
	if l.actionIndex+1 >= len(l.actions) {
		return nil, nil
	}
	for _, a := range l.actions[l.actionIndex+1:] {
		atk, ok := a.(AttackAction)
		if !ok || atk.User == user || atk.User.Bank != user.Bank || atk.User.IsDead() {
			continue
		}
		if atk.Move.Mechanic() == "s_pledge" {
			return atk.User, atk.Move
		}
	}
	return nil, nil
}
