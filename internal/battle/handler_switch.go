package battle

import (
	"log/slog"

	"github.com/udisondev/monbattle/internal/data"
)

// SwitchHandler moves battlers between the party and the field.
type SwitchHandler struct{ handlerBase }

// CanSwitch reports whether who may leave the field for with.
// Ghost types and passthrough effects (Shed Shell) ignore trapping.
func (h *SwitchHandler) CanSwitch(who, with *Battler) bool {
	if who == nil {
		return false
	}
	if with != nil && (with.IsDead() || with.OnField() || with.Bank != who.Bank) {
		return false
	}
	if who.IsDead() || who.HasType(data.TypeGhost) {
		return true
	}
	l := h.logic
	involved := append([]*Battler{who}, l.Foes(who)...)
	if l.anyEffect(func(e Effect) bool { return e.OnSwitchPassthrough(h, who, with) }, involved...) {
		return true
	}
	result := l.firstPrevention(func(e Effect) HookResult {
		return e.OnSwitchPrevention(h, who, with)
	}, involved...)
	return result == Continue
}

// Switch replaces who by with on the field. It reports whether the switch happened.
func (h *SwitchHandler) Switch(who, with *Battler) bool {
	if who == nil || with == nil || !who.OnField() {
		return false
	}
	if with.IsDead() || with.OnField() || with.Bank != who.Bank {
		return false
	}
	if who.IsAlive() && !h.CanSwitch(who, with) {
		return false
	}
	l := h.logic
	pos := who.Position
	if who.IsAlive() {
		l.DisplayMessage("%s, come back!", who.Name)
	}
	l.banks[who.Bank].Active[pos] = with
	who.Position = OffField
	with.Position = pos
	with.switchTurn = l.turn
	l.DisplayMessage("Go! %s!", with.Name)
	slog.Debug("switch", "bank", who.Bank, "out", who.Name, "in", with.Name)

	h.dispatchSwitchEvent(who, with)
	who.resetOnSwitchOut()
	return true
}

// dispatchSwitchEvent notifies who, with and every battler on the field.
// who is nil for the initial entry of a battler.
func (h *SwitchHandler) dispatchSwitchEvent(who, with *Battler) {
	battlers := append([]*Battler{who, with}, h.logic.AliveBattlers()...)
	h.logic.notify(func(e Effect) {
		e.OnSwitchEvent(h, who, with)
	}, battlers...)
}

// TransformHandler copies a battler into another (Transform, Imposter).
type TransformHandler struct{ handlerBase }

// CanTransform reports whether user may transform into target.
func (h *TransformHandler) CanTransform(user, target *Battler) bool {
	if user == nil || target == nil || user == target || target.IsDead() {
		return false
	}
	return !user.transformed && !target.transformed
}

// Transform copies types, stats, stages, ability and moves (5 PP each) of target into user.
func (h *TransformHandler) Transform(user, target *Battler) bool {
	if !h.CanTransform(user, target) {
		return false
	}
	user.preTransform = transformSnapshot{
		types:   user.types,
		base:    user.base,
		moves:   user.Moves,
		ability: user.ability,
	}
	user.types = target.types
	user.base = target.base
	user.stages = target.stages
	user.Moves = make([]*Move, 0, len(target.Moves))
	for _, m := range target.Moves {
		copied := m.clone()
		copied.pp = min(5, copied.def.PP)
		copied.maxPP = copied.pp
		user.Moves = append(user.Moves, copied)
	}
	h.logic.abilityChange.setAbility(target.ability, user, user, nil)
	user.transformed = true
	h.logic.DisplayMessage("%s transformed into %s!", user.Name, target.Name)

	h.logic.notify(func(e Effect) {
		e.OnTransformEvent(h, target)
	}, user, target)
	return true
}
