package battle

import "log/slog"

// ItemChangeHandler changes held items.
type ItemChangeHandler struct{ handlerBase }

// CanChangeItem reports whether the held item of target may be replaced.
func (h *ItemChangeHandler) CanChangeItem(item string, target, launcher *Battler, move *Move) bool {
	if target == nil {
		return false
	}
	result := h.logic.firstPrevention(func(e Effect) HookResult {
		return e.OnItemChangePrevention(h, item, target, launcher, move)
	}, target, launcher)
	return result == Continue
}

// ChangeItem gives item ("" removes it) to target.
func (h *ItemChangeHandler) ChangeItem(item string, target, launcher *Battler, move *Move) bool {
	if !h.CanChangeItem(item, target, launcher, move) {
		return false
	}
	h.setItem(item, target, launcher, move)
	return true
}

// ConsumeItem removes the held item of its owner after use. Nothing prevents it.
func (h *ItemChangeHandler) ConsumeItem(target *Battler) {
	if target.item == "" {
		return
	}
	target.consumedItem = target.item
	slog.Debug("item consumed", "battler", target.Name, "item", target.item)
	h.setItem("", target, target, nil)
}

func (h *ItemChangeHandler) setItem(item string, target, launcher *Battler, move *Move) {
	l := h.logic
	l.notify(func(e Effect) {
		e.OnPreItemChange(h, item, target, launcher, move)
	}, target, launcher)

	if old := target.itemEffect; old != nil {
		old.Kill()
		notifyDelete(old)
	}
	target.item = item
	target.itemEffect = newItemEffect(l, target, item)

	l.notify(func(e Effect) {
		e.OnPostItemChange(h, item, target, launcher, move)
	}, target, launcher)
}

// AbilityChangeHandler changes abilities.
type AbilityChangeHandler struct{ handlerBase }

// CanChangeAbility reports whether the ability of target may be replaced.
func (h *AbilityChangeHandler) CanChangeAbility(ability string, target, launcher *Battler, move *Move) bool {
	if target == nil {
		return false
	}
	result := h.logic.firstPrevention(func(e Effect) HookResult {
		return e.OnAbilityChangePrevention(h, ability, target, launcher, move)
	}, target, launcher)
	return result == Continue
}

// ChangeAbility gives ability to target.
func (h *AbilityChangeHandler) ChangeAbility(ability string, target, launcher *Battler, move *Move) bool {
	if !h.CanChangeAbility(ability, target, launcher, move) {
		return false
	}
	h.setAbility(ability, target, launcher, move)
	return true
}

func (h *AbilityChangeHandler) setAbility(ability string, target, launcher *Battler, move *Move) {
	l := h.logic
	l.notify(func(e Effect) {
		e.OnPreAbilityChange(h, ability, target, launcher, move)
	}, target, launcher)

	if old := target.abilityEffect; old != nil {
		old.Kill()
		notifyDelete(old)
	}
	target.ability = ability
	target.abilityEffect = newAbilityEffect(l, target, ability)

	l.notify(func(e Effect) {
		e.OnPostAbilityChange(h, ability, target, launcher, move)
	}, target, launcher)
}
