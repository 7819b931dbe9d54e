package battle

import "log/slog"

// DamageHandler changes HP: damage, healing and drain.
type DamageHandler struct{ handlerBase }

// DamageChange removes hp from target and returns the HP actually lost.
// launcher and move are nil for indirect damage (statuses, weather, recoil).
func (h *DamageHandler) DamageChange(hp int, target, launcher *Battler, move *Move) int {
	if target == nil || target.IsDead() || hp <= 0 {
		return 0
	}
	l := h.logic
	prevented := false
	l.eachEffect(func(e Effect) bool {
		var res HookResult
		res, hp = e.OnDamagePrevention(h, hp, target, launcher, move)
		if res == Prevent {
			prevented = true
			return false
		}
		return true
	}, target, launcher)
	if prevented || hp <= 0 {
		return 0
	}

	hp = min(hp, target.hp)
	target.hp -= hp
	l.scene.ShowHPAnimation(target, -hp)
	if launcher != nil && move != nil {
		target.recordDamage(l.turn, launcher, move, hp)
	}
	slog.Debug("damage dealt", "target", target.Name, "hp", hp, "left", target.hp)

	l.notify(func(e Effect) {
		e.OnPostDamage(h, hp, target, launcher, move)
	}, target, launcher)
	if target.IsDead() {
		l.DisplayMessage("%s fainted!", target.Name)
		l.notify(func(e Effect) {
			e.OnPostDamageDeath(h, hp, target, launcher, move)
		}, target, launcher)
	}
	return hp
}

// Heal restores up to hp HP to target and returns the HP restored.
// msg is shown when not empty and something was restored.
func (h *DamageHandler) Heal(target *Battler, hp int, msg string) int {
	if target == nil || target.IsDead() || hp <= 0 {
		return 0
	}
	hp = min(hp, target.maxHP-target.hp)
	if hp <= 0 {
		return 0
	}
	target.hp += hp
	h.logic.scene.ShowHPAnimation(target, hp)
	if msg != "" {
		h.logic.scene.DisplayMessage(msg)
	}
	return hp
}

// Drain restores hp (taken from target) to launcher through the drain hooks.
func (h *DamageHandler) Drain(hp int, target, launcher *Battler, move *Move) int {
	if launcher == nil || launcher.IsDead() || hp <= 0 {
		return 0
	}
	l := h.logic
	result := l.firstPrevention(func(e Effect) HookResult {
		return e.OnDrainPrevention(h, hp, target, launcher, move)
	}, target, launcher)
	if result == Prevent {
		return 0
	}
	l.eachEffect(func(e Effect) bool {
		hp = e.OnPreDrain(h, hp, target, launcher, move)
		return true
	}, target, launcher)
	return h.Heal(launcher, max(1, hp), "")
}
