package battle

import (
	"fmt"
	"log/slog"
)

var volatileMessages = map[string]string{
	StatusConfusion: "%s became confused!",
}

// StatusChangeHandler applies and cures statuses (major and volatile).
type StatusChangeHandler struct{ handlerBase }

// StatusAppliable reports whether status can be given to target.
// Prevention messages are hidden for secondary effects of damaging moves.
func (h *StatusChangeHandler) StatusAppliable(status string, target, launcher *Battler, move *Move) bool {
	if target == nil || target.IsDead() {
		return false
	}
	if status == StatusCure {
		return target.status != nil
	}
	if !IsKnownStatus(status) {
		slog.Warn("status change ignored", "status", status, "err", ErrUnknownStatus)
		return false
	}
	defer h.silence(move != nil && move.IsDamaging())()

	if IsMajorStatus(status) && typeImmuneToStatus(target, status) {
		h.PreventChange(fmt.Sprintf("It doesn't affect %s...", target.Name))
		return false
	}
	result := h.logic.firstPrevention(func(e Effect) HookResult {
		return e.OnStatusPrevention(h, status, target, launcher, move)
	}, target, launcher)
	return result == Continue
}

// StatusChange gives status to target. It reports whether the status was applied.
func (h *StatusChangeHandler) StatusChange(status string, target, launcher *Battler, move *Move) bool {
	if !h.StatusAppliable(status, target, launcher, move) {
		return false
	}
	l := h.logic
	switch {
	case status == StatusCure:
		h.Cure(target)
		return true
	case IsMajorStatus(status):
		st := MustNewStatus(l, target, status)
		target.status = st
		l.scene.DisplayMessage(st.AppliedMessage())
	default:
		target.Effects.Add(volatileRegistry[status](l, target))
		if msg, ok := volatileMessages[status]; ok {
			l.DisplayMessage(msg, target.Name)
		}
	}
	slog.Debug("status applied", "target", target.Name, "status", status)
	l.notify(func(e Effect) {
		e.OnPostStatusChange(h, status, target, launcher, move)
	}, target, launcher)
	return true
}

// Cure removes the major status of target.
func (h *StatusChangeHandler) Cure(target *Battler) {
	st := target.status
	if st == nil {
		return
	}
	target.status = nil
	st.Kill()
	notifyDelete(st)
	h.logic.scene.DisplayMessage(st.CuredMessage())
}
