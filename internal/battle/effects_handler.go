package battle

import (
	"log/slog"

	"github.com/samber/lo"
)

// EffectsHandler holds the ordered effects of one scope (battler, bank, position or field).
//
// Iteration works on the live effects only. Dead effects stay in place while any
// pass over the handler is running and are purged once the outermost pass returns,
// so hooks may Kill or Add effects without disturbing the iteration in progress.
type EffectsHandler struct {
	effects []Effect
	depth   int
}

// NewEffectsHandler creates an empty handler.
func NewEffectsHandler() *EffectsHandler {
	return &EffectsHandler{effects: make([]Effect, 0, 4)}
}

// Add appends an effect. Effects added during a pass are not visited by it.
func (h *EffectsHandler) Add(e Effect) {
	h.effects = append(h.effects, e)
}

// Get returns the first live effect named name.
func (h *EffectsHandler) Get(name string) Effect {
	return h.GetFunc(func(e Effect) bool { return e.Name() == name })
}

// GetFunc returns the first live effect matching pred.
func (h *EffectsHandler) GetFunc(pred func(Effect) bool) Effect {
	e, ok := lo.Find(h.effects, func(e Effect) bool { return !e.Dead() && pred(e) })
	if !ok {
		return nil
	}
	return e
}

// GetAll returns every live effect named name.
func (h *EffectsHandler) GetAll(name string) []Effect {
	return h.GetAllFunc(func(e Effect) bool { return e.Name() == name })
}

// GetAllFunc returns every live effect matching pred.
func (h *EffectsHandler) GetAllFunc(pred func(Effect) bool) []Effect {
	return lo.Filter(h.effects, func(e Effect, _ int) bool { return !e.Dead() && pred(e) })
}

// Has reports whether a live effect named name exists.
func (h *EffectsHandler) Has(name string) bool {
	return h.Get(name) != nil
}

// HasFunc reports whether a live effect matches pred.
func (h *EffectsHandler) HasFunc(pred func(Effect) bool) bool {
	return h.GetFunc(pred) != nil
}

// Replace kills every live effect matching pred and adds e.
// Killed effects receive OnDelete at the next purge.
func (h *EffectsHandler) Replace(e Effect, pred func(Effect) bool) {
	for _, old := range h.effects {
		if !old.Dead() && pred(old) {
			old.Kill()
		}
	}
	h.Add(e)
	h.DeleteDeadEffects()
}

// Each calls fn for every live effect in insertion order until fn returns false.
// It reports whether the iteration ran to completion.
func (h *EffectsHandler) Each(fn func(Effect) bool) bool {
	return h.each(fn, true)
}

func (h *EffectsHandler) each(fn func(Effect) bool, purge bool) bool {
	h.depth++
	completed := true
	// Effects appended by fn are left for the next pass.
	n := len(h.effects)
	for i := 0; i < n; i++ {
		e := h.effects[i]
		if e.Dead() {
			continue
		}
		if !fn(e) {
			completed = false
			break
		}
	}
	h.depth--
	if purge {
		h.DeleteDeadEffects()
	}
	return completed
}

// UpdateCounter decrements the counter of every live effect.
func (h *EffectsHandler) UpdateCounter() {
	for _, e := range h.effects {
		if !e.Dead() {
			e.UpdateCounter()
		}
	}
}

// DeleteDeadEffects removes dead effects and sends each one its OnDelete notification.
// It does nothing while a pass over the handler is running.
func (h *EffectsHandler) DeleteDeadEffects() {
	if h.depth > 0 {
		return
	}
	dead := lo.Filter(h.effects, func(e Effect, _ int) bool { return e.Dead() })
	if len(dead) == 0 {
		return
	}
	h.effects = lo.Filter(h.effects, func(e Effect, _ int) bool { return !e.Dead() })
	for _, e := range dead {
		notifyDelete(e)
	}
}

// KillAll kills every effect and purges them.
func (h *EffectsHandler) KillAll() {
	for _, e := range h.effects {
		e.Kill()
	}
	h.DeleteDeadEffects()
}

// Len returns the number of live effects.
func (h *EffectsHandler) Len() int {
	return lo.CountBy(h.effects, func(e Effect) bool { return !e.Dead() })
}

// notifyDelete calls OnDelete at most once per effect.
func notifyDelete(e Effect) {
	b := e.base()
	if b.deleted {
		return
	}
	b.deleted = true
	slog.Debug("effect removed", "effect", e.Name())
	e.OnDelete()
}
