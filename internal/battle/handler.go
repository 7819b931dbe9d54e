package battle

// handlerBase is shared by every logic handler.
type handlerBase struct {
	logic *Logic
	// quiet hides prevention messages (secondary effects, AI checks).
	quiet bool
}

// Logic returns the battle of the handler.
func (h *handlerBase) Logic() *Logic { return h.logic }

// PreventChange shows msg (unless empty or quiet) and returns Prevent.
// Hooks return its result to stop the change they were asked about.
func (h *handlerBase) PreventChange(msg string) HookResult {
	if msg != "" && !h.quiet {
		h.logic.scene.DisplayMessage(msg)
	}
	return Prevent
}

// silence sets quiet and returns the function restoring the previous value.
func (h *handlerBase) silence(quiet bool) func() {
	prev := h.quiet
	h.quiet = prev || quiet
	return func() { h.quiet = prev }
}

// preventWithAbility shows the ability of b, then behaves like PreventChange.
func (h *handlerBase) preventWithAbility(b *Battler, msg string) HookResult {
	if !h.quiet {
		h.logic.scene.ShowAbility(b)
	}
	return h.PreventChange(msg)
}
