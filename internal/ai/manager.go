package ai

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/monbattle/internal/battle"
)

// Manager drives the banks of one battle with their controllers.
// A bank without a controller is left to the caller.
type Manager struct {
	controllers [2]Controller
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register assigns controller to bank.
func (m *Manager) Register(bank int, controller Controller) {
	m.controllers[bank] = controller
	slog.Debug("ai controller registered", "bank", bank, "level", controller.Level())
}

// Unregister removes the controller of bank.
func (m *Manager) Unregister(bank int) {
	m.controllers[bank] = nil
	slog.Debug("ai controller unregistered", "bank", bank)
}

// Controller returns the controller of bank, nil when none is registered.
func (m *Manager) Controller(bank int) Controller {
	return m.controllers[bank]
}

// Count returns the number of controlled banks.
func (m *Manager) Count() int {
	n := 0
	for _, c := range m.controllers {
		if c != nil {
			n++
		}
	}
	return n
}

// Decide returns the actions of every controlled battler on the field for
// the next turn. Every decision is made on a fresh sandbox.
func (m *Manager) Decide(l *battle.Logic) []battle.Action {
	var actions []battle.Action
	for bank, c := range m.controllers {
		if c == nil {
			continue
		}
		plan := &Plan{}
		for _, b := range l.ActiveBattlers(bank) {
			if b == nil || b.IsDead() {
				continue
			}
			decided := c.Decide(l.Sandbox(), b, plan)
			if IsDebugEnabled() {
				slog.Debug("ai decided", "turn", l.Turn(), "battler", b.Name, "actions", decided)
			}
			actions = append(actions, decided...)
		}
	}
	return actions
}

// Replace sends replacements for the fainted battlers of the controlled
// banks until none is needed.
func (m *Manager) Replace(l *battle.Logic) error {
	for {
		var who *battle.Battler
		for _, b := range l.NeedsReplacement() {
			if m.controllers[b.Bank] != nil {
				who = b
				break
			}
		}
		if who == nil {
			return nil
		}
		with := m.controllers[who.Bank].Replacement(l.Sandbox(), who)
		if with == nil {
			return nil
		}
		if err := l.Replace(who, with); err != nil {
			return fmt.Errorf("replacing %s: %w", who.Name, err)
		}
	}
}
