package battle

import (
	"log/slog"

	"github.com/udisondev/monbattle/internal/data"
)

// Scene is the presentation collaborator of a battle. Calls are fire-and-forget:
// the engine never waits for a scene and never reads anything back from it.
type Scene interface {
	DisplayMessage(msg string)
	ShowHPAnimation(target *Battler, delta int)
	ShowMoveAnimation(user *Battler, targets []*Battler, move *Move)
	ShowAbility(b *Battler)
	ShowStatAnimation(target *Battler, stat data.Stat, delta int)
}

// NopScene discards everything. Used by the AI sandbox.
type NopScene struct{}

func (NopScene) DisplayMessage(string)                         {}
func (NopScene) ShowHPAnimation(*Battler, int)                 {}
func (NopScene) ShowMoveAnimation(*Battler, []*Battler, *Move) {}
func (NopScene) ShowAbility(*Battler)                          {}
func (NopScene) ShowStatAnimation(*Battler, data.Stat, int)    {}

// HPChange is one HP animation request recorded by RecordingScene.
type HPChange struct {
	Target *Battler
	Delta  int
}

// RecordingScene keeps every call for later inspection.
type RecordingScene struct {
	Messages  []string
	HPChanges []HPChange
	Moves     []string
	Abilities []string
}

// NewRecordingScene creates an empty recording scene.
func NewRecordingScene() *RecordingScene {
	return &RecordingScene{}
}

func (s *RecordingScene) DisplayMessage(msg string) {
	s.Messages = append(s.Messages, msg)
}

func (s *RecordingScene) ShowHPAnimation(target *Battler, delta int) {
	s.HPChanges = append(s.HPChanges, HPChange{Target: target, Delta: delta})
}

func (s *RecordingScene) ShowMoveAnimation(_ *Battler, _ []*Battler, move *Move) {
	s.Moves = append(s.Moves, move.Symbol())
}

func (s *RecordingScene) ShowAbility(b *Battler) {
	s.Abilities = append(s.Abilities, b.Ability())
}

func (s *RecordingScene) ShowStatAnimation(*Battler, data.Stat, int) {}

// Contains reports whether msg was displayed.
func (s *RecordingScene) Contains(msg string) bool {
	for _, m := range s.Messages {
		if m == msg {
			return true
		}
	}
	return false
}

// LogScene writes battle messages to a structured logger.
type LogScene struct {
	logger *slog.Logger
}

// NewLogScene creates a scene logging to logger (slog.Default() when nil).
func NewLogScene(logger *slog.Logger) *LogScene {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogScene{logger: logger}
}

func (s *LogScene) DisplayMessage(msg string) {
	s.logger.Info(msg)
}

func (s *LogScene) ShowHPAnimation(target *Battler, delta int) {
	s.logger.Debug("hp changed", "battler", target.Name, "delta", delta, "hp", target.HP())
}

func (s *LogScene) ShowMoveAnimation(user *Battler, targets []*Battler, move *Move) {
	s.logger.Debug("move used", "user", user.Name, "move", move.Symbol(), "targets", len(targets))
}

func (s *LogScene) ShowAbility(b *Battler) {
	s.logger.Debug("ability shown", "battler", b.Name, "ability", b.Ability())
}

func (s *LogScene) ShowStatAnimation(target *Battler, stat data.Stat, delta int) {
	s.logger.Debug("stat changed", "battler", target.Name, "stat", stat.String(), "delta", delta)
}
