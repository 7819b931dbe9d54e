package battle

import "github.com/udisondev/monbattle/internal/data"

// Sandbox is a read-only view of a battle used by the AI. Queries run with a
// no-op scene, never mutate the battle and never draw from the RNG; NoiseRoll
// is the only draw and it is explicit.
type Sandbox struct {
	logic *Logic
}

// Turn returns the current turn.
func (s *Sandbox) Turn() int { return s.logic.turn }

// Size returns the number of positions per bank.
func (s *Sandbox) Size() int { return s.logic.size }

// Roaming reports whether fleeing is allowed.
func (s *Sandbox) Roaming() bool { return s.logic.roaming }

// Weather returns the current weather symbol.
func (s *Sandbox) Weather() string { return s.logic.WeatherSymbol() }

// Terrain returns the current terrain symbol.
func (s *Sandbox) Terrain() string { return s.logic.TerrainSymbol() }

func (s *Sandbox) Foes(b *Battler) []*Battler   { return s.logic.Foes(b) }
func (s *Sandbox) Allies(b *Battler) []*Battler { return s.logic.Allies(b) }
func (s *Sandbox) Party(bank int) []*Battler    { return s.logic.Party(bank) }

// Active returns the battlers on the field of bank, fainted ones included.
func (s *Sandbox) Active(bank int) []*Battler { return s.logic.ActiveBattlers(bank) }

func (s *Sandbox) SwitchCandidates(bank int) []*Battler { return s.logic.SwitchCandidates(bank) }

// Bag returns a copy of the bag of bank.
func (s *Sandbox) Bag(bank int) map[string]int {
	out := make(map[string]int, len(s.logic.banks[bank].Bag))
	for k, v := range s.logic.banks[bank].Bag {
		out[k] = v
	}
	return out
}

// UsableMoves returns the moves b may select.
func (s *Sandbox) UsableMoves(b *Battler) []*Move { return s.logic.UsableMoves(b) }

// ForcedMove returns the move b is locked into.
func (s *Sandbox) ForcedMove(b *Battler) (ForcedMove, bool) { return s.logic.ForcedMove(b) }

// Struggle returns the fallback move of b.
func (s *Sandbox) Struggle(b *Battler) *Move { return b.struggle }

// DefaultTargets returns the targets of move without a choice. Random-target
// moves return every foe instead of drawing one.
func (s *Sandbox) DefaultTargets(user *Battler, m *Move) []*Battler {
	if m.Target() == data.TargetRandomFoe {
		return s.logic.Foes(user)
	}
	return s.logic.DefaultTargets(user, m)
}

// Effectiveness returns the type modifier of move on target.
func (s *Sandbox) Effectiveness(user, target *Battler, m *Move) float64 {
	return s.logic.TypeModifier(user, target, m)
}

// MoveType returns the type of move after overrides.
func (s *Sandbox) MoveType(user, target *Battler, m *Move) data.TypeID {
	return s.logic.MoveType(user, target, m)
}

// MovePower returns the base power of move (item and weather dependent powers included).
func (s *Sandbox) MovePower(user, target *Battler, m *Move) int {
	return s.logic.MovePower(user, target, m)
}

// EstimateDamage returns the expected damage of move: maximum roll, no
// critical hit, average hit count.
func (s *Sandbox) EstimateDamage(user, target *Battler, m *Move) int {
	return s.logic.ExpectedDamage(user, target, m).Final
}

// CanInflictStatus reports whether status would be applied to target by move.
func (s *Sandbox) CanInflictStatus(status string, target, user *Battler, m *Move) bool {
	h := s.logic.statusChange
	defer h.silence(true)()
	return h.StatusAppliable(status, target, user, m)
}

// CanChangeStat reports whether stat of target can move by power stages.
func (s *Sandbox) CanChangeStat(stat data.Stat, power int, target, user *Battler, m *Move) bool {
	h := s.logic.statChange
	defer h.silence(true)()
	return h.StatChangeAppliable(stat, power, target, user, m)
}

// CanSwitch reports whether who may switch to with.
func (s *Sandbox) CanSwitch(who, with *Battler) bool {
	h := s.logic.switching
	defer h.silence(true)()
	return h.CanSwitch(who, with)
}

// CanMegaEvolve reports whether b may mega evolve this turn.
func (s *Sandbox) CanMegaEvolve(b *Battler) bool { return s.logic.CanMegaEvolve(b) }

// NoiseRoll draws a uniform value in [0, 1) from the battle RNG.
func (s *Sandbox) NoiseRoll() float64 { return s.logic.rng.Float64() }

// Draws returns the number of RNG draws of the battle.
func (s *Sandbox) Draws() uint64 { return s.logic.rng.Draws() }
