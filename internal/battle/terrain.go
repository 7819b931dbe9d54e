package battle

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/monbattle/internal/data"
)

// Terrain symbols.
const (
	TerrainNone     = "none"
	TerrainElectric = "electric_terrain"
	TerrainGrassy   = "grassy_terrain"
	TerrainMisty    = "misty_terrain"
	TerrainPsychic  = "psychic_terrain"
)

const defaultTerrainTurns = 5

// Terrain is the field terrain. At most one lives in the field handler.
// Terrains only affect grounded battlers.
type Terrain interface {
	Effect
	StartMessage() string
}

// TerrainBase is embedded by every terrain.
type TerrainBase struct {
	EffectBase
	start string
	end   string
}

func newTerrainBase(l *Logic, name string, turns int, start, end string) TerrainBase {
	return TerrainBase{EffectBase: NewEffectBase(l, name, turns), start: start, end: end}
}

func (t *TerrainBase) StartMessage() string { return t.start }

func (t *TerrainBase) OnDelete() {
	if t.counter <= 0 && t.end != "" {
		t.logic.scene.DisplayMessage(t.end)
	}
}

var terrainRegistry = map[string]func(l *Logic, turns int) Terrain{}

// RegisterTerrain registers a terrain factory by symbol.
func RegisterTerrain(symbol string, factory func(l *Logic, turns int) Terrain) {
	terrainRegistry[symbol] = factory
}

// NewTerrain creates terrain symbol lasting turns.
func NewTerrain(l *Logic, symbol string, turns int) (Terrain, error) {
	factory, ok := terrainRegistry[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTerrain, symbol)
	}
	return factory(l, turns), nil
}

// MustNewTerrain is NewTerrain that panics on unknown symbols.
func MustNewTerrain(l *Logic, symbol string, turns int) Terrain {
	t, err := NewTerrain(l, symbol, turns)
	if err != nil {
		panic(err)
	}
	return t
}

// IsKnownTerrain reports whether symbol is registered (or "none").
func IsKnownTerrain(symbol string) bool {
	_, ok := terrainRegistry[symbol]
	return ok || symbol == TerrainNone
}

// FTerrainChangeHandler changes the field terrain.
type FTerrainChangeHandler struct{ handlerBase }

// TerrainAppliable reports whether terrain may replace the current one.
func (h *FTerrainChangeHandler) TerrainAppliable(terrain string) bool {
	if !IsKnownTerrain(terrain) {
		slog.Warn("terrain change ignored", "terrain", terrain, "err", ErrUnknownTerrain)
		return false
	}
	l := h.logic
	last := l.TerrainSymbol()
	if terrain == last {
		return false
	}
	result := l.firstPrevention(func(e Effect) HookResult {
		return e.OnFTerrainPrevention(h, terrain, last)
	}, l.AliveBattlers()...)
	return result == Continue
}

// FTerrainChange installs terrain for turns ("none" clears it).
func (h *FTerrainChangeHandler) FTerrainChange(terrain string, turns int) bool {
	if !h.TerrainAppliable(terrain) {
		return false
	}
	l := h.logic
	last := l.TerrainSymbol()
	isTerrain := func(e Effect) bool { _, ok := e.(Terrain); return ok }
	if terrain == TerrainNone {
		for _, e := range l.field.GetAllFunc(isTerrain) {
			e.Kill()
		}
		l.field.DeleteDeadEffects()
	} else {
		t := MustNewTerrain(l, terrain, turns)
		l.field.Replace(t, isTerrain)
		l.scene.DisplayMessage(t.StartMessage())
	}
	slog.Debug("terrain changed", "terrain", terrain, "last", last)
	l.notify(func(e Effect) {
		e.OnPostFTerrainChange(h, terrain, last)
	}, l.AliveBattlers()...)
	return true
}

// ElectricTerrain boosts grounded Electric moves and keeps grounded battlers awake.
type ElectricTerrain struct{ TerrainBase }

func newElectricTerrain(l *Logic, turns int) Terrain {
	return &ElectricTerrain{newTerrainBase(l, TerrainElectric, turns,
		"An electric current ran across the battlefield!", "The electricity disappeared from the battlefield.")}
}

func (t *ElectricTerrain) OnStatusPrevention(h *StatusChangeHandler, status string, target, _ *Battler, _ *Move) HookResult {
	if status != StatusSleep || !target.Grounded() {
		return Continue
	}
	return h.PreventChange(fmt.Sprintf("%s is protected by the Electric Terrain!", target.Name))
}

func (t *ElectricTerrain) BasePowerMultiplier(user, target *Battler, move *Move) float64 {
	return terrainBoost(t.logic, user, target, move, data.TypeElectric)
}

// GrassyTerrain heals grounded battlers and boosts grounded Grass moves.
type GrassyTerrain struct{ TerrainBase }

func newGrassyTerrain(l *Logic, turns int) Terrain {
	return &GrassyTerrain{newTerrainBase(l, TerrainGrassy, turns,
		"Grass grew to cover the battlefield!", "The grass disappeared from the battlefield.")}
}

func (t *GrassyTerrain) OnEndTurnEvent(l *Logic, _ Scene, battlers []*Battler) {
	for _, b := range battlers {
		if b.IsAlive() && b.OnField() && b.Grounded() {
			l.damage.Heal(b, max(1, b.MaxHP()/16), fmt.Sprintf("%s's HP was restored.", b.Name))
		}
	}
}

func (t *GrassyTerrain) BasePowerMultiplier(user, target *Battler, move *Move) float64 {
	if target != nil && target.Grounded() && (move.Symbol() == "earthquake" || move.Symbol() == "magnitude") {
		return 0.5
	}
	return terrainBoost(t.logic, user, target, move, data.TypeGrass)
}

// MistyTerrain protects grounded battlers from major statuses and weakens Dragon moves.
type MistyTerrain struct{ TerrainBase }

func newMistyTerrain(l *Logic, turns int) Terrain {
	return &MistyTerrain{newTerrainBase(l, TerrainMisty, turns,
		"Mist swirled around the battlefield!", "The mist disappeared from the battlefield.")}
}

func (t *MistyTerrain) OnStatusPrevention(h *StatusChangeHandler, status string, target, _ *Battler, _ *Move) HookResult {
	if !IsMajorStatus(status) && status != StatusConfusion || !target.Grounded() {
		return Continue
	}
	return h.PreventChange(fmt.Sprintf("%s surrounds itself with a protective mist!", target.Name))
}

func (t *MistyTerrain) BasePowerMultiplier(user, target *Battler, move *Move) float64 {
	if target != nil && target.Grounded() && t.logic.MoveType(user, target, move) == data.TypeDragon {
		return 0.5
	}
	return 1
}

// PsychicTerrain blocks priority moves against grounded battlers and boosts Psychic moves.
type PsychicTerrain struct{ TerrainBase }

func newPsychicTerrain(l *Logic, turns int) Terrain {
	return &PsychicTerrain{newTerrainBase(l, TerrainPsychic, turns,
		"The battlefield got weird!", "The weirdness disappeared from the battlefield!")}
}

func (t *PsychicTerrain) OnMovePreventionTarget(l *Logic, user, target *Battler, move *Move) HookResult {
	if user.Bank == target.Bank || !target.Grounded() || l.MovePriority(user, move) <= 0 {
		return Continue
	}
	l.DisplayMessage("%s is protected by the Psychic Terrain!", target.Name)
	return Prevent
}

func (t *PsychicTerrain) BasePowerMultiplier(user, target *Battler, move *Move) float64 {
	return terrainBoost(t.logic, user, target, move, data.TypePsychic)
}

// terrainBoost returns 1.3 when a grounded user uses a move of typ.
func terrainBoost(l *Logic, user, target *Battler, move *Move, typ data.TypeID) float64 {
	if user == nil || !user.Grounded() || !move.IsDamaging() {
		return 1
	}
	if l.MoveType(user, target, move) == typ {
		return 1.3
	}
	return 1
}

func init() {
	RegisterTerrain(TerrainElectric, newElectricTerrain)
	RegisterTerrain(TerrainGrassy, newGrassyTerrain)
	RegisterTerrain(TerrainMisty, newMistyTerrain)
	RegisterTerrain(TerrainPsychic, newPsychicTerrain)
}
