package data

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// MoveTable is the global move registry keyed by db symbol.
// Загружается через LoadMoves() при старте, далее только чтение.
var MoveTable map[string]*MoveDef

// GetMove returns the move definition for a db symbol.
func GetMove(symbol string) (*MoveDef, bool) {
	if MoveTable == nil {
		return nil, false
	}
	def, ok := MoveTable[symbol]
	return def, ok
}

// LoadMoves строит MoveTable из Go-литералов (moveDefs).
func LoadMoves() error {
	MoveTable = make(map[string]*MoveDef, len(moveDefs))
	for i := range moveDefs {
		def := moveDefs[i]
		if err := validateMove(&def); err != nil {
			return err
		}
		MoveTable[def.Symbol] = &def
	}
	slog.Info("loaded moves", "count", len(MoveTable))
	return nil
}

func validateMove(def *MoveDef) error {
	switch {
	case def.Symbol == "":
		return fmt.Errorf("%w: empty symbol", ErrInvalidMove)
	case def.Mechanic == "":
		return fmt.Errorf("%w: %s has no mechanic", ErrInvalidMove, def.Symbol)
	case def.PP <= 0:
		return fmt.Errorf("%w: %s has PP %d", ErrInvalidMove, def.Symbol, def.PP)
	case def.Accuracy < 0 || def.Accuracy > 100:
		return fmt.Errorf("%w: %s has accuracy %d", ErrInvalidMove, def.Symbol, def.Accuracy)
	}
	return nil
}

// moveOverride is one YAML entry of a move patch file.
// Nil fields keep the current value; unknown symbols define new moves.
type moveOverride struct {
	Symbol       string       `yaml:"symbol"`
	Type         *string      `yaml:"type"`
	Category     *string      `yaml:"category"`
	Power        *int         `yaml:"power"`
	Accuracy     *int         `yaml:"accuracy"`
	PP           *int         `yaml:"pp"`
	Priority     *int         `yaml:"priority"`
	Mechanic     *string      `yaml:"mechanic"`
	EffectChance *int         `yaml:"effect_chance"`
	Status       *string      `yaml:"status"`
	StatChanges  []StatChange `yaml:"stat_changes"`
}

type moveOverrideFile struct {
	Moves []moveOverride `yaml:"moves"`
}

// LoadMoveOverrides applies a YAML move patch on top of MoveTable.
// Must run after LoadMoves and before any battle is created.
func LoadMoveOverrides(r io.Reader) error {
	if MoveTable == nil {
		return fmt.Errorf("applying move overrides: move table not loaded")
	}

	var file moveOverrideFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decoding move overrides: %w", err)
	}

	for _, o := range file.Moves {
		def, ok := MoveTable[o.Symbol]
		if !ok {
			def = &MoveDef{Symbol: o.Symbol, Mechanic: "s_basic"}
		} else {
			patched := *def
			def = &patched
		}
		if err := applyOverride(def, o); err != nil {
			return fmt.Errorf("move %s: %w", o.Symbol, err)
		}
		if err := validateMove(def); err != nil {
			return err
		}
		MoveTable[def.Symbol] = def
	}

	slog.Info("applied move overrides", "count", len(file.Moves))
	return nil
}

func applyOverride(def *MoveDef, o moveOverride) error {
	if o.Type != nil {
		t, err := ParseType(*o.Type)
		if err != nil {
			return err
		}
		def.Type = t
	}
	if o.Category != nil {
		switch strings.ToLower(*o.Category) {
		case "physical":
			def.Category = CategoryPhysical
		case "special":
			def.Category = CategorySpecial
		case "status":
			def.Category = CategoryStatus
		default:
			return fmt.Errorf("%w: category %q", ErrInvalidMove, *o.Category)
		}
	}
	if o.Power != nil {
		def.Power = *o.Power
	}
	if o.Accuracy != nil {
		def.Accuracy = *o.Accuracy
	}
	if o.PP != nil {
		def.PP = *o.PP
	}
	if o.Priority != nil {
		def.Priority = *o.Priority
	}
	if o.Mechanic != nil {
		def.Mechanic = *o.Mechanic
	}
	if o.EffectChance != nil {
		def.EffectChance = *o.EffectChance
	}
	if o.Status != nil {
		def.Status = *o.Status
	}
	if o.StatChanges != nil {
		def.StatChanges = o.StatChanges
	}
	return nil
}
