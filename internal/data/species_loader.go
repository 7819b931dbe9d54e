package data

import (
	"fmt"
	"log/slog"
)

// SpeciesTable is the global species registry keyed by db symbol.
var SpeciesTable map[string]*SpeciesDef

// GetSpecies returns the species definition for a db symbol.
func GetSpecies(symbol string) (*SpeciesDef, bool) {
	if SpeciesTable == nil {
		return nil, false
	}
	def, ok := SpeciesTable[symbol]
	return def, ok
}

// LoadSpecies строит SpeciesTable из Go-литералов (speciesDefs).
// Every default move must exist in MoveTable, so LoadMoves runs first.
func LoadSpecies() error {
	SpeciesTable = make(map[string]*SpeciesDef, len(speciesDefs))
	for i := range speciesDefs {
		def := &speciesDefs[i]
		for _, m := range def.Moves {
			if _, ok := GetMove(m); !ok {
				return fmt.Errorf("species %s: %w: %s", def.Symbol, ErrUnknownMove, m)
			}
		}
		SpeciesTable[def.Symbol] = def
	}
	slog.Info("loaded species", "count", len(SpeciesTable))
	return nil
}

// LoadAll loads every table in dependency order.
func LoadAll() error {
	if err := LoadMoves(); err != nil {
		return fmt.Errorf("loading moves: %w", err)
	}
	if err := LoadItems(); err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	if err := LoadSpecies(); err != nil {
		return fmt.Errorf("loading species: %w", err)
	}
	return nil
}
