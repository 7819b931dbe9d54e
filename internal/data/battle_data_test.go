package data

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveness(t *testing.T) {
	tests := []struct {
		attack, defend TypeID
		want           float64
	}{
		{TypeFire, TypeGrass, 2},
		{TypeWater, TypeFire, 2},
		{TypeElectric, TypeGround, 0},
		{TypeNormal, TypeGhost, 0},
		{TypeDragon, TypeFairy, 0},
		{TypeFire, TypeWater, 0.5},
		{TypeGrass, TypeNormal, 1},
		{TypeNone, TypeFire, 1},
		{TypeIce, TypeFlying, 2},
	}
	for _, tt := range tests {
		t.Run(tt.attack.String()+"_vs_"+tt.defend.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Effectiveness(tt.attack, tt.defend))
		})
	}
}

func TestParseType(t *testing.T) {
	typ, err := ParseType(" Fire ")
	require.NoError(t, err)
	assert.Equal(t, TypeFire, typ)

	_, err = ParseType("cosmic")
	assert.True(t, errors.Is(err, ErrUnknownType))
}

func TestLoadAll(t *testing.T) {
	require.NoError(t, LoadAll())

	def, ok := GetMove("solar_beam")
	require.True(t, ok)
	assert.Equal(t, "s_2turns", def.Mechanic)
	assert.True(t, def.Has(FlagCharge))

	item, ok := GetItem("full_restore")
	require.True(t, ok)
	assert.True(t, item.Cures("burn"))
	assert.Equal(t, -1, item.HealHP)

	sp, ok := GetSpecies("tyranitar")
	require.True(t, ok)
	assert.Equal(t, [2]TypeID{TypeRock, TypeDark}, sp.Types)

	_, ok = GetSpecies("missingno")
	assert.False(t, ok)
}

func TestCalcStats(t *testing.T) {
	// Garchomp lvl 50: HP (216+31)*50/100+60 = 183
	assert.Equal(t, 183, CalcHP(108, 50))
	assert.Equal(t, 135, CalcStat(130, 50))
}

func TestLoadMoveOverrides(t *testing.T) {
	require.NoError(t, LoadMoves())
	t.Cleanup(func() { _ = LoadMoves() })

	patch := `
moves:
  - symbol: tackle
    power: 50
  - symbol: fire_fang
    type: fire
    category: physical
    power: 65
    accuracy: 95
    pp: 15
    effect_chance: 10
    status: burn
    stat_changes:
      - stat: atk
        stages: 1
`
	require.NoError(t, LoadMoveOverrides(strings.NewReader(patch)))

	tackle, _ := GetMove("tackle")
	assert.Equal(t, 50, tackle.Power)
	assert.Equal(t, 40, moveDefs[0].Power, "literal table must stay untouched")

	fang, ok := GetMove("fire_fang")
	require.True(t, ok)
	assert.Equal(t, TypeFire, fang.Type)
	assert.Equal(t, "s_basic", fang.Mechanic)
	require.Len(t, fang.StatChanges, 1)
	assert.Equal(t, StatAtk, fang.StatChanges[0].Stat)
}

func TestLoadMoveOverrides_Invalid(t *testing.T) {
	require.NoError(t, LoadMoves())
	t.Cleanup(func() { _ = LoadMoves() })

	err := LoadMoveOverrides(strings.NewReader("moves:\n  - symbol: broken\n    pp: 0\n"))
	assert.True(t, errors.Is(err, ErrInvalidMove))

	err = LoadMoveOverrides(strings.NewReader("moves:\n  - symbol: tackle\n    type: cosmic\n"))
	assert.True(t, errors.Is(err, ErrUnknownType))
}
