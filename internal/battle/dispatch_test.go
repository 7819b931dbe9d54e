package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// preventer prevents every switch and counts its calls.
type preventer struct {
	EffectBase
	calls int
}

func (p *preventer) OnSwitchPrevention(*SwitchHandler, *Battler, *Battler) HookResult {
	p.calls++
	return Prevent
}

// multiplier multiplies the base power.
type multiplier struct {
	EffectBase
	factor float64
}

func (m *multiplier) BasePowerMultiplier(*Battler, *Battler, *Move) float64 { return m.factor }

func TestEachEffect_Order(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{Ability: "guts", Item: "leftovers"})
	b := newTestBattler(t, "machamp", BattlerOptions{Ability: "no_guard"})
	l, _ := newDuel(t, 1, a, b)

	a.status = MustNewStatus(l, a, StatusPoison)
	a.Effects.Add(newStub("a_volatile", 3))
	b.Effects.Add(newStub("b_volatile", 3))
	l.Bank(1).Effects.Add(newStub("bank1", 3))
	l.Bank(0).Effects.Add(newStub("bank0", 3))
	l.Bank(0).Positions[0].Add(newStub("pos0", 3))
	l.Bank(1).Positions[0].Add(newStub("pos1", 3))
	l.Field().Add(newStub("field_other", 3))
	l.Field().Add(MustNewTerrain(l, TerrainGrassy, 5))
	l.Field().Add(MustNewWeather(l, WeatherRain, 5))

	visit := func(battlers ...*Battler) []string {
		var order []string
		l.eachEffect(func(e Effect) bool {
			order = append(order, e.Name())
			return true
		}, battlers...)
		return order
	}

	assert.Equal(t, []string{
		"guts", "leftovers", "poison", "a_volatile",
		"no_guard", "b_volatile",
		"bank0", "bank1",
		"pos0", "pos1",
		"rain", "grassy_terrain", "field_other",
	}, visit(a, b))

	assert.Equal(t, []string{
		"no_guard", "b_volatile",
		"guts", "leftovers", "poison", "a_volatile",
		"bank1", "bank0",
		"pos1", "pos0",
		"rain", "grassy_terrain", "field_other",
	}, visit(b, a))

	assert.Equal(t, visit(a, b), visit(a, nil, b, a), "nil and duplicate battlers are ignored")
}

func TestFirstPrevention_ShortCircuits(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{})
	b := newTestBattler(t, "machamp", BattlerOptions{})
	l, _ := newDuel(t, 1, a, b)

	first := &preventer{EffectBase: NewEffectBase(l, "first", 3)}
	second := &preventer{EffectBase: NewEffectBase(l, "second", 3)}
	a.Effects.Add(first)
	l.Field().Add(second)

	result := l.firstPrevention(func(e Effect) HookResult {
		return e.OnSwitchPrevention(l.SwitchHandler(), a, nil)
	}, a, b)

	assert.Equal(t, Prevent, result)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestFoldMultiplier_Deterministic(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{})
	b := newTestBattler(t, "machamp", BattlerOptions{})
	l, _ := newDuel(t, 1, a, b)

	a.Effects.Add(&multiplier{EffectBase: NewEffectBase(l, "x2", 3), factor: 2})
	l.Bank(1).Effects.Add(&multiplier{EffectBase: NewEffectBase(l, "x1.5", 3), factor: 1.5})
	l.Field().Add(&multiplier{EffectBase: NewEffectBase(l, "x0.5", 3), factor: 0.5})

	fold := func() float64 {
		return l.foldMultiplier(func(e Effect) float64 { return e.BasePowerMultiplier(a, b, nil) }, a, b)
	}
	assert.InDelta(t, 1.5, fold(), 1e-9)
	assert.Equal(t, fold(), fold())
}
