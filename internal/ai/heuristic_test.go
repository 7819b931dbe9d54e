package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udisondev/monbattle/internal/battle"
)

func TestNormalCDF(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, normalCDF(75, powerMean, powerStdDev), 1e-9)
	assert.InDelta(t, 0.8413, normalCDF(100, powerMean, powerStdDev), 1e-4)
	assert.InDelta(t, 0.1587, normalCDF(50, powerMean, powerStdDev), 1e-4)

	prev := 0.0
	for power := 0; power <= 250; power += 10 {
		v := normalCDF(float64(power), powerMean, powerStdDev)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestPick_TiesKeepFirst(t *testing.T) {
	t.Parallel()

	h := NewHeuristic(Options{Level: 4})
	a := battle.FleeAction{}
	b := battle.MegaAction{}
	got, ok := h.pick(nil, []candidate{{action: a, score: 1}, {action: b, score: 1}})
	require.True(t, ok)
	assert.Equal(t, a, got)

	got, ok = h.pick(nil, []candidate{{action: a, score: 0.5}, {action: b, score: 1}})
	require.True(t, ok)
	assert.Equal(t, b, got)

	_, ok = h.pick(nil, nil)
	assert.False(t, ok)
}

func TestHeuristic_PicksSuperEffectiveMove(t *testing.T) {
	t.Parallel()

	pika := newBattler(t, "pikachu", battle.BattlerOptions{})
	foe := newBattler(t, "blastoise", battle.BattlerOptions{})
	l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{pika}, []*battle.Battler{foe})

	h := NewHeuristic(Options{Level: 4})
	actions := h.Decide(l.Sandbox(), pika, &Plan{})
	require.Len(t, actions, 1)
	atk, ok := actions[0].(battle.AttackAction)
	require.True(t, ok, "got %v", actions[0])
	assert.Equal(t, "thunderbolt", atk.Move.Symbol())
	assert.Equal(t, []*battle.Battler{foe}, atk.Targets)
}

func TestHeuristic_WildWithoutNoisePicksFirstMove(t *testing.T) {
	t.Parallel()

	pika := newBattler(t, "pikachu", battle.BattlerOptions{})
	foe := newBattler(t, "garchomp", battle.BattlerOptions{})
	l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{pika}, []*battle.Battler{foe})

	// effectiveness is ignored: the immune thunderbolt ties with quick attack
	actions := NewHeuristic(Options{Level: Wild}).Decide(l.Sandbox(), pika, nil)
	require.Len(t, actions, 1)
	atk := actions[0].(battle.AttackAction)
	assert.Equal(t, "thunderbolt", atk.Move.Symbol())
}

func TestHeuristic_WildNeverUsesItems(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 30; seed++ {
		pika := newBattler(t, "pikachu", battle.BattlerOptions{Item: "sitrus_berry"})
		foe := newBattler(t, "garchomp", battle.BattlerOptions{})
		l := newBattle(t, battle.Options{Seed: seed}, []*battle.Battler{pika}, []*battle.Battler{foe})
		l.SetBag(0, map[string]int{"potion": 5, "full_heal": 1, "x_attack": 1})
		hurtTo(l, pika, pika.MaxHP()/10)

		for _, a := range NewHeuristic(Options{Level: Wild, Noise: 0.5}).Decide(l.Sandbox(), pika, nil) {
			_, isItem := a.(battle.ItemAction)
			assert.False(t, isItem, "seed %d: %v", seed, a)
		}
	}
}

func TestHeuristic_Items(t *testing.T) {
	t.Parallel()

	t.Run("heals under threshold", func(t *testing.T) {
		t.Parallel()
		pika := newBattler(t, "pikachu", battle.BattlerOptions{})
		foe := newBattler(t, "garchomp", battle.BattlerOptions{})
		l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{pika}, []*battle.Battler{foe})
		l.SetBag(0, map[string]int{"potion": 1, "full_heal": 1})
		hurtTo(l, pika, pika.MaxHP()/10)

		actions := NewHeuristic(Options{Level: 6}).Decide(l.Sandbox(), pika, nil)
		require.Len(t, actions, 1)
		assert.Equal(t, battle.ItemAction{User: pika, Item: "potion", Target: pika}, actions[0])
	})

	t.Run("cures matching status", func(t *testing.T) {
		t.Parallel()
		pika := newBattler(t, "pikachu", battle.BattlerOptions{})
		foe := newBattler(t, "garchomp", battle.BattlerOptions{})
		l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{pika}, []*battle.Battler{foe})
		l.SetBag(0, map[string]int{"full_heal": 1})
		require.True(t, l.StatusChangeHandler().StatusChange("burn", pika, nil, nil))

		actions := NewHeuristic(Options{Level: 6}).Decide(l.Sandbox(), pika, nil)
		require.Len(t, actions, 1)
		assert.Equal(t, battle.ItemAction{User: pika, Item: "full_heal", Target: pika}, actions[0])
	})

	t.Run("no item when healthy", func(t *testing.T) {
		t.Parallel()
		pika := newBattler(t, "pikachu", battle.BattlerOptions{})
		foe := newBattler(t, "blastoise", battle.BattlerOptions{})
		l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{pika}, []*battle.Battler{foe})
		l.SetBag(0, map[string]int{"potion": 1, "full_heal": 1})

		actions := NewHeuristic(Options{Level: 6}).Decide(l.Sandbox(), pika, nil)
		require.Len(t, actions, 1)
		_, isItem := actions[0].(battle.ItemAction)
		assert.False(t, isItem)
	})
}

func TestHeuristic_SwitchesOutOfDanger(t *testing.T) {
	t.Parallel()

	pika := newBattler(t, "pikachu", battle.BattlerOptions{})
	fainted := newBattler(t, "snorlax", battle.BattlerOptions{})
	skarm := newBattler(t, "skarmory", battle.BattlerOptions{})
	foe := newBattler(t, "garchomp", battle.BattlerOptions{})
	l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{pika, fainted, skarm}, []*battle.Battler{foe})
	faint(l, fainted)
	require.True(t, fainted.IsDead())

	actions := NewHeuristic(Options{Level: MaxLevel}).Decide(l.Sandbox(), pika, &Plan{})
	require.Len(t, actions, 1)
	assert.Equal(t, battle.SwitchAction{Who: pika, With: skarm}, actions[0])

	// the member already picked by an ally is not picked twice
	plan := &Plan{Actions: []battle.Action{battle.SwitchAction{Who: pika, With: skarm}}}
	actions = NewHeuristic(Options{Level: MaxLevel}).Decide(l.Sandbox(), pika, plan)
	require.Len(t, actions, 1)
	_, isSwitch := actions[0].(battle.SwitchAction)
	assert.False(t, isSwitch)
}

func TestHeuristic_NeverSwitchesToFaintedOrActive(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 40; seed++ {
		p0 := []*battle.Battler{
			newBattler(t, "pikachu", battle.BattlerOptions{}),
			newBattler(t, "venusaur", battle.BattlerOptions{}),
			newBattler(t, "snorlax", battle.BattlerOptions{}),
			newBattler(t, "skarmory", battle.BattlerOptions{}),
		}
		p1 := []*battle.Battler{
			newBattler(t, "garchomp", battle.BattlerOptions{}),
			newBattler(t, "machamp", battle.BattlerOptions{}),
		}
		l := newBattle(t, battle.Options{Seed: seed, Size: 2}, p0, p1)
		faint(l, p0[2])

		for _, b := range l.ActiveBattlers(0) {
			h := NewHeuristic(Options{Level: Level(5 + seed%3), Noise: 0.5})
			for _, a := range h.Decide(l.Sandbox(), b, &Plan{}) {
				s, ok := a.(battle.SwitchAction)
				if !ok {
					continue
				}
				assert.True(t, s.With.IsAlive(), "seed %d: %v", seed, s)
				assert.False(t, s.With.OnField(), "seed %d: %v", seed, s)
			}
		}
	}
}

func TestHeuristic_StruggleFallback(t *testing.T) {
	t.Parallel()

	// fling without a held item can't be selected
	pika := newBattler(t, "pikachu", battle.BattlerOptions{Moves: []string{"fling"}})
	foe := newBattler(t, "blastoise", battle.BattlerOptions{})
	l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{pika}, []*battle.Battler{foe})
	require.Empty(t, l.UsableMoves(pika))

	for level := Wild; level <= MaxLevel; level++ {
		actions := NewHeuristic(Options{Level: level}).Decide(l.Sandbox(), pika, nil)
		require.Len(t, actions, 1, "level %d", level)
		atk, ok := actions[0].(battle.AttackAction)
		require.True(t, ok, "level %d", level)
		assert.Same(t, pika.Struggle(), atk.Move)
		assert.Equal(t, []*battle.Battler{foe}, atk.Targets)
	}
	require.NoError(t, l.PlayTurn([]battle.Action{
		NewHeuristic(Options{Level: 3}).Decide(l.Sandbox(), pika, nil)[0],
		battle.AttackAction{User: foe, Move: foe.FindMove("ice_beam")},
	}))
}

func TestHeuristic_MegaEvolves(t *testing.T) {
	t.Parallel()

	zard := newBattler(t, "charizard", battle.BattlerOptions{Item: "charizardite_x"})
	foe := newBattler(t, "blastoise", battle.BattlerOptions{})
	l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{zard}, []*battle.Battler{foe})

	actions := NewHeuristic(Options{Level: 6}).Decide(l.Sandbox(), zard, &Plan{})
	require.Len(t, actions, 2)
	assert.Equal(t, battle.MegaAction{User: zard}, actions[0])
	assert.IsType(t, battle.AttackAction{}, actions[1])

	// below the mega level the stone is ignored
	actions = NewHeuristic(Options{Level: 5}).Decide(l.Sandbox(), zard, &Plan{})
	require.Len(t, actions, 1)

	// one mega evolution per bank and turn
	plan := &Plan{Actions: []battle.Action{battle.MegaAction{User: zard}}}
	actions = NewHeuristic(Options{Level: 6}).Decide(l.Sandbox(), zard, plan)
	require.Len(t, actions, 1)
}

func TestHeuristic_RoamingFlees(t *testing.T) {
	t.Parallel()

	newRoaming := func() (*battle.Logic, *battle.Battler) {
		pika := newBattler(t, "pikachu", battle.BattlerOptions{})
		foe := newBattler(t, "blastoise", battle.BattlerOptions{})
		l := newBattle(t, battle.Options{Seed: 1, Roaming: true}, []*battle.Battler{pika}, []*battle.Battler{foe})
		return l, pika
	}

	l, pika := newRoaming()
	actions := NewHeuristic(Options{Level: Roaming}).Decide(l.Sandbox(), pika, nil)
	require.Len(t, actions, 1)
	assert.IsType(t, battle.AttackAction{}, actions[0])

	l, pika = newRoaming()
	hurtTo(l, pika, pika.MaxHP()/10)
	actions = NewHeuristic(Options{Level: Roaming}).Decide(l.Sandbox(), pika, nil)
	require.Len(t, actions, 1)
	assert.Equal(t, battle.FleeAction{User: pika}, actions[0])
}

func TestHeuristic_ForcedMove(t *testing.T) {
	t.Parallel()

	zard := newBattler(t, "charizard", battle.BattlerOptions{Moves: []string{"solar_beam", "flamethrower"}})
	foe := newBattler(t, "blastoise", battle.BattlerOptions{})
	l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{zard}, []*battle.Battler{foe})
	solar := zard.FindMove("solar_beam")
	require.NoError(t, l.PlayTurn([]battle.Action{
		battle.AttackAction{User: zard, Move: solar},
		battle.AttackAction{User: foe, Move: foe.FindMove("mirror_coat")},
	}))
	forced, ok := l.ForcedMove(zard)
	require.True(t, ok)

	actions := NewHeuristic(Options{Level: MaxLevel}).Decide(l.Sandbox(), zard, nil)
	require.Len(t, actions, 1)
	assert.Equal(t, battle.AttackAction{User: zard, Move: forced.Move, Targets: forced.Targets}, actions[0])
}

func TestHeuristic_NoDrawsWithoutNoise(t *testing.T) {
	t.Parallel()

	pika := newBattler(t, "pikachu", battle.BattlerOptions{})
	foe := newBattler(t, "blastoise", battle.BattlerOptions{})
	l := newBattle(t, battle.Options{Seed: 1}, []*battle.Battler{pika}, []*battle.Battler{foe})
	l.SetBag(0, map[string]int{"potion": 1})

	before := l.RNG().Draws()
	NewHeuristic(Options{Level: MaxLevel}).Decide(l.Sandbox(), pika, nil)
	assert.Equal(t, before, l.RNG().Draws())

	// one roll per candidate with noise
	NewHeuristic(Options{Level: 4, Noise: 0.3}).Decide(l.Sandbox(), pika, nil)
	assert.Greater(t, l.RNG().Draws(), before)
	assert.Equal(t, pika.MaxHP(), pika.HP())
}
