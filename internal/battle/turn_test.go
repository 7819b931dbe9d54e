package battle

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udisondev/monbattle/internal/data"
)

func attack(b *Battler, move string, targets ...*Battler) AttackAction {
	return AttackAction{User: b, Move: b.FindMove(move), Targets: targets}
}

func messageIndex(scene *RecordingScene, msg string) int {
	return slices.Index(scene.Messages, msg)
}

func TestPlayTurn_PriorityBeatsSpeed(t *testing.T) {
	t.Parallel()

	slow := newTestBattler(t, "snorlax", BattlerOptions{Level: 100, Moves: []string{"quick_attack"}})
	fast := newTestBattler(t, "greninja", BattlerOptions{Level: 100, Moves: []string{"tackle"}})
	l, scene := newDuel(t, 1, slow, fast)

	require.NoError(t, l.PlayTurn([]Action{attack(fast, "tackle", slow), attack(slow, "quick_attack", fast)}))

	first := messageIndex(scene, "Snorlax used Quick Attack!")
	second := messageIndex(scene, "Greninja used Tackle!")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
	assert.Equal(t, 2, l.Turn())
}

func TestPlayTurn_SpeedOrder(t *testing.T) {
	t.Parallel()

	slow := newTestBattler(t, "snorlax", BattlerOptions{Level: 100, Moves: []string{"tackle"}})
	fast := newTestBattler(t, "greninja", BattlerOptions{Level: 100, Moves: []string{"tackle"}})
	l, scene := newDuel(t, 1, slow, fast)

	require.NoError(t, l.PlayTurn([]Action{attack(slow, "tackle", fast), attack(fast, "tackle", slow)}))
	assert.Less(t, messageIndex(scene, "Greninja used Tackle!"), messageIndex(scene, "Snorlax used Tackle!"))
}

func TestPlayTurn_SwitchBeforeAttack(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{Level: 100})
	bench := newTestBattler(t, "gengar", BattlerOptions{Level: 100})
	foe := newTestBattler(t, "greninja", BattlerOptions{Level: 100, Moves: []string{"quick_attack"}})
	l, scene := newParties(t, 1, 1, []*Battler{a, bench}, []*Battler{foe})

	require.NoError(t, l.PlayTurn([]Action{
		attack(foe, "quick_attack"),
		SwitchAction{Who: a, With: bench},
	}))
	assert.Same(t, bench, l.Battler(0, 0))
	assert.False(t, a.OnField())
	assert.Equal(t, a.MaxHP(), a.HP())
	assert.True(t, scene.Contains("It doesn't affect Gengar..."), "the attack hits whoever holds the position")
}

func TestPlayTurn_Deterministic(t *testing.T) {
	t.Parallel()

	run := func() []string {
		a := newTestBattler(t, "cinccino", BattlerOptions{Level: 60})
		b := newTestBattler(t, "machamp", BattlerOptions{Level: 60})
		l, scene := newDuel(t, 42, a, b)
		for range 3 {
			if l.Finished() {
				break
			}
			require.NoError(t, l.PlayTurn([]Action{attack(a, "bullet_seed", b), attack(b, "triple_kick", a)}))
		}
		return scene.Messages
	}
	assert.Equal(t, run(), run())
}

func TestPlayTurn_Errors(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{Moves: []string{"tackle"}})
	bench := newTestBattler(t, "pikachu", BattlerOptions{})
	b := newTestBattler(t, "machamp", BattlerOptions{})
	l, _ := newParties(t, 1, 1, []*Battler{a, bench}, []*Battler{b})
	l.SetBag(0, map[string]int{"potion": 1, "leftovers": 1})
	stranger := newTestBattler(t, "ditto", BattlerOptions{})

	tests := []struct {
		name   string
		action Action
	}{
		{"unknown move", AttackAction{User: a, Move: MustNewMove("surf")}},
		{"nil move", AttackAction{User: a}},
		{"actor off the field", attack(bench, "thunderbolt")},
		{"actor from another battle", AttackAction{User: stranger, Move: stranger.FindMove("transform")}},
		{"switch to an active battler", SwitchAction{Who: a, With: a}},
		{"switch to a foe", SwitchAction{Who: a, With: b}},
		{"item not in bag", ItemAction{User: a, Item: "super_potion", Target: a}},
		{"held item from bag", ItemAction{User: a, Item: "leftovers", Target: a}},
		{"item on a foe", ItemAction{User: a, Item: "potion", Target: b}},
		{"mega without stone", MegaAction{User: a}},
		{"flee from a trainer", FleeAction{User: a}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.PlayTurn([]Action{tt.action})
			assert.ErrorIs(t, err, ErrInvalidAction)
		})
	}
	assert.Equal(t, 1, l.Turn(), "rejected turns do not advance the battle")
}

func TestPlayTurn_FinishedBattle(t *testing.T) {
	t.Parallel()

	strong := newTestBattler(t, "machamp", BattlerOptions{Level: 100, Moves: []string{"close_combat"}})
	weak := newTestBattler(t, "snorlax", BattlerOptions{Level: 1, Moves: []string{"tackle"}})
	l, _ := newDuel(t, 1, strong, weak)

	require.NoError(t, l.PlayTurn([]Action{attack(strong, "close_combat", weak), attack(weak, "tackle", strong)}))
	require.True(t, l.Finished())
	assert.Equal(t, Outcome{Finished: true, Winner: 0}, l.Outcome())
	assert.Equal(t, strong.MaxHP(), strong.HP(), "a fainted battler does not move")

	err := l.PlayTurn([]Action{attack(strong, "close_combat", weak)})
	assert.ErrorIs(t, err, ErrBattleFinished)
}

func TestReplace_AfterFaint(t *testing.T) {
	t.Parallel()

	strong := newTestBattler(t, "machamp", BattlerOptions{Level: 100, Moves: []string{"close_combat"}})
	weak := newTestBattler(t, "snorlax", BattlerOptions{Level: 1})
	bench := newTestBattler(t, "cinccino", BattlerOptions{})
	l, _ := newParties(t, 1, 1, []*Battler{strong}, []*Battler{weak, bench})

	require.NoError(t, l.PlayTurn([]Action{attack(strong, "close_combat", weak)}))
	assert.False(t, l.Finished())
	require.Equal(t, []*Battler{weak}, l.NeedsReplacement())

	assert.ErrorIs(t, l.Replace(strong, bench), ErrInvalidAction)
	require.NoError(t, l.Replace(weak, bench))
	assert.Same(t, bench, l.Battler(1, 0))
	assert.Empty(t, l.NeedsReplacement())
}

func TestPlayTurn_ForcedMoveOverridesChoice(t *testing.T) {
	t.Parallel()

	user := newTestBattler(t, "venusaur", BattlerOptions{Level: 100, Moves: []string{"solar_beam", "giga_drain"}})
	target := newTestBattler(t, "snorlax", BattlerOptions{Level: 100, Moves: []string{"tackle"}})
	l, scene := newDuel(t, 1, user, target)

	require.NoError(t, l.PlayTurn([]Action{attack(user, "solar_beam", target), attack(target, "tackle", user)}))
	require.True(t, user.FindMove("solar_beam").Charging())

	require.NoError(t, l.PlayTurn([]Action{attack(user, "giga_drain", target), attack(target, "tackle", user)}))
	assert.False(t, scene.Contains("Venusaur used Giga Drain!"))
	assert.False(t, user.FindMove("solar_beam").Charging())
	assert.Equal(t, user.FindMove("giga_drain").MaxPP(), user.FindMove("giga_drain").PP())
}

func TestUseItem(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{Level: 100})
	b := newTestBattler(t, "machamp", BattlerOptions{})
	l, scene := newDuel(t, 1, a, b)
	l.SetBag(0, map[string]int{"potion": 2, "full_heal": 1, "x_attack": 1})

	l.DamageHandler().DamageChange(50, a, b, nil)
	require.NoError(t, l.PlayTurn([]Action{ItemAction{User: a, Item: "potion", Target: a}}))
	assert.Equal(t, a.MaxHP()-30, a.HP())
	assert.Equal(t, 1, l.Bank(0).Bag["potion"])
	assert.True(t, scene.Contains("Side 0 used a Potion!"))

	require.True(t, l.StatusChangeHandler().StatusChange(StatusBurn, a, b, nil))
	require.NoError(t, l.PlayTurn([]Action{ItemAction{User: a, Item: "full_heal", Target: a}}))
	assert.Nil(t, a.Status())
	_, left := l.Bank(0).Bag["full_heal"]
	assert.False(t, left, "spent items leave the bag")

	require.NoError(t, l.PlayTurn([]Action{ItemAction{User: a, Item: "x_attack", Target: a}}))
	assert.Equal(t, 2, a.Stage(data.StatAtk))

	l.DamageHandler().Heal(a, a.MaxHP(), "")
	require.Equal(t, a.MaxHP(), a.HP())
	require.NoError(t, l.PlayTurn([]Action{ItemAction{User: a, Item: "potion", Target: a}}))
	assert.True(t, scene.Contains("It had no effect."))
	assert.NotContains(t, l.Bank(0).Bag, "potion", "the last potion is spent anyway")
}

func TestMegaEvolution(t *testing.T) {
	t.Parallel()

	zard := newTestBattler(t, "charizard", BattlerOptions{Item: "charizardite_x", Moves: []string{"flamethrower"}})
	other := newTestBattler(t, "charizard", BattlerOptions{Item: "charizardite_x"})
	foe := newTestBattler(t, "snorlax", BattlerOptions{Level: 100})
	l, scene := newParties(t, 1, 1, []*Battler{zard, other}, []*Battler{foe})

	require.True(t, l.CanMegaEvolve(zard))
	require.NoError(t, l.PlayTurn([]Action{MegaAction{User: zard}, attack(zard, "flamethrower", foe)}))

	assert.True(t, zard.MegaEvolved())
	assert.Equal(t, [2]data.TypeID{data.TypeFire, data.TypeDragon}, zard.Types())
	assert.Equal(t, "tough_claws", zard.Ability())
	assert.Less(t, messageIndex(scene, "Charizard has Mega Evolved into Mega Charizard!"),
		messageIndex(scene, "Charizard used Flamethrower!"))
	assert.True(t, l.Bank(0).MegaUsed)
	assert.False(t, l.CanMegaEvolve(zard))

	require.True(t, l.SwitchHandler().Switch(zard, other))
	assert.False(t, l.CanMegaEvolve(other), "one mega evolution per bank")
}

func TestFlee(t *testing.T) {
	t.Parallel()

	newWild := func(t *testing.T, runnerLevel, wildLevel int) (*Logic, *Battler) {
		runner := newTestBattler(t, "greninja", BattlerOptions{Level: runnerLevel})
		wild := newTestBattler(t, "pikachu", BattlerOptions{Level: wildLevel})
		l := NewLogic(Options{Seed: 9, Scene: NewRecordingScene(), Size: 1, Roaming: true})
		require.NoError(t, l.SetParty(0, []*Battler{runner}))
		require.NoError(t, l.SetParty(1, []*Battler{wild}))
		return l, runner
	}

	t.Run("faster runner escapes", func(t *testing.T) {
		l, runner := newWild(t, 100, 10)
		require.NoError(t, l.PlayTurn([]Action{FleeAction{User: runner}}))
		assert.Equal(t, Outcome{Finished: true, Winner: -1, Fled: true}, l.Outcome())
	})

	t.Run("odds grow with attempts", func(t *testing.T) {
		l, runner := newWild(t, 1, 100)
		for attempt := 1; attempt <= 10 && !l.Finished(); attempt++ {
			require.NoError(t, l.PlayTurn([]Action{FleeAction{User: runner}}))
		}
		assert.True(t, l.Outcome().Fled, "30 points per attempt pass the cap by the tenth try")
	})
}

func TestSwitch_Trapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		species string
		item    string
		ability string
		can     bool
	}{
		{"grounded", "snorlax", "", "", false},
		{"shed shell", "snorlax", "shed_shell", "", true},
		{"ghost", "gengar", "", "", true},
		{"flying", "charizard", "", "", true},
		{"levitate", "snorlax", "", "levitate", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			who := newTestBattler(t, tt.species, BattlerOptions{Item: tt.item, Ability: tt.ability})
			bench := newTestBattler(t, "pikachu", BattlerOptions{})
			trapper := newTestBattler(t, "garchomp", BattlerOptions{Ability: "arena_trap"})
			l, scene := newParties(t, 1, 1, []*Battler{who, bench}, []*Battler{trapper})

			assert.Equal(t, tt.can, l.SwitchHandler().CanSwitch(who, bench))
			require.NoError(t, l.PlayTurn([]Action{SwitchAction{Who: who, With: bench}}))
			assert.Equal(t, tt.can, bench.OnField())
			if !tt.can {
				assert.True(t, scene.Contains(who.Name+" can't be switched out!"))
			}
		})
	}
}
