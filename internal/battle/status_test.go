package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/udisondev/monbattle/internal/data"
)

func TestStatus_Exclusivity(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{})
	b := newTestBattler(t, "machamp", BattlerOptions{})
	l, scene := newDuel(t, 1, a, b)
	h := l.StatusChangeHandler()

	require.True(t, h.StatusChange(StatusBurn, a, b, nil))
	assert.Equal(t, StatusBurn, a.StatusSymbol())
	assert.True(t, scene.Contains("Snorlax was burned!"))

	assert.False(t, h.StatusChange(StatusParalysis, a, b, nil))
	assert.False(t, h.StatusChange(StatusBurn, a, b, nil))
	assert.True(t, scene.Contains("Snorlax is already burned!"))
	assert.Equal(t, StatusBurn, a.StatusSymbol(), "a second major status never replaces the first")

	require.True(t, h.StatusChange(StatusCure, a, b, nil))
	assert.Nil(t, a.Status())
	assert.True(t, h.StatusChange(StatusParalysis, a, b, nil))
}

func TestStatus_VolatileCoexists(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{})
	b := newTestBattler(t, "machamp", BattlerOptions{})
	l, _ := newDuel(t, 1, a, b)
	h := l.StatusChangeHandler()

	require.True(t, h.StatusChange(StatusPoison, a, b, nil))
	require.True(t, h.StatusChange(StatusConfusion, a, b, nil))
	assert.Equal(t, StatusPoison, a.StatusSymbol())
	assert.True(t, a.Effects.Has(StatusConfusion))
	assert.False(t, h.StatusChange(StatusConfusion, a, b, nil))
}

func TestStatus_Immunities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		species string
		ability string
		status  string
	}{
		{"fire vs burn", "charizard", "", StatusBurn},
		{"electric vs paralysis", "pikachu", "", StatusParalysis},
		{"poison vs poison", "gengar", "", StatusPoison},
		{"steel vs toxic", "skarmory", "", StatusToxic},
		{"ice vs freeze", "abomasnow", "", StatusFreeze},
		{"limber", "snorlax", "limber", StatusParalysis},
		{"insomnia", "snorlax", "insomnia", StatusSleep},
		{"immunity", "snorlax", "immunity", StatusToxic},
		{"water veil", "snorlax", "water_veil", StatusBurn},
		{"magma armor", "snorlax", "magma_armor", StatusFreeze},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			target := newTestBattler(t, tt.species, BattlerOptions{Ability: tt.ability})
			foe := newTestBattler(t, "machamp", BattlerOptions{})
			l, _ := newDuel(t, 1, target, foe)

			assert.False(t, l.StatusChangeHandler().StatusChange(tt.status, target, foe, nil))
			assert.Nil(t, target.Status())
		})
	}
}

func TestNewStatus_Unknown(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{})
	b := newTestBattler(t, "machamp", BattlerOptions{})
	l, _ := newDuel(t, 1, a, b)

	_, err := NewStatus(l, a, "doom")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Panics(t, func() { MustNewStatus(l, a, "doom") })
	assert.False(t, l.StatusChangeHandler().StatusChange("doom", a, b, nil))
}

func TestToxic_EscalationAndReset(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{Level: 100})
	bench := newTestBattler(t, "machamp", BattlerOptions{})
	foe := newTestBattler(t, "pikachu", BattlerOptions{})
	l, scene := newParties(t, 1, 1, []*Battler{a, bench}, []*Battler{foe})

	require.True(t, l.StatusChangeHandler().StatusChange(StatusToxic, a, foe, nil))
	toxic, ok := a.Status().(*Toxic)
	require.True(t, ok)

	unit := max(1, a.MaxHP()/16)
	for turn := 1; turn <= 3; turn++ {
		before := a.HP()
		toxic.OnEndTurnEvent(l, scene, []*Battler{a})
		assert.Equal(t, unit*turn, before-a.HP(), "turn %d", turn)
	}
	assert.Equal(t, 4, toxic.Count())

	require.True(t, l.SwitchHandler().Switch(a, bench))
	assert.Equal(t, 1, toxic.Count(), "switching out restarts the counter")
	assert.Same(t, toxic, a.Status(), "the status itself stays")

	toxic.count = toxicMaxCounter
	require.True(t, l.SwitchHandler().Switch(bench, a))
	toxic.count = toxicMaxCounter
	toxic.OnEndTurnEvent(l, scene, []*Battler{a})
	assert.Equal(t, toxicMaxCounter, toxic.Count())
}

func TestBurn_HalvesPhysicalDamage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ability string
		move    string
		burned  bool
		want    float64
	}{
		{"healthy physical", "", "close_combat", false, 1},
		{"burned physical", "", "close_combat", true, 0.5},
		{"burned special", "", "flamethrower", true, 1},
		{"burned with guts", "guts", "close_combat", true, 1},
		{"burned facade", "", "facade", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user := newTestBattler(t, "machamp", BattlerOptions{
				Ability: tt.ability,
				Moves:   []string{"close_combat", "flamethrower", "facade"},
			})
			target := newTestBattler(t, "snorlax", BattlerOptions{})
			l, _ := newDuel(t, 1, user, target)
			if tt.burned {
				require.True(t, l.StatusChangeHandler().StatusChange(StatusBurn, user, target, nil))
			}
			m := user.FindMove(tt.move)
			require.NotNil(t, m)

			bd := l.calcDamage(user, target, m, l.MovePower(user, target, m), false, maxDamageRoll)
			assert.Equal(t, tt.want, bd.Mod1)
			assert.Positive(t, bd.Final)
		})
	}
}

func TestParalysis_HalvesSpeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ability string
		factor  float64
	}{
		{"", 0.5},
		{"quick_feet", 1.5},
	}
	for _, tt := range tests {
		a := newTestBattler(t, "pikachu", BattlerOptions{Ability: tt.ability})
		b := newTestBattler(t, "machamp", BattlerOptions{})
		l, _ := newDuel(t, 1, b, a)
		basis := a.StatBasis(data.StatSpd)

		l.StatusChangeHandler().StatusChange(StatusParalysis, a, b, nil)
		require.True(t, a.HasStatus(StatusParalysis))
		assert.Equal(t, int(float64(basis)*tt.factor), a.Spd())
	}
}

func TestSleep_WakesAfterItsTurns(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 20; seed++ {
		a := newTestBattler(t, "snorlax", BattlerOptions{Moves: []string{"tackle", "sleep_talk"}})
		b := newTestBattler(t, "machamp", BattlerOptions{Level: 100})
		l, _ := newDuel(t, seed, a, b)

		require.True(t, l.StatusChangeHandler().StatusChange(StatusSleep, a, b, nil))
		sleep := a.Status().(*Sleep)
		turns := sleep.Turns()
		require.GreaterOrEqual(t, turns, 1)
		require.LessOrEqual(t, turns, 3)

		tackle := a.FindMove("tackle")
		for i := range turns {
			res := tackle.Proceed(l, a, []*Battler{b})
			require.Zero(t, res.Hits, "seed %d action %d", seed, i+1)
			require.True(t, a.HasStatus(StatusSleep), "seed %d action %d", seed, i+1)
		}
		res := tackle.Proceed(l, a, []*Battler{b})
		assert.Equal(t, 1, res.Hits, "seed %d", seed)
		assert.Nil(t, a.Status(), "seed %d", seed)
	}
}

func TestSleep_EarlyBirdWakesSooner(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{Ability: "early_bird", Moves: []string{"tackle"}})
	b := newTestBattler(t, "machamp", BattlerOptions{Level: 100})
	l, _ := newDuel(t, 1, a, b)

	require.True(t, l.StatusChangeHandler().StatusChange(StatusSleep, a, b, nil))
	a.status.(*Sleep).turns = 3
	tackle := a.FindMove("tackle")

	assert.Zero(t, tackle.Proceed(l, a, []*Battler{b}).Hits)
	assert.Zero(t, tackle.Proceed(l, a, []*Battler{b}).Hits)
	assert.Equal(t, 1, tackle.Proceed(l, a, []*Battler{b}).Hits)
	assert.Nil(t, a.Status())
}

func TestSleep_SleepTalkStaysUsable(t *testing.T) {
	t.Parallel()

	a := newTestBattler(t, "snorlax", BattlerOptions{Moves: []string{"tackle", "sleep_talk"}})
	b := newTestBattler(t, "machamp", BattlerOptions{Level: 100})
	l, _ := newDuel(t, 3, a, b)

	talk := a.FindMove("sleep_talk")
	assert.False(t, l.CanSelect(a, talk), "sleep talk needs sleep")

	require.True(t, l.StatusChangeHandler().StatusChange(StatusSleep, a, b, nil))
	a.status.(*Sleep).turns = 3
	assert.True(t, l.CanSelect(a, talk))

	res := talk.Proceed(l, a, nil)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Hits, "sleep talk called tackle")
	assert.True(t, a.HasStatus(StatusSleep))
}

func TestFreeze_ThawChance(t *testing.T) {
	t.Parallel()

	thawed := 0
	const battles = 200
	for seed := uint64(1); seed <= battles; seed++ {
		a := newTestBattler(t, "snorlax", BattlerOptions{Moves: []string{"tackle"}})
		b := newTestBattler(t, "machamp", BattlerOptions{Level: 100})
		l, _ := newDuel(t, seed, a, b)
		require.True(t, l.StatusChangeHandler().StatusChange(StatusFreeze, a, b, nil))

		res := a.FindMove("tackle").Proceed(l, a, []*Battler{b})
		if a.HasStatus(StatusFreeze) {
			assert.Zero(t, res.Hits, "seed %d", seed)
			continue
		}
		assert.Equal(t, 1, res.Hits, "seed %d", seed)
		thawed++
	}
	// 20% per attempt
	assert.GreaterOrEqual(t, thawed, battles/10)
	assert.LessOrEqual(t, thawed, battles*35/100)
}

func TestFreeze_Thaws(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		frozen   string // move used by the frozen battler, "" to stay idle
		attacker string
		hit      string // move used on the frozen battler
		thawed   bool
	}{
		{"flame wheel thaws its user", "flame_wheel", "", "", true},
		{"scald thaws its user", "scald", "", "", true},
		{"fire hit thaws", "", "charizard", "ember", true},
		{"water hit does not thaw", "", "blastoise", "water_gun", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			species, moves := "machamp", []string{"tackle"}
			if tt.attacker != "" {
				species, moves = tt.attacker, []string{tt.hit}
			}
			a := newTestBattler(t, "snorlax", BattlerOptions{Level: 100, Moves: []string{"flame_wheel", "scald"}})
			b := newTestBattler(t, species, BattlerOptions{Moves: moves})
			l, scene := newDuel(t, 1, a, b)
			require.True(t, l.StatusChangeHandler().StatusChange(StatusFreeze, a, b, nil))

			if tt.frozen != "" {
				res := a.FindMove(tt.frozen).Proceed(l, a, []*Battler{b})
				assert.Equal(t, 1, res.Hits)
			} else {
				res := b.FindMove(tt.hit).Proceed(l, b, []*Battler{a})
				require.Equal(t, 1, res.Hits)
			}
			assert.Equal(t, !tt.thawed, a.HasStatus(StatusFreeze))
			assert.Equal(t, tt.thawed, scene.Contains("Snorlax thawed out!"))
		})
	}
}
