package sim

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/monbattle/internal/ai"
	"github.com/udisondev/monbattle/internal/data"
	"github.com/udisondev/monbattle/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.MustLoadData()
	os.Exit(m.Run())
}

func duelSetup() Setup {
	return Setup{
		Name: "test",
		Size: 1,
		Sides: [2]Side{
			{
				Level: 6, Noise: -1,
				Members: []Member{{Species: "pikachu"}, {Species: "charizard", Item: "charizardite_x"}},
				Bag:     map[string]int{"potion": 2},
			},
			{
				Level: 3, Noise: -1,
				Members: []Member{{Species: "blastoise"}, {Species: "gengar"}},
			},
		},
	}
}

// outcomeOf drops the wall clock fields.
func outcomeOf(r Result) Result {
	return Result{ID: r.ID, Seed: r.Seed, Winner: r.Winner, Fled: r.Fled, Turns: r.Turns, Survivors: r.Survivors, Draws: r.Draws}
}

func TestRun_PlaysToTheEnd(t *testing.T) {
	t.Parallel()

	res, err := Run(context.Background(), duelSetup(), 1)
	require.NoError(t, err)

	assert.Equal(t, BattleID("test", 1), res.ID)
	assert.Positive(t, res.Turns)
	assert.Positive(t, res.Draws)
	require.Contains(t, []int{0, 1}, res.Winner)
	assert.Zero(t, res.Survivors[1-res.Winner])
	assert.Positive(t, res.Survivors[res.Winner])
}

func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 5; seed++ {
		a, err := Run(context.Background(), duelSetup(), seed)
		require.NoError(t, err)
		b, err := Run(context.Background(), duelSetup(), seed)
		require.NoError(t, err)
		assert.Equal(t, outcomeOf(a), outcomeOf(b), "seed %d", seed)
	}
}

func TestRun_TurnLimit(t *testing.T) {
	t.Parallel()

	setup := Setup{
		Name:     "limit",
		Size:     1,
		MaxTurns: 1,
		Sides: [2]Side{
			{Level: 1, Members: []Member{{Species: "snorlax"}}},
			{Level: 1, Members: []Member{{Species: "snorlax"}}},
		},
	}
	res, err := Run(context.Background(), setup, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Turns)
	assert.Equal(t, -1, res.Winner)
	assert.Equal(t, [2]int{1, 1}, res.Survivors)
}

func TestRun_InvalidSetup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Setup)
		want   error
	}{
		{"no size", func(s *Setup) { s.Size = 0 }, ErrInvalidSetup},
		{"empty side", func(s *Setup) { s.Sides[1].Members = nil }, ErrEmptySide},
		{"unknown level", func(s *Setup) { s.Sides[0].Level = 12 }, ai.ErrUnknownLevel},
		{"unknown species", func(s *Setup) { s.Sides[0].Members[0].Species = "missingno" }, data.ErrUnknownSpecies},
		{"unknown item", func(s *Setup) { s.Sides[1].Members[0].Item = "golden_apple" }, data.ErrUnknownItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			setup := duelSetup()
			tt.modify(&setup)
			_, err := Run(context.Background(), setup, 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, duelSetup(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RoamingMayFlee(t *testing.T) {
	t.Parallel()

	setup := Setup{
		Name:    "roaming",
		Size:    1,
		Roaming: true,
		Sides: [2]Side{
			{Level: ai.MaxLevel, Members: []Member{{Species: "garchomp", Level: 70}}},
			{Level: ai.Roaming, Members: []Member{{Species: "pikachu", Level: 30}}},
		},
	}
	for seed := uint64(1); seed <= 10; seed++ {
		res, err := Run(context.Background(), setup, seed)
		require.NoError(t, err)
		if res.Fled {
			assert.Equal(t, -1, res.Winner)
			continue
		}
		assert.Equal(t, 0, res.Winner, "seed %d", seed)
	}
}

func TestBattleID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BattleID("a", 1), BattleID("a", 1))
	assert.NotEqual(t, BattleID("a", 1), BattleID("a", 2))
	assert.NotEqual(t, BattleID("a", 1), BattleID("b", 1))
}

func TestRunBatch(t *testing.T) {
	t.Parallel()

	var (
		mu   sync.Mutex
		seen []uint64
	)
	sink := func(_ context.Context, r Result) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, r.Seed)
		return nil
	}
	results, err := RunBatch(context.Background(), duelSetup(), Batch{Battles: 6, FirstSeed: 10, Workers: 3}, sink)
	require.NoError(t, err)
	require.Len(t, results, 6)
	assert.ElementsMatch(t, []uint64{10, 11, 12, 13, 14, 15}, seen)

	for i, r := range results {
		assert.Equal(t, uint64(10+i), r.Seed)
		single, err := Run(context.Background(), duelSetup(), r.Seed)
		require.NoError(t, err)
		assert.Equal(t, outcomeOf(single), outcomeOf(r))
	}

	s := Summarize(results)
	assert.Equal(t, 6, s.Battles)
	assert.Equal(t, 6, s.Wins[0]+s.Wins[1]+s.Draws+s.Fled)
}

func TestRunBatch_SinkError(t *testing.T) {
	t.Parallel()

	_, err := RunBatch(context.Background(), duelSetup(), Batch{Battles: 3, FirstSeed: 1},
		func(context.Context, Result) error { return testutil.ErrSimulated })
	assert.ErrorIs(t, err, testutil.ErrSimulated)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize([]Result{
		{Winner: 0, Turns: 10},
		{Winner: 1, Turns: 4},
		{Winner: 0, Turns: 6},
		{Winner: -1, Fled: true, Turns: 2},
		{Winner: -1, Turns: 200},
	})
	assert.Equal(t, Summary{Battles: 5, Wins: [2]int{2, 1}, Draws: 1, Fled: 1, Turns: 222, MaxTurn: 200}, s)
	assert.InDelta(t, 44.4, s.AvgTurns(), 1e-9)
	assert.Zero(t, Summary{}.AvgTurns())
}
