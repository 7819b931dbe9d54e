package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilitiesOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Capabilities{}, CapabilitiesOf(Wild))
	assert.Equal(t, Capabilities{Flee: true}, CapabilitiesOf(Roaming))
	assert.False(t, CapabilitiesOf(5).Items)
	assert.True(t, CapabilitiesOf(6).Items)
	assert.True(t, CapabilitiesOf(MaxLevel).ReadMovepool)
	assert.Equal(t, Capabilities{}, CapabilitiesOf(42))

	// every level keeps the skills of the level below
	for level := Level(2); level <= MaxLevel; level++ {
		prev, cur := CapabilitiesOf(level-1), CapabilitiesOf(level)
		assert.True(t, !prev.Effectiveness || cur.Effectiveness, "level %d", level)
		assert.True(t, !prev.Power || cur.Power, "level %d", level)
		assert.True(t, !prev.Status || cur.Status, "level %d", level)
		assert.True(t, !prev.Switching || cur.Switching, "level %d", level)
		assert.True(t, !prev.Items || cur.Items, "level %d", level)
	}
}

func TestDefaultNoise(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, DefaultNoise(Wild), 1e-9)
	assert.InDelta(t, 0.5, DefaultNoise(Roaming), 1e-9)
	assert.Zero(t, DefaultNoise(MaxLevel))
	for level := Level(1); level < MaxLevel; level++ {
		assert.Less(t, DefaultNoise(level+1), DefaultNoise(level))
	}
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "roaming", Roaming.String())
	assert.Equal(t, "wild", Wild.String())
	assert.Equal(t, "trainer3", Level(3).String())
	assert.True(t, Level(7).Valid())
	assert.False(t, Level(8).Valid())
}

func TestNew(t *testing.T) {
	t.Parallel()

	for level := Roaming; level <= MaxLevel; level++ {
		c, err := New(Options{Level: level, Noise: -1})
		require.NoError(t, err)
		assert.Equal(t, level, c.Level())
		assert.InDelta(t, DefaultNoise(level), c.(*Heuristic).noise, 1e-9)
	}

	_, err := New(Options{Level: 8})
	assert.ErrorIs(t, err, ErrUnknownLevel)
	assert.Panics(t, func() { MustNew(Options{Level: -2}) })

	c := MustNew(Options{Level: 3, Noise: 0.2})
	assert.InDelta(t, 0.2, c.(*Heuristic).noise, 1e-9)
}
