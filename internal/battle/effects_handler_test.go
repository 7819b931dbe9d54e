package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectsHandler_Lookup(t *testing.T) {
	t.Parallel()

	h := NewEffectsHandler()
	a, b, c := newStub("a", 3), newStub("x", 3), newStub("x", 3)
	h.Add(a)
	h.Add(b)
	h.Add(c)

	assert.Equal(t, 3, h.Len())
	assert.Same(t, b, h.Get("x"))
	assert.Len(t, h.GetAll("x"), 2)
	assert.True(t, h.Has("a"))
	assert.False(t, h.Has("missing"))

	b.Kill()
	assert.Same(t, c, h.Get("x"), "dead effects are invisible")
	assert.Equal(t, 2, h.Len())
	assert.True(t, h.HasFunc(func(e Effect) bool { return e == c }))
}

func TestEffectsHandler_CounterAndDelete(t *testing.T) {
	t.Parallel()

	h := NewEffectsHandler()
	short, forever := newStub("short", 1), newStub("forever", Infinity)
	h.Add(short)
	h.Add(forever)

	h.UpdateCounter()
	assert.True(t, short.Dead())
	assert.False(t, forever.Dead())
	assert.Equal(t, Infinity, forever.Counter())

	h.DeleteDeadEffects()
	h.DeleteDeadEffects()
	assert.Equal(t, 1, short.deletes, "OnDelete runs once")
	assert.Equal(t, 0, forever.deletes)
	assert.Equal(t, 1, h.Len())
}

func TestEffectsHandler_EachPurgesAfterOutermostPass(t *testing.T) {
	t.Parallel()

	h := NewEffectsHandler()
	first, second := newStub("first", 3), newStub("second", 3)
	h.Add(first)
	h.Add(second)

	var visited []string
	completed := h.Each(func(e Effect) bool {
		visited = append(visited, e.Name())
		if e == first {
			first.Kill()
			h.Each(func(Effect) bool { return true })
			assert.Len(t, h.effects, 2, "nested pass must not purge")
			assert.Equal(t, 0, first.deletes)
		}
		return true
	})

	require.True(t, completed)
	assert.Equal(t, []string{"first", "second"}, visited)
	assert.Equal(t, 1, first.deletes)
	assert.Len(t, h.effects, 1)
}

func TestEffectsHandler_EachStopsAndSkipsAdded(t *testing.T) {
	t.Parallel()

	h := NewEffectsHandler()
	h.Add(newStub("a", 3))
	h.Add(newStub("b", 3))

	visits := 0
	completed := h.Each(func(Effect) bool {
		visits++
		h.Add(newStub("late", 3))
		return visits < 1
	})
	assert.False(t, completed)
	assert.Equal(t, 1, visits)
	assert.Equal(t, 3, h.Len())

	visits = 0
	h.Each(func(Effect) bool { visits++; return true })
	assert.Equal(t, 3, visits)
}

func TestEffectsHandler_Replace(t *testing.T) {
	t.Parallel()

	h := NewEffectsHandler()
	old := newStub("weather", 5)
	h.Add(old)
	h.Add(newStub("other", 5))

	fresh := newStub("weather", 5)
	h.Replace(fresh, func(e Effect) bool { return e.Name() == "weather" })

	assert.Same(t, fresh, h.Get("weather"))
	assert.Equal(t, 1, old.deletes)
	assert.Equal(t, 2, h.Len())

	h.KillAll()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 1, fresh.deletes)
}
