package ai

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownLevel is returned for levels without a registered factory.
var ErrUnknownLevel = errors.New("unknown ai level")

// Options configures a controller.
type Options struct {
	Level Level
	// Noise is the amplitude n of the multiplicative noise [-n, +n].
	// A negative value selects DefaultNoise(Level).
	Noise float64
}

// Factory builds a controller.
type Factory func(opts Options) Controller

var (
	registryMu sync.RWMutex
	registry   = map[Level]Factory{}
)

// Register installs the factory of level, replacing any previous one.
func Register(level Level, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[level] = factory
}

// New builds the controller registered for opts.Level.
func New(opts Options) (Controller, error) {
	registryMu.RLock()
	factory, ok := registry[opts.Level]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(opts.Level))
	}
	if opts.Noise < 0 {
		opts.Noise = DefaultNoise(opts.Level)
	}
	return factory(opts), nil
}

// MustNew is New that panics on unknown levels.
func MustNew(opts Options) Controller {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

func init() {
	for level := Roaming; level <= MaxLevel; level++ {
		Register(level, func(opts Options) Controller { return NewHeuristic(opts) })
	}
}
