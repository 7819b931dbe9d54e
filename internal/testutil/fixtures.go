// Package testutil holds the fixtures shared by package tests: content data,
// battlers and battles, contexts and a PostgreSQL testcontainer.
package testutil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/udisondev/monbattle/internal/battle"
	"github.com/udisondev/monbattle/internal/data"
)

// ErrSimulated is a sentinel error for testing error handling paths.
var ErrSimulated = errors.New("simulated error for testing")

// NoAbility has no registered effect: battlers built with it stay neutral.
const NoAbility = "none"

// MustLoadData loads the content tables. Call it from TestMain, before any
// parallel test reads them.
func MustLoadData() {
	if err := data.LoadAll(); err != nil {
		panic(err)
	}
}

// NewBattler builds a battler of species. An empty ability becomes NoAbility.
func NewBattler(tb testing.TB, species string, opts battle.BattlerOptions) *battle.Battler {
	tb.Helper()
	if opts.Ability == "" {
		opts.Ability = NoAbility
	}
	b, err := battle.NewBattler(species, opts)
	if err != nil {
		tb.Fatalf("building %s: %v", species, err)
	}
	return b
}

// NewBattle builds a battle between two parties. Size defaults to a single
// battle; Start is left to the test.
func NewBattle(tb testing.TB, opts battle.Options, p0, p1 []*battle.Battler) *battle.Logic {
	tb.Helper()
	if opts.Size == 0 {
		opts.Size = 1
	}
	l := battle.NewLogic(opts)
	if err := l.SetParty(0, p0); err != nil {
		tb.Fatalf("bank 0 party: %v", err)
	}
	if err := l.SetParty(1, p1); err != nil {
		tb.Fatalf("bank 1 party: %v", err)
	}
	return l
}

// Faint knocks b out without a launcher.
func Faint(l *battle.Logic, b *battle.Battler) {
	l.DamageHandler().DamageChange(b.HP(), b, nil, nil)
}

// HurtTo leaves b with hp HP.
func HurtTo(l *battle.Logic, b *battle.Battler, hp int) {
	l.DamageHandler().DamageChange(b.HP()-hp, b, nil, nil)
}

// Context returns a context canceled after timeout or at the end of the test.
func Context(tb testing.TB, timeout time.Duration) context.Context {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	tb.Cleanup(cancel)
	return ctx
}
