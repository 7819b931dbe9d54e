// Package sim plays self-play battles between two AI controlled sides.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/udisondev/monbattle/internal/ai"
	"github.com/udisondev/monbattle/internal/battle"
	"github.com/udisondev/monbattle/internal/rng"
)

// DefaultMaxTurns caps a battle that no side manages to win.
const DefaultMaxTurns = 200

var (
	ErrEmptySide    = errors.New("side has no members")
	ErrInvalidSetup = errors.New("invalid battle setup")
)

// Member describes one party member.
type Member struct {
	Species string
	Name    string
	Level   int
	Ability string
	Item    string
	Moves   []string
}

// Side is one bank: its party, bag and AI.
type Side struct {
	Level   ai.Level
	Noise   float64 // negative selects the default noise of Level
	Members []Member
	Bag     map[string]int
}

// Setup describes the battles to play.
type Setup struct {
	// Name namespaces the battle ids: the same name and seed replay the same battle.
	Name     string
	Size     int
	Roaming  bool
	MaxTurns int
	Sides    [2]Side
	// Logger receives the battle messages; nil plays silently.
	Logger *slog.Logger
}

func (s Setup) validate() error {
	if s.Size < 1 || s.Size > 3 {
		return fmt.Errorf("%w: size %d", ErrInvalidSetup, s.Size)
	}
	for i, side := range s.Sides {
		if len(side.Members) == 0 {
			return fmt.Errorf("side %d: %w", i, ErrEmptySide)
		}
		if !side.Level.Valid() {
			return fmt.Errorf("side %d: %w: %d", i, ai.ErrUnknownLevel, side.Level)
		}
	}
	return nil
}

// Result is the outcome of one battle.
type Result struct {
	ID        uuid.UUID
	Seed      uint64
	Winner    int // -1 for a draw, a flee or the turn limit
	Fled      bool
	Turns     int
	Survivors [2]int
	Draws     uint64
	StartedAt time.Time
	Duration  time.Duration
}

// BattleID returns the id of the battle name/seed. The battle RNG is derived
// from it, so an id is enough to replay a battle.
func BattleID(name string, seed uint64) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name+"/"+strconv.FormatUint(seed, 10)))
}

// Run plays one battle to completion or to the turn limit.
func Run(ctx context.Context, setup Setup, seed uint64) (Result, error) {
	if err := setup.validate(); err != nil {
		return Result{}, err
	}
	maxTurns := setup.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	id := BattleID(setup.Name, seed)
	res := Result{ID: id, Seed: seed, Winner: -1, StartedAt: time.Now()}

	var scene battle.Scene = battle.NopScene{}
	if setup.Logger != nil {
		scene = battle.NewLogScene(setup.Logger.With("battle", id.String()))
	}
	l := battle.NewLogic(battle.Options{
		RNG:     rng.NewFromKey(id.String()),
		Scene:   scene,
		Size:    setup.Size,
		Roaming: setup.Roaming,
	})

	mgr := ai.NewManager()
	for bank, side := range setup.Sides {
		party, err := buildParty(side.Members)
		if err != nil {
			return res, fmt.Errorf("side %d: %w", bank, err)
		}
		if err := l.SetParty(bank, party); err != nil {
			return res, fmt.Errorf("side %d: %w", bank, err)
		}
		if len(side.Bag) > 0 {
			l.SetBag(bank, maps.Clone(side.Bag))
		}
		ctrl, err := ai.New(ai.Options{Level: side.Level, Noise: side.Noise})
		if err != nil {
			return res, fmt.Errorf("side %d: %w", bank, err)
		}
		mgr.Register(bank, ctrl)
	}

	l.Start()
	for !l.Finished() && res.Turns < maxTurns {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := mgr.Replace(l); err != nil {
			return res, fmt.Errorf("battle %s turn %d: %w", id, l.Turn(), err)
		}
		if err := l.PlayTurn(mgr.Decide(l)); err != nil {
			return res, fmt.Errorf("battle %s turn %d: %w", id, l.Turn(), err)
		}
		res.Turns++
	}

	out := l.Outcome()
	res.Fled = out.Fled
	if out.Finished {
		res.Winner = out.Winner
	}
	for bank := range res.Survivors {
		res.Survivors[bank] = lo.CountBy(l.Party(bank), func(b *battle.Battler) bool { return b.IsAlive() })
	}
	res.Draws = l.RNG().Draws()
	res.Duration = time.Since(res.StartedAt)

	slog.Debug("battle played",
		"battle", id,
		"winner", res.Winner,
		"turns", res.Turns,
		"fled", res.Fled)
	return res, nil
}

func buildParty(members []Member) ([]*battle.Battler, error) {
	party := make([]*battle.Battler, 0, len(members))
	for _, m := range members {
		b, err := battle.NewBattler(m.Species, battle.BattlerOptions{
			Name:    m.Name,
			Level:   m.Level,
			Ability: m.Ability,
			Item:    m.Item,
			Moves:   m.Moves,
		})
		if err != nil {
			return nil, err
		}
		party = append(party, b)
	}
	return party, nil
}
