package battle

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/data"
	"github.com/udisondev/monbattle/internal/rng"
)

// Bank is one side of the battle.
type Bank struct {
	Index int
	Party []*Battler
	// Active is indexed by position; a nil slot is empty.
	Active    []*Battler
	Effects   *EffectsHandler
	Positions []*EffectsHandler
	// Bag holds the usable items and their count.
	Bag      map[string]int
	MegaUsed bool
}

// Options configures a new battle.
type Options struct {
	// Seed of the battle RNG. Ignored when RNG is set.
	Seed uint64
	RNG  *rng.Source
	// Scene receives the presentation calls (NopScene when nil).
	Scene Scene
	// Size is the number of positions per bank: 1 (single) or 2 (double).
	Size int
	// Roaming marks a wild battle in which fleeing is allowed.
	Roaming bool
}

// Outcome is the final state of a battle.
type Outcome struct {
	Finished bool
	// Winner is the winning bank, -1 for a draw or a flee.
	Winner int
	Fled   bool
}

// Logic is the battle: banks, field, handlers and the turn resolver.
// A Logic is single-threaded; independent battles may run concurrently.
type Logic struct {
	rng   *rng.Source
	scene Scene
	size  int
	turn  int

	banks [2]*Bank
	field *EffectsHandler

	statChange    *StatChangeHandler
	statusChange  *StatusChangeHandler
	weatherChange *WeatherChangeHandler
	terrainChange *FTerrainChangeHandler
	damage        *DamageHandler
	itemChange    *ItemChangeHandler
	abilityChange *AbilityChangeHandler
	switching     *SwitchHandler
	transform     *TransformHandler

	actions     []Action
	actionIndex int

	roaming bool
	outcome Outcome
	sandbox bool
	// origin is the battle a sandbox was cloned from. Effects keep pointing
	// at it, so it must not purge while the sandbox dispatches hooks.
	origin     *Logic
	inspecting int
}

// NewLogic creates an empty battle. Parties are added with SetParty.
func NewLogic(opts Options) *Logic {
	src := opts.RNG
	if src == nil {
		src = rng.New(opts.Seed)
	}
	scene := opts.Scene
	if scene == nil {
		scene = NopScene{}
	}
	size := opts.Size
	if size < 1 {
		size = 1
	}
	l := &Logic{
		rng:     src,
		scene:   scene,
		size:    size,
		turn:    1,
		field:   NewEffectsHandler(),
		roaming: opts.Roaming,
		outcome: Outcome{Winner: -1},
	}
	for i := range l.banks {
		bank := &Bank{
			Index:     i,
			Active:    make([]*Battler, size),
			Effects:   NewEffectsHandler(),
			Positions: make([]*EffectsHandler, size),
			Bag:       map[string]int{},
		}
		for p := range bank.Positions {
			bank.Positions[p] = NewEffectsHandler()
		}
		l.banks[i] = bank
	}
	l.initHandlers()
	return l
}

func (l *Logic) initHandlers() {
	base := handlerBase{logic: l}
	l.statChange = &StatChangeHandler{base}
	l.statusChange = &StatusChangeHandler{base}
	l.weatherChange = &WeatherChangeHandler{base}
	l.terrainChange = &FTerrainChangeHandler{base}
	l.damage = &DamageHandler{base}
	l.itemChange = &ItemChangeHandler{base}
	l.abilityChange = &AbilityChangeHandler{base}
	l.switching = &SwitchHandler{base}
	l.transform = &TransformHandler{base}
}

// SetParty installs the party of a bank. The first Size members become active.
func (l *Logic) SetParty(bank int, party []*Battler) error {
	if bank < 0 || bank >= len(l.banks) {
		return fmt.Errorf("%w: bank %d", ErrInvalidParty, bank)
	}
	if len(party) == 0 {
		return fmt.Errorf("%w: bank %d is empty", ErrInvalidParty, bank)
	}
	b := l.banks[bank]
	b.Party = party
	for i, member := range party {
		member.Bank = bank
		member.PartyIndex = i
		member.Position = OffField
		member.attach(l)
		if i < l.size {
			member.Position = i
			member.switchTurn = l.turn
			b.Active[i] = member
		}
	}
	return nil
}

// SetBag sets the bag items of a bank.
func (l *Logic) SetBag(bank int, items map[string]int) {
	l.banks[bank].Bag = items
}

// Start triggers the switch-in events of the initial battlers (weather abilities...).
func (l *Logic) Start() {
	for _, b := range l.AliveBattlers() {
		l.switching.dispatchSwitchEvent(nil, b)
	}
	slog.Debug("battle started", "size", l.size, "seed_draws", l.rng.Draws())
}

// Scene returns the presentation collaborator.
func (l *Logic) Scene() Scene { return l.scene }

// RNG returns the battle RNG.
func (l *Logic) RNG() *rng.Source { return l.rng }

// Turn returns the current turn (1-based).
func (l *Logic) Turn() int { return l.turn }

// Size returns the number of positions per bank.
func (l *Logic) Size() int { return l.size }

// Roaming reports whether fleeing is allowed.
func (l *Logic) Roaming() bool { return l.roaming }

// Bank returns a bank.
func (l *Logic) Bank(i int) *Bank { return l.banks[i] }

// Field returns the field effects handler.
func (l *Logic) Field() *EffectsHandler { return l.field }

// Outcome returns the battle outcome.
func (l *Logic) Outcome() Outcome { return l.outcome }

// Finished reports whether the battle ended.
func (l *Logic) Finished() bool { return l.outcome.Finished }

// Handlers.
func (l *Logic) StatChangeHandler() *StatChangeHandler         { return l.statChange }
func (l *Logic) StatusChangeHandler() *StatusChangeHandler     { return l.statusChange }
func (l *Logic) WeatherChangeHandler() *WeatherChangeHandler   { return l.weatherChange }
func (l *Logic) FTerrainChangeHandler() *FTerrainChangeHandler { return l.terrainChange }
func (l *Logic) DamageHandler() *DamageHandler                 { return l.damage }
func (l *Logic) ItemChangeHandler() *ItemChangeHandler         { return l.itemChange }
func (l *Logic) AbilityChangeHandler() *AbilityChangeHandler   { return l.abilityChange }
func (l *Logic) SwitchHandler() *SwitchHandler                 { return l.switching }
func (l *Logic) TransformHandler() *TransformHandler           { return l.transform }

// Battler returns the active battler at bank/position (nil when empty).
func (l *Logic) Battler(bank, position int) *Battler {
	if bank < 0 || bank >= len(l.banks) || position < 0 || position >= l.size {
		return nil
	}
	return l.banks[bank].Active[position]
}

// ActiveBattlers returns the battlers on the field of a bank, fainted ones included.
func (l *Logic) ActiveBattlers(bank int) []*Battler {
	return lo.Compact(l.banks[bank].Active)
}

// AliveBattlers returns every alive battler on the field, bank 0 first.
func (l *Logic) AliveBattlers() []*Battler {
	var out []*Battler
	for _, bank := range l.banks {
		for _, b := range bank.Active {
			if b != nil && b.IsAlive() {
				out = append(out, b)
			}
		}
	}
	return out
}

// Foes returns the alive foes of b on the field.
func (l *Logic) Foes(b *Battler) []*Battler {
	return lo.Filter(l.ActiveBattlers(1-b.Bank), func(f *Battler, _ int) bool { return f.IsAlive() })
}

// Allies returns the alive allies of b on the field (b excluded).
func (l *Logic) Allies(b *Battler) []*Battler {
	return lo.Filter(l.ActiveBattlers(b.Bank), func(a *Battler, _ int) bool { return a != b && a.IsAlive() })
}

// Party returns the party of a bank.
func (l *Logic) Party(bank int) []*Battler { return l.banks[bank].Party }

// SwitchCandidates returns the alive party members of bank that are off the field.
func (l *Logic) SwitchCandidates(bank int) []*Battler {
	return lo.Filter(l.banks[bank].Party, func(b *Battler, _ int) bool { return b.IsAlive() && !b.OnField() })
}

// eachEffect visits the live effects relevant to the given battlers:
// for each battler in argument order its ability, held item, major status and
// volatile effects; then the bank handlers of those battlers; then their position
// handlers; then the field (weather, terrain, other field effects).
// fn returns false to stop the whole visit. It reports whether the visit completed.
func (l *Logic) eachEffect(fn func(Effect) bool, battlers ...*Battler) bool {
	battlers = lo.Uniq(lo.Compact(battlers))
	purge := !l.sandbox && l.inspecting == 0
	if l.origin != nil {
		l.origin.inspecting++
		defer func() { l.origin.inspecting-- }()
	}
	for _, b := range battlers {
		for _, e := range []Effect{b.abilityEffect, b.itemEffect, b.status} {
			if e == nil || e.Dead() {
				continue
			}
			if !fn(e) {
				return false
			}
		}
		if !b.Effects.each(fn, purge) {
			return false
		}
	}
	banks := lo.Uniq(lo.Map(battlers, func(b *Battler, _ int) int { return b.Bank }))
	for _, bank := range banks {
		if !l.banks[bank].Effects.each(fn, purge) {
			return false
		}
	}
	for _, b := range battlers {
		if !b.OnField() || b.Position >= l.size {
			continue
		}
		if !l.banks[b.Bank].Positions[b.Position].each(fn, purge) {
			return false
		}
	}
	for _, pass := range fieldPasses {
		ok := l.field.each(func(e Effect) bool {
			if !pass(e) {
				return true
			}
			return fn(e)
		}, purge)
		if !ok {
			return false
		}
	}
	return true
}

// fieldPasses orders the field handler: weather, terrain, then the rest.
var fieldPasses = []func(Effect) bool{
	func(e Effect) bool { _, ok := e.(Weather); return ok },
	func(e Effect) bool { _, ok := e.(Terrain); return ok },
	func(e Effect) bool {
		_, w := e.(Weather)
		_, t := e.(Terrain)
		return !w && !t
	},
}

// foldMultiplier multiplies fn over the live effects of battlers.
func (l *Logic) foldMultiplier(fn func(Effect) float64, battlers ...*Battler) float64 {
	result := 1.0
	l.eachEffect(func(e Effect) bool {
		result *= fn(e)
		return true
	}, battlers...)
	return result
}

// firstPrevention returns Prevent as soon as one effect prevents.
func (l *Logic) firstPrevention(fn func(Effect) HookResult, battlers ...*Battler) HookResult {
	result := Continue
	l.eachEffect(func(e Effect) bool {
		if fn(e) == Prevent {
			result = Prevent
			slog.Debug("prevented", "effect", e.Name())
			return false
		}
		return true
	}, battlers...)
	return result
}

// anyEffect reports whether fn is true for one effect.
func (l *Logic) anyEffect(fn func(Effect) bool, battlers ...*Battler) bool {
	found := false
	l.eachEffect(func(e Effect) bool {
		if fn(e) {
			found = true
			return false
		}
		return true
	}, battlers...)
	return found
}

// notify calls fn for every live effect of battlers.
func (l *Logic) notify(fn func(Effect), battlers ...*Battler) {
	l.eachEffect(func(e Effect) bool {
		fn(e)
		return true
	}, battlers...)
}

// DisplayMessage shows a message on the scene.
func (l *Logic) DisplayMessage(format string, args ...any) {
	l.scene.DisplayMessage(fmt.Sprintf(format, args...))
}

// Weather returns the current weather effect (nil = none).
func (l *Logic) Weather() Weather {
	if w, ok := l.field.GetFunc(func(e Effect) bool { _, ok := e.(Weather); return ok }).(Weather); ok {
		return w
	}
	return nil
}

// WeatherSymbol returns the current weather symbol ("none" when clear).
func (l *Logic) WeatherSymbol() string {
	if w := l.Weather(); w != nil {
		return w.Name()
	}
	return WeatherNone
}

// WeatherSuppressed reports whether Cloud Nine / Air Lock cancels weather effects.
func (l *Logic) WeatherSuppressed() bool {
	return lo.SomeBy(l.AliveBattlers(), func(b *Battler) bool { return b.HasAbility("cloud_nine", "air_lock") })
}

// HasWeather reports whether one of the weathers is active and not suppressed.
func (l *Logic) HasWeather(symbols ...string) bool {
	cur := l.WeatherSymbol()
	if cur == WeatherNone || l.WeatherSuppressed() {
		return false
	}
	return lo.Contains(symbols, cur)
}

// Terrain returns the current terrain effect (nil = none).
func (l *Logic) Terrain() Terrain {
	if t, ok := l.field.GetFunc(func(e Effect) bool { _, ok := e.(Terrain); return ok }).(Terrain); ok {
		return t
	}
	return nil
}

// TerrainSymbol returns the current terrain symbol ("none" when absent).
func (l *Logic) TerrainSymbol() string {
	if t := l.Terrain(); t != nil {
		return t.Name()
	}
	return TerrainNone
}

// HasTerrain reports whether the terrain is active.
func (l *Logic) HasTerrain(symbol string) bool {
	return l.TerrainSymbol() == symbol
}

// MoveType returns the type of move used by user against target after every
// type-changing effect.
func (l *Logic) MoveType(user, target *Battler, move *Move) data.TypeID {
	typ := move.behavior.MoveType(l, user, move)
	l.eachEffect(func(e Effect) bool {
		typ = e.OnMoveTypeChange(user, target, move, typ)
		return true
	}, user, target)
	return typ
}

// MovePower returns the base power of move before multipliers.
func (l *Logic) MovePower(user, target *Battler, move *Move) int {
	return move.behavior.BasePower(l, user, target, move)
}

// MovePriority returns the priority of move after every priority-changing effect.
func (l *Logic) MovePriority(user *Battler, move *Move) int {
	priority := move.Priority()
	l.eachEffect(func(e Effect) bool {
		priority = e.OnMovePriorityChange(user, priority, move)
		return true
	}, user)
	return priority
}

// MoveDisabled reports whether an effect forbids user from selecting move.
func (l *Logic) MoveDisabled(user *Battler, move *Move) bool {
	return l.anyEffect(func(e Effect) bool { return e.OnMoveDisabledCheck(user, move) }, user)
}

// ForcedMove returns the move an effect forces b to use this turn.
func (l *Logic) ForcedMove(b *Battler) (ForcedMove, bool) {
	var forced ForcedMove
	found := l.anyEffect(func(e Effect) bool {
		f, ok := e.ForceNextMove()
		if ok {
			forced = f
		}
		return ok
	}, b)
	return forced, found
}

// UsableMoves returns the moves b may select this turn.
func (l *Logic) UsableMoves(b *Battler) []*Move {
	return lo.Filter(b.Moves, func(m *Move, _ int) bool { return l.CanSelect(b, m) })
}

// CanSelect reports whether b may select move: PP left, not disabled, archetype conditions met.
func (l *Logic) CanSelect(b *Battler, move *Move) bool {
	if move.PP() <= 0 || l.MoveDisabled(b, move) {
		return false
	}
	return move.behavior.Selectable(l, b, move)
}

// Sandbox returns a read-only view of the battle for the AI.
func (l *Logic) Sandbox() *Sandbox {
	clone := *l
	clone.scene = NopScene{}
	clone.sandbox = true
	if clone.origin == nil {
		clone.origin = l
	}
	clone.inspecting = 0
	clone.initHandlers()
	return &Sandbox{logic: &clone}
}
