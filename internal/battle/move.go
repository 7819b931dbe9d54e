package battle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/looplab/fsm"
	"github.com/udisondev/monbattle/internal/data"
)

// Charge phases of a two-turn move.
const (
	chargeIdle     = "idle"
	chargeCharging = "charging"
)

// Move is a move known by a battler. The definition is immutable; only PP and
// the charge phase change during the battle.
type Move struct {
	def      *data.MoveDef
	behavior Behavior
	pp       int
	maxPP    int
	charge   *fsm.FSM
	// combined pledge resolved by the current use, nil otherwise
	pledge *pledgeCombo
}

// NewMove builds the move symbol with the behavior of its mechanic.
func NewMove(symbol string) (*Move, error) {
	def, ok := data.GetMove(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", data.ErrUnknownMove, symbol)
	}
	return NewMoveFromDef(def)
}

// NewMoveFromDef builds a move from a definition, validating every symbol it references.
func NewMoveFromDef(def *data.MoveDef) (*Move, error) {
	factory, ok := behaviorRegistry[def.Mechanic]
	if !ok {
		return nil, fmt.Errorf("move %s: %w: %s", def.Symbol, ErrUnknownMechanic, def.Mechanic)
	}
	if def.Status != "" && !IsKnownStatus(def.Status) {
		return nil, fmt.Errorf("move %s: %w: %s", def.Symbol, ErrUnknownStatus, def.Status)
	}
	if def.Weather != "" && !IsKnownWeather(def.Weather) {
		return nil, fmt.Errorf("move %s: %w: %s", def.Symbol, ErrUnknownWeather, def.Weather)
	}
	if def.Terrain != "" && !IsKnownTerrain(def.Terrain) {
		return nil, fmt.Errorf("move %s: %w: %s", def.Symbol, ErrUnknownTerrain, def.Terrain)
	}
	m := &Move{def: def, behavior: factory(def), pp: def.PP, maxPP: def.PP}
	if def.Has(data.FlagCharge) {
		m.charge = newChargeFSM()
	}
	return m, nil
}

// MustNewMove is NewMove that panics on data errors.
func MustNewMove(symbol string) *Move {
	m, err := NewMove(symbol)
	if err != nil {
		panic(err)
	}
	return m
}

func newChargeFSM() *fsm.FSM {
	return fsm.NewFSM(chargeIdle, fsm.Events{
		{Name: "charge", Src: []string{chargeIdle}, Dst: chargeCharging},
		{Name: "release", Src: []string{chargeCharging}, Dst: chargeIdle},
		{Name: "interrupt", Src: []string{chargeCharging}, Dst: chargeIdle},
	}, fsm.Callbacks{})
}

func (m *Move) clone() *Move {
	c := &Move{def: m.def, behavior: behaviorRegistry[m.def.Mechanic](m.def), pp: m.pp, maxPP: m.maxPP}
	if m.charge != nil {
		c.charge = newChargeFSM()
	}
	return c
}

func (m *Move) String() string { return m.def.Symbol }

// Def returns the immutable definition.
func (m *Move) Def() *data.MoveDef { return m.def }

// Behavior returns the resolution strategy.
func (m *Move) Behavior() Behavior { return m.behavior }

func (m *Move) Symbol() string              { return m.def.Symbol }
func (m *Move) Type() data.TypeID           { return m.def.Type }
func (m *Move) Power() int                  { return m.def.Power }
func (m *Move) Accuracy() int               { return m.def.Accuracy }
func (m *Move) Priority() int               { return m.def.Priority }
func (m *Move) Category() data.MoveCategory { return m.def.Category }
func (m *Move) Target() data.MoveTarget     { return m.def.Target }
func (m *Move) IsDamaging() bool            { return m.def.IsDamaging() }
func (m *Move) IsPhysical() bool            { return m.def.IsPhysical() }
func (m *Move) IsSpecial() bool             { return m.def.IsSpecial() }
func (m *Move) Has(flag data.MoveFlag) bool { return m.def.Has(flag) }
func (m *Move) PP() int                     { return m.pp }
func (m *Move) MaxPP() int                  { return m.maxPP }
func (m *Move) Mechanic() string            { return m.def.Mechanic }
func (m *Move) IsStatusMove() bool          { return m.def.Category == data.CategoryStatus }

// Charging reports whether the move waits for its second turn.
func (m *Move) Charging() bool {
	return m.charge != nil && m.charge.Is(chargeCharging)
}

func (m *Move) chargeEvent(event string) {
	if m.charge == nil {
		return
	}
	if err := m.charge.Event(context.Background(), event); err != nil {
		slog.Debug("charge transition rejected", "move", m.def.Symbol, "event", event, "err", err)
	}
}

// resetCharge brings a charging move back to its first turn.
func (m *Move) resetCharge() {
	if m.Charging() {
		m.chargeEvent("interrupt")
	}
}

// needsTarget reports whether the move acts on battlers.
func (m *Move) needsTarget() bool {
	return m.def.Target != data.TargetField && m.def.Target != data.TargetUser
}

// MoveResult summarizes one use of a move.
type MoveResult struct {
	Success bool
	// Targets hit after accuracy and immunities.
	Targets []*Battler
	// Hits is the number of hits dealt over all targets.
	Hits   int
	Damage int
}

// Resolution is the state of one use of a move, passed to the behavior.
type Resolution struct {
	Logic   *Logic
	User    *Battler
	Move    *Move
	Targets []*Battler
	Hit     []*Battler
	Result  MoveResult
}

// Proceed uses the move: usability, PP, target resolution, accuracy and
// immunities, then the behavior.
func (m *Move) Proceed(l *Logic, user *Battler, targets []*Battler) MoveResult {
	r := &Resolution{Logic: l, User: user, Move: m, Targets: targets}
	if user.IsDead() || !user.OnField() {
		return r.Result
	}
	if !m.usable(r) {
		m.behavior.Interrupted(r)
		return r.Result
	}
	if m.behavior.ConsumesPP(r) {
		m.pp = max(0, m.pp-1)
	}
	return m.proceedInternal(r)
}

// usable runs the user-side checks: PP, disabling effects and OnMovePreventionUser.
func (m *Move) usable(r *Resolution) bool {
	l, user := r.Logic, r.User
	if !m.Charging() && m.pp <= 0 && m != user.struggle {
		l.DisplayMessage("There's no PP left for this move!")
		return false
	}
	if !m.Charging() && m != user.struggle && l.MoveDisabled(user, m) {
		l.DisplayMessage("%s can't use %s!", user.Name, displayName(m.Symbol()))
		return false
	}
	result := l.firstPrevention(func(e Effect) HookResult {
		return e.OnMovePreventionUser(l, user, r.Targets, m)
	}, user)
	return result == Continue
}

// proceedInternal resolves the move once the user is allowed to act.
func (m *Move) proceedInternal(r *Resolution) MoveResult {
	l, user := r.Logic, r.User
	l.DisplayMessage("%s used %s!", user.Name, displayName(m.Symbol()))
	user.lastMove = m
	user.lastMoveTurn = l.turn

	if m.behavior.Intercept(r) {
		return r.Result
	}
	r.Targets = m.behavior.Targets(r)
	if m.needsTarget() && len(r.Targets) == 0 {
		l.DisplayMessage("But it failed!")
		return r.Result
	}
	l.scene.ShowMoveAnimation(user, r.Targets, m)
	r.Hit = l.accuracyImmunityFilter(r)
	if m.needsTarget() && len(r.Hit) == 0 {
		return r.Result
	}
	r.Result.Success = m.behavior.Execute(r)
	r.Result.Targets = r.Hit
	slog.Debug("move resolved", "user", user.Name, "move", m.Symbol(),
		"success", r.Result.Success, "hits", r.Result.Hits, "damage", r.Result.Damage)
	return r.Result
}

// accuracyImmunityFilter keeps the targets that are reached by the move.
func (l *Logic) accuracyImmunityFilter(r *Resolution) []*Battler {
	user, m := r.User, r.Move
	var hit []*Battler
	for _, t := range r.Targets {
		if t == nil || t.IsDead() || !t.OnField() {
			continue
		}
		if t == user {
			hit = append(hit, t)
			continue
		}
		prevented := l.firstPrevention(func(e Effect) HookResult {
			return e.OnMovePreventionTarget(l, user, t, m)
		}, user, t)
		if prevented == Prevent {
			continue
		}
		if m.IsDamaging() && l.TypeModifier(user, t, m) == 0 {
			l.DisplayMessage("It doesn't affect %s...", t.Name)
			continue
		}
		if l.anyEffect(func(e Effect) bool { return e.OnMoveAbilityImmunity(user, t, m) }, user, t) {
			l.scene.ShowAbility(t)
			l.DisplayMessage("It doesn't affect %s...", t.Name)
			continue
		}
		if !l.accuracyCheck(user, t, m) {
			l.DisplayMessage("%s avoided the attack!", t.Name)
			continue
		}
		hit = append(hit, t)
	}
	return hit
}

// accuracyCheck rolls the accuracy of move from user against target.
func (l *Logic) accuracyCheck(user, target *Battler, m *Move) bool {
	override := AccuracyDefault
	l.eachEffect(func(e Effect) bool {
		if o := e.OnPreAccuracyCheck(l, user, target, m); o != AccuracyDefault {
			override = o
			return false
		}
		return true
	}, user, target)

	var hit bool
	switch override {
	case AccuracyHit:
		hit = true
	case AccuracyMiss:
		hit = false
	default:
		hit = l.rollAccuracy(user, target, m)
	}
	l.notify(func(e Effect) {
		e.OnPostAccuracyCheck(l, user, target, m, hit)
	}, user, target)
	return hit
}

// HitChance returns the accuracy of move in percent (>= 100 never misses).
func (l *Logic) HitChance(user, target *Battler, m *Move) float64 {
	if m.Accuracy() <= 0 {
		return 100
	}
	stage := min(MaxStage, max(-MaxStage, user.stages[data.StatAcc]-target.stages[data.StatEva]))
	return float64(m.Accuracy()) * accuracyStageMultiplier(stage) *
		l.foldMultiplier(func(e Effect) float64 { return e.ChanceOfHitMultiplier(user, target, m) }, user, target)
}

func (l *Logic) rollAccuracy(user, target *Battler, m *Move) bool {
	chance := l.HitChance(user, target, m)
	if chance >= 100 {
		return true
	}
	return l.rng.Float64()*100 < chance
}

// applySecondary applies the status and stat changes of the move to target.
func (r *Resolution) applySecondary(target *Battler) {
	l, user, def := r.Logic, r.User, r.Move.def
	if def.Status == "" && len(def.StatChanges) == 0 {
		return
	}
	if target.IsDead() {
		return
	}
	if def.EffectChance > 0 {
		chance := float64(def.EffectChance) *
			l.foldMultiplier(func(e Effect) float64 { return e.EffectChanceModifier(user, r.Move) }, user)
		if !l.rng.Chance(int(chance)) {
			return
		}
	}
	if def.Status != "" {
		l.statusChange.StatusChange(def.Status, target, user, r.Move)
	}
	for _, sc := range def.StatChanges {
		l.statChange.StatChange(sc.Stat, sc.Stages, target, user, r.Move)
	}
}

// DefaultTargets returns the battlers move aims at when no target was chosen.
func (l *Logic) DefaultTargets(user *Battler, m *Move) []*Battler {
	foes := l.Foes(user)
	switch m.Target() {
	case data.TargetUser:
		return []*Battler{user}
	case data.TargetField:
		return nil
	case data.TargetAlly:
		allies := l.Allies(user)
		if len(allies) == 0 {
			return nil
		}
		return allies[:1]
	case data.TargetAllAdjacentFoe:
		return foes
	case data.TargetAllAdjacent:
		return append(foes, l.Allies(user)...)
	case data.TargetRandomFoe:
		if len(foes) == 0 {
			return nil
		}
		return []*Battler{foes[l.rng.IntN(len(foes))]}
	default:
		if len(foes) == 0 {
			return nil
		}
		return foes[:1]
	}
}
