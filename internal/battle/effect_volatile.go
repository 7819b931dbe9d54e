package battle

import (
	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/data"
)

// Flinch prevents the owner from moving for the rest of the turn.
type Flinch struct {
	BattlerEffect
}

func newFlinch(l *Logic, target *Battler) Effect {
	return &Flinch{BattlerEffect: NewBattlerEffect(l, target, StatusFlinch, 1)}
}

func (e *Flinch) OnStatusPrevention(h *StatusChangeHandler, status string, target, _ *Battler, _ *Move) HookResult {
	if target == e.target && status == StatusFlinch {
		return h.PreventChange("")
	}
	return Continue
}

func (e *Flinch) OnMovePreventionUser(l *Logic, user *Battler, _ []*Battler, _ *Move) HookResult {
	if user != e.target {
		return Continue
	}
	e.Kill()
	l.DisplayMessage("%s flinched and couldn't move!", user.Name)
	return Prevent
}

// Confusion makes the owner hurt itself 1/3 of the time for 2-5 turns.
type Confusion struct {
	BattlerEffect
	turns int
}

// confusionSelfHitPower is the power of the typeless self hit.
const confusionSelfHitPower = 40

func newConfusion(l *Logic, target *Battler) Effect {
	return &Confusion{
		BattlerEffect: NewBattlerEffect(l, target, StatusConfusion, Infinity),
		turns:         l.rng.IntRange(2, 5),
	}
}

func (e *Confusion) OnStatusPrevention(h *StatusChangeHandler, status string, target, _ *Battler, _ *Move) HookResult {
	if target == e.target && status == StatusConfusion {
		return h.PreventChange(target.Name + " is already confused!")
	}
	return Continue
}

func (e *Confusion) OnMovePreventionUser(l *Logic, user *Battler, _ []*Battler, _ *Move) HookResult {
	if user != e.target {
		return Continue
	}
	e.turns--
	if e.turns <= 0 {
		e.Kill()
		l.DisplayMessage("%s snapped out of its confusion!", user.Name)
		return Continue
	}
	l.DisplayMessage("%s is confused!", user.Name)
	if !l.rng.Chance(33) {
		return Continue
	}
	atk := float64(user.StatBasis(data.StatAtk))
	dfe := float64(max(1, user.StatBasis(data.StatDfe)))
	hp := int((float64(user.Level*2/5+2)*confusionSelfHitPower*atk/dfe)/50) + 2
	l.DisplayMessage("It hurt itself in its confusion!")
	l.damage.DamageChange(hp, user, nil, nil)
	return Prevent
}

// ChargeMarker tracks the charging turn of a two-turn move. While it lives the
// owner may be out of reach; killing it (interruption, switch) resets the move.
type ChargeMarker struct {
	BattlerEffect
	move       *Move
	outOfReach bool
	canHit     []string
	doubled    []string
}

func newChargeMarker(l *Logic, owner *Battler, move *Move, spec twoTurnSpec) *ChargeMarker {
	return &ChargeMarker{
		BattlerEffect: NewBattlerEffect(l, owner, "charge_"+move.Symbol(), 2),
		move:          move,
		outOfReach:    spec.outOfReach,
		canHit:        spec.canHit,
		doubled:       spec.doubled,
	}
}

// Move returns the charging move.
func (e *ChargeMarker) Move() *Move { return e.move }

// OutOfReach reports whether the owner cannot be targeted.
func (e *ChargeMarker) OutOfReach() bool { return e.outOfReach }

func (e *ChargeMarker) OnPreAccuracyCheck(_ *Logic, _, target *Battler, move *Move) AccuracyOverride {
	if target != e.target || !e.outOfReach || lo.Contains(e.canHit, move.Symbol()) {
		return AccuracyDefault
	}
	return AccuracyMiss
}

func (e *ChargeMarker) BasePowerMultiplier(_, target *Battler, move *Move) float64 {
	if target == e.target && e.outOfReach && lo.Contains(e.doubled, move.Symbol()) {
		return 2
	}
	return 1
}

func (e *ChargeMarker) OnDelete() {
	e.move.resetCharge()
}

// forceNextMove makes the owner use a move on its next turn (second turn of a charge).
type forceNextMove struct {
	BattlerEffect
	forced ForcedMove
}

func newForceNextMove(l *Logic, owner *Battler, move *Move, targets []*Battler) *forceNextMove {
	return &forceNextMove{
		BattlerEffect: NewBattlerEffect(l, owner, "force_next_move", 2),
		forced:        ForcedMove{Move: move, Targets: targets},
	}
}

func (e *forceNextMove) ForceNextMove() (ForcedMove, bool) { return e.forced, true }

// PledgeWait marks a battler whose ally is waiting to combine pledges with it.
type PledgeWait struct {
	BattlerEffect
	typ  data.TypeID
	from *Battler
}

func newPledgeWait(l *Logic, owner, from *Battler, typ data.TypeID) *PledgeWait {
	return &PledgeWait{
		BattlerEffect: NewBattlerEffect(l, owner, "pledge_wait", 1),
		typ:           typ,
		from:          from,
	}
}
