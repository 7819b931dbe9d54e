package battle

import "github.com/udisondev/monbattle/internal/data"

// counterBehavior returns the last damage taken this turn, multiplied.
// Counter answers physical hits, Mirror Coat special hits and Metal Burst any.
type counterBehavior struct {
	BasicBehavior
	category   data.MoveCategory
	anyDamage  bool
	multiplier float64
}

func newCounterBehavior(def *data.MoveDef) Behavior {
	switch def.Symbol {
	case "mirror_coat":
		return counterBehavior{category: data.CategorySpecial, multiplier: 2}
	case "metal_burst":
		return counterBehavior{anyDamage: true, multiplier: 1.5}
	default:
		return counterBehavior{category: data.CategoryPhysical, multiplier: 2}
	}
}

func (b counterBehavior) lastHit(l *Logic, user *Battler) (DamageRecord, bool) {
	return user.lastDamageThisTurn(l.turn, func(rec DamageRecord) bool {
		if rec.Launcher == nil || rec.Move == nil || rec.Launcher.Bank == user.Bank {
			return false
		}
		return b.anyDamage || rec.Move.Category() == b.category
	})
}

// Targets aims at the last foe that hit the user with a matching move.
func (b counterBehavior) Targets(r *Resolution) []*Battler {
	rec, ok := b.lastHit(r.Logic, r.User)
	if !ok || rec.Launcher.IsDead() || !rec.Launcher.OnField() {
		return nil
	}
	return []*Battler{rec.Launcher}
}

func (b counterBehavior) Execute(r *Resolution) bool {
	l := r.Logic
	rec, ok := b.lastHit(l, r.User)
	if !ok || len(r.Hit) == 0 {
		l.DisplayMessage("But it failed!")
		return false
	}
	target := r.Hit[0]
	dealt := l.damage.DamageChange(max(1, int(float64(rec.Damage)*b.multiplier)), target, r.User, r.Move)
	if dealt > 0 {
		r.Result.Hits++
		r.Result.Damage += dealt
	}
	return dealt > 0
}

// ExpectedHits is zero: the damage depends on what the user takes.
func (counterBehavior) ExpectedHits(*Logic, *Battler, *Move) float64 { return 0 }

func init() {
	RegisterBehavior("s_counter", newCounterBehavior)
}
