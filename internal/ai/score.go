package ai

import (
	"math"

	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/battle"
	"github.com/udisondev/monbattle/internal/data"
)

// Power curve: base power is mapped through the normal CDF.
const (
	powerMean   = 75.0
	powerStdDev = 25.0
)

const (
	// healThreshold is the HP rate under which healing items are considered.
	healThreshold = 0.35
	// boostThreshold is the HP rate over which X items are considered.
	boostThreshold = 0.7
	// dangerThreshold is the share of HP a foe must threaten before switching.
	dangerThreshold = 0.5
	// samplePower is the power of the per-type sample moves used without movepool reading.
	samplePower = 80
)

// normalCDF returns P(X <= x) for X ~ N(mean, stdDev).
func normalCDF(x, mean, stdDev float64) float64 {
	return 0.5 * (1 + math.Erf((x-mean)/(stdDev*math.Sqrt2)))
}

// scoreMove scores move of user against targets.
func (h *Heuristic) scoreMove(sb *battle.Sandbox, user *battle.Battler, m *battle.Move, targets []*battle.Battler) float64 {
	if m.IsStatusMove() {
		return h.scoreStatusMove(sb, user, m, targets)
	}
	var score float64
	for _, t := range targets {
		s := h.scoreHit(sb, user, t, m)
		if t.Bank == user.Bank {
			score -= s
			continue
		}
		score += s
	}
	return score
}

func (h *Heuristic) scoreHit(sb *battle.Sandbox, user, target *battle.Battler, m *battle.Move) float64 {
	eff := 1.0
	if h.caps.Effectiveness {
		eff = sb.Effectiveness(user, target, m)
	}
	power := 1.0
	if h.caps.Power {
		power = normalCDF(float64(sb.MovePower(user, target, m)), powerMean, powerStdDev)
	}
	score := eff * power * h.statusModifier(sb, user, target, m)
	if h.caps.Targeting && eff > 0 && sb.EstimateDamage(user, target, m) >= target.HP() {
		score *= 1.5
	}
	return score
}

// statusModifier rewards damaging moves whose secondary status would stick.
func (h *Heuristic) statusModifier(sb *battle.Sandbox, user, target *battle.Battler, m *battle.Move) float64 {
	def := m.Def()
	if !h.caps.Status || def.Status == "" {
		return 1
	}
	if !sb.CanInflictStatus(def.Status, target, user, m) {
		return 1
	}
	chance := float64(def.EffectChance) / 100
	if def.EffectChance == 0 {
		chance = 1
	}
	return 1 + chance*0.5
}

func (h *Heuristic) scoreStatusMove(sb *battle.Sandbox, user *battle.Battler, m *battle.Move, targets []*battle.Battler) float64 {
	def := m.Def()
	switch {
	case def.Status != "":
		if !h.caps.Status {
			return 0.5
		}
		return lo.SumBy(targets, func(t *battle.Battler) float64 {
			if t.Bank == user.Bank || !sb.CanInflictStatus(def.Status, t, user, m) {
				return 0
			}
			return 0.8
		})
	case len(def.StatChanges) > 0:
		if !h.caps.Status {
			return 0.4
		}
		if len(targets) == 0 {
			targets = []*battle.Battler{user}
		}
		return lo.SumBy(targets, func(t *battle.Battler) float64 {
			var s float64
			for _, sc := range def.StatChanges {
				if !sb.CanChangeStat(sc.Stat, sc.Stages, t, user, m) {
					continue
				}
				// raising allies and lowering foes both help
				if (t.Bank == user.Bank) == (sc.Stages > 0) {
					s += 0.3
				}
			}
			return s
		})
	case def.Weather != "":
		if sb.Weather() == def.Weather {
			return 0
		}
		return 0.4
	case def.Terrain != "":
		if sb.Terrain() == def.Terrain {
			return 0
		}
		return 0.4
	}
	return 0.3
}

// danger estimates the share of HP of b the foes can take in one hit.
func (h *Heuristic) danger(sb *battle.Sandbox, b *battle.Battler, foes []*battle.Battler) float64 {
	if b.HP() <= 0 {
		return math.Inf(1)
	}
	var worst int
	for _, foe := range foes {
		for _, m := range h.threats(foe) {
			worst = max(worst, sb.EstimateDamage(foe, b, m))
		}
	}
	return float64(worst) / float64(b.HP())
}

// threats returns the moves foe is expected to use: its movepool when the
// level reads it, a sample move per foe type otherwise.
func (h *Heuristic) threats(foe *battle.Battler) []*battle.Move {
	if h.caps.ReadMovepool {
		var out []*battle.Move
		for _, m := range foe.Moves {
			if m.IsDamaging() {
				out = append(out, m)
			}
		}
		return out
	}
	category := data.CategorySpecial
	if foe.StatBasis(data.StatAtk) > foe.StatBasis(data.StatAts) {
		category = data.CategoryPhysical
	}
	var out []*battle.Move
	for _, t := range foe.Types() {
		if t == data.TypeNone {
			continue
		}
		if m := sampleMove(t, category); m != nil {
			out = append(out, m)
		}
	}
	return out
}

func sampleMove(t data.TypeID, category data.MoveCategory) *battle.Move {
	m, err := battle.NewMoveFromDef(&data.MoveDef{
		Symbol:   "sample_" + t.String(),
		Type:     t,
		Category: category,
		Power:    samplePower,
		Accuracy: 100,
		PP:       1,
		Target:   data.TargetAdjacentFoe,
		Mechanic: "s_basic",
	})
	if err != nil {
		return nil
	}
	return m
}
