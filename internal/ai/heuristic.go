package ai

import (
	"slices"

	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/battle"
	"github.com/udisondev/monbattle/internal/data"
)

// Heuristic scores every candidate action of a battler and plays the best one.
// The capabilities of its level gate which candidates exist and which factors
// enter their score.
type Heuristic struct {
	level Level
	caps  Capabilities
	noise float64
}

var _ Controller = (*Heuristic)(nil)

// NewHeuristic builds the heuristic controller of opts.Level. A negative
// noise selects the default noise of the level.
func NewHeuristic(opts Options) *Heuristic {
	if opts.Noise < 0 {
		opts.Noise = DefaultNoise(opts.Level)
	}
	return &Heuristic{level: opts.Level, caps: CapabilitiesOf(opts.Level), noise: opts.Noise}
}

func (h *Heuristic) Level() Level { return h.level }

type candidate struct {
	action battle.Action
	score  float64
}

// Decide implements Controller.
func (h *Heuristic) Decide(sb *battle.Sandbox, b *battle.Battler, plan *Plan) []battle.Action {
	if forced, ok := sb.ForcedMove(b); ok {
		return []battle.Action{battle.AttackAction{User: b, Move: forced.Move, Targets: forced.Targets}}
	}

	candidates := h.moveCandidates(sb, b)
	if h.caps.Switching {
		candidates = append(candidates, h.switchCandidates(sb, b, plan)...)
	}
	if h.caps.Items {
		candidates = append(candidates, h.itemCandidates(sb, b)...)
	}
	if h.caps.Flee && sb.Roaming() {
		candidates = append(candidates, candidate{action: battle.FleeAction{User: b}, score: 0.5 + (1 - b.HPRate())})
	}

	best, ok := h.pick(sb, candidates)
	if !ok {
		struggle := sb.Struggle(b)
		best = battle.AttackAction{User: b, Move: struggle, Targets: sb.DefaultTargets(b, struggle)}
	}
	actions := []battle.Action{best}
	if _, attacking := best.(battle.AttackAction); attacking && h.caps.Mega && !plan.megaPlanned() && sb.CanMegaEvolve(b) {
		actions = []battle.Action{battle.MegaAction{User: b}, best}
	}
	plan.add(actions...)
	return actions
}

// Replacement implements Controller.
func (h *Heuristic) Replacement(sb *battle.Sandbox, b *battle.Battler) *battle.Battler {
	candidates := sb.SwitchCandidates(b.Bank)
	if len(candidates) == 0 {
		return nil
	}
	if !h.caps.Switching {
		return candidates[0]
	}
	foes := sb.Active(1 - b.Bank)
	foes = lo.Filter(foes, func(f *battle.Battler, _ int) bool { return f.IsAlive() })
	return lo.MinBy(candidates, func(a, cur *battle.Battler) bool {
		return h.danger(sb, a, foes) < h.danger(sb, cur, foes)
	})
}

// moveCandidates enumerates the usable moves. With target choice every foe
// of a single target move is its own candidate.
func (h *Heuristic) moveCandidates(sb *battle.Sandbox, b *battle.Battler) []candidate {
	var out []candidate
	for _, m := range sb.UsableMoves(b) {
		targets := sb.DefaultTargets(b, m)
		if needsTarget(m) && len(targets) == 0 {
			continue
		}
		if h.caps.Targeting && m.Target() == data.TargetAdjacentFoe {
			for _, foe := range sb.Foes(b) {
				picked := []*battle.Battler{foe}
				out = append(out, candidate{
					action: battle.AttackAction{User: b, Move: m, Targets: picked},
					score:  h.scoreMove(sb, b, m, picked),
				})
			}
			continue
		}
		out = append(out, candidate{
			action: battle.AttackAction{User: b, Move: m},
			score:  h.scoreMove(sb, b, m, targets),
		})
	}
	return out
}

func needsTarget(m *battle.Move) bool {
	switch m.Target() {
	case data.TargetUser, data.TargetField:
		return false
	}
	return true
}

// switchCandidates scores switching out of danger: the gap between the
// danger of b and the danger of each able party member.
func (h *Heuristic) switchCandidates(sb *battle.Sandbox, b *battle.Battler, plan *Plan) []candidate {
	foes := sb.Foes(b)
	current := h.danger(sb, b, foes)
	if current < dangerThreshold {
		return nil
	}
	var out []candidate
	for _, with := range sb.SwitchCandidates(b.Bank) {
		if plan.switchingTo(with) || !sb.CanSwitch(b, with) {
			continue
		}
		gap := current - h.danger(sb, with, foes)
		if gap <= 0 {
			continue
		}
		out = append(out, candidate{action: battle.SwitchAction{Who: b, With: with}, score: min(gap, 2)})
	}
	return out
}

// itemCandidates scores the bag items usable on b.
func (h *Heuristic) itemCandidates(sb *battle.Sandbox, b *battle.Battler) []candidate {
	bag := sb.Bag(b.Bank)
	symbols := lo.Keys(bag)
	slices.Sort(symbols)

	var out []candidate
	for _, symbol := range symbols {
		def, ok := data.GetItem(symbol)
		if !ok {
			continue
		}
		var score float64
		switch def.Kind {
		case data.ItemMedicine:
			if def.HealHP != 0 && b.HPRate() < healThreshold {
				score = (1 - b.HPRate()) * 1.5
			}
			if b.Status() != nil && def.Cures(b.StatusSymbol()) {
				score = max(score, 1)
			}
		case data.ItemBattle:
			if def.BoostStages > 0 && b.HPRate() > boostThreshold && b.Stage(def.BoostStat)+def.BoostStages <= battle.MaxStage {
				score = 0.6
			}
		}
		if score > 0 {
			out = append(out, candidate{action: battle.ItemAction{User: b, Item: symbol, Target: b}, score: score})
		}
	}
	return out
}

// pick returns the best candidate after noise. The noise draws one roll per
// candidate in enumeration order; ties keep the earlier candidate.
func (h *Heuristic) pick(sb *battle.Sandbox, candidates []candidate) (battle.Action, bool) {
	var (
		best      battle.Action
		bestNoisy float64
	)
	for _, c := range candidates {
		noisy := c.score
		if h.noise > 0 {
			noisy *= 1 + (sb.NoiseRoll()*2-1)*h.noise
		}
		logCandidate(c, noisy)
		if best == nil || noisy > bestNoisy {
			best, bestNoisy = c.action, noisy
		}
	}
	return best, best != nil
}
