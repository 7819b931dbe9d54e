package battle

import "github.com/udisondev/monbattle/internal/data"

// multiHitWeights is the 2-5 hit distribution of s_multi_hit.
var multiHitWeights = []int{35, 35, 15, 15}

const (
	minMultiHits       = 2
	maxMultiHits       = 5
	populationBombHits = 10
	shurikenBondPower  = 20
)

// multiHitBehavior hits the target several times. hits draws the count,
// power returns the power of hit i (0-based) and perHitAccuracy rechecks
// accuracy before every hit after the first one.
type multiHitBehavior struct {
	BasicBehavior
	hits           func(l *Logic, user *Battler) int
	power          func(base, i int) int
	perHitAccuracy bool
	// average hit count, and the count with Skill Link (0 = unchanged)
	expected float64
	linked   float64
}

func (b multiHitBehavior) ExpectedHits(_ *Logic, user *Battler, _ *Move) float64 {
	if b.linked > 0 && user.HasAbility("skill_link") {
		return b.linked
	}
	return b.expected
}

func (b multiHitBehavior) Execute(r *Resolution) bool {
	l, user := r.Logic, r.User
	dealt := false
	for _, target := range r.Hit {
		count := b.hits(l, user)
		base := l.MovePower(user, target, r.Move)
		landed := 0
		for i := range count {
			if target.IsDead() || user.IsDead() {
				break
			}
			if i > 0 && b.perHitAccuracy && !user.HasAbility("skill_link") && !l.accuracyCheck(user, target, r.Move) {
				break
			}
			if r.hitTarget(target, b.power(base, i)) > 0 {
				landed++
			}
		}
		if landed == 0 {
			continue
		}
		dealt = true
		l.effectivenessMessage(user, target, r.Move)
		if landed == 1 {
			l.DisplayMessage("Hit 1 time!")
		} else {
			l.DisplayMessage("Hit %d times!", landed)
		}
		r.applySecondary(target)
	}
	return dealt
}

func samePower(base, _ int) int { return base }

func fixedHits(n int) func(*Logic, *Battler) int {
	return func(*Logic, *Battler) int { return n }
}

func newMultiHit(*data.MoveDef) Behavior {
	return multiHitBehavior{
		hits: func(l *Logic, user *Battler) int {
			if user.HasAbility("skill_link") {
				return maxMultiHits
			}
			return minMultiHits + l.rng.Weighted(multiHitWeights)
		},
		power:    samePower,
		expected: 3.1,
		linked:   maxMultiHits,
	}
}

// newTripleKick escalates: power, 2x power, 3x power (10/20/30, 20/40/60).
func newTripleKick(*data.MoveDef) Behavior {
	return multiHitBehavior{
		hits:           fixedHits(3),
		power:          func(base, i int) int { return base * (i + 1) },
		perHitAccuracy: true,
		expected:       3,
	}
}

func newPopulationBomb(*data.MoveDef) Behavior {
	return multiHitBehavior{
		hits:           fixedHits(populationBombHits),
		power:          samePower,
		perHitAccuracy: true,
		expected:       7,
		linked:         populationBombHits,
	}
}

// shurikenBehavior is a 2-5 hit move that turns into 3 hits of 20 power for
// Battle Bond holders.
type shurikenBehavior struct{ multiHitBehavior }

func (b shurikenBehavior) BasePower(_ *Logic, user, _ *Battler, m *Move) int {
	if user.HasAbility("battle_bond") {
		return shurikenBondPower
	}
	return m.Power()
}

func (b shurikenBehavior) ExpectedHits(l *Logic, user *Battler, m *Move) float64 {
	if user.HasAbility("battle_bond") {
		return 3
	}
	return b.multiHitBehavior.ExpectedHits(l, user, m)
}

func newWaterShuriken(def *data.MoveDef) Behavior {
	inner := newMultiHit(def).(multiHitBehavior)
	random := inner.hits
	inner.hits = func(l *Logic, user *Battler) int {
		if user.HasAbility("battle_bond") {
			return 3
		}
		return random(l, user)
	}
	return shurikenBehavior{inner}
}

func init() {
	RegisterBehavior("s_multi_hit", newMultiHit)
	RegisterBehavior("s_2hits", func(*data.MoveDef) Behavior {
		return multiHitBehavior{hits: fixedHits(2), power: samePower, expected: 2}
	})
	RegisterBehavior("s_3hits", func(*data.MoveDef) Behavior {
		return multiHitBehavior{hits: fixedHits(3), power: samePower, expected: 3}
	})
	RegisterBehavior("s_triple_kick", newTripleKick)
	RegisterBehavior("s_population_bomb", newPopulationBomb)
	RegisterBehavior("s_water_shuriken", newWaterShuriken)
}
