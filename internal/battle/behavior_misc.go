package battle

import (
	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/data"
)

// statusBehavior applies the status and stat changes of a status move.
type statusBehavior struct{ BasicBehavior }

func (statusBehavior) Execute(r *Resolution) bool { return r.dealStatusAll() }

// selfStatBehavior changes the stats of the user.
type selfStatBehavior struct{ BasicBehavior }

func (selfStatBehavior) Targets(r *Resolution) []*Battler { return []*Battler{r.User} }

func (selfStatBehavior) Execute(r *Resolution) bool { return r.dealStatusAll() }

// weatherBehavior sets the weather of the move.
type weatherBehavior struct{ BasicBehavior }

func (weatherBehavior) Targets(*Resolution) []*Battler { return nil }

func (weatherBehavior) Execute(r *Resolution) bool {
	l, weather := r.Logic, r.Move.def.Weather
	if !l.weatherChange.ChangeWeather(weather, l.weatherChange.WeatherDuration(r.User, weather)) {
		l.DisplayMessage("But it failed!")
		return false
	}
	return true
}

// terrainBehavior sets the terrain of the move.
type terrainBehavior struct{ BasicBehavior }

func (terrainBehavior) Targets(*Resolution) []*Battler { return nil }

func (terrainBehavior) Execute(r *Resolution) bool {
	l := r.Logic
	if !l.terrainChange.FTerrainChange(r.Move.def.Terrain, defaultTerrainTurns) {
		l.DisplayMessage("But it failed!")
		return false
	}
	return true
}

// struggleBehavior is the fallback move: no PP, never chosen, 1/4 recoil.
type struggleBehavior struct{ BasicBehavior }

func (struggleBehavior) Selectable(*Logic, *Battler, *Move) bool { return false }
func (struggleBehavior) ConsumesPP(*Resolution) bool             { return false }

func (struggleBehavior) Execute(r *Resolution) bool {
	dealt := r.dealDamageAll()
	if dealt {
		r.Logic.DisplayMessage("%s is damaged by recoil!", r.User.Name)
		r.Logic.damage.DamageChange(max(1, r.User.maxHP/4), r.User, r.User, nil)
	}
	return dealt
}

// facadeBehavior doubles its power while the user has a major status.
type facadeBehavior struct{ BasicBehavior }

func (facadeBehavior) BasePower(_ *Logic, user, _ *Battler, m *Move) int {
	if user.status != nil {
		return m.Power() * 2
	}
	return m.Power()
}

// snoreBehavior only works while the user is asleep.
type snoreBehavior struct{ BasicBehavior }

func (snoreBehavior) Selectable(_ *Logic, user *Battler, _ *Move) bool {
	return user.HasStatus(StatusSleep)
}

func (snoreBehavior) Execute(r *Resolution) bool {
	if !r.User.HasStatus(StatusSleep) {
		r.Logic.DisplayMessage("But it failed!")
		return false
	}
	return r.dealDamageAll()
}

// sleepTalkBehavior uses a random other move of the user while asleep.
type sleepTalkBehavior struct{ BasicBehavior }

func (sleepTalkBehavior) Selectable(_ *Logic, user *Battler, _ *Move) bool {
	return user.HasStatus(StatusSleep)
}

func (sleepTalkBehavior) Targets(r *Resolution) []*Battler { return []*Battler{r.User} }

func (sleepTalkBehavior) Execute(r *Resolution) bool {
	l, user := r.Logic, r.User
	callable := lo.Filter(user.Moves, func(m *Move, _ int) bool {
		return m != r.Move && m.Mechanic() != "s_sleep_talk" && !m.Has(data.FlagCharge)
	})
	if !user.HasStatus(StatusSleep) || len(callable) == 0 {
		l.DisplayMessage("But it failed!")
		return false
	}
	called := callable[l.rng.IntN(len(callable))]
	res := called.proceedInternal(&Resolution{Logic: l, User: user, Move: called})
	r.Result.Hits += res.Hits
	r.Result.Damage += res.Damage
	return res.Success
}

// transformBehavior turns the user into its target.
type transformBehavior struct{ BasicBehavior }

func (transformBehavior) Execute(r *Resolution) bool {
	for _, t := range r.Hit {
		if r.Logic.transform.Transform(r.User, t) {
			return true
		}
	}
	r.Logic.DisplayMessage("But it failed!")
	return false
}

func init() {
	RegisterBehavior("s_status", func(*data.MoveDef) Behavior { return statusBehavior{} })
	RegisterBehavior("s_stat", func(*data.MoveDef) Behavior { return statusBehavior{} })
	RegisterBehavior("s_self_stat", func(*data.MoveDef) Behavior { return selfStatBehavior{} })
	RegisterBehavior("s_weather", func(*data.MoveDef) Behavior { return weatherBehavior{} })
	RegisterBehavior("s_terrain", func(*data.MoveDef) Behavior { return terrainBehavior{} })
	RegisterBehavior("s_struggle", func(*data.MoveDef) Behavior { return struggleBehavior{} })
	RegisterBehavior("s_facade", func(*data.MoveDef) Behavior { return facadeBehavior{} })
	RegisterBehavior("s_snore", func(*data.MoveDef) Behavior { return snoreBehavior{} })
	RegisterBehavior("s_sleep_talk", func(*data.MoveDef) Behavior { return sleepTalkBehavior{} })
	RegisterBehavior("s_transform", func(*data.MoveDef) Behavior { return transformBehavior{} })
}
