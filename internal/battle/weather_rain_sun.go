package battle

import (
	"fmt"

	"github.com/udisondev/monbattle/internal/data"
)

// Rain boosts Water moves and weakens Fire moves.
type Rain struct {
	WeatherBase
}

func newRain(l *Logic, turns int) Weather {
	return &Rain{WeatherBase: newWeatherBase(l, WeatherRain, turns, "It started to rain!", "The rain stopped.")}
}

func (w *Rain) Mod1Multiplier(user, target *Battler, move *Move) float64 {
	return weatherTypeBoost(&w.WeatherBase, user, target, move, data.TypeWater, data.TypeFire)
}

// HardRain is the primal rain of Primordial Sea: Fire moves fizzle out.
type HardRain struct {
	WeatherBase
}

func newHardRain(l *Logic, turns int) Weather {
	return &HardRain{WeatherBase: newWeatherBase(l, WeatherHardRain, turns,
		"A heavy rain began to fall!", "The heavy rain has lifted!")}
}

func (w *HardRain) Primal() bool { return true }

func (w *HardRain) OnWeatherPrevention(h *WeatherChangeHandler, weather, _ string) HookResult {
	return primalPrevention(h, weather, "There is no relief from this heavy rain!")
}

func (w *HardRain) OnMovePreventionTarget(l *Logic, user, target *Battler, move *Move) HookResult {
	if !w.active() || !move.IsDamaging() || l.MoveType(user, target, move) != data.TypeFire {
		return Continue
	}
	l.DisplayMessage("The Fire-type attack fizzled out in the heavy rain!")
	return Prevent
}

func (w *HardRain) Mod1Multiplier(user, target *Battler, move *Move) float64 {
	return weatherTypeBoost(&w.WeatherBase, user, target, move, data.TypeWater, data.TypeFire)
}

// Sunny boosts Fire moves, weakens Water moves and prevents freezing.
type Sunny struct {
	WeatherBase
}

func newSunny(l *Logic, turns int) Weather {
	return &Sunny{WeatherBase: newWeatherBase(l, WeatherSunny, turns,
		"The sunlight turned harsh!", "The harsh sunlight faded.")}
}

func (w *Sunny) Mod1Multiplier(user, target *Battler, move *Move) float64 {
	return weatherTypeBoost(&w.WeatherBase, user, target, move, data.TypeFire, data.TypeWater)
}

func (w *Sunny) OnStatusPrevention(h *StatusChangeHandler, status string, target, _ *Battler, _ *Move) HookResult {
	return sunFreezePrevention(&w.WeatherBase, h, status, target)
}

// HardSun is the primal sun of Desolate Land: Water moves evaporate.
type HardSun struct {
	WeatherBase
}

func newHardSun(l *Logic, turns int) Weather {
	return &HardSun{WeatherBase: newWeatherBase(l, WeatherHardSun, turns,
		"The sunlight turned extremely harsh!", "The extremely harsh sunlight faded!")}
}

func (w *HardSun) Primal() bool { return true }

func (w *HardSun) OnWeatherPrevention(h *WeatherChangeHandler, weather, _ string) HookResult {
	return primalPrevention(h, weather, "The extremely harsh sunlight was not lessened at all!")
}

func (w *HardSun) OnMovePreventionTarget(l *Logic, user, target *Battler, move *Move) HookResult {
	if !w.active() || !move.IsDamaging() || l.MoveType(user, target, move) != data.TypeWater {
		return Continue
	}
	l.DisplayMessage("The Water-type attack evaporated in the harsh sunlight!")
	return Prevent
}

func (w *HardSun) Mod1Multiplier(user, target *Battler, move *Move) float64 {
	return weatherTypeBoost(&w.WeatherBase, user, target, move, data.TypeFire, data.TypeWater)
}

func (w *HardSun) OnStatusPrevention(h *StatusChangeHandler, status string, target, _ *Battler, _ *Move) HookResult {
	return sunFreezePrevention(&w.WeatherBase, h, status, target)
}

// weatherTypeBoost returns 1.5 for boosted, 0.5 for weakened moves.
func weatherTypeBoost(w *WeatherBase, user, target *Battler, move *Move, boosted, weakened data.TypeID) float64 {
	if !w.active() || !move.IsDamaging() {
		return 1
	}
	switch w.logic.MoveType(user, target, move) {
	case boosted:
		return 1.5
	case weakened:
		return 0.5
	default:
		return 1
	}
}

func sunFreezePrevention(w *WeatherBase, h *StatusChangeHandler, status string, target *Battler) HookResult {
	if status != StatusFreeze || !w.active() {
		return Continue
	}
	return h.PreventChange(fmt.Sprintf("%s can't be frozen in the harsh sunlight!", target.Name))
}

// primalPrevention blocks every non-primal weather.
func primalPrevention(h *WeatherChangeHandler, weather, msg string) HookResult {
	if IsPrimalWeather(weather) || weather == WeatherNone {
		return Continue
	}
	return h.PreventChange(msg)
}
