package battle

import "github.com/udisondev/monbattle/internal/data"

// StrongWinds (Delta Stream) removes the weaknesses of the Flying type.
type StrongWinds struct {
	WeatherBase
}

func newStrongWinds(l *Logic, turns int) Weather {
	return &StrongWinds{WeatherBase: newWeatherBase(l, WeatherStrongWinds, turns,
		"Mysterious strong winds are protecting Flying-type Pokémon!", "The mysterious strong winds have dissipated!")}
}

func (w *StrongWinds) Primal() bool { return true }

func (w *StrongWinds) OnWeatherPrevention(h *WeatherChangeHandler, weather, _ string) HookResult {
	return primalPrevention(h, weather, "The mysterious strong winds blow on regardless!")
}

func (w *StrongWinds) OnSingleTypeMultiplierOverwrite(_ *Battler, targetType, moveType data.TypeID, _ *Move) (float64, bool) {
	if !w.active() || targetType != data.TypeFlying {
		return 0, false
	}
	if data.Effectiveness(moveType, data.TypeFlying) > 1 {
		return 1, true
	}
	return 0, false
}

// Fog lowers the accuracy of every move.
type Fog struct {
	WeatherBase
}

func newFog(l *Logic, turns int) Weather {
	return &Fog{WeatherBase: newWeatherBase(l, WeatherFog, turns, "The fog is deep...", "The fog cleared.")}
}

func (w *Fog) ChanceOfHitMultiplier(*Battler, *Battler, *Move) float64 {
	if !w.active() {
		return 1
	}
	return 0.6
}
