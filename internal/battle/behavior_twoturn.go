package battle

import (
	"log/slog"

	"github.com/udisondev/monbattle/internal/data"
)

// twoTurnSpec describes the charging turn of a two-turn move.
type twoTurnSpec struct {
	outOfReach bool
	// moves that still reach the user while out of reach, and those of them
	// dealing double damage
	canHit  []string
	doubled []string
	// stat changes of the user on the charging turn
	chargeStats []data.StatChange
	message     string
	sunShortcut bool
	// power halved in rain, sandstorm, hail and snow
	weakWeather bool
}

var twoTurnSpecs = map[string]twoTurnSpec{
	"solar_beam":  {message: "%s absorbed light!", sunShortcut: true, weakWeather: true},
	"solar_blade": {message: "%s absorbed light!", sunShortcut: true, weakWeather: true},
	"fly": {
		outOfReach: true, message: "%s flew up high!",
		canHit:  []string{"gust", "twister", "thunder", "hurricane", "sky_uppercut", "smack_down"},
		doubled: []string{"gust", "twister"},
	},
	"bounce": {
		outOfReach: true, message: "%s sprang up!",
		canHit:  []string{"gust", "twister", "thunder", "hurricane", "sky_uppercut", "smack_down"},
		doubled: []string{"gust", "twister"},
	},
	"dig": {
		outOfReach: true, message: "%s burrowed its way under the ground!",
		canHit:  []string{"earthquake", "magnitude"},
		doubled: []string{"earthquake", "magnitude"},
	},
	"dive": {
		outOfReach: true, message: "%s hid underwater!",
		canHit:  []string{"surf", "whirlpool"},
		doubled: []string{"surf", "whirlpool"},
	},
	"phantom_force": {outOfReach: true, message: "%s vanished instantly!"},
	"skull_bash": {
		message:     "%s tucked in its head!",
		chargeStats: []data.StatChange{{Stat: data.StatDfe, Stages: 1}},
	},
	"meteor_beam": {
		message:     "%s is overflowing with space power!",
		chargeStats: []data.StatChange{{Stat: data.StatAts, Stages: 1}},
	},
	"sky_attack": {message: "%s became cloaked in a harsh light!"},
	"razor_wind": {message: "%s whipped up a whirlwind!"},
}

// twoTurnBehavior charges on the first use and strikes on the forced second one.
type twoTurnBehavior struct {
	BasicBehavior
	spec twoTurnSpec
}

func newTwoTurn(def *data.MoveDef) Behavior {
	spec, ok := twoTurnSpecs[def.Symbol]
	if !ok {
		spec = twoTurnSpec{message: "%s is charging up!"}
	}
	return twoTurnBehavior{spec: spec}
}

func (b twoTurnBehavior) ConsumesPP(r *Resolution) bool { return !r.Move.Charging() }

func (b twoTurnBehavior) BasePower(l *Logic, _, _ *Battler, m *Move) int {
	if b.spec.weakWeather && l.HasWeather(WeatherRain, WeatherHardRain, WeatherSandstorm, WeatherHail, WeatherSnow) {
		return m.Power() / 2
	}
	return m.Power()
}

func (b twoTurnBehavior) Intercept(r *Resolution) bool {
	l, user, m := r.Logic, r.User, r.Move
	if m.Charging() {
		m.chargeEvent("release")
		clearCharge(user, m)
		return false
	}

	l.DisplayMessage(b.spec.message, user.Name)
	for _, sc := range b.spec.chargeStats {
		l.statChange.StatChange(sc.Stat, sc.Stages, user, user, m)
	}
	if b.spec.sunShortcut && l.HasWeather(WeatherSunny, WeatherHardSun) {
		return false
	}
	if user.HasItem("power_herb") {
		l.DisplayMessage("%s became fully charged due to its Power Herb!", user.Name)
		l.itemChange.ConsumeItem(user)
		return false
	}

	m.chargeEvent("charge")
	user.Effects.Add(newChargeMarker(l, user, m, b.spec))
	user.Effects.Add(newForceNextMove(l, user, m, r.Targets))
	slog.Debug("charging", "user", user.Name, "move", m.Symbol())
	r.Result.Success = true
	return true
}

func (b twoTurnBehavior) Interrupted(r *Resolution) {
	if !r.Move.Charging() {
		return
	}
	clearCharge(r.User, r.Move)
	r.Move.resetCharge()
}

// clearCharge kills the charge marker and the forced move of m.
func clearCharge(user *Battler, m *Move) {
	for _, e := range user.Effects.GetAllFunc(func(e Effect) bool { return isChargeOf(e, m) }) {
		e.Kill()
	}
	user.Effects.DeleteDeadEffects()
}

func isChargeOf(e Effect, m *Move) bool {
	switch x := e.(type) {
	case *ChargeMarker:
		return x.move == m
	case *forceNextMove:
		return x.forced.Move == m
	}
	return false
}

func init() {
	RegisterBehavior("s_2turns", newTwoTurn)
}
