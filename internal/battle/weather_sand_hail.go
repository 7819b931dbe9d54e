package battle

import (
	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/data"
)

var (
	sandImmuneTypes     = []data.TypeID{data.TypeRock, data.TypeGround, data.TypeSteel}
	sandImmuneAbilities = []string{"sand_veil", "sand_rush", "sand_force", "overcoat", "magic_guard"}
	hailImmuneAbilities = []string{"ice_body", "snow_cloak", "overcoat", "magic_guard"}
	// Battlers hidden by these charging moves dodge sandstorm and hail.
	weatherShelterMoves = []string{"dig", "dive"}
)

// Sandstorm chips non Rock/Ground/Steel battlers and boosts the Sp. Def of Rock types.
type Sandstorm struct {
	WeatherBase
}

func newSandstorm(l *Logic, turns int) Weather {
	return &Sandstorm{WeatherBase: newWeatherBase(l, WeatherSandstorm, turns,
		"A sandstorm kicked up!", "The sandstorm subsided.")}
}

// ImmuneToSandstorm reports whether b takes no sandstorm damage.
func ImmuneToSandstorm(b *Battler) bool {
	return lo.SomeBy(sandImmuneTypes, b.HasType) ||
		b.HasAbility(sandImmuneAbilities...) ||
		b.HasItem("safety_goggles") ||
		sheltered(b)
}

func (w *Sandstorm) OnEndTurnEvent(l *Logic, _ Scene, battlers []*Battler) {
	if !w.active() {
		return
	}
	weatherChip(l, battlers, ImmuneToSandstorm, "%s is buffeted by the sandstorm!")
}

func (w *Sandstorm) SpDefMultiplier(_, target *Battler, move *Move) float64 {
	if w.active() && move.IsSpecial() && target.HasType(data.TypeRock) {
		return 1.5
	}
	return 1
}

// Hail chips non Ice battlers.
type Hail struct {
	WeatherBase
}

func newHail(l *Logic, turns int) Weather {
	return &Hail{WeatherBase: newWeatherBase(l, WeatherHail, turns, "It started to hail!", "The hail stopped.")}
}

// ImmuneToHail reports whether b takes no hail damage.
func ImmuneToHail(b *Battler) bool {
	return b.HasType(data.TypeIce) ||
		b.HasAbility(hailImmuneAbilities...) ||
		b.HasItem("safety_goggles") ||
		sheltered(b)
}

func (w *Hail) OnEndTurnEvent(l *Logic, _ Scene, battlers []*Battler) {
	if !w.active() {
		return
	}
	weatherChip(l, battlers, ImmuneToHail, "%s is buffeted by the hail!")
}

// Snow boosts the Defense of Ice types against physical moves.
type Snow struct {
	WeatherBase
}

func newSnow(l *Logic, turns int) Weather {
	return &Snow{WeatherBase: newWeatherBase(l, WeatherSnow, turns, "It started to snow!", "The snow stopped.")}
}

func (w *Snow) SpDefMultiplier(_, target *Battler, move *Move) float64 {
	if w.active() && move.IsPhysical() && target.HasType(data.TypeIce) {
		return 1.5
	}
	return 1
}

// weatherChip deals 1/16 of max HP to every battler not immune.
func weatherChip(l *Logic, battlers []*Battler, immune func(*Battler) bool, msg string) {
	for _, b := range battlers {
		if b.IsDead() || !b.OnField() || immune(b) {
			continue
		}
		l.DisplayMessage(msg, b.Name)
		l.damage.DamageChange(max(1, b.MaxHP()/16), b, nil, nil)
	}
}

// sheltered reports whether b is underground or underwater.
func sheltered(b *Battler) bool {
	return b.Effects.HasFunc(func(e Effect) bool {
		m, ok := e.(*ChargeMarker)
		return ok && lo.Contains(weatherShelterMoves, m.move.Symbol())
	})
}
