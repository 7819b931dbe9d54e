package battle

import (
	"fmt"
	"log/slog"
)

// Weather symbols.
const (
	WeatherNone        = "none"
	WeatherRain        = "rain"
	WeatherSunny       = "sunny"
	WeatherSandstorm   = "sandstorm"
	WeatherHail        = "hail"
	WeatherSnow        = "snow"
	WeatherHardRain    = "hardrain"
	WeatherHardSun     = "hardsun"
	WeatherStrongWinds = "strong_winds"
	WeatherFog         = "fog"
)

// defaultWeatherTurns is the duration of weather started by a move or an ability.
const defaultWeatherTurns = 5

// weatherRocks extend the weather they match to 8 turns.
var weatherRocks = map[string]string{
	WeatherRain:      "damp_rock",
	WeatherSunny:     "heat_rock",
	WeatherSandstorm: "smooth_rock",
	WeatherHail:      "icy_rock",
	WeatherSnow:      "icy_rock",
}

// Weather is the global weather. At most one lives in the field handler.
type Weather interface {
	Effect
	// Primal weathers can only be replaced by other primal weathers.
	Primal() bool
	StartMessage() string
}

// WeatherBase is embedded by every weather.
type WeatherBase struct {
	EffectBase
	start string
	end   string
}

func newWeatherBase(l *Logic, name string, turns int, start, end string) WeatherBase {
	return WeatherBase{EffectBase: NewEffectBase(l, name, turns), start: start, end: end}
}

func (w *WeatherBase) Primal() bool         { return false }
func (w *WeatherBase) StartMessage() string { return w.start }

// OnDelete announces the natural end of the weather.
func (w *WeatherBase) OnDelete() {
	if w.counter <= 0 && w.end != "" {
		w.logic.scene.DisplayMessage(w.end)
	}
}

// active reports whether the weather effects apply (Cloud Nine, Air Lock).
func (w *WeatherBase) active() bool {
	return !w.logic.WeatherSuppressed()
}

type weatherFactory func(l *Logic, turns int) Weather

var weatherRegistry = map[string]weatherFactory{}

// RegisterWeather registers a weather factory by symbol.
func RegisterWeather(symbol string, factory func(l *Logic, turns int) Weather) {
	weatherRegistry[symbol] = factory
}

// NewWeather creates weather symbol lasting turns.
func NewWeather(l *Logic, symbol string, turns int) (Weather, error) {
	factory, ok := weatherRegistry[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWeather, symbol)
	}
	return factory(l, turns), nil
}

// MustNewWeather is NewWeather that panics on unknown symbols.
func MustNewWeather(l *Logic, symbol string, turns int) Weather {
	w, err := NewWeather(l, symbol, turns)
	if err != nil {
		panic(err)
	}
	return w
}

// IsKnownWeather reports whether symbol is registered (or "none").
func IsKnownWeather(symbol string) bool {
	_, ok := weatherRegistry[symbol]
	return ok || symbol == WeatherNone
}

// IsPrimalWeather reports whether symbol is one of the primal weathers.
func IsPrimalWeather(symbol string) bool {
	return symbol == WeatherHardRain || symbol == WeatherHardSun || symbol == WeatherStrongWinds
}

// WeatherChangeHandler changes the weather.
type WeatherChangeHandler struct{ handlerBase }

// WeatherAppliable reports whether weather may replace the current one.
func (h *WeatherChangeHandler) WeatherAppliable(weather string) bool {
	if !IsKnownWeather(weather) {
		slog.Warn("weather change ignored", "weather", weather, "err", ErrUnknownWeather)
		return false
	}
	l := h.logic
	last := l.WeatherSymbol()
	result := l.firstPrevention(func(e Effect) HookResult {
		return e.OnWeatherPrevention(h, weather, last)
	}, l.AliveBattlers()...)
	return result == Continue
}

// ChangeWeather installs weather for turns (Infinity for primal weather).
// Setting the current weather again fails.
func (h *WeatherChangeHandler) ChangeWeather(weather string, turns int) bool {
	l := h.logic
	last := l.WeatherSymbol()
	if weather == last || !h.WeatherAppliable(weather) {
		return false
	}
	h.replace(weather, turns)
	l.notify(func(e Effect) {
		e.OnPostWeatherChange(h, weather, last)
	}, l.AliveBattlers()...)
	return true
}

// EndWeather clears a weather without prevention (primal weather holder left).
func (h *WeatherChangeHandler) EndWeather(msg string) {
	l := h.logic
	last := l.WeatherSymbol()
	if last == WeatherNone {
		return
	}
	h.replace(WeatherNone, 0)
	if msg != "" {
		l.scene.DisplayMessage(msg)
	}
	l.notify(func(e Effect) {
		e.OnPostWeatherChange(h, WeatherNone, last)
	}, l.AliveBattlers()...)
}

func (h *WeatherChangeHandler) replace(weather string, turns int) {
	l := h.logic
	isWeather := func(e Effect) bool { _, ok := e.(Weather); return ok }
	if weather == WeatherNone {
		for _, e := range l.field.GetAllFunc(isWeather) {
			e.Kill()
		}
		l.field.DeleteDeadEffects()
		return
	}
	w := MustNewWeather(l, weather, turns)
	l.field.Replace(w, isWeather)
	if start := w.StartMessage(); start != "" {
		l.scene.DisplayMessage(start)
	}
	slog.Debug("weather changed", "weather", weather, "turns", turns)
}

// WeatherDuration returns how long weather started by user lasts (rocks extend it).
func (h *WeatherChangeHandler) WeatherDuration(user *Battler, weather string) int {
	if IsPrimalWeather(weather) {
		return Infinity
	}
	if rock, ok := weatherRocks[weather]; ok && user != nil && user.HasItem(rock) {
		return 8
	}
	return defaultWeatherTurns
}

func init() {
	RegisterWeather(WeatherRain, newRain)
	RegisterWeather(WeatherHardRain, newHardRain)
	RegisterWeather(WeatherSunny, newSunny)
	RegisterWeather(WeatherHardSun, newHardSun)
	RegisterWeather(WeatherSandstorm, newSandstorm)
	RegisterWeather(WeatherHail, newHail)
	RegisterWeather(WeatherSnow, newSnow)
	RegisterWeather(WeatherStrongWinds, newStrongWinds)
	RegisterWeather(WeatherFog, newFog)
}
