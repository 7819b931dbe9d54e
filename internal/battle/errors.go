package battle

import "errors"

// Data errors. They are raised when moves and battlers are built so a
// defect in the content tables fails fast instead of mid-battle.
var (
	ErrUnknownStatus   = errors.New("unknown status")
	ErrUnknownWeather  = errors.New("unknown weather")
	ErrUnknownTerrain  = errors.New("unknown terrain")
	ErrUnknownMechanic = errors.New("unknown move mechanic")
	ErrUnknownAbility  = errors.New("unknown ability")
	ErrUnknownItem     = errors.New("unknown item effect")
)

// Battle flow errors.
var (
	ErrInvalidAction  = errors.New("invalid action")
	ErrInvalidParty   = errors.New("invalid party")
	ErrBattleFinished = errors.New("battle already finished")
	ErrTooManyMoves   = errors.New("too many moves")
)
