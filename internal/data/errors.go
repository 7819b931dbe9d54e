package data

import "errors"

// Data errors. All of them indicate a content defect, not a game event.
var (
	ErrUnknownType    = errors.New("unknown type")
	ErrUnknownMove    = errors.New("unknown move")
	ErrUnknownItem    = errors.New("unknown item")
	ErrUnknownSpecies = errors.New("unknown species")
	ErrInvalidMove    = errors.New("invalid move definition")
)
