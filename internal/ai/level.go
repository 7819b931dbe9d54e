package ai

import "fmt"

// Level is the skill of an AI. Roaming (-1) and Wild (0) drive wild
// battlers; 1..7 drive trainers.
type Level int

const (
	Roaming Level = -1
	Wild    Level = 0
	// MaxLevel is the strongest trainer level.
	MaxLevel Level = 7
)

func (l Level) String() string {
	switch l {
	case Roaming:
		return "roaming"
	case Wild:
		return "wild"
	default:
		return fmt.Sprintf("trainer%d", int(l))
	}
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool { return l >= Roaming && l <= MaxLevel }

// Capabilities are the skills an AI level may use.
type Capabilities struct {
	Effectiveness bool // weighs the type chart
	Power         bool // weighs base power
	Status        bool // weighs status infliction
	Targeting     bool // chooses the best target
	Switching     bool // switches out of danger
	Items         bool // uses bag items
	Mega          bool // mega evolves
	Flee          bool // runs from wild battles
	ReadMovepool  bool // reads the opponent moves to estimate danger
}

var levelCapabilities = map[Level]Capabilities{
	Roaming: {Flee: true},
	Wild:    {},
	1:       {Effectiveness: true},
	2:       {Effectiveness: true, Power: true},
	3:       {Effectiveness: true, Power: true, Status: true},
	4:       {Effectiveness: true, Power: true, Status: true, Targeting: true},
	5:       {Effectiveness: true, Power: true, Status: true, Targeting: true, Switching: true},
	6:       {Effectiveness: true, Power: true, Status: true, Targeting: true, Switching: true, Items: true, Mega: true},
	7: {
		Effectiveness: true, Power: true, Status: true, Targeting: true, Switching: true,
		Items: true, Mega: true, ReadMovepool: true,
	},
}

// CapabilitiesOf returns the capabilities of level. Unknown levels get none.
func CapabilitiesOf(level Level) Capabilities {
	return levelCapabilities[level]
}

// DefaultNoise returns the noise amplitude of level: wild battlers pick almost
// at random, the top trainer level never errs.
func DefaultNoise(level Level) float64 {
	switch {
	case level <= Wild:
		return 0.5
	case level >= MaxLevel:
		return 0
	default:
		return 0.5 - float64(level)*0.07
	}
}
