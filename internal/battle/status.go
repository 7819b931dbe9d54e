package battle

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/udisondev/monbattle/internal/data"
)

// Major status symbols.
const (
	StatusPoison    = "poison"
	StatusToxic     = "toxic"
	StatusBurn      = "burn"
	StatusParalysis = "paralysis"
	StatusSleep     = "sleep"
	StatusFreeze    = "freeze"

	// StatusCure heals the current major status when passed to StatusChange.
	StatusCure = "cure"
)

// Volatile status symbols. They live in the battler effects handler.
const (
	StatusFlinch    = "flinch"
	StatusConfusion = "confusion"
)

// Status is a major status. A battler holds at most one.
type Status interface {
	Effect
	Target() *Battler
	AppliedMessage() string
	CuredMessage() string
}

// StatusBase is embedded by every major status. It prevents any other major
// status while it is held.
type StatusBase struct {
	BattlerEffect
	applied string
	cured   string
	already string
}

func newStatusBase(l *Logic, target *Battler, name, applied, cured, already string) StatusBase {
	return StatusBase{
		BattlerEffect: NewBattlerEffect(l, target, name, Infinity),
		applied:       applied,
		cured:         cured,
		already:       already,
	}
}

func (s *StatusBase) AppliedMessage() string { return fmt.Sprintf(s.applied, s.target.Name) }
func (s *StatusBase) CuredMessage() string   { return fmt.Sprintf(s.cured, s.target.Name) }

func (s *StatusBase) OnStatusPrevention(h *StatusChangeHandler, status string, target, _ *Battler, _ *Move) HookResult {
	if target != s.target || !IsMajorStatus(status) {
		return Continue
	}
	if status == s.name {
		return h.PreventChange(fmt.Sprintf(s.already, s.target.Name))
	}
	return h.PreventChange("")
}

// canAct reports whether the owner is alive on the field.
func (s *StatusBase) canAct() bool {
	return s.target.IsAlive() && s.target.OnField()
}

type statusFactory func(l *Logic, target *Battler) Status

var statusRegistry = map[string]statusFactory{}

// RegisterStatus registers a major status factory by symbol.
func RegisterStatus(symbol string, factory func(l *Logic, target *Battler) Status) {
	statusRegistry[symbol] = factory
}

// NewStatus creates the major status symbol for target.
func NewStatus(l *Logic, target *Battler, symbol string) (Status, error) {
	factory, ok := statusRegistry[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, symbol)
	}
	return factory(l, target), nil
}

// MustNewStatus is NewStatus that panics on unknown symbols.
func MustNewStatus(l *Logic, target *Battler, symbol string) Status {
	st, err := NewStatus(l, target, symbol)
	if err != nil {
		panic(err)
	}
	return st
}

// IsMajorStatus reports whether symbol names a registered major status.
func IsMajorStatus(symbol string) bool {
	_, ok := statusRegistry[symbol]
	return ok
}

// volatileRegistry holds the statuses stored as battler effects.
var volatileRegistry = map[string]func(l *Logic, target *Battler) Effect{}

// RegisterVolatile registers a volatile status factory by symbol.
func RegisterVolatile(symbol string, factory func(l *Logic, target *Battler) Effect) {
	volatileRegistry[symbol] = factory
}

// IsKnownStatus reports whether symbol is a major or volatile status (or the cure).
func IsKnownStatus(symbol string) bool {
	_, volatile := volatileRegistry[symbol]
	return volatile || IsMajorStatus(symbol) || symbol == StatusCure
}

// statusTypeImmunity lists the types that can never receive a major status.
var statusTypeImmunity = map[string][]data.TypeID{
	StatusPoison:    {data.TypePoison, data.TypeSteel},
	StatusToxic:     {data.TypePoison, data.TypeSteel},
	StatusBurn:      {data.TypeFire},
	StatusFreeze:    {data.TypeIce},
	StatusParalysis: {data.TypeElectric},
}

func typeImmuneToStatus(target *Battler, status string) bool {
	return lo.SomeBy(statusTypeImmunity[status], target.HasType)
}

func init() {
	RegisterStatus(StatusPoison, newPoison)
	RegisterStatus(StatusToxic, newToxic)
	RegisterStatus(StatusBurn, newBurn)
	RegisterStatus(StatusParalysis, newParalysis)
	RegisterStatus(StatusSleep, newSleep)
	RegisterStatus(StatusFreeze, newFreeze)

	RegisterVolatile(StatusFlinch, newFlinch)
	RegisterVolatile(StatusConfusion, newConfusion)
}
