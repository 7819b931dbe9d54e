package battle

import "fmt"

// Action classes, resolved in this order within a turn.
const (
	classFlee = iota
	classSwitch
	classItem
	classMega
	classAttack
)

// Action is one decision of a battler for the turn.
type Action interface {
	Actor() *Battler
	class() int
	fmt.Stringer
}

// AttackAction uses Move against Targets (nil targets use the move defaults).
type AttackAction struct {
	User    *Battler
	Move    *Move
	Targets []*Battler
}

func (a AttackAction) Actor() *Battler { return a.User }
func (AttackAction) class() int        { return classAttack }
func (a AttackAction) String() string  { return fmt.Sprintf("%s uses %s", a.User, a.Move) }

// SwitchAction replaces Who by the party member With.
type SwitchAction struct {
	Who  *Battler
	With *Battler
}

func (a SwitchAction) Actor() *Battler { return a.Who }
func (SwitchAction) class() int        { return classSwitch }
func (a SwitchAction) String() string  { return fmt.Sprintf("%s switches to %s", a.Who, a.With) }

// ItemAction uses a bag item on a party member.
type ItemAction struct {
	User   *Battler
	Item   string
	Target *Battler
}

func (a ItemAction) Actor() *Battler { return a.User }
func (ItemAction) class() int        { return classItem }
func (a ItemAction) String() string  { return fmt.Sprintf("%s uses %s on %s", a.User, a.Item, a.Target) }

// MegaAction mega evolves User before the attacks of the turn.
type MegaAction struct {
	User *Battler
}

func (a MegaAction) Actor() *Battler { return a.User }
func (MegaAction) class() int        { return classMega }
func (a MegaAction) String() string  { return fmt.Sprintf("%s mega evolves", a.User) }

// FleeAction tries to run away from a roaming battle.
type FleeAction struct {
	User *Battler
}

func (a FleeAction) Actor() *Battler { return a.User }
func (FleeAction) class() int        { return classFlee }
func (a FleeAction) String() string  { return fmt.Sprintf("%s flees", a.User) }
