package battle

import "github.com/udisondev/monbattle/internal/data"

// itemTypeBehavior takes its type from the held item (Judgment, Techno Blast,
// Multi-Attack). Without a matching item the move keeps its own type.
type itemTypeBehavior struct {
	BasicBehavior
	typeOf func(*data.ItemDef) data.TypeID
}

func (b itemTypeBehavior) MoveType(_ *Logic, user *Battler, m *Move) data.TypeID {
	if def, ok := user.ItemDef(); ok {
		if typ := b.typeOf(def); typ != data.TypeNone {
			return typ
		}
	}
	return m.Type()
}

// naturalGiftBehavior needs a berry: power and type come from it and the berry
// is consumed.
type naturalGiftBehavior struct{ BasicBehavior }

func (naturalGiftBehavior) berry(user *Battler) (*data.ItemDef, bool) {
	def, ok := user.ItemDef()
	if !ok || !def.IsBerry() || def.NaturalGiftPower == 0 {
		return nil, false
	}
	return def, true
}

func (b naturalGiftBehavior) Selectable(_ *Logic, user *Battler, _ *Move) bool {
	_, ok := b.berry(user)
	return ok
}

func (b naturalGiftBehavior) MoveType(_ *Logic, user *Battler, m *Move) data.TypeID {
	if def, ok := b.berry(user); ok {
		return def.NaturalGiftType
	}
	return m.Type()
}

func (b naturalGiftBehavior) BasePower(_ *Logic, user, _ *Battler, _ *Move) int {
	if def, ok := b.berry(user); ok {
		return def.NaturalGiftPower
	}
	return 0
}

func (b naturalGiftBehavior) Intercept(r *Resolution) bool {
	if _, ok := b.berry(r.User); !ok {
		r.Logic.DisplayMessage("But it failed!")
		return true
	}
	return false
}

func (naturalGiftBehavior) Execute(r *Resolution) bool {
	dealt := r.dealDamageAll()
	r.Logic.itemChange.ConsumeItem(r.User)
	return dealt
}

// flingBehavior throws the held item: power from the item, then the item is gone.
type flingBehavior struct{ BasicBehavior }

func flingPower(user *Battler) int {
	if def, ok := user.ItemDef(); ok {
		return def.FlingPower
	}
	return 0
}

func (flingBehavior) Selectable(_ *Logic, user *Battler, _ *Move) bool {
	return flingPower(user) > 0
}

func (flingBehavior) BasePower(_ *Logic, user, _ *Battler, _ *Move) int { return flingPower(user) }

func (flingBehavior) Intercept(r *Resolution) bool {
	l, user := r.Logic, r.User
	if flingPower(user) == 0 || !l.itemChange.CanChangeItem("", user, user, r.Move) {
		l.DisplayMessage("But it failed!")
		return true
	}
	return false
}

func (flingBehavior) Execute(r *Resolution) bool {
	l, user := r.Logic, r.User
	l.DisplayMessage("%s flung its %s!", user.Name, displayName(user.Item()))
	dealt := r.dealDamageAll()
	l.itemChange.ConsumeItem(user)
	return dealt
}

func init() {
	RegisterBehavior("s_natural_gift", func(*data.MoveDef) Behavior { return naturalGiftBehavior{} })
	RegisterBehavior("s_fling", func(*data.MoveDef) Behavior { return flingBehavior{} })
	RegisterBehavior("s_judgment", func(*data.MoveDef) Behavior {
		return itemTypeBehavior{typeOf: func(d *data.ItemDef) data.TypeID { return d.PlateType }}
	})
	RegisterBehavior("s_techno_blast", func(*data.MoveDef) Behavior {
		return itemTypeBehavior{typeOf: func(d *data.ItemDef) data.TypeID { return d.DriveType }}
	})
	RegisterBehavior("s_multi_attack", func(*data.MoveDef) Behavior {
		return itemTypeBehavior{typeOf: func(d *data.ItemDef) data.TypeID { return d.MemoryType }}
	})
}
