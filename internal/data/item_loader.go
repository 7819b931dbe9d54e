package data

import "log/slog"

// ItemTable is the global item registry keyed by db symbol.
var ItemTable map[string]*ItemDef

// GetItem returns the item definition for a db symbol.
func GetItem(symbol string) (*ItemDef, bool) {
	if ItemTable == nil {
		return nil, false
	}
	def, ok := ItemTable[symbol]
	return def, ok
}

// LoadItems строит ItemTable из Go-литералов (itemDefs).
func LoadItems() error {
	ItemTable = make(map[string]*ItemDef, len(itemDefs))
	for i := range itemDefs {
		ItemTable[itemDefs[i].Symbol] = &itemDefs[i]
	}
	slog.Info("loaded items", "count", len(ItemTable))
	return nil
}

// Cures reports whether the item cures the given major status.
func (d *ItemDef) Cures(status string) bool {
	for _, s := range d.CureStatuses {
		if s == "all" || s == status {
			return true
		}
	}
	return false
}

// IsBerry reports whether the item is a consumable berry.
func (d *ItemDef) IsBerry() bool { return d.Kind == ItemBerry }
