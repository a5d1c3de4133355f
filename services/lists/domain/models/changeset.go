package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FieldChange records one attribute's previous and new value.
type FieldChange[T any] struct {
	From T
	To   T
}

// ItemChanges is the changeset handed to the aggregate synchronizer after a
// regular-list item was updated. Only attributes that actually changed are
// populated. Quantity propagates as a delta (To − From); Notes carries its
// previous value so the synchronizer can tell whether this item was the
// source of the aggregate's current notes.
type ItemChanges struct {
	Quantity   *FieldChange[int]
	UnitWeight *FieldChange[decimal.NullDecimal]
	Notes      *FieldChange[*string]
}

// Empty reports whether no attribute changed.
func (c ItemChanges) Empty() bool {
	return c.Quantity == nil && c.UnitWeight == nil && c.Notes == nil
}

// ChangesFor computes the changeset that applying the given attributes to item
// would produce, without mutating item. Nil arguments mean "not supplied".
func ChangesFor(item *Item, quantity *int, unitWeight *decimal.NullDecimal, notes **string) ItemChanges {
	var c ItemChanges
	if quantity != nil && *quantity != item.Quantity {
		c.Quantity = &FieldChange[int]{From: item.Quantity, To: *quantity}
	}
	if unitWeight != nil && !UnitWeightEqual(*unitWeight, item.UnitWeight) {
		c.UnitWeight = &FieldChange[decimal.NullDecimal]{From: item.UnitWeight, To: *unitWeight}
	}
	if notes != nil && !NotesEqual(*notes, item.Notes) {
		c.Notes = &FieldChange[*string]{From: item.Notes, To: *notes}
	}
	return c
}

// Apply writes the changeset onto the item.
func (c ItemChanges) Apply(item *Item) {
	if c.Quantity != nil {
		item.Quantity = c.Quantity.To
	}
	if c.UnitWeight != nil {
		item.UnitWeight = c.UnitWeight.To
	}
	if c.Notes != nil {
		item.Notes = c.Notes.To
	}
	if !c.Empty() {
		item.UpdatedAt = time.Now().UTC()
	}
}
