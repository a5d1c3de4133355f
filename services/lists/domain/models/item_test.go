package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func nd(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func sp(s string) *string { return &s }

func TestNewItem(t *testing.T) {
	listID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		item, err := NewItem(listID, "Iron Ingot", 3, nd("1"), sp("for smithing"))
		if err != nil {
			t.Fatalf("NewItem: %v", err)
		}
		if item.ListID != listID || item.Quantity != 3 {
			t.Errorf("item = %+v", item)
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		tests := []struct {
			name        string
			description string
			quantity    int
			unitWeight  decimal.NullDecimal
		}{
			{"blank description", "", 1, decimal.NullDecimal{}},
			{"whitespace description", "  ", 1, decimal.NullDecimal{}},
			{"description too long", strings.Repeat("a", 256), 1, decimal.NullDecimal{}},
			{"control character", "bad\tdesc", 1, decimal.NullDecimal{}},
			{"zero quantity", "Iron Ingot", 0, decimal.NullDecimal{}},
			{"negative quantity", "Iron Ingot", -2, decimal.NullDecimal{}},
			{"negative unit weight", "Iron Ingot", 1, nd("-0.5")},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := NewItem(listID, tt.description, tt.quantity, tt.unitWeight, nil); err == nil {
					t.Error("NewItem accepted invalid input")
				}
			})
		}
	})
}

func TestDescriptionMatching(t *testing.T) {
	if DescriptionKey("Iron Ingot") != "iron ingot" {
		t.Errorf("DescriptionKey lowercasing broken")
	}
	if !SameDescription("Iron Ingot", "IRON INGOT") {
		t.Error("SameDescription should match case-insensitively")
	}
	if SameDescription("Iron Ingot", "Iron Ingot ") {
		t.Error("SameDescription must not trim whitespace")
	}
}

func TestCopyToList(t *testing.T) {
	item, err := NewItem(uuid.New(), "Ruby", 2, nd("0.1"), sp("rare"))
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}

	target := uuid.New()
	cp := item.CopyToList(target)
	if cp.ID == item.ID {
		t.Error("copy shares the source's ID")
	}
	if cp.ListID != target {
		t.Errorf("copy on list %s, want %s", cp.ListID, target)
	}
	if cp.Description != item.Description || cp.Quantity != item.Quantity {
		t.Errorf("copy = %+v, want source attributes carried", cp)
	}
	if !UnitWeightEqual(cp.UnitWeight, item.UnitWeight) || !NotesEqual(cp.Notes, item.Notes) {
		t.Error("copy dropped unit weight or notes")
	}
}

func TestNotesHelpers(t *testing.T) {
	if !NotesEqual(nil, sp("")) {
		t.Error("nil and empty notes should compare equal")
	}
	if NotesEqual(sp("a"), sp("b")) {
		t.Error("different notes compared equal")
	}
	if !NotesEmpty(nil) || !NotesEmpty(sp("")) {
		t.Error("NotesEmpty should treat nil and empty as empty")
	}
	if NotesEmpty(sp("x")) {
		t.Error("NotesEmpty treated content as empty")
	}
}

func TestUnitWeightEqual(t *testing.T) {
	if !UnitWeightEqual(decimal.NullDecimal{}, decimal.NullDecimal{}) {
		t.Error("two unset weights should be equal")
	}
	if UnitWeightEqual(decimal.NullDecimal{}, nd("0")) {
		t.Error("unset and zero should differ")
	}
	if !UnitWeightEqual(nd("1.50"), nd("1.5")) {
		t.Error("numerically equal decimals should compare equal")
	}
}
