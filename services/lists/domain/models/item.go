package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxDescriptionLength = 255

// Item is a single tracked entry on a list: what it is, how many, how much
// one weighs, and free-form notes. Within a list, descriptions are unique
// under case-insensitive comparison; a same-description create merges into
// the existing row instead of adding a second one.
type Item struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	Description string
	Quantity    int
	UnitWeight  decimal.NullDecimal
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem constructs a valid Item for the given list.
func NewItem(listID uuid.UUID, description string, quantity int, unitWeight decimal.NullDecimal, notes *string) (*Item, error) {
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be a positive integer")
	}
	if err := validateUnitWeight(unitWeight); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		ListID:      listID,
		Description: description,
		Quantity:    quantity,
		UnitWeight:  unitWeight,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// CopyToList returns a new Item on the target list carrying this item's
// description, quantity, unit weight, and notes. Used when the synchronizer
// seeds an aggregate item from its first contributing regular item.
func (i *Item) CopyToList(listID uuid.UUID) *Item {
	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		ListID:      listID,
		Description: i.Description,
		Quantity:    i.Quantity,
		UnitWeight:  i.UnitWeight,
		Notes:       i.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DescriptionKey returns the case-insensitive matching key for this item's
// description. Matching between regular and aggregate items is always exact
// under this key; there is no fuzzy matching or trimming.
func (i *Item) DescriptionKey() string {
	return DescriptionKey(i.Description)
}

// DescriptionKey lowercases a description for case-insensitive matching.
func DescriptionKey(description string) string {
	return strings.ToLower(description)
}

// SameDescription reports whether two descriptions match case-insensitively.
func SameDescription(a, b string) bool {
	return strings.EqualFold(a, b)
}

// AddQuantity merges another contribution of the same description into this
// item by summing quantities.
func (i *Item) AddQuantity(n int) {
	i.Quantity += n
	i.UpdatedAt = time.Now().UTC()
}

// ValidateDescription enforces description rules: non-blank, at most 255
// characters, no control characters.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description must not be blank")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description must not exceed %d characters", maxDescriptionLength)
	}
	for _, r := range description {
		if unicode.IsControl(r) {
			return fmt.Errorf("description must not contain control characters")
		}
	}
	return nil
}

func validateUnitWeight(w decimal.NullDecimal) error {
	if w.Valid && w.Decimal.IsNegative() {
		return fmt.Errorf("unit weight must not be negative")
	}
	return nil
}

// NotesEqual compares two optional notes values, treating nil and "" as equal.
func NotesEqual(a, b *string) bool {
	av, bv := "", ""
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// NotesEmpty reports whether the notes value carries no content.
func NotesEmpty(n *string) bool {
	return n == nil || *n == ""
}

// UnitWeightEqual compares two optional unit weights by numeric value.
func UnitWeightEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	if !a.Valid {
		return true
	}
	return a.Decimal.Equal(b.Decimal)
}
