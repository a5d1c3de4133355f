package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const maxListTitleLength = 255

// List is a named collection of Items belonging to a game. Exactly one list
// per (game, family) is the aggregate list: the auto-maintained merged view of
// every sibling regular list. Regular lists reference it via AggregateListID.
type List struct {
	ID              uuid.UUID
	GameID          uuid.UUID
	Family          Family
	Title           string
	Aggregate       bool
	AggregateListID uuid.NullUUID // null only on the aggregate list itself
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewList constructs a regular (non-aggregate) list. The aggregateListID links
// it to the game's aggregate list of the same family, which the lifecycle
// manager guarantees exists by the time a regular list is persisted.
func NewList(gameID uuid.UUID, family Family, title string, aggregateListID uuid.UUID) (*List, error) {
	if err := ValidateListTitle(title); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &List{
		ID:              uuid.New(),
		GameID:          gameID,
		Family:          family,
		Title:           title,
		AggregateListID: uuid.NullUUID{UUID: aggregateListID, Valid: true},
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// NewAggregateList constructs the aggregate list for a (game, family). Only
// the lifecycle manager calls this; clients can never create one.
func NewAggregateList(gameID uuid.UUID, family Family) *List {
	now := time.Now().UTC()
	return &List{
		ID:        uuid.New(),
		GameID:    gameID,
		Family:    family,
		Title:     AggregateListTitle,
		Aggregate: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename validates and applies a new title.
func (l *List) Rename(title string) error {
	if err := ValidateListTitle(title); err != nil {
		return err
	}
	l.Title = title
	l.UpdatedAt = time.Now().UTC()
	return nil
}

// ValidateListTitle enforces title rules for regular lists:
// non-empty, at most 255 characters, no control characters, and not the
// reserved aggregate title (compared case-insensitively).
func ValidateListTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be blank")
	}
	if len(title) > maxListTitleLength {
		return fmt.Errorf("title must not exceed %d characters", maxListTitleLength)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return fmt.Errorf("title must not contain control characters")
		}
	}
	if strings.EqualFold(title, AggregateListTitle) {
		return fmt.Errorf("title %q is reserved for aggregate lists", AggregateListTitle)
	}
	return nil
}

// DefaultListTitle returns the generated title for a list created without one,
// numbered after the count of lists the game already has in the family.
func DefaultListTitle(existing int) string {
	return fmt.Sprintf("My List %d", existing+1)
}
