package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const maxGameNameLength = 255

// Game is the root of a user's tracked world state. Every list and item
// belongs to exactly one game; destroying a game cascades to all of them.
type Game struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGame constructs a valid Game owned by the given user.
func NewGame(userID uuid.UUID, name string) (*Game, error) {
	if err := ValidateGameName(name); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Game{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename validates and applies a new name.
func (g *Game) Rename(name string) error {
	if err := ValidateGameName(name); err != nil {
		return err
	}
	g.Name = name
	g.UpdatedAt = time.Now().UTC()
	return nil
}

// ValidateGameName enforces name rules: non-blank, at most 255 characters,
// no control characters.
func ValidateGameName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be blank")
	}
	if len(name) > maxGameNameLength {
		return fmt.Errorf("name must not exceed %d characters", maxGameNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("name must not contain control characters")
		}
	}
	return nil
}

// DefaultGameName returns the generated name for a game created without one,
// numbered after the count of games the user already has.
func DefaultGameName(existing int) string {
	return fmt.Sprintf("My Game %d", existing+1)
}
