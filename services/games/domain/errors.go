package domain

import "errors"

// Sentinel errors for the games domain. Use errors.Is() to check these.
var (
	// ErrGameNotFound indicates the requested game does not exist or is not
	// owned by the requesting user.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidGame indicates game attributes violate domain constraints.
	ErrInvalidGame = errors.New("invalid game")
)
