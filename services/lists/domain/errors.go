package domain

import "errors"

// Sentinel errors for the lists domain. Use errors.Is() to check these.
var (
	// ErrGameNotFound indicates the referenced game does not exist or is not
	// owned by the requesting user.
	ErrGameNotFound = errors.New("game not found")

	// ErrListNotFound indicates the requested list does not exist or is not
	// visible to the requesting user.
	ErrListNotFound = errors.New("list not found")

	// ErrItemNotFound indicates the requested list item does not exist or is
	// not visible to the requesting user.
	ErrItemNotFound = errors.New("list item not found")

	// ErrInvalidList indicates list attributes violate domain constraints.
	ErrInvalidList = errors.New("invalid list")

	// ErrInvalidItem indicates item attributes violate domain constraints.
	ErrInvalidItem = errors.New("invalid list item")

	// ErrAggregateListImmutable indicates a client tried to create, modify, or
	// delete an aggregate list (or its items) directly. Aggregate lists change
	// only as a side effect of regular-list mutations.
	ErrAggregateListImmutable = errors.New("cannot manually manage an aggregate list")

	// ErrAggregateOutOfSync indicates the aggregate list no longer mirrors its
	// regular lists — an aggregate item that must exist is missing, or a
	// propagated quantity went negative. This is a data corruption fault, not a
	// user error: the surrounding transaction must roll back in full.
	ErrAggregateOutOfSync = errors.New("aggregate list out of sync")
)
