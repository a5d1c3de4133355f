package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/skyhoard/services/lists/domain/events"
	"github.com/ghuser/skyhoard/services/lists/domain/models"
)

// TxStore is the transaction-scoped persistence surface for list and item
// mutations. A TxStore instance is only valid inside the WithTx callback that
// produced it; every method reads and writes through that one transaction so
// a regular-list mutation and its aggregate propagation commit or roll back
// together.
//
// The *ForUpdate methods take row locks. Locking the aggregate list row at
// the start of an item mutation serializes concurrent requests that would
// otherwise race on the same aggregate item.
type TxStore interface {
	// LockGame verifies the game exists and is owned by userID, locking its
	// row so concurrent first-list creations for the same game serialize.
	// Returns domain.ErrGameNotFound otherwise.
	LockGame(ctx context.Context, userID, gameID uuid.UUID) error

	ListForUpdate(ctx context.Context, userID, listID uuid.UUID) (*models.List, error)
	// AggregateListForUpdate locks and returns the aggregate list of the
	// (game, family), or domain.ErrListNotFound when none exists yet.
	AggregateListForUpdate(ctx context.Context, gameID uuid.UUID, family models.Family) (*models.List, error)
	RegularListCount(ctx context.Context, gameID uuid.UUID, family models.Family) (int, error)
	ListTitleTaken(ctx context.Context, gameID uuid.UUID, family models.Family, title string, exclude uuid.UUID) (bool, error)
	InsertList(ctx context.Context, list *models.List) error
	UpdateList(ctx context.Context, list *models.List) error
	DeleteList(ctx context.Context, id uuid.UUID) error

	// ItemForUpdate locks and returns the item together with its owning list,
	// scoped to the requesting user.
	ItemForUpdate(ctx context.Context, userID, itemID uuid.UUID) (*models.Item, *models.List, error)
	// ItemOnList finds the item with the given description key on one list,
	// or domain.ErrItemNotFound.
	ItemOnList(ctx context.Context, listID uuid.UUID, descriptionKey string) (*models.Item, error)
	ItemsOnList(ctx context.Context, listID uuid.UUID) ([]*models.Item, error)
	// AggregateItem finds the aggregate list's item with the description key,
	// or domain.ErrItemNotFound.
	AggregateItem(ctx context.Context, aggregateListID uuid.UUID, descriptionKey string) (*models.Item, error)
	// RegularItems returns every item with the description key on the
	// (game, family)'s regular lists, excluding the given item IDs.
	RegularItems(ctx context.Context, gameID uuid.UUID, family models.Family, descriptionKey string, exclude ...uuid.UUID) ([]*models.Item, error)
	InsertItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// PublishListChanged publishes the event on the transaction, so it is only
	// delivered if the surrounding mutation commits.
	PublishListChanged(ctx context.Context, event events.ListChangedEvent) error
}

// DriftRow reports one (game, family, description) whose aggregate quantity
// no longer equals the sum of its contributing regular items. Produced by the
// out-of-band audit; an empty result is the invariant holding.
type DriftRow struct {
	GameID            uuid.UUID
	Family            models.Family
	Description       string
	AggregateQuantity int
	RegularQuantity   int
}

// ListRepository is the persistence interface for the lists bounded context.
// The domain layer owns this interface; infrastructure implements it.
type ListRepository interface {
	// WithTx runs fn inside a single transaction, committing if fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx TxStore) error) error

	// GameOwned reports whether the game exists and belongs to the user.
	GameOwned(ctx context.Context, userID, gameID uuid.UUID) (bool, error)

	// GameLists returns all of the (game, family)'s lists, aggregate first,
	// scoped to the requesting user.
	GameLists(ctx context.Context, userID, gameID uuid.UUID, family models.Family) ([]*models.List, error)
	GetList(ctx context.Context, userID, listID uuid.UUID) (*models.List, error)
	AggregateList(ctx context.Context, userID, gameID uuid.UUID, family models.Family) (*models.List, error)
	ItemsForList(ctx context.Context, listID uuid.UUID) ([]*models.Item, error)

	// AggregateDrift re-derives aggregate quantities by summing regular items
	// and reports every mismatch. Used by the audit workflow only.
	AggregateDrift(ctx context.Context) ([]DriftRow, error)
}
