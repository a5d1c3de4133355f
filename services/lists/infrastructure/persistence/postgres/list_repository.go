// Package postgres implements the lists domain repository against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/skyhoard/pkg/database"
	"github.com/ghuser/skyhoard/pkg/events"
	listsdomain "github.com/ghuser/skyhoard/services/lists/domain"
	"github.com/ghuser/skyhoard/services/lists/domain/models"
	"github.com/ghuser/skyhoard/services/lists/domain/repositories"
)

const listColumns = "id, game_id, family, title, aggregate, aggregate_list_id, created_at, updated_at"
const itemColumns = "id, list_id, description, quantity, unit_weight, notes, created_at, updated_at"

// ListRepository implements repositories.ListRepository against PostgreSQL.
// Mutations run through WithTx, which hands callers a transaction-bound
// TxStore; the EventBus is used to publish list.changed events within the
// same transaction (outbox pattern).
type ListRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewListRepository returns a ListRepository backed by the given connection
// pool and event bus.
func NewListRepository(db *database.Database, bus *events.EventBus) *ListRepository {
	return &ListRepository{db: db, bus: bus}
}

// WithTx runs fn inside one transaction with a tx-bound store.
func (r *ListRepository) WithTx(ctx context.Context, fn func(tx repositories.TxStore) error) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return fn(&txStore{tx: tx, bus: r.bus})
	})
}

// GameOwned reports whether the game exists and belongs to the user.
func (r *ListRepository) GameOwned(ctx context.Context, userID, gameID uuid.UUID) (bool, error) {
	return gameExists(ctx, r.db.DB(), userID, gameID)
}

// GameLists returns the (game, family)'s lists, aggregate first, then newest
// first, scoped to the requesting user.
func (r *ListRepository) GameLists(ctx context.Context, userID, gameID uuid.UUID, family models.Family) ([]*models.List, error) {
	exists, err := gameExists(ctx, r.db.DB(), userID, gameID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, listsdomain.ErrGameNotFound
	}

	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+listColumns+` FROM lists
		WHERE game_id = $1 AND family = $2
		ORDER BY aggregate DESC, created_at DESC`,
		gameID, family.String())
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close() //nolint:errcheck
	return scanLists(rows)
}

// GetList retrieves a list by ID scoped to the requesting user.
func (r *ListRepository) GetList(ctx context.Context, userID, listID uuid.UUID) (*models.List, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+prefixed("l", listColumns)+` FROM lists l
		JOIN games g ON g.id = l.game_id
		WHERE l.id = $1 AND g.user_id = $2`,
		listID, userID)
	list, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listsdomain.ErrListNotFound
		}
		return nil, fmt.Errorf("query list: %w", err)
	}
	return list, nil
}

// AggregateList retrieves the (game, family)'s aggregate list scoped to the
// requesting user. Returns ErrListNotFound when the family has no lists yet.
func (r *ListRepository) AggregateList(ctx context.Context, userID, gameID uuid.UUID, family models.Family) (*models.List, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+prefixed("l", listColumns)+` FROM lists l
		JOIN games g ON g.id = l.game_id
		WHERE g.id = $1 AND g.user_id = $2 AND l.family = $3 AND l.aggregate`,
		gameID, userID, family.String())
	list, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listsdomain.ErrListNotFound
		}
		return nil, fmt.Errorf("query aggregate list: %w", err)
	}
	return list, nil
}

// ItemsForList retrieves a list's items, most recently updated first.
func (r *ListRepository) ItemsForList(ctx context.Context, listID uuid.UUID) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+itemColumns+` FROM list_items
		WHERE list_id = $1
		ORDER BY updated_at DESC, id`,
		listID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck
	return scanItems(rows)
}

// AggregateDrift re-derives every aggregate item's quantity by summing the
// contributing regular items and reports mismatches. Read-only; used by the
// audit workflow.
func (r *ListRepository) AggregateDrift(ctx context.Context) ([]repositories.DriftRow, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT al.game_id, al.family, ai.description, ai.quantity,
		       COALESCE(SUM(ri.quantity), 0) AS regular_quantity
		FROM lists al
		JOIN list_items ai ON ai.list_id = al.id
		LEFT JOIN lists rl ON rl.game_id = al.game_id AND rl.family = al.family AND NOT rl.aggregate
		LEFT JOIN list_items ri ON ri.list_id = rl.id AND lower(ri.description) = lower(ai.description)
		WHERE al.aggregate
		GROUP BY al.game_id, al.family, ai.description, ai.quantity
		HAVING ai.quantity <> COALESCE(SUM(ri.quantity), 0)`)
	if err != nil {
		return nil, fmt.Errorf("query aggregate drift: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var drift []repositories.DriftRow
	for rows.Next() {
		var d repositories.DriftRow
		var family string
		if err := rows.Scan(&d.GameID, &family, &d.Description, &d.AggregateQuantity, &d.RegularQuantity); err != nil {
			return nil, fmt.Errorf("scan drift row: %w", err)
		}
		d.Family = models.Family(family)
		drift = append(drift, d)
	}
	return drift, rows.Err()
}

func gameExists(ctx context.Context, db *sql.DB, userID, gameID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM games WHERE id = $1 AND user_id = $2)`,
		gameID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check game exists: %w", err)
	}
	return exists, nil
}
