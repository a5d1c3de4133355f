package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/skyhoard/pkg/events"
	listsdomain "github.com/ghuser/skyhoard/services/lists/domain"
	domainevents "github.com/ghuser/skyhoard/services/lists/domain/events"
	"github.com/ghuser/skyhoard/services/lists/domain/models"
)

// txStore implements repositories.TxStore over one *sql.Tx. All reads and
// writes go through the transaction, and *ForUpdate methods take row locks so
// concurrent mutations of the same aggregate list serialize.
type txStore struct {
	tx  *sql.Tx
	bus *events.EventBus
}

func (s *txStore) LockGame(ctx context.Context, userID, gameID uuid.UUID) error {
	var id uuid.UUID
	err := s.tx.QueryRowContext(ctx,
		`SELECT id FROM games WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		gameID, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return listsdomain.ErrGameNotFound
		}
		return fmt.Errorf("lock game: %w", err)
	}
	return nil
}

func (s *txStore) ListForUpdate(ctx context.Context, userID, listID uuid.UUID) (*models.List, error) {
	row := s.tx.QueryRowContext(ctx, `
		SELECT `+prefixed("l", listColumns)+` FROM lists l
		JOIN games g ON g.id = l.game_id
		WHERE l.id = $1 AND g.user_id = $2
		FOR UPDATE OF l`,
		listID, userID)
	list, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listsdomain.ErrListNotFound
		}
		return nil, fmt.Errorf("lock list: %w", err)
	}
	return list, nil
}

func (s *txStore) AggregateListForUpdate(ctx context.Context, gameID uuid.UUID, family models.Family) (*models.List, error) {
	row := s.tx.QueryRowContext(ctx, `
		SELECT `+listColumns+` FROM lists
		WHERE game_id = $1 AND family = $2 AND aggregate
		FOR UPDATE`,
		gameID, family.String())
	list, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listsdomain.ErrListNotFound
		}
		return nil, fmt.Errorf("lock aggregate list: %w", err)
	}
	return list, nil
}

func (s *txStore) RegularListCount(ctx context.Context, gameID uuid.UUID, family models.Family) (int, error) {
	var count int
	err := s.tx.QueryRowContext(ctx,
		`SELECT count(*) FROM lists WHERE game_id = $1 AND family = $2 AND NOT aggregate`,
		gameID, family.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count regular lists: %w", err)
	}
	return count, nil
}

func (s *txStore) ListTitleTaken(ctx context.Context, gameID uuid.UUID, family models.Family, title string, exclude uuid.UUID) (bool, error) {
	var taken bool
	err := s.tx.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM lists
			WHERE game_id = $1 AND family = $2 AND lower(title) = lower($3) AND id <> $4
		)`,
		gameID, family.String(), title, exclude).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check list title: %w", err)
	}
	return taken, nil
}

func (s *txStore) InsertList(ctx context.Context, list *models.List) error {
	_, err := s.tx.ExecContext(ctx, `
		INSERT INTO lists (id, game_id, family, title, aggregate, aggregate_list_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		list.ID, list.GameID, list.Family.String(), list.Title, list.Aggregate,
		list.AggregateListID, list.CreatedAt, list.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: title %q is already taken", listsdomain.ErrInvalidList, list.Title)
		}
		return fmt.Errorf("insert list: %w", err)
	}
	return nil
}

func (s *txStore) UpdateList(ctx context.Context, list *models.List) error {
	_, err := s.tx.ExecContext(ctx,
		`UPDATE lists SET title = $2, updated_at = $3 WHERE id = $1`,
		list.ID, list.Title, list.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: title %q is already taken", listsdomain.ErrInvalidList, list.Title)
		}
		return fmt.Errorf("update list: %w", err)
	}
	return nil
}

func (s *txStore) DeleteList(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tx.ExecContext(ctx, `DELETE FROM lists WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

func (s *txStore) ItemForUpdate(ctx context.Context, userID, itemID uuid.UUID) (*models.Item, *models.List, error) {
	row := s.tx.QueryRowContext(ctx, `
		SELECT `+prefixed("i", itemColumns)+`, `+prefixed("l", listColumns)+`
		FROM list_items i
		JOIN lists l ON l.id = i.list_id
		JOIN games g ON g.id = l.game_id
		WHERE i.id = $1 AND g.user_id = $2
		FOR UPDATE OF i`,
		itemID, userID)

	var item models.Item
	var list models.List
	var itemFamily string
	var notes sql.NullString
	if err := row.Scan(
		&item.ID, &item.ListID, &item.Description, &item.Quantity, &item.UnitWeight, &notes, &item.CreatedAt, &item.UpdatedAt,
		&list.ID, &list.GameID, &itemFamily, &list.Title, &list.Aggregate, &list.AggregateListID, &list.CreatedAt, &list.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, listsdomain.ErrItemNotFound
		}
		return nil, nil, fmt.Errorf("lock item: %w", err)
	}
	item.Notes = nullableString(notes)
	list.Family = models.Family(itemFamily)
	return &item, &list, nil
}

func (s *txStore) ItemOnList(ctx context.Context, listID uuid.UUID, descriptionKey string) (*models.Item, error) {
	row := s.tx.QueryRowContext(ctx, `
		SELECT `+itemColumns+` FROM list_items
		WHERE list_id = $1 AND lower(description) = $2`,
		listID, descriptionKey)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listsdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item on list: %w", err)
	}
	return item, nil
}

func (s *txStore) ItemsOnList(ctx context.Context, listID uuid.UUID) ([]*models.Item, error) {
	rows, err := s.tx.QueryContext(ctx, `
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

func (s *txStore) AggregateItem(ctx context.Context, aggregateListID uuid.UUID, descriptionKey string) (*models.Item, error) {
	return s.ItemOnList(ctx, aggregateListID, descriptionKey)
}

func (s *txStore) RegularItems(ctx context.Context, gameID uuid.UUID, family models.Family, descriptionKey string, exclude ...uuid.UUID) ([]*models.Item, error) {
	query := `
		SELECT ` + prefixed("i", itemColumns) + ` FROM list_items i
		JOIN lists l ON l.id = i.list_id
		WHERE l.game_id = $1 AND l.family = $2 AND NOT l.aggregate
		  AND lower(i.description) = $3`
	args := []any{gameID, family.String(), descriptionKey}
	for _, id := range exclude {
		args = append(args, id)
		query += fmt.Sprintf(" AND i.id <> $%d", len(args))
	}
	query += " ORDER BY i.updated_at DESC, i.id"

	rows, err := s.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query regular items: %w", err)
	}
	defer rows.Close() //nolint:errcheck
	return scanItems(rows)
}

func (s *txStore) InsertItem(ctx context.Context, item *models.Item) error {
	_, err := s.tx.ExecContext(ctx, `
		INSERT INTO list_items (id, list_id, description, quantity, unit_weight, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.ListID, item.Description, item.Quantity, item.UnitWeight,
		nullString(item.Notes), item.CreatedAt, item.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: description %q already exists on this list", listsdomain.ErrInvalidItem, item.Description)
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (s *txStore) UpdateItem(ctx context.Context, item *models.Item) error {
	_, err := s.tx.ExecContext(ctx, `
		UPDATE list_items
		SET quantity = $2, unit_weight = $3, notes = $4, updated_at = $5
		WHERE id = $1`,
		item.ID, item.Quantity, item.UnitWeight, nullString(item.Notes), item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (s *txStore) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tx.ExecContext(ctx, `DELETE FROM list_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// PublishListChanged publishes the event on this transaction, so delivery
// only happens if the surrounding mutation commits.
func (s *txStore) PublishListChanged(ctx context.Context, event domainevents.ListChangedEvent) error {
	if s.bus == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := s.bus.NewTxPublisher(s.tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicListChanged, msg)
}

// --- row mapping helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*models.List, error) {
	var list models.List
	var family string
	if err := row.Scan(&list.ID, &list.GameID, &family, &list.Title, &list.Aggregate,
		&list.AggregateListID, &list.CreatedAt, &list.UpdatedAt); err != nil {
		return nil, err
	}
	list.Family = models.Family(family)
	return &list, nil
}

func scanLists(rows *sql.Rows) ([]*models.List, error) {
	var lists []*models.List
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, list)
	}
	return lists, rows.Err()
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var notes sql.NullString
	if err := row.Scan(&item.ID, &item.ListID, &item.Description, &item.Quantity,
		&item.UnitWeight, &notes, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	item.Notes = nullableString(notes)
	return &item, nil
}

func scanItems(rows *sql.Rows) ([]*models.Item, error) {
	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// prefixed qualifies each column in a comma-separated list with a table alias.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
