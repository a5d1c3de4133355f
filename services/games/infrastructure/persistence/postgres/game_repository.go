// Package postgres implements the games domain repository against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/skyhoard/pkg/database"
	gamesdomain "github.com/ghuser/skyhoard/services/games/domain"
	"github.com/ghuser/skyhoard/services/games/domain/models"
	"github.com/ghuser/skyhoard/services/games/domain/repositories"
)

const gameColumns = "id, user_id, name, created_at, updated_at"

// GameRepository implements repositories.GameRepository against PostgreSQL.
type GameRepository struct {
	db *database.Database
}

// NewGameRepository returns a GameRepository backed by the given connection pool.
func NewGameRepository(db *database.Database) *GameRepository {
	return &GameRepository{db: db}
}

// Save persists a new Game. Returns ErrInvalidGame on name collisions.
func (r *GameRepository) Save(ctx context.Context, game *models.Game) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO games (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		game.ID, game.UserID, game.Name, game.CreatedAt, game.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: name %q is already taken", gamesdomain.ErrInvalidGame, game.Name)
		}
		return fmt.Errorf("insert game: %w", err)
	}
	return nil
}

// GetByID retrieves a Game by ID scoped to the given user.
func (r *GameRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Game, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+gameColumns+` FROM games WHERE id = $1 AND user_id = $2`,
		id, userID)
	game, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gamesdomain.ErrGameNotFound
		}
		return nil, fmt.Errorf("query game: %w", err)
	}
	return game, nil
}

// FindByUserID retrieves a paginated list of the user's games plus total count.
func (r *GameRepository) FindByUserID(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Game, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+gameColumns+` FROM games
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		userID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var games []*models.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	total, err := r.CountByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return games, total, nil
}

// CountByUserID returns how many games the user owns.
func (r *GameRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM games WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return count, nil
}

// NameTaken reports whether another of the user's games already uses the name
// (case-insensitive).
func (r *GameRepository) NameTaken(ctx context.Context, userID uuid.UUID, name string, exclude uuid.UUID) (bool, error) {
	var taken bool
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM games WHERE user_id = $1 AND lower(name) = lower($2) AND id <> $3
		)`,
		userID, name, exclude).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check game name: %w", err)
	}
	return taken, nil
}

// Update persists a name change to an existing Game.
func (r *GameRepository) Update(ctx context.Context, game *models.Game) error {
	_, err := r.db.DB().ExecContext(ctx,
		`UPDATE games SET name = $2, updated_at = $3 WHERE id = $1 AND user_id = $4`,
		game.ID, game.Name, game.UpdatedAt, game.UserID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: name %q is already taken", gamesdomain.ErrInvalidGame, game.Name)
		}
		return fmt.Errorf("update game: %w", err)
	}
	return nil
}

// Delete removes a game by ID scoped to the given user; lists and items
// cascade at the database level.
func (r *GameRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM games WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return gamesdomain.ErrGameNotFound
	}
	return nil
}

func scanGame(row interface{ Scan(...any) error }) (*models.Game, error) {
	var game models.Game
	if err := row.Scan(&game.ID, &game.UserID, &game.Name, &game.CreatedAt, &game.UpdatedAt); err != nil {
		return nil, err
	}
	return &game, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
