package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/skyhoard/services/games/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int
	Offset int
}

// GameRepository is the persistence interface for the Game aggregate.
// The domain layer owns this interface; infrastructure implements it.
type GameRepository interface {
	Save(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Game, error)

	// FindByUserID retrieves a paginated list of the user's games plus the
	// total count (ignoring pagination).
	FindByUserID(ctx context.Context, userID uuid.UUID, opts QueryOpts) ([]*models.Game, int, error)

	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	NameTaken(ctx context.Context, userID uuid.UUID, name string, exclude uuid.UUID) (bool, error)

	Update(ctx context.Context, game *models.Game) error

	// Delete removes a game by ID scoped to the given user. Lists and items
	// go with it via ON DELETE CASCADE.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
