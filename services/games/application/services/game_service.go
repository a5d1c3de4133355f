package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	gamesdomain "github.com/ghuser/skyhoard/services/games/domain"
	"github.com/ghuser/skyhoard/services/games/domain/models"
	"github.com/ghuser/skyhoard/services/games/domain/repositories"
)

// GameService orchestrates creation and retrieval of Games.
type GameService struct {
	repo repositories.GameRepository
}

// NewGameService returns a GameService wired with the given repository.
func NewGameService(repo repositories.GameRepository) *GameService {
	return &GameService{repo: repo}
}

// Create validates and persists a Game. An empty name gets a generated
// default ("My Game N").
func (s *GameService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Game, error) {
	if name == "" {
		count, err := s.repo.CountByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("count games: %w", err)
		}
		name = models.DefaultGameName(count)
	}

	taken, err := s.repo.NameTaken(ctx, userID, name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check game name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: name %q is already taken", gamesdomain.ErrInvalidGame, name)
	}

	game, err := models.NewGame(userID, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gamesdomain.ErrInvalidGame, err)
	}
	if err := s.repo.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("save game: %w", err)
	}
	return game, nil
}

// GetByID retrieves a Game scoped to the given user.
func (s *GameService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Game, error) {
	game, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}
	return game, nil
}

// List returns a paginated slice of the user's games plus total count.
func (s *GameService) List(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Game, int, error) {
	games, total, err := s.repo.FindByUserID(ctx, userID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list games: %w", err)
	}
	return games, total, nil
}

// Rename changes a game's name.
func (s *GameService) Rename(ctx context.Context, userID, id uuid.UUID, name string) (*models.Game, error) {
	game, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}

	taken, err := s.repo.NameTaken(ctx, userID, name, id)
	if err != nil {
		return nil, fmt.Errorf("check game name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: name %q is already taken", gamesdomain.ErrInvalidGame, name)
	}

	if err := game.Rename(name); err != nil {
		return nil, fmt.Errorf("%w: %w", gamesdomain.ErrInvalidGame, err)
	}
	if err := s.repo.Update(ctx, game); err != nil {
		return nil, fmt.Errorf("update game: %w", err)
	}
	return game, nil
}

// Delete removes a game and, through the schema's cascades, every list and
// item it owns.
func (s *GameService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}
