package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/skyhoard/services/games/domain/models"
)

// GameResponse is the JSON representation of a game.
type GameResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"       example:"Dragonborn Run"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
} // @name GameResponse

// GameListResponse is the paginated envelope for GET /games.
type GameListResponse struct {
	Games  []GameResponse `json:"games"`
	Total  int            `json:"total"  example:"12"`
	Limit  int            `json:"limit"  example:"20"`
	Offset int            `json:"offset" example:"0"`
} // @name GameListResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"game not found"`
} // @name ErrorResponse

func toGameResponse(g *models.Game) GameResponse {
	return GameResponse{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
