package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	appsvcs "github.com/ghuser/skyhoard/services/games/application/services"
)

// GetGameHandler handles GET /games/{gameID} requests.
type GetGameHandler struct {
	svc *appsvcs.Services
}

// NewGetGameHandler returns a GetGameHandler backed by the given services.
func NewGetGameHandler(svc *appsvcs.Services) *GetGameHandler {
	return &GetGameHandler{svc: svc}
}

// Execute retrieves a single game.
//
//	@Summary		Get game
//	@Description	Returns one of the authenticated user's games by ID
//	@Tags			games
//	@Produce		json
//	@Param			gameID	path		string	true	"Game ID"
//	@Success		200		{object}	GameResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/games/{gameID} [get]
func (h *GetGameHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	gameID, ok := pathUUID(w, r, "gameID")
	if !ok {
		return
	}

	game, err := h.svc.Game.GetByID(r.Context(), userID, gameID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toGameResponse(game))
}

// pathUUID parses a UUID path parameter, writing a 404 when it is malformed:
// a non-UUID identifier can never name an existing resource.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "resource not found")
		return uuid.Nil, false
	}
	return id, true
}
