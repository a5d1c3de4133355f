package handlers

import (
	"net/http"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	pkgvalidator "github.com/ghuser/skyhoard/pkg/validator"
	appsvcs "github.com/ghuser/skyhoard/services/games/application/services"
)

// CreateGameRequest is the request body for POST /games. An omitted or empty
// name gets a generated default.
type CreateGameRequest struct {
	Name string `json:"name" validate:"omitempty,max=255" example:"Dragonborn Run"`
} // @name CreateGameRequest

// PostGameHandler handles POST /games requests.
type PostGameHandler struct {
	svc *appsvcs.Services
}

// NewPostGameHandler returns a PostGameHandler backed by the given services.
func NewPostGameHandler(svc *appsvcs.Services) *PostGameHandler {
	return &PostGameHandler{svc: svc}
}

// Execute creates a new game.
//
//	@Summary		Create game
//	@Description	Creates a game owned by the authenticated user. An empty name gets a generated default.
//	@Tags			games
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateGameRequest	true	"Game creation request"
//	@Success		201		{object}	GameResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/games [post]
func (h *PostGameHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateGameRequest](w, r)
	if !ok {
		return
	}

	game, err := h.svc.Game.Create(r.Context(), userID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toGameResponse(game))
}
