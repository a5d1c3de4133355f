package handlers

import (
	"net/http"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	pkgvalidator "github.com/ghuser/skyhoard/pkg/validator"
	appsvcs "github.com/ghuser/skyhoard/services/games/application/services"
)

// UpdateGameRequest is the request body for PATCH /games/{gameID}.
type UpdateGameRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Dragonborn Run II"`
} // @name UpdateGameRequest

// PatchGameHandler handles PATCH /games/{gameID} requests.
type PatchGameHandler struct {
	svc *appsvcs.Services
}

// NewPatchGameHandler returns a PatchGameHandler backed by the given services.
func NewPatchGameHandler(svc *appsvcs.Services) *PatchGameHandler {
	return &PatchGameHandler{svc: svc}
}

// Execute renames a game.
//
//	@Summary		Rename game
//	@Description	Changes a game's name
//	@Tags			games
//	@Accept			json
//	@Produce		json
//	@Param			gameID	path		string				true	"Game ID"
//	@Param			request	body		UpdateGameRequest	true	"Game update request"
//	@Success		200		{object}	GameResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/games/{gameID} [patch]
func (h *PatchGameHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	gameID, ok := pathUUID(w, r, "gameID")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateGameRequest](w, r)
	if !ok {
		return
	}

	game, err := h.svc.Game.Rename(r.Context(), userID, gameID, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toGameResponse(game))
}
