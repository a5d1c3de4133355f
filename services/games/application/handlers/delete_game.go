package handlers

import (
	"net/http"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	appsvcs "github.com/ghuser/skyhoard/services/games/application/services"
)

// DeleteGameHandler handles DELETE /games/{gameID} requests.
type DeleteGameHandler struct {
	svc *appsvcs.Services
}

// NewDeleteGameHandler returns a DeleteGameHandler backed by the given services.
func NewDeleteGameHandler(svc *appsvcs.Services) *DeleteGameHandler {
	return &DeleteGameHandler{svc: svc}
}

// Execute deletes a game and everything it owns.
//
//	@Summary		Delete game
//	@Description	Deletes a game with all of its lists and items
//	@Tags			games
//	@Produce		json
//	@Param			gameID	path	string	true	"Game ID"
//	@Success		204		"No Content"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/games/{gameID} [delete]
func (h *DeleteGameHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	gameID, ok := pathUUID(w, r, "gameID")
	if !ok {
		return
	}

	if err := h.svc.Game.Delete(r.Context(), userID, gameID); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
