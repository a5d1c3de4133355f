package handlers

import (
	"net/http"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	appsvcs "github.com/ghuser/skyhoard/services/lists/application/services"
)

// GetListsHandler handles GET /games/{gameID}/lists/{family} requests.
type GetListsHandler struct {
	svc *appsvcs.Services
}

// NewGetListsHandler returns a GetListsHandler backed by the given services.
func NewGetListsHandler(svc *appsvcs.Services) *GetListsHandler {
	return &GetListsHandler{svc: svc}
}

// Execute returns all lists of a family with their items, aggregate first.
//
//	@Summary		List lists
//	@Description	Returns every list of the family in the game with items, the aggregate list first
//	@Tags			lists
//	@Produce		json
//	@Param			gameID	path		string	true	"Game ID"
//	@Param			family	path		string	true	"List family"	Enums(shopping, wish, inventory)
//	@Success		200		{object}	ListsResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/games/{gameID}/lists/{family} [get]
func (h *GetListsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	gameID, ok := pathUUID(w, r, "gameID")
	if !ok {
		return
	}
	family, ok := pathFamily(w, r)
	if !ok {
		return
	}

	lists, err := h.svc.List.Lists(r.Context(), userID, gameID, family)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toListsResponse(lists))
}
