package handlers

import (
	"net/http"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	appsvcs "github.com/ghuser/skyhoard/services/lists/application/services"
)

// GetAggregateHandler handles GET /games/{gameID}/lists/{family}/aggregate.
type GetAggregateHandler struct {
	svc *appsvcs.Services
}

// NewGetAggregateHandler returns a GetAggregateHandler backed by the given services.
func NewGetAggregateHandler(svc *appsvcs.Services) *GetAggregateHandler {
	return &GetAggregateHandler{svc: svc}
}

// Execute returns the family's aggregate list with its items.
//
//	@Summary		Get aggregate list
//	@Description	Returns the auto-maintained aggregate list of the family with its items. Served from cache when warm.
//	@Tags			lists
//	@Produce		json
//	@Param			gameID	path		string	true	"Game ID"
//	@Param			family	path		string	true	"List family"	Enums(shopping, wish, inventory)
//	@Success		200		{object}	ListWithItemsResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/games/{gameID}/lists/{family}/aggregate [get]
func (h *GetAggregateHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	view, err := h.svc.List.AggregateView(r.Context(), userID, gameID, family)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toListWithItems(*view))
}
