package handlers

import (
	"net/http"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	appsvcs "github.com/ghuser/skyhoard/services/lists/application/services"
)

// DeleteListHandler handles DELETE /lists/{listID} requests.
type DeleteListHandler struct {
	svc *appsvcs.Services
}

// NewDeleteListHandler returns a DeleteListHandler backed by the given services.
func NewDeleteListHandler(svc *appsvcs.Services) *DeleteListHandler {
	return &DeleteListHandler{svc: svc}
}

// Execute deletes a regular list, reversing its items' contributions to the
// aggregate list. Deleting the game's last regular list of the family also
// deletes the aggregate list and answers 204; otherwise the response carries
// the updated aggregate list with its items.
//
//	@Summary		Delete list
//	@Description	Deletes a regular list. The family's aggregate list goes with the last one.
//	@Tags			lists
//	@Produce		json
//	@Param			listID	path		string	true	"List ID"
//	@Success		200		{object}	ListsResponse
//	@Success		204		"No Content"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		405		{object}	ErrorResponse
//	@Router			/lists/{listID} [delete]
func (h *DeleteListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	listID, ok := pathUUID(w, r, "listID")
	if !ok {
		return
	}

	res, err := h.svc.List.Delete(r.Context(), userID, listID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if res.Status == appsvcs.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.JSON(w, statusCode(res.Status), toListsResponse(res.Lists))
}
