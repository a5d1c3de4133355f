package handlers

import (
	"net/http"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	appsvcs "github.com/ghuser/skyhoard/services/lists/application/services"
)

// DeleteItemHandler handles DELETE /items/{itemID} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes a regular-list item and reverses its contribution to the
// aggregate item. Answers 200 with the decremented aggregate item, or 204
// when the deleted item was its last contributor.
//
//	@Summary		Delete item
//	@Description	Deletes a regular-list item and decrements or removes its aggregate counterpart.
//	@Tags			items
//	@Produce		json
//	@Param			itemID	path		string	true	"Item ID"
//	@Success		200		{object}	ItemsResponse
//	@Success		204		"No Content"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		405		{object}	ErrorResponse
//	@Router			/items/{itemID} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	res, err := h.svc.Item.Delete(r.Context(), userID, itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if res.Status == appsvcs.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httpx.JSON(w, statusCode(res.Status), toItemsResponse(res.Items))
}
