package handlers

import (
	"net/http"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	pkgvalidator "github.com/ghuser/skyhoard/pkg/validator"
	appsvcs "github.com/ghuser/skyhoard/services/lists/application/services"
)

// UpdateListRequest is the request body for PATCH /lists/{listID}.
type UpdateListRequest struct {
	Title     string `json:"title" validate:"required,max=255" example:"Enchanting Supplies"`
	Aggregate bool   `json:"aggregate" example:"false"`
} // @name UpdateListRequest

// PatchListHandler handles PATCH /lists/{listID} requests.
type PatchListHandler struct {
	svc *appsvcs.Services
}

// NewPatchListHandler returns a PatchListHandler backed by the given services.
func NewPatchListHandler(svc *appsvcs.Services) *PatchListHandler {
	return &PatchListHandler{svc: svc}
}

// Execute renames a regular list. Aggregate lists reject all direct mutation.
//
//	@Summary		Rename list
//	@Description	Changes a regular list's title. Aggregate lists cannot be renamed.
//	@Tags			lists
//	@Accept			json
//	@Produce		json
//	@Param			listID	path		string				true	"List ID"
//	@Param			request	body		UpdateListRequest	true	"List update request"
//	@Success		200		{object}	ListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		405		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/lists/{listID} [patch]
func (h *PatchListHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	listID, ok := pathUUID(w, r, "listID")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateListRequest](w, r)
	if !ok {
		return
	}

	list, err := h.svc.List.Rename(r.Context(), userID, listID, req.Title, req.Aggregate)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toListResponse(list))
}
