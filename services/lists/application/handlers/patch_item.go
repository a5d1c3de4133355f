package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	pkgvalidator "github.com/ghuser/skyhoard/pkg/validator"
	appsvcs "github.com/ghuser/skyhoard/services/lists/application/services"
)

// UpdateItemRequest is the request body for PATCH /items/{itemID}. Omitted
// fields are left unchanged. Description is immutable after creation.
type UpdateItemRequest struct {
	Quantity   *int             `json:"quantity" validate:"omitempty,gte=1" example:"5"`
	UnitWeight *decimal.Decimal `json:"unit_weight" validate:"omitempty" swaggertype:"number" example:"0.1"`
	Notes      *string          `json:"notes" validate:"omitempty,max=255" example:"smelt two ores"`
} // @name UpdateItemRequest

// PatchItemHandler handles PATCH /items/{itemID} requests.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute updates an item on a regular list and propagates the change:
// quantity as a delta onto the aggregate item, unit weight onto every
// same-description item game-wide, notes onto the aggregate item when its
// notes are empty or carried the old value.
//
//	@Summary		Update item
//	@Description	Updates quantity, unit weight, or notes of a regular-list item and syncs the aggregate list.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			itemID	path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Item update request"
//	@Success		200		{object}	ItemsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		405		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{itemID} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	res, err := h.svc.Item.Update(r.Context(), userID, itemID, appsvcs.UpdateItemAttrs{
		Quantity:   req.Quantity,
		UnitWeight: req.UnitWeight,
		Notes:      req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, statusCode(res.Status), toItemsResponse(res.Items))
}
