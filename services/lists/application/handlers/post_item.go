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

// CreateItemRequest is the request body for POST /lists/{listID}/items.
type CreateItemRequest struct {
	Description string           `json:"description" validate:"required,max=255" example:"Dwarven metal ingot"`
	Quantity    int              `json:"quantity" validate:"required,gte=1" example:"3"`
	UnitWeight  *decimal.Decimal `json:"unit_weight" validate:"omitempty" swaggertype:"number" example:"0.1"`
	Notes       *string          `json:"notes" validate:"omitempty,max=255" example:"found in Markarth"`
} // @name CreateItemRequest

// PostItemHandler handles POST /lists/{listID}/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute adds an item to a regular list. A same-description item already on
// the list absorbs the quantity instead of duplicating the row (200 rather
// than 201). The response carries every touched item, aggregate first.
//
//	@Summary		Create item
//	@Description	Adds an item to a regular list, merging into an existing same-description row and syncing the aggregate list.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			listID	path		string				true	"List ID"
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		200		{object}	ItemsResponse
//	@Success		201		{object}	ItemsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		405		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/lists/{listID}/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	listID, ok := pathUUID(w, r, "listID")
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	res, err := h.svc.Item.Create(r.Context(), userID, listID, appsvcs.CreateItemAttrs{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitWeight:  req.UnitWeight,
		Notes:       req.Notes,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, statusCode(res.Status), toItemsResponse(res.Items))
}
