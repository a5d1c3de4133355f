package handlers

import (
	"net/http"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	pkgvalidator "github.com/ghuser/skyhoard/pkg/validator"
	appsvcs "github.com/ghuser/skyhoard/services/lists/application/services"
)

// CreateListRequest is the request body for POST /games/{gameID}/lists/{family}.
// An omitted or empty title gets a generated default. The aggregate flag is
// accepted only to be rejected: aggregate lists are never client-created.
type CreateListRequest struct {
	Title     string `json:"title" validate:"omitempty,max=255" example:"Alchemy Supplies"`
	Aggregate bool   `json:"aggregate" example:"false"`
} // @name CreateListRequest

// PostListHandler handles POST /games/{gameID}/lists/{family} requests.
type PostListHandler struct {
	svc *appsvcs.Services
}

// NewPostListHandler returns a PostListHandler backed by the given services.
func NewPostListHandler(svc *appsvcs.Services) *PostListHandler {
	return &PostListHandler{svc: svc}
}

// Execute creates a regular list, lazily creating the family's aggregate list
// when this is the game's first. The response carries both lists when the
// aggregate was just created.
//
//	@Summary		Create list
//	@Description	Creates a regular list. The family's aggregate list is created automatically alongside the first one.
//	@Tags			lists
//	@Accept			json
//	@Produce		json
//	@Param			gameID	path		string				true	"Game ID"
//	@Param			family	path		string				true	"List family"	Enums(shopping, wish, inventory)
//	@Param			request	body		CreateListRequest	true	"List creation request"
//	@Success		201		{object}	ListsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/games/{gameID}/lists/{family} [post]
func (h *PostListHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[CreateListRequest](w, r)
	if !ok {
		return
	}

	res, err := h.svc.List.Create(r.Context(), userID, gameID, family, req.Title, req.Aggregate)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, statusCode(res.Status), toListsResponse(res.Lists))
}
