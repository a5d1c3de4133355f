package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/skyhoard/pkg/auth"
	"github.com/ghuser/skyhoard/pkg/errhttp"
	"github.com/ghuser/skyhoard/pkg/httpx"
	appsvcs "github.com/ghuser/skyhoard/services/games/application/services"
	"github.com/ghuser/skyhoard/services/games/domain/repositories"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// GetGamesHandler handles GET /games requests.
type GetGamesHandler struct {
	svc *appsvcs.Services
}

// NewGetGamesHandler returns a GetGamesHandler backed by the given services.
func NewGetGamesHandler(svc *appsvcs.Services) *GetGamesHandler {
	return &GetGamesHandler{svc: svc}
}

// Execute lists the authenticated user's games.
//
//	@Summary		List games
//	@Description	Returns a paginated list of the authenticated user's games
//	@Tags			games
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 100)"	default(20)
//	@Param			offset	query		int	false	"Page offset"			default(0)
//	@Success		200		{object}	GameListResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/games [get]
func (h *GetGamesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	opts := queryOpts(r)
	games, total, err := h.svc.Game.List(r.Context(), userID, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := GameListResponse{
		Games:  make([]GameResponse, 0, len(games)),
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	for _, g := range games {
		resp.Games = append(resp.Games, toGameResponse(g))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func queryOpts(r *http.Request) repositories.QueryOpts {
	opts := repositories.QueryOpts{Limit: defaultPageLimit}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		opts.Limit = min(v, maxPageLimit)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		opts.Offset = v
	}
	return opts
}
