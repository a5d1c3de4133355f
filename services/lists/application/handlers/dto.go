package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/skyhoard/pkg/httpx"
	appsvcs "github.com/ghuser/skyhoard/services/lists/application/services"
	"github.com/ghuser/skyhoard/services/lists/domain/models"
)

// ListResponse is the JSON representation of a list.
type ListResponse struct {
	ID              uuid.UUID  `json:"id"                          example:"123e4567-e89b-12d3-a456-426614174000"`
	GameID          uuid.UUID  `json:"game_id"                     example:"550e8400-e29b-41d4-a716-446655440000"`
	Family          string     `json:"family"                      example:"shopping"`
	Title           string     `json:"title"                       example:"Alchemy Supplies"`
	Aggregate       bool       `json:"aggregate"                   example:"false"`
	AggregateListID *uuid.UUID `json:"aggregate_list_id,omitempty" example:"9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
	CreatedAt       time.Time  `json:"created_at"                  example:"2024-01-15T10:30:00Z"`
	UpdatedAt       time.Time  `json:"updated_at"                  example:"2024-01-15T10:30:00Z"`
} // @name ListResponse

// ItemResponse is the JSON representation of an item.
type ItemResponse struct {
	ID          uuid.UUID        `json:"id"                    example:"123e4567-e89b-12d3-a456-426614174000"`
	ListID      uuid.UUID        `json:"list_id"               example:"9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"`
	Description string           `json:"description"           example:"Dwarven metal ingot"`
	Quantity    int              `json:"quantity"              example:"3"`
	UnitWeight  *decimal.Decimal `json:"unit_weight,omitempty" swaggertype:"number" example:"0.1"`
	Notes       *string          `json:"notes,omitempty"       example:"found in Markarth"`
	CreatedAt   time.Time        `json:"created_at"            example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time        `json:"updated_at"            example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ListWithItemsResponse pairs a list with its items.
type ListWithItemsResponse struct {
	ListResponse
	Items []ItemResponse `json:"items"`
} // @name ListWithItemsResponse

// ListsResponse is the envelope for responses carrying one or more lists.
type ListsResponse struct {
	Lists []ListWithItemsResponse `json:"lists"`
} // @name ListsResponse

// ItemsResponse is the envelope for responses carrying every item a mutation
// touched, the aggregate item first.
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
} // @name ItemsResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"list not found"`
} // @name ErrorResponse

func toListResponse(l *models.List) ListResponse {
	resp := ListResponse{
		ID:        l.ID,
		GameID:    l.GameID,
		Family:    l.Family.String(),
		Title:     l.Title,
		Aggregate: l.Aggregate,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if l.AggregateListID.Valid {
		id := l.AggregateListID.UUID
		resp.AggregateListID = &id
	}
	return resp
}

func toItemResponse(i *models.Item) ItemResponse {
	resp := ItemResponse{
		ID:          i.ID,
		ListID:      i.ListID,
		Description: i.Description,
		Quantity:    i.Quantity,
		Notes:       i.Notes,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
	if i.UnitWeight.Valid {
		w := i.UnitWeight.Decimal
		resp.UnitWeight = &w
	}
	return resp
}

func toListWithItems(lw appsvcs.ListWithItems) ListWithItemsResponse {
	resp := ListWithItemsResponse{
		ListResponse: toListResponse(lw.List),
		Items:        make([]ItemResponse, 0, len(lw.Items)),
	}
	for _, it := range lw.Items {
		resp.Items = append(resp.Items, toItemResponse(it))
	}
	return resp
}

func toListsResponse(lists []appsvcs.ListWithItems) ListsResponse {
	resp := ListsResponse{Lists: make([]ListWithItemsResponse, 0, len(lists))}
	for _, lw := range lists {
		resp.Lists = append(resp.Lists, toListWithItems(lw))
	}
	return resp
}

func toItemsResponse(items []*models.Item) ItemsResponse {
	resp := ItemsResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, toItemResponse(it))
	}
	return resp
}

// statusCode maps a mutation outcome to its HTTP status.
func statusCode(s appsvcs.Status) int {
	switch s {
	case appsvcs.StatusCreated:
		return http.StatusCreated
	case appsvcs.StatusNoContent:
		return http.StatusNoContent
	default:
		return http.StatusOK
	}
}

// pathUUID parses a UUID path parameter, writing a 404 when it is malformed:
// a non-UUID identifier can never name an existing resource.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "resource not found")
		return uuid.Nil, false
	}
	return id, true
}

// pathFamily parses the {family} path parameter. Unknown families 404: the
// three hierarchies are fixed routes, not user data.
func pathFamily(w http.ResponseWriter, r *http.Request) (models.Family, bool) {
	family, err := models.ParseFamily(chi.URLParam(r, "family"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "resource not found")
		return "", false
	}
	return family, true
}
