// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/skyhoard/pkg/httpx"
	gamesdomain "github.com/ghuser/skyhoard/services/games/domain"
	listsdomain "github.com/ghuser/skyhoard/services/lists/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, gamesdomain.ErrGameNotFound),
		errors.Is(err, listsdomain.ErrGameNotFound),
		errors.Is(err, listsdomain.ErrListNotFound),
		errors.Is(err, listsdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, listsdomain.ErrAggregateListImmutable):
		return http.StatusMethodNotAllowed // 405
	case errors.Is(err, gamesdomain.ErrInvalidGame),
		errors.Is(err, listsdomain.ErrInvalidList),
		errors.Is(err, listsdomain.ErrInvalidItem):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, listsdomain.ErrAggregateOutOfSync):
		// Corruption, not user error: the transaction already rolled back.
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
