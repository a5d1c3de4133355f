package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/skyhoard/pkg/app"
	"github.com/ghuser/skyhoard/services/games/application/handlers"
	appsvcs "github.com/ghuser/skyhoard/services/games/application/services"
)

// GameRoutes registers game endpoints on the provided chi router.
func GameRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", handlers.NewGetGamesHandler(svcs).Execute)
			r.Post("/", handlers.NewPostGameHandler(svcs).Execute)
			r.Get("/{gameID}", handlers.NewGetGameHandler(svcs).Execute)
			r.Patch("/{gameID}", handlers.NewPatchGameHandler(svcs).Execute)
			r.Delete("/{gameID}", handlers.NewDeleteGameHandler(svcs).Execute)
		})
	})
}
