package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/skyhoard/pkg/app"
	"github.com/ghuser/skyhoard/services/lists/application/handlers"
	appsvcs "github.com/ghuser/skyhoard/services/lists/application/services"
)

// ListRoutes registers list and item endpoints on the provided chi router.
// Lists are created and enumerated under their owning game and family;
// individual lists and items are addressed by ID alone.
func ListRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/games/{gameID}/lists/{family}", func(r chi.Router) {
			r.Get("/", handlers.NewGetListsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostListHandler(svcs).Execute)
			r.Get("/aggregate", handlers.NewGetAggregateHandler(svcs).Execute)
		})
		r.Route("/lists/{listID}", func(r chi.Router) {
			r.Patch("/", handlers.NewPatchListHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteListHandler(svcs).Execute)
			r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
		})
		r.Route("/items/{itemID}", func(r chi.Router) {
			r.Patch("/", handlers.NewPatchItemHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
		})
	})
}
