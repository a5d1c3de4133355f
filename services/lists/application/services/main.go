package services

import (
	"github.com/ghuser/skyhoard/pkg/app"
	"github.com/ghuser/skyhoard/pkg/cache"
	"github.com/ghuser/skyhoard/services/lists/infrastructure/persistence/postgres"
)

// Status is the outcome kind of a successful mutation. It tells the HTTP
// layer which 2xx to use; failures travel as errors and are mapped by
// pkg/errhttp instead.
type Status int

const (
	// StatusOK — mutation succeeded, resources returned.
	StatusOK Status = iota
	// StatusCreated — mutation succeeded, new resources returned.
	StatusCreated
	// StatusNoContent — mutation succeeded, nothing left to return.
	StatusNoContent
)

// Services is the application-layer service container for the lists bounded
// context. It wires domain services with their infrastructure implementations.
type Services struct {
	List *ListService
	Item *ItemService
}

// New wires all lists application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewListRepository(a.Db, a.EventBus)
	aggCache := cache.NewAggregateCache(a.Redis)
	return &Services{
		List: NewListService(repo, aggCache),
		Item: NewItemService(repo),
	}
}
