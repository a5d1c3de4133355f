package services

import (
	"github.com/ghuser/skyhoard/pkg/app"
	"github.com/ghuser/skyhoard/services/games/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the games bounded
// context.
type Services struct {
	Game *GameService
}

// New wires all games application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	return &Services{
		Game: NewGameService(postgres.NewGameRepository(a.Db)),
	}
}
