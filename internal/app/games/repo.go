package games

import (
	"context"

	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// Repo defines the persistence capability the Controller delegates to.
// GetGame reports absence with ok=false rather than an error. UpdateGame
// returns a *domaingames.IdentityMismatchError when the game's embedded id
// conflicts with id.
type Repo interface {
	ListGames(ctx context.Context) ([]domaingames.Game, error)
	GetGame(ctx context.Context, id int64) (domaingames.Game, bool, error)
	CreateGame(ctx context.Context, game domaingames.Game) (int64, error)
	UpdateGame(ctx context.Context, id int64, game domaingames.Game) (int64, error)
}
