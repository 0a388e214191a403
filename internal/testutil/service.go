package testutil

import (
	appgames "github.com/preston-bernstein/game-catalog-service/internal/app/games"
	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/teststubs"
)

// NewControllerWithGames builds a controller backed by a stub repo preloaded with games.
func NewControllerWithGames(g []domaingames.Game) (*appgames.Controller, *teststubs.StubRepo) {
	repo := &teststubs.StubRepo{Games: g}
	return appgames.NewController(repo), repo
}
