package store

import (
	"context"
	"fmt"

	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// Creator is the subset of a repository needed for seeding.
type Creator interface {
	CreateGame(ctx context.Context, game domaingames.Game) (int64, error)
}

// SampleGames is the starter catalog loaded when seeding is enabled.
func SampleGames() []domaingames.Game {
	return []domaingames.Game{
		{Title: "some game"},
		{Title: "another game"},
	}
}

// Seed inserts the given games in order and returns the assigned ids.
func Seed(ctx context.Context, repo Creator, games []domaingames.Game) ([]int64, error) {
	ids := make([]int64, 0, len(games))
	for _, g := range games {
		id, err := repo.CreateGame(ctx, g)
		if err != nil {
			return ids, fmt.Errorf("seed game %q: %w", g.Title, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
