package testutil

import (
	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// SampleGame returns a minimal game fixture with the provided id.
func SampleGame(id int64) domaingames.Game {
	return domaingames.Game{ID: id, Title: "some game"}
}

// SampleCatalog returns the two-game catalog used across handler and server tests.
func SampleCatalog() []domaingames.Game {
	return []domaingames.Game{
		{ID: 1, Title: "some game"},
		{ID: 2, Title: "another game"},
	}
}
