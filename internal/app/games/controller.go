package games

import (
	"context"
	"errors"

	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// Controller translates repository outcomes into response envelopes.
type Controller struct {
	repo Repo
}

// NewController constructs a Controller backed by the given Repo.
func NewController(repo Repo) *Controller {
	return &Controller{repo: repo}
}

// ListGames returns every game the repository holds, in repository order.
func (c *Controller) ListGames(ctx context.Context) (Envelope[[]domaingames.Game], error) {
	games, err := c.repo.ListGames(ctx)
	if err != nil {
		return Envelope[[]domaingames.Game]{}, err
	}
	if games == nil {
		games = []domaingames.Game{}
	}
	return ok(games), nil
}

// GetGame returns the game with the given id, or a 404 envelope when absent.
func (c *Controller) GetGame(ctx context.Context, id int64) (Envelope[domaingames.Game], error) {
	game, found, err := c.repo.GetGame(ctx, id)
	if err != nil {
		return Envelope[domaingames.Game]{}, err
	}
	if !found {
		return notFound[domaingames.Game](), nil
	}
	return ok(game), nil
}

// CreateGame stores the game and returns the id assigned by the repository.
func (c *Controller) CreateGame(ctx context.Context, game domaingames.Game) (Envelope[int64], error) {
	id, err := c.repo.CreateGame(ctx, game)
	if err != nil {
		return Envelope[int64]{}, err
	}
	return ok(id), nil
}

// UpdateGame replaces the game stored under id. An identity mismatch becomes a
// 400 envelope and is never returned as an error.
func (c *Controller) UpdateGame(ctx context.Context, id int64, game domaingames.Game) (Envelope[int64], error) {
	updated, err := c.repo.UpdateGame(ctx, id, game)
	if err != nil {
		if errors.Is(err, domaingames.ErrIdentityMismatch) {
			return badRequest[int64](), nil
		}
		return Envelope[int64]{}, err
	}
	return ok(updated), nil
}
