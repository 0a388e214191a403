package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	appgames "github.com/preston-bernstein/game-catalog-service/internal/app/games"
	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
)

const (
	OpListGames  = "list_games"
	OpGetGame    = "get_game"
	OpCreateGame = "create_game"
	OpUpdateGame = "update_game"
)

// instrumentedRepo wraps a Repo with latency/error metrics and failure logging.
type instrumentedRepo struct {
	inner    appgames.Repo
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
	now      func() time.Time
}

// NewInstrumentedRepo wraps inner so every call is recorded under the given store name.
func NewInstrumentedRepo(inner appgames.Repo, logger *slog.Logger, recorder *metrics.Recorder, name string) appgames.Repo {
	return &instrumentedRepo{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
		now:      time.Now,
	}
}

// Ping delegates to the wrapped repository when it supports readiness checks.
func (r *instrumentedRepo) Ping(ctx context.Context) error {
	if p, ok := r.inner.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Close releases the wrapped repository when it holds resources.
func (r *instrumentedRepo) Close() error {
	if c, ok := r.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (r *instrumentedRepo) ListGames(ctx context.Context) ([]domaingames.Game, error) {
	start := r.now()
	games, err := r.inner.ListGames(ctx)
	r.observe(ctx, OpListGames, start, err, slog.Int(logging.FieldCount, len(games)))
	return games, err
}

func (r *instrumentedRepo) GetGame(ctx context.Context, id int64) (domaingames.Game, bool, error) {
	start := r.now()
	game, ok, err := r.inner.GetGame(ctx, id)
	r.observe(ctx, OpGetGame, start, err, slog.Int64(logging.FieldGameID, id))
	return game, ok, err
}

func (r *instrumentedRepo) CreateGame(ctx context.Context, game domaingames.Game) (int64, error) {
	start := r.now()
	id, err := r.inner.CreateGame(ctx, game)
	r.observe(ctx, OpCreateGame, start, err, slog.Int64(logging.FieldGameID, id))
	return id, err
}

func (r *instrumentedRepo) UpdateGame(ctx context.Context, id int64, game domaingames.Game) (int64, error) {
	start := r.now()
	updated, err := r.inner.UpdateGame(ctx, id, game)
	r.observe(ctx, OpUpdateGame, start, err, slog.Int64(logging.FieldGameID, id))
	return updated, err
}

func (r *instrumentedRepo) observe(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	duration := r.now().Sub(start)
	r.recorder.RecordRepoCall(r.name, op, duration, err)

	if err == nil {
		return
	}
	logger := logging.FromContext(ctx, r.logger)
	if logger == nil {
		return
	}
	level := slog.LevelError
	// Client-caused outcomes are not store failures.
	if errors.Is(err, domaingames.ErrIdentityMismatch) || errors.Is(err, domaingames.ErrNotFound) {
		level = slog.LevelWarn
	}
	attrs = append(attrs,
		slog.String(logging.FieldStore, r.name),
		slog.String(logging.FieldOperation, op),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		slog.Any("error", err),
	)
	logger.Log(ctx, level, "repository call failed", attrs...)
}
