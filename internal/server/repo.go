package server

import (
	"context"
	"fmt"
	"log/slog"

	appgames "github.com/preston-bernstein/game-catalog-service/internal/app/games"
	"github.com/preston-bernstein/game-catalog-service/internal/config"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/store"
	"github.com/preston-bernstein/game-catalog-service/internal/store/sqlite"
)

var openSQLite = func(path string) (appgames.Repo, error) {
	return sqlite.Open(path)
}

// buildRepo opens the configured store and returns it with its metrics name.
func buildRepo(cfg config.StoreConfig) (appgames.Repo, string, error) {
	switch cfg.Driver {
	case "", config.StoreMemory:
		return store.NewMemoryStore(), config.StoreMemory, nil
	case config.StoreSQLite:
		repo, err := openSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, "", fmt.Errorf("open sqlite store: %w", err)
		}
		return repo, config.StoreSQLite, nil
	default:
		return nil, "", fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

// seedRepo loads the sample catalog into an empty repository.
func seedRepo(ctx context.Context, repo appgames.Repo, logger *slog.Logger) error {
	existing, err := repo.ListGames(ctx)
	if err != nil {
		return fmt.Errorf("check existing games: %w", err)
	}
	if len(existing) > 0 {
		logging.Info(logger, "skipping seed, catalog not empty", logging.FieldCount, len(existing))
		return nil
	}
	ids, err := store.Seed(ctx, repo, store.SampleGames())
	if err != nil {
		return err
	}
	logging.Info(logger, "seeded game catalog", logging.FieldCount, len(ids))
	return nil
}
