// Package sqlite provides a SQLite-backed game repository.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/store/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists the game catalog in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite game store and applies embedded migrations.
// The special path ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writes.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}

// ListGames returns every game in ascending id order.
func (s *Store) ListGames(ctx context.Context) ([]domaingames.Game, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, title FROM games ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := make([]domaingames.Game, 0)
	for rows.Next() {
		var g domaingames.Game
		if err := rows.Scan(&g.ID, &g.Title); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return games, nil
}

// GetGame returns one game by id.
func (s *Store) GetGame(ctx context.Context, id int64) (domaingames.Game, bool, error) {
	var g domaingames.Game
	err := s.sqlDB.QueryRowContext(ctx, `SELECT id, title FROM games WHERE id = ?`, id).Scan(&g.ID, &g.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domaingames.Game{}, false, nil
		}
		return domaingames.Game{}, false, fmt.Errorf("get game %d: %w", id, err)
	}
	return g, true, nil
}

// CreateGame inserts the game and returns the id SQLite assigned. Any id the
// game carries is ignored.
func (s *Store) CreateGame(ctx context.Context, game domaingames.Game) (int64, error) {
	now := s.now().UTC().UnixMilli()
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO games (title, created_at, updated_at) VALUES (?, ?, ?)`,
		game.Title, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("create game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create game: last insert id: %w", err)
	}
	return id, nil
}

// UpdateGame replaces the title of the game stored under id.
func (s *Store) UpdateGame(ctx context.Context, id int64, game domaingames.Game) (int64, error) {
	resolved, err := domaingames.CheckIdentity(id, game)
	if err != nil {
		return 0, err
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`UPDATE games SET title = ?, updated_at = ? WHERE id = ?`,
		resolved.Title, s.now().UTC().UnixMilli(), id,
	)
	if err != nil {
		return 0, fmt.Errorf("update game %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update game %d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return 0, domaingames.ErrNotFound
	}
	return id, nil
}
