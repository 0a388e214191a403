package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestOpenInMemory(t *testing.T) {
	t.Parallel()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	defer store.Close()

	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if _, err := store.CreateGame(context.Background(), domaingames.Game{Title: "x"}); err != nil {
		t.Fatalf("create in memory: %v", err)
	}
}

func TestCreateGetGameRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	id, err := store.CreateGame(ctx, domaingames.Game{ID: 99, Title: "some game"})
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	if id != 1 {
		t.Fatalf("id = %d, want 1", id)
	}

	got, ok, err := store.GetGame(ctx, id)
	if err != nil || !ok {
		t.Fatalf("get game: ok=%v err=%v", ok, err)
	}
	if got != (domaingames.Game{ID: 1, Title: "some game"}) {
		t.Fatalf("game = %+v", got)
	}
}

func TestGetGameMissing(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, ok, err := store.GetGame(context.Background(), 99); ok || err != nil {
		t.Fatalf("expected absent game, ok=%v err=%v", ok, err)
	}
}

func TestListGamesOrderedByID(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	empty, err := store.ListGames(ctx)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v err=%v", empty, err)
	}

	for _, title := range []string{"some game", "another game"} {
		if _, err := store.CreateGame(ctx, domaingames.Game{Title: title}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}
	games, err := store.ListGames(ctx)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 2 || games[0].ID != 1 || games[1].Title != "another game" {
		t.Fatalf("games = %+v", games)
	}
}

func TestUpdateGame(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	id, _ := store.CreateGame(ctx, domaingames.Game{Title: "old"})

	updated, err := store.UpdateGame(ctx, id, domaingames.Game{ID: id, Title: "new"})
	if err != nil || updated != id {
		t.Fatalf("update: id=%d err=%v", updated, err)
	}
	got, _, _ := store.GetGame(ctx, id)
	if got.Title != "new" {
		t.Fatalf("title = %q, want new", got.Title)
	}
}

func TestUpdateGameIdentityMismatch(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	id, _ := store.CreateGame(ctx, domaingames.Game{Title: "some game"})

	_, err := store.UpdateGame(ctx, id, domaingames.Game{ID: 10, Title: "changed"})
	if !errors.Is(err, domaingames.ErrIdentityMismatch) {
		t.Fatalf("expected identity mismatch, got %v", err)
	}
	got, _, _ := store.GetGame(ctx, id)
	if got.Title != "some game" {
		t.Fatalf("expected row untouched, got %+v", got)
	}
}

func TestUpdateGameMissing(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.UpdateGame(context.Background(), 7, domaingames.Game{Title: "ghost"})
	if !errors.Is(err, domaingames.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestReopenKeepsDataAndSkipsAppliedMigrations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "games.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := first.CreateGame(context.Background(), domaingames.Game{Title: "persisted"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	got, ok, err := second.GetGame(context.Background(), 1)
	if err != nil || !ok || got.Title != "persisted" {
		t.Fatalf("expected persisted game, got %+v ok=%v err=%v", got, ok, err)
	}
}

func TestExtractUpMigration(t *testing.T) {
	t.Parallel()

	content := "-- +migrate Up\nCREATE TABLE a (id INTEGER);\n-- +migrate Down\nDROP TABLE a;\n"
	up := extractUpMigration(content)
	if up != "\nCREATE TABLE a (id INTEGER);\n" {
		t.Fatalf("up = %q", up)
	}
	if got := extractUpMigration("SELECT 1;"); got != "SELECT 1;" {
		t.Fatalf("expected passthrough without markers, got %q", got)
	}
}
