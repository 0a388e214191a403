package store

import (
	"context"
	"sync"

	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// MemoryStore keeps a thread-safe catalog of games in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	games  map[int64]domaingames.Game
	order  []int64
	nextID int64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games:  make(map[int64]domaingames.Game),
		nextID: 1,
	}
}

// ListGames returns a copy of the catalog in ascending id order.
func (s *MemoryStore) ListGames(ctx context.Context) ([]domaingames.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.games[id])
	}
	return result, nil
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(ctx context.Context, id int64) (domaingames.Game, bool, error) {
	if err := ctx.Err(); err != nil {
		return domaingames.Game{}, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok, nil
}

// CreateGame stores the game under a freshly assigned id, ignoring any id it carries.
func (s *MemoryStore) CreateGame(ctx context.Context, game domaingames.Game) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.games[id] = game.WithID(id)
	s.order = append(s.order, id)
	return id, nil
}

// UpdateGame replaces the game stored under id.
func (s *MemoryStore) UpdateGame(ctx context.Context, id int64, game domaingames.Game) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	resolved, err := domaingames.CheckIdentity(id, game)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return 0, domaingames.ErrNotFound
	}
	s.games[id] = resolved
	return id, nil
}
