package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	domaingames "github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// StubRepo is a test double for games.Repo. GetGame looks up Games by id;
// the other operations return the configured values while recording inputs.
type StubRepo struct {
	Games     []domaingames.Game
	ListErr   error
	GetErr    error
	CreateID  int64
	CreateErr error
	UpdateErr error

	ListCalls   atomic.Int32
	GetCalls    atomic.Int32
	CreateCalls atomic.Int32
	UpdateCalls atomic.Int32

	mu           sync.Mutex
	lastCreated  domaingames.Game
	lastUpdateID int64
	lastUpdated  domaingames.Game
}

// ListGames returns the configured games and error.
func (s *StubRepo) ListGames(ctx context.Context) ([]domaingames.Game, error) {
	_ = ctx
	s.ListCalls.Add(1)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Games, nil
}

// GetGame returns the configured game with the matching id, if any.
func (s *StubRepo) GetGame(ctx context.Context, id int64) (domaingames.Game, bool, error) {
	_ = ctx
	s.GetCalls.Add(1)
	if s.GetErr != nil {
		return domaingames.Game{}, false, s.GetErr
	}
	for _, g := range s.Games {
		if g.ID == id {
			return g, true, nil
		}
	}
	return domaingames.Game{}, false, nil
}

// CreateGame records the game and returns CreateID.
func (s *StubRepo) CreateGame(ctx context.Context, game domaingames.Game) (int64, error) {
	_ = ctx
	s.CreateCalls.Add(1)
	s.mu.Lock()
	s.lastCreated = game
	s.mu.Unlock()
	if s.CreateErr != nil {
		return 0, s.CreateErr
	}
	return s.CreateID, nil
}

// UpdateGame records the call and echoes id unless UpdateErr is set.
func (s *StubRepo) UpdateGame(ctx context.Context, id int64, game domaingames.Game) (int64, error) {
	_ = ctx
	s.UpdateCalls.Add(1)
	s.mu.Lock()
	s.lastUpdateID = id
	s.lastUpdated = game
	s.mu.Unlock()
	if s.UpdateErr != nil {
		return 0, s.UpdateErr
	}
	return id, nil
}

// LastCreated returns the most recent game passed to CreateGame.
func (s *StubRepo) LastCreated() domaingames.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCreated
}

// LastUpdate returns the most recent id and game passed to UpdateGame.
func (s *StubRepo) LastUpdate() (int64, domaingames.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdateID, s.lastUpdated
}

// PingRepo wraps StubRepo with a readiness probe.
type PingRepo struct {
	StubRepo
	PingErr error
}

// Ping returns the configured error.
func (p *PingRepo) Ping(ctx context.Context) error {
	_ = ctx
	return p.PingErr
}
