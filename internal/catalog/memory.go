package catalog

import (
	"context"
	"sync"

	"gamecatalog/backend/internal/models"
)

// MemoryStore keeps the catalog as an ordered slice guarded by a RWMutex.
type MemoryStore struct {
	mu    sync.RWMutex
	games []models.Game
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs a store holding games in the given order.
func NewMemoryStore(games ...models.Game) *MemoryStore {
	s := &MemoryStore{games: make([]models.Game, len(games))}
	copy(s.games, games)
	return s
}

// List returns a copy of the catalog in sequence order.
func (s *MemoryStore) List(_ context.Context) ([]models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Game, len(s.games))
	copy(result, s.games)
	return result, nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Game{}, ErrNotFound
	}
	return s.games[i], nil
}

// Create appends the game, even when its id is already present.
func (s *MemoryStore) Create(_ context.Context, game models.Game) (models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = append(s.games, game)
	return game, nil
}

// Update replaces the first game with the given id in place. The new
// game's id may differ from the lookup id.
func (s *MemoryStore) Update(_ context.Context, id int, game models.Game) (models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Game{}, ErrNotFound
	}
	s.games[i] = game
	return game, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.games = append(s.games[:i], s.games[i+1:]...)
	return nil
}

// indexOf must be called with mu held.
func (s *MemoryStore) indexOf(id int) int {
	for i, g := range s.games {
		if g.ID == id {
			return i
		}
	}
	return -1
}
