package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cetkaik/internal/cetkaik/absolute"
	"cetkaik/internal/cetkaik/perspective"
	"cetkaik/internal/cetkaik/relative"
)

var ErrGameNotFound = errors.New("game not found")

// Manager owns the fields of all running games. Everything it hands out is
// a deep copy, so callers can modify what they get freely.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame stores a game in the standard initial layout with empty hands.
func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Field:     absolute.InitialField(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g.clone()
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g.clone(), nil
}

// View returns the field of game id as seen from p.
func (m *Manager) View(id string, p perspective.Perspective) (relative.Field, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return relative.Field{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return perspective.ToRelativeField(g.Field, p), nil
}

func (m *Manager) Update(id string, f absolute.Field) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	g.Field = f.Clone()
	g.UpdatedAt = time.Now()
	return nil
}

// Commit stores a field produced in the relative frame of p.
func (m *Manager) Commit(id string, f relative.Field, p perspective.Perspective) error {
	return m.Update(id, perspective.ToAbsoluteField(f, p))
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
