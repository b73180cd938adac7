// Package session keeps many independent games alive at once, each with its
// own undo history.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"chess-x88/x88"
)

var (
	ErrGameNotFound = errors.New("session: game not found")
	ErrInvalidID    = errors.New("session: invalid game id")
)

type entry struct {
	mu   sync.Mutex
	game *x88.Game
}

// Manager is safe for concurrent use. Calls on different games proceed in
// parallel; calls on the same game are serialised.
type Manager struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*entry
}

func NewManager() *Manager {
	return &Manager{games: make(map[uuid.UUID]*entry)}
}

// ParseID parses the textual form of a game id.
func ParseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidID, s, err)
	}
	return id, nil
}

// Create starts a game from fen, or from the initial position when fen is
// empty, and returns its id.
func (m *Manager) Create(fen string) (uuid.UUID, error) {
	if fen == "" {
		fen = x88.StartFEN
	}
	g, err := x88.NewGameFromFEN(fen)
	if err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[id] = &entry{game: g}
	return id, nil
}

func (m *Manager) get(id uuid.UUID) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return e, nil
}

// with runs fn while holding the game's lock.
func (m *Manager) with(id uuid.UUID, fn func(g *x88.Game) error) error {
	e, err := m.get(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.game)
}

// Apply plays a UCI move in game id.
func (m *Manager) Apply(id uuid.UUID, uci string) error {
	return m.with(id, func(g *x88.Game) error {
		return g.ApplyUCI(uci)
	})
}

// Undo takes back the last move of game id.
func (m *Manager) Undo(id uuid.UUID) (x88.Move, error) {
	var mv x88.Move
	err := m.with(id, func(g *x88.Game) error {
		var err error
		mv, err = g.Undo()
		return err
	})
	return mv, err
}

// FEN returns the current position of game id.
func (m *Manager) FEN(id uuid.UUID) (string, error) {
	var fen string
	err := m.with(id, func(g *x88.Game) error {
		b := g.Board()
		fen = b.FEN()
		return nil
	})
	return fen, err
}

// History returns the moves played in game id, oldest first.
func (m *Manager) History(id uuid.UUID) ([]x88.Move, error) {
	var moves []x88.Move
	err := m.with(id, func(g *x88.Game) error {
		moves = g.History()
		return nil
	})
	return moves, err
}

// Attack looks up the attack category between two named squares and reports
// whether the piece currently on from could make that attack.
func (m *Manager) Attack(id uuid.UUID, from, to string) (x88.Category, bool, error) {
	f, err := x88.ParseSquare(from)
	if err != nil {
		return x88.AttackNone, false, err
	}
	t, err := x88.ParseSquare(to)
	if err != nil {
		return x88.AttackNone, false, err
	}
	c, err := x88.Attack(f, t)
	if err != nil {
		return x88.AttackNone, false, err
	}
	var admits bool
	err = m.with(id, func(g *x88.Game) error {
		b := g.Board()
		admits = c.Admits(b.PieceAt(f))
		return nil
	})
	return c, admits, err
}

// Delete drops game id. Deleting an unknown id is an error.
func (m *Manager) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

// Len is the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
