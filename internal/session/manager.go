package session

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"janggi/internal/janggi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session

	// Logger 为 nil 时不打日志。
	Logger *log.Logger
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Session)}
}

func (m *Manager) logf(format string, args ...any) {
	if m.Logger != nil {
		m.Logger.Printf(format, args...)
	}
}

func (m *Manager) NewGame() *Session {
	return m.register(janggi.NewGame())
}

// NewGameFromText 用局面文本开一盘。
func (m *Manager) NewGameFromText(text string) (*Session, error) {
	g, err := janggi.NewGameFromText(text)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return m.register(g), nil
}

func (m *Manager) register(g *janggi.Game) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		game:      g,
		updatedAt: now,
	}
	m.mu.Lock()
	m.games[s.ID] = s
	m.mu.Unlock()
	m.logf("game %s created: %s", s.ID, g.Encode())
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return s, nil
}

// Move 按文本坐标走一步。走法被拒绝时返回 false 和 nil error；
// error 只表示对局不存在。
func (m *Manager) Move(id, from, to string) (bool, error) {
	s, err := m.Get(id)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.game.MakeMoveText(from, to) {
		return false, nil
	}
	s.moves++
	s.updatedAt = time.Now()
	if st := s.game.State(); st != janggi.Unfinished {
		m.logf("game %s finished: %s after %d moves", id, st, s.moves)
	}
	return true, nil
}

// Pass 让当前一方停一手。被将军时不能停。
func (m *Manager) Pass(id string) (bool, error) {
	s, err := m.Get(id)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.game.Pass() {
		return false, nil
	}
	s.moves++
	s.updatedAt = time.Now()
	return true, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	m.logf("game %s deleted", id)
	return nil
}

// List 返回所有对局的快照，按创建时间排序。
func (m *Manager) List() []Snapshot {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.games))
	for _, s := range m.games {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	out := make([]Snapshot, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.Snapshot())
	}
	return out
}
