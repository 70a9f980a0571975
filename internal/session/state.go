package session

import (
	"sync"
	"time"

	"janggi/internal/janggi"
)

// Session 是一盘登记在 Manager 里的棋。Game 本身不是并发安全的，
// 所有访问都要经过 mu。
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	game      *janggi.Game
	updatedAt time.Time
	moves     int
}

// Snapshot 是某一时刻对外可见的状态。
type Snapshot struct {
	ID          string
	Position    string
	State       janggi.GameState
	ActiveColor janggi.Color
	CheckStatus janggi.Color
	Moves       int
	UpdatedAt   time.Time
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:          s.ID,
		Position:    s.game.Encode(),
		State:       s.game.State(),
		ActiveColor: s.game.ActiveColor(),
		CheckStatus: s.game.CheckStatus(),
		Moves:       s.moves,
		UpdatedAt:   s.updatedAt,
	}
}

// With 在持锁状态下调用 fn，用于只读查询（合法走法、吃子列表等）。
func (s *Session) With(fn func(g *janggi.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}
