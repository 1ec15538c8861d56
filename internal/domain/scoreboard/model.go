package scoreboard

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/psl-scoreboard/internal/domain/league"
)

// Board is one scoreboard session: a league aggregate plus its identity.
// The league itself performs no locking, so every access goes through
// WithLeague, which serializes callers per board.
type Board struct {
	ID        string
	Name      string
	CreatedAt time.Time

	mu     sync.Mutex
	league *league.League
}

func NewBoard(id, name string, createdAt time.Time) (*Board, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("board id is required")
	}

	return &Board{
		ID:        id,
		Name:      strings.TrimSpace(name),
		CreatedAt: createdAt,
		league:    league.New(),
	}, nil
}

// WithLeague runs fn with exclusive access to the board's league.
func (b *Board) WithLeague(fn func(*league.League)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.league)
}
