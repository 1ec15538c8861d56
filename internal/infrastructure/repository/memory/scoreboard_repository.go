package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/psl-scoreboard/internal/domain/scoreboard"
)

type ScoreboardRepository struct {
	mu     sync.RWMutex
	items  map[string]*scoreboard.Board
	orders []string
}

func NewScoreboardRepository() *ScoreboardRepository {
	return &ScoreboardRepository{items: make(map[string]*scoreboard.Board)}
}

func (r *ScoreboardRepository) Create(_ context.Context, board *scoreboard.Board) error {
	if board == nil {
		return fmt.Errorf("board is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[board.ID]; exists {
		return fmt.Errorf("board %s already exists", board.ID)
	}
	r.items[board.ID] = board
	r.orders = append(r.orders, board.ID)

	return nil
}

func (r *ScoreboardRepository) GetByID(_ context.Context, boardID string) (*scoreboard.Board, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	board, ok := r.items[boardID]
	if !ok {
		return nil, false, nil
	}

	return board, true, nil
}

func (r *ScoreboardRepository) List(_ context.Context) ([]*scoreboard.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*scoreboard.Board, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *ScoreboardRepository) Delete(_ context.Context, boardID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[boardID]; !ok {
		return false, nil
	}
	delete(r.items, boardID)
	for idx, id := range r.orders {
		if id == boardID {
			r.orders = append(r.orders[:idx], r.orders[idx+1:]...)
			break
		}
	}

	return true, nil
}
