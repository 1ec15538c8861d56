package scoreboard

import "context"

// Repository describes scoreboard persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, board *Board) error
	GetByID(ctx context.Context, boardID string) (*Board, bool, error)
	List(ctx context.Context) ([]*Board, error)
	Delete(ctx context.Context, boardID string) (bool, error)
}
