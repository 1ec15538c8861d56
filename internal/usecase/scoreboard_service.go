package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/psl-scoreboard/internal/domain/league"
	"github.com/riskibarqy/psl-scoreboard/internal/domain/match"
	"github.com/riskibarqy/psl-scoreboard/internal/domain/scoreboard"
	"github.com/riskibarqy/psl-scoreboard/internal/domain/team"
	idgen "github.com/riskibarqy/psl-scoreboard/internal/platform/id"
	"github.com/riskibarqy/psl-scoreboard/internal/platform/logging"
)

// summaryWorkers bounds the goroutines used to summarize boards in ListBoards.
const summaryWorkers = 4

type ScoreboardService struct {
	boards scoreboard.Repository
	ids    idgen.Generator
	logger *logging.Logger
}

func NewScoreboardService(boards scoreboard.Repository, ids idgen.Generator, logger *logging.Logger) *ScoreboardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ScoreboardService{
		boards: boards,
		ids:    ids,
		logger: logger,
	}
}

type CreateBoardInput struct {
	// ID is optional; a random one is generated when empty.
	ID   string
	Name string
}

// BoardSummary is a read-only view of one scoreboard for listings.
type BoardSummary struct {
	ID           string
	Name         string
	CreatedAt    time.Time
	TeamCount    int
	Leader       string
	LeaderPoints int
}

// BatchResult reports how a batch of raw result lines was handled. Blank
// lines are skipped and counted separately from failures.
type BatchResult struct {
	Applied int
	Failed  int
	Skipped int
}

func (s *ScoreboardService) CreateBoard(ctx context.Context, input CreateBoardInput) (BoardSummary, error) {
	boardID := strings.TrimSpace(input.ID)
	if boardID == "" {
		generated, err := s.ids.NewID()
		if err != nil {
			return BoardSummary{}, fmt.Errorf("generate board id: %w", err)
		}
		boardID = generated
	}

	board, err := scoreboard.NewBoard(boardID, input.Name, time.Now().UTC())
	if err != nil {
		return BoardSummary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.boards.Create(ctx, board); err != nil {
		return BoardSummary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.InfoContext(ctx, "scoreboard created", "board_id", board.ID, "name", board.Name)

	return summarize(board), nil
}

func (s *ScoreboardService) ListBoards(ctx context.Context) ([]BoardSummary, error) {
	boards, err := s.boards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	// Summaries are read-only; each board still serializes access to its
	// league internally, so they can be computed concurrently.
	summaries := make([]BoardSummary, len(boards))
	p := pool.New().WithMaxGoroutines(summaryWorkers)
	for i, board := range boards {
		p.Go(func() {
			summaries[i] = summarize(board)
		})
	}
	p.Wait()

	return summaries, nil
}

func (s *ScoreboardService) GetBoard(ctx context.Context, boardID string) (BoardSummary, error) {
	board, err := s.getBoard(ctx, boardID)
	if err != nil {
		return BoardSummary{}, err
	}

	return summarize(board), nil
}

func (s *ScoreboardService) DeleteBoard(ctx context.Context, boardID string) error {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return fmt.Errorf("%w: board id is required", ErrInvalidInput)
	}

	deleted, err := s.boards.Delete(ctx, boardID)
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: board=%s", ErrNotFound, boardID)
	}

	s.logger.InfoContext(ctx, "scoreboard deleted", "board_id", boardID)

	return nil
}

// SeedTeams ensures a record exists for every given name and returns the
// board's team count afterwards. Seeding is idempotent.
func (s *ScoreboardService) SeedTeams(ctx context.Context, boardID string, names []string) (int, error) {
	board, err := s.getBoard(ctx, boardID)
	if err != nil {
		return 0, err
	}

	teamCount := 0
	board.WithLeague(func(l *league.League) {
		l.SeedTeams(names)
		teamCount = l.Size()
	})

	return teamCount, nil
}

// ProcessResults feeds raw lines through the parser one at a time. A
// malformed line is counted failed and never aborts the batch; blank lines
// are skipped silently. All applied lines mutate the league atomically with
// respect to other callers of the same board.
func (s *ScoreboardService) ProcessResults(ctx context.Context, boardID string, lines []string) (BatchResult, error) {
	board, err := s.getBoard(ctx, boardID)
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	board.WithLeague(func(l *league.League) {
		for _, line := range lines {
			if match.IsBlank(line) {
				result.Skipped++
				continue
			}
			if l.ProcessLine(line) {
				result.Applied++
			} else {
				result.Failed++
			}
		}
	})

	s.logger.InfoContext(ctx, "results processed",
		"board_id", board.ID,
		"applied", result.Applied,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)

	return result, nil
}

func (s *ScoreboardService) Standings(ctx context.Context, boardID string) ([]league.RankRow, error) {
	board, err := s.getBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	var rows []league.RankRow
	board.WithLeague(func(l *league.League) {
		rows = l.Ranking()
	})

	return rows, nil
}

// Teams returns a snapshot of the board's records sorted by display name
// for stable output.
func (s *ScoreboardService) Teams(ctx context.Context, boardID string) ([]team.Record, error) {
	board, err := s.getBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	var records []team.Record
	board.WithLeague(func(l *league.League) {
		records = l.Teams()
	})

	sort.Slice(records, func(i, j int) bool {
		return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
	})

	return records, nil
}

func (s *ScoreboardService) Reset(ctx context.Context, boardID string) error {
	board, err := s.getBoard(ctx, boardID)
	if err != nil {
		return err
	}

	board.WithLeague(func(l *league.League) {
		l.Clear()
	})

	s.logger.InfoContext(ctx, "scoreboard reset", "board_id", board.ID)

	return nil
}

func (s *ScoreboardService) getBoard(ctx context.Context, boardID string) (*scoreboard.Board, error) {
	boardID = strings.TrimSpace(boardID)
	if boardID == "" {
		return nil, fmt.Errorf("%w: board id is required", ErrInvalidInput)
	}

	board, exists, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: board=%s", ErrNotFound, boardID)
	}

	return board, nil
}

func summarize(board *scoreboard.Board) BoardSummary {
	summary := BoardSummary{
		ID:        board.ID,
		Name:      board.Name,
		CreatedAt: board.CreatedAt,
	}

	board.WithLeague(func(l *league.League) {
		summary.TeamCount = l.Size()
		if rows := l.Ranking(); len(rows) > 0 {
			summary.Leader = rows[0].Team.Name
			summary.LeaderPoints = rows[0].Team.Points
		}
	})

	return summary
}
