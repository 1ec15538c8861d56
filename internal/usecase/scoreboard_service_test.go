package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/psl-scoreboard/internal/domain/scoreboard"
	"github.com/riskibarqy/psl-scoreboard/internal/platform/logging"
)

func TestScoreboardService_CreateBoard_GeneratesIDWhenMissing(t *testing.T) {
	t.Parallel()

	service := NewScoreboardService(newStubBoardRepository(), &stubIDGenerator{id: "abc123"}, logging.NewNop())

	summary, err := service.CreateBoard(context.Background(), CreateBoardInput{Name: "PSL 2025/26"})
	if err != nil {
		t.Fatalf("create board: %v", err)
	}
	if summary.ID != "abc123" {
		t.Fatalf("unexpected board id: %q", summary.ID)
	}
	if summary.Name != "PSL 2025/26" {
		t.Fatalf("unexpected board name: %q", summary.Name)
	}
}

func TestScoreboardService_CreateBoard_RejectsDuplicateID(t *testing.T) {
	t.Parallel()

	repo := newStubBoardRepository()
	service := NewScoreboardService(repo, &stubIDGenerator{id: "unused"}, logging.NewNop())

	if _, err := service.CreateBoard(context.Background(), CreateBoardInput{ID: "psl"}); err != nil {
		t.Fatalf("create board: %v", err)
	}
	if _, err := service.CreateBoard(context.Background(), CreateBoardInput{ID: "psl"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate id, got %v", err)
	}
}

func TestScoreboardService_ProcessResults_CountsAppliedFailedSkipped(t *testing.T) {
	t.Parallel()

	service, boardID := newServiceWithBoard(t)

	result, err := service.ProcessResults(context.Background(), boardID, []string{
		"Pirates 1, Chiefs 2",
		"",
		"   ",
		"not a result line",
		"Sundowns 2, Pirates 2",
	})
	if err != nil {
		t.Fatalf("process results: %v", err)
	}

	if result.Applied != 2 || result.Failed != 1 || result.Skipped != 2 {
		t.Fatalf("unexpected batch result: %+v", result)
	}
}

func TestScoreboardService_ProcessResults_BadLineDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	service, boardID := newServiceWithBoard(t)

	result, err := service.ProcessResults(context.Background(), boardID, []string{
		"garbage",
		"Pirates 3, Chiefs 0",
	})
	if err != nil {
		t.Fatalf("process results: %v", err)
	}
	if result.Applied != 1 || result.Failed != 1 {
		t.Fatalf("unexpected batch result: %+v", result)
	}

	rows, err := service.Standings(context.Background(), boardID)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if rows[0].Team.Name != "Pirates" || rows[0].Team.Points != 3 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}
}

func TestScoreboardService_SeedTeams_IsIdempotent(t *testing.T) {
	t.Parallel()

	service, boardID := newServiceWithBoard(t)

	first, err := service.SeedTeams(context.Background(), boardID, []string{"Pirates", "Chiefs"})
	if err != nil {
		t.Fatalf("seed teams: %v", err)
	}
	second, err := service.SeedTeams(context.Background(), boardID, []string{" pirates ", "CHIEFS"})
	if err != nil {
		t.Fatalf("seed teams again: %v", err)
	}

	if first != 2 || second != 2 {
		t.Fatalf("unexpected team counts: first=%d second=%d", first, second)
	}
}

func TestScoreboardService_Standings_EndToEnd(t *testing.T) {
	t.Parallel()

	service, boardID := newServiceWithBoard(t)

	if _, err := service.SeedTeams(context.Background(), boardID, []string{"Pirates", "Chiefs"}); err != nil {
		t.Fatalf("seed teams: %v", err)
	}
	if _, err := service.ProcessResults(context.Background(), boardID, []string{"Pirates 1, Chiefs 2"}); err != nil {
		t.Fatalf("process results: %v", err)
	}

	rows, err := service.Standings(context.Background(), boardID)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}
	if rows[0].Rank != 1 || rows[0].Team.Name != "Chiefs" || rows[0].Team.Points != 3 {
		t.Fatalf("unexpected leader row: %+v", rows[0])
	}
	if rows[1].Rank != 2 || rows[1].Team.Name != "Pirates" || rows[1].Team.Points != 0 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestScoreboardService_Reset_ClearsBoard(t *testing.T) {
	t.Parallel()

	service, boardID := newServiceWithBoard(t)

	if _, err := service.ProcessResults(context.Background(), boardID, []string{"Pirates 1, Chiefs 2"}); err != nil {
		t.Fatalf("process results: %v", err)
	}
	if err := service.Reset(context.Background(), boardID); err != nil {
		t.Fatalf("reset: %v", err)
	}

	rows, err := service.Standings(context.Background(), boardID)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty standings after reset, got %d rows", len(rows))
	}
}

func TestScoreboardService_Teams_SortedByName(t *testing.T) {
	t.Parallel()

	service, boardID := newServiceWithBoard(t)

	if _, err := service.SeedTeams(context.Background(), boardID, []string{"Zeta", "alpha", "Beta"}); err != nil {
		t.Fatalf("seed teams: %v", err)
	}

	records, err := service.Teams(context.Background(), boardID)
	if err != nil {
		t.Fatalf("teams: %v", err)
	}

	wantOrder := []string{"alpha", "Beta", "Zeta"}
	for i, want := range wantOrder {
		if records[i].Name != want {
			t.Fatalf("row %d: unexpected team got=%q want=%q", i, records[i].Name, want)
		}
	}
}

func TestScoreboardService_ListBoards_Summaries(t *testing.T) {
	t.Parallel()

	repo := newStubBoardRepository()
	service := NewScoreboardService(repo, &stubIDGenerator{id: "ignored"}, logging.NewNop())

	for _, id := range []string{"board-a", "board-b", "board-c"} {
		if _, err := service.CreateBoard(context.Background(), CreateBoardInput{ID: id}); err != nil {
			t.Fatalf("create board %s: %v", id, err)
		}
	}
	if _, err := service.ProcessResults(context.Background(), "board-b", []string{"Pirates 2, Chiefs 0"}); err != nil {
		t.Fatalf("process results: %v", err)
	}

	summaries, err := service.ListBoards(context.Background())
	if err != nil {
		t.Fatalf("list boards: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("unexpected summary count: %d", len(summaries))
	}

	byID := make(map[string]BoardSummary, len(summaries))
	for _, summary := range summaries {
		byID[summary.ID] = summary
	}
	if byID["board-b"].TeamCount != 2 || byID["board-b"].Leader != "Pirates" || byID["board-b"].LeaderPoints != 3 {
		t.Fatalf("unexpected board-b summary: %+v", byID["board-b"])
	}
	if byID["board-a"].TeamCount != 0 || byID["board-a"].Leader != "" {
		t.Fatalf("unexpected board-a summary: %+v", byID["board-a"])
	}
}

func TestScoreboardService_UnknownBoard(t *testing.T) {
	t.Parallel()

	service := NewScoreboardService(newStubBoardRepository(), &stubIDGenerator{id: "x"}, logging.NewNop())

	if _, err := service.Standings(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := service.DeleteBoard(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func newServiceWithBoard(t *testing.T) (*ScoreboardService, string) {
	t.Helper()

	const boardID = "psl"
	service := NewScoreboardService(newStubBoardRepository(), &stubIDGenerator{id: "unused"}, logging.NewNop())
	if _, err := service.CreateBoard(context.Background(), CreateBoardInput{ID: boardID, Name: "PSL"}); err != nil {
		t.Fatalf("create board: %v", err)
	}

	return service, boardID
}

type stubBoardRepository struct {
	items map[string]*scoreboard.Board
	order []string
}

func newStubBoardRepository() *stubBoardRepository {
	return &stubBoardRepository{items: make(map[string]*scoreboard.Board)}
}

func (s *stubBoardRepository) Create(_ context.Context, board *scoreboard.Board) error {
	if _, exists := s.items[board.ID]; exists {
		return fmt.Errorf("board %s already exists", board.ID)
	}
	s.items[board.ID] = board
	s.order = append(s.order, board.ID)
	return nil
}

func (s *stubBoardRepository) GetByID(_ context.Context, boardID string) (*scoreboard.Board, bool, error) {
	board, ok := s.items[boardID]
	return board, ok, nil
}

func (s *stubBoardRepository) List(_ context.Context) ([]*scoreboard.Board, error) {
	out := make([]*scoreboard.Board, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *stubBoardRepository) Delete(_ context.Context, boardID string) (bool, error) {
	if _, ok := s.items[boardID]; !ok {
		return false, nil
	}
	delete(s.items, boardID)
	for idx, id := range s.order {
		if id == boardID {
			s.order = append(s.order[:idx], s.order[idx+1:]...)
			break
		}
	}
	return true, nil
}

type stubIDGenerator struct {
	id string
}

func (g *stubIDGenerator) NewID() (string, error) {
	return g.id, nil
}

var _ scoreboard.Repository = (*stubBoardRepository)(nil)
