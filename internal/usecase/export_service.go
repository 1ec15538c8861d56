package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/psl-scoreboard/internal/domain/league"
	"github.com/riskibarqy/psl-scoreboard/internal/domain/scoreboard"
	"github.com/riskibarqy/psl-scoreboard/internal/platform/logging"
)

// exportWorkers bounds the pool used by ExportAll; each job renders and
// writes one board's file independently.
const exportWorkers = 4

type ExportService struct {
	boards    scoreboard.Repository
	exportDir string
	logger    *logging.Logger
}

func NewExportService(boards scoreboard.Repository, exportDir string, logger *logging.Logger) *ExportService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ExportService{
		boards:    boards,
		exportDir: exportDir,
		logger:    logger,
	}
}

type ExportAllResult struct {
	BoardCount   int
	SuccessCount int
	FailedCount  int
}

// Render produces the plain-text export for the given ranking, one line per
// team: "<rank>. <name> — <points> pts (GF:<gf> GA:<ga> GD:<gd>)". The
// labels and field order are a compatibility contract and must not change.
func (s *ExportService) Render(rows []league.RankRow) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, row := range rows {
		fmt.Fprintf(buf, "%d. %s\n", row.Rank, row.Team.Summary())
	}

	return buf.String()
}

// ExportBoard writes the board's current ranking to w.
func (s *ExportService) ExportBoard(ctx context.Context, boardID string, w io.Writer) error {
	rows, err := s.standings(ctx, boardID)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, s.Render(rows)); err != nil {
		return crerr.Wrapf(err, "write export for board %s", boardID)
	}

	return nil
}

// WriteBoardFile writes the board's export under the configured export
// directory and returns the file path.
func (s *ExportService) WriteBoardFile(ctx context.Context, boardID string) (string, error) {
	rows, err := s.standings(ctx, boardID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", crerr.Wrapf(err, "create export dir %s", s.exportDir)
	}

	path := filepath.Join(s.exportDir, exportFileName(boardID))
	if err := os.WriteFile(path, []byte(s.Render(rows)), 0o644); err != nil {
		return "", crerr.Wrapf(err, "write export file %s", path)
	}

	s.logger.InfoContext(ctx, "ranking exported", "board_id", boardID, "path", path)

	return path, nil
}

// ExportAll writes an export file for every board through a bounded worker
// pool. A board that fails to export does not stop the rest.
func (s *ExportService) ExportAll(ctx context.Context) (ExportAllResult, error) {
	boards, err := s.boards.List(ctx)
	if err != nil {
		return ExportAllResult{}, fmt.Errorf("list boards: %w", err)
	}

	workerCount := exportWorkers
	if len(boards) < workerCount {
		workerCount = len(boards)
	}
	if workerCount == 0 {
		return ExportAllResult{}, nil
	}

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return ExportAllResult{}, fmt.Errorf("create export worker pool: %w", err)
	}
	defer workerPool.Release()

	var wg sync.WaitGroup
	var successCount, failedCount atomic.Int64

	for _, board := range boards {
		wg.Add(1)
		boardID := board.ID
		submitErr := workerPool.Submit(func() {
			defer wg.Done()

			if _, err := s.WriteBoardFile(ctx, boardID); err != nil {
				s.logger.WarnContext(ctx, "board export failed", "board_id", boardID, "error", err)
				failedCount.Add(1)
				return
			}
			successCount.Add(1)
		})
		if submitErr != nil {
			wg.Done()
			failedCount.Add(1)
		}
	}
	wg.Wait()

	return ExportAllResult{
		BoardCount:   len(boards),
		SuccessCount: int(successCount.Load()),
		FailedCount:  int(failedCount.Load()),
	}, nil
}

func (s *ExportService) standings(ctx context.Context, boardID string) ([]league.RankRow, error) {
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

	var rows []league.RankRow
	board.WithLeague(func(l *league.League) {
		rows = l.Ranking()
	})

	return rows, nil
}

// exportFileName keeps file names shell-safe regardless of board id content.
func exportFileName(boardID string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(boardID) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	return b.String() + ".txt"
}
