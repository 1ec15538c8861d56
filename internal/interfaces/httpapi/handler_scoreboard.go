package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/psl-scoreboard/internal/usecase"
)

type createBoardRequest struct {
	ID   string `json:"id" validate:"omitempty,max=64"`
	Name string `json:"name" validate:"omitempty,max=100"`
}

type seedTeamsRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,max=100"`
}

type processResultsRequest struct {
	// Lines carries individual result lines; Text carries one pasted blob
	// that is split on line breaks. At least one must be present.
	Lines []string `json:"lines" validate:"omitempty,dive,max=200"`
	Text  string   `json:"text" validate:"omitempty,max=65536"`
}

type boardSummaryDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	CreatedAt    string `json:"created_at"`
	TeamCount    int    `json:"team_count"`
	Leader       string `json:"leader,omitempty"`
	LeaderPoints int    `json:"leader_points"`
}

type batchResultDTO struct {
	Applied int `json:"applied"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

type rankRowDTO struct {
	Rank           int    `json:"rank"`
	Team           string `json:"team"`
	Points         int    `json:"points"`
	MatchesPlayed  int    `json:"matches_played"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
}

type teamRecordDTO struct {
	Name           string `json:"name"`
	Points         int    `json:"points"`
	MatchesPlayed  int    `json:"matches_played"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
}

type exportAllResultDTO struct {
	BoardCount   int `json:"board_count"`
	SuccessCount int `json:"success_count"`
	FailedCount  int `json:"failed_count"`
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBoard")
	defer span.End()

	var req createBoardRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.scoreboardService.CreateBoard(ctx, usecase.CreateBoardInput{ID: req.ID, Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "create board failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, boardSummaryToDTO(summary))
}

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBoards")
	defer span.End()

	summaries, err := h.scoreboardService.ListBoards(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list boards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]boardSummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, boardSummaryToDTO(summary))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBoard")
	defer span.End()

	boardID := r.PathValue("boardID")
	summary, err := h.scoreboardService.GetBoard(ctx, boardID)
	if err != nil {
		h.logger.WarnContext(ctx, "get board failed", "board_id", boardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardSummaryToDTO(summary))
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteBoard")
	defer span.End()

	boardID := r.PathValue("boardID")
	if err := h.scoreboardService.DeleteBoard(ctx, boardID); err != nil {
		h.logger.WarnContext(ctx, "delete board failed", "board_id", boardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"deleted": boardID})
}

func (h *Handler) SeedTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeedTeams")
	defer span.End()

	boardID := r.PathValue("boardID")
	var req seedTeamsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teamCount, err := h.scoreboardService.SeedTeams(ctx, boardID, req.Names)
	if err != nil {
		h.logger.WarnContext(ctx, "seed teams failed", "board_id", boardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"team_count": teamCount})
}

func (h *Handler) ProcessResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProcessResults")
	defer span.End()

	boardID := r.PathValue("boardID")
	var req processResultsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lines := req.Lines
	if len(lines) == 0 && strings.TrimSpace(req.Text) != "" {
		lines = splitLines(req.Text)
	}
	if len(lines) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: lines or text is required", usecase.ErrInvalidInput))
		return
	}

	result, err := h.scoreboardService.ProcessResults(ctx, boardID, lines)
	if err != nil {
		h.logger.WarnContext(ctx, "process results failed", "board_id", boardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, batchResultDTO{
		Applied: result.Applied,
		Failed:  result.Failed,
		Skipped: result.Skipped,
	})
}

func (h *Handler) ResetBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetBoard")
	defer span.End()

	boardID := r.PathValue("boardID")
	if err := h.scoreboardService.Reset(ctx, boardID); err != nil {
		h.logger.WarnContext(ctx, "reset board failed", "board_id", boardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"reset": boardID})
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	boardID := r.PathValue("boardID")
	rows, err := h.scoreboardService.Standings(ctx, boardID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "board_id", boardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rankRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, rankRowDTO{
			Rank:           row.Rank,
			Team:           row.Team.Name,
			Points:         row.Team.Points,
			MatchesPlayed:  row.Team.MatchesPlayed,
			GoalsFor:       row.Team.GoalsFor,
			GoalsAgainst:   row.Team.GoalsAgainst,
			GoalDifference: row.Team.GoalDifference(),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	boardID := r.PathValue("boardID")
	records, err := h.scoreboardService.Teams(ctx, boardID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "board_id", boardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamRecordDTO, 0, len(records))
	for _, record := range records {
		items = append(items, teamRecordDTO{
			Name:           record.Name,
			Points:         record.Points,
			MatchesPlayed:  record.MatchesPlayed,
			GoalsFor:       record.GoalsFor,
			GoalsAgainst:   record.GoalsAgainst,
			GoalDifference: record.GoalDifference(),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// ExportBoard streams the plain-text ranking export as the response body.
func (h *Handler) ExportBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportBoard")
	defer span.End()

	boardID := r.PathValue("boardID")
	rows, err := h.scoreboardService.Standings(ctx, boardID)
	if err != nil {
		h.logger.WarnContext(ctx, "export board failed", "board_id", boardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.exportService.Render(rows)))
}

func (h *Handler) RunExportAllJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunExportAllJob")
	defer span.End()

	result, err := h.exportService.ExportAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "export-all job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, exportAllResultDTO{
		BoardCount:   result.BoardCount,
		SuccessCount: result.SuccessCount,
		FailedCount:  result.FailedCount,
	})
}

func boardSummaryToDTO(summary usecase.BoardSummary) boardSummaryDTO {
	return boardSummaryDTO{
		ID:           summary.ID,
		Name:         summary.Name,
		CreatedAt:    summary.CreatedAt.Format(time.RFC3339),
		TeamCount:    summary.TeamCount,
		Leader:       summary.Leader,
		LeaderPoints: summary.LeaderPoints,
	}
}

func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
