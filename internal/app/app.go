package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/psl-scoreboard/internal/config"
	"github.com/riskibarqy/psl-scoreboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/psl-scoreboard/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/psl-scoreboard/internal/platform/id"
	"github.com/riskibarqy/psl-scoreboard/internal/platform/logging"
	"github.com/riskibarqy/psl-scoreboard/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	boardRepo := memory.NewScoreboardRepository()

	scoreboardSvc := usecase.NewScoreboardService(boardRepo, idgen.NewRandomGenerator(), logger)
	exportSvc := usecase.NewExportService(boardRepo, cfg.ExportDir, logger)

	if err := seedDefaultBoard(context.Background(), cfg, scoreboardSvc); err != nil {
		return nil, fmt.Errorf("seed default board: %w", err)
	}

	handler := httpapi.NewHandler(scoreboardSvc, exportSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// seedDefaultBoard creates the configured default board so the API is usable
// without a create call first. The board starts with the configured team
// list, falling back to the stock PSL clubs.
func seedDefaultBoard(ctx context.Context, cfg config.Config, svc *usecase.ScoreboardService) error {
	if cfg.DefaultBoardID == "" {
		return nil
	}

	summary, err := svc.CreateBoard(ctx, usecase.CreateBoardInput{
		ID:   cfg.DefaultBoardID,
		Name: cfg.DefaultBoardName,
	})
	if err != nil {
		return err
	}

	teams := cfg.DefaultTeams
	if len(teams) == 0 {
		teams = memory.SeedTeamNames()
	}
	if _, err := svc.SeedTeams(ctx, summary.ID, teams); err != nil {
		return err
	}

	return nil
}
