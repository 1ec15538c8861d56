package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerScoreboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/scoreboards", handler.CreateBoard)
	mux.HandleFunc("GET /v1/scoreboards", handler.ListBoards)
	mux.HandleFunc("GET /v1/scoreboards/{boardID}", handler.GetBoard)
	mux.HandleFunc("DELETE /v1/scoreboards/{boardID}", handler.DeleteBoard)
	mux.HandleFunc("POST /v1/scoreboards/{boardID}/teams", handler.SeedTeams)
	mux.HandleFunc("GET /v1/scoreboards/{boardID}/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/scoreboards/{boardID}/results", handler.ProcessResults)
	mux.HandleFunc("POST /v1/scoreboards/{boardID}/reset", handler.ResetBoard)
	mux.HandleFunc("GET /v1/scoreboards/{boardID}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/scoreboards/{boardID}/export", handler.ExportBoard)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/export-all", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunExportAllJob)))
}
