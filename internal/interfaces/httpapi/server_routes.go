package httpapi

import "net/http"

const teamChartPath = "/v1/sports/{sport}/teams/{team}/chart"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerSportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("POST /v1/sports", handler.CreateSport)
	mux.HandleFunc("GET /v1/sports/{sport}", handler.GetSport)
	mux.HandleFunc("GET /v1/sports/{sport}/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/sports/{sport}/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/sports/{sport}/charts", handler.RenderSport)
}

func registerDepthChartRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+teamChartPath, handler.GetChart)
	mux.HandleFunc("GET "+teamChartPath+"/{position}", handler.GetDepth)
	mux.HandleFunc("POST "+teamChartPath+"/{position}/players", handler.AddPlayer)
	mux.HandleFunc("DELETE "+teamChartPath+"/{position}/players/{number}", handler.RemovePlayer)
	mux.HandleFunc("GET "+teamChartPath+"/{position}/players/{number}/backups", handler.GetBackups)
}
