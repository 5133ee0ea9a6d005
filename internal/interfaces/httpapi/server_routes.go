package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Health)
	mux.HandleFunc("GET /api/health", handler.Health)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerImportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/import/{provider}", handler.ImportLeague)
	mux.HandleFunc("POST /api/import/{provider}/bulk", handler.ImportLeagues)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/leagues", handler.ListLeagues)
	mux.HandleFunc("POST /api/leagues", handler.CreateLeague)
	mux.HandleFunc("GET /api/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("PATCH /api/leagues/{leagueID}", handler.PatchLeague)
	mux.HandleFunc("DELETE /api/leagues/{leagueID}", handler.DeleteLeague)
	mux.HandleFunc("GET /api/leagues/{leagueID}/teams", handler.ListTeamsByLeague)
}

func registerBetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/leagues/{leagueID}/bets", handler.ListBets)
	mux.HandleFunc("POST /api/leagues/{leagueID}/bets", handler.CreateBet)
	mux.HandleFunc("GET /api/leagues/{leagueID}/bets/{betID}", handler.GetBet)
	mux.HandleFunc("PATCH /api/leagues/{leagueID}/bets/{betID}", handler.UpdateBetStatus)
	mux.HandleFunc("DELETE /api/leagues/{leagueID}/bets/{betID}", handler.DeleteBet)
}

func registerSettlementRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/leagues/{leagueID}/payouts/calc", handler.CalculatePayouts)
	mux.HandleFunc("GET /api/leagues/{leagueID}/payouts", handler.ListSettlements)
	mux.HandleFunc("GET /api/leagues/{leagueID}/payouts/{payoutID}", handler.GetSettlement)
	mux.HandleFunc("POST /api/calc-payout", handler.LegacyCalculatePayouts)
}
