package httpapi

import (
	"net/http"

	"github.com/riskibarqy/bet-hub/internal/usecase"
)

func (h *Handler) ListBets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBets")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	week, err := weekQuery(r)
	if err != nil {
		h.fail(ctx, w, "list bets rejected", err, "league_id", leagueID)
		return
	}

	items, err := h.betService.ListBets(ctx, leagueID, week)
	if err != nil {
		h.fail(ctx, w, "list bets failed", err, "league_id", leagueID, "week", week)
		return
	}

	out := make([]betDTO, 0, len(items))
	for _, item := range items {
		out = append(out, betToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateBet")
	defer span.End()

	leagueID := pathValue(r, "leagueID")

	var req createBetRequest
	if err := h.decodeAndValidate(r.WithContext(ctx), &req); err != nil {
		h.fail(ctx, w, "create bet rejected", err, "league_id", leagueID)
		return
	}

	item, err := h.betService.CreateBet(ctx, usecase.CreateBetInput{
		LeagueID:     leagueID,
		Week:         req.Week,
		Status:       req.Status,
		Description:  req.Description,
		Participants: toParticipants(req.Participants),
	})
	if err != nil {
		h.fail(ctx, w, "create bet failed", err, "league_id", leagueID, "week", req.Week)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, betToDTO(item))
}

func (h *Handler) GetBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBet")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	betID := pathValue(r, "betID")

	item, err := h.betService.GetBet(ctx, leagueID, betID)
	if err != nil {
		h.fail(ctx, w, "get bet failed", err, "league_id", leagueID, "bet_id", betID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, betToDTO(item))
}

func (h *Handler) UpdateBetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateBetStatus")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	betID := pathValue(r, "betID")

	var req updateBetStatusRequest
	if err := h.decodeAndValidate(r.WithContext(ctx), &req); err != nil {
		h.fail(ctx, w, "update bet rejected", err, "league_id", leagueID, "bet_id", betID)
		return
	}

	item, err := h.betService.UpdateBetStatus(ctx, leagueID, betID, req.Status)
	if err != nil {
		h.fail(ctx, w, "update bet failed", err, "league_id", leagueID, "bet_id", betID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, betToDTO(item))
}

func (h *Handler) DeleteBet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteBet")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	betID := pathValue(r, "betID")

	if err := h.betService.DeleteBet(ctx, leagueID, betID); err != nil {
		h.fail(ctx, w, "delete bet failed", err, "league_id", leagueID, "bet_id", betID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
