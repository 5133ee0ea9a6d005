package httpapi

import (
	"net/http"
)

func (h *Handler) CalculatePayouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CalculatePayouts")
	defer span.End()

	leagueID := pathValue(r, "leagueID")

	var req calcPayoutRequest
	if err := h.decodeAndValidate(r.WithContext(ctx), &req); err != nil {
		h.fail(ctx, w, "calculate payouts rejected", err, "league_id", leagueID)
		return
	}

	h.settle(w, r.WithContext(ctx), leagueID, req.Week)
}

// LegacyCalculatePayouts serves POST /api/calc-payout with the league id in
// the body.
func (h *Handler) LegacyCalculatePayouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LegacyCalculatePayouts")
	defer span.End()

	var req legacyCalcPayoutRequest
	if err := h.decodeAndValidate(r.WithContext(ctx), &req); err != nil {
		h.fail(ctx, w, "calculate payouts rejected", err)
		return
	}

	h.settle(w, r.WithContext(ctx), req.LeagueID, req.Week)
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request, leagueID string, week int) {
	ctx := r.Context()

	result, err := h.settlementService.SettlePeriod(ctx, leagueID, week)
	if err != nil {
		h.fail(ctx, w, "calculate payouts failed", err, "league_id", leagueID, "week", week)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settlementResultToDTO(result))
}

func (h *Handler) ListSettlements(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSettlements")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	week, err := weekQuery(r)
	if err != nil {
		h.fail(ctx, w, "list settlements rejected", err, "league_id", leagueID)
		return
	}

	items, err := h.settlementService.ListSettlements(ctx, leagueID, week)
	if err != nil {
		h.fail(ctx, w, "list settlements failed", err, "league_id", leagueID, "week", week)
		return
	}

	out := make([]settlementDTO, 0, len(items))
	for _, item := range items {
		out = append(out, settlementToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSettlement")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	settlementID := pathValue(r, "payoutID")

	item, err := h.settlementService.GetSettlement(ctx, leagueID, settlementID)
	if err != nil {
		h.fail(ctx, w, "get settlement failed", err, "league_id", leagueID, "settlement_id", settlementID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settlementToDTO(item))
}
