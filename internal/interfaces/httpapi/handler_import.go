package httpapi

import (
	"net/http"

	"github.com/riskibarqy/bet-hub/internal/usecase"
)

func (h *Handler) ImportLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportLeague")
	defer span.End()

	providerName := pathValue(r, "provider")

	var req importLeagueRequest
	if err := h.decodeAndValidate(r.WithContext(ctx), &req); err != nil {
		h.fail(ctx, w, "import league rejected", err, "provider", providerName)
		return
	}

	result, err := h.importService.ImportLeague(ctx, providerName, req.ProviderLeagueID, req.TargetLeagueID)
	if err != nil {
		h.fail(ctx, w, "import league failed", err,
			"provider", providerName,
			"provider_league_id", req.ProviderLeagueID,
			"target_league_id", req.TargetLeagueID,
		)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) ImportLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportLeagues")
	defer span.End()

	providerName := pathValue(r, "provider")

	var req bulkImportRequest
	if err := h.decodeAndValidate(r.WithContext(ctx), &req); err != nil {
		h.fail(ctx, w, "bulk import rejected", err, "provider", providerName)
		return
	}

	items := make([]usecase.BulkImportItem, 0, len(req.Leagues))
	for _, item := range req.Leagues {
		items = append(items, usecase.BulkImportItem{
			ProviderLeagueID: item.ProviderLeagueID,
			TargetLeagueID:   item.TargetLeagueID,
		})
	}

	result, err := h.importService.ImportLeagues(ctx, providerName, items)
	if err != nil {
		h.fail(ctx, w, "bulk import failed", err, "provider", providerName, "items", len(items))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
