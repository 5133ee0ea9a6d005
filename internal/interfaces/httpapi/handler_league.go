package httpapi

import (
	"net/http"

	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	items, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.fail(ctx, w, "list leagues failed", err)
		return
	}

	out := make([]leagueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leagueToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "get league failed", err, "league_id", leagueID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req createLeagueRequest
	if err := h.decodeAndValidate(r.WithContext(ctx), &req); err != nil {
		h.fail(ctx, w, "create league rejected", err)
		return
	}

	input := usecase.CreateLeagueInput{Name: req.Name, Settings: req.Settings}
	if req.Metadata != nil {
		input.Metadata = league.Metadata{Sport: req.Metadata.Sport, Season: req.Metadata.Season}
	}

	item, err := h.leagueService.CreateLeague(ctx, input)
	if err != nil {
		h.fail(ctx, w, "create league failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(item))
}

func (h *Handler) PatchLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PatchLeague")
	defer span.End()

	leagueID := pathValue(r, "leagueID")

	var req patchLeagueRequest
	if err := h.decodeAndValidate(r.WithContext(ctx), &req); err != nil {
		h.fail(ctx, w, "patch league rejected", err, "league_id", leagueID)
		return
	}

	patch := league.Patch{Name: req.Name, Settings: req.Settings}
	if req.Metadata != nil {
		patch.Metadata = &league.Metadata{Sport: req.Metadata.Sport, Season: req.Metadata.Season}
	}

	item, err := h.leagueService.PatchLeague(ctx, leagueID, patch)
	if err != nil {
		h.fail(ctx, w, "patch league failed", err, "league_id", leagueID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLeague")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	if err := h.leagueService.DeleteLeague(ctx, leagueID); err != nil {
		h.fail(ctx, w, "delete league failed", err, "league_id", leagueID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID := pathValue(r, "leagueID")
	items, err := h.leagueService.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err, "league_id", leagueID)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
