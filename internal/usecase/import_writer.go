package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/domain/team"
)

type ImportResult struct {
	LeagueID      string `json:"leagueId"`
	Imported      bool   `json:"imported"`
	TeamsImported int    `json:"teamsImported"`
}

// ImportWriter persists an ImportProjection: the league first, then every
// team in one atomic batch.
type ImportWriter struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
}

func NewImportWriter(leagueRepo league.Repository, teamRepo team.Repository) *ImportWriter {
	return &ImportWriter{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
	}
}

// Write merges the league into targetLeagueID when given, otherwise creates
// a new league. A team batch failure does not undo the league write; the
// returned *ImportError then carries the league id that was written.
func (w *ImportWriter) Write(ctx context.Context, projection ImportProjection, targetLeagueID string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportWriter.Write",
		attrLeagueID.String(targetLeagueID),
		attrTeams.Int(len(projection.Teams)),
	)
	defer span.End()

	for i, t := range projection.Teams {
		if err := t.Validate(); err != nil {
			return ImportResult{}, &ImportError{Stage: ImportStageWriteTeams, Err: fmt.Errorf("roster %d: %w", i, err)}
		}
	}

	leagueID := strings.TrimSpace(targetLeagueID)
	if leagueID != "" {
		if err := w.leagueRepo.Upsert(ctx, leagueID, projection.League); err != nil {
			return ImportResult{}, &ImportError{Stage: ImportStageWriteLeague, LeagueID: leagueID, Err: fmt.Errorf("upsert league: %w", err)}
		}
	} else {
		created, err := w.leagueRepo.Create(ctx, projection.League)
		if err != nil {
			return ImportResult{}, &ImportError{Stage: ImportStageWriteLeague, Err: fmt.Errorf("create league: %w", err)}
		}
		leagueID = created.ID
	}

	teams := make([]team.Team, 0, len(projection.Teams))
	for _, t := range projection.Teams {
		t.LeagueID = leagueID
		teams = append(teams, t)
	}
	if err := w.teamRepo.UpsertBatch(ctx, leagueID, teams); err != nil {
		return ImportResult{LeagueID: leagueID}, &ImportError{Stage: ImportStageWriteTeams, LeagueID: leagueID, Err: fmt.Errorf("write teams: %w", err)}
	}

	return ImportResult{
		LeagueID:      leagueID,
		Imported:      true,
		TeamsImported: len(teams),
	}, nil
}
