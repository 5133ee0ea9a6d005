package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// ImportStage names the step of an import that failed.
type ImportStage string

const (
	ImportStageFetch       ImportStage = "fetch"
	ImportStageWriteLeague ImportStage = "write_league"
	ImportStageWriteTeams  ImportStage = "write_teams"
)

// ImportError wraps any failure in the middle of a league import. When Stage
// is write_teams, LeagueID names the league record that was already written
// and is left in place.
type ImportError struct {
	Provider         string
	ProviderLeagueID string
	LeagueID         string
	Stage            ImportStage
	Err              error
}

func (e *ImportError) Error() string {
	msg := fmt.Sprintf("import %s league %s failed at %s", e.Provider, e.ProviderLeagueID, e.Stage)
	if e.LeagueID != "" {
		msg += fmt.Sprintf(" (league=%s)", e.LeagueID)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
