package team

import (
	"fmt"
	"strconv"
	"strings"
)

// Team is one participant's roster inside a league.
type Team struct {
	LeagueID         string
	RosterID         *int
	OwnerID          string
	OwnerDisplayName *string
	Players          []string
	Settings         map[string]any
	Drafted          bool
}

// Key is the document id of the team: the roster id when the provider gave
// one, otherwise the owner id.
func (t Team) Key() string {
	if t.RosterID != nil {
		return strconv.Itoa(*t.RosterID)
	}
	return strings.TrimSpace(t.OwnerID)
}

func (t Team) Validate() error {
	if t.Key() == "" {
		return fmt.Errorf("team needs a roster id or an owner id")
	}

	return nil
}
