package bet

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusOpen    Status = "open"
	StatusSettled Status = "settled"
	StatusVoid    Status = "void"
)

func ParseStatus(v string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(v))); s {
	case StatusOpen, StatusSettled, StatusVoid:
		return s, nil
	default:
		return "", fmt.Errorf("unknown bet status %q", v)
	}
}

type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
)

// Sign is +1 for a win and -1 for anything else.
func (r Result) Sign() int {
	if r == ResultWin {
		return 1
	}
	return -1
}

type Participant struct {
	UserID string
	Amount float64
	Result Result
}

// Bet is a wager for one scoring week. Participants is nil for legacy
// records that were stored without a participant list.
type Bet struct {
	ID           string
	LeagueID     string
	Week         int
	Status       Status
	Description  string
	Participants []Participant
	CreatedAt    time.Time
}

var (
	ErrInvalidWeek        = errors.New("week must be greater than zero")
	ErrNoParticipants     = errors.New("bet needs at least one participant")
	ErrNegativeAmount     = errors.New("participant amount must not be negative")
	ErrUnknownResult      = errors.New("participant result must be win or lose")
	ErrMissingParticipant = errors.New("participant user id is required")
)

func (b Bet) Validate() error {
	if b.Week <= 0 {
		return ErrInvalidWeek
	}
	if _, err := ParseStatus(string(b.Status)); err != nil {
		return err
	}
	if len(b.Participants) == 0 {
		return ErrNoParticipants
	}
	for i, p := range b.Participants {
		if strings.TrimSpace(p.UserID) == "" {
			return fmt.Errorf("participant %d: %w", i, ErrMissingParticipant)
		}
		if p.Amount < 0 {
			return fmt.Errorf("participant %s: %w", p.UserID, ErrNegativeAmount)
		}
		if p.Result != ResultWin && p.Result != ResultLose {
			return fmt.Errorf("participant %s: %w", p.UserID, ErrUnknownResult)
		}
	}

	return nil
}
