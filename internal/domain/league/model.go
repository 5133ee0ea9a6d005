package league

import (
	"fmt"
	"strings"
	"time"
)

// Platform names the fantasy provider a league was imported from.
type Platform string

const (
	PlatformNone    Platform = "none"
	PlatformSleeper Platform = "sleeper"
	PlatformESPN    Platform = "espn"
	PlatformYahoo   Platform = "yahoo"
)

func ParsePlatform(v string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(v))); p {
	case PlatformNone, PlatformSleeper, PlatformESPN, PlatformYahoo:
		return p, nil
	default:
		return "", fmt.Errorf("unknown platform %q", v)
	}
}

type Metadata struct {
	Sport  string
	Season string
}

// League is the root record of a betting pool. Teams, bets and settlements
// live underneath it.
type League struct {
	ID         string
	Name       string
	Platform   Platform
	PlatformID string
	Settings   map[string]any
	Metadata   Metadata
	ImportedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if _, err := ParsePlatform(string(l.Platform)); err != nil {
		return err
	}
	if l.Platform != PlatformNone && strings.TrimSpace(l.PlatformID) == "" {
		return fmt.Errorf("platform id is required for platform %s", l.Platform)
	}

	return nil
}

// Patch holds a partial league update; nil fields are left untouched.
type Patch struct {
	Name     *string
	Settings map[string]any
	Metadata *Metadata
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Settings == nil && p.Metadata == nil
}
