package document

import (
	"time"

	"github.com/riskibarqy/bet-hub/internal/domain/league"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
)

type leagueDocument struct {
	Name       string           `json:"name"`
	Platform   string           `json:"platform"`
	PlatformID string           `json:"platformId,omitempty"`
	Settings   map[string]any   `json:"settings"`
	Metadata   metadataDocument `json:"metadata"`
	ImportedAt *time.Time       `json:"importedAt,omitempty"`
}

type metadataDocument struct {
	Sport  string `json:"sport"`
	Season string `json:"season"`
}

func leagueToDocument(item league.League) leagueDocument {
	settings := item.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return leagueDocument{
		Name:       item.Name,
		Platform:   string(item.Platform),
		PlatformID: item.PlatformID,
		Settings:   settings,
		Metadata:   metadataDocument{Sport: item.Metadata.Sport, Season: item.Metadata.Season},
		ImportedAt: item.ImportedAt,
	}
}

func leagueFromDocument(doc docstore.Document) (league.League, error) {
	var row leagueDocument
	if err := doc.DataTo(&row); err != nil {
		return league.League{}, err
	}

	platform := league.Platform(row.Platform)
	if platform == "" {
		platform = league.PlatformNone
	}
	return league.League{
		ID:         doc.ID,
		Name:       row.Name,
		Platform:   platform,
		PlatformID: row.PlatformID,
		Settings:   row.Settings,
		Metadata:   league.Metadata{Sport: row.Metadata.Sport, Season: row.Metadata.Season},
		ImportedAt: row.ImportedAt,
		CreatedAt:  doc.CreateTime,
		UpdatedAt:  doc.UpdateTime,
	}, nil
}

// patchToData only carries the fields the patch sets so a merge write leaves
// the rest alone.
func patchToData(patch league.Patch) map[string]any {
	data := make(map[string]any, 3)
	if patch.Name != nil {
		data["name"] = *patch.Name
	}
	if patch.Settings != nil {
		data["settings"] = patch.Settings
	}
	if patch.Metadata != nil {
		data["metadata"] = map[string]any{
			"sport":  patch.Metadata.Sport,
			"season": patch.Metadata.Season,
		}
	}
	return data
}
