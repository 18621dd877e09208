// Package selection applies scoring, ranking, and hard structural constraints
// to produce the final set of resume content.
package selection

import (
	"strings"

	"github.com/jmorgan/resume-generator/internal/scoring"
	"github.com/jmorgan/resume-generator/internal/types"
)

// Structural constraints for the experience section.
const (
	MaxExperienceEntries = 4
	BulletsPerEntry      = 3
)

// ExperienceEntry is a selected position with its final bullet list.
type ExperienceEntry struct {
	Position types.Position
	Bullets  []string
	Score    int
}

// Short reports whether the entry ended up with fewer than the required
// bullet count after all fallback sources were exhausted.
func (e *ExperienceEntry) Short() bool {
	return len(e.Bullets) < BulletsPerEntry
}

// bulletSource is an ordered supply of candidate bullet strings. Sources are
// consumed in priority order until the target count is met or every source
// is exhausted, which makes the degraded short-entry case an explicit
// terminal state instead of a loop-condition accident.
type bulletSource struct {
	items  []string
	format func(string) string
}

// SelectExperience ranks positions against the keyword set and returns the
// top entries, each carrying exactly BulletsPerEntry bullets whenever the
// position has that many combined description and achievement strings.
func SelectExperience(positions []types.Position, kws []string) []ExperienceEntry {
	ranked := scoring.RankPositions(positions, kws)
	if len(ranked) > MaxExperienceEntries {
		ranked = ranked[:MaxExperienceEntries]
	}

	entries := make([]ExperienceEntry, 0, len(ranked))
	for _, sp := range ranked {
		entries = append(entries, ExperienceEntry{
			Position: sp.Position,
			Bullets:  buildBullets(&sp.Position),
			Score:    sp.Score,
		})
	}

	return entries
}

// buildBullets fills a position's bullet list from its fallback sources:
// description bullets first, then achievements rendered as "Achieved {text}",
// consumed sequentially.
func buildBullets(p *types.Position) []string {
	sources := []bulletSource{
		{items: p.Description},
		{items: p.Achievements, format: func(s string) string { return "Achieved " + s }},
	}

	bullets := make([]string, 0, BulletsPerEntry)
	for _, src := range sources {
		for _, item := range src.items {
			if len(bullets) == BulletsPerEntry {
				return bullets
			}
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if src.format != nil {
				item = src.format(item)
			}
			bullets = append(bullets, item)
		}
	}

	return bullets
}
