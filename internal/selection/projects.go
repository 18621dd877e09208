package selection

import (
	"regexp"
	"strings"

	"github.com/jmorgan/resume-generator/internal/scoring"
	"github.com/jmorgan/resume-generator/internal/types"
)

// Structural constraints for the projects section.
const (
	MaxProjectEntries = 3
	BulletsPerProject = 2

	// minFragmentChars is the threshold below which a summary fragment is
	// considered trivial and used only as a last-resort backfill.
	minFragmentChars = 20
)

var (
	// sentenceSplitPattern splits a project summary into sentence fragments.
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

	// technicalSignalPattern marks fragments worth leading with: percentages,
	// multipliers, and a fixed set of engineering terms.
	technicalSignalPattern = regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(%|x\b)|performance|optimization|implementation|development|architecture`)
)

// ProjectEntry is a selected project with its generated bullet list.
type ProjectEntry struct {
	Project types.Project
	Bullets []string
	Score   int
}

// Short reports whether the entry has fewer than the required bullet count.
// This happens only when the summary holds fewer than two non-empty fragments.
func (e *ProjectEntry) Short() bool {
	return len(e.Bullets) < BulletsPerProject
}

// SelectProjects ranks projects against the keyword set, takes the top
// entries, and generates exactly BulletsPerProject bullets for each from its
// summary text whenever the summary supports it.
func SelectProjects(projects []types.Project, kws []string) []ProjectEntry {
	ranked := scoring.RankProjects(projects, kws)
	if len(ranked) > MaxProjectEntries {
		ranked = ranked[:MaxProjectEntries]
	}

	entries := make([]ProjectEntry, 0, len(ranked))
	for _, sp := range ranked {
		entries = append(entries, ProjectEntry{
			Project: sp.Project,
			Bullets: GenerateProjectBullets(sp.Project.Summary),
			Score:   sp.Score,
		})
	}

	return entries
}

// GenerateProjectBullets derives bullet points from a project summary.
// Fragments are consumed from three fallback tiers: substantial fragments
// carrying a technical signal, then remaining substantial fragments in
// order, then trivial fragments. Fewer than BulletsPerProject bullets result
// only when the summary has fewer than two non-empty fragments.
func GenerateProjectBullets(summary string) []string {
	var signal, plain, trivial []string
	for _, raw := range sentenceSplitPattern.Split(summary, -1) {
		frag := strings.TrimSpace(raw)
		switch {
		case frag == "":
			continue
		case len(frag) < minFragmentChars:
			trivial = append(trivial, frag)
		case technicalSignalPattern.MatchString(frag):
			signal = append(signal, frag)
		default:
			plain = append(plain, frag)
		}
	}

	bullets := make([]string, 0, BulletsPerProject)
	for _, tier := range [][]string{signal, plain, trivial} {
		for _, frag := range tier {
			if len(bullets) == BulletsPerProject {
				return bullets
			}
			bullets = append(bullets, frag)
		}
	}

	return bullets
}
