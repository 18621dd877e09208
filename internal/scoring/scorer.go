// Package scoring assigns relevance scores to knowledge-base entities against extracted keywords.
package scoring

import (
	"sort"
	"strings"

	"github.com/jmorgan/resume-generator/internal/types"
)

// Scoring constants. Each keyword occurrence is worth matchWeight points;
// position-only bonuses reward currently held roles and engineering titles.
const (
	matchWeight          = 2
	currentStatusBonus   = 5
	engineerTitleBonus   = 3
)

// titleBonusTerms trigger the title bonus when found in a position title.
var titleBonusTerms = []string{"engineer", "developer"}

// ScoredPosition wraps a position with its computed relevance score.
type ScoredPosition struct {
	Position types.Position
	Score    int
}

// ScoredProject wraps a project with its computed relevance score.
type ScoredProject struct {
	Project types.Project
	Score   int
}

// ScoreText computes the base relevance of a text block: the sum over all
// keywords of matchWeight times the number of case-insensitive,
// non-overlapping occurrences of that keyword.
func ScoreText(text string, kws []string) int {
	if text == "" || len(kws) == 0 {
		return 0
	}

	lower := strings.ToLower(text)
	score := 0
	for _, kw := range kws {
		if kw == "" {
			continue
		}
		score += matchWeight * strings.Count(lower, strings.ToLower(kw))
	}
	return score
}

// ScorePosition computes the relevance score for a position: keyword matches
// against its description and technology text, plus fixed bonuses for current
// status and engineering titles.
func ScorePosition(p *types.Position, kws []string) int {
	searchable := strings.Join(p.Description, " ") + " " + strings.Join(p.Technologies, " ")
	score := ScoreText(searchable, kws)

	if p.IsCurrent() {
		score += currentStatusBonus
	}

	titleLower := strings.ToLower(p.Title)
	for _, term := range titleBonusTerms {
		if strings.Contains(titleLower, term) {
			score += engineerTitleBonus
			break
		}
	}

	return score
}

// ScoreProject computes the relevance score for a project from its title and summary.
func ScoreProject(p *types.Project, kws []string) int {
	return ScoreText(p.Title+" "+p.Summary, kws)
}

// RankPositions scores and sorts positions by descending relevance. Ties
// prefer current positions over completed ones; remaining ties keep the
// original knowledge-base order (the sort is stable).
func RankPositions(positions []types.Position, kws []string) []ScoredPosition {
	ranked := make([]ScoredPosition, 0, len(positions))
	for _, p := range positions {
		ranked = append(ranked, ScoredPosition{Position: p, Score: ScorePosition(&p, kws)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Position.IsCurrent() && !ranked[j].Position.IsCurrent()
	})

	return ranked
}

// RankProjects scores and sorts projects by descending relevance. Equal-score
// projects keep their original knowledge-base order.
func RankProjects(projects []types.Project, kws []string) []ScoredProject {
	ranked := make([]ScoredProject, 0, len(projects))
	for _, p := range projects {
		ranked = append(ranked, ScoredProject{Project: p, Score: ScoreProject(&p, kws)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// SkillMatches reports whether a skill is textually relevant to the keyword
// set: any keyword appearing case-insensitively in its name or in any of its
// context tags counts as a match.
func SkillMatches(s *types.Skill, kws []string) bool {
	if len(kws) == 0 {
		return false
	}

	fields := make([]string, 0, len(s.Context)+1)
	fields = append(fields, strings.ToLower(s.Name))
	for _, c := range s.Context {
		fields = append(fields, strings.ToLower(c))
	}

	for _, kw := range kws {
		kwLower := strings.ToLower(kw)
		for _, field := range fields {
			if strings.Contains(field, kwLower) {
				return true
			}
		}
	}

	return false
}
