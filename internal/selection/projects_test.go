package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmorgan/resume-generator/internal/types"
)

func TestSelectProjects_CapsAtThreeEntries(t *testing.T) {
	projects := []types.Project{
		{Title: "A", Summary: "Built a long-running data pipeline. Added monitoring for it."},
		{Title: "B", Summary: "Implemented a caching layer for reads. Reduced load times by 40%."},
		{Title: "C", Summary: "Developed a CLI for deployments. Wrote integration tests for it."},
		{Title: "D", Summary: "Created a scheduling service. Documented the whole design."},
	}

	entries := SelectProjects(projects, nil)
	assert.Len(t, entries, MaxProjectEntries)
}

func TestSelectProjects_RelevantProjectFirst(t *testing.T) {
	projects := []types.Project{
		{Title: "Plain", Summary: "A small utility for renaming files. Handles nested folders too."},
		{Title: "Matcher", Summary: "A React dashboard with React charts. Streams updates over websockets."},
	}

	entries := SelectProjects(projects, []string{"React"})
	assert.Equal(t, "Matcher", entries[0].Project.Title)
}

func TestSelectProjects_EmptyInput(t *testing.T) {
	assert.Empty(t, SelectProjects(nil, []string{"Go"}))
}

func TestGenerateProjectBullets_TechnicalSignalWins(t *testing.T) {
	summary := "A tool for organizing personal notes quickly. " +
		"Improved search performance by 30% with an inverted index. " +
		"Supports tagging and full text queries today."

	bullets := GenerateProjectBullets(summary)
	assert.Len(t, bullets, BulletsPerProject)
	assert.Equal(t, "Improved search performance by 30% with an inverted index", bullets[0])
}

func TestGenerateProjectBullets_MultiplierCountsAsSignal(t *testing.T) {
	summary := "A background job runner for batch work. " +
		"Made imports 3x faster by batching writes. " +
		"Ships as a single static binary artifact."

	bullets := GenerateProjectBullets(summary)
	assert.Equal(t, "Made imports 3x faster by batching writes", bullets[0])
}

func TestGenerateProjectBullets_PlainFragmentsInOrder(t *testing.T) {
	summary := "A weather client for the terminal window. " +
		"Caches responses locally between invocations. " +
		"Renders forecasts as simple colored tables."

	bullets := GenerateProjectBullets(summary)
	assert.Equal(t, []string{
		"A weather client for the terminal window",
		"Caches responses locally between invocations",
	}, bullets)
}

func TestGenerateProjectBullets_TrivialBackfill(t *testing.T) {
	// One substantial fragment plus one under the length threshold: the
	// trivial fragment is used rather than leaving the entry short.
	summary := "Parses uploaded CSV files into normalized records. Fast."

	bullets := GenerateProjectBullets(summary)
	assert.Equal(t, []string{
		"Parses uploaded CSV files into normalized records",
		"Fast",
	}, bullets)
}

func TestGenerateProjectBullets_ShortSummary(t *testing.T) {
	bullets := GenerateProjectBullets("Only one fragment lives in this summary")
	assert.Len(t, bullets, 1)

	e := ProjectEntry{Bullets: bullets}
	assert.True(t, e.Short())
}

func TestGenerateProjectBullets_EmptySummary(t *testing.T) {
	assert.Empty(t, GenerateProjectBullets(""))
	assert.Empty(t, GenerateProjectBullets("   "))
}

func TestGenerateProjectBullets_SplitsOnTerminators(t *testing.T) {
	summary := "Does one thing reasonably well! Does a second thing too? Does a third thing as well."
	bullets := GenerateProjectBullets(summary)
	assert.Equal(t, []string{
		"Does one thing reasonably well",
		"Does a second thing too",
	}, bullets)
}
