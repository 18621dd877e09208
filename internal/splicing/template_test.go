package splicing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplate = `\documentclass{article}
\begin{document}
\resumeSummary{Results-driven software engineer with broad experience.}
\section{Experience}
% BEGIN:EXPERIENCE
\resumeEntry{Old Co}{2019 -- 2020}{Engineer}{Remote}
% END:EXPERIENCE
\section{Projects}
% BEGIN:PROJECTS
\textbf{Old Project}
% END:PROJECTS
\section{Skills}
% BEGIN:SKILLS
\textbf{Languages:} Go
% END:SKILLS
\end{document}
`

func TestParse_FindsAllRegions(t *testing.T) {
	tpl, err := Parse(testTemplate)
	require.NoError(t, err)
	assert.Equal(t, []string{
		RegionSummary, RegionExperience, RegionProjects, RegionSkills,
	}, tpl.Regions())
}

func TestParse_MissingMarkerPair(t *testing.T) {
	text := strings.ReplaceAll(testTemplate, "% BEGIN:PROJECTS\n", "")
	text = strings.ReplaceAll(text, "% END:PROJECTS\n", "")

	_, err := Parse(text)
	var re *RegionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, RegionProjects, re.Region)
}

func TestParse_BeginWithoutEnd(t *testing.T) {
	text := strings.ReplaceAll(testTemplate, "% END:SKILLS\n", "")

	_, err := Parse(text)
	var re *RegionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, RegionSkills, re.Region)
}

func TestParse_MissingSummarySentinel(t *testing.T) {
	text := strings.ReplaceAll(testTemplate, SummarySentinel, "An enthusiastic generalist")

	_, err := Parse(text)
	var re *RegionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, RegionSummary, re.Region)
}

func TestParse_MarkerIndentationAndSpacing(t *testing.T) {
	text := strings.ReplaceAll(testTemplate, "% BEGIN:SKILLS", "  %  BEGIN:SKILLS")
	text = strings.ReplaceAll(text, "% END:SKILLS", "\t% END:SKILLS")

	tpl, err := Parse(text)
	require.NoError(t, err)
	assert.Contains(t, tpl.Regions(), RegionSkills)
}

func TestSplice_ReplacesAllRegions(t *testing.T) {
	tpl, err := Parse(testTemplate)
	require.NoError(t, err)

	doc := tpl.Splice(Blocks{
		Summary:    "Platform engineer focused on delivery speed.",
		Experience: `\resumeEntry{New Co}{2022 -- Present}{Senior Engineer}{Portland, OR}`,
		Projects:   `\textbf{New Project}`,
		Skills:     `\textbf{Languages:} Go, Python`,
	})

	assert.Contains(t, doc, `\resumeSummary{Platform engineer focused on delivery speed.}`)
	assert.Contains(t, doc, "New Co")
	assert.Contains(t, doc, "New Project")
	assert.Contains(t, doc, "Go, Python")

	assert.NotContains(t, doc, "Old Co")
	assert.NotContains(t, doc, "Old Project")
	assert.NotContains(t, doc, SummarySentinel)
}

func TestSplice_PreservesStaticStructure(t *testing.T) {
	tpl, err := Parse(testTemplate)
	require.NoError(t, err)

	doc := tpl.Splice(Blocks{Summary: "s", Experience: "e", Projects: "p", Skills: "k"})
	assert.Contains(t, doc, `\documentclass{article}`)
	assert.Contains(t, doc, `\section{Experience}`)
	assert.Contains(t, doc, `\section{Projects}`)
	assert.Contains(t, doc, `\section{Skills}`)
	assert.Contains(t, doc, `\end{document}`)
	assert.Contains(t, doc, "% BEGIN:EXPERIENCE")
	assert.Contains(t, doc, "% END:EXPERIENCE")
}

func TestSplice_RepeatableFromSameTemplate(t *testing.T) {
	tpl, err := Parse(testTemplate)
	require.NoError(t, err)

	blocks := Blocks{Summary: "s", Experience: "e", Projects: "p", Skills: "k"}
	first := tpl.Splice(blocks)
	second := tpl.Splice(blocks)
	assert.Equal(t, first, second)

	// Differing content produces a differing document from the same template.
	third := tpl.Splice(Blocks{Summary: "other", Experience: "e", Projects: "p", Skills: "k"})
	assert.NotEqual(t, first, third)
	assert.Contains(t, third, `\resumeSummary{other}`)
}

func TestSplice_ContentNotRescanned(t *testing.T) {
	tpl, err := Parse(testTemplate)
	require.NoError(t, err)

	// Dynamic content that happens to look like a marker line stays inert.
	doc := tpl.Splice(Blocks{
		Summary:    "s",
		Experience: "% BEGIN:PROJECTS\ninjected",
		Projects:   "p",
		Skills:     "k",
	})
	assert.Contains(t, doc, "injected")
	assert.Contains(t, doc, "p")
}

func TestSplice_EmptyBlockLeavesRegionEmpty(t *testing.T) {
	tpl, err := Parse(testTemplate)
	require.NoError(t, err)

	doc := tpl.Splice(Blocks{Summary: "s", Experience: "", Projects: "p", Skills: "k"})
	assert.Contains(t, doc, "% BEGIN:EXPERIENCE\n% END:EXPERIENCE")
}

func TestRegionError_Message(t *testing.T) {
	err := &RegionError{Region: RegionSkills, Message: "marker pair not found in template"}
	assert.Contains(t, err.Error(), "SKILLS")
	assert.Contains(t, err.Error(), "marker pair not found")
}
