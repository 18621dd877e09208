package splicing

import (
	"regexp"
	"strings"
)

// Region names recognized in the template. Marker-bounded regions use
// "% BEGIN:<NAME>" and "% END:<NAME>" comment lines; the summary region is
// instead located by SummarySentinel inside the \resumeSummary command.
const (
	RegionSummary    = "SUMMARY"
	RegionExperience = "EXPERIENCE"
	RegionProjects   = "PROJECTS"
	RegionSkills     = "SKILLS"
)

// SummarySentinel is the fixed phrase the template's summary command must
// contain. The splicer replaces the argument of the command holding it.
const SummarySentinel = "Results-driven software engineer"

var (
	beginMarkerPattern = regexp.MustCompile(`(?m)^[ \t]*%[ \t]*BEGIN:([A-Za-z]+)[ \t]*\r?\n`)
	summaryPattern     = regexp.MustCompile(`\\resumeSummary\{([^{}]*)\}`)
)

// markerRegions are the marker-bounded regions every template must declare.
var markerRegions = []string{RegionExperience, RegionProjects, RegionSkills}

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentHole
)

// segment is one typed piece of the parsed template: either immutable literal
// markup, carried through byte-for-byte, or a named hole whose inner content
// is replaced on every splice.
type segment struct {
	kind segmentKind
	name string // hole name; empty for literals
	text string // literal text; empty for holes
}

// Template is a resume template parsed once into typed segments. Splicing is
// an indexed substitution over this structure, so marker patterns cannot
// accidentally match text inside dynamic content.
type Template struct {
	source   string
	segments []segment
	holes    map[string]bool
}

// Parse splits template text into literal and hole segments. It fails with a
// *RegionError if any required region marker pair or the summary sentinel is
// absent, since every later splice depends on all of them being present.
func Parse(text string) (*Template, error) {
	t := &Template{source: text, holes: make(map[string]bool)}

	pos := 0
	for _, loc := range beginMarkerPattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] < pos {
			// Begin marker inside a previous region's span; the outer pair wins.
			continue
		}
		name := strings.ToUpper(text[loc[2]:loc[3]])
		markerEnd := loc[1]

		endPattern := regexp.MustCompile(`(?m)^[ \t]*%[ \t]*END:` + name + `[ \t]*$`)
		endLoc := endPattern.FindStringIndex(text[markerEnd:])
		if endLoc == nil {
			return nil, &RegionError{Region: name, Message: "begin marker has no matching end marker"}
		}

		// Literal up to and including the begin marker line.
		t.appendLiteral(text[pos:markerEnd])
		t.segments = append(t.segments, segment{kind: segmentHole, name: name})
		t.holes[name] = true

		// The end marker line itself starts the next literal.
		pos = markerEnd + endLoc[0]
	}
	t.appendLiteral(text[pos:])

	for _, name := range markerRegions {
		if !t.holes[name] {
			return nil, &RegionError{Region: name, Message: "marker pair not found in template"}
		}
	}

	if err := t.splitSummaryHole(); err != nil {
		return nil, err
	}

	return t, nil
}

// splitSummaryHole locates the \resumeSummary command containing the sentinel
// phrase inside a literal segment and splits that segment around the command's
// argument, turning the argument span into the SUMMARY hole.
func (t *Template) splitSummaryHole() error {
	for i, seg := range t.segments {
		if seg.kind != segmentLiteral {
			continue
		}
		for _, loc := range summaryPattern.FindAllStringSubmatchIndex(seg.text, -1) {
			arg := seg.text[loc[2]:loc[3]]
			if !strings.Contains(arg, SummarySentinel) {
				continue
			}
			split := []segment{
				{kind: segmentLiteral, text: seg.text[:loc[2]]},
				{kind: segmentHole, name: RegionSummary},
				{kind: segmentLiteral, text: seg.text[loc[3]:]},
			}
			t.segments = append(t.segments[:i], append(split, t.segments[i+1:]...)...)
			t.holes[RegionSummary] = true
			return nil
		}
	}
	return &RegionError{Region: RegionSummary, Message: "no summary command containing the sentinel phrase"}
}

func (t *Template) appendLiteral(text string) {
	if text == "" {
		return
	}
	t.segments = append(t.segments, segment{kind: segmentLiteral, text: text})
}

// Blocks holds the fully rendered dynamic content for one splice.
type Blocks struct {
	Summary    string
	Experience string
	Projects   string
	Skills     string
}

// Splice produces a new document: every literal segment byte-for-byte from
// the template, every hole filled with its rendered block. The template is
// never mutated, so re-splicing with identical blocks yields an identical
// document.
func (t *Template) Splice(blocks Blocks) string {
	content := map[string]string{
		RegionSummary:    blocks.Summary,
		RegionExperience: blocks.Experience,
		RegionProjects:   blocks.Projects,
		RegionSkills:     blocks.Skills,
	}

	var sb strings.Builder
	sb.Grow(len(t.source))
	for _, seg := range t.segments {
		switch seg.kind {
		case segmentLiteral:
			sb.WriteString(seg.text)
		case segmentHole:
			text := content[seg.name]
			sb.WriteString(text)
			// Marker-bounded holes sit between comment lines; keep the end
			// marker on its own line. The inline summary hole gets no newline.
			if seg.name != RegionSummary && text != "" && !strings.HasSuffix(text, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// Regions returns the hole names present in the parsed template.
func (t *Template) Regions() []string {
	names := make([]string, 0, len(t.holes))
	for _, name := range []string{RegionSummary, RegionExperience, RegionProjects, RegionSkills} {
		if t.holes[name] {
			names = append(names, name)
		}
	}
	return names
}
