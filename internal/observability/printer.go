// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmorgan/resume-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs the keyword set extracted from the job description.
func (p *Printer) PrintKeywords(kws []string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matched: %d\n", len(kws))
	shown := kws
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	sb.WriteString(strings.Join(shown, ", "))
	if len(kws) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more", len(kws)-maxItemsToShow)
	}
	p.printBox("Extracted Keywords", sb.String())
}

// PrintMetadata outputs a summary of a completed generation run.
func (p *Printer) PrintMetadata(meta *types.ResumeMetadata) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Run ID:              %s\n", meta.RunID)
	fmt.Fprintf(&sb, "Experience entries:  %d\n", meta.ExperienceEntries)
	fmt.Fprintf(&sb, "Projects included:   %d\n", meta.ProjectsIncluded)
	fmt.Fprintf(&sb, "Skill lines:         %d", meta.SkillLines)
	if len(meta.ShortExperienceEntries) > 0 {
		fmt.Fprintf(&sb, "\nShort experience:    %s", strings.Join(meta.ShortExperienceEntries, ", "))
	}
	if len(meta.ShortProjectEntries) > 0 {
		fmt.Fprintf(&sb, "\nShort projects:      %s", strings.Join(meta.ShortProjectEntries, ", "))
	}
	if meta.EmptyExperience {
		sb.WriteString("\nWARNING: no experience entries")
	}
	if meta.EmptyProjects {
		sb.WriteString("\nWARNING: no project entries")
	}
	if meta.EmptySkills {
		sb.WriteString("\nWARNING: no skill categories")
	}
	p.printBox("Generation Summary", sb.String())
}
