package rendering

import (
	"fmt"
	"strings"

	"github.com/jmorgan/resume-generator/internal/selection"
	"github.com/jmorgan/resume-generator/internal/types"
)

// spacingMarker is the fixed vertical-spacing command emitted after every
// experience and project entry.
const spacingMarker = `\vspace{2pt}`

// lineBreak joins the per-group lines of the skills block.
const lineBreak = ` \\`

// skillGroup maps a rendered skills line to the knowledge-base category keys
// that feed it. Group presence is data-driven: a group whose categories
// retained no skills produces no line.
type skillGroup struct {
	label string
	keys  []string
}

var skillGroups = []skillGroup{
	{label: "Programming Languages", keys: []string{"programming_languages"}},
	{label: "Frontend & Backend", keys: []string{"frontend", "backend"}},
	{label: "Databases & Cloud", keys: []string{"databases", "cloud"}},
	{label: "Tools & Specialized", keys: []string{"tools", "specialized"}},
}

// RenderExperienceBlock renders the experience entries as LaTeX. Each entry
// is a heading line pairing company/date and title/location, its bullet
// list, and a small vertical space.
func RenderExperienceBlock(entries []selection.ExperienceEntry) string {
	var sb strings.Builder
	for _, entry := range entries {
		p := entry.Position
		fmt.Fprintf(&sb, "\\resumeEntry{%s}{%s}{%s}{%s}\n",
			EscapeLaTeX(p.Company),
			EscapeLaTeX(p.DateLabel()),
			EscapeLaTeX(p.Title),
			EscapeLaTeX(p.Location))
		sb.WriteString(renderBulletList(entry.Bullets))
		sb.WriteString(spacingMarker + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderProjectsBlock renders the project entries as LaTeX. Each entry is a
// bolded title with a GitHub link, its two bullets, and a small vertical space.
func RenderProjectsBlock(entries []selection.ProjectEntry) string {
	var sb strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&sb, "\\textbf{%s} \\textbar{} \\href{%s}{Link to GitHub}\n",
			EscapeLaTeX(entry.Project.Title),
			entry.Project.RepoURL)
		sb.WriteString(renderBulletList(entry.Bullets))
		sb.WriteString(spacingMarker + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderSkillsBlock renders up to four lines, one per non-empty logical skill
// group, each a bolded label followed by the comma-joined skill names.
func RenderSkillsBlock(categories *types.SkillCategories) string {
	lines := make([]string, 0, len(skillGroups))
	for _, group := range skillGroups {
		names := make([]string, 0)
		for _, key := range group.keys {
			for _, s := range categories.Get(key).Skills {
				names = append(names, EscapeLaTeX(s.Name))
			}
		}
		if len(names) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("\\textbf{%s:} %s",
			EscapeLaTeX(group.label), strings.Join(names, ", ")))
	}
	return strings.Join(lines, lineBreak+"\n")
}

// SkillLineCount returns how many lines RenderSkillsBlock will emit for the
// given categories, for metadata reporting.
func SkillLineCount(categories *types.SkillCategories) int {
	count := 0
	for _, group := range skillGroups {
		for _, key := range group.keys {
			if len(categories.Get(key).Skills) > 0 {
				count++
				break
			}
		}
	}
	return count
}

// RenderSummary composes the tailored summary paragraph from profile data,
// the target job title, and the matched keywords. The result is escaped here,
// at its single point of insertion.
func RenderSummary(p *types.Profile, jobTitle string, kws []string) string {
	var sb strings.Builder

	sb.WriteString("Software engineer")
	if len(p.StrongestAreas) > 0 {
		sb.WriteString(" with strengths in " + joinTop(p.StrongestAreas, 3))
	}
	sb.WriteString(".")

	if len(kws) > 0 {
		sb.WriteString(" Hands-on experience with " + joinTop(kws, 4) + ".")
	}
	if len(p.CareerHighlights) > 0 {
		sb.WriteString(" " + strings.TrimRight(p.CareerHighlights[0], ".") + ".")
	}
	if jobTitle != "" {
		sb.WriteString(" Seeking to contribute as " + jobTitle + ".")
	}

	return EscapeLaTeX(sb.String())
}

// renderBulletList renders an itemize environment with one escaped item per bullet.
func renderBulletList(bullets []string) string {
	if len(bullets) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\\begin{itemize}\n")
	for _, b := range bullets {
		sb.WriteString("  \\item " + EscapeLaTeX(b) + "\n")
	}
	sb.WriteString("\\end{itemize}\n")
	return sb.String()
}

// joinTop joins the first n items with commas.
func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
