// Package rendering builds the LaTeX fragments spliced into the resume template.
package rendering

import "strings"

// EscapeLaTeX escapes the characters with special meaning in LaTeX source:
// & % $ # ^ ~ _ { }. It is applied to dynamically inserted text only, never
// to template structure, and it is not idempotent: escaping already-escaped
// text double-escapes it, so callers must escape each string exactly once at
// the point of insertion.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString(`\&`)
		case '%':
			result.WriteString(`\%`)
		case '$':
			result.WriteString(`\$`)
		case '#':
			result.WriteString(`\#`)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		case '_':
			result.WriteString(`\_`)
		case '{':
			result.WriteString(`\{`)
		case '}':
			result.WriteString(`\}`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
