// Package knowledge loads and caches the structured personal knowledge base
// backing resume generation: profile, positions, skills, projects, and the
// LaTeX template.
package knowledge

import "fmt"

// LoadError represents a failure to read or decode a knowledge-base file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("knowledge base: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("knowledge base: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
