// Package splicing locates the named dynamic regions of the resume template
// and replaces only their inner content, leaving all surrounding markup intact.
package splicing

import "fmt"

// RegionError reports a template-contract violation: a required named region
// marker or the summary sentinel is missing from the template. It aborts the
// run; silently skipping a region would produce a plausible-looking but
// untailored document.
type RegionError struct {
	Region  string
	Message string
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("template contract violation: region %s: %s", e.Region, e.Message)
}
