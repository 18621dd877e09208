package knowledge

import "strings"

// RepoURL constructs the deterministic GitHub repository URL for a project:
// https://github.com/<owner>/<slug-of-title>.
func RepoURL(owner, title string) string {
	return "https://github.com/" + owner + "/" + Slug(title)
}

// Slug lowercases a project title and collapses every run of
// non-alphanumeric characters into a single hyphen.
func Slug(title string) string {
	var sb strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			sb.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
