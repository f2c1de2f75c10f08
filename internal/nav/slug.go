package nav

import (
	"strings"
	"unicode"
)

// fallbackSlug is used when a label has no slug-safe characters.
const fallbackSlug = "page"

// Slugify lowercases text, drops every character outside [a-z0-9-_] and
// whitespace, replaces whitespace runs with a single hyphen and trims hyphens.
func Slugify(text string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			// Dropped characters do not break a whitespace run.
			continue
		}
		inSpace = false
	}
	if s := strings.Trim(b.String(), "-"); s != "" {
		return s
	}
	return fallbackSlug
}
