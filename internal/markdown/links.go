package markdown

import (
	"net/url"
	"path"
	"strings"
)

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// IsLocalPage reports whether the link points at a local page with the given
// extension (no scheme, no host, not a pure fragment).
func (l Link) IsLocalPage(ext string) bool {
	if l.Kind == LinkKindImage || l.Kind == LinkKindAuto {
		return false
	}
	u, err := url.Parse(l.Destination)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return false
	}
	return strings.EqualFold(path.Ext(u.Path), ext)
}

// PagePath returns the destination without query or fragment, resolved against
// the directory of the page that contains the link. Destinations starting
// with "/" are taken relative to the project root.
func (l Link) PagePath(fromDir string) string {
	dest := l.Destination
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest = dest[:i]
	}
	if strings.HasPrefix(dest, "/") {
		return path.Clean(strings.TrimPrefix(dest, "/"))
	}
	return path.Clean(path.Join(fromDir, dest))
}
