package nav

import "strings"

// Kind is the closed set of navigation node kinds.
type Kind string

const (
	KindNavbar   Kind = "navbar"
	KindLanding  Kind = "landing"
	KindSection  Kind = "section"
	KindItem     Kind = "item"
	KindExternal Kind = "external"
)

// ParseKind folds s and reports whether it names a known kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindNavbar, KindLanding, KindSection, KindItem, KindExternal:
		return k, true
	}
	return k, false
}

// IsContainer reports whether nodes of this kind render as sidebar sections
// (landing nodes only when their mode resolves to section).
func (k Kind) IsContainer() bool {
	return k == KindLanding || k == KindSection
}

// IsDirectory reports whether the node's page is an index page inside a
// directory named after its own slug.
func (k Kind) IsDirectory() bool {
	return k == KindNavbar || k == KindLanding || k == KindSection
}

// IsLeaf reports whether the node always renders as a single sidebar entry.
func (k Kind) IsLeaf() bool {
	return k == KindItem || k == KindExternal
}
