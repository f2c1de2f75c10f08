package nav

// Mode is how a container node renders in the sidebar.
type Mode string

const (
	ModeText    Mode = "text"
	ModeSection Mode = "section"
)

// Origin tells whether a landing node's mode was configured or inferred.
type Origin string

const (
	OriginExplicit Origin = "explicit"
	OriginAuto     Origin = "auto"
)

// LandingMode resolves the sidebar mode of a landing node: an explicit
// sidebar_as of "text" or "section" wins; otherwise the node is a section when
// it has children and text when it has none.
func (t *Tree) LandingMode(n *Node) (Mode, Origin) {
	switch Mode(n.SidebarAs) {
	case ModeText, ModeSection:
		return Mode(n.SidebarAs), OriginExplicit
	}
	if t.HasChildren(n.ID) {
		return ModeSection, OriginAuto
	}
	return ModeText, OriginAuto
}

// SidebarMode resolves the sidebar mode of any node. Section nodes are always
// sections, landing nodes follow LandingMode and everything else is text.
func (t *Tree) SidebarMode(n *Node) Mode {
	switch n.Kind {
	case KindSection:
		return ModeSection
	case KindLanding:
		m, _ := t.LandingMode(n)
		return m
	default:
		return ModeText
	}
}

// ValidSidebarAs reports whether v is empty or one of the recognized modes.
func ValidSidebarAs(v string) bool {
	return v == "" || v == string(ModeText) || v == string(ModeSection)
}
