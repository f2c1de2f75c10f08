// Package quarto renders the navigation tree into the site configuration
// document: the navbar, one sidebar per root, and the project and format
// sections around them.
package quarto

import (
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
)

// Entry is one item of a sidebar contents list. Leaves set Text; sections set
// Section and may nest further entries.
type Entry struct {
	Text     string
	Section  string
	Href     string
	Icon     string
	Contents []Entry
}

// IsSection reports whether the entry renders as an expandable section.
func (e Entry) IsSection() bool { return e.Section != "" }

// Sidebar is the sidebar block of one root.
type Sidebar struct {
	Title      string
	Style      string
	Background string
	Contents   []Entry
}

// NavbarItem is one entry of website.navbar.left.
type NavbarItem struct {
	Text string
	Href string
	Icon string
}

func leaf(n *nav.Node) Entry {
	return Entry{Text: n.Label, Href: n.Href(), Icon: n.Icon}
}

// RenderNode renders n and, in section mode, its subtree. Section nodes are
// always sections; landing nodes follow their resolved mode; every other kind
// is a leaf. Children of a text-mode landing node are not rendered.
func RenderNode(t *nav.Tree, n *nav.Node) Entry {
	if !n.Kind.IsContainer() || t.SidebarMode(n) != nav.ModeSection {
		return leaf(n)
	}
	e := Entry{Section: n.Label, Href: n.FilePath}
	for _, c := range t.ChildrenOf(n.ID) {
		e.Contents = append(e.Contents, RenderNode(t, c))
	}
	return e
}

// SidebarContents renders the contents of a root's sidebar. The root itself
// is listed first when it has a page of its own and none of its direct
// children is a landing node.
func SidebarContents(t *nav.Tree, root *nav.Node) []Entry {
	children := t.ChildrenOf(root.ID)
	var out []Entry
	if root.FilePath != "" && !hasLandingChild(children) {
		out = append(out, leaf(root))
	}
	for _, c := range children {
		out = append(out, RenderNode(t, c))
	}
	return out
}

func hasLandingChild(children []*nav.Node) bool {
	for _, c := range children {
		if c.Kind == nav.KindLanding {
			return true
		}
	}
	return false
}
