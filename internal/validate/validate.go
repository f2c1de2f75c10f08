package validate

import (
	"fmt"
	"path"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/content"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/markdown"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/util/sets"
)

// Run walks t from its roots and collects warnings about the tree and the
// content records. Paths must already be derived. contents may be nil.
func Run(t *nav.Tree, contents *content.Set) *Result {
	r := &Result{}
	for _, root := range t.Roots() {
		r.walk(t, root, 0)
	}

	for _, n := range t.All() {
		r.checkNode(t, n)
	}
	r.checkContents(t, contents)
	return r
}

func (r *Result) walk(t *nav.Tree, n *nav.Node, depth int) {
	line := TreeLine{Depth: depth, ID: n.ID, Label: n.Label, Kind: n.Kind}
	if n.Kind == nav.KindLanding {
		line.Mode, line.Origin = t.LandingMode(n)
	}
	r.Tree = append(r.Tree, line)
	for _, c := range t.ChildrenOf(n.ID) {
		r.walk(t, c, depth+1)
	}
}

func (r *Result) warn(rule string, n *nav.Node, format string, args ...any) {
	w := Warning{Rule: rule, Message: fmt.Sprintf(format, args...)}
	if n != nil {
		w.NodeID = n.ID
		w.Line = n.Line
	}
	r.Warnings = append(r.Warnings, w)
}

func (r *Result) checkNode(t *nav.Tree, n *nav.Node) {
	if n.Kind == nav.KindLanding {
		if mode, _ := t.LandingMode(n); mode == nav.ModeText && t.HasChildren(n.ID) {
			r.warn(RuleLandingTextWithChildren, n,
				"landing %q (id=%s) renders as text but has children; they will not appear nested under it in the sidebar",
				n.Label, n.ID)
		}
	}
	if n.ParentID == "" && n.Kind != nav.KindNavbar {
		r.warn(RuleDetachedNode, n,
			"%q (id=%s) has no parent but kind %s; only navbar nodes can be roots, so it is left out of the navigation",
			n.Label, n.ID, n.Kind)
	}
	if !nav.ValidSidebarAs(n.SidebarAs) {
		r.warn(RuleUnknownSidebarAs, n,
			"sidebar_as %q on id=%s is not text or section; treated as auto", n.SidebarAs, n.ID)
	} else if n.SidebarAs != "" && n.Kind != nav.KindLanding {
		r.warn(RuleSidebarAsIgnored, n,
			"sidebar_as only applies to landing nodes; ignored on %s id=%s", n.Kind, n.ID)
	}
	if n.Kind == nav.KindExternal && n.ExternalURL == "" {
		r.warn(RuleExternalWithoutURL, n, "external node id=%s has no external_url", n.ID)
	}
}

func (r *Result) checkContents(t *nav.Tree, contents *content.Set) {
	pages := sets.New[string]()
	for _, n := range t.All() {
		if n.FilePath != "" {
			pages.Add(path.Clean(n.FilePath))
		}
	}

	for _, c := range contents.All() {
		n := t.Node(c.ID)
		switch {
		case n == nil:
			r.Warnings = append(r.Warnings, Warning{
				Rule:    RuleContentWithoutNode,
				NodeID:  c.ID,
				Line:    c.Line,
				Message: fmt.Sprintf("content record for id=%s matches no navigation node", c.ID),
			})
			continue
		case n.Kind == nav.KindExternal:
			r.warn(RuleContentOnExternal, n, "content record for external node id=%s is ignored", c.ID)
			continue
		}

		if c.Template != content.TemplateNone && !c.Template.Known() {
			r.warn(RuleUnknownTemplate, n,
				"unknown template %q for id=%s; a stub is written instead", c.Template, c.ID)
		}
		seen := sets.New[string]()
		for _, target := range markdown.LocalPageLinks([]byte(c.IntroMD()), nav.PageExt, path.Dir(n.FilePath)) {
			if seen.Add(target) && !pages.Has(target) {
				r.warn(RuleBrokenIntroLink, n, "intro_md of id=%s links to %s, which no node generates", c.ID, target)
			}
		}
	}
}
