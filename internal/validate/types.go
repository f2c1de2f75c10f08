// Package validate checks a navigation tree and its content records without
// writing anything, and formats the indented tree with the warnings found.
package validate

import (
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
)

// Rule identifiers.
const (
	RuleLandingTextWithChildren = "landing-text-with-children"
	RuleDetachedNode            = "detached-node"
	RuleUnknownSidebarAs        = "unknown-sidebar-as"
	RuleSidebarAsIgnored        = "sidebar-as-ignored"
	RuleExternalWithoutURL      = "external-without-url"
	RuleContentWithoutNode      = "content-without-node"
	RuleContentOnExternal       = "content-on-external"
	RuleUnknownTemplate         = "unknown-template"
	RuleBrokenIntroLink         = "broken-intro-link"
)

// Warning is a non-fatal finding.
type Warning struct {
	Rule    string `json:"rule"`
	NodeID  string `json:"node_id,omitempty"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// TreeLine is one row of the indented tree.
type TreeLine struct {
	Depth int
	ID    string
	Label string
	Kind  nav.Kind
	// Mode and Origin are set for landing nodes only.
	Mode   nav.Mode
	Origin nav.Origin
}

// Result is the outcome of a validation pass.
type Result struct {
	Tree     []TreeLine
	Warnings []Warning
}

// HasWarnings reports whether any warning was collected.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Count returns the number of warnings per rule.
func (r *Result) Count() map[string]int {
	out := make(map[string]int)
	for _, w := range r.Warnings {
		out[w.Rule]++
	}
	return out
}
