package nav

import (
	"strconv"
	"strings"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/errors"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/records"
)

// DefaultOrder sorts nodes without a numeric order after every ordered sibling.
const DefaultOrder = 999

// Record columns of the navigation input.
const (
	ColID            = "id"
	ColParentID      = "parent_id"
	ColLabel         = "label"
	ColSlug          = "slug"
	ColKind          = "kind"
	ColFilePath      = "file_path"
	ColOrder         = "order"
	ColDescription   = "description"
	ColDraft         = "draft"
	ColSearchExclude = "search_exclude"
	ColExternalURL   = "external_url"
	ColIcon          = "icon"
	ColSidebarAs     = "sidebar_as"
)

// RequiredColumns must be non-empty on every navigation record.
var RequiredColumns = []string{ColID, ColLabel, ColKind}

// Node is one entry of the navigation tree.
type Node struct {
	ID       string
	ParentID string
	Label    string
	Slug     string
	Kind     Kind
	// FilePath is relative to the project root; empty for external nodes.
	FilePath      string
	Order         int
	Description   string
	Draft         string
	SearchExclude string
	ExternalURL   string
	Icon          string
	// SidebarAs is the lowercased raw value: "", "text", "section" or anything
	// else (treated as auto).
	SidebarAs string

	// Line is the input line the node was read from.
	Line int
}

// NewNode builds a Node from a navigation record, applying defaults for slug
// and order.
func NewNode(rec records.Record) (*Node, error) {
	var missing []string
	for _, c := range RequiredColumns {
		if rec.Get(c) == "" {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, errors.MissingFields(rec.Line, missing, rec.Fields)
	}

	kind, ok := ParseKind(rec.Get(ColKind))
	if !ok {
		return nil, errors.UnknownKind(rec.Get(ColID), rec.Get(ColKind), rec.Line)
	}

	n := &Node{
		ID:            rec.Get(ColID),
		ParentID:      rec.Get(ColParentID),
		Label:         rec.Get(ColLabel),
		Slug:          rec.Get(ColSlug),
		Kind:          kind,
		FilePath:      rec.Get(ColFilePath),
		Order:         parseOrder(rec.Get(ColOrder)),
		Description:   rec.Get(ColDescription),
		Draft:         rec.Get(ColDraft),
		SearchExclude: rec.Get(ColSearchExclude),
		ExternalURL:   rec.Get(ColExternalURL),
		Icon:          rec.Get(ColIcon),
		SidebarAs:     strings.ToLower(rec.Get(ColSidebarAs)),
		Line:          rec.Line,
	}
	if n.Slug == "" {
		n.Slug = Slugify(n.Label)
	}
	if n.Kind == KindExternal {
		n.FilePath = ""
	}
	return n, nil
}

// parseOrder accepts only plain digit strings; anything else sorts last.
func parseOrder(s string) int {
	if s == "" {
		return DefaultOrder
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return DefaultOrder
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return DefaultOrder
	}
	return v
}

// Href is the link target of the node: external_url for external nodes, the
// page path otherwise.
func (n *Node) Href() string {
	if n.Kind == KindExternal {
		return n.ExternalURL
	}
	return n.FilePath
}

// IsRoot reports whether the node is a navbar root.
func (n *Node) IsRoot() bool {
	return n.ParentID == "" && n.Kind == KindNavbar
}

// IsDraft reports whether the draft column holds a truthy value.
func (n *Node) IsDraft() bool { return Truthy(n.Draft) }

// IsSearchExcluded reports whether the search_exclude column holds a truthy value.
func (n *Node) IsSearchExcluded() bool { return Truthy(n.SearchExclude) }

// Truthy interprets spreadsheet-style boolean cells.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "x":
		return true
	}
	return false
}
