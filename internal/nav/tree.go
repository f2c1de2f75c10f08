package nav

import (
	"cmp"
	"slices"
	"strings"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/errors"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/records"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/util/sets"
)

// Tree is the validated navigation forest.
type Tree struct {
	// Nodes maps id to node.
	Nodes map[string]*Node
	// Children maps a parent id to its child ids in sibling order.
	Children map[string][]string

	// order keeps ids in input order.
	order []string
}

// Build validates the navigation records and assembles the tree.
//
// Fatal conditions (returned as validation errors naming id and line): a
// record missing id, label or kind; an unknown kind; a duplicate id; a
// parent_id that names no node; a parent chain that loops back on itself.
func Build(recs []records.Record) (*Tree, error) {
	t := &Tree{
		Nodes:    make(map[string]*Node, len(recs)),
		Children: make(map[string][]string),
	}
	for _, rec := range recs {
		n, err := NewNode(rec)
		if err != nil {
			return nil, err
		}
		if _, dup := t.Nodes[n.ID]; dup {
			return nil, errors.DuplicateID(n.ID, n.Line)
		}
		t.Nodes[n.ID] = n
		t.order = append(t.order, n.ID)
	}

	for _, id := range t.order {
		n := t.Nodes[id]
		if n.ParentID == "" {
			continue
		}
		if _, ok := t.Nodes[n.ParentID]; !ok {
			return nil, errors.UnknownParent(n.ID, n.ParentID, n.Line)
		}
		t.Children[n.ParentID] = append(t.Children[n.ParentID], n.ID)
	}
	for pid, kids := range t.Children {
		t.Children[pid] = t.sortedIDs(kids)
	}

	if err := t.checkCycles(); err != nil {
		return nil, err
	}
	return t, nil
}

// siblingCompare orders siblings by (order ascending, lowercased label ascending).
func siblingCompare(a, b *Node) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return strings.Compare(strings.ToLower(a.Label), strings.ToLower(b.Label))
}

func (t *Tree) sortedIDs(ids []string) []string {
	out := slices.Clone(ids)
	slices.SortStableFunc(out, func(a, b string) int {
		return siblingCompare(t.Nodes[a], t.Nodes[b])
	})
	return out
}

func (t *Tree) checkCycles() error {
	for _, id := range t.order {
		seen := sets.New(id)
		for pid := t.Nodes[id].ParentID; pid != ""; pid = t.Nodes[pid].ParentID {
			if !seen.Add(pid) {
				n := t.Nodes[id]
				return errors.ParentCycle(n.ID, n.Line)
			}
		}
	}
	return nil
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id string) *Node {
	return t.Nodes[id]
}

// ChildrenOf returns the children of id in sibling order.
func (t *Tree) ChildrenOf(id string) []*Node {
	kids := t.Children[id]
	out := make([]*Node, 0, len(kids))
	for _, cid := range kids {
		out = append(out, t.Nodes[cid])
	}
	return out
}

// HasChildren reports whether any node names id as its parent.
func (t *Tree) HasChildren(id string) bool {
	return len(t.Children[id]) > 0
}

// All returns every node in input order.
func (t *Tree) All() []*Node {
	out := make([]*Node, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.Nodes[id])
	}
	return out
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.order) }

// Roots returns the parentless navbar nodes in sibling order.
func (t *Tree) Roots() []*Node {
	var ids []string
	for _, id := range t.order {
		if t.Nodes[id].IsRoot() {
			ids = append(ids, id)
		}
	}
	ids = t.sortedIDs(ids)
	out := make([]*Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.Nodes[id])
	}
	return out
}

// RequireRoots returns the roots, or a fatal error when there are none.
func (t *Tree) RequireRoots() ([]*Node, error) {
	roots := t.Roots()
	if len(roots) == 0 {
		return nil, errors.NoRoots()
	}
	return roots, nil
}

// Detached returns parentless nodes whose kind is not navbar. They are not
// roots, so neither they nor their descendants appear in the navigation.
func (t *Tree) Detached() []*Node {
	var out []*Node
	for _, id := range t.order {
		n := t.Nodes[id]
		if n.ParentID == "" && n.Kind != KindNavbar {
			out = append(out, n)
		}
	}
	return out
}

// Ancestry returns the chain of nodes from the root down to n (inclusive).
func (t *Tree) Ancestry(n *Node) []*Node {
	chain := []*Node{n}
	for pid := n.ParentID; pid != ""; pid = t.Nodes[pid].ParentID {
		chain = append(chain, t.Nodes[pid])
	}
	slices.Reverse(chain)
	return chain
}
