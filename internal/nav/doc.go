// Package nav models the navigation tree of the site.
//
// A Tree is built once per run from navigation records: every record becomes a
// Node, children are bucketed under their parent and ordered by (order,
// lowercased label), and roots are the parentless navbar nodes. DerivePaths
// then fills in the page path of every non-external node from its ancestry.
// After that the tree is read-only; the renderers only walk it.
package nav
