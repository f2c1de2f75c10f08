package nav

import "strings"

// PageExt is the extension of generated page files.
const PageExt = ".qmd"

// indexName is the page name of directory-like nodes.
const indexName = "index"

// DefaultPath computes the canonical page path of n from its ancestry.
// Navbar, landing and section nodes resolve to an index page inside a
// directory named after their own slug; items become <slug>.qmd inside their
// parent's directory. External nodes have no path.
func (t *Tree) DefaultPath(n *Node) string {
	if n.Kind == KindExternal {
		return ""
	}
	chain := t.Ancestry(n)
	slugs := make([]string, 0, len(chain)+1)
	for _, a := range chain {
		slugs = append(slugs, a.Slug)
	}
	if n.Kind.IsDirectory() {
		return strings.Join(append(slugs, indexName), "/") + PageExt
	}
	return strings.Join(append(slugs[:len(slugs)-1], n.Slug), "/") + PageExt
}

// DerivePaths fills in FilePath for every non-external node that has none.
// Explicit paths are kept, so running it again changes nothing.
func (t *Tree) DerivePaths() {
	for _, n := range t.All() {
		if n.Slug == "" {
			n.Slug = Slugify(n.Label)
		}
		if n.Kind != KindExternal && n.FilePath == "" {
			n.FilePath = t.DefaultPath(n)
		}
	}
}
