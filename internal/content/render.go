package content

import (
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/frontmatter"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/frontmatterops"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
)

// Page is a rendered page ready to be written.
type Page struct {
	Header   frontmatter.Header
	Body     string
	Template Template
	// Autogen pages carry the marker and a fingerprint; they may be refreshed
	// on later runs. Stubs are written once.
	Autogen bool
}

// Bytes renders the complete page file.
func (p Page) Bytes() ([]byte, error) {
	if p.Autogen {
		return frontmatterops.StampDocument(p.Header, p.Body)
	}
	return frontmatter.Document(p.Header, p.Body)
}

// BaseHeader holds the fields every page of n starts with.
func BaseHeader(n *nav.Node) frontmatter.Header {
	h := frontmatter.Header{}.Add("title", frontmatter.Quoted(n.Label))
	if n.Description != "" {
		h = h.Add("description", frontmatter.Quoted(n.Description))
	}
	if n.IsDraft() {
		h = h.Add("draft", true)
	}
	if n.IsSearchExcluded() {
		h = h.Add("search", false)
	}
	return h
}

// Render renders the template page of n from cfg. ok is false when cfg is
// nil or names no known template; the caller then falls back to Stub.
func Render(n *nav.Node, cfg *Config) (p Page, ok bool, err error) {
	if cfg == nil || !cfg.Template.Known() {
		return Page{}, false, nil
	}

	h := BaseHeader(n).Add(frontmatterops.AutogenKey, true)
	if g := cfg.Grid(); !g.Empty() {
		h = h.Add("format", frontmatter.Header{}.Add("html", frontmatter.Header{}.Add("grid", g.header())))
	}

	frames := []Frame{cfg.Frame(1)}
	if cfg.Template == TemplateDoubleIframe {
		frames = append(frames, cfg.Frame(2))
	}

	var b strings.Builder
	if intro := strings.TrimSpace(cfg.IntroMD()); intro != "" {
		b.WriteString(intro)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "::: {layout=%q}\n\n", strings.TrimSpace(cfg.Layout()))
	for _, f := range frames {
		tag, err := f.HTML()
		if err != nil {
			return Page{}, false, fmt.Errorf("render iframe for %s: %w", n.ID, err)
		}
		b.WriteString("```{=html}\n")
		b.WriteString(tag)
		b.WriteString("\n```\n\n")
	}
	b.WriteString(":::\n")

	return Page{Header: h, Body: b.String(), Template: cfg.Template, Autogen: true}, true, nil
}

func (g Grid) header() frontmatter.Header {
	var h frontmatter.Header
	for _, f := range []frontmatter.Field{
		{Key: "sidebar-width", Value: g.SidebarWidth},
		{Key: "body-width", Value: g.BodyWidth},
		{Key: "margin-width", Value: g.MarginWidth},
		{Key: "gutter-width", Value: g.GutterWidth},
	} {
		if v := f.Value.(string); v != "" {
			h = h.Add(f.Key, gridValue(v))
		}
	}
	return h
}

// gridValue keeps plain pixel counts numeric; units stay strings.
func gridValue(v string) any {
	if n, err := strconv.Atoi(v); err == nil && strings.Trim(v, "0123456789") == "" {
		return n
	}
	return v
}

// HTML renders the frame as an iframe element with escaped attributes.
func (f Frame) HTML() (string, error) {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     "iframe",
		DataAtom: atom.Iframe,
		Attr: []html.Attribute{
			{Key: "style", Val: f.Style},
			{Key: "height", Val: f.Height},
			{Key: "width", Val: f.Width},
			{Key: "src", Val: f.Src},
		},
	}
	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Stub renders the fallback page of n. Landing and section nodes with
// children list them as links; every other page gets a placeholder line.
func Stub(n *nav.Node, children []*nav.Node) Page {
	var b strings.Builder
	if n.Kind.IsContainer() && len(children) > 0 {
		b.WriteString("## Contents\n\n")
		for _, c := range children {
			fmt.Fprintf(&b, "- [%s](%s)\n", c.Label, StubHref(n, c))
		}
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Content for **%s**.\n", n.Label)
	}
	return Page{Header: BaseHeader(n), Body: b.String()}
}

// StubHref is the link from the page of n to child, relative to the
// directory of n's page. External children link to their URL.
func StubHref(n, child *nav.Node) string {
	if child.Kind == nav.KindExternal || n.FilePath == "" {
		return child.Href()
	}
	rel, err := filepath.Rel(filepath.FromSlash(path.Dir(n.FilePath)), filepath.FromSlash(child.FilePath))
	if err != nil {
		return child.FilePath
	}
	return filepath.ToSlash(rel)
}
