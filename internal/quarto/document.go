package quarto

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
)

// Options are the non-tree settings of the configuration document.
type Options struct {
	SiteTitle string
	// PreRender is the command the site generator runs before rendering to
	// regenerate this document.
	PreRender string
	// Resources are the input files shipped with the site.
	Resources         []string
	SidebarStyle      string
	SidebarBackground string
	Themes            [2]string
	CSS               string
	TOC               bool
}

// Document is the configuration document before encoding.
type Document struct {
	Options
	Navbar   []NavbarItem
	Sidebars []Sidebar
}

// Build renders the navbar and sidebars for roots, in the order given.
func Build(t *nav.Tree, roots []*nav.Node, opts Options) *Document {
	d := &Document{Options: opts}
	for _, r := range roots {
		d.Navbar = append(d.Navbar, NavbarItem{Text: r.Label, Href: r.FilePath, Icon: r.Icon})
		d.Sidebars = append(d.Sidebars, Sidebar{
			Title:      r.Label,
			Style:      opts.SidebarStyle,
			Background: opts.SidebarBackground,
			Contents:   SidebarContents(t, r),
		})
	}
	return d
}

// Marshal encodes the document as YAML. Equal documents always encode to
// identical bytes.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.node()); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *Document) node() *yaml.Node {
	project := mapping()
	if d.PreRender != "" {
		project.add("pre-render", sequence(quoted(d.PreRender)))
	}
	if len(d.Resources) > 0 {
		res := sequence()
		for _, r := range d.Resources {
			res.Content = append(res.Content, plain(r))
		}
		project.add("resources", res)
	}
	project.add("type", plain("website"))

	left := sequence()
	for _, item := range d.Navbar {
		m := mapping().add("text", quoted(item.Text))
		m.addIf("href", item.Href, plain)
		m.addIf("icon", item.Icon, plain)
		left.Content = append(left.Content, m.Node)
	}

	sidebars := sequence()
	for _, sb := range d.Sidebars {
		m := mapping().add("title", quoted(sb.Title))
		m.addIf("style", sb.Style, quoted)
		m.addIf("background", sb.Background, plain)
		m.add("contents", entries(sb.Contents))
		sidebars.Content = append(sidebars.Content, m.Node)
	}

	website := mapping().
		add("title", quoted(d.SiteTitle)).
		add("navbar", mapping().add("left", left).Node).
		add("sidebar", sidebars)

	html := mapping().
		add("theme", sequence(plain(d.Themes[0]), plain(d.Themes[1]))).
		add("css", plain(d.CSS)).
		add("toc", boolean(d.TOC))

	return mapping().
		add("project", project.Node).
		add("website", website.Node).
		add("format", mapping().add("html", html.Node).Node).Node
}

func entries(list []Entry) *yaml.Node {
	seq := sequence()
	for _, e := range list {
		var m *mappingNode
		if e.IsSection() {
			m = mapping().add("section", quoted(e.Section))
		} else {
			m = mapping().add("text", quoted(e.Text))
		}
		m.addIf("href", e.Href, plain)
		m.addIf("icon", e.Icon, plain)
		if len(e.Contents) > 0 {
			m.add("contents", entries(e.Contents))
		}
		seq.Content = append(seq.Content, m.Node)
	}
	return seq
}

type mappingNode struct {
	*yaml.Node
}

func mapping() *mappingNode {
	return &mappingNode{Node: &yaml.Node{Kind: yaml.MappingNode}}
}

func (m *mappingNode) add(key string, value *yaml.Node) *mappingNode {
	m.Content = append(m.Content, plain(key), value)
	return m
}

func (m *mappingNode) addIf(key, value string, style func(string) *yaml.Node) *mappingNode {
	if value == "" {
		return m
	}
	return m.add(key, style(value))
}

func sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Content: items}
}

func plain(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}

func boolean(b bool) *yaml.Node {
	v := "false"
	if b {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}
