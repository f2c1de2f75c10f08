// Package content turns per-node content records into page bodies: the
// iframe templates, their grid header block, and the stub fallback.
package content

import (
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/records"
)

// Template selects how a page body is rendered.
type Template string

const (
	TemplateNone         Template = ""
	TemplateSingleIframe Template = "single_iframe"
	TemplateDoubleIframe Template = "doble_iframe"
)

// Known reports whether t names a template that renders a body.
func (t Template) Known() bool {
	return t == TemplateSingleIframe || t == TemplateDoubleIframe
}

// DefaultLayout is the layout directive used when the record leaves it empty.
func (t Template) DefaultLayout() string {
	if t == TemplateDoubleIframe {
		return "[ [1,1] ]"
	}
	return "[ [1] ]"
}

// Record columns of the content input.
const (
	ColID               = "id"
	ColTemplate         = "template"
	ColLayout           = "layout"
	ColGridSidebarWidth = "grid_sidebar_width"
	ColGridBodyWidth    = "grid_body_width"
	ColGridMarginWidth  = "grid_margin_width"
	ColGridGutterWidth  = "grid_gutter_width"
	ColIntroMD          = "intro_md"
)

// Frame defaults.
const (
	DefaultFrameHeight = "800"
	DefaultFrameWidth  = "100%"
	DefaultFrameStyle  = "border:none;"
)

// Config is the content record bound to one node id.
type Config struct {
	ID       string
	Template Template
	Line     int

	fields map[string]string
}

// NewConfig wraps a content record. Records without an id yield nil.
func NewConfig(rec records.Record) *Config {
	id := rec.Get(ColID)
	if id == "" {
		return nil
	}
	return &Config{
		ID:       id,
		Template: Template(rec.Get(ColTemplate)),
		Line:     rec.Line,
		fields:   rec.Fields,
	}
}

// Get returns a raw field value.
func (c *Config) Get(key string) string {
	if c == nil {
		return ""
	}
	return c.fields[key]
}

// Layout returns the layout directive, falling back to the template default.
func (c *Config) Layout() string {
	if l := c.Get(ColLayout); l != "" {
		return l
	}
	return c.Template.DefaultLayout()
}

// IntroMD returns the introductory markdown blob.
func (c *Config) IntroMD() string {
	return c.Get(ColIntroMD)
}

// Grid returns the page grid sizing fields.
func (c *Config) Grid() Grid {
	return Grid{
		SidebarWidth: c.Get(ColGridSidebarWidth),
		BodyWidth:    c.Get(ColGridBodyWidth),
		MarginWidth:  c.Get(ColGridMarginWidth),
		GutterWidth:  c.Get(ColGridGutterWidth),
	}
}

// Frame is one embedded iframe.
type Frame struct {
	Src    string
	Height string
	Width  string
	Style  string
}

// Frame resolves the fields of frame n (1 or 2). The first frame falls back
// to the legacy iframe_* columns; both fall back to the hard defaults.
func (c *Config) Frame(n int) Frame {
	prefixes := []string{"iframe2_"}
	if n == 1 {
		prefixes = []string{"iframe1_", "iframe_"}
	}
	pick := func(name, def string) string {
		for _, p := range prefixes {
			if v := c.Get(p + name); v != "" {
				return v
			}
		}
		return def
	}
	return Frame{
		Src:    pick("src", ""),
		Height: pick("height", DefaultFrameHeight),
		Width:  pick("width", DefaultFrameWidth),
		Style:  pick("style", DefaultFrameStyle),
	}
}

// Grid is the optional format.html.grid header block.
type Grid struct {
	SidebarWidth string
	BodyWidth    string
	MarginWidth  string
	GutterWidth  string
}

// Empty reports whether no grid field is set.
func (g Grid) Empty() bool {
	return g.SidebarWidth == "" && g.BodyWidth == "" && g.MarginWidth == "" && g.GutterWidth == ""
}
