// Package commands implements the quartonav command line.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/config"
)

// CLI is the flag surface. Every flag can also be set from the environment
// (or a .env file in the working directory).
type CLI struct {
	Nodes string `arg:"" optional:"" name:"nodes" help:"Navigation records file (CSV, TSV or semicolon separated)." default:"nodes.csv"`

	ContentCSV string `name:"content-csv" help:"Content records file; pass '' to disable." default:"page_content.csv" env:"QUARTONAV_CONTENT_CSV"`
	SiteTitle  string `name:"site-title" help:"Website title." default:"NESBp" env:"QUARTONAV_SITE_TITLE"`
	YmlOut     string `name:"yml-out" help:"Configuration document to write, relative to --root." default:"_quarto.yml" env:"QUARTONAV_YML_OUT"`
	Root       string `name:"root" help:"Project root; page paths resolve under it." default:"." env:"QUARTONAV_ROOT"`

	CreateStubs bool   `name:"create-stubs" help:"Write missing pages and refresh generated ones." env:"QUARTONAV_CREATE_STUBS"`
	Validate    bool   `name:"validate" help:"Print the navigation tree and warnings, then exit without writing."`
	Format      string `name:"format" help:"Validation output format." enum:"text,json" default:"text"`
	DryRun      bool   `name:"dry-run" help:"Print the configuration document instead of writing anything."`

	SidebarStyle      string `name:"sidebar-style" help:"Sidebar style (e.g. docked, floating)." env:"QUARTONAV_SIDEBAR_STYLE"`
	SidebarBackground string `name:"sidebar-background" help:"Sidebar background color." env:"QUARTONAV_SIDEBAR_BACKGROUND"`
	Theme1            string `name:"theme1" help:"First HTML theme." default:"cosmo" env:"QUARTONAV_THEME1"`
	Theme2            string `name:"theme2" help:"Second HTML theme." default:"brand" env:"QUARTONAV_THEME2"`
	CSS               string `name:"css" help:"Stylesheet." default:"styles.css" env:"QUARTONAV_CSS"`
	NoTOC             bool   `name:"no-toc" help:"Disable the page table of contents." env:"QUARTONAV_NO_TOC"`
	PreRender         string `name:"pre-render" help:"Override the pre-render command written to the configuration." env:"QUARTONAV_PRE_RENDER"`

	Watch       bool   `name:"watch" help:"Regenerate whenever an input file changes."`
	MetricsFile string `name:"metrics-file" help:"Write run metrics in Prometheus text format to this file." env:"QUARTONAV_METRICS_FILE"`
	NoColor     bool   `name:"no-color" help:"Disable colored validation output."`

	Verbose bool             `short:"v" help:"Enable verbose logging" env:"QUARTONAV_VERBOSE"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// Config maps the flags to a normalized, validated run configuration.
func (c *CLI) Config() (config.Config, error) {
	cfg := config.Config{
		NodesPath:         c.Nodes,
		ContentPath:       c.ContentCSV,
		Root:              c.Root,
		SiteTitle:         c.SiteTitle,
		OutputPath:        c.YmlOut,
		CreatePages:       c.CreateStubs,
		ValidateOnly:      c.Validate,
		DryRun:            c.DryRun,
		SidebarStyle:      c.SidebarStyle,
		SidebarBackground: c.SidebarBackground,
		Themes:            [2]string{c.Theme1, c.Theme2},
		CSS:               c.CSS,
		TOC:               !c.NoTOC,
		PreRender:         c.PreRender,
		Watch:             c.Watch,
		MetricsFile:       c.MetricsFile,
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// useColor reports whether output to w may be colored. --no-color and
// NO_COLOR both turn it off.
func (c *CLI) useColor(w io.Writer) bool {
	if c.NoColor || color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
