// Package config holds the run configuration of the navigation generator:
// defaults, normalization, validation and .env loading.
package config

import (
	"path/filepath"
)

// Config is the validated run configuration.
type Config struct {
	// NodesPath is the navigation records file.
	NodesPath string
	// ContentPath is the optional content records file.
	ContentPath string
	// Root is the project root; page paths and a relative OutputPath resolve under it.
	Root string

	SiteTitle  string
	OutputPath string

	CreatePages  bool
	ValidateOnly bool
	DryRun       bool

	SidebarStyle      string
	SidebarBackground string
	Themes            [2]string
	CSS               string
	TOC               bool

	// PreRender overrides the derived regeneration command.
	PreRender string

	Watch       bool
	MetricsFile string
}

// OutputFile is the path the configuration document is written to.
func (c *Config) OutputFile() string {
	if filepath.IsAbs(c.OutputPath) {
		return c.OutputPath
	}
	return filepath.Join(c.Root, filepath.FromSlash(c.OutputPath))
}

// Resources lists the input files the site ships, as given on the command line.
func (c *Config) Resources() []string {
	out := []string{filepath.ToSlash(c.NodesPath)}
	if c.ContentPath != "" {
		out = append(out, filepath.ToSlash(c.ContentPath))
	}
	return out
}

// InputPaths lists the files watch mode observes.
func (c *Config) InputPaths() []string {
	return []string{c.NodesPath, c.ContentPath}
}
