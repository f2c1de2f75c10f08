package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims every string option and fills empty required ones with
// their defaults. The content path stays empty when explicitly cleared.
func (c *Config) Normalize() {
	for _, s := range []*string{
		&c.NodesPath, &c.ContentPath, &c.Root, &c.SiteTitle, &c.OutputPath,
		&c.SidebarStyle, &c.SidebarBackground, &c.Themes[0], &c.Themes[1],
		&c.CSS, &c.PreRender, &c.MetricsFile,
	} {
		*s = strings.TrimSpace(*s)
	}

	setDefault(&c.NodesPath, DefaultNodesPath)
	setDefault(&c.Root, DefaultRoot)
	setDefault(&c.SiteTitle, DefaultSiteTitle)
	setDefault(&c.OutputPath, DefaultOutputPath)
	setDefault(&c.Themes[0], DefaultTheme1)
	setDefault(&c.Themes[1], DefaultTheme2)
	setDefault(&c.CSS, DefaultCSS)

	c.Root = filepath.Clean(c.Root)
}

func setDefault(s *string, def string) {
	if *s == "" {
		*s = def
	}
}
