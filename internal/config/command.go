package config

import (
	"strings"
)

// Program is the executable name used in the regeneration command.
const Program = "quartonav"

// RegenerationCommand is the command the site generator runs before each
// render to rebuild the configuration and pages. An explicit PreRender wins;
// otherwise every option that differs from its default is repeated.
func (c *Config) RegenerationCommand() string {
	if c.PreRender != "" {
		return c.PreRender
	}

	args := []string{Program, c.NodesPath, "--yml-out", c.OutputPath, "--create-stubs"}
	add := func(flag, value, def string) {
		if value != "" && value != def {
			args = append(args, flag, value)
		}
	}
	if c.ContentPath == "" {
		args = append(args, "--content-csv", "")
	} else {
		add("--content-csv", c.ContentPath, DefaultContentPath)
	}
	add("--site-title", c.SiteTitle, DefaultSiteTitle)
	add("--root", c.Root, DefaultRoot)
	add("--sidebar-style", c.SidebarStyle, "")
	add("--sidebar-background", c.SidebarBackground, "")
	add("--theme1", c.Themes[0], DefaultTheme1)
	add("--theme2", c.Themes[1], DefaultTheme2)
	add("--css", c.CSS, DefaultCSS)
	if !c.TOC {
		args = append(args, "--no-toc")
	}

	for i, a := range args {
		args[i] = shellQuote(a)
	}
	return strings.Join(args, " ")
}

// shellQuote single-quotes s when a POSIX shell would otherwise split or
// expand it.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`&|;<>()*?[]#~!{}") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
