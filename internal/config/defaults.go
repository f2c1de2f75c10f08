package config

// Defaults of the command-line surface.
const (
	DefaultNodesPath   = "nodes.csv"
	DefaultContentPath = "page_content.csv"
	DefaultRoot        = "."
	DefaultSiteTitle   = "NESBp"
	DefaultOutputPath  = "_quarto.yml"
	DefaultTheme1      = "cosmo"
	DefaultTheme2      = "brand"
	DefaultCSS         = "styles.css"
)

// Default returns a Config with every default applied.
func Default() Config {
	return Config{
		NodesPath:   DefaultNodesPath,
		ContentPath: DefaultContentPath,
		Root:        DefaultRoot,
		SiteTitle:   DefaultSiteTitle,
		OutputPath:  DefaultOutputPath,
		Themes:      [2]string{DefaultTheme1, DefaultTheme2},
		CSS:         DefaultCSS,
		TOC:         true,
	}
}
