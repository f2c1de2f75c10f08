package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/frontmatterops"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
)

func guideNode() *nav.Node {
	return &nav.Node{ID: "guide", Label: "Guide", Kind: nav.KindItem, FilePath: "docs/guide.qmd"}
}

func TestRender_SingleIframe(t *testing.T) {
	cfg := NewConfig(rec(2, "id", "guide", "template", "single_iframe", "iframe1_src", "https://x"))

	p, ok, err := Render(guideNode(), cfg)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, p.Autogen)

	want := "::: {layout=\"[ [1] ]\"}\n\n" +
		"```{=html}\n" +
		"<iframe style=\"border:none;\" height=\"800\" width=\"100%\" src=\"https://x\"></iframe>\n" +
		"```\n\n" +
		":::\n"
	require.Equal(t, want, p.Body)
	require.Equal(t, 1, strings.Count(p.Body, "<iframe"))

	page, err := p.Bytes()
	require.NoError(t, err)
	fields, body, had, err := frontmatterops.Read(page)
	require.NoError(t, err)
	require.True(t, had)
	require.True(t, frontmatterops.IsAutogen(fields))
	require.Equal(t, "Guide", fields["title"])
	present, matches, err := frontmatterops.VerifyFingerprint(fields, body)
	require.NoError(t, err)
	require.True(t, present)
	require.True(t, matches)
}

func TestRender_DoubleIframeWithIntroAndGrid(t *testing.T) {
	cfg := NewConfig(rec(2,
		"id", "guide",
		"template", "doble_iframe",
		"intro_md", "  Compare both maps.  ",
		"iframe1_src", "https://a",
		"iframe2_src", "https://b?x=1&y=2",
		"grid_body_width", "1400px",
		"grid_gutter_width", "1rem",
	))

	p, ok, err := Render(guideNode(), cfg)
	require.NoError(t, err)
	require.True(t, ok)

	require.True(t, strings.HasPrefix(p.Body, "Compare both maps.\n\n::: {layout=\"[ [1,1] ]\"}\n\n"))
	require.Equal(t, 2, strings.Count(p.Body, "```{=html}\n<iframe"))
	require.Contains(t, p.Body, `src="https://b?x=1&amp;y=2"`)

	page, err := p.Bytes()
	require.NoError(t, err)
	text := string(page)
	require.Contains(t, text, "format:\n  html:\n    grid:\n      body-width: 1400px\n      gutter-width: 1rem\n")
	require.NotContains(t, text, "sidebar-width")
	require.NotContains(t, text, "margin-width")
}

func TestRender_NumericGridWidthsAreBare(t *testing.T) {
	cfg := NewConfig(rec(2,
		"id", "guide",
		"template", "single_iframe",
		"iframe_src", "https://a",
		"grid_sidebar_width", "250",
		"grid_body_width", "900",
		"grid_margin_width", "12em",
	))

	p, ok, err := Render(guideNode(), cfg)
	require.NoError(t, err)
	require.True(t, ok)

	page, err := p.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(page), "    grid:\n      sidebar-width: 250\n      body-width: 900\n      margin-width: 12em\n")

	fields, body, had, err := frontmatterops.Read(page)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, 900, fields["format"].(map[string]any)["html"].(map[string]any)["grid"].(map[string]any)["body-width"])
	_, matches, err := frontmatterops.VerifyFingerprint(fields, body)
	require.NoError(t, err)
	require.True(t, matches)
}

func TestRender_HeaderFields(t *testing.T) {
	n := guideNode()
	n.Description = "How to use the portal"
	n.Draft = "yes"
	n.SearchExclude = "x"

	p, ok, err := Render(n, NewConfig(rec(2, "id", "guide", "template", "single_iframe")))
	require.NoError(t, err)
	require.True(t, ok)

	page, err := p.Bytes()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(page),
		"---\ntitle: \"Guide\"\ndescription: \"How to use the portal\"\ndraft: true\nsearch: false\nautogen: true\nfingerprint: "))
}

func TestRender_FallsBack(t *testing.T) {
	_, ok, err := Render(guideNode(), nil)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = Render(guideNode(), NewConfig(rec(2, "id", "guide", "template", "carousel")))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStub(t *testing.T) {
	landing := &nav.Node{ID: "data", Label: "Data", Kind: nav.KindLanding, FilePath: "portal/data/index.qmd"}
	children := []*nav.Node{
		{ID: "maps", Label: "Maps", Kind: nav.KindItem, FilePath: "portal/data/maps.qmd"},
		{ID: "sub", Label: "Archive", Kind: nav.KindSection, FilePath: "portal/data/archive/index.qmd"},
		{ID: "ext", Label: "EMODnet", Kind: nav.KindExternal, ExternalURL: "https://emodnet.ec.europa.eu"},
	}

	p := Stub(landing, children)
	require.False(t, p.Autogen)
	require.Equal(t, "## Contents\n\n"+
		"- [Maps](maps.qmd)\n"+
		"- [Archive](archive/index.qmd)\n"+
		"- [EMODnet](https://emodnet.ec.europa.eu)\n\n", p.Body)

	page, err := p.Bytes()
	require.NoError(t, err)
	require.Equal(t, "---\ntitle: \"Data\"\n---\n\n"+p.Body, string(page))
}

func TestStub_Placeholder(t *testing.T) {
	p := Stub(guideNode(), nil)
	require.Equal(t, "Content for **Guide**.\n", p.Body)

	navbar := &nav.Node{ID: "docs", Label: "Docs", Kind: nav.KindNavbar, FilePath: "docs/index.qmd"}
	p = Stub(navbar, []*nav.Node{guideNode()})
	require.Equal(t, "Content for **Docs**.\n", p.Body)
}

func TestStubHref_OutsideDirectory(t *testing.T) {
	n := &nav.Node{Kind: nav.KindSection, FilePath: "a/b/index.qmd"}
	child := &nav.Node{Kind: nav.KindItem, FilePath: "c/page.qmd"}
	require.Equal(t, "../../c/page.qmd", StubHref(n, child))
}
