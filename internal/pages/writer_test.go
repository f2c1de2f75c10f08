package pages

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/content"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/errors"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/nav"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/records"
)

func mapNode() *nav.Node {
	return &nav.Node{ID: "map", Label: "Map", Kind: nav.KindItem, FilePath: "portal/map.qmd"}
}

func iframePage(t *testing.T, n *nav.Node, src string) content.Page {
	t.Helper()
	cfg := content.NewConfig(records.Record{Line: 2, Fields: map[string]string{
		"id": n.ID, "template": "single_iframe", "iframe1_src": src,
	}})
	p, ok, err := content.Render(n, cfg)
	require.NoError(t, err)
	require.True(t, ok)
	return p
}

func readPage(t *testing.T, root string, n *nav.Node) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(n.FilePath)))
	require.NoError(t, err)
	return string(data)
}

func TestWriter_TemplateLifecycle(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	n := mapNode()

	res, err := w.Write(n, iframePage(t, n, "https://one"))
	require.NoError(t, err)
	require.Equal(t, OutcomeCreated, res.Outcome)
	require.Equal(t, "Wrote content for portal/map.qmd (single_iframe)", res.Message())
	require.Contains(t, readPage(t, root, n), "https://one")

	res, err = w.Write(n, iframePage(t, n, "https://one"))
	require.NoError(t, err)
	require.Equal(t, OutcomeUnchanged, res.Outcome)
	require.Equal(t, "portal/map.qmd unchanged", res.Message())

	res, err = w.Write(n, iframePage(t, n, "https://two"))
	require.NoError(t, err)
	require.Equal(t, OutcomeRefreshed, res.Outcome)
	require.False(t, res.Edited)
	require.Contains(t, readPage(t, root, n), "https://two")
}

func TestWriter_EditedGeneratedPageIsRefreshed(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	n := mapNode()

	_, err := w.Write(n, iframePage(t, n, "https://one"))
	require.NoError(t, err)

	path := filepath.Join(root, "portal", "map.qmd")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("\nA note someone added.\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	res, err := w.Write(n, iframePage(t, n, "https://one"))
	require.NoError(t, err)
	require.Equal(t, OutcomeRefreshed, res.Outcome)
	require.True(t, res.Edited)
	require.NotContains(t, readPage(t, root, n), "A note someone added.")
}

func TestWriter_ManualPageIsNeverModified(t *testing.T) {
	root := t.TempDir()
	n := mapNode()
	path := filepath.Join(root, "portal", "map.qmd")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	manual := "---\ntitle: Map\n---\n\nHand written.\n"
	require.NoError(t, os.WriteFile(path, []byte(manual), 0o600))

	res, err := NewWriter(root).Write(n, iframePage(t, n, "https://one"))
	require.NoError(t, err)
	require.Equal(t, OutcomeSkippedManual, res.Outcome)
	require.Equal(t, "Skip content write (manual page): portal/map.qmd", res.Message())
	require.Equal(t, manual, readPage(t, root, n))
}

func TestWriter_StubWrittenOnce(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	n := mapNode()

	res, err := w.Write(n, content.Stub(n, nil))
	require.NoError(t, err)
	require.Equal(t, OutcomeCreated, res.Outcome)
	require.Equal(t, "Created stub portal/map.qmd", res.Message())
	require.Equal(t, "---\ntitle: \"Map\"\n---\n\nContent for **Map**.\n", readPage(t, root, n))

	n.Description = "changed"
	res, err = w.Write(n, content.Stub(n, nil))
	require.NoError(t, err)
	require.Equal(t, OutcomeSkippedExisting, res.Outcome)
	require.NotContains(t, readPage(t, root, n), "changed")
}

func TestWriter_StubDoesNotReplaceGeneratedPage(t *testing.T) {
	root := t.TempDir()
	w := NewWriter(root)
	n := mapNode()

	_, err := w.Write(n, iframePage(t, n, "https://one"))
	require.NoError(t, err)

	res, err := w.Write(n, content.Stub(n, nil))
	require.NoError(t, err)
	require.Equal(t, OutcomeSkippedExisting, res.Outcome)
	require.Contains(t, readPage(t, root, n), "https://one")
}

func TestWriter_RefusesPathsOutsideRoot(t *testing.T) {
	n := &nav.Node{ID: "evil", Label: "Evil", Kind: nav.KindItem, FilePath: "../escape.qmd"}
	_, err := NewWriter(t.TempDir()).Write(n, content.Stub(n, nil))
	require.Error(t, err)
	require.True(t, errors.IsCategory(err, errors.CategoryFileSystem))
}
