package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/records"
)

func TestNewSet_LaterRecordWins(t *testing.T) {
	s := NewSet([]records.Record{
		rec(2, "id", "a", "template", "single_iframe"),
		rec(3, "template", "doble_iframe"),
		rec(4, "id", "b", "template", "doble_iframe"),
		rec(5, "id", "a", "template", "doble_iframe"),
	})
	require.Equal(t, 2, s.Len())
	require.Equal(t, TemplateDoubleIframe, s.Lookup("a").Template)
	require.Equal(t, 5, s.Lookup("a").Line)
	require.Nil(t, s.Lookup("missing"))

	var ids []string
	for _, c := range s.All() {
		ids = append(ids, c.ID)
	}
	require.Equal(t, []string{"a", "b"}, ids)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is empty", func(t *testing.T) {
		s, err := Load(filepath.Join(dir, "page_content.csv"))
		require.NoError(t, err)
		require.Equal(t, 0, s.Len())
	})

	t.Run("no path is empty", func(t *testing.T) {
		s, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 0, s.Len())
	})

	t.Run("unreadable is reported but empty", func(t *testing.T) {
		s, err := Load(dir)
		require.Error(t, err)
		require.Equal(t, 0, s.Len())
	})

	t.Run("semicolon file", func(t *testing.T) {
		path := filepath.Join(dir, "content.csv")
		require.NoError(t, os.WriteFile(path, []byte("id;template;iframe1_src\nmap;single_iframe;https://maps.example\n"), 0o600))
		s, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "https://maps.example", s.Lookup("map").Frame(1).Src)
	})
}
