package frontmatterops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/frontmatter"
)

func TestRead_NoFrontmatter_ReturnsEmptyFieldsAndBody(t *testing.T) {
	input := []byte("Content for **Guide**.\n")

	fields, body, had, err := Read(input)
	require.NoError(t, err)
	require.False(t, had)
	require.NotNil(t, fields)
	require.Empty(t, fields)
	require.Equal(t, input, body)
}

func TestRead_ParsesHeader(t *testing.T) {
	fields, body, had, err := Read([]byte("---\ntitle: \"Guide\"\nautogen: true\n---\n\nbody\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "Guide", fields["title"])
	require.Equal(t, true, fields["autogen"])
	require.Equal(t, "\nbody\n", string(body))
}

func TestRead_MissingClosingDelimiter(t *testing.T) {
	_, _, _, err := Read([]byte("---\ntitle: x\n"))
	require.True(t, errors.Is(err, frontmatter.ErrMissingClosingDelimiter))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.qmd")
	require.NoError(t, os.WriteFile(path, []byte("---\ntitle: Docs\n---\n"), 0o600))

	fields, _, had, err := ReadFile(path)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "Docs", fields["title"])

	_, _, _, err = ReadFile(filepath.Join(t.TempDir(), "missing.qmd"))
	require.Error(t, err)
}
