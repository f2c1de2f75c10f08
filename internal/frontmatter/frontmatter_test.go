package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("Content for **Guide**.\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_PageHeader_SplitsHeaderAndBody(t *testing.T) {
	input := []byte("---\ntitle: \"Guide\"\nautogen: true\n---\n\n::: {layout=\"[ [1] ]\"}\n")

	fm, body, had, _, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: \"Guide\"\nautogen: true\n", string(fm))
	require.Equal(t, "\n::: {layout=\"[ [1] ]\"}\n", string(body))
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	_, _, had, _, err := Split([]byte("---\ntitle: x\nContent\n"))
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_HeaderClosedAtEOF(t *testing.T) {
	fm, body, had, _, err := Split([]byte("---\ntitle: x\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: x\n", string(fm))
	require.Empty(t, body)
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: x\r\n---\r\nbody\r\n")

	fm, body, had, style, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "\r\n", style.Newline)
	require.Equal(t, "title: x\r\n", string(fm))
	require.Equal(t, "body\r\n", string(body))
}

func TestJoin_RoundTrip_ReconstructsOriginalBytes(t *testing.T) {
	cases := [][]byte{
		[]byte("Content for **Guide**.\n"),
		[]byte("---\ntitle: \"Guide\"\n---\n\nbody\n"),
		[]byte("---\n---\nbody\n"),
		[]byte("---\r\ntitle: x\r\n---\r\nbody\r\n"),
	}

	for _, input := range cases {
		fm, body, had, style, err := Split(input)
		require.NoError(t, err)
		require.Equal(t, input, Join(fm, body, had, style))
	}
}

func TestParseYAML(t *testing.T) {
	fields, err := ParseYAML([]byte("title: Guide\nautogen: true\nformat:\n  html:\n    grid:\n      body-width: 900px\n"))
	require.NoError(t, err)
	require.Equal(t, "Guide", fields["title"])
	require.Equal(t, true, fields["autogen"])
	require.IsType(t, map[string]any{}, fields["format"])

	fields, err = ParseYAML([]byte("  \n"))
	require.NoError(t, err)
	require.Empty(t, fields)

	_, err = ParseYAML([]byte(": not yaml"))
	require.Error(t, err)
}
