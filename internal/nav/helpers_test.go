package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/records"
)

func readRecords(t *testing.T, csv string) []records.Record {
	t.Helper()
	recs, err := records.Read(strings.NewReader(csv))
	require.NoError(t, err)
	return recs
}

func mustTree(t *testing.T, csv string) *Tree {
	t.Helper()
	tree, err := Build(readRecords(t, csv))
	require.NoError(t, err)
	return tree
}

func ids(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}
