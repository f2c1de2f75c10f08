package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/errors"
)

const sampleNodes = `id,parent_id,label,kind,order,sidebar_as,external_url
docs,,Docs,navbar,1,,
about,,About,navbar,0,,
guide,docs,Guide,item,,,
intro,docs,intro,item,2,,
Alpha,docs,alpha,item,2,,
overview,docs,Overview,landing,1,,
ref,overview,Reference,section,,,
api,ref,API,item,,,
gh,docs,GitHub,external,5,,https://github.com/openearth
orphan,,Orphan,item,,,
`

func TestBuild_SiblingOrder(t *testing.T) {
	tree := mustTree(t, sampleNodes)

	// order ascending, then lowercased label; ties keep input order.
	require.Equal(t, []string{"overview", "Alpha", "intro", "gh", "guide"}, tree.Children["docs"])
	require.Equal(t, []string{"overview", "Alpha", "intro", "gh", "guide"}, ids(tree.ChildrenOf("docs")))
	require.True(t, tree.HasChildren("overview"))
	require.False(t, tree.HasChildren("guide"))
}

func TestBuild_EveryChildParentExists(t *testing.T) {
	tree := mustTree(t, sampleNodes)
	for pid, kids := range tree.Children {
		require.NotNil(t, tree.Node(pid))
		for _, cid := range kids {
			require.Equal(t, pid, tree.Node(cid).ParentID)
		}
	}
	require.Equal(t, 10, tree.Len())
	require.Equal(t, "docs", tree.All()[0].ID)
}

func TestBuild_Roots(t *testing.T) {
	tree := mustTree(t, sampleNodes)
	require.Equal(t, []string{"about", "docs"}, ids(tree.Roots()))

	roots, err := tree.RequireRoots()
	require.NoError(t, err)
	require.Len(t, roots, 2)
}

func TestBuild_DetachedNodesAreNotRoots(t *testing.T) {
	tree := mustTree(t, sampleNodes)
	require.Equal(t, []string{"orphan"}, ids(tree.Detached()))
	for _, r := range tree.Roots() {
		require.NotEqual(t, "orphan", r.ID)
	}
}

func TestBuild_NoRoots(t *testing.T) {
	tree := mustTree(t, "id,label,kind\na,A,item\n")
	_, err := tree.RequireRoots()
	require.Error(t, err)
	require.True(t, errors.IsFatal(err))
}

func TestBuild_FatalErrors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		message string
		context map[string]any
	}{
		{
			name:    "duplicate id",
			csv:     "id,label,kind\ndocs,Docs,navbar\ndocs,Again,navbar\n",
			message: "duplicate node id",
			context: map[string]any{"id": "docs", "line": 3},
		},
		{
			name:    "unknown parent",
			csv:     "id,parent_id,label,kind\ndocs,,Docs,navbar\nguide,nope,Guide,item\n",
			message: "parent_id not found",
			context: map[string]any{"id": "guide", "parent_id": "nope", "line": 3},
		},
		{
			name:    "missing field",
			csv:     "id,label,kind\ndocs,,navbar\n",
			message: "missing required column(s) label",
			context: map[string]any{"line": 2},
		},
		{
			name:    "cycle",
			csv:     "id,parent_id,label,kind\ndocs,,Docs,navbar\na,b,A,section\nb,a,B,section\n",
			message: "cycle",
			context: map[string]any{"id": "a", "line": 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(readRecords(t, tt.csv))
			require.Error(t, err)
			require.True(t, errors.IsFatal(err))
			require.Contains(t, err.Error(), tt.message)
			for k, want := range tt.context {
				got, ok := errors.ContextValue(err, k)
				require.True(t, ok, k)
				require.Equal(t, want, got, k)
			}
		})
	}
}

func TestAncestry(t *testing.T) {
	tree := mustTree(t, sampleNodes)
	require.Equal(t, []string{"docs", "overview", "ref", "api"}, ids(tree.Ancestry(tree.Node("api"))))
	require.Equal(t, []string{"docs"}, ids(tree.Ancestry(tree.Node("docs"))))
}
