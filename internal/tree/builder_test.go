package tree

import (
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirscope/dirscope/api"
	"github.com/dirscope/dirscope/internal/ramp"
	"github.com/dirscope/dirscope/internal/scan"
)

func buildFixture(t *testing.T) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/root/A", 0o755))
	require.NoError(t, fs.MkdirAll("/root/B", 0o755))
	require.NoError(t, util.WriteFile(fs, "/root/A/data.bin", make([]byte, 2048), 0o644))
	return fs
}

func TestBuild_SiblingsOneEmpty(t *testing.T) {
	fs := buildFixture(t)
	res := scan.Scan(fs, "/root")
	nodes, rootID := Build(fs, "/root", res, ramp.Default())

	require.Len(t, nodes, 3)
	root := nodes[rootID]
	require.NotNil(t, root)
	assert.Equal(t, "root", root.Name)
	assert.Equal(t, "/root", root.Path)
	assert.Empty(t, root.Parent)

	aID := api.NodeID("/root/A")
	bID := api.NodeID("/root/B")
	assert.Equal(t, []string{aID, bID}, root.Children, "children sorted lexicographically")

	a := nodes[aID]
	require.NotNil(t, a)
	assert.Equal(t, int64(2048), a.Size)
	assert.Equal(t, "2.0 KB", a.FormattedSize)
	assert.Equal(t, rootID, a.Parent)
	assert.Empty(t, a.Children)
	assert.NotNil(t, a.Children, "children serialize as an empty array, never null")

	b := nodes[bID]
	require.NotNil(t, b)
	assert.Equal(t, int64(0), b.Size)
	assert.Equal(t, "0 B", b.FormattedSize)
}

func TestBuild_DegenerateRangeIsAllYellow(t *testing.T) {
	fs := buildFixture(t)
	res := scan.Scan(fs, "/root")
	// Only one non-zero size observed, so min == max.
	nodes, _ := Build(fs, "/root", res, ramp.Default())
	for _, n := range nodes {
		assert.Equal(t, "#ffff00", n.Color)
	}
}

func TestBuild_ColorsSpanTheRamp(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/r/small", 0o755))
	require.NoError(t, fs.MkdirAll("/r/big", 0o755))
	require.NoError(t, util.WriteFile(fs, "/r/small/f", make([]byte, 10), 0o644))
	require.NoError(t, util.WriteFile(fs, "/r/big/f", make([]byte, 10000), 0o644))

	res := scan.Scan(fs, "/r")
	nodes, _ := Build(fs, "/r", res, ramp.Default())
	assert.Equal(t, "#008000", nodes[api.NodeID("/r/small")].Color, "minimum gets the low color")
	assert.Equal(t, "#c80000", nodes[api.NodeID("/r/big")].Color, "maximum gets the high color")
}

func TestBuild_TreeInvariants(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/r/a/b/c", 0o755))
	require.NoError(t, fs.MkdirAll("/r/d", 0o755))

	res := scan.Scan(fs, "/r")
	nodes, rootID := Build(fs, "/r", res, ramp.Default())

	parentless := 0
	seenAsChild := make(map[string]int)
	for id, n := range nodes {
		assert.Equal(t, id, n.ID)
		if n.Parent == "" {
			parentless++
		} else {
			assert.Contains(t, nodes, n.Parent, "parent of %s must exist", id)
		}
		for _, c := range n.Children {
			seenAsChild[c]++
		}
	}
	assert.Equal(t, 1, parentless, "exactly one node has no parent")
	for id := range nodes {
		if id == rootID {
			assert.Zero(t, seenAsChild[id], "root never appears as a child")
			continue
		}
		assert.Equal(t, 1, seenAsChild[id], "%s must appear exactly once as a child", id)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	fs := buildFixture(t)
	res := scan.Scan(fs, "/root")
	first, firstRoot := Build(fs, "/root", res, ramp.Default())
	second, secondRoot := Build(fs, "/root", scan.Scan(fs, "/root"), ramp.Default())

	assert.Equal(t, firstRoot, secondRoot)
	assert.Equal(t, first, second, "ids, sizes, and colors are reproducible")
}
