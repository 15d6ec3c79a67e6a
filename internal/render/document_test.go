package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirscope/dirscope/api"
	"github.com/dirscope/dirscope/internal/config"
)

func sampleDocument() *Document {
	rootID := api.NodeID("/data/projects")
	childID := api.NodeID("/data/projects/api")
	return &Document{
		Nodes: map[string]*api.Node{
			rootID: {
				ID:            rootID,
				Name:          "projects",
				Path:          "/data/projects",
				Size:          2048,
				FormattedSize: "2.0 KB",
				Color:         "#ffff00",
				Children:      []string{childID},
			},
			childID: {
				ID:            childID,
				Name:          "api",
				Path:          "/data/projects/api",
				Size:          2048,
				FormattedSize: "2.0 KB",
				Color:         "#ffff00",
				Children:      []string{},
				Parent:        rootID,
			},
		},
		MinSize:  2048,
		MaxSize:  2048,
		Settings: config.Defaults(),
	}
}

func renderToString(t *testing.T, d *Document) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))
	return buf.String()
}

func TestRender_SelfContainedDocument(t *testing.T) {
	out := renderToString(t, sampleDocument())

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<svg id=\"directory-tree\"")
	assert.Contains(t, out, "const treeData = {")

	// The interaction script ships inside the document.
	for _, fn := range []string{
		"function renderTree()",
		"function calculateNodePositions()",
		"function renderConnections()",
		"function collapseSubtree(",
		"function toggleNode(",
		"function searchNodes(",
		"function updateSVGSize()",
	} {
		assert.Contains(t, out, fn)
	}

	// No external resources: everything is inline.
	assert.NotContains(t, out, "<link")
	assert.NotContains(t, out, "<script src")
	assert.NotContains(t, out, "@import")
}

func TestRender_GeometryAndLegend(t *testing.T) {
	d := sampleDocument()
	d.Settings.NodeWidth = 300
	d.Settings.VerticalGap = 60
	out := renderToString(t, d)

	assert.Contains(t, out, "const nodeWidth = 300;")
	assert.Contains(t, out, "let verticalGap = 60;")
	assert.Contains(t, out, "Small (2.0 KB)")
	assert.Contains(t, out, "Large (2.0 KB)")
	assert.Contains(t, out, "linear-gradient(to right, #008000, #ffff00, #c80000)")
}

func TestRender_LegendMinFallsBackToZero(t *testing.T) {
	d := sampleDocument()
	d.MinSize = math.MaxInt64 // nothing non-empty was scanned
	out := renderToString(t, d)
	assert.Contains(t, out, "Small (0 B)")
}

func TestRender_EmbeddedTreeDataRoundTrips(t *testing.T) {
	d := sampleDocument()
	out := renderToString(t, d)

	const marker = "const treeData = "
	start := strings.Index(out, marker)
	require.GreaterOrEqual(t, start, 0)
	rest := out[start+len(marker):]
	end := strings.Index(rest, ";\n")
	require.GreaterOrEqual(t, end, 0)

	var decoded map[string]api.Node
	require.NoError(t, json.Unmarshal([]byte(rest[:end]), &decoded))
	require.Len(t, decoded, 2)

	rootID := api.NodeID("/data/projects")
	root := decoded[rootID]
	assert.Equal(t, "projects", root.Name)
	assert.Equal(t, "2.0 KB", root.FormattedSize)
	assert.Empty(t, root.Parent, "root's parent serializes falsy so the client can find it")
	assert.Equal(t, []string{api.NodeID("/data/projects/api")}, root.Children)

	// Leaf children must be an array, not null, for the client script.
	assert.Contains(t, rest[:end], "\"children\":[]")
}

func TestRender_PayloadCannotCloseScriptElement(t *testing.T) {
	d := sampleDocument()
	rootID := api.NodeID("/data/projects")
	d.Nodes[rootID].Name = "evil</script>"

	out := renderToString(t, d)
	const marker = "const treeData = "
	start := strings.Index(out, marker)
	require.GreaterOrEqual(t, start, 0)
	rest := out[start+len(marker):]
	end := strings.Index(rest, ";\n")
	require.GreaterOrEqual(t, end, 0)
	payload := rest[:end]

	assert.NotContains(t, payload, "</script>")
	assert.Contains(t, payload, `<\/script>`)

	// "<\/" is still valid JSON, so the client parses the name intact.
	var decoded map[string]api.Node
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, "evil</script>", decoded[rootID].Name)
}

func TestWriteFile_AtomicRename(t *testing.T) {
	fs := memfs.New()
	d := sampleDocument()

	require.NoError(t, d.WriteFile(fs, "/out/tree.html"))

	info, err := fs.Stat("/out/tree.html")
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = fs.Stat("/out/tree.html.tmp")
	assert.Error(t, err, "temporary file must not survive a successful write")
}

func TestOutputPath(t *testing.T) {
	cases := []struct {
		dir, out, want string
	}{
		{"/data", "directory_structure.html", "/data/directory_structure.html"},
		{"/data", "viz.svg", "/data/viz.html"},
		{"/data", "/abs/viz.html", "/abs/viz.html"},
		{"/data", "/abs/viz.svg", "/abs/viz.html"},
		{"/data", "nested/out.html", "/data/nested/out.html"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, OutputPath(c.dir, c.out), "OutputPath(%q, %q)", c.dir, c.out)
	}
}
