// Package tree converts scanned directory sizes into the flat node
// mapping the document renderer serializes.
package tree

import (
	"path/filepath"
	"sort"

	billy "github.com/go-git/go-billy/v5"

	"github.com/dirscope/dirscope/api"
	"github.com/dirscope/dirscope/internal/ramp"
	"github.com/dirscope/dirscope/internal/scan"
)

// Build constructs one api.Node per directory under root, keyed by id.
// Children are linked in case-sensitive lexicographic order of their
// names, so repeated runs over an unchanged tree produce identical
// documents. Listing failures are swallowed the same way the scanner
// swallows them: the node simply records no children. Returns the flat
// mapping and the root node's id.
func Build(fs billy.Filesystem, root string, res *scan.Result, r ramp.Ramp) (map[string]*api.Node, string) {
	nodes := make(map[string]*api.Node)
	rootID := build(fs, root, "", nodes, res, r)
	return nodes, rootID
}

func build(fs billy.Filesystem, dir, parentID string, nodes map[string]*api.Node, res *scan.Result, r ramp.Ramp) string {
	id := api.NodeID(dir)
	size := res.Sizes[dir]
	node := &api.Node{
		ID:            id,
		Name:          filepath.Base(dir),
		Path:          dir,
		Size:          size,
		FormattedSize: api.FormatSize(size),
		Color:         r.ColorFor(size, res.Min, res.Max),
		Children:      []string{},
		Parent:        parentID,
	}
	nodes[id] = node

	entries, err := fs.ReadDir(dir)
	if err != nil {
		return id
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		node.Children = append(node.Children, build(fs, fs.Join(dir, name), id, nodes, res, r))
	}
	return id
}
