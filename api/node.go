// Package api defines the data contract between the host-side scan
// pipeline and the embedded document renderer. The node mapping
// produced here is serialized wholesale into the output document and
// consumed as immutable data by the client-side script.
package api

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Node is one directory's representation in the serialized tree.
// Wire names match what the embedded script reads.
type Node struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Path          string   `json:"path"`
	Size          int64    `json:"size"`
	FormattedSize string   `json:"formatted_size"`
	Color         string   `json:"color"`
	Children      []string `json:"children"`
	Parent        string   `json:"parent,omitempty"`
}

// NodeID derives a stable identifier from an absolute path. The same
// path always yields the same id, so repeated generation over an
// unchanged tree is reproducible. Eight hex characters are enough for
// single-tree uniqueness; this is not a cryptographic guarantee.
func NodeID(path string) string {
	sum := md5.Sum([]byte(path))
	return "node_" + hex.EncodeToString(sum[:])[:8]
}

const sizeDivisor = 1024

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count in binary units with two-decimal
// rounding. Whole bytes carry no decimal ("1023 B"); larger units keep
// at least one ("1.0 KB", "976.56 KB").
func FormatSize(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	exp := 0
	v := float64(n)
	for v >= sizeDivisor && exp < len(sizeUnits)-1 {
		v /= sizeDivisor
		exp++
	}
	if exp == 0 {
		return fmt.Sprintf("%d B", n)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	// 2.00 -> 2.0 but 976.56 stays as is.
	s = strings.TrimSuffix(s, "0")
	return s + " " + sizeUnits[exp]
}
