// Package scan computes per-directory disk usage for a filesystem
// subtree in a single post-order walk.
package scan

import (
	"math"

	billy "github.com/go-git/go-billy/v5"
)

// Result holds the byte total for every directory visited plus the
// observed bounds used later for color normalization.
type Result struct {
	Sizes map[string]int64 // absolute directory path -> total bytes
	Min   int64            // smallest non-zero total (math.MaxInt64 when none)
	Max   int64            // largest total, floored at 1
}

// Scan walks the tree rooted at root depth-first and records each
// directory's total size: its direct regular files plus the
// already-computed totals of its subdirectories. Aggregating bottom-up
// keeps a parent's size exactly equal to the sum of what lies beneath
// it, even when parts of the tree are unreadable.
//
// Failures are never fatal: an unlistable directory contributes
// nothing below the failure point, and entries that cannot be statted
// count as zero.
func Scan(fs billy.Filesystem, root string) *Result {
	res := &Result{
		Sizes: make(map[string]int64),
		Min:   math.MaxInt64,
		Max:   1,
	}
	scanDir(fs, root, res)
	return res
}

func scanDir(fs billy.Filesystem, dir string, res *Result) int64 {
	var total int64
	if entries, err := fs.ReadDir(dir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				total += scanDir(fs, fs.Join(dir, entry.Name()), res)
			} else if entry.Mode().IsRegular() {
				total += entry.Size()
			}
		}
	}
	res.Sizes[dir] = total
	if total > 0 && total < res.Min {
		res.Min = total
	}
	if total > res.Max {
		res.Max = total
	}
	return total
}
