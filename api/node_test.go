package api

import "testing"

func TestNodeID_StableAndShort(t *testing.T) {
	// md5 of the path, first 8 hex chars, node_ prefix.
	id := NodeID("/tmp/example")
	if id != "node_89a35363" {
		t.Errorf("NodeID(/tmp/example) = %q, want node_89a35363", id)
	}
	if id != NodeID("/tmp/example") {
		t.Error("NodeID is not stable across calls")
	}
	if NodeID("/tmp/example") == NodeID("/tmp/example2") {
		t.Error("distinct paths produced the same id")
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{2048, "2.0 KB"},
		{1000000, "976.56 KB"},
		{1024 * 1024, "1.0 MB"},
		{1024 * 1024 * 1024, "1.0 GB"},
		{1024 * 1024 * 1024 * 1024, "1.0 TB"},
		{5 * 1024 * 1024 * 1024 * 1024, "5.0 TB"},
	}
	for _, c := range cases {
		if got := FormatSize(c.in); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
