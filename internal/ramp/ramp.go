// Package ramp maps directory sizes onto a three-stop color gradient.
package ramp

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is one color stop.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as a 6-hex-digit string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Ramp is a low/mid/high color gradient over the observed size range.
type Ramp struct {
	Low  RGB
	Mid  RGB
	High RGB
}

// Default is the green -> yellow -> red ramp.
func Default() Ramp {
	return Ramp{
		Low:  RGB{0, 128, 0},
		Mid:  RGB{255, 255, 0},
		High: RGB{200, 0, 0},
	}
}

// ColorFor maps a size into the ramp, normalized against the observed
// min/max directory sizes. Sizes in the lower half interpolate between
// Low and Mid, the upper half between Mid and High; channels are
// truncated to integers. When the range is degenerate (all directories
// the same size, or nothing non-empty was found) every node gets the
// mid color.
func (r Ramp) ColorFor(size, min, max int64) string {
	if max <= min {
		return r.Mid.Hex()
	}
	t := float64(size-min) / float64(max-min)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	from, to := r.Low, r.Mid
	f := t * 2
	if t > 0.5 {
		from, to = r.Mid, r.High
		f = (t - 0.5) * 2
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + f*(float64(b)-float64(a)))
	}
	return RGB{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
	}.Hex()
}
