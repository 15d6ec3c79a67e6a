// Package config loads the optional HCL settings file that overrides
// the document's geometry constants and color ramp.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/dirscope/dirscope/internal/ramp"
)

// Settings controls document geometry and the size color ramp.
type Settings struct {
	NodeWidth     int
	NodeHeight    int
	NodeRadius    int
	VerticalGap   int
	HorizontalGap int
	Ramp          ramp.Ramp
}

// Defaults returns the built-in geometry and the green/yellow/red ramp.
func Defaults() Settings {
	return Settings{
		NodeWidth:     220,
		NodeHeight:    40,
		NodeRadius:    10,
		VerticalGap:   45,
		HorizontalGap: 45,
		Ramp:          ramp.Default(),
	}
}

type fileConfig struct {
	Ramp   *rampBlock   `hcl:"ramp,block"`
	Layout *layoutBlock `hcl:"layout,block"`
}

type rampBlock struct {
	Low  *string `hcl:"low,optional"`
	Mid  *string `hcl:"mid,optional"`
	High *string `hcl:"high,optional"`
}

type layoutBlock struct {
	NodeWidth     *int `hcl:"node_width,optional"`
	NodeHeight    *int `hcl:"node_height,optional"`
	NodeRadius    *int `hcl:"node_radius,optional"`
	VerticalGap   *int `hcl:"vertical_gap,optional"`
	HorizontalGap *int `hcl:"horizontal_gap,optional"`
}

// Load reads an HCL settings file and applies it over the defaults.
// Both blocks and every attribute inside them are optional.
func Load(path string) (Settings, error) {
	s := Defaults()
	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return s, fmt.Errorf("load settings %s: %w", path, err)
	}
	if fc.Ramp != nil {
		for _, c := range []struct {
			dst *ramp.RGB
			src *string
		}{
			{&s.Ramp.Low, fc.Ramp.Low},
			{&s.Ramp.Mid, fc.Ramp.Mid},
			{&s.Ramp.High, fc.Ramp.High},
		} {
			if c.src == nil {
				continue
			}
			parsed, err := ramp.ParseHex(*c.src)
			if err != nil {
				return s, fmt.Errorf("load settings %s: %w", path, err)
			}
			*c.dst = parsed
		}
	}
	if fc.Layout != nil {
		applyInt(&s.NodeWidth, fc.Layout.NodeWidth)
		applyInt(&s.NodeHeight, fc.Layout.NodeHeight)
		applyInt(&s.NodeRadius, fc.Layout.NodeRadius)
		applyInt(&s.VerticalGap, fc.Layout.VerticalGap)
		applyInt(&s.HorizontalGap, fc.Layout.HorizontalGap)
	}
	return s, nil
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
