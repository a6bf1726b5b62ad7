package electionmaps

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Color is a CSS hex color such as "#9DF4D9".
type Color string

// NeutralColor is used for anything without data.
const NeutralColor Color = "#CECECE"

// RGBA parses c. Both #rgb and #rrggbb forms are accepted.
func (c Color) RGBA() (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(string(c)), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("electionmaps: invalid color %q", string(c))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("electionmaps: invalid color %q", string(c))
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// PaintKind selects how a Paint maps values to colors.
type PaintKind string

const (
	// Categorical matches a label against a fixed list.
	Categorical PaintKind = "categorical"
	// Step buckets a number by ascending thresholds.
	Step PaintKind = "step"
)

// Category is one label of a categorical paint.
type Category struct {
	Label string `yaml:"label"`
	Color Color  `yaml:"color"`
}

// Threshold starts a bucket at Min (inclusive).
type Threshold struct {
	Min   float64 `yaml:"min"`
	Color Color   `yaml:"color"`
}

// Paint resolves a feature's fill color.
type Paint struct {
	Kind     PaintKind `yaml:"kind"`
	Property string    `yaml:"property"`

	Categories []Category `yaml:"categories,omitempty"`

	// Below colors values under the first threshold.
	Below Color       `yaml:"below,omitempty"`
	Steps []Threshold `yaml:"steps,omitempty"`

	Default Color   `yaml:"default,omitempty"`
	Opacity float64 `yaml:"opacity,omitempty"`

	// ZeroIsNoData lists numeric properties checked in order; the first one
	// holding a number is compared against zero (0 if none do). A zero
	// means the precinct has no results and gets the default color.
	ZeroIsNoData []string `yaml:"zeroIsNoData,omitempty"`
}

// DefaultColor returns the fallback color.
func (p *Paint) DefaultColor() Color {
	if p.Default == "" {
		return NeutralColor
	}
	return p.Default
}

// FillOpacity returns the fill opacity, 0.6 unless configured.
func (p *Paint) FillOpacity() float64 {
	if p.Opacity <= 0 {
		return 0.6
	}
	return p.Opacity
}

// Resolve maps a value of Property to a color. It never fails: anything
// unmatched gets the default color. A zero gets the default color too when
// Property is listed in ZeroIsNoData.
func (p *Paint) Resolve(v interface{}) Color {
	if p.ZeroIsMissing(p.Property) {
		if n := toNumber(v); n.Valid && n.Value == 0 {
			return p.DefaultColor()
		}
	}
	return p.resolve(v)
}

// ZeroIsMissing reports whether a zero in field means the precinct has no
// results.
func (p *Paint) ZeroIsMissing(field string) bool {
	for _, f := range p.ZeroIsNoData {
		if f == field {
			return true
		}
	}
	return false
}

func (p *Paint) resolve(v interface{}) Color {
	switch p.Kind {
	case Categorical:
		var label string
		switch t := v.(type) {
		case string:
			label = t
		default:
			return p.DefaultColor()
		}
		for _, c := range p.Categories {
			if c.Label == label {
				return c.Color
			}
		}
		return p.DefaultColor()
	case Step:
		n := toNumber(v)
		if !n.Valid || len(p.Steps) == 0 {
			return p.DefaultColor()
		}
		c := p.Below
		if c == "" {
			c = p.DefaultColor()
		}
		for _, s := range p.Steps {
			if n.Value < s.Min {
				break
			}
			c = s.Color
		}
		return c
	default:
		return p.DefaultColor()
	}
}

// ColorFor returns the fill color of a feature.
func (p *Paint) ColorFor(props geojson.Properties) Color {
	if len(p.ZeroIsNoData) > 0 && p.zero(props) {
		return p.DefaultColor()
	}
	return p.resolve(props[p.Property])
}

func (p *Paint) zero(props geojson.Properties) bool {
	for _, f := range p.ZeroIsNoData {
		if n := toNumber(props[f]); n.Valid {
			return n.Value == 0
		}
	}
	return true
}

// Colors returns the palette in legend order.
func (p *Paint) Colors() []Color {
	var o []Color
	switch p.Kind {
	case Categorical:
		for _, c := range p.Categories {
			o = append(o, c.Color)
		}
	case Step:
		if p.Below != "" {
			o = append(o, p.Below)
		}
		for _, s := range p.Steps {
			o = append(o, s.Color)
		}
	}
	return o
}

// Validate checks that the paint is usable.
func (p *Paint) Validate() error {
	switch p.Kind {
	case Categorical:
		if len(p.Categories) == 0 {
			return fmt.Errorf("electionmaps: categorical paint on %q has no categories", p.Property)
		}
	case Step:
		if len(p.Steps) == 0 {
			return fmt.Errorf("electionmaps: step paint on %q has no steps", p.Property)
		}
		for i := 1; i < len(p.Steps); i++ {
			if p.Steps[i].Min <= p.Steps[i-1].Min {
				return fmt.Errorf("electionmaps: step paint on %q: thresholds must ascend (%g after %g)",
					p.Property, p.Steps[i].Min, p.Steps[i-1].Min)
			}
		}
	default:
		return fmt.Errorf("electionmaps: invalid paint kind %q", p.Kind)
	}
	if p.Property == "" {
		return fmt.Errorf("electionmaps: paint has no property")
	}
	for _, c := range append(p.Colors(), p.DefaultColor()) {
		if _, err := c.RGBA(); err != nil {
			return err
		}
	}
	return nil
}
