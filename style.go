package shipdash

import (
	"fmt"
	"image/color"
	"strings"
)

// SetAlpha sets the opacity of c to a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n.A = uint8(a*0xff + 0.5)
	return n
}

// -------------------------------------------------------------------------
// Colors

// BuiltinColors are the named colors understood by String2Color. The
// "tab:" colors are the Tableau 10 palette.
var BuiltinColors = map[string]color.NRGBA{
	"red":        {0xff, 0x00, 0x00, 0xff},
	"green":      {0x00, 0xff, 0x00, 0xff},
	"blue":       {0x00, 0x00, 0xff, 0xff},
	"white":      {0xff, 0xff, 0xff, 0xff},
	"black":      {0x00, 0x00, 0x00, 0xff},
	"gray":       {0x80, 0x80, 0x80, 0xff},
	"lightgray":  {0xd3, 0xd3, 0xd3, 0xff},
	"tab:blue":   {0x1f, 0x77, 0xb4, 0xff},
	"tab:orange": {0xff, 0x7f, 0x0e, 0xff},
	"tab:green":  {0x2c, 0xa0, 0x2c, 0xff},
	"tab:red":    {0xd6, 0x27, 0x28, 0xff},
	"tab:purple": {0x94, 0x67, 0xbd, 0xff},
	"tab:brown":  {0x8c, 0x56, 0x4b, 0xff},
	"tab:pink":   {0xe3, 0x77, 0xc2, 0xff},
	"tab:gray":   {0x7f, 0x7f, 0x7f, 0xff},
	"tab:olive":  {0xbc, 0xbd, 0x22, 0xff},
	"tab:cyan":   {0x17, 0xbe, 0xcf, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a name from BuiltinColors.
func String2Color(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		var r, g, b uint8
		a := uint8(0xff)
		if _, err := fmt.Sscanf(s[1:7], "%2x%2x%2x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("bad color %q: %v", s, err)
		}
		if len(s) == 9 {
			if _, err := fmt.Sscanf(s[7:9], "%2x", &a); err != nil {
				return nil, fmt.Errorf("bad color %q: %v", s, err)
			}
		}
		return color.NRGBA{r, g, b, a}, nil
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// MustColor is like String2Color but panics on unknown colors. Use it
// for literals only.
func MustColor(s string) color.Color {
	c, err := String2Color(s)
	if err != nil {
		panic(err)
	}
	return c
}

// -------------------------------------------------------------------------
// Palette

// Palette is an ordered mapping from category label to color. Labels not
// in the mapping get the Fallback colors, handed out in lexical order of
// those labels, so the colors only depend on the set of labels and never
// on the order in which they are drawn.
type Palette struct {
	Labels   []string
	Colors   []color.Color
	Fallback []color.Color
}

// Lookup returns the fixed color of label.
func (p Palette) Lookup(label string) (color.Color, bool) {
	for i, l := range p.Labels {
		if l == label && i < len(p.Colors) {
			return p.Colors[i], true
		}
	}
	return nil, false
}

// Assign returns one color per label, in the order of labels.
func (p Palette) Assign(labels []string) []color.Color {
	colors := make([]color.Color, len(labels))
	unknown := NewStringSet()
	for i, l := range labels {
		if c, ok := p.Lookup(l); ok {
			colors[i] = c
		} else {
			unknown.Add(l)
		}
	}
	if len(unknown) == 0 {
		return colors
	}

	fallback := p.Fallback
	if len(fallback) == 0 {
		fallback = []color.Color{BuiltinColors["tab:gray"]}
	}
	extra := make(map[string]color.Color, len(unknown))
	for i, l := range unknown.Elements() {
		extra[l] = fallback[i%len(fallback)]
	}
	for i, l := range labels {
		if colors[i] == nil {
			colors[i] = extra[l]
		}
	}
	return colors
}

// tab10 returns the named Tableau colors in palette order.
func tab10(names ...string) []color.Color {
	colors := make([]color.Color, len(names))
	for i, n := range names {
		colors[i] = BuiltinColors["tab:"+n]
	}
	return colors
}

// ShipmentModePalette keeps the shipment modes in the same colors on
// every run.
var ShipmentModePalette = Palette{
	Labels:   []string{"Ship", "Flight", "Road"},
	Colors:   tab10("blue", "orange", "green"),
	Fallback: tab10("red", "purple", "brown", "pink", "gray", "olive", "cyan"),
}
