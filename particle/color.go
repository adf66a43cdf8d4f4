package particle

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of colours a particle may be tinted with. One entry
// is picked per particle at spawn time.
type Palette []colorful.Color

// ParsePalette builds a Palette from "#rrggbb" strings.
func ParsePalette(hexes ...string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", h, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// MustPalette is ParsePalette for built-in tables; it panics on a bad entry.
func MustPalette(hexes ...string) Palette {
	p, err := ParsePalette(hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Palette) pick(r Rand) colorful.Color {
	if len(p) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return p[intn(r, len(p))]
}

// Contains reports whether c is one of the palette entries.
func (p Palette) Contains(c colorful.Color) bool {
	for _, e := range p {
		if e.AlmostEqualRgb(c) {
			return true
		}
	}
	return false
}

// rgba converts c to a canvas colour with alpha in [0, 255].
func rgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clampF(math.Round(alpha), 0, 255))}
}

// rainbow cycles the hue with elapsed milliseconds.
func rainbow(ageMs, offset float64) colorful.Color {
	h := math.Mod(ageMs*rainbowDegreesPerMs+offset, 360)
	return colorful.Hsv(h, rainbowSaturation, 1)
}
