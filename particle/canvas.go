package particle

import "image/color"

// Canvas is the 2D drawing surface supplied by the host frame.
type Canvas interface {
	FillCircle(center Vec2, radius float64, c color.NRGBA)
	StrokeCircle(center Vec2, radius, width float64, c color.NRGBA)
	FillPolygon(points []Vec2, c color.NRGBA)
	// DrawText draws s centred on at, size is the glyph height in pixels.
	DrawText(s string, at Vec2, size, rotation float64, c color.NRGBA)
	// SetGlow applies a soft halo of the given radius to subsequent fills
	// until reset with a zero radius.
	SetGlow(radius float64, c color.NRGBA)
}
