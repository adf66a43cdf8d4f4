// Package termfx renders particles onto a terminal through tcell. Each
// terminal cell covers a block of canvas pixels, so effects authored for
// a pixel board keep their proportions.
package termfx

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"snakefx/particle"
)

const (
	// DefaultCellWidth and DefaultCellHeight approximate a terminal glyph in pixels.
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0

	glowRune = '░'
	dotRune  = '•'
	fillRune = '█'
	ringRune = '·'
	starRune = '*'
)

// Canvas implements particle.Canvas on a tcell screen. Colours are blended
// over Background by their alpha because terminals have no transparency.
type Canvas struct {
	screen     tcell.Screen
	cellWidth  float64
	cellHeight float64

	Background colorful.Color

	glow      float64
	glowColor color.NRGBA
}

// New returns a canvas drawing onto screen with cells of the given pixel size.
func New(screen tcell.Screen, cellWidth, cellHeight float64) *Canvas {
	return &Canvas{
		screen:     screen,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		Background: colorful.Color{},
	}
}

// PixelSize is the canvas area covered by the screen.
func (c *Canvas) PixelSize() (float64, float64) {
	w, h := c.screen.Size()
	return float64(w) * c.cellWidth, float64(h) * c.cellHeight
}

// Cell maps a canvas pixel to the terminal cell containing it.
func (c *Canvas) Cell(p particle.Vec2) (int, int) {
	return int(math.Floor(p.X / c.cellWidth)), int(math.Floor(p.Y / c.cellHeight))
}

func (c *Canvas) cellCenter(x, y int) particle.Vec2 {
	return particle.Vec2{X: (float64(x) + 0.5) * c.cellWidth, Y: (float64(y) + 0.5) * c.cellHeight}
}

// Shade blends col over the background by its alpha.
func (c *Canvas) Shade(col color.NRGBA) tcell.Color {
	fg := colorful.Color{R: float64(col.R) / 255, G: float64(col.G) / 255, B: float64(col.B) / 255}
	r, g, b := c.Background.BlendRgb(fg, float64(col.A)/255).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c *Canvas) set(x, y int, ch rune, col color.NRGBA) {
	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h || col.A == 0 {
		return
	}
	c.screen.SetContent(x, y, ch, nil, tcell.StyleDefault.Foreground(c.Shade(col)))
}

// cells calls fn for every terminal cell whose centre lies within radius
// of center. The cell holding center is always visited.
func (c *Canvas) cells(center particle.Vec2, radius float64, fn func(x, y int)) {
	cx, cy := c.Cell(center)
	fn(cx, cy)
	x0, y0 := c.Cell(particle.Vec2{X: center.X - radius, Y: center.Y - radius})
	x1, y1 := c.Cell(particle.Vec2{X: center.X + radius, Y: center.Y + radius})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if (x != cx || y != cy) && c.cellCenter(x, y).Dist(center) <= radius {
				fn(x, y)
			}
		}
	}
}

func (c *Canvas) SetGlow(radius float64, col color.NRGBA) {
	c.glow = radius
	c.glowColor = col
}

func (c *Canvas) drawGlow(center particle.Vec2, radius float64) {
	if c.glow <= 0 {
		return
	}
	dim := c.glowColor
	dim.A /= 3
	c.cells(center, radius+c.glow, func(x, y int) { c.set(x, y, glowRune, dim) })
}

func (c *Canvas) FillCircle(center particle.Vec2, radius float64, col color.NRGBA) {
	c.drawGlow(center, radius)
	ch := dotRune
	if radius*2 >= c.cellWidth {
		ch = fillRune
	}
	c.cells(center, radius, func(x, y int) { c.set(x, y, ch, col) })
}

// StrokeCircle marks the cells the ring passes through.
func (c *Canvas) StrokeCircle(center particle.Vec2, radius, width float64, col color.NRGBA) {
	half := max(width, c.cellWidth) / 2
	c.cells(center, radius+half, func(x, y int) {
		if d := c.cellCenter(x, y).Dist(center); d >= radius-half {
			c.set(x, y, ringRune, col)
		}
	})
}

// FillPolygon fills the cells whose centres fall inside points, or the
// cell under the first vertex when the polygon is smaller than a cell.
func (c *Canvas) FillPolygon(points []particle.Vec2, col color.NRGBA) {
	if len(points) < 3 {
		return
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = particle.Vec2{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = particle.Vec2{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	mid := lo.Add(hi).Scale(0.5)
	c.drawGlow(mid, hi.Dist(lo)/2)

	x0, y0 := c.Cell(lo)
	x1, y1 := c.Cell(hi)
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inside(points, c.cellCenter(x, y)) {
				c.set(x, y, starRune, col)
				hit = true
			}
		}
	}
	if !hit {
		x, y := c.Cell(mid)
		c.set(x, y, starRune, col)
	}
}

// DrawText writes s centred on at. Terminal glyphs cannot scale or
// rotate, so size and rotation are ignored.
func (c *Canvas) DrawText(s string, at particle.Vec2, _, _ float64, col color.NRGBA) {
	runes := []rune(s)
	x, y := c.Cell(at)
	x -= len(runes) / 2
	for i, r := range runes {
		c.set(x+i, y, r, col)
	}
}

// inside is the even-odd point in polygon test.
func inside(poly []particle.Vec2, p particle.Vec2) bool {
	in := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}
