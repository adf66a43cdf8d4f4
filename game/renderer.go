package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"snakefx/particle"
)

const (
	// glowSteps is the number of translucent rings a glow is drawn with
	glowSteps = 3

	// glowAlpha is the opacity of the innermost glow ring relative to its colour
	glowAlpha = 0.35

	basicFontHeight = 13.0
)

// halo is one translucent ring of a glow
type halo struct {
	radius float64
	color  color.NRGBA
}

// glowHalos spreads a glow of width glow around a shape of the given radius,
// fading outward.
func glowHalos(radius, glow float64, c color.NRGBA) [glowSteps]halo {
	var out [glowSteps]halo
	for i := range glowSteps {
		k := float64(i+1) / glowSteps
		a := float64(c.A) * glowAlpha * (1 - k + 1.0/glowSteps)
		out[i] = halo{
			radius: radius + glow*k,
			color:  color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a))},
		}
	}
	return out
}

// centroid returns the mean of pts and the largest distance from it
func centroid(pts []particle.Vec2) (particle.Vec2, float64) {
	if len(pts) == 0 {
		return particle.Vec2{}, 0
	}
	var c particle.Vec2
	for _, p := range pts {
		c = c.Add(p)
	}
	c = c.Scale(1 / float64(len(pts)))
	var r float64
	for _, p := range pts {
		r = max(r, c.Dist(p))
	}
	return c, r
}

// Renderer draws particles onto an ebiten image. It implements
// particle.Canvas for the frame passed to Begin.
type Renderer struct {
	screen *ebiten.Image
	face   text.Face

	glow      float64
	glowColor color.NRGBA

	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16
}

// NewRenderer creates a renderer using the 7x13 bitmap font for score text
func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		face:          text.NewGoXFace(basicfont.Face7x13),
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Begin targets screen for the following draw calls and clears any glow
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.glow = 0
}

func (r *Renderer) SetGlow(radius float64, c color.NRGBA) {
	r.glow = radius
	r.glowColor = c
}

func (r *Renderer) drawGlow(center particle.Vec2, radius float64) {
	if r.glow <= 0 {
		return
	}
	halos := glowHalos(radius, r.glow, r.glowColor)
	for i := len(halos) - 1; i >= 0; i-- {
		h := halos[i]
		vector.DrawFilledCircle(r.screen, float32(center.X), float32(center.Y), float32(h.radius), h.color, true)
	}
}

func (r *Renderer) FillCircle(center particle.Vec2, radius float64, c color.NRGBA) {
	r.drawGlow(center, radius)
	vector.DrawFilledCircle(r.screen, float32(center.X), float32(center.Y), float32(max(radius, 0.5)), c, true)
}

func (r *Renderer) StrokeCircle(center particle.Vec2, radius, width float64, c color.NRGBA) {
	vector.StrokeCircle(r.screen, float32(center.X), float32(center.Y), float32(radius), float32(width), c, true)
}

func (r *Renderer) FillPolygon(points []particle.Vec2, c color.NRGBA) {
	if len(points) < 3 {
		return
	}
	center, radius := centroid(points)
	r.drawGlow(center, radius)

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	cr, cg, cb, ca := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = cr
		r.vertices[i].ColorG = cg
		r.vertices[i].ColorB = cb
		r.vertices[i].ColorA = ca
	}
	r.screen.DrawTriangles(r.vertices, r.indices, r.whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) DrawText(s string, at particle.Vec2, size, rotation float64, c color.NRGBA) {
	r.drawGlow(at, size/2)

	op := &text.DrawOptions{}
	scale := size / basicFontHeight
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(r.screen, s, r.face, op)
}
