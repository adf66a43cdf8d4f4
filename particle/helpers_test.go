package particle

import "image/color"

type manualClock struct {
	now float64
}

func (c *manualClock) Now() float64 { return c.now }

func (c *manualClock) Advance(ms float64) { c.now += ms }

type testGrid struct {
	cell float64
}

func (g testGrid) CellCenter(pos GridPos) Vec2 {
	return Vec2{
		X: float64(pos.X)*g.cell + g.cell/2,
		Y: float64(pos.Y)*g.cell + g.cell/2,
	}
}

func (g testGrid) CellSize() float64 { return g.cell }

// recordingCanvas counts draw calls and records every colour used.
type recordingCanvas struct {
	circles  int
	strokes  int
	polygons int
	texts    []string
	glows    int
	colors   []color.NRGBA
}

func (c *recordingCanvas) FillCircle(_ Vec2, _ float64, col color.NRGBA) {
	c.circles++
	c.colors = append(c.colors, col)
}

func (c *recordingCanvas) StrokeCircle(_ Vec2, _, _ float64, col color.NRGBA) {
	c.strokes++
	c.colors = append(c.colors, col)
}

func (c *recordingCanvas) FillPolygon(_ []Vec2, col color.NRGBA) {
	c.polygons++
	c.colors = append(c.colors, col)
}

func (c *recordingCanvas) DrawText(s string, _ Vec2, _, _ float64, col color.NRGBA) {
	c.texts = append(c.texts, s)
	c.colors = append(c.colors, col)
}

func (c *recordingCanvas) SetGlow(radius float64, _ color.NRGBA) {
	if radius > 0 {
		c.glows++
	}
}

func testConfig() ParticleConfig {
	return ParticleConfig{
		Count:    10,
		Speed:    Range{Min: 2, Max: 3},
		Size:     Range{Min: 2, Max: 4},
		Lifetime: Range{Min: 500, Max: 800},
		Palette:  MustPalette("#ff0000", "#00ff00"),
		Trail:    TrailSpec{Length: 5, Decay: 0.7},
		Gravity:  0.05,
		Friction: DefaultFriction,
	}
}

func countVariants(ps []*Particle) map[Variant]int {
	m := make(map[Variant]int)
	for _, p := range ps {
		m[p.Variant()]++
	}
	return m
}
