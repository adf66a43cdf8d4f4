package particle

import "math"

// Vec2 is a point or displacement in pixel space.
type Vec2 struct {
	X, Y float64
}

// GridPos addresses one cell of the board.
type GridPos struct {
	X, Y int
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func polar(angle, r float64) Vec2 {
	return Vec2{math.Cos(angle) * r, math.Sin(angle) * r}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
