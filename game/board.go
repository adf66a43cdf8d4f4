package game

import "snakefx/particle"

// Board is the snake board laid out in window pixels. It satisfies
// particle.Grid; Resize rescales it to the window.
type Board struct {
	particle.FixedGrid
	Columns int
	Rows    int
}

// NewBoard creates a board fitted to the configured screen
func NewBoard(config Config) *Board {
	b := &Board{Columns: config.Columns, Rows: config.Rows}
	b.Resize(config.ScreenWidth, config.ScreenHeight)
	return b
}

// Resize picks the largest square cell that fits width x height and centres
// the board. Particles already in flight keep the scale they spawned with.
func (b *Board) Resize(width, height int) {
	cell := min(float64(width)/float64(b.Columns), float64(height)/float64(b.Rows))
	b.Cell = cell
	b.Origin = particle.Vec2{
		X: (float64(width) - cell*float64(b.Columns)) / 2,
		Y: (float64(height) - cell*float64(b.Rows)) / 2,
	}
}

// Contains reports whether pos lies on the board
func (b *Board) Contains(pos particle.GridPos) bool {
	return pos.X >= 0 && pos.X < b.Columns && pos.Y >= 0 && pos.Y < b.Rows
}

// Wrap folds pos back onto the board, torus style
func (b *Board) Wrap(pos particle.GridPos) particle.GridPos {
	return particle.GridPos{
		X: ((pos.X % b.Columns) + b.Columns) % b.Columns,
		Y: ((pos.Y % b.Rows) + b.Rows) % b.Rows,
	}
}

// CellOrigin returns the top-left pixel of a cell
func (b *Board) CellOrigin(pos particle.GridPos) particle.Vec2 {
	return particle.Vec2{
		X: b.Origin.X + float64(pos.X)*b.Cell,
		Y: b.Origin.Y + float64(pos.Y)*b.Cell,
	}
}
