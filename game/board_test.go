package game

import (
	"testing"

	"snakefx/particle"
)

func TestBoardFitsDefaultScreen(t *testing.T) {
	b := NewBoard(DefaultConfig())
	if b.CellSize() != 40 {
		t.Errorf("Expected 40px cells, got %v", b.CellSize())
	}
	if !b.Origin.IsZero() {
		t.Errorf("Expected board at origin, got %v", b.Origin)
	}
}

func TestBoardResizeCentres(t *testing.T) {
	b := &Board{Columns: 20, Rows: 15}
	b.Resize(1000, 600)

	if b.Cell != 40 {
		t.Fatalf("Expected 40px cells, got %v", b.Cell)
	}
	if b.Origin != (particle.Vec2{X: 100, Y: 0}) {
		t.Errorf("Expected origin (100,0), got %v", b.Origin)
	}
	if got := b.CellCenter(particle.GridPos{X: 5, Y: 5}); got != (particle.Vec2{X: 320, Y: 220}) {
		t.Errorf("Expected cell centre (320,220), got %v", got)
	}
	if got := b.CellOrigin(particle.GridPos{X: 1, Y: 2}); got != (particle.Vec2{X: 140, Y: 80}) {
		t.Errorf("Expected cell origin (140,80), got %v", got)
	}
}

func TestBoardWrapAndContains(t *testing.T) {
	b := &Board{Columns: 20, Rows: 15}

	tests := []struct {
		in, want particle.GridPos
	}{
		{particle.GridPos{X: -1, Y: 15}, particle.GridPos{X: 19, Y: 0}},
		{particle.GridPos{X: 20, Y: -1}, particle.GridPos{X: 0, Y: 14}},
		{particle.GridPos{X: 3, Y: 4}, particle.GridPos{X: 3, Y: 4}},
	}
	for _, tt := range tests {
		if got := b.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v): expected %v, got %v", tt.in, tt.want, got)
		}
		if !b.Contains(b.Wrap(tt.in)) {
			t.Errorf("Expected wrapped %v to be on the board", tt.in)
		}
	}
	if b.Contains(particle.GridPos{X: 20, Y: 0}) {
		t.Error("Expected column 20 to be off the board")
	}
}
