package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPosition(t *testing.T) {
	locked := NewLockedPositions()
	locked.Put(Point{X: 5, Y: 10}, Red)
	locked.Put(Point{X: 0, Y: 19}, Blue)
	grid := BuildGrid(locked)

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"I at spawn on empty grid", Spawn(ShapeI, Cyan), true},
		{"left edge", Piece{Shape: ShapeO, X: 0, Y: 0}, true},
		{"past left edge", Piece{Shape: ShapeO, X: -1, Y: 0}, false},
		{"right edge", Piece{Shape: ShapeO, X: 8, Y: 0}, true},
		{"past right edge", Piece{Shape: ShapeO, X: 9, Y: 0}, false},
		{"resting on floor", Piece{Shape: ShapeO, X: 3, Y: 18}, true},
		{"through floor", Piece{Shape: ShapeO, X: 3, Y: 19}, false},
		{"above the grid", Piece{Shape: ShapeI, X: 3, Y: -1}, true},
		{"partly above the grid", Piece{Shape: ShapeT, X: 3, Y: -1}, true},
		{"above the grid past right edge", Piece{Shape: ShapeI, X: 7, Y: -3}, false},
		{"overlapping a locked cell", Piece{Shape: ShapeO, X: 4, Y: 9}, false},
		{"next to a locked cell", Piece{Shape: ShapeO, X: 6, Y: 9}, true},
		{"empty cell of shape over a locked cell", Piece{Shape: ShapeT, X: 5, Y: 10}, true},
		{"overlapping the bottom corner", Piece{Shape: ShapeL, X: 0, Y: 18}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPosition(tt.piece, grid))
		})
	}
}

func TestIsValidPositionIgnoresShapeGaps(t *testing.T) {
	grid := NewGrid(GridWidth, GridHeight)
	// S occupies (7,0) (8,0) (8,1) (9,1); (9,0) and (7,1) are gaps in the shape.
	p := Piece{Shape: ShapeS, X: 7, Y: 0}
	assert.True(t, IsValidPosition(p, grid))

	grid[0][9] = Red
	grid[1][7] = Red
	assert.True(t, IsValidPosition(p, grid))

	grid[0][7] = Red
	assert.False(t, IsValidPosition(p, grid))
}

func TestMoveLeftUntilWall(t *testing.T) {
	grid := NewGrid(GridWidth, GridHeight)
	p := Spawn(ShapeT, Green)

	for p.X > 0 {
		p.X--
		if !IsValidPosition(p, grid) {
			p.X++
			t.Fatalf("move to x=%d rejected before reaching the wall", p.X-1)
		}
	}

	p.X--
	if !IsValidPosition(p, grid) {
		p.X++
	}
	assert.Equal(t, 0, p.X)
}
