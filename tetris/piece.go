package tetris

import (
	"math/rand/v2"
)

// Point is a grid coordinate. Y grows downwards; negative Y lies above the visible grid.
type Point struct {
	X, Y int
}

// Piece is a shape with a colour, positioned by the grid offset of the
// shape's top-left corner. Callers translate a piece by changing X and Y
// directly and are expected to validate the new placement.
type Piece struct {
	Shape Shape
	Color Color
	X, Y  int
}

// Spawn creates a piece horizontally centred on a standard grid with its top row at y = 0.
// The shape is copied, so the piece can be rotated freely.
func Spawn(shape Shape, c Color) Piece {
	p := Piece{Shape: shape.Clone(), Color: c}
	p.Center(GridWidth)
	return p
}

// Center moves the piece to the spawn position for a grid of the given width.
func (p *Piece) Center(width int) {
	p.X = width/2 - p.Shape.Width()/2
	p.Y = 0
}

// Rotate turns the piece 90° clockwise in place.
func (p *Piece) Rotate() {
	p.Shape = p.Shape.Rotated()
}

// RotateBack turns the piece 90° counter-clockwise in place, undoing Rotate.
func (p *Piece) RotateBack() {
	p.Shape = p.Shape.RotatedBack()
}

// Cells returns the grid coordinates of every occupied cell, row by row.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				cells = append(cells, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return cells
}

// PieceSource produces the pieces of a game, one at a time.
type PieceSource interface {
	Next() Piece
}

// RandomSource draws shape and colour independently and uniformly from Shapes and Palette.
type RandomSource struct {
	rng *rand.Rand
}

func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *RandomSource) Next() Piece {
	return Spawn(Shapes[s.rng.IntN(len(Shapes))], Palette[s.rng.IntN(len(Palette))])
}

// SequenceSource replays a fixed list of pieces, starting over when it runs out.
type SequenceSource struct {
	pieces []Piece
	next   int
}

func NewSequenceSource(pieces ...Piece) *SequenceSource {
	if len(pieces) == 0 {
		panic("sequence source needs at least one piece")
	}
	return &SequenceSource{pieces: pieces}
}

func (s *SequenceSource) Next() Piece {
	p := s.pieces[s.next]
	s.next = (s.next + 1) % len(s.pieces)
	p.Shape = p.Shape.Clone()
	return p
}
