package tetris

import (
	"image/color"
	"strings"
)

const (
	GridWidth  = 10
	GridHeight = 20
)

// Color is the colour of a single grid cell.
type Color = color.RGBA

// Background marks an empty cell.
var Background = Color{A: 0xff}

var (
	Cyan    = Color{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	Yellow  = Color{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	Magenta = Color{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
	Orange  = Color{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	Blue    = Color{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	Green   = Color{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	Red     = Color{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// Palette is the set of colours a piece can be drawn in.
var Palette = []Color{Cyan, Yellow, Magenta, Orange, Blue, Green, Red}

// Shape is a piece's occupancy matrix, indexed [row][column].
type Shape [][]bool

var (
	ShapeS = parseShape("##.", ".##")
	ShapeZ = parseShape(".##", "##.")
	ShapeL = parseShape("#..", "###")
	ShapeJ = parseShape("..#", "###")
	ShapeI = parseShape("####")
	ShapeO = parseShape("##", "##")
	ShapeT = parseShape(".#.", "###")
)

// Shapes is the set of shapes a piece can take. Shape and colour are chosen independently.
var Shapes = []Shape{ShapeS, ShapeZ, ShapeL, ShapeJ, ShapeI, ShapeO, ShapeT}

// parseShape builds a Shape from rows where '#' is an occupied cell.
func parseShape(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for y, row := range rows {
		shape[y] = make([]bool, len(row))
		for x, c := range row {
			shape[y][x] = c == '#'
		}
	}
	return shape
}

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy, so rotating it never touches the shape tables.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = append([]bool(nil), s[y]...)
	}
	return out
}

// Rotated returns the shape turned 90° clockwise: the transpose of the
// row-reversed matrix.
func (s Shape) Rotated() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for y := range out {
		out[y] = make([]bool, h)
		for x := range h {
			out[y][x] = s[h-1-x][y]
		}
	}
	return out
}

// RotatedBack returns the shape turned 90° counter-clockwise, undoing Rotated.
func (s Shape) RotatedBack() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for y := range out {
		out[y] = make([]bool, h)
		for x := range h {
			out[y][x] = s[x][w-1-y]
		}
	}
	return out
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the shape one row per line with '#' for occupied cells.
func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
