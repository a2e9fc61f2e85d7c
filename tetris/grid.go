package tetris

// Grid is a dense view of the board indexed [y][x].
type Grid [][]Color

// NewGrid returns a grid of the given size filled with Background.
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		panic("grid dimensions must be positive")
	}
	g := make(Grid, height)
	for y := range g {
		g[y] = blankRow(width)
	}
	return g
}

func blankRow(width int) []Color {
	row := make([]Color, width)
	for x := range row {
		row[x] = Background
	}
	return row
}

// BuildGrid derives a standard-size grid from the locked positions.
func BuildGrid(locked *LockedPositions) Grid {
	return buildGrid(locked, GridWidth, GridHeight)
}

func buildGrid(locked *LockedPositions, width, height int) Grid {
	g := NewGrid(width, height)
	g.Load(locked)
	return g
}

// Load overwrites every in-bounds cell that has a locked colour. Cells above
// or outside the grid are kept in the store but have no place in the view.
func (g Grid) Load(locked *LockedPositions) {
	locked.Each(func(p Point, c Color) bool {
		if g.In(p.X, p.Y) {
			g[p.Y][p.X] = c
		}
		return true
	})
}

// Reset fills every cell with Background.
func (g Grid) Reset() {
	for y := range g {
		for x := range g[y] {
			g[y][x] = Background
		}
	}
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) In(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// At returns the colour at (x, y), or Background outside the grid.
func (g Grid) At(x, y int) Color {
	if !g.In(x, y) {
		return Background
	}
	return g[y][x]
}

// FullRow reports whether row y holds no Background cell.
func (g Grid) FullRow(y int) bool {
	for _, c := range g[y] {
		if c == Background {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y := range g {
		out[y] = append([]Color(nil), g[y]...)
	}
	return out
}

// CopyFrom overwrites g with src. Both grids must have the same dimensions.
func (g Grid) CopyFrom(src Grid) {
	for y := range g {
		copy(g[y], src[y])
	}
}

// Paint draws the piece's visible cells onto the grid. Cells above row 0 are skipped.
func (g Grid) Paint(p Piece) {
	for _, cell := range p.Cells() {
		if g.In(cell.X, cell.Y) {
			g[cell.Y][cell.X] = p.Color
		}
	}
}

// Equal reports whether both grids have the same size and colours.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(other[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}
