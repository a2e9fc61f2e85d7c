package tetris

// IsValidPosition reports whether every occupied cell of the piece lies inside
// the grid's columns, above its floor, and over an empty cell. Cells with a
// negative y are above the visible grid and only need a valid column.
func IsValidPosition(p Piece, g Grid) bool {
	width, height := g.Width(), g.Height()

	for _, cell := range p.Cells() {
		if cell.X < 0 || cell.X >= width || cell.Y >= height {
			return false
		}
		if cell.Y >= 0 && g[cell.Y][cell.X] != Background {
			return false
		}
	}
	return true
}
