package tetris

// FullRows returns the index of every full row, bottom-most first.
func FullRows(g Grid) []int {
	var rows []int
	for y := g.Height() - 1; y >= 0; y-- {
		if g.FullRow(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes every full row from the grid and from the locked
// positions and returns the number of rows removed. Locked cells above the
// topmost cleared row drop by that number; cells at or below it stay where
// they are. With non-adjacent full rows the spliced grid can then differ from
// the store, so callers that keep both rebuild the grid afterwards.
func ClearRows(g Grid, locked *LockedPositions) int {
	rows := FullRows(g)
	if len(rows) == 0 {
		return 0
	}

	full := make([]bool, g.Height())
	for _, y := range rows {
		full[y] = true
	}
	top := rows[len(rows)-1]
	shift := len(rows)

	spliceRows(g, full)

	// Points is ordered bottom row first, so a cell is always moved before
	// anything above it can land on its old key.
	for _, p := range locked.Points() {
		if p.Y >= 0 && p.Y < len(full) && full[p.Y] {
			locked.Delete(p)
			continue
		}
		if p.Y >= top {
			continue
		}

		// With non-adjacent cleared rows the target can hold a cell that stays
		// between them. The shifted cell replaces it.
		c, _ := locked.Get(p)
		locked.Delete(p)
		locked.Put(Point{X: p.X, Y: p.Y + shift}, c)
	}

	return len(rows)
}

// spliceRows drops the marked rows and inserts the same number of blank rows at the top.
func spliceRows(g Grid, full []bool) {
	var freed [][]Color
	dst := len(g) - 1
	for y := len(g) - 1; y >= 0; y-- {
		if full[y] {
			freed = append(freed, g[y])
			continue
		}
		g[dst] = g[y]
		dst--
	}

	for _, row := range freed {
		for x := range row {
			row[x] = Background
		}
		g[dst] = row
		dst--
	}
}
