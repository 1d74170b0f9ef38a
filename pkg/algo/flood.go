package algo

// FloodExterior derives the filled mask from a boundary mask. It starts with
// every cell filled, then clears every cell reachable from (0,0) through
// 4-connected non-boundary cells. What stays true is the polygon interior
// plus its outline.
func FloodExterior(boundary *Mask) *Mask {
	rows, cols := boundary.Rows(), boundary.Cols()
	filled := NewMask(rows, cols, true)
	if rows == 0 || cols == 0 {
		return filled
	}

	stack := []Cell{{0, 0}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		row, col := int(c.Row), int(c.Col)
		if !filled.At(row, col) || boundary.At(row, col) {
			continue
		}
		filled.Set(row, col, false)

		if row > 0 {
			stack = append(stack, Cell{c.Row - 1, c.Col})
		}
		if row+1 < rows {
			stack = append(stack, Cell{c.Row + 1, c.Col})
		}
		if col > 0 {
			stack = append(stack, Cell{c.Row, c.Col - 1})
		}
		if col+1 < cols {
			stack = append(stack, Cell{c.Row, c.Col + 1})
		}
	}
	return filled
}
