package algo

// GreedyMesh covers the true cells of mask with non-overlapping rectangles.
// The algorithm uses a greedy approach:
// 1. Scans cells in row-major order.
// 2. Grows the widest run from each unvisited true cell, then extends it down
//    while the whole run stays true and unvisited.
// 3. Marks the covered cells as visited and continues.
func GreedyMesh(mask *Mask) []Rect {
	rows, cols := mask.Rows(), mask.Cols()
	visited := NewMask(rows, cols, false)

	var rects []Rect
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !mask.At(r, c) || visited.At(r, c) {
				continue
			}

			cLast := c
			for cLast+1 < cols && mask.At(r, cLast+1) && !visited.At(r, cLast+1) {
				cLast++
			}

			rLast := r
			for rLast+1 < rows && runAvailable(mask, visited, rLast+1, c, cLast) {
				rLast++
			}

			rect := Rect{RowFirst: int32(r), RowLast: int32(rLast), ColFirst: int32(c), ColLast: int32(cLast)}
			visited.FillRect(rect, true)
			rects = append(rects, rect)
		}
	}
	return rects
}

func runAvailable(mask, visited *Mask, row, cFirst, cLast int) bool {
	for col := cFirst; col <= cLast; col++ {
		if !mask.At(row, col) || visited.At(row, col) {
			return false
		}
	}
	return true
}
