package algo

// Cell represents a single cell coordinate in a compressed grid.
type Cell struct {
	Row int32
	Col int32
}

// Rect represents a rectangular region of cells. Bounds are inclusive.
type Rect struct {
	RowFirst int32
	RowLast  int32
	ColFirst int32
	ColLast  int32
}

// SpanRect returns the rectangle spanned by two corner cells, in any order.
func SpanRect(a, b Cell) Rect {
	return Rect{
		RowFirst: min(a.Row, b.Row),
		RowLast:  max(a.Row, b.Row),
		ColFirst: min(a.Col, b.Col),
		ColLast:  max(a.Col, b.Col),
	}
}

// Intersect returns the overlap of r and o, and false if they are disjoint.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	out := Rect{
		RowFirst: max(r.RowFirst, o.RowFirst),
		RowLast:  min(r.RowLast, o.RowLast),
		ColFirst: max(r.ColFirst, o.ColFirst),
		ColLast:  min(r.ColLast, o.ColLast),
	}
	if out.RowFirst > out.RowLast || out.ColFirst > out.ColLast {
		return Rect{}, false
	}
	return out, true
}

// Mask is a dense boolean grid stored in row-major order.
type Mask struct {
	rows, cols int
	cells      []bool
}

// NewMask returns a rows×cols mask with every cell set to fill.
func NewMask(rows, cols int, fill bool) *Mask {
	m := &Mask{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	if fill {
		for i := range m.cells {
			m.cells[i] = true
		}
	}
	return m
}

func (m *Mask) Rows() int { return m.rows }
func (m *Mask) Cols() int { return m.cols }

// Bounds returns the rectangle covering the whole mask.
func (m *Mask) Bounds() Rect {
	return Rect{RowLast: int32(m.rows - 1), ColLast: int32(m.cols - 1)}
}

func (m *Mask) At(row, col int) bool {
	return m.cells[row*m.cols+col]
}

func (m *Mask) Set(row, col int, v bool) {
	m.cells[row*m.cols+col] = v
}

// FillRect sets every cell of r to v. r must lie inside the mask.
func (m *Mask) FillRect(r Rect, v bool) {
	for row := int(r.RowFirst); row <= int(r.RowLast); row++ {
		line := m.cells[row*m.cols:]
		for col := int(r.ColFirst); col <= int(r.ColLast); col++ {
			line[col] = v
		}
	}
}

// AllRect reports whether every cell of r is true. r must lie inside the mask.
func (m *Mask) AllRect(r Rect) bool {
	for row := int(r.RowFirst); row <= int(r.RowLast); row++ {
		line := m.cells[row*m.cols:]
		for col := int(r.ColFirst); col <= int(r.ColLast); col++ {
			if !line[col] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.cells {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether both masks have the same shape and contents.
func (m *Mask) Equal(o *Mask) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}
