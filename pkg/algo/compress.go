package algo

import (
	"math/bits"
	"slices"

	"github.com/rectfill/rectfill/pkg/polygon"
)

// CoordinateMap maps the distinct values of one axis onto odd compact
// indices 1, 3, 5, ... in ascending order. The even index between two
// mapped values stands for the whole open interval between them.
type CoordinateMap struct {
	values []int64
}

// NewCoordinateMap builds a map over the distinct values in vs.
func NewCoordinateMap(vs []int64) *CoordinateMap {
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	return &CoordinateMap{values: slices.Compact(sorted)}
}

// Index returns the compact index of v, and false if v was never mapped.
func (m *CoordinateMap) Index(v int64) (int32, bool) {
	i, ok := slices.BinarySearch(m.values, v)
	if !ok {
		return 0, false
	}
	return int32(2*i + 1), true
}

// Value returns the original coordinate of an odd compact index.
func (m *CoordinateMap) Value(index int32) (int64, bool) {
	if index < 1 || index%2 == 0 {
		return 0, false
	}
	i := int(index / 2)
	if i >= len(m.values) {
		return 0, false
	}
	return m.values[i], true
}

// Len returns the number of distinct values.
func (m *CoordinateMap) Len() int {
	return len(m.values)
}

// MaxIndex returns the largest assigned index, or -1 for an empty map.
func (m *CoordinateMap) MaxIndex() int32 {
	return int32(2*len(m.values) - 1)
}

// Geometry is the compressed grid shared by every pipeline stage.
type Geometry struct {
	RowMap *CoordinateMap
	ColMap *CoordinateMap
	Rows   int
	Cols   int
}

// Compress builds both coordinate maps from points. Each grid dimension is
// the next power of two at or above the largest index plus two, which keeps
// a free border around the polygon and lets blocks tile the grid evenly.
func Compress(points []polygon.Point) *Geometry {
	rows := make([]int64, len(points))
	cols := make([]int64, len(points))
	for i, p := range points {
		rows[i] = p.Row
		cols[i] = p.Col
	}
	g := &Geometry{
		RowMap: NewCoordinateMap(rows),
		ColMap: NewCoordinateMap(cols),
	}
	g.Rows = nextPowerOfTwo(int(g.RowMap.MaxIndex()) + 2)
	g.Cols = nextPowerOfTwo(int(g.ColMap.MaxIndex()) + 2)
	return g
}

// Cell maps p onto the compressed grid.
func (g *Geometry) Cell(p polygon.Point) (Cell, error) {
	r, ok := g.RowMap.Index(p.Row)
	if !ok {
		return Cell{}, &UnmappedError{Axis: "row", Value: p.Row}
	}
	c, ok := g.ColMap.Index(p.Col)
	if !ok {
		return Cell{}, &UnmappedError{Axis: "col", Value: p.Col}
	}
	return Cell{Row: r, Col: c}, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
