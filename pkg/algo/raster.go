package algo

import "github.com/rectfill/rectfill/pkg/polygon"

// Rasterize marks the polygon outline on a fresh mask sized to g. Every edge
// of the closed loop, including last to first, fills the whole span between
// its compressed endpoints so the collapsed cells between two original
// coordinates are covered too.
func Rasterize(points []polygon.Point, g *Geometry) (*Mask, error) {
	boundary := NewMask(g.Rows, g.Cols, false)
	if len(points) == 0 {
		return boundary, nil
	}

	prev, err := g.Cell(points[len(points)-1])
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		next, err := g.Cell(p)
		if err != nil {
			return nil, err
		}
		boundary.FillRect(SpanRect(prev, next), true)
		prev = next
	}
	return boundary, nil
}
