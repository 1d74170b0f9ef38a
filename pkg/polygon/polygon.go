package polygon

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var (
	// ErrTooFewPoints is returned when a loop has fewer than two vertices.
	ErrTooFewPoints = errors.New("polygon needs at least 2 points")
	// ErrDiagonalEdge is returned by Validate for an edge that is not axis-aligned.
	ErrDiagonalEdge = errors.New("edge is not axis-aligned")
)

// Point is a polygon vertex in original coordinate space.
type Point struct {
	Row int64
	Col int64
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Validate checks that points form a closed rectilinear loop: at least two
// vertices, and every edge (including the closing one) changes exactly one
// coordinate.
func Validate(points []Point) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}
	for i, a := range points {
		b := points[(i+1)%len(points)]
		if a.Row != b.Row && a.Col != b.Col {
			return fmt.Errorf("%w: %v -> %v", ErrDiagonalEdge, a, b)
		}
	}
	return nil
}

// Ring returns the loop as a closed orb ring with X as column and Y as row.
func Ring(points []Point) orb.Ring {
	if len(points) == 0 {
		return nil
	}
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, orb.Point{float64(p.Col), float64(p.Row)})
	}
	return append(ring, ring[0])
}

// Bound returns the bounding box of the points.
func Bound(points []Point) orb.Bound {
	return Ring(points).Bound()
}

// Area returns the area enclosed by the loop, measured between vertex
// centres. It is zero for degenerate loops.
func Area(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	a := planar.Area(Ring(points))
	if a < 0 {
		return -a
	}
	return a
}
