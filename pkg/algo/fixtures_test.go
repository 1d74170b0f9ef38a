package algo

import (
	"testing"

	"github.com/rectfill/rectfill/pkg/polygon"
)

var (
	scenarioExample = []polygon.Point{
		{Row: 7, Col: 1}, {Row: 11, Col: 1}, {Row: 11, Col: 7}, {Row: 9, Col: 7}, {Row: 9, Col: 5}, {Row: 2, Col: 5}, {Row: 2, Col: 3}, {Row: 7, Col: 3},
	}

	scenarioHarder = []polygon.Point{
		{Row: 1, Col: 0}, {Row: 3, Col: 0}, {Row: 3, Col: 6}, {Row: 16, Col: 6}, {Row: 16, Col: 0}, {Row: 18, Col: 0},
		{Row: 18, Col: 9}, {Row: 13, Col: 9}, {Row: 13, Col: 7}, {Row: 6, Col: 7}, {Row: 6, Col: 9}, {Row: 1, Col: 9},
	}

	// A bar along row 0..2 with three teeth hanging down to row 10.
	scenarioComb = []polygon.Point{
		{Row: 0, Col: 0}, {Row: 0, Col: 10}, {Row: 10, Col: 10}, {Row: 10, Col: 8}, {Row: 2, Col: 8}, {Row: 2, Col: 6},
		{Row: 10, Col: 6}, {Row: 10, Col: 4}, {Row: 2, Col: 4}, {Row: 2, Col: 2}, {Row: 10, Col: 2}, {Row: 10, Col: 0},
	}

	// The example shape scaled by 1e8 and shifted by one row.
	scenarioHuge = []polygon.Point{
		{Row: 700_000_001, Col: 100_000_000}, {Row: 1_100_000_001, Col: 100_000_000},
		{Row: 1_100_000_001, Col: 700_000_000}, {Row: 900_000_001, Col: 700_000_000},
		{Row: 900_000_001, Col: 500_000_000}, {Row: 200_000_001, Col: 500_000_000},
		{Row: 200_000_001, Col: 300_000_000}, {Row: 700_000_001, Col: 300_000_000},
	}
)

// buildFilled runs compression, rasterization and the exterior flood fill.
func buildFilled(t *testing.T, points []polygon.Point) (*Geometry, *Mask) {
	t.Helper()
	g := Compress(points)
	boundary, err := Rasterize(points, g)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}
	return g, FloodExterior(boundary)
}
