package algo

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/rectfill/rectfill/pkg/polygon"
)

// Candidate is a rectangle anchored on two polygon vertices.
type Candidate struct {
	A    polygon.Point
	B    polygon.Point
	Area int64
}

// CandidateArea returns the number of original-space cells covered by the
// rectangle with corners a and b, edges included.
func CandidateArea(a, b polygon.Point) int64 {
	return (absDiff(a.Row, b.Row) + 1) * (absDiff(a.Col, b.Col) + 1)
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

// better reports whether c should replace best. On equal areas the
// candidate found earlier wins, which keeps results deterministic.
func (c Candidate) better(best Candidate) bool {
	return c.Area > best.Area
}

// SearchOptions tunes Search.
type SearchOptions struct {
	// Workers bounds the number of concurrent outer-index tasks.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

// sortedByRow returns a copy of points ordered by row. The order only
// improves pruning locality; results do not depend on it.
func sortedByRow(points []polygon.Point) []polygon.Point {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b polygon.Point) int {
		return cmp.Compare(a.Row, b.Row)
	})
	return sorted
}

// MaxSpan returns the largest rectangle between any two vertices, with no
// containment check.
func MaxSpan(points []polygon.Point) Candidate {
	sorted := sortedByRow(points)
	var best Candidate
	for i, a := range sorted {
		for _, b := range sorted[i+1:] {
			c := Candidate{A: a, B: b, Area: CandidateArea(a, b)}
			if c.better(best) {
				best = c
			}
		}
	}
	return best
}

// Search finds the largest rectangle anchored on two vertices whose every
// compressed cell is filled according to idx. One task runs per outer
// vertex, pairing it with every later vertex in row order; the shared
// structures are only read while tasks run.
func Search(ctx context.Context, points []polygon.Point, g *Geometry, idx *BlockIndex, opts SearchOptions) (Candidate, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sorted := sortedByRow(points)
	cells := make([]Cell, len(sorted))
	for i, p := range sorted {
		c, err := g.Cell(p)
		if err != nil {
			return Candidate{}, err
		}
		cells[i] = c
	}

	results := make([]Candidate, len(sorted))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i := range sorted {
		if gctx.Err() != nil {
			break
		}
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = searchFrom(i, sorted, cells, idx)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return Candidate{}, err
	}
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}

	var best Candidate
	for _, c := range results {
		if c.better(best) {
			best = c
		}
	}
	return best, nil
}

// searchFrom scans every pair (i, j) with j > i and returns the best
// contained candidate for outer index i.
func searchFrom(i int, sorted []polygon.Point, cells []Cell, idx *BlockIndex) Candidate {
	a := sorted[i]
	var best Candidate
	for j := i + 1; j < len(sorted); j++ {
		b := sorted[j]
		area := CandidateArea(a, b)
		if area <= best.Area {
			continue
		}
		if !idx.Contains(SpanRect(cells[i], cells[j])) {
			continue
		}
		best = Candidate{A: a, B: b, Area: area}
	}
	return best
}
