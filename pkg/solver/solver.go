// Package solver runs the largest enclosed rectangle pipeline: coordinate
// compression, outline rasterization, exterior flood fill, block indexing
// and the parallel corner-pair search.
package solver

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rectfill/rectfill/pkg/algo"
	"github.com/rectfill/rectfill/pkg/polygon"
)

// Options configures a solve.
type Options struct {
	// BlockSize is the block index edge length; 0 means algo.DefaultBlockSize.
	BlockSize int
	// Workers bounds search concurrency; 0 means GOMAXPROCS.
	Workers int
	// Strict validates the loop before solving.
	Strict bool
}

// Stats summarizes the structures built during a solve.
type Stats struct {
	Points      int
	GridRows    int
	GridCols    int
	FilledCells int
	FullBlocks  int
	PolygonArea float64
	Elapsed     time.Duration
}

// Solution is the result of Solve. The masks and index stay valid and
// read-only after Solve returns.
type Solution struct {
	RunID    uuid.UUID
	Best     algo.Candidate
	Geometry *algo.Geometry
	Boundary *algo.Mask
	Filled   *algo.Mask
	Index    *algo.BlockIndex
	Stats    Stats
}

// Area returns the largest enclosed rectangle area.
func (s *Solution) Area() int64 {
	return s.Best.Area
}

// Solve finds the largest rectangle anchored on two vertices of points that
// lies entirely inside or on the polygon.
func Solve(ctx context.Context, points []polygon.Point, opts Options) (*Solution, error) {
	if len(points) < 2 {
		return nil, polygon.ErrTooFewPoints
	}
	if opts.Strict {
		if err := polygon.Validate(points); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	sol := &Solution{RunID: uuid.New()}
	logger := slog.With("run_id", sol.RunID.String())

	phase := time.Now()
	sol.Geometry = algo.Compress(points)
	logger.Debug("compressed", "rows", sol.Geometry.RowMap.Len(), "cols", sol.Geometry.ColMap.Len(),
		"grid", []int{sol.Geometry.Rows, sol.Geometry.Cols}, "elapsed", time.Since(phase))

	phase = time.Now()
	boundary, err := algo.Rasterize(points, sol.Geometry)
	if err != nil {
		return nil, err
	}
	sol.Boundary = boundary
	logger.Debug("rasterized", "boundary_cells", boundary.Count(), "elapsed", time.Since(phase))

	phase = time.Now()
	sol.Filled = algo.FloodExterior(boundary)
	logger.Debug("flooded", "filled_cells", sol.Filled.Count(), "elapsed", time.Since(phase))

	phase = time.Now()
	sol.Index = algo.NewBlockIndex(sol.Filled, opts.BlockSize)
	logger.Debug("indexed", "block_size", sol.Index.BlockSize(), "full_blocks", sol.Index.Full(), "elapsed", time.Since(phase))

	phase = time.Now()
	best, err := algo.Search(ctx, points, sol.Geometry, sol.Index, algo.SearchOptions{Workers: opts.Workers})
	if err != nil {
		return nil, err
	}
	sol.Best = best
	logger.Debug("searched", "area", best.Area, "elapsed", time.Since(phase))

	sol.Stats = Stats{
		Points:      len(points),
		GridRows:    sol.Geometry.Rows,
		GridCols:    sol.Geometry.Cols,
		FilledCells: sol.Filled.Count(),
		FullBlocks:  sol.Index.Full(),
		PolygonArea: polygon.Area(points),
		Elapsed:     time.Since(start),
	}
	logger.Info("solved", "area", best.Area, "a", best.A.String(), "b", best.B.String(), "elapsed", sol.Stats.Elapsed)
	return sol, nil
}

// Bound returns the largest rectangle between any two vertices, ignoring
// the polygon interior.
func Bound(points []polygon.Point) algo.Candidate {
	return algo.MaxSpan(points)
}
