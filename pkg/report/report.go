// Package report stores solve results as FlatBuffers so runs can be archived
// and compared later.
package report

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/rectfill/rectfill/pkg/polygon"
	"github.com/rectfill/rectfill/pkg/solver"
)

const fileIdentifier = "RFRP"

var (
	// ErrTruncated is returned for buffers too short to hold a report.
	ErrTruncated = errors.New("report truncated")
	// ErrBadIdentifier is returned for buffers that are not rectfill reports.
	ErrBadIdentifier = errors.New("not a rectfill report")
	// ErrCorrupt is returned when a report's offsets point outside the buffer.
	ErrCorrupt = errors.New("report corrupt")
)

// Summary is the archived form of a solve.
type Summary struct {
	RunID     string
	Area      int64
	BoundArea int64
	A, B      polygon.Point
	GridRows  int
	GridCols  int
	BlockSize int
	Elapsed   time.Duration
	Points    int
}

// FromSolution summarizes sol. bound is the unconstrained maximum for the
// same points.
func FromSolution(sol *solver.Solution, bound int64) Summary {
	return Summary{
		RunID:     sol.RunID.String(),
		Area:      sol.Best.Area,
		BoundArea: bound,
		A:         sol.Best.A,
		B:         sol.Best.B,
		GridRows:  sol.Stats.GridRows,
		GridCols:  sol.Stats.GridCols,
		BlockSize: sol.Index.BlockSize(),
		Elapsed:   sol.Stats.Elapsed,
		Points:    sol.Stats.Points,
	}
}

var builderPool = sync.Pool{
	New: func() interface{} {
		return flatbuffers.NewBuilder(256)
	},
}

// Encode serializes s.
func Encode(s Summary) []byte {
	b := builderPool.Get().(*flatbuffers.Builder)
	b.Reset()
	defer builderPool.Put(b)

	runID := b.CreateString(s.RunID)
	tableStart(b)
	tableAddString(b, slotRunID, runID)
	tableAddInt64(b, slotArea, s.Area)
	tableAddInt64(b, slotBoundArea, s.BoundArea)
	tableAddInt64(b, slotARow, s.A.Row)
	tableAddInt64(b, slotACol, s.A.Col)
	tableAddInt64(b, slotBRow, s.B.Row)
	tableAddInt64(b, slotBCol, s.B.Col)
	tableAddInt32(b, slotGridRows, int32(s.GridRows))
	tableAddInt32(b, slotGridCols, int32(s.GridCols))
	tableAddInt32(b, slotBlockSize, int32(s.BlockSize))
	tableAddInt64(b, slotElapsedNS, int64(s.Elapsed))
	tableAddInt32(b, slotPoints, int32(s.Points))
	root := tableEnd(b)
	b.FinishWithFileIdentifier(root, []byte(fileIdentifier))

	return slices.Clone(b.FinishedBytes())
}

// Decode parses a buffer produced by Encode.
func Decode(buf []byte) (s Summary, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT+len(fileIdentifier) {
		return Summary{}, ErrTruncated
	}
	if string(buf[flatbuffers.SizeUOffsetT:flatbuffers.SizeUOffsetT+len(fileIdentifier)]) != fileIdentifier {
		return Summary{}, ErrBadIdentifier
	}

	// Accessors index the buffer directly and panic on bad offsets.
	defer func() {
		if r := recover(); r != nil {
			s, err = Summary{}, fmt.Errorf("%w: %v", ErrCorrupt, r)
		}
	}()

	t := rootAsTable(buf, 0)
	return Summary{
		RunID:     string(t.stringAt(slotRunID)),
		Area:      t.int64At(slotArea),
		BoundArea: t.int64At(slotBoundArea),
		A:         polygon.Point{Row: t.int64At(slotARow), Col: t.int64At(slotACol)},
		B:         polygon.Point{Row: t.int64At(slotBRow), Col: t.int64At(slotBCol)},
		GridRows:  int(t.int32At(slotGridRows)),
		GridCols:  int(t.int32At(slotGridCols)),
		BlockSize: int(t.int32At(slotBlockSize)),
		Elapsed:   time.Duration(t.int64At(slotElapsedNS)),
		Points:    int(t.int32At(slotPoints)),
	}, nil
}

// WriteFile encodes s to path.
func WriteFile(path string, s Summary) error {
	if err := os.WriteFile(path, Encode(s), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes the report stored at path.
func ReadFile(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	s, err := Decode(data)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
