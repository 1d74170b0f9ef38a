package algo

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func randomRect(rng *rand.Rand, rows, cols int) Rect {
	r0, r1 := int32(rng.IntN(rows)), int32(rng.IntN(rows))
	c0, c1 := int32(rng.IntN(cols)), int32(rng.IntN(cols))
	return Rect{
		RowFirst: min(r0, r1), RowLast: max(r0, r1),
		ColFirst: min(c0, c1), ColLast: max(c0, c1),
	}
}

func TestBlockIndexAgreesWithScan(t *testing.T) {
	_, comb := buildFilled(t, scenarioComb)

	rng := rand.New(rand.NewPCG(1, 2))
	dense := NewMask(64, 48, true)
	for i := 0; i < 40; i++ {
		dense.Set(rng.IntN(64), rng.IntN(48), false)
	}

	masks := map[string]*Mask{
		"Comb":  comb,
		"Dense": dense,
		"Full":  NewMask(32, 32, true),
		"Empty": NewMask(16, 16, false),
	}

	for name, m := range masks {
		for blockSize := 1; blockSize <= 16; blockSize++ {
			t.Run(fmt.Sprintf("%s/%d", name, blockSize), func(t *testing.T) {
				idx := NewBlockIndex(m, blockSize)
				for i := 0; i < 500; i++ {
					r := randomRect(rng, m.Rows(), m.Cols())
					if got, want := idx.Contains(r), m.AllRect(r); got != want {
						t.Fatalf("Contains(%v) = %v, scan = %v", r, got, want)
					}
				}
			})
		}
	}
}

func TestBlockIndexEntries(t *testing.T) {
	m := NewMask(16, 16, true)
	m.Set(9, 3, false)
	idx := NewBlockIndex(m, 8)

	want := [2][2]bool{{true, true}, {false, true}}
	for br := 0; br < 2; br++ {
		for bc := 0; bc < 2; bc++ {
			if got := idx.Blocks().At(br, bc); got != want[br][bc] {
				t.Errorf("block (%d,%d) = %v, want %v", br, bc, got, want[br][bc])
			}
		}
	}
	if idx.Full() != 3 {
		t.Errorf("Full() = %d, want 3", idx.Full())
	}

	// The hole is outside this span even though its block is not full.
	if !idx.Contains(Rect{RowFirst: 8, RowLast: 15, ColFirst: 4, ColLast: 15}) {
		t.Errorf("span beside the hole rejected")
	}
	if idx.Contains(Rect{RowFirst: 9, RowLast: 9, ColFirst: 0, ColLast: 15}) {
		t.Errorf("span over the hole accepted")
	}
}

func TestBlockIndexClipsPartialBlocks(t *testing.T) {
	// 12 is not a multiple of 8; the edge blocks are 4 cells wide.
	m := NewMask(12, 12, true)
	idx := NewBlockIndex(m, 8)
	if idx.Full() != 4 {
		t.Errorf("Full() = %d, want 4", idx.Full())
	}
	if !idx.Contains(m.Bounds()) {
		t.Errorf("full mask not contained")
	}
}

func TestBlockIndexIdempotent(t *testing.T) {
	_, filled := buildFilled(t, scenarioHarder)
	for _, blockSize := range []int{1, 3, 8, 32} {
		a := NewBlockIndex(filled, blockSize)
		b := NewBlockIndex(filled, blockSize)
		if !a.Blocks().Equal(b.Blocks()) {
			t.Errorf("block size %d: rebuilt index differs", blockSize)
		}
	}
}

func TestBlockIndexDefaultSize(t *testing.T) {
	idx := NewBlockIndex(NewMask(8, 8, true), 0)
	if idx.BlockSize() != DefaultBlockSize {
		t.Errorf("BlockSize() = %d, want %d", idx.BlockSize(), DefaultBlockSize)
	}
}
