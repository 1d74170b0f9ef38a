package algo

// DefaultBlockSize is the edge length, in cells, of one block index entry.
const DefaultBlockSize = 8

// BlockIndex is a one-level mipmap over a filled mask. Each entry covers a
// blockSize×blockSize square of cells and is true only when every one of
// them is filled. A false entry says nothing; queries fall back to the mask.
type BlockIndex struct {
	filled    *Mask
	blocks    *Mask
	blockSize int
}

// NewBlockIndex aggregates filled into blocks of blockSize cells per side.
// Blocks on the far edges are clipped to the grid.
func NewBlockIndex(filled *Mask, blockSize int) *BlockIndex {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	blockRows := (filled.Rows() + blockSize - 1) / blockSize
	blockCols := (filled.Cols() + blockSize - 1) / blockSize

	idx := &BlockIndex{
		filled:    filled,
		blocks:    NewMask(blockRows, blockCols, false),
		blockSize: blockSize,
	}
	for br := 0; br < blockRows; br++ {
		for bc := 0; bc < blockCols; bc++ {
			r, _ := idx.blockRect(br, bc).Intersect(filled.Bounds())
			if filled.AllRect(r) {
				idx.blocks.Set(br, bc, true)
			}
		}
	}
	return idx
}

func (idx *BlockIndex) blockRect(br, bc int) Rect {
	s := idx.blockSize
	return Rect{
		RowFirst: int32(br * s),
		RowLast:  int32((br+1)*s - 1),
		ColFirst: int32(bc * s),
		ColLast:  int32((bc+1)*s - 1),
	}
}

// BlockSize returns the block edge length in cells.
func (idx *BlockIndex) BlockSize() int { return idx.blockSize }

// Blocks returns the aggregate mask. Callers must not modify it.
func (idx *BlockIndex) Blocks() *Mask { return idx.blocks }

// Full returns the number of blocks that are entirely filled.
func (idx *BlockIndex) Full() int { return idx.blocks.Count() }

// Contains reports whether every cell of r is filled. r must lie inside the
// grid. Full blocks are skipped; every other block touched by r is checked
// cell by cell, but only where it overlaps r.
func (idx *BlockIndex) Contains(r Rect) bool {
	s := int32(idx.blockSize)
	for br := r.RowFirst / s; br <= r.RowLast/s; br++ {
		for bc := r.ColFirst / s; bc <= r.ColLast/s; bc++ {
			if idx.blocks.At(int(br), int(bc)) {
				continue
			}
			part, _ := idx.blockRect(int(br), int(bc)).Intersect(r)
			if !idx.filled.AllRect(part) {
				return false
			}
		}
	}
	return true
}
