// Package render draws the compressed grid of a solve for inspection.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/rectfill/rectfill/pkg/algo"
	"github.com/rectfill/rectfill/pkg/solver"
)

// Palette used by Image.
var (
	ColorExterior = color.RGBA{0xf4, 0xf4, 0xf4, 0xff}
	ColorInterior = color.RGBA{0x9e, 0xc9, 0xe8, 0xff}
	ColorBoundary = color.RGBA{0x20, 0x20, 0x20, 0xff}
	ColorBest     = color.RGBA{0xd9, 0x48, 0x3b, 0xff}
)

// Image paints one pixel per compressed grid cell: exterior, interior,
// outline, and the best rectangle on top.
func Image(sol *solver.Solution) *image.RGBA {
	rows, cols := sol.Filled.Rows(), sol.Filled.Cols()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			col := ColorExterior
			switch {
			case sol.Boundary.At(r, c):
				col = ColorBoundary
			case sol.Filled.At(r, c):
				col = ColorInterior
			}
			img.SetRGBA(c, r, col)
		}
	}

	if sol.Best.Area > 0 {
		a, errA := sol.Geometry.Cell(sol.Best.A)
		b, errB := sol.Geometry.Cell(sol.Best.B)
		if errA == nil && errB == nil {
			span := algo.SpanRect(a, b)
			rect := image.Rect(int(span.ColFirst), int(span.RowFirst), int(span.ColLast)+1, int(span.RowLast)+1)
			draw.Draw(img, rect, image.NewUniform(ColorBest), image.Point{}, draw.Over)
		}
	}
	return img
}

// Scale enlarges img by an integer factor without smoothing cell edges.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// PNG writes the solution grid as a PNG, each cell scale pixels wide.
func PNG(w io.Writer, sol *solver.Solution, scale int) error {
	if err := png.Encode(w, Scale(Image(sol), scale)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// ASCII writes mask as text, '#' for true cells and '.' for false ones.
func ASCII(w io.Writer, mask *algo.Mask) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < mask.Rows(); r++ {
		for c := 0; c < mask.Cols(); c++ {
			ch := byte('.')
			if mask.At(r, c) {
				ch = '#'
			}
			bw.WriteByte(ch)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
