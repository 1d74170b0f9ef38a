package render

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"

	"github.com/rectfill/rectfill/pkg/algo"
	"github.com/rectfill/rectfill/pkg/polygon"
	"github.com/rectfill/rectfill/pkg/solver"
)

func solveExample(t *testing.T) *solver.Solution {
	t.Helper()
	points := []polygon.Point{
		{Row: 7, Col: 1}, {Row: 11, Col: 1}, {Row: 11, Col: 7}, {Row: 9, Col: 7}, {Row: 9, Col: 5}, {Row: 2, Col: 5}, {Row: 2, Col: 3}, {Row: 7, Col: 3},
	}
	sol, err := solver.Solve(context.Background(), points, solver.Options{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	return sol
}

func TestImage(t *testing.T) {
	sol := solveExample(t)
	img := Image(sol)

	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("Bounds() = %v, want 16x16", b)
	}
	if got := img.RGBAAt(0, 0); got != ColorExterior {
		t.Errorf("origin = %v, want exterior", got)
	}
	// Best rectangle (2,3)-(9,5) maps to rows 1..5, cols 3..5.
	if got := img.RGBAAt(4, 3); got != ColorBest {
		t.Errorf("cell in best rectangle = %v, want %v", got, ColorBest)
	}
	// Row 7 (original row 11) is the bottom outline.
	if got := img.RGBAAt(1, 7); got != ColorBoundary {
		t.Errorf("outline cell = %v, want %v", got, ColorBoundary)
	}
}

func TestPNGScale(t *testing.T) {
	sol := solveExample(t)

	var buf bytes.Buffer
	if err := PNG(&buf, sol, 3); err != nil {
		t.Fatalf("PNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("Bounds() = %v, want 48x48", b)
	}
	r, g, b, _ := img.At(3*4+1, 3*3+2).RGBA()
	if uint8(r>>8) != ColorBest.R || uint8(g>>8) != ColorBest.G || uint8(b>>8) != ColorBest.B {
		t.Errorf("scaled best cell = %v", img.At(13, 11))
	}
}

func TestASCII(t *testing.T) {
	m := algo.NewMask(2, 3, false)
	m.Set(0, 1, true)
	m.Set(1, 2, true)

	var sb strings.Builder
	if err := ASCII(&sb, m); err != nil {
		t.Fatal(err)
	}
	if want := ".#.\n..#\n"; sb.String() != want {
		t.Errorf("ASCII() = %q, want %q", sb.String(), want)
	}
}
