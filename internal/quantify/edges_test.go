package quantify

import (
	"testing"

	"go-crack-quant/internal/mask"
)

func squareMask(size, from, to int) *mask.Binary {
	m := mask.New(size, size)
	for r := from; r <= to; r++ {
		for c := from; c <= to; c++ {
			m.Set(r, c, true)
		}
	}
	return m
}

func TestDetectEdges_UniformMasks(t *testing.T) {
	d := NewGradientEdgeDetector()

	if pts := d.DetectEdges(mask.New(10, 10)); len(pts) != 0 {
		t.Errorf("Expected no edges on all-background mask, got %d", len(pts))
	}

	full := squareMask(10, 0, 9)
	if pts := d.DetectEdges(full); len(pts) != 0 {
		t.Errorf("Expected no edges on all-foreground mask, got %d", len(pts))
	}
}

func TestDetectEdges_TinyMask(t *testing.T) {
	d := NewGradientEdgeDetector()
	m := mask.New(2, 2)
	m.Set(0, 0, true)

	if pts := d.DetectEdges(m); pts != nil {
		t.Errorf("Expected nil for masks below the kernel size, got %v", pts)
	}
}

func TestDetectEdges_SquareOutline(t *testing.T) {
	m := squareMask(11, 3, 7)

	pts := NewGradientEdgeDetector().DetectEdges(m)
	if len(pts) < 8 {
		t.Fatalf("Expected an outline, got %d points", len(pts))
	}
	for _, p := range pts {
		// Every edge point must sit within one pixel of the square's
		// boundary, never deep inside or far outside.
		dr := distToBand(p.Row, 3, 7)
		dc := distToBand(p.Col, 3, 7)
		onBoundary := (dr <= 1 && p.Col >= 2 && p.Col <= 8) || (dc <= 1 && p.Row >= 2 && p.Row <= 8)
		if !onBoundary {
			t.Errorf("Edge point %v is not near the square outline", p)
		}
	}
	if containsPoint(pts, mask.Point{Row: 5, Col: 5}) {
		t.Error("Center of the square must not be an edge point")
	}
}

func TestDetectEdges_ThinLineHasBothFlanks(t *testing.T) {
	m := lineMask(11, 15, 5, 2, 12)

	pts := NewGradientEdgeDetector().DetectEdges(m)
	above, below := false, false
	for _, p := range pts {
		if p.Row == 4 {
			above = true
		}
		if p.Row == 6 {
			below = true
		}
	}
	if !above || !below {
		t.Errorf("Expected edges on both flanks of the line (above=%v below=%v), points: %v",
			above, below, pts)
	}
}

func TestDetectEdges_RasterOrder(t *testing.T) {
	pts := NewGradientEdgeDetector().DetectEdges(squareMask(11, 3, 7))
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
			t.Fatalf("Points out of raster order at %d: %v then %v", i, prev, cur)
		}
	}
}

func TestDetectEdges_SupersetKeepsBoundary(t *testing.T) {
	small := squareMask(15, 5, 8)
	big := squareMask(15, 4, 9)

	d := NewGradientEdgeDetector()
	if len(d.DetectEdges(small)) == 0 {
		t.Fatal("Expected boundary points for the smaller mask")
	}
	if len(d.DetectEdges(big)) == 0 {
		t.Error("A foreground superset must not lose all boundary points")
	}
}

func distToBand(v, lo, hi int) int {
	a := v - lo
	if a < 0 {
		a = -a
	}
	b := v - hi
	if b < 0 {
		b = -b
	}
	if a < b {
		return a
	}
	return b
}

func containsPoint(pts []mask.Point, q mask.Point) bool {
	for _, p := range pts {
		if p == q {
			return true
		}
	}
	return false
}
