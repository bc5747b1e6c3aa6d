package quantify

import (
	"testing"

	"go-crack-quant/internal/mask"
)

func lineMask(rows, cols, row, colFrom, colTo int) *mask.Binary {
	m := mask.New(rows, cols)
	for c := colFrom; c <= colTo; c++ {
		m.Set(row, c, true)
	}
	return m
}

func TestSkeletonize_EmptyMask(t *testing.T) {
	s := NewSkeletonizer()

	for _, m := range []*mask.Binary{mask.New(0, 0), mask.New(0, 7), mask.New(5, 5)} {
		skel := s.Skeletonize(m)
		if skel.Rows() != m.Rows() || skel.Cols() != m.Cols() {
			t.Errorf("Expected %dx%d skeleton, got %dx%d", m.Rows(), m.Cols(), skel.Rows(), skel.Cols())
		}
		if skel.CountForeground() != 0 {
			t.Errorf("Expected empty skeleton, got %d points", skel.CountForeground())
		}
	}
}

func TestSkeletonize_SinglePixelSurvives(t *testing.T) {
	m := mask.New(5, 5)
	m.Set(2, 2, true)

	skel := NewSkeletonizer().Skeletonize(m)
	if skel.CountForeground() != 1 || !skel.At(2, 2) {
		t.Errorf("Expected one-point skeleton at (2,2), got %v", skel.ForegroundPoints())
	}
}

func TestSkeletonize_ThinLineUnchanged(t *testing.T) {
	m := lineMask(7, 15, 3, 2, 12)

	skel := NewSkeletonizer().Skeletonize(m)
	if skel.CountForeground() != m.CountForeground() {
		t.Errorf("Expected 1px line to survive thinning, got %d of %d points",
			skel.CountForeground(), m.CountForeground())
	}
	for c := 2; c <= 12; c++ {
		if !skel.At(3, c) {
			t.Errorf("Expected skeleton point at (3,%d)", c)
		}
	}
}

func TestSkeletonize_ThickRibbonThins(t *testing.T) {
	m := mask.New(9, 20)
	for r := 3; r <= 5; r++ {
		for c := 2; c <= 17; c++ {
			m.Set(r, c, true)
		}
	}

	skel := NewSkeletonizer().Skeletonize(m)
	if skel.CountForeground() == 0 {
		t.Fatal("Expected non-empty skeleton for a connected ribbon")
	}
	if skel.CountForeground() >= m.CountForeground() {
		t.Errorf("Expected thinning to remove points: %d -> %d",
			m.CountForeground(), skel.CountForeground())
	}
	// A 3px-tall ribbon must reduce to an essentially 1px-tall curve.
	for c := 0; c < m.Cols(); c++ {
		perColumn := 0
		for r := 0; r < m.Rows(); r++ {
			if skel.At(r, c) {
				perColumn++
			}
		}
		if perColumn > 2 {
			t.Errorf("Column %d still holds %d skeleton points", c, perColumn)
		}
	}
}

func TestSkeletonize_SubsetOfForeground(t *testing.T) {
	m := mask.New(12, 12)
	for r := 2; r <= 9; r++ {
		for c := 2; c <= 9; c++ {
			if (r-5)*(r-5)+(c-6)*(c-6) <= 12 {
				m.Set(r, c, true)
			}
		}
	}

	skel := NewSkeletonizer().Skeletonize(m)
	for _, p := range skel.ForegroundPoints() {
		if !m.At(p.Row, p.Col) {
			t.Errorf("Skeleton point %v is not mask foreground", p)
		}
	}
}

func TestSkeletonize_BorderForegroundThins(t *testing.T) {
	// Foreground touching the grid border must thin like interior foreground.
	m := mask.New(3, 10)
	for r := 0; r < 3; r++ {
		for c := 0; c < 10; c++ {
			m.Set(r, c, true)
		}
	}

	skel := NewSkeletonizer().Skeletonize(m)
	if skel.CountForeground() >= m.CountForeground() {
		t.Errorf("Expected border-touching ribbon to thin: %d -> %d",
			m.CountForeground(), skel.CountForeground())
	}
}

func TestSkeletonize_Deterministic(t *testing.T) {
	m := mask.New(10, 10)
	for r := 1; r < 9; r++ {
		for c := 1; c < 9; c++ {
			if (r+c)%3 != 0 {
				m.Set(r, c, true)
			}
		}
	}

	s := NewSkeletonizer()
	a := s.Skeletonize(m).ForegroundPoints()
	b := s.Skeletonize(m).ForegroundPoints()
	if len(a) != len(b) {
		t.Fatalf("Runs disagree: %d vs %d points", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Point %d: %v vs %v", i, a[i], b[i])
		}
	}
}
