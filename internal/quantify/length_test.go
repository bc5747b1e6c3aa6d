package quantify

import (
	"math"
	"testing"

	"go-crack-quant/internal/mask"
)

func TestLength_FewerThanTwoPoints(t *testing.T) {
	e := NewLengthEstimator()

	if got := e.Length(mask.New(5, 5), 1.0); got != 0 {
		t.Errorf("Expected 0 for empty skeleton, got %f", got)
	}

	one := mask.New(5, 5)
	one.Set(2, 2, true)
	if got := e.Length(one, 1.0); got != 0 {
		t.Errorf("Expected 0 for one-point skeleton, got %f", got)
	}
}

func TestLength_StraightLine(t *testing.T) {
	// L pixels in a row: L-1 unit hops.
	const L = 11
	skel := lineMask(7, 15, 3, 2, 2+L-1)

	got := NewLengthEstimator().Length(skel, 1.0)
	if math.Abs(got-float64(L-1)) > 1e-9 {
		t.Errorf("Expected length %d, got %f", L-1, got)
	}
}

func TestLength_ScanOrderAccumulation(t *testing.T) {
	// Points on two rows: the hop from the end of one row to the start of
	// the next is counted at full Euclidean distance. That is the contract,
	// even though it is not the geometric centerline length.
	skel := mask.New(4, 8)
	skel.Set(0, 0, true)
	skel.Set(0, 1, true)
	skel.Set(1, 5, true)

	want := 1.0 + math.Hypot(1, 4)
	got := NewLengthEstimator().Length(skel, 1.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}
}

func TestLength_ScaleLinearity(t *testing.T) {
	skel := lineMask(5, 20, 2, 1, 17)
	e := NewLengthEstimator()

	base := e.Length(skel, 1.0)
	scaled := e.Length(skel, 0.077)
	if math.Abs(scaled-base*0.077) > 1e-12 {
		t.Errorf("Expected %f, got %f", base*0.077, scaled)
	}
}
