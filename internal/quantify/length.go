package quantify

import (
	"math"

	"go-crack-quant/internal/mask"
)

// LengthEstimator accumulates skeleton path length in raster-scan order.
//
// Scan order is not the geometric path order along the centerline: for a
// curved or branching skeleton, consecutive scan-order points can be far
// apart (end of one row to the start of the next), which overestimates
// length. That accumulation is the compatibility contract here; a
// graph-traversal length would produce different numbers.
type LengthEstimator struct{}

// NewLengthEstimator creates the scan-order length estimator.
func NewLengthEstimator() *LengthEstimator {
	return &LengthEstimator{}
}

// Length sums the Euclidean hops between consecutive skeleton points in
// raster-scan order and scales to millimeters. Fewer than two skeleton
// points yield 0.
func (e *LengthEstimator) Length(skeleton *mask.Binary, pxToMM float64) float64 {
	points := skeleton.ForegroundPoints()
	if len(points) < 2 {
		return 0
	}
	total := 0.0
	prev := points[0]
	for _, p := range points[1:] {
		total += math.Hypot(float64(p.Row-prev.Row), float64(p.Col-prev.Col))
		prev = p
	}
	return total * pxToMM
}
