package quantify

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"go-crack-quant/internal/mask"
)

// WidthEstimator derives local crack width at every skeleton point by summing
// its distances to the two nearest boundary points. For a point centered on a
// thin crack that sum approximates "distance to the left flank plus distance
// to the right flank" without computing the crack normal. The estimate can be
// distorted near endpoints and branch junctions, where both nearest boundary
// points may lie on the same flank.
type WidthEstimator struct {
	detector    EdgeDetector
	newSearcher SearcherFactory
	workers     int
}

// NewWidthEstimator wires the estimator with its boundary detector, the
// nearest-two query implementation, and the worker count for the per-point
// search (workers <= 0 means one per CPU).
func NewWidthEstimator(detector EdgeDetector, factory SearcherFactory, workers int) *WidthEstimator {
	if factory == nil {
		factory = NewBruteForceSearcher
	}
	return &WidthEstimator{detector: detector, newSearcher: factory, workers: workers}
}

// Estimate returns the maximum and mean crack width in millimeters. An empty
// skeleton or a boundary set with fewer than two points yields (0, 0).
//
// The per-point searches run in parallel, but each result lands in the slot
// of its skeleton point, so the reductions see values in skeleton scan order
// and the output is bit-identical regardless of scheduling.
func (e *WidthEstimator) Estimate(m *mask.Binary, skeleton *mask.Binary, pxToMM float64) (maxMM, meanMM float64) {
	edges := e.detector.DetectEdges(m)
	if len(edges) == 0 {
		return 0, 0
	}
	points := skeleton.ForegroundPoints()
	if len(points) == 0 {
		return 0, 0
	}

	searcher := e.newSearcher(edges)
	widths := make([]float64, len(points))
	valid := make([]bool, len(points))

	pool := NewWorkerPool(e.workers)
	pool.Start()
	defer pool.Close()

	chunk := (len(points) + pool.Workers() - 1) / pool.Workers()
	for start := 0; start < len(points); start += chunk {
		end := start + chunk
		if end > len(points) {
			end = len(points)
		}
		pool.Submit(func(start, end int) func() {
			return func() {
				for i := start; i < end; i++ {
					first, second, ok := searcher.NearestTwo(points[i])
					if !ok {
						continue
					}
					widths[i] = first + second
					valid[i] = true
				}
			}
		}(start, end))
	}
	pool.Wait()

	estimates := make([]float64, 0, len(widths))
	for i, w := range widths {
		if valid[i] {
			estimates = append(estimates, w)
		}
	}
	if len(estimates) == 0 {
		return 0, 0
	}
	return floats.Max(estimates) * pxToMM, stat.Mean(estimates, nil) * pxToMM
}
