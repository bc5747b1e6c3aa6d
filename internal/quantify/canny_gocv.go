//go:build gocv
// +build gocv

package quantify

import (
	"gocv.io/x/gocv"

	"go-crack-quant/internal/mask"
)

// cannyEdgeDetector implements EdgeDetector through OpenCV's Canny operator,
// with the same 100/200 thresholds as the pure-Go detector. Built only with
// the gocv tag.
type cannyEdgeDetector struct{}

// NewCannyEdgeDetector creates the OpenCV-backed edge detector.
func NewCannyEdgeDetector() (EdgeDetector, error) {
	return &cannyEdgeDetector{}, nil
}

func (d *cannyEdgeDetector) DetectEdges(m *mask.Binary) []mask.Point {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}

	src, err := gocv.NewMatFromBytes(rows, cols, gocv.MatTypeCV8UC1, m.Intensities())
	if err != nil {
		return nil
	}
	defer src.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(src, &edges, edgeLowThreshold, edgeHighThreshold)

	data := edges.ToBytes()
	if len(data) != rows*cols {
		return nil
	}
	pts := make([]mask.Point, 0, 64)
	for r := 0; r < rows; r++ {
		base := r * cols
		for c := 0; c < cols; c++ {
			if data[base+c] != 0 {
				pts = append(pts, mask.Point{Row: r, Col: c})
			}
		}
	}
	return pts
}
