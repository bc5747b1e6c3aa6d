//go:build !gocv
// +build !gocv

package quantify

import "errors"

// NewCannyEdgeDetector requires the gocv build tag; without it the
// constructor fails and callers fall back to the pure-Go detector.
func NewCannyEdgeDetector() (EdgeDetector, error) {
	return nil, errors.New("gocv build tag is not enabled")
}
