package quantify

import "go-crack-quant/internal/mask"

// Skeletonizer reduces the foreground of a binary mask to a 1-pixel-wide
// topological skeleton. Implementations must preserve connectivity and
// endpoints and be deterministic for a given input.
type Skeletonizer interface {
	Skeletonize(m *mask.Binary) *mask.Binary
}

// DistanceFieldBuilder computes, for every foreground cell, the Euclidean
// distance to the nearest background cell.
type DistanceFieldBuilder interface {
	Build(m *mask.Binary) *mask.Field
}

// EdgeDetector finds the pixels on the transition between foreground and
// background. Points are returned in raster-scan order.
type EdgeDetector interface {
	DetectEdges(m *mask.Binary) []mask.Point
}

// NearestSearcher answers nearest-two queries against a fixed point set.
// Both distances are exact Euclidean distances in pixel units, first <= second.
// ok is false when the point set holds fewer than two points.
type NearestSearcher interface {
	NearestTwo(p mask.Point) (first, second float64, ok bool)
}

// SearcherFactory builds a NearestSearcher over a boundary point set.
type SearcherFactory func(points []mask.Point) NearestSearcher
