package quantify

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"go-crack-quant/internal/mask"
)

// bruteForceSearcher is the reference NearestSearcher: a linear scan keeping
// the two smallest distances. Ties keep the earlier point in encounter order,
// so the selection is stable.
type bruteForceSearcher struct {
	points []mask.Point
}

// NewBruteForceSearcher builds a linear-scan searcher over the point set.
func NewBruteForceSearcher(points []mask.Point) NearestSearcher {
	return &bruteForceSearcher{points: points}
}

func (s *bruteForceSearcher) NearestTwo(p mask.Point) (first, second float64, ok bool) {
	if len(s.points) < 2 {
		return 0, 0, false
	}
	best, next := math.Inf(1), math.Inf(1)
	for _, q := range s.points {
		dr := float64(q.Row - p.Row)
		dc := float64(q.Col - p.Col)
		d := dr*dr + dc*dc
		if d < best {
			best, next = d, best
		} else if d < next {
			next = d
		}
	}
	return math.Sqrt(best), math.Sqrt(next), true
}

// kdTreeSearcher answers the same query through a gonum k-d tree. The search
// is exact; only the ordering of equidistant points may differ from the brute
// force scan, which leaves the summed width unchanged.
type kdTreeSearcher struct {
	tree *kdtree.Tree
	n    int
}

// NewKDTreeSearcher builds a k-d tree searcher over the point set.
func NewKDTreeSearcher(points []mask.Point) NearestSearcher {
	pts := make(kdtree.Points, len(points))
	for i, p := range points {
		pts[i] = kdtree.Point{float64(p.Row), float64(p.Col)}
	}
	return &kdTreeSearcher{tree: kdtree.New(pts, false), n: len(points)}
}

func (s *kdTreeSearcher) NearestTwo(p mask.Point) (first, second float64, ok bool) {
	if s.n < 2 {
		return 0, 0, false
	}
	keep := kdtree.NewNKeeper(2)
	s.tree.NearestSet(keep, kdtree.Point{float64(p.Row), float64(p.Col)})

	dists := make([]float64, 0, 2)
	for _, cd := range keep.Heap {
		if cd.Comparable == nil {
			continue
		}
		// kdtree.Point distances are squared Euclidean.
		dists = append(dists, math.Sqrt(cd.Dist))
	}
	if len(dists) < 2 {
		return 0, 0, false
	}
	if dists[0] > dists[1] {
		dists[0], dists[1] = dists[1], dists[0]
	}
	return dists[0], dists[1], true
}
