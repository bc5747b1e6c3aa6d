package quantify

import "go-crack-quant/internal/mask"

// zhangSuenSkeletonizer implements Skeletonizer with Zhang-Suen iterative
// thinning. The grid is padded with one background ring so foreground touching
// the image border thins the same way interior foreground does.
type zhangSuenSkeletonizer struct{}

// NewSkeletonizer creates the default Zhang-Suen skeletonizer.
func NewSkeletonizer() Skeletonizer {
	return &zhangSuenSkeletonizer{}
}

// Neighbor offsets in Zhang-Suen order: p2..p9 clockwise starting north.
var neighborOffsets = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Skeletonize thins the mask foreground to a 1-pixel-wide centerline.
// Isolated single pixels survive as one-point skeletons; an empty mask yields
// an empty skeleton of the same dimensions.
func (s *zhangSuenSkeletonizer) Skeletonize(m *mask.Binary) *mask.Binary {
	rows, cols := m.Rows(), m.Cols()
	out := mask.New(rows, cols)
	if rows == 0 || cols == 0 {
		return out
	}

	// Working grid with a 1-pixel background pad.
	w, h := cols+2, rows+2
	grid := make([]uint8, w*h)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if m.At(r, c) {
				grid[(r+1)*w+(c+1)] = 1
			}
		}
	}

	var deletions []int
	for changed := true; changed; {
		changed = false
		for sub := 0; sub < 2; sub++ {
			deletions = deletions[:0]
			for y := 1; y < h-1; y++ {
				for x := 1; x < w-1; x++ {
					idx := y*w + x
					if grid[idx] == 0 {
						continue
					}

					var p [8]uint8
					for i, off := range neighborOffsets {
						p[i] = grid[(y+off[0])*w+(x+off[1])]
					}

					if !removable(p, sub) {
						continue
					}
					deletions = append(deletions, idx)
				}
			}
			// Deletions apply after the whole sub-iteration so every pixel
			// is judged against the same snapshot.
			for _, idx := range deletions {
				grid[idx] = 0
				changed = true
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[(r+1)*w+(c+1)] != 0 {
				out.Set(r, c, true)
			}
		}
	}
	return out
}

// removable applies the Zhang-Suen deletion conditions to the neighborhood
// p2..p9 for the given sub-iteration (0 or 1).
func removable(p [8]uint8, sub int) bool {
	nonZero := 0
	for _, v := range p {
		if v != 0 {
			nonZero++
		}
	}
	// Endpoints (one neighbor) and isolated pixels (zero neighbors) stay.
	if nonZero < 2 || nonZero > 6 {
		return false
	}
	if transitions(p) != 1 {
		return false
	}
	// p[0]=N, p[2]=E, p[4]=S, p[6]=W.
	if sub == 0 {
		return (p[0] == 0 || p[2] == 0 || p[4] == 0) &&
			(p[2] == 0 || p[4] == 0 || p[6] == 0)
	}
	return (p[0] == 0 || p[2] == 0 || p[6] == 0) &&
		(p[0] == 0 || p[4] == 0 || p[6] == 0)
}

// transitions counts 0->1 transitions in the circular sequence p2..p9,p2.
func transitions(p [8]uint8) int {
	n := 0
	for i := 0; i < 8; i++ {
		if p[i] == 0 && p[(i+1)%8] != 0 {
			n++
		}
	}
	return n
}
