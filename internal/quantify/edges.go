package quantify

import "go-crack-quant/internal/mask"

// Hysteresis thresholds on the 0..255 intensity scale, matching the
// reference Canny configuration for binary masks.
const (
	edgeLowThreshold  = 100
	edgeHighThreshold = 200
)

// gradientEdgeDetector implements EdgeDetector in pure Go: the mask is
// rendered as 0/255 intensities, Sobel gradients are thinned by non-maximum
// suppression, and the 100/200 double threshold with hysteresis keeps the
// connected strong edges. On binary input this matches the Canny contract
// closely enough that the boundary point set traces both flanks of a crack.
type gradientEdgeDetector struct{}

// NewGradientEdgeDetector creates the default pure-Go edge detector.
func NewGradientEdgeDetector() EdgeDetector {
	return &gradientEdgeDetector{}
}

// DetectEdges returns the boundary pixels of the mask foreground in
// raster-scan order. A uniform mask (all foreground or all background)
// yields no edges.
func (d *gradientEdgeDetector) DetectEdges(m *mask.Binary) []mask.Point {
	rows, cols := m.Rows(), m.Cols()
	if rows < 3 || cols < 3 {
		return nil
	}
	pix := m.Intensities()

	// Sobel gradients with the OpenCV-default L1 magnitude.
	mag := make([]int32, rows*cols)
	dir := make([]uint8, rows*cols) // quantized direction: 0=E/W, 1=NE/SW, 2=N/S, 3=NW/SE
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			i := r*cols + c
			gx := -int32(pix[i-cols-1]) + int32(pix[i-cols+1]) +
				-2*int32(pix[i-1]) + 2*int32(pix[i+1]) +
				-int32(pix[i+cols-1]) + int32(pix[i+cols+1])
			gy := -int32(pix[i-cols-1]) - 2*int32(pix[i-cols]) - int32(pix[i-cols+1]) +
				int32(pix[i+cols-1]) + 2*int32(pix[i+cols]) + int32(pix[i+cols+1])

			mag[i] = absInt32(gx) + absInt32(gy)
			dir[i] = quantizeDirection(gx, gy)
		}
	}

	// Non-maximum suppression followed by the double threshold.
	const (
		weak   = 1
		strong = 2
	)
	class := make([]uint8, rows*cols)
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			i := r*cols + c
			v := mag[i]
			if v < edgeLowThreshold {
				continue
			}
			var a, b int32
			switch dir[i] {
			case 0: // horizontal gradient: compare east/west
				a, b = mag[i-1], mag[i+1]
			case 1: // diagonal NE/SW
				a, b = mag[i-cols+1], mag[i+cols-1]
			case 2: // vertical gradient: compare north/south
				a, b = mag[i-cols], mag[i+cols]
			default: // diagonal NW/SE
				a, b = mag[i-cols-1], mag[i+cols+1]
			}
			if v < a || v < b {
				continue
			}
			if v >= edgeHighThreshold {
				class[i] = strong
			} else {
				class[i] = weak
			}
		}
	}

	// Hysteresis: weak pixels survive only when 8-connected to a strong one.
	stack := make([]int, 0, 64)
	for i, cl := range class {
		if cl == strong {
			stack = append(stack, i)
		}
	}
	edge := make([]bool, rows*cols)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if edge[i] {
			continue
		}
		edge[i] = true
		r, c := i/cols, i%cols
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				nr, nc := r+dr, c+dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				j := nr*cols + nc
				if class[j] != 0 && !edge[j] {
					stack = append(stack, j)
				}
			}
		}
	}

	pts := make([]mask.Point, 0, 64)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if edge[r*cols+c] {
				pts = append(pts, mask.Point{Row: r, Col: c})
			}
		}
	}
	return pts
}

// quantizeDirection buckets the gradient angle into one of four directions
// for non-maximum suppression. Uses tan(22.5 deg) ~ 0.4142 boundaries scaled
// to integer arithmetic.
func quantizeDirection(gx, gy int32) uint8 {
	ax, ay := absInt32(gx), absInt32(gy)
	// |gy| <= 0.4142*|gx|  -> horizontal
	if 10*ay <= 4*ax {
		return 0
	}
	// |gy| >= 2.4142*|gx| -> vertical
	if 10*ay >= 24*ax {
		return 2
	}
	if (gx > 0) == (gy > 0) {
		return 3 // NW/SE diagonal
	}
	return 1 // NE/SW diagonal
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
