package mask

// Point is a pixel coordinate in (row, column) order. Slices of points
// produced by this package are always in raster-scan order: ascending row,
// then ascending column within a row.
type Point struct {
	Row, Col int
}

// Binary is a 2D foreground/background grid. It represents both segmentation
// masks and skeletons. The zero-size grid (0 rows or 0 columns) is valid and
// denotes "no image".
type Binary struct {
	rows, cols int
	pix        []uint8
}

// New returns an all-background grid of the given dimensions.
// Negative dimensions are clamped to zero.
func New(rows, cols int) *Binary {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Binary{rows: rows, cols: cols, pix: make([]uint8, rows*cols)}
}

// Rows returns the grid height.
func (b *Binary) Rows() int { return b.rows }

// Cols returns the grid width.
func (b *Binary) Cols() int { return b.cols }

// At reports whether the cell at (row, col) is foreground.
// Out-of-range coordinates are background.
func (b *Binary) At(row, col int) bool {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return false
	}
	return b.pix[row*b.cols+col] != 0
}

// Set marks the cell at (row, col) as foreground or background.
func (b *Binary) Set(row, col int, foreground bool) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return
	}
	if foreground {
		b.pix[row*b.cols+col] = 1
	} else {
		b.pix[row*b.cols+col] = 0
	}
}

// Clone returns an independent copy of the grid.
func (b *Binary) Clone() *Binary {
	c := &Binary{rows: b.rows, cols: b.cols, pix: make([]uint8, len(b.pix))}
	copy(c.pix, b.pix)
	return c
}

// CountForeground returns the number of foreground cells.
func (b *Binary) CountForeground() int {
	n := 0
	for _, v := range b.pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// ForegroundPoints returns the coordinates of all foreground cells in
// raster-scan order.
func (b *Binary) ForegroundPoints() []Point {
	pts := make([]Point, 0, 64)
	for r := 0; r < b.rows; r++ {
		base := r * b.cols
		for c := 0; c < b.cols; c++ {
			if b.pix[base+c] != 0 {
				pts = append(pts, Point{Row: r, Col: c})
			}
		}
	}
	return pts
}

// Intensities renders the grid as 8-bit intensities: 255 for foreground,
// 0 for background. Row-major, rows*cols bytes.
func (b *Binary) Intensities() []uint8 {
	out := make([]uint8, len(b.pix))
	for i, v := range b.pix {
		if v != 0 {
			out[i] = 255
		}
	}
	return out
}
