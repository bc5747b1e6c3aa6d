package mask

// Field is a 2D grid of non-negative real values with the same dimensions as
// the mask it was derived from. Background cells hold 0 by convention; only
// foreground-cell values carry meaning downstream.
type Field struct {
	rows, cols int
	vals       []float64
}

// NewField returns an all-zero field of the given dimensions.
// Negative dimensions are clamped to zero.
func NewField(rows, cols int) *Field {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Field{rows: rows, cols: cols, vals: make([]float64, rows*cols)}
}

// Rows returns the field height.
func (f *Field) Rows() int { return f.rows }

// Cols returns the field width.
func (f *Field) Cols() int { return f.cols }

// At returns the value at (row, col). Out-of-range coordinates read as 0.
func (f *Field) At(row, col int) float64 {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return 0
	}
	return f.vals[row*f.cols+col]
}

// Set stores a value at (row, col).
func (f *Field) Set(row, col int, v float64) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return
	}
	f.vals[row*f.cols+col] = v
}
