package quantify

import (
	"math"

	"go-crack-quant/internal/mask"
)

// Squared-distance sentinel for "no background seen yet". Large enough to
// lose to any real distance, small enough to keep the envelope arithmetic
// finite.
const farAway = 1e20

// euclideanFieldBuilder implements DistanceFieldBuilder with the
// Felzenszwalb-Huttenlocher two-pass transform over squared distances. The
// result is the exact Euclidean distance, not a chamfer approximation, so
// ties resolve symmetrically.
type euclideanFieldBuilder struct{}

// NewDistanceFieldBuilder creates the exact Euclidean distance transform.
func NewDistanceFieldBuilder() DistanceFieldBuilder {
	return &euclideanFieldBuilder{}
}

// Build computes per-cell distance to the nearest background cell. For an
// all-foreground mask the distance is taken to the grid border instead.
// Background cells hold 0. Defined for every mask, including empty ones.
func (b *euclideanFieldBuilder) Build(m *mask.Binary) *mask.Field {
	rows, cols := m.Rows(), m.Cols()
	out := mask.NewField(rows, cols)
	if rows == 0 || cols == 0 {
		return out
	}

	hasBackground := false
	sq := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if m.At(r, c) {
				sq[r*cols+c] = farAway
			} else {
				hasBackground = true
			}
		}
	}

	if !hasBackground {
		// No background to measure against; fall back to steps needed to
		// leave the grid.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				out.Set(r, c, float64(min4(r+1, rows-r, c+1, cols-c)))
			}
		}
		return out
	}

	// Columns, then rows, over squared distances.
	col := make([]float64, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			col[r] = sq[r*cols+c]
		}
		transform1D(col)
		for r := 0; r < rows; r++ {
			sq[r*cols+c] = col[r]
		}
	}
	row := make([]float64, cols)
	for r := 0; r < rows; r++ {
		copy(row, sq[r*cols:(r+1)*cols])
		transform1D(row)
		for c := 0; c < cols; c++ {
			out.Set(r, c, math.Sqrt(row[c]))
		}
	}
	return out
}

// transform1D replaces f with the lower envelope of the parabolas
// y = f[i] + (x-i)^2, i.e. the 1D squared distance transform.
func transform1D(f []float64) {
	n := len(f)
	if n == 0 {
		return
	}
	v := make([]int, n)       // parabola apex positions
	z := make([]float64, n+1) // envelope breakpoints
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	out := make([]float64, n)
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		d := float64(q - v[k])
		out[q] = d*d + f[v[k]]
	}
	copy(f, out)
}

// intersect returns the abscissa where parabolas from apexes q and p cross.
func intersect(f []float64, q, p int) float64 {
	return ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*q-2*p)
}

func min4(a, b, c, d int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	if d < m {
		m = d
	}
	return m
}
