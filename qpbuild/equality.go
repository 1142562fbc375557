package qpbuild

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ll550/Trajectory-Generator/basis"
	"github.com/ll550/Trajectory-Generator/types"
)

// denseRows accumulates constraint rows as plain float64 slices so callers
// don't need to know the final row count up front; ToMatrices converts the
// accumulated rows into a gonum mat.Dense/VecDense pair once assembly is
// complete.
type denseRows struct {
	cols int
	rows [][]float64
	rhs  []float64
}

func newDenseRows(cols int) *denseRows {
	return &denseRows{cols: cols}
}

func (d *denseRows) addRow(row []float64, rhs float64) {
	d.rows = append(d.rows, row)
	d.rhs = append(d.rhs, rhs)
}

// Append merges other's rows into d; both must share the same column
// count. Used to combine the Equality and Continuity builders' output
// into a single Aeq/beq pair.
func (d *denseRows) Append(other *denseRows) {
	d.rows = append(d.rows, other.rows...)
	d.rhs = append(d.rhs, other.rhs...)
}

// place writes vals into row starting at column offset, in place.
func place(row []float64, offset int, vals []float64) {
	copy(row[offset:offset+len(vals)], vals)
}

func (d *denseRows) newRow() []float64 {
	return make([]float64, d.cols)
}

// NumRows reports how many rows have been accumulated so far.
func (d *denseRows) NumRows() int {
	return len(d.rows)
}

// ToMatrices flattens the accumulated rows into a gonum mat.Dense (A) and
// mat.VecDense (b) pair, A*x compared against b. A nil, nil pair means no
// rows were ever added (e.g. no inequality bounds were supplied); gonum's
// mat.NewDense panics on a zero-row allocation, so the empty case is
// represented as nil rather than a degenerate matrix.
func (d *denseRows) ToMatrices() (*mat.Dense, *mat.VecDense) {
	if len(d.rows) == 0 {
		return nil, nil
	}
	flat := make([]float64, 0, len(d.rows)*d.cols)
	for _, row := range d.rows {
		flat = append(flat, row...)
	}
	a := mat.NewDense(len(d.rows), d.cols, flat)
	b := mat.NewVecDense(len(d.rhs), append([]float64(nil), d.rhs...))
	return a, b
}

// BuildEquality assembles the waypoint equality rows (E, bE): one row per
// (waypoint, derivative, dimension) combination with a supplied, finite
// value at a derivative order within that dimension's continuity budget.
// NaN entries never produce rows.
func BuildEquality(waypoints []types.Waypoint, contDeriv []int, n int, eng *basis.Engine) (Aeq *denseRows, err error) {
	durations, err := types.Durations(waypoints)
	if err != nil {
		return nil, err
	}
	d := len(contDeriv)
	nseg := len(durations)
	rows := newDenseRows(DecisionLength(d, n, nseg))

	for pt := 0; pt <= nseg; pt++ {
		seg := pt
		tau := 0.0
		if pt == nseg {
			seg = nseg - 1
			tau = 1
		}
		dt := durations[seg]
		w := waypoints[pt]
		for k := 0; k <= basis.MaxDerivative; k++ {
			vals := w.Deriv(k)
			if vals == nil {
				continue
			}
			basisRow, err := eng.Row(tau, k)
			if err != nil {
				return nil, err
			}
			for j := 0; j < d; j++ {
				if j >= len(vals) || math.IsNaN(vals[j]) {
					continue
				}
				if k > contDeriv[j] {
					continue
				}
				row := rows.newRow()
				place(row, FlatIndex(d, n, j, seg), basisRow)
				rhs := vals[j] * basis.Pow(dt, k)
				rows.addRow(row, rhs)
			}
		}
	}
	return rows, nil
}
