package qpbuild

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/ll550/Trajectory-Generator/basis"
)

// BuildCost assembles the block-diagonal Hessian H: one (n+1)x(n+1) block
// per (segment, dimension), each encoding the integral-on-[0,1] of the
// squared m-th derivative of the monomial basis, m = minDeriv[dim].
// Duration is deliberately not folded into H: the objective is taken in
// normalized time and weights every segment equally regardless of its
// physical duration, even when segment durations differ.
func BuildCost(minDeriv []int, nseg, n int, eng *basis.Engine) (*mat.Dense, error) {
	d := len(minDeriv)
	size := DecisionLength(d, n, nseg)
	h := mat.NewDense(size, size, nil)

	for s := 0; s < nseg; s++ {
		for j := 0; j < d; j++ {
			block, err := costBlock(minDeriv[j], n, eng)
			if err != nil {
				return nil, err
			}
			offset := FlatIndex(d, n, j, s)
			setBlock(h, offset, block)
		}
	}
	return h, nil
}

// setBlock writes a (n+1)x(n+1) block into h at (offset, offset).
func setBlock(h *mat.Dense, offset int, block *mat.Dense) {
	n1, _ := block.Dims()
	for i := 0; i < n1; i++ {
		for j := 0; j < n1; j++ {
			h.Set(offset+i, offset+j, block.At(i, j))
		}
	}
}

// costBlock computes the (n+1)x(n+1) pre-integration coefficient matrix for
// minimizing derivative order m, then integrates term-wise on [0,1].
func costBlock(m, n int, eng *basis.Engine) (*mat.Dense, error) {
	block := mat.NewDense(n+1, n+1, nil)

	if m == 0 {
		// Hilbert-matrix-like form: entry (i,j) = 1/(p+1) where
		// p = (n-i)+(n-j), the summed monomial power.
		for i := 0; i <= n; i++ {
			for j := 0; j <= n; j++ {
				p := basis.ExponentOf(n, i) + basis.ExponentOf(n, j)
				block.Set(i, j, basis.IntegralExponent(p))
			}
		}
		return block, nil
	}

	op, err := eng.Operator(m)
	if err != nil {
		return nil, err
	}
	// c is the column-sum of D[m] as a column vector: since D[m] has at
	// most one nonzero entry per column (differentiation only ever shifts
	// a monomial's row by m), the column sum recovers that entry
	// directly, i.e. the coefficient of d^m/dtau^m(tau^(n-i)) for each
	// basis column i.
	c := colSums(op)

	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			coeff := c[i] * c[j]
			p := basis.ExponentOf(n, i) + basis.ExponentOf(n, j) - 2*m
			block.Set(i, j, coeff*basis.IntegralExponent(p))
		}
	}
	return block, nil
}

// colSums returns, for each column j, the sum over rows i of m.At(i,j).
func colSums(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = m.At(i, j)
		}
		out[j] = floats.Sum(col)
	}
	return out
}
