package types

import "gonum.org/v1/gonum/mat"

// Problem is the assembled QP: minimize x^T H x subject to Aeq x = Beq and
// Aineq x <= Bineq. H, Aeq, and Aineq are dense here; a sparse
// representation would be the natural scale-up, since every block is
// block-diagonal or block-bidiagonal, but the algorithm is identical
// either way and this module stays dense throughout, using
// gonum.org/v1/gonum/mat as its matrix library.
type Problem struct {
	H     *mat.Dense
	Aeq   *mat.Dense
	Beq   *mat.VecDense
	Aineq *mat.Dense
	Bineq *mat.VecDense
	NDim  int
	NSeg  int
	Order int
}

// DecisionLength returns d*N*(n+1), the length of the flat decision vector.
func (p Problem) DecisionLength() int {
	return p.NDim * p.NSeg * (p.Order + 1)
}

// HasInequalities reports whether this problem carries any inequality rows.
func (p Problem) HasInequalities() bool {
	return p.Aineq != nil && p.Aineq.RawMatrix().Rows > 0
}
