package solve

import (
	"gonum.org/v1/gonum/mat"
)

// conditionThreshold is the KKT matrix condition number above which the
// analytic path reports a warning and defers to the numerical backend.
const conditionThreshold = 1e8

// SolveKKT solves the saddle-point system
//
//	[ 2H   Aeq^T ] [ x ]   [ 0   ]
//	[ Aeq   0    ] [ l ] = [ beq ]
//
// directly, returning the first len(x) entries (the coefficient vector)
// along with the assembled KKT matrix's condition number. A nil Aeq (no
// equality constraints at all) trivially solves to the zero vector.
func SolveKKT(h, aeq *mat.Dense, beq *mat.VecDense) (x *mat.VecDense, cond float64, err error) {
	nx, _ := h.Dims()
	if aeq == nil {
		return mat.NewVecDense(nx, nil), 1, nil
	}
	neq, _ := aeq.Dims()
	size := nx + neq

	kkt := mat.NewDense(size, size, nil)
	for i := 0; i < nx; i++ {
		for j := 0; j < nx; j++ {
			kkt.Set(i, j, 2*h.At(i, j))
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < neq; j++ {
			v := aeq.At(j, i)
			kkt.Set(i, nx+j, v)
			kkt.Set(nx+j, i, v)
		}
	}

	rhs := mat.NewVecDense(size, nil)
	for i := 0; i < neq; i++ {
		rhs.SetVec(nx+i, beq.AtVec(i))
	}

	cond = mat.Cond(kkt, 2)

	var sol mat.VecDense
	if err := sol.SolveVec(kkt, rhs); err != nil {
		return nil, cond, err
	}

	x = mat.NewVecDense(nx, nil)
	for i := 0; i < nx; i++ {
		x.SetVec(i, sol.AtVec(i))
	}
	return x, cond, nil
}
