package solve

import "gonum.org/v1/gonum/mat"

// fakeBackend is a minimal QPSolver stub for dispatcher tests: it ignores
// inequalities entirely and solves the equality-only KKT system, so tests
// can exercise Dispatch's fallback/packaging logic without depending on
// nlopt or cgo.
type fakeBackend struct {
	flag ExitFlag
	err  error
}

func (b *fakeBackend) Solve(h, aeq, aineq *mat.Dense, beq, bineq *mat.VecDense, opts Options) (*mat.VecDense, ExitFlag, error) {
	if b.err != nil {
		return nil, 0, b.err
	}
	x, _, err := SolveKKT(h, aeq, beq)
	if err != nil {
		return nil, 0, err
	}
	flag := b.flag
	if flag == 0 {
		flag = ExitOptimal
	}
	return x, flag, nil
}
