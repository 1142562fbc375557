//go:build !no_cgo && !windows

package solve

import (
	"github.com/go-nlopt/nlopt"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"
)

// nloptDefaultMaxEval bounds the SLSQP iteration count when the caller
// leaves Options.MaxIter unset.
const nloptDefaultMaxEval = 4001

// NloptSolver dispatches the assembled QP to nlopt's LD_SLSQP algorithm,
// treating the linear equality/inequality systems as M-valued linear
// constraints and the quadratic objective x^T H x as a gradient-bearing
// nonlinear objective.
type NloptSolver struct{}

// NewNloptSolver returns the default go-nlopt-backed QPSolver.
func NewNloptSolver() *NloptSolver {
	return &NloptSolver{}
}

// Solve implements QPSolver.
func (s *NloptSolver) Solve(h, aeq, aineq *mat.Dense, beq, bineq *mat.VecDense, opts Options) (*mat.VecDense, ExitFlag, error) {
	nx, _ := h.Dims()

	opt, err := nlopt.NewNLopt(nlopt.LD_SLSQP, uint(nx))
	if err != nil {
		return nil, 0, errors.Wrap(err, "nlopt creation error")
	}
	defer opt.Destroy()

	tol := opts.ConvergeTol
	if tol == 0 {
		tol = 1e-8
	}

	hFlat := denseToSlice(h)
	objective := func(x, grad []float64) float64 {
		hx := matVecMulRaw(hFlat, nx, x)
		if len(grad) > 0 {
			for i := range grad {
				grad[i] = 2 * hx[i]
			}
		}
		return dotProduct(x, hx)
	}

	var setupErr error
	setupErr = multierr.Combine(setupErr, opt.SetMinObjective(objective))

	if aeq != nil {
		neq, _ := aeq.Dims()
		aeqFlat := denseToSlice(aeq)
		beqFlat := vecToSlice(beq)
		eqFunc := linearConstraintFunc(aeqFlat, beqFlat, nx, neq)
		tols := make([]float64, neq)
		for i := range tols {
			tols[i] = tol
		}
		setupErr = multierr.Combine(setupErr, opt.AddEqualityMconstraint(eqFunc, tols))
	}

	if aineq != nil {
		nineq, _ := aineq.Dims()
		aineqFlat := denseToSlice(aineq)
		bineqFlat := vecToSlice(bineq)
		ineqFunc := linearConstraintFunc(aineqFlat, bineqFlat, nx, nineq)
		tols := make([]float64, nineq)
		for i := range tols {
			tols[i] = tol
		}
		setupErr = multierr.Combine(setupErr, opt.AddInequalityMconstraint(ineqFunc, tols))
	}

	maxEval := opts.MaxIter
	if maxEval == 0 {
		maxEval = nloptDefaultMaxEval
	}
	setupErr = multierr.Combine(setupErr,
		opt.SetMaxEval(maxEval),
		opt.SetXtolRel(tol),
		opt.SetFtolRel(tol),
	)
	if opts.TimeLimit > 0 {
		setupErr = multierr.Combine(setupErr, opt.SetMaxTime(opts.TimeLimit))
	}
	if setupErr != nil {
		return nil, 0, errors.Wrap(setupErr, "nlopt option error")
	}

	x0 := make([]float64, nx)
	xOpt, _, solveErr := opt.Optimize(x0)

	flag := ExitOptimal
	if solveErr != nil {
		flag = ExitFlag(-1)
	}
	if xOpt == nil {
		xOpt = x0
	}
	return mat.NewVecDense(nx, xOpt), flag, nil
}

// linearConstraintFunc builds an nlopt Mconstraint callback for the affine
// system a*x - b (<= or == depending on the caller), where a is row-major
// flattened with n columns and m rows.
func linearConstraintFunc(aFlat, b []float64, n, m int) func(result, x, grad []float64) {
	return func(result, x, grad []float64) {
		for i := 0; i < m; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				v := aFlat[i*n+j]
				sum += v * x[j]
				if grad != nil {
					grad[i*n+j] = v
				}
			}
			result[i] = sum - b[i]
		}
	}
}

func denseToSlice(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i*cols+j] = m.At(i, j)
		}
	}
	return out
}

func vecToSlice(v *mat.VecDense) []float64 {
	n := v.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.AtVec(i)
	}
	return out
}

func matVecMulRaw(aFlat []float64, n int, x []float64) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += aFlat[i*n+j] * x[j]
		}
		out[i] = sum
	}
	return out
}

func dotProduct(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
