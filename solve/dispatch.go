package solve

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/ll550/Trajectory-Generator/basis"
	"github.com/ll550/Trajectory-Generator/types"
)

var errNoBackend = errors.New("solve: numerical backend required but none was provided")

// Dispatch picks the analytic KKT path when no inequality bounds are
// present, falling back to the numerical backend when the KKT matrix is
// singular or ill-conditioned; it always uses the numerical backend when
// inequalities are present or Options.Numerical forces it.
func Dispatch(problem types.Problem, opts types.Options, backend QPSolver) (Result, error) {
	var warnings []Warning
	hasIneq := problem.HasInequalities()
	numerical := hasIneq || opts.NumericalRequired(hasIneq)

	if !numerical {
		x, cond, err := SolveKKT(problem.H, problem.Aeq, problem.Beq)
		if err == nil && cond <= conditionThreshold {
			return Result{X: x, Flag: ExitOptimal, Warnings: warnings}, nil
		}
		warnings = append(warnings, Warning{
			Kind: "SolverSingular",
			Message: fmt.Sprintf(
				"analytic KKT solve unusable (condition number %.4g, err=%v); falling back to numerical backend",
				cond, err,
			),
		})
	}

	if backend == nil {
		return Result{}, errNoBackend
	}

	solverOpts := Options{
		ConvergeTol: opts.ConvergeTol,
		MaxIter:     opts.MaxIter,
		Verbose:     opts.Verbose != nil && *opts.Verbose,
		TimeLimit:   opts.TimeLimit,
	}
	x, flag, err := backend.Solve(problem.H, problem.Aeq, problem.Aineq, problem.Beq, problem.Bineq, solverOpts)
	if err != nil {
		return Result{}, err
	}
	if !flag.Optimal() {
		warnings = append(warnings, Warning{
			Kind:    "SolverFailed",
			Message: fmt.Sprintf("numerical backend returned exit flag %d (not optimal)", flag),
		})
	}
	return Result{X: x, Flag: flag, Warnings: warnings}, nil
}

// Package converts a flat decision vector into a Trajectory's coefficient
// tensor, including the derivative tensor law poly[:,:,s,k] = D[k] *
// poly[:,:,s,0] for k in 1..4.
func Package(x *mat.VecDense, problem types.Problem, durations []float64, keytimes []float64, eng *basis.Engine) (types.Trajectory, error) {
	d, n, nseg := problem.NDim, problem.Order, problem.NSeg
	traj := types.NewTrajectory(n, d, nseg)
	traj.Durations = durations
	traj.Keytimes = keytimes

	for s := 0; s < nseg; s++ {
		for j := 0; j < d; j++ {
			offset := (j + d*s) * (n + 1)
			for c := 0; c <= n; c++ {
				traj.Poly[c][j][s][0] = x.AtVec(offset + c)
			}
		}
	}

	for k := 1; k <= basis.MaxDerivative; k++ {
		op, err := eng.Operator(k)
		if err != nil {
			return types.Trajectory{}, err
		}
		for s := 0; s < nseg; s++ {
			for j := 0; j < d; j++ {
				coeffs := make([]float64, n+1)
				for c := 0; c <= n; c++ {
					coeffs[c] = traj.Poly[c][j][s][0]
				}
				for row := 0; row <= n; row++ {
					sum := 0.0
					for col := 0; col <= n; col++ {
						sum += op.At(row, col) * coeffs[col]
					}
					traj.Poly[row][j][s][k] = sum
				}
			}
		}
	}
	return traj, nil
}
