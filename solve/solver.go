// Package solve dispatches an assembled QP to either a closed-form KKT
// solve or a numerical QPSolver backend, and packages the result back into
// a coefficient tensor.
package solve

import "gonum.org/v1/gonum/mat"

// ExitFlag reports solver outcome: 1 means optimal, any other value is an
// implementation-defined solver diagnostic surfaced verbatim.
type ExitFlag int

// ExitOptimal is the only exit flag value this package assigns meaning to;
// every other value is passed through from whichever backend produced it.
const ExitOptimal ExitFlag = 1

// Optimal reports whether f signals a successful solve.
func (f ExitFlag) Optimal() bool {
	return f == ExitOptimal
}

// Options carries the QPSolver tuning knobs: convergence tolerance,
// iteration cap, verbosity, and wall-clock budget. The dispatcher threads
// TimeLimit through to the backend but does not enforce it itself.
type Options struct {
	ConvergeTol float64
	MaxIter     int
	Verbose     bool
	TimeLimit   float64
}

// QPSolver is the abstract numerical backend contract: minimize x^T H x
// subject to Aeq x = beq, Aineq x <= bineq. aineq/bineq may be nil,
// meaning no inequality constraints. Implementations are free to use any
// backend (interior-point, active-set, SQP); this module's provided
// backend wraps go-nlopt's LD_SLSQP.
type QPSolver interface {
	Solve(h, aeq, aineq *mat.Dense, beq, bineq *mat.VecDense, opts Options) (*mat.VecDense, ExitFlag, error)
}

// Warning is a non-fatal diagnostic surfaced alongside a Result, for
// SolverSingular/SolverFailed conditions that are reported, not raised as
// errors.
type Warning struct {
	Kind    string
	Message string
}

// Result is the outcome of dispatching a single (coupled or
// single-dimension) QP.
type Result struct {
	X        *mat.VecDense
	Flag     ExitFlag
	Warnings []Warning
}
