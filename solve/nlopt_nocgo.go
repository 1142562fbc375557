//go:build no_cgo || windows

package solve

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NloptSolver mimics the type built with cgo available; on no_cgo or
// windows builds it refuses to solve, since nlopt requires its C library.
type NloptSolver struct{}

// NewNloptSolver is not supported on this build.
func NewNloptSolver() *NloptSolver {
	return &NloptSolver{}
}

// Solve refuses to solve without cgo.
func (s *NloptSolver) Solve(h, aeq, aineq *mat.Dense, beq, bineq *mat.VecDense, opts Options) (*mat.VecDense, ExitFlag, error) {
	return nil, 0, errors.New("nlopt is not supported on this build")
}
