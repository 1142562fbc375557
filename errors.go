package trajgen

import (
	"github.com/ll550/Trajectory-Generator/basis"
	"github.com/ll550/Trajectory-Generator/types"
)

// ErrBadDerivative is returned by the basis engine for derivative orders
// beyond the documented limit of 4.
var ErrBadDerivative = basis.ErrBadDerivative

// Error kind helpers, re-exported at the root for callers who don't need
// the rest of the types package. See types.errors.go for the underlying
// constructors and base sentinels.
var (
	ErrConfigMissing         = types.ErrConfigMissing
	ErrShapeMismatch         = types.ErrShapeMismatch
	ErrNonMonotonicTime      = types.ErrNonMonotonicTime
	ErrDerivativeUnsupported = types.ErrDerivativeUnsupported
	ErrOutOfRange            = types.ErrOutOfRange

	IsConfigMissing         = types.IsConfigMissing
	IsShapeMismatch         = types.IsShapeMismatch
	IsNonMonotonicTime      = types.IsNonMonotonicTime
	IsDerivativeUnsupported = types.IsDerivativeUnsupported
	IsOutOfRange            = types.IsOutOfRange
)

// ErrSolverSingular and ErrSolverFailed mark non-fatal solver conditions;
// see types.errors.go.
var (
	ErrSolverSingular = types.ErrSolverSingular
	ErrSolverFailed   = types.ErrSolverFailed
)
