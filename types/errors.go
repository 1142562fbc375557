package types

import "github.com/pkg/errors"

// Base error kinds. Each exported constructor below
// wraps one of these with call-site context via github.com/pkg/errors, so
// callers can still recover the kind with errors.Is against the base
// value exported alongside each constructor.
var (
	// ErrConfigMissingBase marks a required Options field left unset.
	ErrConfigMissingBase = errors.New("required option missing")
	// ErrShapeMismatchBase marks a length mismatch between a vector option
	// or Bound.Arg and NDim.
	ErrShapeMismatchBase = errors.New("shape mismatch")
	// ErrNonMonotonicTimeBase marks waypoint times that are not strictly
	// increasing.
	ErrNonMonotonicTimeBase = errors.New("waypoint times must be strictly increasing")
	// ErrDerivativeUnsupportedBase marks a requested derivative order
	// beyond the basis engine's limit of 4.
	ErrDerivativeUnsupportedBase = errors.New("derivative order unsupported")
	// ErrOutOfRangeBase marks a Bound time interval outside the
	// trajectory's key times.
	ErrOutOfRangeBase = errors.New("bound time outside trajectory range")
	// ErrSolverSingular marks the analytic KKT matrix as singular or
	// ill-conditioned. Non-fatal: the dispatcher recovers by falling back
	// to the numerical backend and surfaces this as a Warning.
	ErrSolverSingular = errors.New("KKT matrix singular or ill-conditioned")
	// ErrSolverFailed marks a non-optimal numerical solver return.
	// Non-fatal: the dispatcher still packages whatever x was returned.
	ErrSolverFailed = errors.New("solver did not report optimal")
)

// ErrConfigMissing builds a ConfigMissing error naming the absent field.
func ErrConfigMissing(field string) error {
	return errors.Wrapf(ErrConfigMissingBase, "option %q", field)
}

// ErrShapeMismatch builds a ShapeMismatch error naming the offending field
// and the expected/actual lengths.
func ErrShapeMismatch(field string, want, got int) error {
	return errors.Wrapf(ErrShapeMismatchBase, "%s: want length %d, got %d", field, want, got)
}

// ErrNonMonotonicTime builds a NonMonotonicTime error naming the waypoint
// index at which monotonicity broke.
func ErrNonMonotonicTime(i int, tPrev, tNext float64) error {
	return errors.Wrapf(ErrNonMonotonicTimeBase, "waypoint %d: time %.6g does not exceed previous time %.6g", i, tNext, tPrev)
}

// ErrDerivativeUnsupported builds a DerivativeUnsupported error naming the
// offending dimension and derivative order.
func ErrDerivativeUnsupported(dim, order int) error {
	return errors.Wrapf(ErrDerivativeUnsupportedBase, "dimension %d: derivative order %d", dim, order)
}

// ErrOutOfRange builds an OutOfRange error naming the offending interval
// and the trajectory's valid range.
func ErrOutOfRange(t0, t1, lo, hi float64) error {
	return errors.Wrapf(ErrOutOfRangeBase, "[%.6g, %.6g] outside [%.6g, %.6g]", t0, t1, lo, hi)
}

// IsConfigMissing reports whether err is, or wraps, a ConfigMissing error.
func IsConfigMissing(err error) bool { return errors.Is(err, ErrConfigMissingBase) }

// IsShapeMismatch reports whether err is, or wraps, a ShapeMismatch error.
func IsShapeMismatch(err error) bool { return errors.Is(err, ErrShapeMismatchBase) }

// IsNonMonotonicTime reports whether err is, or wraps, a NonMonotonicTime error.
func IsNonMonotonicTime(err error) bool { return errors.Is(err, ErrNonMonotonicTimeBase) }

// IsDerivativeUnsupported reports whether err is, or wraps, a DerivativeUnsupported error.
func IsDerivativeUnsupported(err error) bool { return errors.Is(err, ErrDerivativeUnsupportedBase) }

// IsOutOfRange reports whether err is, or wraps, an OutOfRange error.
func IsOutOfRange(err error) bool { return errors.Is(err, ErrOutOfRangeBase) }
