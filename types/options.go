package types

import (
	"github.com/ll550/Trajectory-Generator/internal/logging"
)

// DefaultOrder is the default polynomial order per segment.
const DefaultOrder = 12

// Options is the typed configuration record the generator is called with.
// It deliberately has no map[string]interface{} escape hatch: every field
// recognized by the original key/value option bag has a named field here,
// so an unrecognized option cannot be expressed at all. There is no
// key/value decoding path into Options.
type Options struct {
	// Order is the polynomial order per segment. Zero means DefaultOrder.
	Order int

	// MinDeriv holds, per dimension, the derivative order whose integral
	// squared magnitude is minimized (0=pos, 2=acc, 4=snap). Required:
	// len(MinDeriv) must equal NDim.
	MinDeriv []int

	// ContDeriv holds, per dimension, the derivative order enforced as an
	// equality constraint at interior knots. Defaults to MinDeriv if nil.
	ContDeriv []int

	// NDim is the dimension count d. Required, must be >= 1.
	NDim int

	// ConstraintsPerSeg is the sampling density used by the inequality
	// builder. Zero means 2*(Order+1).
	ConstraintsPerSeg int

	// Numerical forces the numerical QP backend even when no inequality
	// bounds are supplied. Unset (nil) defaults to true iff bounds are
	// non-empty.
	Numerical *bool

	// ConvergeTol is the numerical solver's convergence tolerance. Zero
	// means 1e-8.
	ConvergeTol float64

	// Verbose is handed to the numerical backend as solve.Options.Verbose.
	// Unset (nil) defaults to true. The provided nlopt backend does not
	// read it, and Generate logs solver warnings through Logger whether or
	// not Verbose is set.
	Verbose *bool

	// MaxIter bounds the numerical solver's iteration count. Zero means
	// the backend's own default.
	MaxIter int

	// TimeLimit bounds the numerical solver's wall-clock budget, in
	// seconds. Zero means no limit. The dispatcher threads this through to
	// the backend; it does not enforce it itself.
	TimeLimit float64

	// Logger receives builder/dispatcher diagnostics. Defaults to a
	// no-op logger if left nil.
	Logger logging.Logger
}

// ApplyDefaults fills in every optional field Options leaves zero, without
// mutating fields the caller explicitly set, mirroring
// motionplan.newBasicPlannerOptions's default-wiring pattern.
func (o Options) ApplyDefaults() Options {
	out := o
	if out.Order == 0 {
		out.Order = DefaultOrder
	}
	if out.ContDeriv == nil && out.MinDeriv != nil {
		out.ContDeriv = append([]int(nil), out.MinDeriv...)
	}
	if out.ConstraintsPerSeg == 0 {
		out.ConstraintsPerSeg = 2 * (out.Order + 1)
	}
	if out.ConvergeTol == 0 {
		out.ConvergeTol = 1e-8
	}
	if out.Logger == nil {
		out.Logger = logging.NewBlankLogger()
	}
	if out.Verbose == nil {
		v := true
		out.Verbose = &v
	}
	return out
}

// Validate checks the required fields and shape invariants documented on
// Options, returning the first one violated.
func (o Options) Validate() error {
	if o.NDim <= 0 {
		return ErrConfigMissing("ndim")
	}
	if o.MinDeriv == nil {
		return ErrConfigMissing("minderiv")
	}
	if len(o.MinDeriv) != o.NDim {
		return ErrShapeMismatch("minderiv", o.NDim, len(o.MinDeriv))
	}
	if o.ContDeriv != nil && len(o.ContDeriv) != o.NDim {
		return ErrShapeMismatch("contderiv", o.NDim, len(o.ContDeriv))
	}
	for j, m := range o.MinDeriv {
		if m > 4 {
			return ErrDerivativeUnsupported(j, m)
		}
	}
	for j, c := range o.ContDeriv {
		if c > 4 {
			return ErrDerivativeUnsupported(j, c)
		}
	}
	return nil
}

// NumericalRequired reports whether the numerical backend must be used,
// applying the "default true iff bounds supplied" rule when Numerical was
// left unset.
func (o Options) NumericalRequired(hasBounds bool) bool {
	if o.Numerical != nil {
		return *o.Numerical
	}
	return hasBounds
}
