package types

// BoundType names the kind of inequality a Bound encodes. 1-norm and
// infinity-norm bounds are reserved for a future extension; the inequality
// builder accepts them but currently treats them as no-ops.
type BoundType int

const (
	// BoundLower constrains a derivative to be >= Arg.
	BoundLower BoundType = iota
	// BoundUpper constrains a derivative to be <= Arg.
	BoundUpper
	// Bound1Norm is reserved; currently a no-op.
	Bound1Norm
	// BoundInfNorm is reserved; currently a no-op.
	BoundInfNorm
)

func (t BoundType) String() string {
	switch t {
	case BoundLower:
		return "lb"
	case BoundUpper:
		return "ub"
	case Bound1Norm:
		return "1norm"
	case BoundInfNorm:
		return "infnorm"
	default:
		return "unknown"
	}
}

// Bound is an affine inequality on one derivative, sampled over a time
// interval (or a single instant, when Time[0] == Time[1]). An empty
// interval (TimeSet == false) means "entire trajectory". Arg carries one
// value per dimension; NaN marks a dimension unconstrained by this bound.
//
// Seg is populated by preprocessing (qpbuild's inequality splitting stage)
// once a multi-segment bound has been split into single-segment bounds; it
// is meaningless on a Bound supplied by a caller.
type Bound struct {
	Type       BoundType
	Derivative int
	Arg        []float64
	Time       [2]float64
	TimeSet    bool
	Seg        int
}

// Instant builds a single-instant Bound at time t.
func Instant(boundType BoundType, derivative int, arg []float64, t float64) Bound {
	return Bound{Type: boundType, Derivative: derivative, Arg: arg, Time: [2]float64{t, t}, TimeSet: true}
}

// Interval builds a Bound active over [t0, t1].
func Interval(boundType BoundType, derivative int, arg []float64, t0, t1 float64) Bound {
	return Bound{Type: boundType, Derivative: derivative, Arg: arg, Time: [2]float64{t0, t1}, TimeSet: true}
}

// EntireTrajectory builds a Bound active over the whole trajectory.
func EntireTrajectory(boundType BoundType, derivative int, arg []float64) Bound {
	return Bound{Type: boundType, Derivative: derivative, Arg: arg, TimeSet: false}
}

// AxisAligned reports whether every bound in the slice is of type
// BoundLower or BoundUpper, i.e. none carry 1-norm/inf-norm coupling across
// dimensions. The decoupling wrapper requires this to be true for all
// bounds before it may split the problem per-dimension.
func AxisAligned(bounds []Bound) bool {
	for _, b := range bounds {
		if b.Type != BoundLower && b.Type != BoundUpper {
			return false
		}
	}
	return true
}
