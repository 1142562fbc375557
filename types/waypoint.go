// Package types holds the data model shared by trajgen's root package and
// its qpbuild/solve/basis subpackages: Waypoint, Bound, Options, Problem,
// and Trajectory. It exists as its own package, in the same spirit as
// go.viam.com/rdk/referenceframe, so that qpbuild and solve can depend on
// the data model without importing the root package and creating a cycle.
package types

import "math"

// Unconstrained returns the NaN sentinel meaning "no constraint in this
// dimension/derivative". Waypoint and Bound fields use NaN directly; this
// helper exists so callers never need to spell math.NaN() themselves.
func Unconstrained() float64 {
	return math.NaN()
}

// IsUnconstrained reports whether v is the NaN "no constraint" sentinel.
func IsUnconstrained(v float64) bool {
	return math.IsNaN(v)
}

// Vector builds a length-d slice of values, useful for literal construction
// of Waypoint/Bound fields in tests and call sites.
func Vector(vals ...float64) []float64 {
	out := make([]float64, len(vals))
	copy(out, vals)
	return out
}

// Waypoint is a time-stamped boundary condition. Each of Pos, Vel, Acc,
// Jerk, Snap is either nil (no constraint supplied at all for that
// derivative at this waypoint) or a length-NDim slice where NaN marks an
// individual dimension as unconstrained.
type Waypoint struct {
	Time float64
	Pos  []float64
	Vel  []float64
	Acc  []float64
	Jerk []float64
	Snap []float64
}

// Deriv returns the waypoint's constraint vector for derivative order k
// (0=pos .. 4=snap), or nil if none was supplied for that derivative.
func (w Waypoint) Deriv(k int) []float64 {
	switch k {
	case 0:
		return w.Pos
	case 1:
		return w.Vel
	case 2:
		return w.Acc
	case 3:
		return w.Jerk
	case 4:
		return w.Snap
	default:
		return nil
	}
}
