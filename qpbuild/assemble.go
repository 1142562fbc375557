package qpbuild

import (
	"github.com/ll550/Trajectory-Generator/basis"
	"github.com/ll550/Trajectory-Generator/types"
)

// Assemble builds the full QP Problem{H, Aeq, beq, Aineq, bineq} from
// waypoints, options, and bounds: Waypoints + Bounds + Options flow through
// the equality, continuity, cost, and inequality builders into one Problem.
func Assemble(waypoints []types.Waypoint, opts types.Options, bounds []types.Bound) (types.Problem, error) {
	durations, err := types.Durations(waypoints)
	if err != nil {
		return types.Problem{}, err
	}
	keytimes := types.Keytimes(waypoints)
	n := opts.Order
	d := opts.NDim
	nseg := len(durations)
	eng := basis.NewEngine(n)

	eqRows, err := BuildEquality(waypoints, opts.ContDeriv, n, eng)
	if err != nil {
		return types.Problem{}, err
	}
	contRows, err := BuildContinuity(durations, opts.ContDeriv, n, eng)
	if err != nil {
		return types.Problem{}, err
	}
	eqRows.Append(contRows)

	h, err := BuildCost(opts.MinDeriv, nseg, n, eng)
	if err != nil {
		return types.Problem{}, err
	}

	ineqRows, err := BuildInequality(bounds, durations, keytimes, d, n, opts.ConstraintsPerSeg, eng)
	if err != nil {
		return types.Problem{}, err
	}

	aeq, beq := eqRows.ToMatrices()
	aineq, bineq := ineqRows.ToMatrices()

	return types.Problem{
		H:     h,
		Aeq:   aeq,
		Beq:   beq,
		Aineq: aineq,
		Bineq: bineq,
		NDim:  d,
		NSeg:  nseg,
		Order: n,
	}, nil
}
