package solve

import (
	"github.com/ll550/Trajectory-Generator/basis"
	"github.com/ll550/Trajectory-Generator/qpbuild"
	"github.com/ll550/Trajectory-Generator/types"
)

// Decouplable reports whether the decoupling wrapper applies: more than
// one dimension, and every bound (if any) is axis-aligned (lb/ub only, no
// 1-norm/inf-norm coupling across dimensions).
func Decouplable(ndim int, bounds []types.Bound) bool {
	return ndim > 1 && types.AxisAligned(bounds)
}

// Decouple solves d independent single-dimension problems by projecting
// waypoints, options, and bounds per dimension, exploiting H's
// block-diagonal structure and the bounds' axis-alignment to avoid a
// single coupled d*N*(n+1)-wide solve.
func Decouple(waypoints []types.Waypoint, opts types.Options, bounds []types.Bound, backend QPSolver) ([]types.Trajectory, []ExitFlag, [][]Warning, error) {
	durations, err := types.Durations(waypoints)
	if err != nil {
		return nil, nil, nil, err
	}
	keytimes := types.Keytimes(waypoints)
	eng := basis.NewEngine(opts.Order)

	trajs := make([]types.Trajectory, opts.NDim)
	flags := make([]ExitFlag, opts.NDim)
	warnings := make([][]Warning, opts.NDim)

	for dim := 0; dim < opts.NDim; dim++ {
		dimWaypoints := make([]types.Waypoint, len(waypoints))
		for i, w := range waypoints {
			dimWaypoints[i] = types.ProjectWaypoint(w, dim)
		}
		dimBounds := make([]types.Bound, len(bounds))
		for i, b := range bounds {
			dimBounds[i] = types.ProjectBound(b, dim)
		}
		dimOpts := types.ProjectOptions(opts, dim)

		problem, err := qpbuild.Assemble(dimWaypoints, dimOpts, dimBounds)
		if err != nil {
			return nil, nil, nil, err
		}
		result, err := Dispatch(problem, dimOpts, backend)
		if err != nil {
			return nil, nil, nil, err
		}
		traj, err := Package(result.X, problem, durations, keytimes, eng)
		if err != nil {
			return nil, nil, nil, err
		}
		trajs[dim] = traj
		flags[dim] = result.Flag
		warnings[dim] = result.Warnings
	}
	return trajs, flags, warnings, nil
}
