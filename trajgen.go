// Package trajgen generates piecewise-polynomial trajectories through a
// sequence of waypoints for multi-dimensional kinematic systems, e.g. a
// quadrotor's flat outputs (x, y, z, yaw). Each dimension's segments
// minimize the integral squared magnitude of a chosen derivative (jerk,
// snap, ...) subject to waypoint boundary conditions, interior-knot
// continuity, and optional inequality bounds on any derivative over any
// time interval.
package trajgen

import (
	"github.com/ll550/Trajectory-Generator/basis"
	"github.com/ll550/Trajectory-Generator/qpbuild"
	"github.com/ll550/Trajectory-Generator/solve"
	"github.com/ll550/Trajectory-Generator/types"
)

// Waypoint, Bound, and Options are re-exported at the root so callers never
// need to import the types package directly for the common path.
type (
	Waypoint = types.Waypoint
	Bound    = types.Bound
	Options  = types.Options
)

// ExitFlag mirrors solve.ExitFlag: 1 means optimal, any other value is an
// implementation-defined solver diagnostic surfaced verbatim.
type ExitFlag = solve.ExitFlag

// Warning is a non-fatal diagnostic surfaced alongside a Result.
type Warning = solve.Warning

// Result is the solver outcome for a Generate call. For a coupled solve,
// Decoupled is false and Flag/Warnings hold the single result. For a
// decoupled solve (more than one dimension, every bound axis-aligned),
// Decoupled is true and Flags/PerDimWarnings hold one entry per dimension.
type Result struct {
	Decoupled bool

	Flag     ExitFlag
	Warnings []Warning

	Flags          []ExitFlag
	PerDimWarnings [][]Warning
}

// Generate assembles and solves the QP for waypoints/opts/bounds, returning
// the resulting Trajectory, its flat decision vector (nil for a decoupled
// solve, since no single vector spans all dimensions), the assembled
// Problem (zero-value for a decoupled solve), and the solver Result.
//
// Generate chooses the decoupling wrapper automatically whenever it
// applies (opts.NDim > 1 and every bound is axis-aligned): this runs NDim
// independent single-dimension solves instead of one coupled solve,
// exploiting the block-diagonal structure of H.
func Generate(waypoints []Waypoint, opts Options, bounds []Bound) (types.Trajectory, []float64, types.Problem, Result, error) {
	opts = opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return types.Trajectory{}, nil, types.Problem{}, Result{}, err
	}
	durations, err := types.Durations(waypoints)
	if err != nil {
		return types.Trajectory{}, nil, types.Problem{}, Result{}, err
	}

	backend := solve.NewNloptSolver()

	if solve.Decouplable(opts.NDim, bounds) {
		trajs, flags, warnings, err := solve.Decouple(waypoints, opts, bounds, backend)
		if err != nil {
			return types.Trajectory{}, nil, types.Problem{}, Result{}, err
		}
		logDecoupledWarnings(opts, flags, warnings)
		traj := mergeTrajectories(trajs)
		return traj, nil, types.Problem{}, Result{
			Decoupled:      true,
			Flags:          flags,
			PerDimWarnings: warnings,
		}, nil
	}

	problem, err := qpbuild.Assemble(waypoints, opts, bounds)
	if err != nil {
		return types.Trajectory{}, nil, types.Problem{}, Result{}, err
	}
	res, err := solve.Dispatch(problem, opts, backend)
	if err != nil {
		return types.Trajectory{}, nil, types.Problem{}, Result{}, err
	}
	logWarnings(opts, res.Warnings)

	keytimes := types.Keytimes(waypoints)
	eng := basis.NewEngine(opts.Order)
	traj, err := solve.Package(res.X, problem, durations, keytimes, eng)
	if err != nil {
		return types.Trajectory{}, nil, types.Problem{}, Result{}, err
	}

	x := make([]float64, res.X.Len())
	for i := range x {
		x[i] = res.X.AtVec(i)
	}

	return traj, x, problem, Result{
		Decoupled: false,
		Flag:      res.Flag,
		Warnings:  res.Warnings,
	}, nil
}

func logWarnings(opts Options, warnings []Warning) {
	for _, w := range warnings {
		opts.Logger.Warnw(w.Message, "kind", w.Kind)
	}
}

func logDecoupledWarnings(opts Options, flags []ExitFlag, warnings [][]Warning) {
	for dim, ws := range warnings {
		for _, w := range ws {
			opts.Logger.Warnw(w.Message, "kind", w.Kind, "dim", dim, "flag", flags[dim])
		}
	}
}

// mergeTrajectories recombines the per-dimension Trajectories a decoupled
// solve produced into a single multi-dimensional Trajectory sharing one
// Durations/Keytimes, by concatenating each dimension's Poly slice.
func mergeTrajectories(trajs []types.Trajectory) types.Trajectory {
	if len(trajs) == 0 {
		return types.Trajectory{}
	}
	order := trajs[0].Order
	nseg := len(trajs[0].Durations)
	merged := types.NewTrajectory(order, len(trajs), nseg)
	merged.Durations = trajs[0].Durations
	merged.Keytimes = trajs[0].Keytimes
	for dim, traj := range trajs {
		for c := 0; c <= order; c++ {
			for s := 0; s < nseg; s++ {
				for k := 0; k < 5; k++ {
					merged.Poly[c][dim][s][k] = traj.Poly[c][0][s][k]
				}
			}
		}
	}
	return merged
}
