package solve

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/ll550/Trajectory-Generator/types"
)

func TestDecouplableRequiresMultipleDimensionsAndAxisAlignment(t *testing.T) {
	test.That(t, Decouplable(1, nil), test.ShouldBeFalse)
	test.That(t, Decouplable(2, nil), test.ShouldBeTrue)

	aligned := []types.Bound{types.EntireTrajectory(types.BoundUpper, 1, types.Vector(5, 5))}
	test.That(t, Decouplable(2, aligned), test.ShouldBeTrue)

	coupled := []types.Bound{types.EntireTrajectory(types.Bound1Norm, 1, types.Vector(5, 5))}
	test.That(t, Decouplable(2, coupled), test.ShouldBeFalse)
}

func TestDecoupleReproducesInteriorWaypointPerDimension(t *testing.T) {
	waypoints := []types.Waypoint{
		{Time: 0, Pos: types.Vector(0, 0)},
		{Time: 1, Pos: types.Vector(1, 2)},
		{Time: 2, Pos: types.Vector(0, -1)},
	}
	opts := types.Options{
		Order:     5,
		MinDeriv:  []int{2, 2},
		ContDeriv: []int{2, 2},
		NDim:      2,
	}.ApplyDefaults()

	trajs, flags, warnings, err := Decouple(waypoints, opts, nil, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(trajs), test.ShouldEqual, 2)
	test.That(t, len(flags), test.ShouldEqual, 2)
	test.That(t, len(warnings), test.ShouldEqual, 2)
	for _, f := range flags {
		test.That(t, f.Optimal(), test.ShouldBeTrue)
	}

	for dim, want := range [][]float64{{0, 1, 0}, {0, 2, -1}} {
		pos, _, _, _, _, err := trajs[dim].Evaluate(1, 0)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, math.Abs(pos-want[1]), test.ShouldBeLessThan, 1e-6)
	}
}

func TestDecoupleRejectsNonMonotonicTimes(t *testing.T) {
	waypoints := []types.Waypoint{
		{Time: 0, Pos: types.Vector(0, 0)},
		{Time: 0, Pos: types.Vector(1, 1)},
	}
	opts := types.Options{Order: 5, MinDeriv: []int{2, 2}, NDim: 2}.ApplyDefaults()
	_, _, _, err := Decouple(waypoints, opts, nil, nil)
	test.That(t, err, test.ShouldNotBeNil)
}
