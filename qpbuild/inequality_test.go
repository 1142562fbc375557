package qpbuild

import (
	"testing"

	"go.viam.com/test"

	"github.com/ll550/Trajectory-Generator/basis"
	"github.com/ll550/Trajectory-Generator/types"
)

func TestSplitBoundsEntireTrajectoryUsesFullRange(t *testing.T) {
	keytimes := []float64{0, 1, 2}
	b := types.EntireTrajectory(types.BoundUpper, 1, []float64{0.8})
	split, err := splitBounds([]types.Bound{b}, keytimes)
	test.That(t, err, test.ShouldBeNil)
	// Spans both segments -> splits into two single-segment bounds.
	test.That(t, len(split), test.ShouldEqual, 2)
	segs := map[int]bool{}
	for _, sb := range split {
		segs[sb.Seg] = true
	}
	test.That(t, segs[0], test.ShouldBeTrue)
	test.That(t, segs[1], test.ShouldBeTrue)
}

func TestSplitBoundsOutOfRange(t *testing.T) {
	keytimes := []float64{0, 1, 2}
	b := types.Interval(types.BoundUpper, 0, []float64{1}, 0, 3)
	_, err := splitBounds([]types.Bound{b}, keytimes)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, types.IsOutOfRange(err), test.ShouldBeTrue)
}

func TestSplitBoundsSingleInstantAtKnot(t *testing.T) {
	keytimes := []float64{0, 1, 2}
	b := types.Instant(types.BoundUpper, 0, []float64{1}, 1)
	split, err := splitBounds([]types.Bound{b}, keytimes)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(split), test.ShouldEqual, 1)
	// t=1 is the start of segment 1, not the tail of segment 0.
	test.That(t, split[0].Seg, test.ShouldEqual, 1)
}

func TestSplitBoundsTerminalInstant(t *testing.T) {
	keytimes := []float64{0, 1, 2}
	b := types.Instant(types.BoundUpper, 0, []float64{1}, 2)
	split, err := splitBounds([]types.Bound{b}, keytimes)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(split), test.ShouldEqual, 1)
	test.That(t, split[0].Seg, test.ShouldEqual, 1)
}

func TestSampleTimesInstant(t *testing.T) {
	b := types.Bound{Time: [2]float64{1, 1}, Seg: 0}
	samples := sampleTimes(b, []float64{0, 2}, 10)
	test.That(t, len(samples), test.ShouldEqual, 1)
	test.That(t, samples[0], test.ShouldEqual, 1.0)
}

func TestSampleTimesInterval(t *testing.T) {
	b := types.Bound{Time: [2]float64{0, 1}, Seg: 0}
	samples := sampleTimes(b, []float64{0, 1}, 4)
	test.That(t, len(samples), test.ShouldEqual, 5) // 0, .25, .5, .75, 1
	test.That(t, samples[0], test.ShouldAlmostEqual, 0.0)
	test.That(t, samples[len(samples)-1], test.ShouldAlmostEqual, 1.0)
}

func TestBuildInequalityNaNSkipsDimension(t *testing.T) {
	nan := types.Unconstrained()
	eng := basis.NewEngine(3)
	bounds := []types.Bound{
		types.EntireTrajectory(types.BoundUpper, 0, []float64{1, nan}),
	}
	rows, err := BuildInequality(bounds, []float64{1}, []float64{0, 1}, 2, 3, 4, eng)
	test.That(t, err, test.ShouldBeNil)
	// Only dimension 0 produces rows.
	test.That(t, rows.NumRows() > 0, test.ShouldBeTrue)
	for _, row := range rows.rows {
		for c := 4; c < 8; c++ { // dimension 1's columns
			test.That(t, row[c], test.ShouldEqual, 0.0)
		}
	}
}

func TestBuildInequalityReservedTypesAreNoOps(t *testing.T) {
	eng := basis.NewEngine(3)
	bounds := []types.Bound{
		types.EntireTrajectory(types.Bound1Norm, 0, []float64{1}),
		types.EntireTrajectory(types.BoundInfNorm, 0, []float64{1}),
	}
	rows, err := BuildInequality(bounds, []float64{1}, []float64{0, 1}, 1, 3, 4, eng)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rows.NumRows(), test.ShouldEqual, 0)
}

func TestBuildInequalitySignFlipsForLowerBound(t *testing.T) {
	eng := basis.NewEngine(2)
	ub := []types.Bound{types.Instant(types.BoundUpper, 0, []float64{0.8}, 0.5)}
	lb := []types.Bound{types.Instant(types.BoundLower, 0, []float64{0.8}, 0.5)}
	keytimes := []float64{0, 1}
	durations := []float64{1}

	rowsUB, err := BuildInequality(ub, durations, keytimes, 1, 2, 4, eng)
	test.That(t, err, test.ShouldBeNil)
	rowsLB, err := BuildInequality(lb, durations, keytimes, 1, 2, 4, eng)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, rowsUB.NumRows(), test.ShouldEqual, 1)
	test.That(t, rowsLB.NumRows(), test.ShouldEqual, 1)
	for c := range rowsUB.rows[0] {
		test.That(t, rowsUB.rows[0][c], test.ShouldAlmostEqual, -rowsLB.rows[0][c])
	}
	test.That(t, rowsUB.rhs[0], test.ShouldAlmostEqual, -rowsLB.rhs[0])
}

// TestInequalityColumnScalingIsIndependentOfDerivativeOrder pins a
// deliberate asymmetry between this builder and BuildEquality: the column
// scale factor duration^-(n-c) here is applied regardless of the bound's
// derivative order k, unlike the dt^k scaling BuildEquality applies. This
// is reproduced intentionally, not "corrected".
func TestInequalityColumnScalingIsIndependentOfDerivativeOrder(t *testing.T) {
	eng := basis.NewEngine(2)
	duration := 2.0
	keytimes := []float64{0, duration}
	durations := []float64{duration}
	b := []types.Bound{types.Instant(types.BoundUpper, 1, []float64{1}, 1)} // k=1, sample t=1 mid-segment

	rows, err := BuildInequality(b, durations, keytimes, 1, 2, 4, eng)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rows.NumRows(), test.ShouldEqual, 1)

	// Hand-derived reference: tau = t - keytimes[seg] = 1 - 0 = 1 (not
	// divided by duration). basis(1, k=1, n=2) is then scaled per-column
	// by duration^-(n-c), independent of k=1.
	tauRow, err := eng.Row(1, 1)
	test.That(t, err, test.ShouldBeNil)
	for c := 0; c <= 2; c++ {
		p := 2 - c
		want := tauRow[c] / pow(duration, p)
		test.That(t, rows.rows[0][c], test.ShouldAlmostEqual, want)
	}
}

func pow(base float64, exp int) float64 {
	out := 1.0
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
