package solve

import (
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"

	"github.com/ll550/Trajectory-Generator/types"
)

func TestDispatchAnalyticPathNoInequalities(t *testing.T) {
	problem := types.Problem{
		H:    mat.NewDense(1, 1, []float64{1}),
		NDim: 1, NSeg: 1, Order: 0,
	}
	res, err := Dispatch(problem, types.Options{}, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Flag, test.ShouldEqual, ExitOptimal)
	test.That(t, len(res.Warnings), test.ShouldEqual, 0)
}

func TestDispatchUsesBackendWhenInequalitiesPresent(t *testing.T) {
	problem := types.Problem{
		H:     mat.NewDense(1, 1, []float64{1}),
		Aineq: mat.NewDense(1, 1, []float64{1}),
		Bineq: mat.NewVecDense(1, []float64{5}),
		NDim:  1, NSeg: 1, Order: 0,
	}
	backend := &fakeBackend{}
	res, err := Dispatch(problem, types.Options{}, backend)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Flag, test.ShouldEqual, ExitOptimal)
}

func TestDispatchMissingBackendErrorsWhenNumericalRequired(t *testing.T) {
	problem := types.Problem{
		H:     mat.NewDense(1, 1, []float64{1}),
		Aineq: mat.NewDense(1, 1, []float64{1}),
		Bineq: mat.NewVecDense(1, []float64{5}),
		NDim:  1, NSeg: 1, Order: 0,
	}
	_, err := Dispatch(problem, types.Options{}, nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestDispatchFallsBackOnIllConditionedKKT(t *testing.T) {
	problem := types.Problem{
		H:   mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		Aeq: mat.NewDense(2, 2, []float64{1, 0, 1, 0}),
		Beq: mat.NewVecDense(2, []float64{1, 1}),
		NDim: 2, NSeg: 1, Order: 0,
	}
	backend := &fakeBackend{flag: ExitOptimal}
	res, err := Dispatch(problem, types.Options{}, backend)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(res.Warnings), test.ShouldBeGreaterThan, 0)
	test.That(t, res.Warnings[0].Kind, test.ShouldEqual, "SolverSingular")
}

func TestDispatchSurfacesNonOptimalBackendFlag(t *testing.T) {
	problem := types.Problem{
		H:     mat.NewDense(1, 1, []float64{1}),
		Aineq: mat.NewDense(1, 1, []float64{1}),
		Bineq: mat.NewVecDense(1, []float64{5}),
		NDim:  1, NSeg: 1, Order: 0,
	}
	backend := &fakeBackend{flag: ExitFlag(-1)}
	res, err := Dispatch(problem, types.Options{}, backend)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res.Flag.Optimal(), test.ShouldBeFalse)
	test.That(t, len(res.Warnings), test.ShouldBeGreaterThan, 0)
	test.That(t, res.Warnings[0].Kind, test.ShouldEqual, "SolverFailed")
}
