// Package basis evaluates the monomial polynomial basis used by every
// builder in qpbuild, and the differential operator matrices that turn
// coefficients-in-the-monomial-basis into coefficients of their derivatives,
// still expressed in the same basis.
package basis

import (
	"gonum.org/v1/gonum/mat"
)

// MaxDerivative is the documented upper limit on derivative order this
// engine supports (position through snap).
const MaxDerivative = 4

// Engine holds the order-n differential operator tensor D[0..MaxDerivative]
// for a fixed polynomial order n, so that repeated basis evaluations for the
// same order reuse the same precomputed matrices.
type Engine struct {
	n int
	d [MaxDerivative + 1]*mat.Dense
}

// NewEngine builds the differential operator tensor for polynomials of
// order n (n+1 coefficients, highest degree first).
func NewEngine(n int) *Engine {
	e := &Engine{n: n}
	e.d[0] = identity(n + 1)
	d1 := firstDerivativeOperator(n)
	e.d[1] = d1
	for k := 2; k <= MaxDerivative; k++ {
		next := mat.NewDense(n+1, n+1, nil)
		next.Mul(e.d[k-1], d1)
		e.d[k] = next
	}
	return e
}

// Order returns the polynomial order n this engine was built for.
func (e *Engine) Order() int {
	return e.n
}

// Operator returns D[k], the (n+1)x(n+1) matrix such that D[k]*coeffs
// yields the coefficients (in the same monomial basis, highest degree
// first) of the k-th derivative of the polynomial with coefficients coeffs.
func (e *Engine) Operator(k int) (*mat.Dense, error) {
	if k < 0 || k > MaxDerivative {
		return nil, ErrBadDerivative
	}
	return e.d[k], nil
}

// Row returns the row vector basis(tau, k) = [tau^n, ..., tau, 1] * D[k],
// i.e. the coefficients that, dotted with a coefficient vector, evaluate the
// k-th derivative of that polynomial at normalized time tau.
func (e *Engine) Row(tau float64, k int) ([]float64, error) {
	op, err := e.Operator(k)
	if err != nil {
		return nil, err
	}
	m := monomialRow(tau, e.n)
	out := make([]float64, e.n+1)
	ov := mat.NewVecDense(e.n+1, out)
	ov.MulVec(op.T(), mat.NewVecDense(e.n+1, m))
	return out, nil
}

// Block returns the (len(taus) x (n+1)) matrix whose i-th row is
// basis(taus[i], k).
func (e *Engine) Block(taus []float64, k int) (*mat.Dense, error) {
	op, err := e.Operator(k)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(len(taus), e.n+1, nil)
	for i, tau := range taus {
		m := mat.NewVecDense(e.n+1, monomialRow(tau, e.n))
		var row mat.VecDense
		row.MulVec(op.T(), m)
		out.SetRow(i, row.RawVector().Data)
	}
	return out, nil
}

// monomialRow returns [tau^n, tau^(n-1), ..., tau, 1].
func monomialRow(tau float64, n int) []float64 {
	row := make([]float64, n+1)
	row[n] = 1
	for i := n - 1; i >= 0; i-- {
		row[i] = row[i+1] * tau
	}
	return row
}

func identity(size int) *mat.Dense {
	m := mat.NewDense(size, size, nil)
	for i := 0; i < size; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// firstDerivativeOperator builds D[1] for order n: column i (the
// coefficient of tau^(n-i)) receives, in row i+1, the power of tau^(n-i),
// since d/dtau tau^p = p*tau^(p-1) and tau^(p-1) sits one row further down
// (lower degree) in the highest-degree-first layout.
func firstDerivativeOperator(n int) *mat.Dense {
	m := mat.NewDense(n+1, n+1, nil)
	for i := 0; i < n; i++ {
		power := float64(n - i)
		m.Set(i+1, i, power)
	}
	return m
}

// ExponentOf returns n-c, the power of tau carried by coefficient column c
// in an order-n highest-degree-first monomial basis.
func ExponentOf(n, c int) int {
	return n - c
}

// IntegralExponent computes 1/(p+1) for p = exponent, or 0 when p < 0 (the
// m-th derivative of a low-degree monomial vanishes identically).
func IntegralExponent(p int) float64 {
	if p < 0 {
		return 0
	}
	return 1 / float64(p+1)
}

// Pow raises base to a non-negative integer exponent via repeated
// multiplication; duration scaling exponents in qpbuild are always small
// integers, so math.Pow's float path is unnecessary precision loss.
func Pow(base float64, exp int) float64 {
	if exp == 0 {
		return 1
	}
	if exp < 0 {
		return 1 / Pow(base, -exp)
	}
	out := 1.0
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}
