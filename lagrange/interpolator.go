// Package lagrange builds interpolating polynomials through sample points
// with pairwise-distinct x values. Interpolator produces the unique
// minimal-degree polynomial in symbolic form via the Lagrange method;
// Incremental trades symbolic output for cheap insertion and point
// evaluation.
package lagrange

import (
	"fmt"

	"github.com/cosinekitty/interp/poly"
	"github.com/cosinekitty/interp/utils"
)

// Point is an (x, y) sample.
type Point[D, R any] struct {
	X D
	Y R
}

// Interpolator accumulates sample points with pairwise-distinct x values and
// produces the unique interpolating polynomial on demand. The zero value is
// not usable; construct with New.
//
// Interpolator is not safe for concurrent use: Insert and Clear mutate the
// stored point set and need external synchronization if shared. The
// polynomials it returns are immutable values and safe to share.
type Interpolator[D, R any] struct {
	alg    poly.Algebra[D, R]
	points []Point[D, R]
}

// New returns an empty Interpolator over the given algebra.
func New[D, R any](alg poly.Algebra[D, R]) *Interpolator[D, R] {
	return &Interpolator[D, R]{alg: alg}
}

// Clear empties the stored point set.
func (itp *Interpolator[D, R]) Clear() {
	itp.points = itp.points[:0]
}

// Len returns the number of stored points.
func (itp *Interpolator[D, R]) Len() int { return len(itp.points) }

// Points returns a copy of the stored points in insertion order.
func (itp *Interpolator[D, R]) Points() []Point[D, R] {
	pts := make([]Point[D, R], len(itp.points))
	copy(pts, itp.points)
	return pts
}

// Insert adds the sample (x, y). If a point with an x equal to the new one
// is already stored, the call has no effect and returns false; duplicate
// insertion is an expected, recoverable outcome the caller must check, not
// an error. Equality is exact, with no tolerance: a near-duplicate x is
// accepted and produces a near-zero basis denominator, which is the caller's
// responsibility to avoid.
func (itp *Interpolator[D, R]) Insert(x D, y R) bool {
	dom := itp.alg.Domain
	for _, p := range itp.points {
		if dom.Equal(p.X, x) {
			return false
		}
	}
	itp.points = append(itp.points, Point[D, R]{X: x, Y: y})
	return true
}

// Polynomial computes the unique Lagrange interpolation polynomial through
// all stored points. It is a pure query: the stored state is never mutated,
// the result is recomputed from scratch on every call, and the call is valid
// at any time. Zero points yield the zero polynomial; one point yields the
// constant polynomial equal to that point's y.
//
// For each point j a basis polynomial is built by multiplying together the
// degree-1 factors (-x_k/denom) + (1/denom)*x over all k != j, with
// denom = x_j - x_k; the basis evaluates to 1 at x_j and 0 at every other
// stored x. Scaling by y_j and summing over j gives the interpolant.
func (itp *Interpolator[D, R]) Polynomial() poly.Polynomial[D, R] {
	alg := itp.alg
	dom := alg.Domain

	sum := alg.Zero()
	for j, pj := range itp.points {
		basis := alg.One()
		for k, pk := range itp.points {
			if k == j {
				continue
			}
			// Never zero: stored x values are pairwise distinct.
			denom := dom.Sub(pj.X, pk.X)
			factor := alg.New(
				alg.Lift(dom.Div(dom.Neg(pk.X), denom)),
				alg.Lift(dom.Div(dom.One(), denom)),
			)
			basis = basis.Mul(factor)
		}
		sum = sum.Add(basis.MulScalar(pj.Y))
	}
	return sum
}

// Fit builds the interpolating polynomial through the given samples in one
// call. It returns an error if the slices differ in length or if any x value
// repeats.
func Fit[D comparable, R any](alg poly.Algebra[D, R], x []D, y []R) (poly.Polynomial[D, R], error) {
	if len(x) != len(y) {
		return poly.Polynomial[D, R]{}, fmt.Errorf("cannot Fit: %d x values for %d y values", len(x), len(y))
	}
	if !utils.AllDistinct(x) {
		return poly.Polynomial[D, R]{}, fmt.Errorf("cannot Fit: duplicate x value")
	}
	itp := New(alg)
	for i := range x {
		itp.Insert(x[i], y[i])
	}
	return itp.Polynomial(), nil
}
