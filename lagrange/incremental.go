package lagrange

import (
	"github.com/cosinekitty/interp/poly"
)

// Incremental interpolates without ever materializing a symbolic polynomial.
// Each Insert updates, in O(n) time, a per-point list of numerator
// differences and a denominator product, so that Evaluate(x) costs O(n^2)
// scalar operations with no polynomial arithmetic at all. Use it when points
// arrive one at a time and only point evaluation is needed; use Interpolator
// when the polynomial itself (derivative, integral, composition) is wanted.
type Incremental[D, R any] struct {
	alg    poly.Algebra[D, R]
	coeffs []incCoeff[D, R]
}

// incCoeff carries one sample point together with the running pieces of its
// basis term: diffs holds the x values of every other point (numerator
// factors (x - d)), denom the product of (point.X - d) over the same d.
type incCoeff[D, R any] struct {
	point Point[D, R]
	diffs []D
	denom D
}

// NewIncremental returns an empty incremental evaluator over the given
// algebra.
func NewIncremental[D, R any](alg poly.Algebra[D, R]) *Incremental[D, R] {
	return &Incremental[D, R]{alg: alg}
}

// Clear empties the stored point set.
func (inc *Incremental[D, R]) Clear() {
	inc.coeffs = inc.coeffs[:0]
}

// Len returns the number of stored points.
func (inc *Incremental[D, R]) Len() int { return len(inc.coeffs) }

// Insert adds the sample (x, y), updating every existing basis term so it
// still evaluates to 1 at its own x and to 0 at the new x. A duplicate x has
// no effect and returns false, with the same exact-equality contract as
// Interpolator.Insert.
func (inc *Incremental[D, R]) Insert(x D, y R) bool {
	dom := inc.alg.Domain
	for i := range inc.coeffs {
		if dom.Equal(inc.coeffs[i].point.X, x) {
			return false
		}
	}

	// Extend every existing term with a numerator factor that zeroes it at
	// the new x, and fold the matching correction into its denominator.
	for i := range inc.coeffs {
		c := &inc.coeffs[i]
		c.diffs = append(c.diffs, x)
		c.denom = dom.Mul(c.denom, dom.Sub(c.point.X, x))
	}

	d := incCoeff[D, R]{
		point: Point[D, R]{X: x, Y: y},
		denom: dom.One(),
	}
	for i := range inc.coeffs {
		d.diffs = append(d.diffs, inc.coeffs[i].point.X)
		d.denom = dom.Mul(d.denom, dom.Sub(x, inc.coeffs[i].point.X))
	}
	inc.coeffs = append(inc.coeffs, d)

	return true
}

// Evaluate returns the value at x of the unique interpolant through the
// stored points, the same value Interpolator.Polynomial().Evaluate(x) would
// give for the same points.
func (inc *Incremental[D, R]) Evaluate(x D) R {
	alg := inc.alg
	dom, rng := alg.Domain, alg.Range

	y := rng.Zero()
	for i := range inc.coeffs {
		c := &inc.coeffs[i]
		product := dom.One()
		for _, d := range c.diffs {
			product = dom.Mul(product, dom.Sub(x, d))
		}
		y = rng.Add(y, rng.Mul(alg.Lift(dom.Div(product, c.denom)), c.point.Y))
	}
	return y
}
