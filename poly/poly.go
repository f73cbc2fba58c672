// Package poly implements symbolic univariate polynomial algebra over a
// generic scalar domain/range pair: evaluation, arithmetic, exponentiation,
// derivative, integral and composition. A polynomial is stored as an ordered
// coefficient sequence, index = power of x, index 0 = constant term, with no
// trailing zero coefficients; the empty sequence is the unique representation
// of the zero polynomial.
package poly

import (
	"fmt"
	"strings"

	"github.com/cosinekitty/interp/num"

	"golang.org/x/exp/constraints"
)

// Algebra binds the scalar arithmetic needed by Polynomial: a field for the
// domain (independent variable), a field for the range (coefficients and
// values), and a Lift conversion taking a domain scalar into the range.
// Domain and range may be the same type (see Over) or differ, e.g. a real
// variable with complex coefficients.
type Algebra[D, R any] struct {
	Domain num.Field[D]
	Range  num.Field[R]
	Lift   func(D) R
}

// NewAlgebra returns an Algebra over the given domain and range fields.
func NewAlgebra[D, R any](domain num.Field[D], rng num.Field[R], lift func(D) R) Algebra[D, R] {
	return Algebra[D, R]{Domain: domain, Range: rng, Lift: lift}
}

// Over returns the Algebra for the common case where domain and range are
// the same scalar type.
func Over[T any](f num.Field[T]) Algebra[T, T] {
	return Algebra[T, T]{Domain: f, Range: f, Lift: num.Identity[T]}
}

// Polynomial represents f(x) = c0 + c1*x + ... + c[n-1]*x^(n-1) over the
// scalars of an Algebra. It is an immutable value: every algebraic operation
// returns a new Polynomial, except the explicit *InPlace variants, which
// replace the receiver's coefficient sequence.
type Polynomial[D, R any] struct {
	alg    Algebra[D, R]
	coeffs []R
}

// New returns the polynomial with the given coefficients, lowest power
// first. Trailing zero coefficients are truncated, so that the empty
// sequence is the canonical zero polynomial. Any input length is valid.
func (a Algebra[D, R]) New(coeffs ...R) Polynomial[D, R] {
	c := make([]R, len(coeffs))
	copy(c, coeffs)
	return Polynomial[D, R]{alg: a, coeffs: truncate(a.Range, c)}
}

// Zero returns the zero polynomial.
func (a Algebra[D, R]) Zero() Polynomial[D, R] {
	return Polynomial[D, R]{alg: a}
}

// One returns the constant polynomial [1], the multiplicative identity.
func (a Algebra[D, R]) One() Polynomial[D, R] {
	return Polynomial[D, R]{alg: a, coeffs: []R{a.Range.One()}}
}

// Real returns a polynomial with real coefficients over a built-in floating
// point type, with domain and range identical.
func Real[T constraints.Float](coeffs ...T) Polynomial[T, T] {
	return Over[T](num.Floats[T]{}).New(coeffs...)
}

// Complex returns a polynomial with complex coefficients over a built-in
// complex type, with domain and range identical.
func Complex[T constraints.Complex](coeffs ...T) Polynomial[T, T] {
	return Over[T](num.Complexes[T]{}).New(coeffs...)
}

// truncate drops trailing zero coefficients, restoring canonical form.
func truncate[R any](f num.Field[R], c []R) []R {
	n := len(c)
	for n > 0 && f.IsZero(c[n-1]) {
		n--
	}
	return c[:n]
}

// Algebra returns the algebra the polynomial was built over.
func (p Polynomial[D, R]) Algebra() Algebra[D, R] { return p.alg }

// Coefficients returns the coefficient sequence, lowest power first.
// The returned slice is a read-only view; the caller must not modify it.
func (p Polynomial[D, R]) Coefficients() []R { return p.coeffs }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[D, R]) IsZero() bool { return len(p.coeffs) == 0 }

// Degree returns the degree of the polynomial, or -1 for the zero
// polynomial.
func (p Polynomial[D, R]) Degree() int { return len(p.coeffs) - 1 }

// Clone returns a deep copy of p.
func (p Polynomial[D, R]) Clone() Polynomial[D, R] {
	coeffs := make([]R, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return Polynomial[D, R]{alg: p.alg, coeffs: coeffs}
}

// Equal reports whether p and q have identical coefficient sequences, by
// exact scalar equality.
func (p Polynomial[D, R]) Equal(q Polynomial[D, R]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.alg.Range.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Evaluate returns f(x) using Horner's method, processing coefficients from
// the highest power down. The zero polynomial evaluates to the additive
// identity without inspecting x.
func (p Polynomial[D, R]) Evaluate(x D) R {
	rng := p.alg.Range
	n := len(p.coeffs)
	if n == 0 {
		return rng.Zero()
	}
	xr := p.alg.Lift(x)
	sum := p.coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		sum = rng.Add(rng.Mul(xr, sum), p.coeffs[i])
	}
	return sum
}

// Func returns p as a unary function value, for callers expecting a plain
// numeric function rather than a Polynomial.
func (p Polynomial[D, R]) Func() func(D) R { return p.Evaluate }

// String renders the polynomial as "c0 + c1*x + c2*x^2 + ...", skipping zero
// coefficients. The zero polynomial renders as "0".
func (p Polynomial[D, R]) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i, c := range p.coeffs {
		if p.alg.Range.IsZero(c) && len(p.coeffs) > 1 {
			continue
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		switch {
		case i == 0:
			fmt.Fprintf(&sb, "%v", c)
		case i == 1:
			fmt.Fprintf(&sb, "%v*x", c)
		default:
			fmt.Fprintf(&sb, "%v*x^%d", c, i)
		}
	}
	return sb.String()
}
