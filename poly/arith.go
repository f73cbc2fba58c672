package poly

import (
	"fmt"
)

// Pos returns p unchanged. It is the identity counterpart of Neg.
func (p Polynomial[D, R]) Pos() Polynomial[D, R] { return p }

// Neg returns the polynomial with every coefficient negated.
func (p Polynomial[D, R]) Neg() Polynomial[D, R] {
	rng := p.alg.Range
	coeffs := make([]R, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = rng.Neg(c)
	}
	return Polynomial[D, R]{alg: p.alg, coeffs: coeffs}
}

// MulScalar returns s*p. Scalar multiplication commutes, so this single
// method covers both operand orders.
func (p Polynomial[D, R]) MulScalar(s R) Polynomial[D, R] {
	rng := p.alg.Range
	coeffs := make([]R, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = rng.Mul(c, s)
	}
	return Polynomial[D, R]{alg: p.alg, coeffs: truncate(rng, coeffs)}
}

// Add returns p + q.
func (p Polynomial[D, R]) Add(q Polynomial[D, R]) Polynomial[D, R] {
	return p.combine(q, p.alg.Range.Add)
}

// Sub returns p - q.
func (p Polynomial[D, R]) Sub(q Polynomial[D, R]) Polynomial[D, R] {
	return p.combine(q, p.alg.Range.Sub)
}

// combine merges two coefficient sequences element-wise, padding the shorter
// one with the additive identity, then truncates back to canonical form.
func (p Polynomial[D, R]) combine(q Polynomial[D, R], op func(R, R) R) Polynomial[D, R] {
	rng := p.alg.Range
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]R, n)
	for i := range coeffs {
		a, b := rng.Zero(), rng.Zero()
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		coeffs[i] = op(a, b)
	}
	return Polynomial[D, R]{alg: p.alg, coeffs: truncate(rng, coeffs)}
}

// Mul returns p * q, the discrete convolution of the coefficient sequences.
// If either operand is the zero polynomial the result is the zero
// polynomial; the convolution length lenP+lenQ-1 is only valid for non-zero
// operands.
func (p Polynomial[D, R]) Mul(q Polynomial[D, R]) Polynomial[D, R] {
	rng := p.alg.Range
	if p.IsZero() || q.IsZero() {
		return Polynomial[D, R]{alg: p.alg}
	}
	coeffs := make([]R, len(p.coeffs)+len(q.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = rng.Zero()
	}
	for i, a := range p.coeffs {
		if rng.IsZero(a) {
			continue
		}
		for j, b := range q.coeffs {
			coeffs[i+j] = rng.Add(coeffs[i+j], rng.Mul(a, b))
		}
	}
	return Polynomial[D, R]{alg: p.alg, coeffs: truncate(rng, coeffs)}
}

// AddInPlace sets p = p + q.
func (p *Polynomial[D, R]) AddInPlace(q Polynomial[D, R]) { *p = p.Add(q) }

// SubInPlace sets p = p - q.
func (p *Polynomial[D, R]) SubInPlace(q Polynomial[D, R]) { *p = p.Sub(q) }

// MulInPlace sets p = p * q.
func (p *Polynomial[D, R]) MulInPlace(q Polynomial[D, R]) { *p = p.Mul(q) }

// Pow returns p^k using square-and-multiply, costing O(log k) polynomial
// multiplications. A negative exponent is an invalid argument and returns an
// error, leaving p untouched.
//
// Pow(0) returns the constant polynomial [1] for every base, including the
// zero polynomial. Treating 0^0 as 1 here is a deliberate convention (0^0 is
// mathematically undefined); it keeps exponentiation total on non-negative
// exponents and composes cleanly.
func (p Polynomial[D, R]) Pow(k int) (Polynomial[D, R], error) {
	if k < 0 {
		return Polynomial[D, R]{}, fmt.Errorf("cannot Pow: negative exponent %d", k)
	}
	product := p.alg.One()
	square := p
	for k > 0 {
		if k&1 == 1 {
			product = product.Mul(square)
		}
		if k >>= 1; k > 0 {
			square = square.Mul(square)
		}
	}
	return product, nil
}
