package poly

// Derivative returns df/dx: coefficient i of p contributes i*c[i] at index
// i-1, the constant term is dropped. Constant and zero polynomials
// differentiate to the zero polynomial.
func (p Polynomial[D, R]) Derivative() Polynomial[D, R] {
	rng := p.alg.Range
	if len(p.coeffs) <= 1 {
		return Polynomial[D, R]{alg: p.alg}
	}
	coeffs := make([]R, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		coeffs[i-1] = rng.Mul(rng.FromInt(i), p.coeffs[i])
	}
	return Polynomial[D, R]{alg: p.alg, coeffs: truncate(rng, coeffs)}
}

// Integral returns the antiderivative of p with the given integration
// constant as its constant term: coefficient i of p contributes c[i]/(i+1)
// at index i+1. Derivative and Integral are inverse up to the constant:
// p.Integral(c).Derivative() equals p for every p and c.
func (p Polynomial[D, R]) Integral(constant R) Polynomial[D, R] {
	rng := p.alg.Range
	coeffs := make([]R, len(p.coeffs)+1)
	coeffs[0] = constant
	for i, c := range p.coeffs {
		coeffs[i+1] = rng.Div(c, rng.FromInt(i+1))
	}
	return Polynomial[D, R]{alg: p.alg, coeffs: truncate(rng, coeffs)}
}

// Compose returns h = outer ∘ inner, the polynomial h(x) = outer(inner(x))
// in the inner polynomial's domain variable. The outer domain must be the
// inner range type M.
//
// The result is accumulated Horner-style over the outer coefficients: a
// running power of inner starts at the constant polynomial [1], each outer
// coefficient scales it into the sum, and the power is multiplied by inner
// once per remaining term. This is algebraically equivalent to, but far
// cheaper than, symbolic repeated evaluation.
func Compose[D, M, R any](outer Polynomial[M, R], inner Polynomial[D, M]) Polynomial[D, R] {
	alg := Algebra[D, R]{
		Domain: inner.alg.Domain,
		Range:  outer.alg.Range,
		Lift: func(x D) R {
			return outer.alg.Lift(inner.alg.Lift(x))
		},
	}

	// inner's coefficients lifted into the outer range, so powers of inner
	// can be accumulated directly in the result algebra.
	lifted := make([]R, len(inner.coeffs))
	for i, c := range inner.coeffs {
		lifted[i] = outer.alg.Lift(c)
	}
	innerR := Polynomial[D, R]{alg: alg, coeffs: truncate(alg.Range, lifted)}

	sum := alg.Zero()
	power := alg.One()
	for i, c := range outer.coeffs {
		if i > 0 {
			power = power.Mul(innerR)
		}
		sum = sum.Add(power.MulScalar(c))
	}
	return sum
}
