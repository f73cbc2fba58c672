// Package num defines the scalar arithmetic capabilities required by the
// polynomial algebra and interpolation packages, together with adapters for
// the built-in floating point and complex types and for *big.Float.
package num

import (
	"golang.org/x/exp/constraints"
)

// Field is the capability set required of a scalar type T: a commutative
// ring with exact division. Integer types do not qualify, since coefficient
// scaling requires field-like division.
//
// Implementations must treat values as immutable: every operation returns a
// fresh value and leaves its operands untouched. For plain value types this
// is automatic; pointer-backed scalars (see BigFloats) must allocate.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt converts a small integer into the scalar domain.
	FromInt(n int) T
	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Mul(a, b T) T
	// Div returns a/b. Division by zero follows the semantics of the
	// underlying scalar type.
	Div(a, b T) T
	// IsZero reports whether a equals the additive identity, by exact
	// comparison (no tolerance).
	IsZero(a T) bool
	// Equal reports exact equality of a and b.
	Equal(a, b T) bool
}

// Floats is the Field adapter for the built-in floating point types.
type Floats[T constraints.Float] struct{}

func (Floats[T]) Zero() T           { return 0 }
func (Floats[T]) One() T            { return 1 }
func (Floats[T]) FromInt(n int) T   { return T(n) }
func (Floats[T]) Add(a, b T) T      { return a + b }
func (Floats[T]) Sub(a, b T) T      { return a - b }
func (Floats[T]) Neg(a T) T         { return -a }
func (Floats[T]) Mul(a, b T) T      { return a * b }
func (Floats[T]) Div(a, b T) T      { return a / b }
func (Floats[T]) IsZero(a T) bool   { return a == 0 }
func (Floats[T]) Equal(a, b T) bool { return a == b }

// Complexes is the Field adapter for the built-in complex types.
type Complexes[T constraints.Complex] struct{}

func (Complexes[T]) Zero() T           { return 0 }
func (Complexes[T]) One() T            { return 1 }
func (Complexes[T]) FromInt(n int) T   { return T(complex(float64(n), 0)) }
func (Complexes[T]) Add(a, b T) T      { return a + b }
func (Complexes[T]) Sub(a, b T) T      { return a - b }
func (Complexes[T]) Neg(a T) T         { return -a }
func (Complexes[T]) Mul(a, b T) T      { return a * b }
func (Complexes[T]) Div(a, b T) T      { return a / b }
func (Complexes[T]) IsZero(a T) bool   { return a == 0 }
func (Complexes[T]) Equal(a, b T) bool { return a == b }

// Identity is the no-op domain-to-range conversion for algebras whose domain
// and range scalars are the same type.
func Identity[T any](x T) T { return x }

// RealToComplex lifts a real scalar into a complex scalar domain, for
// polynomials with a real independent variable and complex coefficients.
func RealToComplex[F constraints.Float, C constraints.Complex](x F) C {
	return C(complex(float64(x), 0))
}
