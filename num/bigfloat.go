package num

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// BigFloats is the Field adapter for *big.Float scalars with a fixed
// mantissa precision in bits. All operations allocate fresh values, so
// coefficients shared between polynomials are never mutated.
type BigFloats struct {
	Prec uint
}

// NewBigFloats returns a BigFloats field with prec bits of precision.
func NewBigFloats(prec uint) BigFloats {
	return BigFloats{Prec: prec}
}

func (f BigFloats) new() *big.Float {
	return new(big.Float).SetPrec(f.Prec)
}

func (f BigFloats) Zero() *big.Float { return f.new() }

func (f BigFloats) One() *big.Float { return f.new().SetInt64(1) }

func (f BigFloats) FromInt(n int) *big.Float { return f.new().SetInt64(int64(n)) }

func (f BigFloats) Add(a, b *big.Float) *big.Float { return f.new().Add(a, b) }

func (f BigFloats) Sub(a, b *big.Float) *big.Float { return f.new().Sub(a, b) }

func (f BigFloats) Neg(a *big.Float) *big.Float { return f.new().Neg(a) }

func (f BigFloats) Mul(a, b *big.Float) *big.Float { return f.new().Mul(a, b) }

func (f BigFloats) Div(a, b *big.Float) *big.Float { return f.new().Quo(a, b) }

func (f BigFloats) IsZero(a *big.Float) bool { return a.Sign() == 0 }

func (f BigFloats) Equal(a, b *big.Float) bool { return a.Cmp(b) == 0 }

// NewFloat creates a new big.Float element with prec bits of precision.
// Valid types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Pow returns x^y.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}
