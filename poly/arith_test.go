package poly

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/cosinekitty/interp/utils/sampling"
)

func randomPoly(prng sampling.PRNG, degree int) Polynomial[float64, float64] {
	return Real(sampling.RandFloat64Slice(prng, degree+1, -1, 1)...)
}

func TestNeg(t *testing.T) {
	p := Real(1.0, -2.0, 3.0)
	require.Equal(t, []float64{-1, 2, -3}, p.Neg().Coefficients())
	require.True(t, p.Neg().Neg().Equal(p))
	require.True(t, p.Pos().Equal(p))
	require.True(t, Real[float64]().Neg().IsZero())
}

func TestMulScalar(t *testing.T) {
	p := Real(1.0, -2.0, 3.0)
	require.Equal(t, []float64{2, -4, 6}, p.MulScalar(2).Coefficients())

	// multiplying by zero collapses to the canonical zero polynomial
	require.True(t, p.MulScalar(0).IsZero())
}

func TestAddSub(t *testing.T) {

	t.Run("Padding", func(t *testing.T) {
		p := Real(1.0, 1.0)
		q := Real(1.0, 0.0, 2.0)
		require.Equal(t, []float64{2, 1, 2}, p.Add(q).Coefficients())
		require.Equal(t, []float64{0, 1, -2}, p.Sub(q).Coefficients())
	})

	t.Run("CancellationTruncates", func(t *testing.T) {
		p := Real(1.0, 2.0, 3.0)
		require.True(t, p.Sub(p).IsZero())
		require.True(t, p.Add(p.Neg()).IsZero())

		// only the leading terms cancel
		q := Real(0.0, 0.0, 3.0)
		require.Equal(t, []float64{1, 2}, p.Sub(q).Coefficients())
	})

	t.Run("ZeroIdentity", func(t *testing.T) {
		p := Real(1.0, 2.0)
		zero := Real[float64]()
		require.True(t, p.Add(zero).Equal(p))
		require.True(t, zero.Add(p).Equal(p))
	})

	t.Run("InPlace", func(t *testing.T) {
		p := Real(1.0, 1.0)
		q := Real(1.0, 0.0, 2.0)

		acc := p.Clone()
		acc.AddInPlace(q)
		require.True(t, acc.Equal(p.Add(q)))

		acc = p.Clone()
		acc.SubInPlace(q)
		require.True(t, acc.Equal(p.Sub(q)))
	})
}

func TestMul(t *testing.T) {

	t.Run("Example", func(t *testing.T) {
		// (x-1)(x-2) = x^2 - 3x + 2
		p := Real(-1.0, 1.0)
		q := Real(-2.0, 1.0)
		require.Equal(t, []float64{2, -3, 1}, p.Mul(q).Coefficients())
	})

	t.Run("ZeroAnnihilates", func(t *testing.T) {
		p := Real(1.0, 2.0, 3.0)
		zero := Real[float64]()
		require.True(t, p.Mul(zero).IsZero())
		require.True(t, zero.Mul(p).IsZero())
		require.True(t, zero.Mul(zero).IsZero())
		require.Empty(t, p.Mul(zero).Coefficients())
	})

	t.Run("ZeroPropagation", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		for i := 0; i < 8; i++ {
			p := randomPoly(prng, i)
			q := randomPoly(prng, 7-i)
			require.Equal(t, p.IsZero() || q.IsZero(), p.Mul(q).IsZero())
		}
	})

	t.Run("InPlace", func(t *testing.T) {
		p := Real(-1.0, 1.0)
		acc := p.Clone()
		acc.MulInPlace(Real(-2.0, 1.0))
		require.Equal(t, []float64{2, -3, 1}, acc.Coefficients())
	})
}

func TestPow(t *testing.T) {

	t.Run("Example", func(t *testing.T) {
		p := Real(-1.0, 1.0)
		cube, err := p.Pow(3)
		require.NoError(t, err)
		require.Equal(t, []float64{-1, 3, -3, 1}, cube.Coefficients())
	})

	t.Run("ExponentZero", func(t *testing.T) {
		one, err := Real(5.0, 2.0).Pow(0)
		require.NoError(t, err)
		require.Equal(t, []float64{1}, one.Coefficients())

		// 0^0 = [1] by convention
		one, err = Real[float64]().Pow(0)
		require.NoError(t, err)
		require.Equal(t, []float64{1}, one.Coefficients())
	})

	t.Run("ExponentOne", func(t *testing.T) {
		p := Real(5.0, 2.0)
		q, err := p.Pow(1)
		require.NoError(t, err)
		require.True(t, p.Equal(q))
	})

	t.Run("NegativeExponent", func(t *testing.T) {
		_, err := Real(1.0, 1.0).Pow(-1)
		require.Error(t, err)
	})

	t.Run("ZeroBase", func(t *testing.T) {
		p, err := Real[float64]().Pow(5)
		require.NoError(t, err)
		require.True(t, p.IsZero())
	})

	t.Run("Homomorphism", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(testKey)
		require.NoError(t, err)

		approx := cmpopts.EquateApprox(0, 1e-9)

		for _, exps := range [][2]int{{0, 0}, {1, 2}, {3, 4}, {2, 5}} {
			p := randomPoly(prng, 3)
			m, n := exps[0], exps[1]

			pm, err := p.Pow(m)
			require.NoError(t, err)
			pn, err := p.Pow(n)
			require.NoError(t, err)
			pmn, err := p.Pow(m + n)
			require.NoError(t, err)

			diff := cmp.Diff(pmn.Coefficients(), pm.Mul(pn).Coefficients(), approx)
			require.Empty(t, diff)
		}
	})
}
