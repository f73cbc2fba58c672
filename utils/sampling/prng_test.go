package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosinekitty/interp/utils/sampling"
)

func TestPRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("Deterministic", func(t *testing.T) {
		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("Key", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		require.Equal(t, key, prng.Key())
	})

	t.Run("Range", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			f := sampling.RandFloat64(prng, -2, 3)
			require.GreaterOrEqual(t, f, -2.0)
			require.Less(t, f, 3.0)
		}

		c := sampling.RandComplex128(prng, 0, 1)
		require.GreaterOrEqual(t, real(c), 0.0)
		require.GreaterOrEqual(t, imag(c), 0.0)

		s := sampling.RandFloat64Slice(prng, 16, 0, 1)
		require.Len(t, s, 16)
	})
}
