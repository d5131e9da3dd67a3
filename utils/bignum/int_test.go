package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wjyoumans/stalagmite/utils/sampling"
)

// test vectors for NewInt conversions
var newIntVec = []struct {
	in   interface{}
	want int64
}{
	{nil, 0},
	{int(-7), -7},
	{int64(42), 42},
	{uint64(9), 9},
	{uint(3), 3},
	{"-1234", -1234},
	{"0x10", 16},
	{big.NewInt(5), 5},
}

func TestNewInt(t *testing.T) {
	for i, tc := range newIntVec {
		require.Equalf(t, tc.want, NewInt(tc.in).Int64(), "Error NewInt test pair %v", i)
	}

	require.Panics(t, func() { NewInt(3.14) })
	require.Panics(t, func() { NewInt("not a number") })

	// NewInt copies, it does not alias
	x := big.NewInt(10)
	y := NewInt(x)
	y.SetInt64(20)
	require.Equal(t, int64(10), x.Int64())
}

func TestNewIntSlice(t *testing.T) {
	xs := NewIntSlice([]int{1, -2, 3})
	require.Len(t, xs, 3)
	require.Equal(t, int64(-2), xs[1].Int64())

	require.Empty(t, NewIntSlice([]uint64(nil)))
}

func TestRandIntSigned(t *testing.T) {
	prng, err := sampling.NewSeededPRNG(11)
	require.NoError(t, err)

	bound := NewInt(1000)
	sawNegative := false
	for i := 0; i < 1000; i++ {
		n := RandIntSigned(prng, bound)
		require.LessOrEqual(t, n.CmpAbs(bound), 0)
		if n.Sign() < 0 {
			sawNegative = true
		}
	}
	require.True(t, sawNegative)

	// zero bound always yields zero
	require.Zero(t, RandIntSigned(prng, NewInt(0)).Sign())
}
