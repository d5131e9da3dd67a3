package zzpoly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wjyoumans/stalagmite/utils/bignum"
)

// test vectors for polynomial addition, shared with the slack representation
type argAdd struct {
	p, q, want []int
}

var addVec = []argAdd{
	{[]int{1, 2, 3}, []int{4, 5}, []int{5, 7, 3}},
	{[]int{4, 5}, []int{1, 2, 3}, []int{5, 7, 3}},
	{[]int{1, -1}, []int{-1, 1}, []int{}},
	{[]int{}, []int{7, 0, 2}, []int{7, 0, 2}},
	{[]int{7, 0, 2}, []int{}, []int{7, 0, 2}},
	{[]int{}, []int{}, []int{}},
	{[]int{1, 2, 3}, []int{0, 0, -3}, []int{1, 2}},
	{[]int{5}, []int{-5, 0, 0, 1}, []int{0, 0, 0, 1}},
	{[]int{0}, []int{0}, []int{}},
}

func TestTruncPolyAdd(t *testing.T) {
	for i, tc := range addVec {
		p := NewTruncPoly(tc.p)
		q := NewTruncPoly(tc.q)
		want := NewTruncPoly(tc.want)

		require.Truef(t, p.Add(q).Equal(want), "Error Add test pair %v", i)

		acc := p.CopyNew()
		acc.AddAssign(q)
		require.Truef(t, acc.Equal(want), "Error AddAssign test pair %v", i)
	}
}

func TestTruncPolyNormalize(t *testing.T) {
	p := NewTruncPoly([]int{1, 0, 2, 0, 0})
	require.Equal(t, 3, p.Len())
	require.Equal(t, 2, p.Degree())

	// interior zeros are kept
	require.Equal(t, int64(0), p.Coeff(1).Int64())

	// idempotent
	p.Normalize()
	require.Equal(t, 3, p.Len())

	zero := NewTruncPoly([]int{0, 0, 0})
	require.True(t, zero.IsZero())
	require.Equal(t, -1, zero.Degree())
}

func TestTruncPolyZeroValue(t *testing.T) {
	var p TruncPoly
	require.True(t, p.IsZero())
	require.Equal(t, "0", p.String())

	q := NewTruncPoly([]int{3, 1})
	require.True(t, p.Add(q).Equal(q))
}

func TestTruncPolyNegSub(t *testing.T) {
	p := NewTruncPoly([]int{1, -2, 3})

	n := p.NegNew()
	require.True(t, n.Equal(NewTruncPoly([]int{-1, 2, -3})))
	require.True(t, p.Add(n).IsZero())

	n.Neg()
	require.True(t, n.Equal(p))

	q := NewTruncPoly([]int{4, 5})
	require.True(t, p.Sub(q).Equal(NewTruncPoly([]int{-3, -7, 3})))
	require.True(t, p.Sub(p).IsZero())
}

func TestTruncPolyAddScalar(t *testing.T) {
	p := NewTruncPoly([]int{1, 2, 3})
	require.True(t, p.AddScalar(bignum.NewInt(5)).Equal(NewTruncPoly([]int{6, 2, 3})))

	// cancellation of the only coefficient
	c := NewTruncPoly([]int{7})
	require.True(t, c.AddScalar(bignum.NewInt(-7)).IsZero())

	var zero TruncPoly
	require.True(t, zero.AddScalar(bignum.NewInt(4)).Equal(NewTruncPoly([]int{4})))
}

func TestTruncPolyConstructors(t *testing.T) {
	require.True(t, NewTruncPoly([]int64{1, 2}).Equal(NewTruncPoly([]int{1, 2})))
	require.True(t, NewTruncPoly([]uint64{1, 2}).Equal(NewTruncPoly([]int{1, 2})))
	want := NewTruncPoly([]*big.Int{bignum.NewInt("10000000000000000000000"), bignum.NewInt(-1)})
	require.True(t, NewTruncPoly([]string{"10000000000000000000000", "-1"}).Equal(want))
}

func TestTruncPolyIsOne(t *testing.T) {
	require.True(t, NewTruncPoly([]int{1}).IsOne())
	require.False(t, NewTruncPoly([]int{1, 1}).IsOne())
	require.False(t, NewTruncPoly(nil).IsOne())
}

func TestTruncPolyString(t *testing.T) {
	require.Equal(t, "3*x^2 - 2*x + 1", NewTruncPoly([]int{1, -2, 3}).String())
	require.Equal(t, "x^3 + 5", NewTruncPoly([]int{5, 0, 0, 1}).String())
	require.Equal(t, "-x", NewTruncPoly([]int{0, -1}).String())
	require.Equal(t, "0", NewTruncPoly(nil).String())
}

func TestTruncPolyOwnership(t *testing.T) {
	raw := []int{1, 2, 3}
	p := NewTruncPoly(raw)
	q := p.CopyNew()

	// mutating q must not reach p
	q.Neg()
	require.True(t, p.Equal(NewTruncPoly([]int{1, 2, 3})))

	// Coeff returns a copy
	p.Coeff(0).SetInt64(99)
	require.Equal(t, int64(1), p.Coeff(0).Int64())
}
