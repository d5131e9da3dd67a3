// Package bignum provides arbitrary-precision integer construction and
// bounded random sampling on top of math/big.
package bignum

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/exp/constraints"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		if _, ok := y.SetString(x, 0); !ok {
			panic(fmt.Sprintf("cannot NewInt: invalid integer literal %q", x))
		}
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Int, but is %T", x))
	}

	return
}

// NewIntSlice allocates a new []*big.Int from a slice of machine integers.
func NewIntSlice[T constraints.Integer](xs []T) (ys []*big.Int) {
	ys = make([]*big.Int, len(xs))
	for i := range xs {
		ys[i] = NewInt(int64(xs[i]))
	}
	return
}

// RandInt generates a random Int in [0, max-1].
func RandInt(reader io.Reader, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(reader, max); err != nil {
		panic("error: crypto/rand/bigint")
	}
	return
}

// RandIntSigned generates a random Int in [-bound, bound].
// A zero bound always returns zero.
func RandIntSigned(reader io.Reader, bound *big.Int) (n *big.Int) {
	if bound.Sign() == 0 {
		return new(big.Int)
	}
	width := new(big.Int).Lsh(bound, 1)
	width.Add(width, NewInt(1))
	n = RandInt(reader, width)
	return n.Sub(n, bound)
}
