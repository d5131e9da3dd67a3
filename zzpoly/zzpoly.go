// Package zzpoly implements dense univariate polynomials with
// arbitrary-precision integer coefficients under two competing
// representations.
//
// TruncPoly is the canonical representation: its backing slice is trimmed
// after every operation so that it always ends with a nonzero coefficient.
// SlackPoly keeps a (buffer, length) pair instead: the buffer is never
// trimmed, the logical extent is tracked by the length field, and slots past
// the length hold stale values that are never read. The slack layout lets a
// fold accumulator absorb a long sequence of additions with amortized O(1)
// buffer management.
package zzpoly

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/wjyoumans/stalagmite/utils/bignum"
)

// Polynomial is the capability set shared by both representations. The
// benchmark harness is generic over this constraint, so it drives either
// representation through the same fold loop.
//
// AddAssign folds q into the receiver and reports whether the operation
// allocated a new backing buffer (a growth event for SlackPoly, a wholesale
// replacement for TruncPoly).
type Polynomial[P any] interface {
	Add(q P) P
	AddAssign(q P) (grew bool)
	Normalize()
	Canonical() []*big.Int
	Len() int
	Degree() int
	IsZero() bool
	Equal(q P) bool
	CopyNew() P
	Cap() int
	fmt.Stringer
}

var _ Polynomial[*TruncPoly] = (*TruncPoly)(nil)
var _ Polynomial[*SlackPoly] = (*SlackPoly)(nil)

// newCoeffs builds a fresh, fully-owned coefficient slice from the accepted
// input types; every element is deep-copied. Accepted types are: nil,
// []*big.Int, []int, []int64, []uint64 and []string.
func newCoeffs(x interface{}) (coeffs []*big.Int) {
	switch x := x.(type) {
	case nil:
		return nil
	case []*big.Int:
		coeffs = make([]*big.Int, len(x))
		for i := range x {
			coeffs[i] = bignum.NewInt(x[i])
		}
	case []int:
		coeffs = bignum.NewIntSlice(x)
	case []int64:
		coeffs = bignum.NewIntSlice(x)
	case []uint64:
		coeffs = bignum.NewIntSlice(x)
	case []string:
		coeffs = make([]*big.Int, len(x))
		for i := range x {
			coeffs[i] = bignum.NewInt(x[i])
		}
	default:
		panic(fmt.Sprintf("cannot newCoeffs: accepted types are nil, []*big.Int, []int, []int64, []uint64, []string, but is %T", x))
	}
	return
}

// EqualCoeffs reports whether two canonical coefficient sequences are equal.
func EqualCoeffs(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// formatCoeffs renders a logical coefficient view as a human-readable
// polynomial in x, highest power first, e.g. "3*x^2 - 2*x + 1".
func formatCoeffs(view []*big.Int) string {

	if len(view) == 0 {
		return "0"
	}

	var sb strings.Builder

	first := true
	for i := len(view) - 1; i >= 0; i-- {

		c := view[i]
		if c.Sign() == 0 {
			continue
		}

		abs := new(big.Int).Abs(c)

		if first {
			if c.Sign() < 0 {
				sb.WriteString("-")
			}
			first = false
		} else if c.Sign() < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}

		switch {
		case i == 0:
			sb.WriteString(abs.String())
		case abs.Cmp(oneInt) == 0:
			sb.WriteString(monomial(i))
		default:
			sb.WriteString(abs.String())
			sb.WriteString("*")
			sb.WriteString(monomial(i))
		}
	}

	return sb.String()
}

var oneInt = big.NewInt(1)

func monomial(i int) string {
	if i == 1 {
		return "x"
	}
	return fmt.Sprintf("x^%d", i)
}
