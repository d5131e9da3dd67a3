package zzpoly

import (
	"math/big"
)

// addViews writes the coefficient-wise sum of the logical views a and b into
// dst, whose length must be max(len(a), len(b)). A view index out of range
// of an operand is treated as the zero coefficient; this is the only place
// zero is assumed, and only beyond an operand's own logical extent.
//
// Non-nil dst slots are reused in place, so a stale slot from a larger
// polynomial that previously occupied the buffer is always overwritten
// before it becomes part of the value, and an accumulator reusing its own
// buffer (dst[i] == a[i]) pays no allocation for the overlapping prefix.
// dst must never share slots with b.
func addViews(dst, a, b []*big.Int) {
	for i := range dst {
		switch {
		case i < len(a) && i < len(b):
			if dst[i] == nil {
				dst[i] = new(big.Int)
			}
			dst[i].Add(a[i], b[i])
		case i < len(a):
			if dst[i] == nil {
				dst[i] = new(big.Int)
			}
			if dst[i] != a[i] {
				dst[i].Set(a[i])
			}
		default:
			if dst[i] == nil {
				dst[i] = new(big.Int)
			}
			dst[i].Set(b[i])
		}
	}
}

// negViews writes the negation of the logical view a into dst, under the
// same slot-reuse rules as addViews.
func negViews(dst, a []*big.Int) {
	for i := range dst {
		if dst[i] == nil {
			dst[i] = new(big.Int)
		}
		dst[i].Neg(a[i])
	}
}

// normalizedLen returns the logical length of view once trailing zero
// coefficients are stripped, scanning backward from len(view).
func normalizedLen(view []*big.Int) (n int) {
	n = len(view)
	for n > 0 && view[n-1].Sign() == 0 {
		n--
	}
	return
}
