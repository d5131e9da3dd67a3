package zzpoly

import (
	"math/big"

	"github.com/wjyoumans/stalagmite/utils"
	"github.com/wjyoumans/stalagmite/utils/bignum"
)

// TruncPoly is the canonical dense representation: the coefficient slice
// always ends with a nonzero coefficient, or is empty for the zero
// polynomial. Interior zeros from cancellation are legal and kept.
//
// The zero value is the zero polynomial and is ready to use.
type TruncPoly struct {
	coeffs []*big.Int
}

// NewTruncPoly creates a normalized TruncPoly from a raw coefficient
// sequence, index = power of x. Accepted types are those of [newCoeffs];
// input coefficients are deep-copied and trailing zeros are stripped.
func NewTruncPoly(x interface{}) (p *TruncPoly) {
	p = &TruncPoly{coeffs: newCoeffs(x)}
	p.Normalize()
	return
}

// Normalize strips trailing zero coefficients by reslicing, releasing the
// tail. Idempotent on an already-normalized polynomial.
func (p *TruncPoly) Normalize() {
	p.coeffs = p.coeffs[:normalizedLen(p.coeffs)]
}

// Len returns the number of stored coefficients.
func (p *TruncPoly) Len() int {
	return len(p.coeffs)
}

// Cap returns the capacity of the backing coefficient slice.
func (p *TruncPoly) Cap() int {
	return cap(p.coeffs)
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p *TruncPoly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p *TruncPoly) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsOne returns true if p is the constant polynomial 1.
func (p *TruncPoly) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].Cmp(oneInt) == 0
}

// Coeff returns a copy of the coefficient of x^i, the zero value for
// indices above the degree.
func (p *TruncPoly) Coeff(i int) *big.Int {
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Int)
	}
	return bignum.NewInt(p.coeffs[i])
}

// Canonical returns a deep copy of the canonical coefficient sequence.
func (p *TruncPoly) Canonical() (coeffs []*big.Int) {
	coeffs = make([]*big.Int, len(p.coeffs))
	for i := range p.coeffs {
		coeffs[i] = bignum.NewInt(p.coeffs[i])
	}
	return
}

// Equal returns true if p and q represent the same polynomial.
func (p *TruncPoly) Equal(q *TruncPoly) bool {
	if p == q {
		return true
	}
	return EqualCoeffs(p.coeffs, q.coeffs)
}

// CopyNew returns a new TruncPoly which is a deep copy of p.
func (p *TruncPoly) CopyNew() *TruncPoly {
	return &TruncPoly{coeffs: p.Canonical()}
}

// Add returns the sum p + q as a new TruncPoly.
func (p *TruncPoly) Add(q *TruncPoly) (r *TruncPoly) {
	r = &TruncPoly{coeffs: make([]*big.Int, utils.Max(p.Len(), q.Len()))}
	addViews(r.coeffs, p.coeffs, q.coeffs)
	r.Normalize()
	return
}

// AddAssign folds q into p. The backing buffer is replaced wholesale on
// every nonzero addition: the result is written into a freshly allocated
// slice sized to the combined extent and then trimmed. The returned flag
// reports whether a replacement took place.
func (p *TruncPoly) AddAssign(q *TruncPoly) (grew bool) {
	if q.IsZero() {
		return false
	}
	if utils.Alias1D(p.coeffs, q.coeffs) && p != q {
		panic("cannot AddAssign: operand shares its backing array with the receiver")
	}
	next := make([]*big.Int, utils.Max(p.Len(), q.Len()))
	addViews(next, p.coeffs, q.coeffs)
	p.coeffs = next
	p.Normalize()
	return true
}

// Neg negates p in place.
func (p *TruncPoly) Neg() {
	negViews(p.coeffs, p.coeffs)
}

// NegNew returns -p as a new TruncPoly.
func (p *TruncPoly) NegNew() (r *TruncPoly) {
	r = &TruncPoly{coeffs: make([]*big.Int, len(p.coeffs))}
	negViews(r.coeffs, p.coeffs)
	return
}

// Sub returns the difference p - q as a new TruncPoly.
func (p *TruncPoly) Sub(q *TruncPoly) *TruncPoly {
	return p.Add(q.NegNew())
}

// AddScalar returns p + c (the constant term shifted by c) as a new
// TruncPoly.
func (p *TruncPoly) AddScalar(c *big.Int) (r *TruncPoly) {
	r = p.CopyNew()
	if len(r.coeffs) == 0 {
		r.coeffs = []*big.Int{bignum.NewInt(c)}
	} else {
		r.coeffs[0].Add(r.coeffs[0], c)
	}
	r.Normalize()
	return
}

// String renders p with the highest power first, e.g. "3*x^2 - 2*x + 1".
func (p *TruncPoly) String() string {
	return formatCoeffs(p.coeffs)
}
