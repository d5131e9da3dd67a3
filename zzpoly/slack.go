package zzpoly

import (
	"math/big"

	"github.com/wjyoumans/stalagmite/utils"
	"github.com/wjyoumans/stalagmite/utils/bignum"
)

// GrowthPolicy selects how a SlackPoly backing buffer is extended when an
// addition needs more slots than the buffer holds.
type GrowthPolicy int

const (
	// GrowthAmortized doubles the capacity when growing, so a fold
	// accumulator pays amortized O(1) buffer management per coefficient.
	GrowthAmortized GrowthPolicy = iota
	// GrowthExact grows to exactly the needed extent, trading more growth
	// events for no over-allocation.
	GrowthExact
)

func (g GrowthPolicy) String() string {
	switch g {
	case GrowthAmortized:
		return "amortized"
	case GrowthExact:
		return "exact"
	default:
		return "unknown"
	}
}

// SlackPoly is the slack representation: a backing coefficient buffer paired
// with an explicit logical length. Normalization and shrinking only move the
// length; the buffer itself is never trimmed, so slots at index >= n can
// hold stale coefficients from a larger polynomial that previously occupied
// the buffer. No operation reads those slots as part of the value, and every
// slot is overwritten before the length grows over it.
//
// The zero value is the zero polynomial and is ready to use.
type SlackPoly struct {
	coeffs []*big.Int
	n      int
	growth GrowthPolicy
}

// NewSlackPoly creates a normalized SlackPoly from a raw coefficient
// sequence, index = power of x. Accepted types are those of [newCoeffs];
// input coefficients are deep-copied.
func NewSlackPoly(x interface{}) (p *SlackPoly) {
	coeffs := newCoeffs(x)
	p = &SlackPoly{coeffs: coeffs, n: len(coeffs)}
	p.Normalize()
	return
}

// NewSlackPolyWithCap creates a zero SlackPoly whose buffer can hold
// capacity coefficients before the first growth event.
func NewSlackPolyWithCap(capacity int) *SlackPoly {
	return &SlackPoly{coeffs: make([]*big.Int, 0, capacity)}
}

// SetGrowthPolicy selects the growth policy for subsequent buffer growth.
func (p *SlackPoly) SetGrowthPolicy(g GrowthPolicy) {
	p.growth = g
}

// Normalize decrements the logical length while the leading stored
// coefficient is zero. The buffer is untouched; shrinking is an O(1)
// metadata update per trailing zero.
func (p *SlackPoly) Normalize() {
	for p.n > 0 && p.coeffs[p.n-1].Sign() == 0 {
		p.n--
	}
}

// Len returns the logical number of coefficients.
func (p *SlackPoly) Len() int {
	return p.n
}

// Cap returns the capacity of the backing coefficient buffer.
func (p *SlackPoly) Cap() int {
	return cap(p.coeffs)
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p *SlackPoly) Degree() int {
	return p.n - 1
}

// IsZero returns true if p is the zero polynomial.
func (p *SlackPoly) IsZero() bool {
	return p.n == 0
}

// IsOne returns true if p is the constant polynomial 1.
func (p *SlackPoly) IsOne() bool {
	return p.n == 1 && p.coeffs[0].Cmp(oneInt) == 0
}

// Coeff returns a copy of the coefficient of x^i, the zero value for
// indices at or above the logical length.
func (p *SlackPoly) Coeff(i int) *big.Int {
	if i < 0 || i >= p.n {
		return new(big.Int)
	}
	return bignum.NewInt(p.coeffs[i])
}

// Canonical returns a deep copy of the canonical coefficient sequence,
// reading only the logical prefix of the buffer.
func (p *SlackPoly) Canonical() (coeffs []*big.Int) {
	coeffs = make([]*big.Int, p.n)
	for i := 0; i < p.n; i++ {
		coeffs[i] = bignum.NewInt(p.coeffs[i])
	}
	return
}

// Equal returns true if p and q represent the same polynomial. Only the
// logical prefixes are compared; buffer capacity and slack content do not
// participate.
func (p *SlackPoly) Equal(q *SlackPoly) bool {
	if p == q {
		return true
	}
	return EqualCoeffs(p.coeffs[:p.n], q.coeffs[:q.n])
}

// CopyNew returns a new SlackPoly which is a deep copy of the logical value
// of p. Slack is not carried over.
func (p *SlackPoly) CopyNew() *SlackPoly {
	return &SlackPoly{coeffs: p.Canonical(), n: p.n, growth: p.growth}
}

// reserve extends the backing buffer to hold at least n slots, per the
// growth policy, and reports whether a new backing array was allocated.
// Newly exposed slots are nil until written; every caller overwrites each
// slot up to the new logical length before it becomes meaningful.
func (p *SlackPoly) reserve(n int) (grew bool) {
	if n <= len(p.coeffs) {
		return false
	}
	if n <= cap(p.coeffs) {
		p.coeffs = p.coeffs[:n]
		return false
	}
	c := n
	if p.growth == GrowthAmortized {
		c = utils.Max(n, 2*cap(p.coeffs))
	}
	next := make([]*big.Int, n, c)
	copy(next, p.coeffs)
	p.coeffs = next
	return true
}

// Add returns the sum p + q as a new SlackPoly with an exactly-sized buffer.
func (p *SlackPoly) Add(q *SlackPoly) (r *SlackPoly) {
	n := utils.Max(p.n, q.n)
	r = &SlackPoly{coeffs: make([]*big.Int, n), n: n, growth: p.growth}
	addViews(r.coeffs, p.coeffs[:p.n], q.coeffs[:q.n])
	r.Normalize()
	return
}

// AddAssign folds q into p, reusing the backing buffer in place. Growth
// happens only when the combined extent exceeds the buffer capacity, and
// the returned flag reports exactly that; shrinking after cancellation is
// an O(1) length update.
func (p *SlackPoly) AddAssign(q *SlackPoly) (grew bool) {
	if q.n == 0 {
		return false
	}
	if p != q && utils.Alias1D(p.coeffs, q.coeffs) {
		panic("cannot AddAssign: operand shares its backing array with the receiver")
	}
	n := utils.Max(p.n, q.n)
	grew = p.reserve(n)
	addViews(p.coeffs[:n], p.coeffs[:p.n], q.coeffs[:q.n])
	p.n = n
	p.Normalize()
	return
}

// Neg negates p in place.
func (p *SlackPoly) Neg() {
	negViews(p.coeffs[:p.n], p.coeffs[:p.n])
}

// NegNew returns -p as a new SlackPoly.
func (p *SlackPoly) NegNew() (r *SlackPoly) {
	r = &SlackPoly{coeffs: make([]*big.Int, p.n), n: p.n, growth: p.growth}
	negViews(r.coeffs, p.coeffs[:p.n])
	return
}

// Sub returns the difference p - q as a new SlackPoly.
func (p *SlackPoly) Sub(q *SlackPoly) *SlackPoly {
	return p.Add(q.NegNew())
}

// AddScalar returns p + c (the constant term shifted by c) as a new
// SlackPoly.
func (p *SlackPoly) AddScalar(c *big.Int) (r *SlackPoly) {
	r = p.CopyNew()
	if r.n == 0 {
		r.coeffs = []*big.Int{bignum.NewInt(c)}
		r.n = 1
	} else {
		r.coeffs[0].Add(r.coeffs[0], c)
	}
	r.Normalize()
	return
}

// String renders the logical value of p with the highest power first.
func (p *SlackPoly) String() string {
	return formatCoeffs(p.coeffs[:p.n])
}
