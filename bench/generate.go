package bench

import (
	"math"
	"math/big"

	"github.com/wjyoumans/stalagmite/utils/bignum"
	"github.com/wjyoumans/stalagmite/utils/sampling"
	"github.com/wjyoumans/stalagmite/zzpoly"
)

// Generator produces reproducible random polynomial inputs for a benchmark
// configuration. Two generators built from the same configuration yield
// identical rows.
type Generator struct {
	cfg  Config
	prng *sampling.KeyedPRNG
}

// NewGenerator creates a Generator keyed by the configuration's seed.
func NewGenerator(cfg Config) (*Generator, error) {
	prng, err := sampling.NewSeededPRNG(cfg.Seed)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, prng: prng}, nil
}

// Rows generates cfg.Count raw coefficient rows and reports the maximum
// sampled degree. Rows are raw material: the same rows are materialized
// into each representation so both sides of a comparison see identical
// inputs.
func (g *Generator) Rows() (rows [][]*big.Int, maxDegree int) {

	rows = make([][]*big.Int, g.cfg.Count)
	maxDegree = -1

	for i := range rows {
		d := g.sampleDegree()
		rows[i] = g.sampleRow(d)
		if d > maxDegree {
			maxDegree = d
		}
	}

	return
}

func (g *Generator) sampleDegree() int {
	max := g.cfg.Degree.MaxDegree
	switch g.cfg.Degree.Kind {
	case Geometric:
		p := g.cfg.Degree.P
		if p == 1 {
			return 0
		}
		d := int(math.Floor(math.Log(1-g.prng.Float64()) / math.Log(1-p)))
		if d > max {
			d = max
		}
		return d
	default:
		return int(g.prng.Uint64() % uint64(max+1))
	}
}

// sampleRow draws degree+1 coefficients uniform in [-bound, bound]. When
// the bound is nonzero the leading coefficient is resampled until nonzero,
// so the sampled degree is exact.
func (g *Generator) sampleRow(degree int) (row []*big.Int) {
	bound := g.cfg.CoeffBound
	row = make([]*big.Int, degree+1)
	for i := range row {
		row[i] = bignum.RandIntSigned(g.prng, bound)
	}
	if bound.Sign() != 0 {
		for row[degree].Sign() == 0 {
			row[degree] = bignum.RandIntSigned(g.prng, bound)
		}
	}
	return
}

// ReferenceSum computes the coefficient-by-coefficient sum of rows into a
// canonical (trailing-zero-stripped) sequence. It is independent of the
// zzpoly addition path and serves as the verification oracle for fold
// results.
func ReferenceSum(rows [][]*big.Int) (sum []*big.Int) {

	for _, row := range rows {
		for len(sum) < len(row) {
			sum = append(sum, new(big.Int))
		}
		for i, c := range row {
			sum[i].Add(sum[i], c)
		}
	}

	n := len(sum)
	for n > 0 && sum[n-1].Sign() == 0 {
		n--
	}

	return sum[:n]
}

// MaterializeTrunc builds fresh TruncPoly instances from raw rows.
func MaterializeTrunc(rows [][]*big.Int) (polys []*zzpoly.TruncPoly) {
	polys = make([]*zzpoly.TruncPoly, len(rows))
	for i := range rows {
		polys[i] = zzpoly.NewTruncPoly(rows[i])
	}
	return
}

// MaterializeSlack builds fresh SlackPoly instances from raw rows, all
// sharing the given growth policy.
func MaterializeSlack(rows [][]*big.Int, growth zzpoly.GrowthPolicy) (polys []*zzpoly.SlackPoly) {
	polys = make([]*zzpoly.SlackPoly, len(rows))
	for i := range rows {
		polys[i] = zzpoly.NewSlackPoly(rows[i])
		polys[i].SetGrowthPolicy(growth)
	}
	return
}
