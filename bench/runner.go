package bench

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zeebo/blake3"

	"github.com/wjyoumans/stalagmite/zzpoly"
)

// trialResult carries the measurements of a single completed trial.
type trialResult struct {
	seconds float64
	growth  int
	allocs  uint64
	bytes   uint64
	result  []*big.Int
}

// Run validates cfg, generates the input rows once, and executes the
// configured operation for each requested representation over cfg.Trials
// timed runs on identical inputs. Configuration errors abort before any
// timed run; a failing trial is recorded in the report and does not stop
// subsequent trials.
func Run(cfg Config) ([]*Report, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	rows, maxDegree := gen.Rows()
	log.Debugf("generated %d polynomials, max degree %d, seed %d", len(rows), maxDegree, cfg.Seed)

	reps := []Representation{cfg.Representation}
	if cfg.Representation == Both {
		reps = []Representation{Truncated, Slack}
	}

	reports := make([]*Report, 0, len(reps))
	for _, rep := range reps {
		reports = append(reports, runRepresentation(cfg, rep, rows, maxDegree))
	}

	return reports, nil
}

func runRepresentation(cfg Config, rep Representation, rows [][]*big.Int, maxDegree int) *Report {

	report := &Report{
		Representation:    rep.String(),
		Operation:         cfg.Operation.String(),
		Count:             cfg.Count,
		Trials:            cfg.Trials,
		MaxDegreeObserved: maxDegree,
		ResultDegree:      -1,
	}

	var want []*big.Int
	if cfg.Check && cfg.Operation == Fold {
		want = ReferenceSum(rows)
	}

	var seconds, allocs, bytes []float64

	for t := 0; t < cfg.Trials; t++ {

		// Materialization is excluded from the timed window: every trial
		// starts from fresh inputs and a fresh accumulator.
		var res trialResult
		var err error
		switch rep {
		case Slack:
			acc := zzpoly.NewSlackPoly(nil)
			acc.SetGrowthPolicy(cfg.Growth)
			res, err = runTrial(cfg, MaterializeSlack(rows, cfg.Growth), acc)
		default:
			res, err = runTrial(cfg, MaterializeTrunc(rows), zzpoly.NewTruncPoly(nil))
		}

		if err == nil && want != nil && !zzpoly.EqualCoeffs(res.result, want) {
			err = fmt.Errorf("fold result disagrees with reference summation")
		}

		if err != nil {
			report.Failed++
			log.Warnf("%s %s trial %d/%d failed: %v", rep, cfg.Operation, t+1, cfg.Trials, err)
			continue
		}

		seconds = append(seconds, res.seconds)
		allocs = append(allocs, float64(res.allocs))
		bytes = append(bytes, float64(res.bytes))
		report.GrowthEvents = res.growth

		if res.result != nil {
			report.ResultDegree = len(res.result) - 1
			report.Digest = digest(res.result)
		}

		log.Debugf("%s %s trial %d/%d: %.6fs, %d growth events", rep, cfg.Operation, t+1, cfg.Trials, res.seconds, res.growth)
	}

	report.Time = newTimeStats(seconds)
	report.AllocsPerTrial = mean(allocs)
	report.BytesPerTrial = mean(bytes)

	return report
}

// runTrial executes one timed run of the configured operation. A panic
// during the run (the allocation-failure path) is recovered and reported as
// the trial's error, so no partial measurements leak into the statistics.
func runTrial[P zzpoly.Polynomial[P]](cfg Config, polys []P, acc P) (res trialResult, err error) {

	defer func() {
		if r := recover(); r != nil {
			res = trialResult{}
			err = fmt.Errorf("trial aborted: %v", r)
		}
	}()

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	switch cfg.Operation {
	case PairwiseAdd:
		for i := 0; i+1 < len(polys); i++ {
			_ = polys[i].Add(polys[i+1])
		}
	default:
		for _, q := range polys {
			if acc.AddAssign(q) {
				res.growth++
			}
		}
	}

	res.seconds = time.Since(start).Seconds()
	runtime.ReadMemStats(&after)
	res.allocs = after.Mallocs - before.Mallocs
	res.bytes = after.TotalAlloc - before.TotalAlloc

	if cfg.Operation == Fold {
		res.result = acc.Canonical()
	}

	return
}

// digest hashes a canonical coefficient sequence with blake3: the count,
// then per coefficient a sign byte, a big-endian magnitude length, and the
// magnitude bytes. Equal digests across representations certify agreement
// without shipping coefficients around.
func digest(coeffs []*big.Int) string {

	h := blake3.New()

	var u [8]byte
	binary.BigEndian.PutUint64(u[:], uint64(len(coeffs)))
	h.Write(u[:])

	for _, c := range coeffs {
		mag := c.Bytes()
		h.Write([]byte{byte(c.Sign() + 1)})
		binary.BigEndian.PutUint64(u[:], uint64(len(mag)))
		h.Write(u[:])
		h.Write(mag)
	}

	return hex.EncodeToString(h.Sum(nil))
}
