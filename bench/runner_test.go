package bench

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/wjyoumans/stalagmite/utils/bignum"
	"github.com/wjyoumans/stalagmite/zzpoly"
)

// Summing 1000 polynomials of degree uniform in [0, 50] with coefficients
// bounded by 10^6 must agree with the independent reference summation for
// both representations.
func TestRunFoldAgainstReference(t *testing.T) {
	cfg := Config{
		Representation: Both,
		Operation:      Fold,
		Count:          1000,
		Trials:         2,
		Seed:           0x517a,
		Degree:         DegreeDistribution{Kind: Uniform, MaxDegree: 50},
		CoeffBound:     bignum.NewInt(1000000),
		Check:          true,
	}

	reports, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	for _, r := range reports {
		require.Zerof(t, r.Failed, "representation %s had failed trials", r.Representation)
		require.LessOrEqual(t, r.ResultDegree, 50)
		require.LessOrEqual(t, r.MaxDegreeObserved, 50)
		require.NotEmpty(t, r.Digest)
	}

	// identical inputs, identical sums
	require.Equal(t, reports[0].Digest, reports[1].Digest)
	require.Equal(t, reports[0].ResultDegree, reports[1].ResultDegree)
	require.Equal(t, reports[0].MaxDegreeObserved, reports[1].MaxDegreeObserved)
}

// The fold result must equal the reference summation coefficient by
// coefficient, not only by digest.
func TestFoldMatchesReferenceCoefficients(t *testing.T) {
	cfg := validConfig()
	cfg.Count = 200
	cfg.Seed = 0xc0ffee

	g, err := NewGenerator(cfg)
	require.NoError(t, err)
	rows, _ := g.Rows()
	want := ReferenceSum(rows)

	accT := zzpoly.NewTruncPoly(nil)
	for _, p := range MaterializeTrunc(rows) {
		accT.AddAssign(p)
	}
	require.True(t, zzpoly.EqualCoeffs(want, accT.Canonical()))

	accS := zzpoly.NewSlackPoly(nil)
	for _, p := range MaterializeSlack(rows, zzpoly.GrowthAmortized) {
		accS.AddAssign(p)
	}
	require.True(t, zzpoly.EqualCoeffs(want, accS.Canonical()))
}

// Two runs with the same configuration must produce identical reports up to
// timing and allocation noise.
func TestRunDeterministicUpToTiming(t *testing.T) {
	cfg := validConfig()
	cfg.Representation = Slack
	cfg.Seed = 7

	first, err := Run(cfg)
	require.NoError(t, err)
	second, err := Run(cfg)
	require.NoError(t, err)

	ignore := cmpopts.IgnoreFields(Report{}, "Time", "AllocsPerTrial", "BytesPerTrial")
	if diff := cmp.Diff(first, second, ignore); diff != "" {
		t.Errorf("reports differ (-first +second):\n%s", diff)
	}
}

// The slack accumulator grows at most a handful of times over a long fold,
// while the truncated accumulator replaces its buffer on every step.
func TestRunGrowthAccounting(t *testing.T) {
	cfg := Config{
		Representation: Both,
		Operation:      Fold,
		Count:          500,
		Trials:         1,
		Seed:           3,
		Degree:         DegreeDistribution{Kind: Uniform, MaxDegree: 40},
		CoeffBound:     bignum.NewInt(1000),
	}

	reports, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	truncated, slack := reports[0], reports[1]
	require.Equal(t, "truncated", truncated.Representation)
	require.Equal(t, "slack", slack.Representation)

	// every nonzero addition replaces the truncated buffer
	require.Greater(t, truncated.GrowthEvents, cfg.Count/2)
	// the slack buffer only reallocates while ramping up to the max degree
	require.LessOrEqual(t, slack.GrowthEvents, 10)
	require.Greater(t, slack.GrowthEvents, 0)
}

func TestRunPairwiseAdd(t *testing.T) {
	cfg := validConfig()
	cfg.Operation = PairwiseAdd
	cfg.Representation = Both

	reports, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	for _, r := range reports {
		require.Zero(t, r.Failed)
		require.Equal(t, "pairwiseAdd", r.Operation)
		// pairwise runs produce no fold result
		require.Equal(t, -1, r.ResultDegree)
		require.Empty(t, r.Digest)
	}
}

// All-zero inputs fold to the zero polynomial.
func TestRunDegenerateZeroBound(t *testing.T) {
	cfg := validConfig()
	cfg.CoeffBound = bignum.NewInt(0)
	cfg.Check = true

	reports, err := Run(cfg)
	require.NoError(t, err)
	for _, r := range reports {
		require.Zero(t, r.Failed)
		require.Equal(t, -1, r.ResultDegree)
	}
}

func TestReportRendering(t *testing.T) {
	cfg := validConfig()
	reports, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	for _, r := range reports {
		s := r.String()
		require.Contains(t, s, r.Representation)
		require.Contains(t, s, r.Operation)
	}

	summary := Compare(reports[0], reports[1])
	require.Contains(t, summary, "truncated vs slack")
	require.NotContains(t, summary, "WARNING")
}
