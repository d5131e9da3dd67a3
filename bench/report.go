package bench

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// TimeStats aggregates per-trial wall-clock samples, in seconds.
type TimeStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// newTimeStats aggregates the per-trial samples of the successful trials.
// An empty sample set yields the zero TimeStats.
func newTimeStats(samples []float64) (ts TimeStats) {
	if len(samples) == 0 {
		return
	}
	ts.Min, _ = stats.Min(samples)
	ts.Max, _ = stats.Max(samples)
	ts.Mean, _ = stats.Mean(samples)
	ts.Median, _ = stats.Median(samples)
	ts.StdDev, _ = stats.StandardDeviation(samples)
	return
}

func mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	m, _ := stats.Mean(samples)
	return m
}

// Report is the outcome of one representation's timed runs on one
// configuration.
type Report struct {
	Representation    string    `json:"representation"`
	Operation         string    `json:"operation"`
	Count             int       `json:"count"`
	Trials            int       `json:"trials"`
	Failed            int       `json:"failed"`
	MaxDegreeObserved int       `json:"maxDegreeObserved"`
	ResultDegree      int       `json:"resultDegree"`
	GrowthEvents      int       `json:"growthEvents"`
	AllocsPerTrial    float64   `json:"allocsPerTrial"`
	BytesPerTrial     float64   `json:"bytesPerTrial"`
	Time              TimeStats `json:"time"`
	Digest            string    `json:"digest,omitempty"`
}

func (r Report) String() string {
	return fmt.Sprintf(`
┌──────────────────────┬──────────────┐
│ representation       │ %12s │
│ operation            │ %12s │
│ count                │ %12d │
│ trials (failed)      │ %8d (%d) │
│ max degree observed  │ %12d │
│ result degree        │ %12d │
│ growth events        │ %12d │
│ allocs / trial       │ %12.1f │
│ bytes / trial        │ %12.1f │
├──────────────────────┼──────────────┤
│ time min             │ %10.6fs  │
│ time max             │ %10.6fs  │
│ time mean            │ %10.6fs  │
│ time median          │ %10.6fs  │
│ time stddev          │ %10.6fs  │
└──────────────────────┴──────────────┘
`,
		r.Representation,
		r.Operation,
		r.Count,
		r.Trials-r.Failed, r.Failed,
		r.MaxDegreeObserved,
		r.ResultDegree,
		r.GrowthEvents,
		r.AllocsPerTrial,
		r.BytesPerTrial,
		r.Time.Min,
		r.Time.Max,
		r.Time.Mean,
		r.Time.Median,
		r.Time.StdDev)
}

// Compare renders a side-by-side summary of two reports over the same
// inputs, with b's median time and allocation rate expressed as a ratio of
// a's. A digest mismatch on fold results is called out, since it means the
// two representations disagree on the value of the sum.
func Compare(a, b *Report) string {

	ratio := func(x, y float64) string {
		if x == 0 {
			return "n/a"
		}
		return fmt.Sprintf("%.2fx", y/x)
	}

	agreement := ""
	if a.Digest != "" && b.Digest != "" && a.Digest != b.Digest {
		agreement = "\nWARNING: result digests disagree between representations\n"
	}

	return fmt.Sprintf(`%s vs %s (%s, N=%d):
  median time : %10.6fs vs %10.6fs (%s)
  allocs/trial: %12.1f vs %12.1f (%s)
  growth      : %12d vs %12d
%s`,
		a.Representation, b.Representation, a.Operation, a.Count,
		a.Time.Median, b.Time.Median, ratio(a.Time.Median, b.Time.Median),
		a.AllocsPerTrial, b.AllocsPerTrial, ratio(a.AllocsPerTrial, b.AllocsPerTrial),
		a.GrowthEvents, b.GrowthEvents,
		agreement)
}
