// Package bench implements the summation benchmark harness comparing the
// two polynomial representations of zzpoly on addition and fold workloads.
//
// The harness generates a reproducible sequence of random polynomials from
// a seed, materializes the same inputs into each representation, drives the
// configured operation over them in repeated timed trials, and reports
// wall-clock statistics together with buffer-growth and allocation
// accounting.
package bench

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/wjyoumans/stalagmite/zzpoly"
)

// ErrInvalidConfig is wrapped by every configuration validation failure, so
// callers can classify with errors.Is.
var ErrInvalidConfig = errors.New("invalid benchmark configuration")

// Representation selects which polynomial design a run exercises.
type Representation int

const (
	// Truncated exercises zzpoly.TruncPoly.
	Truncated Representation = iota
	// Slack exercises zzpoly.SlackPoly.
	Slack
	// Both runs the two representations on identical inputs.
	Both
)

func (r Representation) String() string {
	switch r {
	case Truncated:
		return "truncated"
	case Slack:
		return "slack"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// ParseRepresentation maps a CLI flag value onto a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch s {
	case "truncated":
		return Truncated, nil
	case "slack":
		return Slack, nil
	case "both":
		return Both, nil
	default:
		return 0, fmt.Errorf("%w: unknown representation %q", ErrInvalidConfig, s)
	}
}

// Operation selects the workload a run measures.
type Operation int

const (
	// Fold sums the whole input sequence left-to-right into one mutable
	// accumulator.
	Fold Operation = iota
	// PairwiseAdd performs N-1 independent adjacent-pair additions,
	// discarding the results.
	PairwiseAdd
)

func (o Operation) String() string {
	switch o {
	case Fold:
		return "fold"
	case PairwiseAdd:
		return "pairwiseAdd"
	default:
		return "unknown"
	}
}

// ParseOperation maps a CLI flag value onto an Operation.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "fold":
		return Fold, nil
	case "pairwiseAdd":
		return PairwiseAdd, nil
	default:
		return 0, fmt.Errorf("%w: unknown operation %q", ErrInvalidConfig, s)
	}
}

// DistributionKind selects how input polynomial degrees are sampled.
type DistributionKind int

const (
	// Uniform samples degrees uniformly in [0, MaxDegree].
	Uniform DistributionKind = iota
	// Geometric samples degrees from a geometric law with parameter P,
	// capped at MaxDegree.
	Geometric
)

func (k DistributionKind) String() string {
	switch k {
	case Uniform:
		return "uniform"
	case Geometric:
		return "geometric"
	default:
		return "unknown"
	}
}

// ParseDistributionKind maps a CLI flag value onto a DistributionKind.
func ParseDistributionKind(s string) (DistributionKind, error) {
	switch s {
	case "uniform":
		return Uniform, nil
	case "geometric":
		return Geometric, nil
	default:
		return 0, fmt.Errorf("%w: unknown degree distribution %q", ErrInvalidConfig, s)
	}
}

// DegreeDistribution describes how each generated polynomial's degree is
// sampled.
type DegreeDistribution struct {
	Kind      DistributionKind
	MaxDegree int
	// P is the geometric success probability, in (0, 1]. Ignored for
	// Uniform.
	P float64
}

// Config is the full benchmark configuration surface.
type Config struct {
	Representation Representation
	Operation      Operation
	// Count is the number of polynomials in a run, >= 1.
	Count int
	// Trials is the number of repeated timed runs, >= 1.
	Trials int
	// Seed keys the PRNG; the same seed reproduces the same inputs.
	Seed   uint64
	Degree DegreeDistribution
	// CoeffBound is the maximum absolute magnitude of generated
	// coefficients, >= 0. Zero yields all-zero polynomials.
	CoeffBound *big.Int
	// Growth selects the SlackPoly buffer growth policy.
	Growth zzpoly.GrowthPolicy
	// Check verifies fold results against an independent reference
	// summation.
	Check bool
}

// Validate rejects an invalid configuration before any timed run starts.
// All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Representation < Truncated || c.Representation > Both {
		return fmt.Errorf("%w: unknown representation %d", ErrInvalidConfig, c.Representation)
	}
	if c.Operation != Fold && c.Operation != PairwiseAdd {
		return fmt.Errorf("%w: unknown operation %d", ErrInvalidConfig, c.Operation)
	}
	if c.Count < 1 {
		return fmt.Errorf("%w: count must be >= 1, got %d", ErrInvalidConfig, c.Count)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.Degree.Kind != Uniform && c.Degree.Kind != Geometric {
		return fmt.Errorf("%w: unknown degree distribution %d", ErrInvalidConfig, c.Degree.Kind)
	}
	if c.Degree.MaxDegree < 0 {
		return fmt.Errorf("%w: max degree must be >= 0, got %d", ErrInvalidConfig, c.Degree.MaxDegree)
	}
	if c.Degree.Kind == Geometric && (c.Degree.P <= 0 || c.Degree.P > 1) {
		return fmt.Errorf("%w: geometric parameter must be in (0, 1], got %v", ErrInvalidConfig, c.Degree.P)
	}
	if c.CoeffBound == nil || c.CoeffBound.Sign() < 0 {
		return fmt.Errorf("%w: coefficient bound must be >= 0, got %v", ErrInvalidConfig, c.CoeffBound)
	}
	return nil
}
