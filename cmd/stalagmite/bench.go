package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wjyoumans/stalagmite/bench"
	"github.com/wjyoumans/stalagmite/utils"
	"github.com/wjyoumans/stalagmite/zzpoly"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the polynomial summation benchmark.",
	Long: "Generates a reproducible sequence of random polynomials, drives the configured " +
		"operation over them for each selected representation, and reports timing and " +
		"buffer-growth statistics.",
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		cfg := benchConfig(cmd)

		reports, err := bench.Run(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}

		if getFlag(cmd, "json") {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(reports); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}

		for _, r := range reports {
			fmt.Print(r)
		}
		if len(reports) == 2 {
			fmt.Print(bench.Compare(reports[0], reports[1]))
		}
	},
}

// benchConfig maps the bench subcommand's flags onto a bench.Config.
// Validation proper happens in bench.Run; this only parses flag values.
func benchConfig(cmd *cobra.Command) bench.Config {

	rep, err := bench.ParseRepresentation(getString(cmd, "rep"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	op, err := bench.ParseOperation(getString(cmd, "op"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	kind, err := bench.ParseDistributionKind(getString(cmd, "dist"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var growth zzpoly.GrowthPolicy
	switch getString(cmd, "growth") {
	case "amortized":
		growth = zzpoly.GrowthAmortized
	case "exact":
		growth = zzpoly.GrowthExact
	default:
		fmt.Fprintf(os.Stderr, "unknown --growth policy %q\n", getString(cmd, "growth"))
		os.Exit(2)
	}

	bound, ok := new(big.Int).SetString(getString(cmd, "coeff-bound"), 0)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid --coeff-bound %q\n", getString(cmd, "coeff-bound"))
		os.Exit(2)
	}

	seed := getUint64(cmd, "seed")
	if !cmd.Flags().Changed("seed") {
		seed = utils.RandUint64()
		log.Infof("no seed given, using %d (pass --seed %d to reproduce)", seed, seed)
	}

	return bench.Config{
		Representation: rep,
		Operation:      op,
		Count:          getInt(cmd, "count"),
		Trials:         getInt(cmd, "trials"),
		Seed:           seed,
		Degree: bench.DegreeDistribution{
			Kind:      kind,
			MaxDegree: getInt(cmd, "max-degree"),
			P:         getFloat64(cmd, "geom-p"),
		},
		CoeffBound: bound,
		Growth:     growth,
		Check:      getFlag(cmd, "check"),
	}
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().String("rep", "both", "representation to exercise (truncated|slack|both)")
	benchCmd.Flags().String("op", "fold", "operation to measure (fold|pairwiseAdd)")
	benchCmd.Flags().Int("count", 1000, "number of polynomials per run")
	benchCmd.Flags().Int("trials", 10, "number of repeated timed runs")
	benchCmd.Flags().Uint64("seed", 0, "PRNG seed (random when unset)")
	benchCmd.Flags().String("dist", "uniform", "degree distribution (uniform|geometric)")
	benchCmd.Flags().Int("max-degree", 50, "maximum sampled degree")
	benchCmd.Flags().Float64("geom-p", 0.25, "geometric distribution parameter in (0, 1]")
	benchCmd.Flags().String("coeff-bound", "1000000", "maximum absolute coefficient magnitude")
	benchCmd.Flags().String("growth", "amortized", "slack buffer growth policy (amortized|exact)")
	benchCmd.Flags().Bool("check", false, "verify fold results against a reference summation")
	benchCmd.Flags().Bool("json", false, "emit reports as JSON")
}
