package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adoption-sim/adoption-sim/sim"
	"github.com/adoption-sim/adoption-sim/sim/cohort"
)

var (
	// CLI flags for dataset generation
	simStudyPath   string    // study file; overrides everything below
	simPresetName  string    // built-in study; overrides the direct flags
	simSeed        int64     // seed for random generation
	simSubjects    int       // number of subjects
	simGroupNames  []string  // group labels
	simGroupProbs  []float64 // per-step event probability per group
	simCensorKind  string    // censoring policy kind
	simCensorLimit int64     // observation window for fixed censoring
	simCensorProb  float64   // per-step stop probability for random censoring
	simOutPath     string    // dataset CSV destination
)

// simulateCmd generates a dataset using parameters from CLI flags
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate a synthetic right-censored adoption dataset",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := simulateConfig()

		startTime := time.Now()
		ds, err := sim.Simulate(cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if simOutPath != "" {
			if err := cohort.Save(simOutPath, ds); err != nil {
				logrus.Fatalf("Writing dataset failed: %v", err)
			}
			logrus.Infof("Wrote %d subjects to %s", len(ds.Subjects), simOutPath)
		}
		printSummary(sim.Summarize(ds))
		logrus.Infof("Simulated %d subjects in %v", len(ds.Subjects), time.Since(startTime))
	},
}

// simulateConfig assembles the run config: a study file wins over a preset,
// which wins over the direct flags.
func simulateConfig() *sim.Config {
	if simStudyPath != "" || simPresetName != "" {
		return resolveStudy(simStudyPath, simPresetName, simSeed).SimConfig()
	}
	if len(simGroupNames) != len(simGroupProbs) {
		logrus.Fatalf("Got %d group names for %d probabilities", len(simGroupNames), len(simGroupProbs))
	}
	groups := make([]sim.GroupSpec, len(simGroupProbs))
	for i := range groups {
		groups[i] = sim.GroupSpec{Name: simGroupNames[i], Probability: simGroupProbs[i]}
	}
	return &sim.Config{
		Subjects:  simSubjects,
		Groups:    groups,
		Censoring: censoringFromFlags(simCensorKind, simCensorLimit, simCensorProb),
		Seed:      simSeed,
	}
}

func censoringFromFlags(kind string, limit int64, probability float64) sim.CensoringPolicy {
	switch kind {
	case "none":
		return sim.NoCensoring()
	case "fixed":
		return sim.FixedCensoring(limit)
	case "random":
		return sim.RandomCensoring(probability)
	default:
		logrus.Fatalf("Unknown censoring %q; valid: none, fixed, random", kind)
		return sim.CensoringPolicy{}
	}
}

// printSummary displays per-group outcome counts at the end of a simulation.
func printSummary(s *sim.Summary) {
	fmt.Println("=== Dataset Summary ===")
	fmt.Printf("Subjects : %d\n", s.Subjects)
	fmt.Printf("Events   : %d\n", s.Events)
	fmt.Printf("Censored : %d\n", s.Censored)
	for _, g := range s.Groups {
		fmt.Printf("%-12s : %d subjects, %d events, %d censored (%.1f%%), mean elapsed %.2f, max %d\n",
			g.Name, g.Subjects, g.Events, g.Censored, 100*g.CensoredShare, g.MeanElapsed, g.MaxElapsed)
	}
}

// init sets up CLI flags for the simulate subcommand
func init() {
	simulateCmd.Flags().StringVar(&simStudyPath, "study", "", "Path to a study YAML file")
	simulateCmd.Flags().StringVar(&simPresetName, "preset", "", "Built-in study preset name")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 42, "Seed for random generation")
	simulateCmd.Flags().IntVar(&simSubjects, "subjects", 1000, "Number of subjects to simulate")
	simulateCmd.Flags().StringSliceVar(&simGroupNames, "group-names", []string{"black", "other"}, "Comma-separated group labels")
	simulateCmd.Flags().Float64SliceVar(&simGroupProbs, "group-probs", []float64{0.10, 0.15}, "Comma-separated per-step event probabilities")
	simulateCmd.Flags().StringVar(&simCensorKind, "censoring", "fixed", "Censoring policy (none, fixed, random)")
	simulateCmd.Flags().Int64Var(&simCensorLimit, "censor-limit", 20, "Observation window in steps for fixed censoring")
	simulateCmd.Flags().Float64Var(&simCensorProb, "censor-prob", 0.05, "Per-step stop probability for random censoring")
	simulateCmd.Flags().StringVar(&simOutPath, "out", "", "Write the dataset as CSV to this path")

	rootCmd.AddCommand(simulateCmd)
}
