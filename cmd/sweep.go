package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/adoption-sim/adoption-sim/sim"
	"github.com/adoption-sim/adoption-sim/sim/posterior"
	"github.com/adoption-sim/adoption-sim/sim/study"
)

var (
	sweepStudyPath    string
	sweepPresetName   string
	sweepSeed         int64
	sweepReplications int
	sweepWorkers      int
)

// sweepReport summarizes posterior means across independent replications.
type sweepReport struct {
	Study        string       `yaml:"study"`
	Replications int          `yaml:"replications"`
	BaseSeed     int64        `yaml:"base_seed"`
	Groups       []sweepGroup `yaml:"groups"`
}

type sweepGroup struct {
	Group           string  `yaml:"group"`
	TrueProbability float64 `yaml:"true_probability"`
	MeanOfMeans     float64 `yaml:"mean_of_means"`
	StdDevOfMeans   float64 `yaml:"stddev_of_means"`
}

// runSweep fits the study under seeds base..base+replications-1 with at most
// workers replications in flight. Replication r owns row r of the means
// matrix; nothing else is shared, so worker count never changes the report.
func runSweep(spec *study.Spec, label string, replications, workers int) (*sweepReport, error) {
	if replications < 1 {
		return nil, fmt.Errorf("replications must be positive, got %d", replications)
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", workers)
	}

	means := make([][]float64, replications)
	var g errgroup.Group
	g.SetLimit(workers)
	for r := 0; r < replications; r++ {
		r := r // per-iteration copy; this module targets go 1.21 loop semantics
		g.Go(func() error {
			cfg := spec.SimConfig()
			cfg.Seed = spec.Seed + int64(r)
			ds, err := sim.Simulate(cfg)
			if err != nil {
				return err
			}
			opts := spec.FitOptions()
			opts.Seed = cfg.Seed
			result, err := posterior.Fit(ds, spec.Priors(), opts)
			if err != nil {
				return err
			}
			row := make([]float64, len(result.Groups))
			for i, gp := range result.Groups {
				row[i] = gp.Mean
			}
			means[r] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := spec.SimConfig().GroupNames()
	report := &sweepReport{
		Study:        label,
		Replications: replications,
		BaseSeed:     spec.Seed,
		Groups:       make([]sweepGroup, len(spec.Groups)),
	}
	for i, gs := range spec.Groups {
		column := make([]float64, replications)
		for r := range means {
			column[r] = means[r][i]
		}
		sg := sweepGroup{
			Group:           names[i],
			TrueProbability: gs.Probability,
			MeanOfMeans:     stat.Mean(column, nil),
		}
		if replications > 1 {
			sg.StdDevOfMeans = stat.StdDev(column, nil)
		}
		report.Groups[i] = sg
	}
	return report, nil
}

// sweepCmd replicates a study across derived seeds
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Replicate a study across derived seeds and summarize the spread",
	Long: "Run the same study under seeds base, base+1, ... in parallel, fit every" +
		" replication, and report the mean and spread of the posterior means per group." +
		" Runs are fully independent; only the bounded worker pool is shared.",
	Run: func(cmd *cobra.Command, args []string) {
		spec := resolveStudy(sweepStudyPath, sweepPresetName, sweepSeed)
		label := sweepStudyPath
		if label == "" {
			label = sweepPresetName
		}
		startTime := time.Now()

		report, err := runSweep(spec, label, sweepReplications, sweepWorkers)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		writeYAMLToStdout(report)
		logrus.Infof("Swept %d replications in %v", sweepReplications, time.Since(startTime))
	},
}

// init sets up CLI flags for the sweep subcommand
func init() {
	sweepCmd.Flags().StringVar(&sweepStudyPath, "study", "", "Path to a study YAML file")
	sweepCmd.Flags().StringVar(&sweepPresetName, "preset", "cat-adoption", "Built-in study preset name")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 42, "Base seed; replication r runs under seed base+r")
	sweepCmd.Flags().IntVar(&sweepReplications, "replications", 20, "Number of independent replications")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 4, "Maximum replications fitted concurrently")

	rootCmd.AddCommand(sweepCmd)
}
