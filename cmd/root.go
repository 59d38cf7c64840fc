package cmd

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/adoption-sim/adoption-sim/sim/study"
)

var logLevel string // Log verbosity level

// envConfig holds environment-variable defaults. They apply only while the
// matching flag is left unset, so flags always win.
type envConfig struct {
	LogLevel string `env:"ADOPTSIM_LOG" envDefault:"info"`
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "adoptsim",
	Short: "Simulate right-censored adoption times and fit per-group event probabilities",
}

func configureLogging() {
	name := logLevel
	if !rootCmd.PersistentFlags().Changed("log") {
		var ec envConfig
		if err := env.Parse(&ec); err != nil {
			logrus.Fatalf("Invalid environment config: %v", err)
		}
		name = ec.LogLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", name)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// mustLoadStudy loads and validates a study file, exiting on any problem.
func mustLoadStudy(path string) *study.Spec {
	spec, err := study.Load(path)
	if err != nil {
		logrus.Fatalf("Loading study failed: %v", err)
	}
	if err := spec.Validate(); err != nil {
		logrus.Fatalf("Invalid study %s: %v", path, err)
	}
	return spec
}

// writeYAMLToStdout marshals a report to YAML and writes it to stdout.
func writeYAMLToStdout(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		logrus.Fatalf("YAML marshal failed: %v", err)
	}
	fmt.Print(string(data))
}

// init sets up the persistent CLI flags
func init() {
	// Assigned here rather than in the rootCmd literal: configureLogging reads
	// rootCmd's flags, and referencing it from the initializer forms an
	// initialization cycle.
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		configureLogging()
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
