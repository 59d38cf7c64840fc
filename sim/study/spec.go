// Package study defines YAML study documents: a declarative description of
// one full simulate-and-fit run, from cohort generation through posterior
// reporting. Specs convert into sim and posterior inputs; they never execute
// anything themselves.
package study

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adoption-sim/adoption-sim/sim"
	"github.com/adoption-sim/adoption-sim/sim/posterior"
)

// Spec is the top-level study configuration.
// Loaded from YAML via Load(path).
//
//	seed: 42
//	subjects: 1000
//	groups:
//	  - name: black
//	    probability: 0.10
//	  - name: other
//	    probability: 0.15
//	censoring:
//	  type: fixed
//	  limit: 20
//	fit:
//	  prior: {alpha: 1, beta: 5}
//	  grid_points: 2048
//	  quantiles: [0.05, 0.5, 0.95]
type Spec struct {
	Seed      int64         `yaml:"seed"`
	Subjects  int           `yaml:"subjects"`
	Groups    []GroupSpec   `yaml:"groups"`
	Censoring CensoringSpec `yaml:"censoring,omitempty"`
	Fit       *FitSpec      `yaml:"fit,omitempty"`
}

// GroupSpec names a subject group and its per-step event probability.
type GroupSpec struct {
	Name        string  `yaml:"name"`
	Probability float64 `yaml:"probability"`
}

// CensoringSpec selects how observation windows end. Only the parameter for
// the chosen type is read: limit for fixed, probability for random.
type CensoringSpec struct {
	Type        string  `yaml:"type"`
	Limit       int64   `yaml:"limit,omitempty"`
	Probability float64 `yaml:"probability,omitempty"`
}

// FitSpec configures the posterior grid engine. Zero-value fields keep the
// engine defaults; an omitted prior means the flat Beta(1,1).
type FitSpec struct {
	Prior      PriorSpec `yaml:"prior,omitempty"`
	GridPoints int       `yaml:"grid_points,omitempty"`
	Draws      int       `yaml:"draws,omitempty"`
	Quantiles  []float64 `yaml:"quantiles,omitempty,flow"`
}

// PriorSpec is a Beta(alpha, beta) prior over a per-step event probability.
type PriorSpec struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

// Valid value registries.
var validCensoringTypes = map[string]bool{
	"": true, "none": true, "fixed": true, "random": true,
}

// Load reads and parses a YAML study file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading study spec: %w", err)
	}
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing study spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *Spec) Validate() error {
	if s.Subjects <= 0 {
		return fmt.Errorf("subjects must be positive, got %d", s.Subjects)
	}
	if len(s.Groups) == 0 {
		return fmt.Errorf("at least one group is required")
	}
	for i, g := range s.Groups {
		if err := validateUnitOpen(fmt.Sprintf("groups[%d].probability", i), g.Probability); err != nil {
			return err
		}
	}
	if err := validateCensoring(&s.Censoring); err != nil {
		return err
	}
	if s.Fit != nil {
		if err := validateFit(s.Fit); err != nil {
			return err
		}
	}
	return nil
}

func validateCensoring(c *CensoringSpec) error {
	if !validCensoringTypes[c.Type] {
		return fmt.Errorf("censoring.type: unknown type %q; valid: none, fixed, random", c.Type)
	}
	switch c.Type {
	case "fixed":
		if c.Limit < 1 {
			return fmt.Errorf("censoring.limit must be >= 1, got %d", c.Limit)
		}
	case "random":
		if err := validateUnitOpen("censoring.probability", c.Probability); err != nil {
			return err
		}
	}
	return nil
}

func validateFit(f *FitSpec) error {
	set := f.Prior.Alpha != 0 || f.Prior.Beta != 0
	if set {
		if err := validateFinitePositive("fit.prior.alpha", f.Prior.Alpha); err != nil {
			return err
		}
		if err := validateFinitePositive("fit.prior.beta", f.Prior.Beta); err != nil {
			return err
		}
	}
	if f.GridPoints < 0 {
		return fmt.Errorf("fit.grid_points must be non-negative, got %d", f.GridPoints)
	}
	if f.Draws < 0 {
		return fmt.Errorf("fit.draws must be non-negative, got %d", f.Draws)
	}
	for i, q := range f.Quantiles {
		if err := validateUnitOpen(fmt.Sprintf("fit.quantiles[%d]", i), q); err != nil {
			return err
		}
	}
	return nil
}

// SimConfig converts the cohort half of the study into a simulator config.
func (s *Spec) SimConfig() *sim.Config {
	groups := make([]sim.GroupSpec, len(s.Groups))
	for i, g := range s.Groups {
		groups[i] = sim.GroupSpec{Name: g.Name, Probability: g.Probability}
	}
	return &sim.Config{
		Subjects:  s.Subjects,
		Groups:    groups,
		Censoring: s.censoringPolicy(),
		Seed:      s.Seed,
	}
}

func (s *Spec) censoringPolicy() sim.CensoringPolicy {
	switch s.Censoring.Type {
	case "fixed":
		return sim.FixedCensoring(s.Censoring.Limit)
	case "random":
		return sim.RandomCensoring(s.Censoring.Probability)
	default:
		return sim.NoCensoring()
	}
}

// Priors returns one copy of the configured prior per group. An unset prior
// defaults to the flat Beta(1,1); anything more opinionated is the study
// author's call, never this package's.
func (s *Spec) Priors() []posterior.BetaPrior {
	prior := posterior.BetaPrior{Alpha: 1, Beta: 1}
	if s.Fit != nil && (s.Fit.Prior.Alpha != 0 || s.Fit.Prior.Beta != 0) {
		prior = posterior.BetaPrior{Alpha: s.Fit.Prior.Alpha, Beta: s.Fit.Prior.Beta}
	}
	priors := make([]posterior.BetaPrior, len(s.Groups))
	for i := range priors {
		priors[i] = prior
	}
	return priors
}

// FitOptions converts the fit section into grid-engine options. The study
// seed carries over so posterior draws are as reproducible as the cohort.
func (s *Spec) FitOptions() posterior.FitOptions {
	opts := posterior.FitOptions{Seed: s.Seed}
	if s.Fit == nil {
		return opts
	}
	opts.GridPoints = s.Fit.GridPoints
	opts.Draws = s.Fit.Draws
	opts.Quantiles = append([]float64(nil), s.Fit.Quantiles...)
	return opts
}

func validateUnitOpen(name string, val float64) error {
	if math.IsNaN(val) || val <= 0 || val >= 1 {
		return fmt.Errorf("%s must be in the open interval (0,1), got %v", name, val)
	}
	return nil
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, val)
	}
	return nil
}
