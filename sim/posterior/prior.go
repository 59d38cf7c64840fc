package posterior

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// BetaPrior is a Beta(alpha, beta) prior over a per-step event probability.
// Beta(1,1) is flat; the zero value is invalid. Density math delegates to
// gonum's distuv.
type BetaPrior struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

// Validate rejects non-positive or non-finite shape parameters.
func (b BetaPrior) Validate() error {
	if math.IsNaN(b.Alpha) || math.IsInf(b.Alpha, 0) || b.Alpha <= 0 {
		return fmt.Errorf("alpha must be a positive finite number, got %v", b.Alpha)
	}
	if math.IsNaN(b.Beta) || math.IsInf(b.Beta, 0) || b.Beta <= 0 {
		return fmt.Errorf("beta must be a positive finite number, got %v", b.Beta)
	}
	return nil
}

func (b BetaPrior) dist() distuv.Beta {
	return distuv.Beta{Alpha: b.Alpha, Beta: b.Beta}
}

// LogDensity returns the log density at p. Assumes p in (0,1) and a valid
// prior.
func (b BetaPrior) LogDensity(p float64) float64 {
	return b.dist().LogProb(p)
}

// Quantile returns the inverse CDF at level q in (0,1).
func (b BetaPrior) Quantile(q float64) float64 {
	return b.dist().Quantile(q)
}

// Mean returns alpha / (alpha + beta).
func (b BetaPrior) Mean() float64 {
	return b.dist().Mean()
}
