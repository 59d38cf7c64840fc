package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// The shifted geometric distribution models "each step, the event happens
// with probability p, independently, until it happens": the number of trials
// up to and including the first success, taking values in {1, 2, 3, ...}.
//
//	P(T = k) = p * (1-p)^(k-1)
//	P(T > k) = (1-p)^k

// GeometricSampler draws event times from the shifted geometric distribution.
type GeometricSampler struct {
	p float64
}

// NewGeometricSampler creates a sampler for per-step success probability p.
func NewGeometricSampler(p float64) (*GeometricSampler, error) {
	if err := validateProbability("success probability", p); err != nil {
		return nil, err
	}
	return &GeometricSampler{p: p}, nil
}

// Sample returns a positive event time (>= 1).
// Inverse CDF: the smallest k with 1-(1-p)^k >= u.
func (s *GeometricSampler) Sample(rng *rand.Rand) int64 {
	u := rng.Float64()
	k := int64(math.Ceil(math.Log1p(-u) / math.Log1p(-s.p)))
	if k < 1 {
		return 1
	}
	return k
}

// GeometricLogPMF returns log P(T = t) for the shifted geometric distribution
// with per-step probability p: log(p) + (t-1)*log(1-p).
// Assumes t >= 1 and p in (0,1); callers validate.
func GeometricLogPMF(t int64, p float64) float64 {
	return math.Log(p) + float64(t-1)*math.Log1p(-p)
}

// GeometricLogSurvival returns log P(T > t), the log of the probability that
// the event has not occurred within t steps: t*log(1-p).
// Assumes t >= 1 and p in (0,1); callers validate.
func GeometricLogSurvival(t int64, p float64) float64 {
	return float64(t) * math.Log1p(-p)
}

// validateProbability rejects values outside the open interval (0,1).
// Both endpoints are excluded: p = 0 never generates an event and p = 1
// degenerates to a constant, and either breaks the likelihood's logs.
func validateProbability(name string, p float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return fmt.Errorf("%s must be in the open interval (0,1), got %v", name, p)
	}
	return nil
}
