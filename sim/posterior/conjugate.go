package posterior

import (
	"fmt"

	"github.com/adoption-sim/adoption-sim/sim"
)

// The geometric likelihood is conjugate to the Beta prior, so the posterior
// has a closed form. An event at step t is one success preceded by t-1
// failures; a right-censored observation at step t is t failures and no
// success. With K events, S the elapsed sum over events, and C the elapsed
// sum over censored subjects:
//
//	posterior = Beta(alpha + K, beta + (S - K) + C)
//
// The grid engine must agree with this to working precision; the closed form
// is also the fast path when no engine features are needed.

// Conjugate returns one group's exact posterior under prior.
func Conjugate(ds *sim.Dataset, group int, prior BetaPrior) (BetaPrior, error) {
	g, err := groupStats(ds, group, prior)
	if err != nil {
		return BetaPrior{}, err
	}
	return BetaPrior{
		Alpha: prior.Alpha + float64(g.Events),
		Beta:  prior.Beta + float64(g.EventSteps-int64(g.Events)) + float64(g.CensoredSteps),
	}, nil
}

// NaiveConjugate is Conjugate under the naive accounting: the censored
// failure steps never reach the posterior, which is exactly why its mean
// comes out too high.
func NaiveConjugate(ds *sim.Dataset, group int, prior BetaPrior) (BetaPrior, error) {
	g, err := groupStats(ds, group, prior)
	if err != nil {
		return BetaPrior{}, err
	}
	return BetaPrior{
		Alpha: prior.Alpha + float64(g.Events),
		Beta:  prior.Beta + float64(g.EventSteps-int64(g.Events)),
	}, nil
}

func groupStats(ds *sim.Dataset, group int, prior BetaPrior) (sim.GroupSummary, error) {
	if err := prior.Validate(); err != nil {
		return sim.GroupSummary{}, err
	}
	if err := ds.Validate(); err != nil {
		return sim.GroupSummary{}, err
	}
	if group < 0 || group >= len(ds.Groups) {
		return sim.GroupSummary{}, fmt.Errorf("group index %d out of range [0,%d)", group, len(ds.Groups))
	}
	return sim.Summarize(ds).Groups[group], nil
}
