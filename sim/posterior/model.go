package posterior

import (
	"fmt"

	"github.com/adoption-sim/adoption-sim/sim"
)

// Model is the boundary handed to an inference engine: a dataset, one Beta
// prior per group, and the choice of likelihood accounting. It exposes the
// unnormalized log posterior and nothing else; how an engine explores it is
// the engine's business, and so are the engine's failures.
type Model struct {
	Data   *sim.Dataset
	Priors []BetaPrior

	// Naive switches to the likelihood that drops right-censored subjects.
	// Wrong on purpose; see sim.NaiveLogLikelihood.
	Naive bool
}

// Validate checks the model once, before it is handed to an engine.
func (m *Model) Validate() error {
	if m.Data == nil {
		return fmt.Errorf("model has no dataset")
	}
	if err := m.Data.Validate(); err != nil {
		return err
	}
	if len(m.Priors) != len(m.Data.Groups) {
		return fmt.Errorf("got %d priors for %d groups", len(m.Priors), len(m.Data.Groups))
	}
	for i, prior := range m.Priors {
		if err := prior.Validate(); err != nil {
			return fmt.Errorf("prior[%d]: %w", i, err)
		}
	}
	return nil
}

// LogPosterior returns the unnormalized log posterior density at probs,
// index-aligned with the dataset's groups: the sum of prior log densities
// plus the chosen log-likelihood. Assumes a validated model; probs is checked
// on every call because engines propose them.
func (m *Model) LogPosterior(probs []float64) (float64, error) {
	var total float64
	var err error
	if m.Naive {
		total, err = sim.NaiveLogLikelihood(m.Data, probs)
	} else {
		total, err = sim.LogLikelihood(m.Data, probs)
	}
	if err != nil {
		return 0, err
	}
	for i, prior := range m.Priors {
		total += prior.LogDensity(probs[i])
	}
	return total, nil
}
