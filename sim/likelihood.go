package sim

import "fmt"

// Likelihood accounting for the per-group geometric event-time model.
//
// A subject whose event was observed at step t contributes the probability
// mass of the shifted geometric distribution at t. A right-censored subject
// contributes the survival probability: the chance that the event had not yet
// happened when its observation window closed. A censored record means "not
// yet by step t", and that is information about p: dropping the censored
// branch inflates probability estimates upward. The Naive variants below keep
// that wrong accounting available so the bias can be demonstrated and tested.

// SubjectLogLikelihood returns one subject's log-likelihood contribution given
// its group's per-step event probability.
// Assumes s.ElapsedTime >= 1 and p in (0,1); callers validate.
func SubjectLogLikelihood(s Subject, p float64) float64 {
	if s.Event {
		return GeometricLogPMF(s.ElapsedTime, p)
	}
	return GeometricLogSurvival(s.ElapsedTime, p)
}

// LogLikelihood sums every subject's contribution under the per-group
// probabilities, index-aligned with ds.Groups. A dataset with zero subjects
// scores 0, the neutral element: it carries no information about probs.
func LogLikelihood(ds *Dataset, probs []float64) (float64, error) {
	if err := ds.Validate(); err != nil {
		return 0, err
	}
	if err := validateGroupProbs(ds, probs); err != nil {
		return 0, err
	}
	total := 0.0
	for _, s := range ds.Subjects {
		total += SubjectLogLikelihood(s, probs[s.Group])
	}
	return total, nil
}

// NaiveLogLikelihood sums contributions over event-observed subjects only,
// silently ignoring right-censored records. It is wrong on purpose: treating
// "not adopted yet" as "never happened" discards survival information and
// biases probability estimates upward. Retained as the foil for the full
// accounting above.
func NaiveLogLikelihood(ds *Dataset, probs []float64) (float64, error) {
	if err := ds.Validate(); err != nil {
		return 0, err
	}
	if err := validateGroupProbs(ds, probs); err != nil {
		return 0, err
	}
	total := 0.0
	for _, s := range ds.Subjects {
		if !s.Event {
			continue
		}
		total += SubjectLogLikelihood(s, probs[s.Group])
	}
	return total, nil
}

// GroupLogLikelihood restricts the sum to subjects of one group at a single
// candidate probability. Each subject contributes only to its own group's
// probability, so the total factorizes and the posterior layer can work one
// group at a time.
// Assumes a validated dataset, group in range, and p in (0,1).
func GroupLogLikelihood(ds *Dataset, group int, p float64) float64 {
	total := 0.0
	for _, s := range ds.Subjects {
		if s.Group != group {
			continue
		}
		total += SubjectLogLikelihood(s, p)
	}
	return total
}

// NaiveGroupLogLikelihood is GroupLogLikelihood under the naive accounting:
// right-censored subjects are skipped.
// Assumes a validated dataset, group in range, and p in (0,1).
func NaiveGroupLogLikelihood(ds *Dataset, group int, p float64) float64 {
	total := 0.0
	for _, s := range ds.Subjects {
		if s.Group != group || !s.Event {
			continue
		}
		total += SubjectLogLikelihood(s, p)
	}
	return total
}

// validateGroupProbs checks probs is index-aligned with ds.Groups and every
// entry is a valid probability.
func validateGroupProbs(ds *Dataset, probs []float64) error {
	if len(probs) != len(ds.Groups) {
		return fmt.Errorf("got %d probabilities for %d groups", len(probs), len(ds.Groups))
	}
	for i, p := range probs {
		if err := validateProbability(fmt.Sprintf("group[%d] probability", i), p); err != nil {
			return err
		}
	}
	return nil
}
