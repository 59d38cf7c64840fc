package sim

import "fmt"

// CensoringKind selects how observation windows end.
type CensoringKind string

const (
	// CensorNone observes every subject until its event occurs.
	CensorNone CensoringKind = "none"

	// CensorFixed cuts every observation off after a fixed number of steps.
	CensorFixed CensoringKind = "fixed"

	// CensorRandom ends each observation at an independent shifted-geometric
	// time, the same family as the event process itself.
	CensorRandom CensoringKind = "random"
)

// CensoringPolicy is a tagged variant describing the censoring process.
// Kind picks the branch; only the parameter field for that kind is read.
type CensoringPolicy struct {
	Kind        CensoringKind
	Limit       int64   // fixed: observation window in steps
	Probability float64 // random: per-step stop probability
}

// NoCensoring returns the policy under which every event time is observed
// exactly.
func NoCensoring() CensoringPolicy {
	return CensoringPolicy{Kind: CensorNone}
}

// FixedCensoring returns the policy observing each subject for exactly limit
// steps.
func FixedCensoring(limit int64) CensoringPolicy {
	return CensoringPolicy{Kind: CensorFixed, Limit: limit}
}

// RandomCensoring returns the policy ending each observation at a
// shifted-geometric time with the given per-step stop probability.
func RandomCensoring(probability float64) CensoringPolicy {
	return CensoringPolicy{Kind: CensorRandom, Probability: probability}
}

// Validate checks the parameters required by the policy's kind.
func (c CensoringPolicy) Validate() error {
	switch c.Kind {
	case CensorNone:
		return nil
	case CensorFixed:
		if c.Limit < 1 {
			return fmt.Errorf("fixed censoring limit must be >= 1, got %d", c.Limit)
		}
		return nil
	case CensorRandom:
		return validateProbability("censoring probability", c.Probability)
	default:
		return fmt.Errorf("unknown censoring kind %q; valid: none, fixed, random", c.Kind)
	}
}
