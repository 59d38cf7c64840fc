package sim

import "fmt"

// Simulate generates a synthetic dataset under cfg.
// Deterministic given the same configuration and seed.
//
// Draw order is fixed: for subject i, the group assignment comes from the
// groups stream, then the latent event time from the events stream, then,
// under random censoring only, the observation cutoff from the censoring
// stream. Because the three streams are isolated, two runs with the same seed
// share group assignments and latent event times even when their censoring
// policies differ; a run under NoCensoring reveals exactly the event times
// that a fixed- or random-censored run truncated.
func Simulate(cfg *Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	groupRNG := rng.ForSubsystem(SubsystemGroups)
	eventRNG := rng.ForSubsystem(SubsystemEvents)
	censorRNG := rng.ForSubsystem(SubsystemCensoring)

	eventSamplers := make([]*GeometricSampler, len(cfg.Groups))
	for i, g := range cfg.Groups {
		sampler, err := NewGeometricSampler(g.Probability)
		if err != nil {
			return nil, fmt.Errorf("group[%d] %q: %w", i, g.Name, err)
		}
		eventSamplers[i] = sampler
	}

	var censorSampler *GeometricSampler
	if cfg.Censoring.Kind == CensorRandom {
		sampler, err := NewGeometricSampler(cfg.Censoring.Probability)
		if err != nil {
			return nil, fmt.Errorf("censoring: %w", err)
		}
		censorSampler = sampler
	}

	ds := &Dataset{
		Groups:   cfg.GroupNames(),
		Subjects: make([]Subject, 0, cfg.Subjects),
	}
	for i := 0; i < cfg.Subjects; i++ {
		group := groupRNG.Intn(len(cfg.Groups))
		trueEventTime := eventSamplers[group].Sample(eventRNG)

		subject := Subject{Group: group}
		switch cfg.Censoring.Kind {
		case CensorNone:
			subject.Event = true
			subject.ElapsedTime = trueEventTime

		case CensorFixed:
			subject.Event = trueEventTime <= cfg.Censoring.Limit
			subject.ElapsedTime = min(trueEventTime, cfg.Censoring.Limit)

		case CensorRandom:
			maxObserved := censorSampler.Sample(censorRNG)
			subject.Event = trueEventTime <= maxObserved
			if subject.Event {
				subject.ElapsedTime = trueEventTime
			} else {
				subject.ElapsedTime = maxObserved
			}
		}
		ds.Subjects = append(ds.Subjects, subject)
	}
	return ds, nil
}
