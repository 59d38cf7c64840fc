package study

// Built-in study presets for common setups.
// Each returns a valid Spec ready for Simulate and Fit.

// CatAdoptionStudy is the worked example: two coat-color groups of shelter
// cats with per-day adoption probabilities 0.10 and 0.15, observed for a
// fixed 20-day window, fit under a Beta(1, 5) prior.
func CatAdoptionStudy(seed int64) *Spec {
	return &Spec{
		Seed: seed, Subjects: 1000,
		Groups: []GroupSpec{
			{Name: "black", Probability: 0.10},
			{Name: "other", Probability: 0.15},
		},
		Censoring: CensoringSpec{Type: "fixed", Limit: 20},
		Fit: &FitSpec{
			Prior:      PriorSpec{Alpha: 1, Beta: 5},
			GridPoints: 2048,
			Quantiles:  []float64{0.05, 0.5, 0.95},
		},
	}
}

// NoCensoringStudy observes every subject to its event: a complete dataset
// on which the full and naive likelihoods agree.
func NoCensoringStudy(seed int64) *Spec {
	return &Spec{
		Seed: seed, Subjects: 1000,
		Groups: []GroupSpec{
			{Name: "black", Probability: 0.10},
			{Name: "other", Probability: 0.15},
		},
		Censoring: CensoringSpec{Type: "none"},
		Fit: &FitSpec{
			Prior:      PriorSpec{Alpha: 1, Beta: 1},
			GridPoints: 2048,
			Quantiles:  []float64{0.05, 0.5, 0.95},
		},
	}
}

// RandomCensoringStudy ends each observation at an independent geometric
// time, so censoring hits early and late subjects alike.
func RandomCensoringStudy(seed int64) *Spec {
	return &Spec{
		Seed: seed, Subjects: 1000,
		Groups: []GroupSpec{
			{Name: "black", Probability: 0.10},
			{Name: "other", Probability: 0.15},
		},
		Censoring: CensoringSpec{Type: "random", Probability: 0.05},
		Fit: &FitSpec{
			Prior:      PriorSpec{Alpha: 1, Beta: 1},
			GridPoints: 2048,
			Quantiles:  []float64{0.05, 0.5, 0.95},
		},
	}
}
