package sim

// Shared builders for the sim package tests: the worked two-group cohort in
// config form and a small handmade dataset with every outcome kind.

func testConfig(censoring CensoringPolicy) *Config {
	return &Config{
		Subjects: 2000,
		Groups: []GroupSpec{
			{Name: "black", Probability: 0.10},
			{Name: "other", Probability: 0.15},
		},
		Censoring: censoring,
		Seed:      42,
	}
}

func mixedDataset() *Dataset {
	return &Dataset{
		Groups: []string{"black", "other"},
		Subjects: []Subject{
			{Group: 0, ElapsedTime: 3, Event: true},
			{Group: 0, ElapsedTime: 20, Event: false},
			{Group: 1, ElapsedTime: 1, Event: true},
			{Group: 1, ElapsedTime: 7, Event: false},
			{Group: 1, ElapsedTime: 4, Event: true},
		},
	}
}
