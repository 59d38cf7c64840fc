package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_NoCensoring_AllEventsObserved(t *testing.T) {
	ds, err := Simulate(testConfig(NoCensoring()))
	require.NoError(t, err)
	require.Len(t, ds.Subjects, 2000)
	for i, s := range ds.Subjects {
		if !s.Event {
			t.Fatalf("subject %d: censored under the none policy", i)
		}
		if s.ElapsedTime < 1 {
			t.Fatalf("subject %d: elapsed time %d, want >= 1", i, s.ElapsedTime)
		}
	}
}

func TestSimulate_FixedCensoring_WindowRespected(t *testing.T) {
	// The none-policy run on the same seed exposes each subject's latent
	// event time, because group and event draws live on their own streams.
	limit := int64(20)
	observed, err := Simulate(testConfig(FixedCensoring(limit)))
	require.NoError(t, err)
	latent, err := Simulate(testConfig(NoCensoring()))
	require.NoError(t, err)

	for i, s := range observed.Subjects {
		trueTime := latent.Subjects[i].ElapsedTime
		require.Equal(t, latent.Subjects[i].Group, s.Group, "subject %d: group changed with the policy", i)
		if s.ElapsedTime > limit {
			t.Fatalf("subject %d: elapsed time %d beyond the %d-step window", i, s.ElapsedTime, limit)
		}
		if s.Event {
			assert.Equal(t, trueTime, s.ElapsedTime, "subject %d: event time", i)
			assert.LessOrEqual(t, trueTime, limit, "subject %d: event past the window", i)
		} else {
			assert.Equal(t, limit, s.ElapsedTime, "subject %d: censoring time", i)
			assert.Greater(t, trueTime, limit, "subject %d: censored despite an in-window event", i)
		}
	}
}

func TestSimulate_RandomCensoring_TruncatesLatentTimes(t *testing.T) {
	observed, err := Simulate(testConfig(RandomCensoring(0.05)))
	require.NoError(t, err)
	latent, err := Simulate(testConfig(NoCensoring()))
	require.NoError(t, err)

	events, censored := 0, 0
	for i, s := range observed.Subjects {
		trueTime := latent.Subjects[i].ElapsedTime
		require.Equal(t, latent.Subjects[i].Group, s.Group, "subject %d: group changed with the policy", i)
		require.GreaterOrEqual(t, s.ElapsedTime, int64(1), "subject %d", i)
		if s.Event {
			events++
			assert.Equal(t, trueTime, s.ElapsedTime, "subject %d: event time", i)
		} else {
			censored++
			assert.Less(t, s.ElapsedTime, trueTime, "subject %d: censoring must precede the latent event", i)
		}
	}
	if events == 0 || censored == 0 {
		t.Fatalf("expected a mix of outcomes, got %d events and %d censored", events, censored)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	cfg := testConfig(FixedCensoring(20))
	first, err := Simulate(cfg)
	require.NoError(t, err)
	second, err := Simulate(cfg)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSimulate_SeedChangesData(t *testing.T) {
	first, err := Simulate(testConfig(FixedCensoring(20)))
	require.NoError(t, err)
	other := testConfig(FixedCensoring(20))
	other.Seed = 43
	second, err := Simulate(other)
	require.NoError(t, err)
	assert.NotEqual(t, first.Subjects, second.Subjects)
}

func TestSimulate_FixedCensoring_CensoredShareMatchesSurvival(t *testing.T) {
	// The censored fraction of each group estimates (1-p)^limit.
	cfg := testConfig(FixedCensoring(20))
	cfg.Subjects = 20000
	ds, err := Simulate(cfg)
	require.NoError(t, err)

	summary := Summarize(ds)
	for i, g := range summary.Groups {
		p := cfg.Groups[i].Probability
		want := math.Pow(1-p, 20)
		if math.Abs(g.CensoredShare-want) > 0.03 {
			t.Errorf("group %s: censored share %.4f, want ~%.4f (within 3 points)", g.Name, g.CensoredShare, want)
		}
	}
}

func TestSimulate_InvalidConfig_ReturnsError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero subjects", func(c *Config) { c.Subjects = 0 }},
		{"no groups", func(c *Config) { c.Groups = nil }},
		{"probability zero", func(c *Config) { c.Groups[0].Probability = 0 }},
		{"probability one", func(c *Config) { c.Groups[0].Probability = 1 }},
		{"fixed limit zero", func(c *Config) { c.Censoring = FixedCensoring(0) }},
		{"random probability out of range", func(c *Config) { c.Censoring = RandomCensoring(1.5) }},
		{"unknown censoring kind", func(c *Config) { c.Censoring = CensoringPolicy{Kind: "weekly"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(NoCensoring())
			tt.mutate(cfg)
			if _, err := Simulate(cfg); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
