package posterior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adoption-sim/adoption-sim/sim"
	"github.com/adoption-sim/adoption-sim/sim/internal/testutil"
)

func TestCompareBias_NaiveInflatesUnderCensoring(t *testing.T) {
	cfg := &sim.Config{
		Subjects: 2000,
		Groups: []sim.GroupSpec{
			{Name: "black", Probability: 0.10},
			{Name: "other", Probability: 0.15},
		},
		Censoring: sim.FixedCensoring(20),
		Seed:      42,
	}
	priors := []BetaPrior{{Alpha: 1, Beta: 5}, {Alpha: 1, Beta: 5}}

	report, err := CompareBias(cfg, priors, FitOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, report.RunID)
	require.Equal(t, int64(42), report.Seed)
	require.Equal(t, 2000, report.Subjects)
	require.Len(t, report.Groups, 2)

	for i, g := range report.Groups {
		assert.Equal(t, cfg.Groups[i].Name, g.Group)
		assert.Equal(t, cfg.Groups[i].Probability, g.TrueProbability)
		assert.Greater(t, g.CensoredShare, 0.0, "group %s", g.Group)
		assert.Greater(t, g.NaiveInflation, 0.0, "group %s", g.Group)
		assert.Greater(t, g.NaiveMean, g.TrueProbability, "group %s", g.Group)
		testutil.AssertFloat64Equal(t, g.Group+" inflation", g.NaiveMean-g.FullMean, g.NaiveInflation, 1e-12)
	}
}

func TestCompareBias_NoCensoring_FitsAgree(t *testing.T) {
	// With nothing censored the two accountings see identical data.
	cfg := &sim.Config{
		Subjects: 500,
		Groups: []sim.GroupSpec{
			{Name: "black", Probability: 0.10},
			{Name: "other", Probability: 0.15},
		},
		Censoring: sim.NoCensoring(),
		Seed:      42,
	}
	priors := []BetaPrior{{Alpha: 1, Beta: 1}, {Alpha: 1, Beta: 1}}

	report, err := CompareBias(cfg, priors, FitOptions{})
	require.NoError(t, err)
	for _, g := range report.Groups {
		assert.Zero(t, g.CensoredShare, "group %s", g.Group)
		assert.Equal(t, g.FullMean, g.NaiveMean, "group %s", g.Group)
		assert.Zero(t, g.NaiveInflation, "group %s", g.Group)
	}
}

func TestCompareBias_InvalidConfig_ReturnsError(t *testing.T) {
	cfg := &sim.Config{Subjects: 0}
	if _, err := CompareBias(cfg, nil, FitOptions{}); err == nil {
		t.Fatal("expected error")
	}
}
