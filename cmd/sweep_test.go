package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adoption-sim/adoption-sim/sim/study"
)

// sweepTestSpec keeps replications cheap: a small cohort and a coarse grid.
func sweepTestSpec() *study.Spec {
	return &study.Spec{
		Seed:     7,
		Subjects: 200,
		Groups: []study.GroupSpec{
			{Name: "black", Probability: 0.10},
			{Name: "other", Probability: 0.15},
		},
		Censoring: study.CensoringSpec{Type: "fixed", Limit: 20},
		Fit:       &study.FitSpec{GridPoints: 512},
	}
}

// === runSweep Tests ===

func TestRunSweep_WorkerCountDoesNotChangeReport(t *testing.T) {
	// Replication r always runs under seed base+r, so partitioning the work
	// across more workers must reproduce the serial report exactly.
	spec := sweepTestSpec()

	serial, err := runSweep(spec, "spread-check", 4, 1)
	require.NoError(t, err)
	parallel, err := runSweep(spec, "spread-check", 4, 4)
	require.NoError(t, err)

	require.Equal(t, serial, parallel)
}

func TestRunSweep_ReportFields(t *testing.T) {
	spec := sweepTestSpec()

	report, err := runSweep(spec, "spread-check", 3, 2)
	require.NoError(t, err)

	assert.Equal(t, "spread-check", report.Study)
	assert.Equal(t, 3, report.Replications)
	assert.Equal(t, int64(7), report.BaseSeed)
	require.Len(t, report.Groups, 2)
	for i, g := range report.Groups {
		assert.Equal(t, spec.Groups[i].Name, g.Group)
		assert.Equal(t, spec.Groups[i].Probability, g.TrueProbability)
		assert.InDelta(t, spec.Groups[i].Probability, g.MeanOfMeans, 0.05)
		assert.Greater(t, g.StdDevOfMeans, 0.0)
	}
}

func TestRunSweep_SingleReplication_ZeroSpread(t *testing.T) {
	report, err := runSweep(sweepTestSpec(), "spread-check", 1, 1)
	require.NoError(t, err)

	require.Len(t, report.Groups, 2)
	for _, g := range report.Groups {
		assert.Zero(t, g.StdDevOfMeans)
	}
}

func TestRunSweep_InvalidCounts_ReturnError(t *testing.T) {
	spec := sweepTestSpec()

	_, err := runSweep(spec, "spread-check", 0, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replications")

	_, err = runSweep(spec, "spread-check", 3, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}
