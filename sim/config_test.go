package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoCensoring_FieldEquivalence(t *testing.T) {
	got := NoCensoring()
	want := CensoringPolicy{Kind: CensorNone}
	assert.Equal(t, want, got)
}

func TestFixedCensoring_FieldEquivalence(t *testing.T) {
	got := FixedCensoring(20)
	want := CensoringPolicy{Kind: CensorFixed, Limit: 20}
	assert.Equal(t, want, got)
}

func TestRandomCensoring_FieldEquivalence(t *testing.T) {
	got := RandomCensoring(0.05)
	want := CensoringPolicy{Kind: CensorRandom, Probability: 0.05}
	assert.Equal(t, want, got)
}

func TestCensoringPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  CensoringPolicy
		wantErr bool
	}{
		{"none", NoCensoring(), false},
		{"fixed", FixedCensoring(1), false},
		{"fixed zero limit", FixedCensoring(0), true},
		{"fixed negative limit", FixedCensoring(-3), true},
		{"random", RandomCensoring(0.5), false},
		{"random zero probability", RandomCensoring(0), true},
		{"random unit probability", RandomCensoring(1), true},
		{"unknown kind", CensoringPolicy{Kind: "weekly"}, true},
		{"zero value", CensoringPolicy{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_AcceptsWorkedExample(t *testing.T) {
	cfg := &Config{
		Subjects: 1000,
		Groups: []GroupSpec{
			{Name: "black", Probability: 0.10},
			{Name: "other", Probability: 0.15},
		},
		Censoring: FixedCensoring(20),
		Seed:      42,
	}
	assert.NoError(t, cfg.Validate())
}

func TestConfig_GroupNames_DefaultsUnnamedGroups(t *testing.T) {
	cfg := &Config{
		Groups: []GroupSpec{
			{Name: "black", Probability: 0.10},
			{Probability: 0.15},
		},
	}
	assert.Equal(t, []string{"black", "group_1"}, cfg.GroupNames())
}
