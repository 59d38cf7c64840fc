package posterior

import (
	"math"
	"testing"

	"github.com/adoption-sim/adoption-sim/sim/internal/testutil"
)

func TestBetaPrior_Validate(t *testing.T) {
	tests := []struct {
		name    string
		prior   BetaPrior
		wantErr bool
	}{
		{"flat prior", BetaPrior{Alpha: 1, Beta: 1}, false},
		{"informative prior", BetaPrior{Alpha: 1, Beta: 5}, false},
		{"zero alpha", BetaPrior{Alpha: 0, Beta: 1}, true},
		{"zero beta", BetaPrior{Alpha: 1, Beta: 0}, true},
		{"negative alpha", BetaPrior{Alpha: -2, Beta: 1}, true},
		{"NaN beta", BetaPrior{Alpha: 1, Beta: math.NaN()}, true},
		{"infinite alpha", BetaPrior{Alpha: math.Inf(1), Beta: 1}, true},
		{"zero value", BetaPrior{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prior.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate(%+v): expected error", tt.prior)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate(%+v): unexpected error %v", tt.prior, err)
			}
		})
	}
}

func TestBetaPrior_Mean(t *testing.T) {
	testutil.AssertFloat64Equal(t, "Beta(2,6) mean", 0.25, BetaPrior{Alpha: 2, Beta: 6}.Mean(), 1e-12)
	testutil.AssertFloat64Equal(t, "Beta(1,1) mean", 0.5, BetaPrior{Alpha: 1, Beta: 1}.Mean(), 1e-12)
}

func TestBetaPrior_LogDensity_ClosedForm(t *testing.T) {
	// Beta(2,3) has density 12 * p * (1-p)^2.
	p := 0.3
	want := math.Log(12 * p * (1 - p) * (1 - p))
	got := BetaPrior{Alpha: 2, Beta: 3}.LogDensity(p)
	testutil.AssertFloat64Equal(t, "Beta(2,3) log density", want, got, 1e-9)
}

func TestBetaPrior_LogDensity_FlatPriorIsZero(t *testing.T) {
	flat := BetaPrior{Alpha: 1, Beta: 1}
	for _, p := range []float64{0.1, 0.5, 0.7} {
		got := flat.LogDensity(p)
		if math.Abs(got) > 1e-12 {
			t.Errorf("flat prior log density at %v = %v, want 0", p, got)
		}
	}
}

func TestBetaPrior_Quantile_SymmetricMedian(t *testing.T) {
	got := BetaPrior{Alpha: 5, Beta: 5}.Quantile(0.5)
	testutil.AssertFloat64Equal(t, "Beta(5,5) median", 0.5, got, 1e-6)
}
