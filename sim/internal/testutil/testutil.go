// Package testutil provides shared assertion helpers for the simulator and
// inference test packages. It stays free of sim imports so in-package tests
// anywhere in the tree can use it.
package testutil

import (
	"math"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertWithin compares two float64 values with absolute tolerance. Suited to
// statistical estimates whose target may be near zero, where a relative bound
// says nothing useful.
func AssertWithin(t *testing.T, name string, want, got, absTol float64) {
	t.Helper()
	if diff := math.Abs(want - got); diff > absTol {
		t.Errorf("%s: got %v, want %v (diff=%v > %v)", name, got, want, diff, absTol)
	}
}
