package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2.5, 2}
	if got := MaxAbsDiff(t, a, b); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1.0000001, 2}, 1e-6)
}
