package moments

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	cases := []struct {
		in   []float64
		want float64
	}{
		{nil, 0},
		{[]float64{5}, 5},
		{[]float64{1, 2, 3, 4}, 2.5},
		{[]float64{-1, 1}, 0},
	}
	for _, c := range cases {
		if got := Mean(c.in); got != c.want {
			t.Fatalf("Mean(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestVariancePopulation(t *testing.T) {
	// Population (n) convention, not sample (n-1).
	in := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	if got := Variance(in); math.Abs(got-4) > 1e-12 {
		t.Fatalf("got %v, want 4", got)
	}
	if got := StdDev(in); math.Abs(got-2) > 1e-12 {
		t.Fatalf("stddev: got %v, want 2", got)
	}
}

func TestVarianceEdgeCases(t *testing.T) {
	if got := Variance(nil); got != 0 {
		t.Fatalf("empty: got %v, want 0", got)
	}
	if got := Variance([]float64{3}); got != 0 {
		t.Fatalf("single: got %v, want 0", got)
	}
	if got := Variance([]float64{7, 7, 7, 7}); got != 0 {
		t.Fatalf("constant: got %v, want 0", got)
	}
}

func TestMeanLargeOffset(t *testing.T) {
	// Kahan summation keeps the mean exact under a large common offset.
	in := make([]float64, 1000)
	for i := range in {
		in[i] = 1e9 + float64(i%2) // alternating 1e9, 1e9+1
	}
	if got := Mean(in); math.Abs(got-(1e9+0.5)) > 1e-6 {
		t.Fatalf("got %v, want %v", got, 1e9+0.5)
	}
}
