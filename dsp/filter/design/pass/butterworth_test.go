package pass

import (
	"math"
	"testing"

	"github.com/quantfreq/freqdomain/dsp/filter/biquad"
)

func TestButterworthSectionCount(t *testing.T) {
	cases := []struct {
		order int
		want  int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
	}
	for _, c := range cases {
		if got := len(ButterworthLP(0.1, c.order, 1)); got != c.want {
			t.Fatalf("order %d LP: got %d sections, want %d", c.order, got, c.want)
		}
		if got := len(ButterworthHP(0.1, c.order, 1)); got != c.want {
			t.Fatalf("order %d HP: got %d sections, want %d", c.order, got, c.want)
		}
	}

	if ButterworthLP(0.1, 0, 1) != nil {
		t.Fatal("order 0 should design no sections")
	}
}

func TestButterworthOddOrderFirstOrderTail(t *testing.T) {
	sections := ButterworthLP(0.1, 3, 1)
	last := sections[len(sections)-1]
	if last.B2 != 0 || last.A2 != 0 {
		t.Fatalf("odd-order tail should be first-order, got B2=%v A2=%v", last.B2, last.A2)
	}
}

func TestButterworthLPMinus3dBAtCutoff(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		cutoff := 0.1
		chain := biquad.NewChain(ButterworthLP(cutoff, order, 1))

		if got := chain.MagnitudeDB(cutoff, 1); math.Abs(got-(-3.0103)) > 0.05 {
			t.Fatalf("order %d: %v dB at cutoff, want about -3", order, got)
		}
		// Passband flat at DC.
		if got := chain.MagnitudeDB(0, 1); math.Abs(got) > 0.01 {
			t.Fatalf("order %d: %v dB at DC, want about 0", order, got)
		}
	}
}

func TestButterworthHPMinus3dBAtCutoff(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		cutoff := 0.1
		chain := biquad.NewChain(ButterworthHP(cutoff, order, 1))

		if got := chain.MagnitudeDB(cutoff, 1); math.Abs(got-(-3.0103)) > 0.05 {
			t.Fatalf("order %d: %v dB at cutoff, want about -3", order, got)
		}
		// Passband flat at Nyquist.
		if got := chain.MagnitudeDB(0.5, 1); math.Abs(got) > 0.01 {
			t.Fatalf("order %d: %v dB at Nyquist, want about 0", order, got)
		}
	}
}

func TestButterworthRolloffSteepensWithOrder(t *testing.T) {
	cutoff := 0.05
	probe := 0.2

	prev := 0.0
	for _, order := range []int{1, 2, 3, 4} {
		chain := biquad.NewChain(ButterworthLP(cutoff, order, 1))
		att := chain.MagnitudeDB(probe, 1)
		if att >= prev {
			t.Fatalf("order %d: %v dB not below order %d's %v dB", order, att, order-1, prev)
		}
		prev = att
	}
}

func TestButterworthRejectsInvalidCutoff(t *testing.T) {
	for _, freq := range []float64{0, -0.1, 0.5, 0.6} {
		for _, s := range ButterworthLP(freq, 3, 1) {
			if s != (biquad.Coefficients{}) {
				t.Fatalf("freq %v: expected zero coefficients, got %+v", freq, s)
			}
		}
	}
}
