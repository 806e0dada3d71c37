package correlation

import (
	"math"
	"testing"

	"github.com/quantfreq/freqdomain/dsp/bands"
	"github.com/quantfreq/freqdomain/internal/testutil"
	"github.com/quantfreq/freqdomain/stats/spectral"
)

func TestCorrelateSelf(t *testing.T) {
	cfg := bands.ForFrequency(bands.Daily)
	in := testutil.Noise(1, 1, 512)

	corr := Correlate(cfg, in, in)
	for _, name := range append(bands.Names(), spectral.TotalKey) {
		if got := corr[name]; math.Abs(got-1) > 1e-9 {
			t.Fatalf("band %q: self-correlation %v, want 1", name, got)
		}
	}
}

func TestCorrelateAntiCorrelated(t *testing.T) {
	cfg := bands.ForFrequency(bands.Daily)
	a := testutil.Noise(2, 1, 512)
	b := make([]float64, len(a))
	for i := range a {
		b[i] = -a[i]
	}

	corr := Correlate(cfg, a, b)
	for _, name := range append(bands.Names(), spectral.TotalKey) {
		if got := corr[name]; math.Abs(got+1) > 1e-9 {
			t.Fatalf("band %q: got %v, want -1", name, got)
		}
	}
}

func TestCorrelateIndependentNoise(t *testing.T) {
	cfg := bands.ForFrequency(bands.Daily)
	a := testutil.GaussianReturns(3, 1, 2048)
	b := testutil.GaussianReturns(4, 1, 2048)

	corr := Correlate(cfg, a, b)
	if got := corr[spectral.TotalKey]; math.Abs(got) > 0.1 {
		t.Fatalf("independent series: total correlation %v, want near 0", got)
	}
}

func TestCorrelateConstantSeriesZeroPolicy(t *testing.T) {
	cfg := bands.ForFrequency(bands.Daily)
	a := testutil.Constant(0.01, 300)
	b := testutil.Noise(5, 1, 300)

	corr := Correlate(cfg, a, b)
	for _, name := range append(bands.Names(), spectral.TotalKey) {
		if got := corr[name]; got != 0 {
			t.Fatalf("band %q: got %v, want 0 for a degenerate input", name, got)
		}
	}
}

func TestCorrelateTruncatesToCommonLength(t *testing.T) {
	cfg := bands.ForFrequency(bands.Daily)
	a := testutil.Noise(6, 1, 400)
	b := testutil.Noise(6, 1, 300) // same seed: first 300 samples identical

	corr := Correlate(cfg, a, b)
	if got := corr[spectral.TotalKey]; math.Abs(got-1) > 1e-9 {
		t.Fatalf("common prefix identical: total correlation %v, want 1", got)
	}
}

func TestBandReliability(t *testing.T) {
	cases := map[string]Reliability{
		bands.ShortTerm:     ReliabilityHigh,
		bands.MediumTerm:    ReliabilityHigh,
		bands.BusinessCycle: ReliabilityLow,
		bands.LongTerm:      ReliabilityLow,
	}
	for band, want := range cases {
		if got := BandReliability(band); got != want {
			t.Fatalf("band %q: got %q, want %q", band, got, want)
		}
	}
}
