package spectral

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/quantfreq/freqdomain/dsp/bands"
	"github.com/quantfreq/freqdomain/stats/moments"
)

// TotalKey indexes the whole-series entry in volatility, return, and
// correlation reports alongside the band names.
const TotalKey = "total"

// ExpectedReturn computes the mean return of the series, annualized by the
// configuration's scalar when annualize is set. The result is keyed by
// TotalKey for symmetry with the volatility report.
func ExpectedReturn(cfg bands.Config, signal []float64, annualize bool) map[string]float64 {
	mean := moments.Mean(signal)
	if annualize {
		mean = cfg.AnnualizeReturn(mean)
	}
	return map[string]float64{TotalKey: mean}
}

// Volatility attributes the variance of the series across the configured
// frequency bands and reports per-band standard deviations plus the
// whole-series volatility under TotalKey.
//
// Band variances come from trapezoidal integration of the periodogram over
// each band's frequency range (the lowest band integrates from DC). The
// total is computed independently in the time domain; the bands' energy
// does not reconstruct it exactly because trapezoidal integration over a
// finite bin grid is approximate, and no such equality is promised.
func Volatility(cfg bands.Config, signal []float64, annualize bool) map[string]float64 {
	freqs, psd := Periodogram(signal)

	out := make(map[string]float64, len(cfg.Bands)+1)
	for _, b := range cfg.Bands {
		variance := integrateBand(freqs, psd, b)
		vol := math.Sqrt(math.Abs(variance))
		if annualize {
			vol = cfg.AnnualizeVolatility(vol)
		}
		out[b.Name] = vol
	}

	total := moments.StdDev(signal)
	if annualize {
		total = cfg.AnnualizeVolatility(total)
	}
	out[TotalKey] = total

	return out
}

// integrateBand integrates the PSD over the band's frequency range.
// Fewer than two bins in range yields zero variance.
func integrateBand(freqs, psd []float64, b bands.Band) float64 {
	var xs, ys []float64
	for i, f := range freqs {
		if f >= b.Low && f <= b.High {
			xs = append(xs, f)
			ys = append(ys, psd[i])
		}
	}
	if len(xs) < 2 {
		return 0
	}
	return integrate.Trapezoidal(xs, ys)
}
