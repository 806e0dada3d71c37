// Package correlation estimates how the co-movement of two return series
// distributes across frequency bands.
package correlation

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/quantfreq/freqdomain/dsp/bands"
	"github.com/quantfreq/freqdomain/stats/moments"
	"github.com/quantfreq/freqdomain/stats/spectral"
)

// degenerateEps is the standard-deviation floor below which a filtered
// signal is treated as constant. Correlating against a near-constant
// signal is an ill-conditioned ratio, so such bands report 0 by policy.
const degenerateEps = 1e-10

// Reliability qualifies how trustworthy a band's correlation estimate is.
type Reliability string

const (
	// ReliabilityHigh marks bands whose filter time constants are short
	// relative to the sample, leaving many effectively independent points.
	ReliabilityHigh Reliability = "high"
	// ReliabilityLow marks the low-frequency bands: long filter time
	// constants correlate neighboring points, so far fewer independent
	// samples back the estimate.
	ReliabilityLow Reliability = "low"
)

// BandReliability reports the confidence tier of a band's correlation
// estimate. Consumers presenting band correlations side by side should
// surface this rather than displaying all bands as equally trustworthy.
func BandReliability(band string) Reliability {
	switch band {
	case bands.BusinessCycle, bands.LongTerm:
		return ReliabilityLow
	default:
		return ReliabilityHigh
	}
}

// Correlate computes the Pearson correlation of two return series per
// frequency band, plus the whole-series correlation under
// [spectral.TotalKey]. Both series are band-decomposed independently and
// each band's filtered pair is correlated over the full overlapping range.
//
// A band where either filtered signal is nearly constant reports 0, as
// does any band whose correlation comes out NaN. Note the caveat on
// [BandReliability]: business_cycle and long_term values rest on few
// effective samples.
func Correlate(cfg bands.Config, a, b []float64) map[string]float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	a, b = a[:n], b[:n]

	decompA := bands.Decompose(cfg, a)
	decompB := bands.Decompose(cfg, b)

	out := make(map[string]float64, len(cfg.Bands)+1)
	for _, band := range cfg.Bands {
		out[band.Name] = pearson(decompA[band.Name], decompB[band.Name])
	}
	out[spectral.TotalKey] = pearson(a, b)

	return out
}

// pearson computes the Pearson coefficient with the degenerate-signal and
// NaN policies applied.
func pearson(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}
	if moments.StdDev(x) < degenerateEps || moments.StdDev(y) < degenerateEps {
		return 0
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}
