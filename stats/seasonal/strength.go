package seasonal

// VolBreakdown holds the annualized component volatilities of a
// decomposition. All four values must be scaled identically before
// computing a strength score; the ratio is what matters.
type VolBreakdown struct {
	Trend    float64
	Seasonal float64
	Residual float64
	Total    float64
}

// Strength scores how much genuine periodic structure the decomposition
// found, in [0, 1], bias-corrected by the given noise baseline.
//
// The raw seasonal fraction Seasonal/Total is misleading on its own: the
// decomposition attributes a sizable fraction of pure noise to the
// seasonal component (DefaultNoiseBaseline under the default settings).
// Fractions at or below the baseline therefore score 0, and the excess
// above it is rescaled so a fully seasonal series scores exactly 1.
func Strength(v VolBreakdown, baseline float64) float64 {
	if baseline <= 0 {
		baseline = DefaultNoiseBaseline
	}

	raw := 0.0
	if v.Total > 0 {
		raw = v.Seasonal / v.Total
	}

	if raw < baseline {
		return 0
	}
	if baseline >= 1 {
		return 1
	}

	score := (raw - baseline) / (1 - baseline)
	if score > 1 {
		return 1
	}
	return score
}
