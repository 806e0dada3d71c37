package bands

import "math"

// Frequency identifies the sampling frequency of a return series.
type Frequency string

const (
	// Daily marks series sampled once per trading day.
	Daily Frequency = "D"
	// Monthly marks series sampled once per month.
	Monthly Frequency = "M"
)

// Canonical band names, ordered from highest to lowest frequency.
const (
	ShortTerm     = "short_term"
	MediumTerm    = "medium_term"
	BusinessCycle = "business_cycle"
	LongTerm      = "long_term"
)

// Names returns the band names in short_term..long_term order.
func Names() []string {
	return []string{ShortTerm, MediumTerm, BusinessCycle, LongTerm}
}

// Band is a named half-open interval [Low, High) of normalized cycle
// frequency, where 0 is DC and 0.5 the Nyquist frequency.
type Band struct {
	Name string
	Low  float64
	High float64
}

// Config groups everything that depends on the sampling frequency: the
// band partition of [0, 0.5], the annualization scalar, and the default
// seasonal period. Modeling this as one value keeps new sampling modes a
// matter of adding a table entry.
type Config struct {
	Freq        Frequency
	Bands       []Band // ordered highest frequency first
	AnnualScale float64
	STLPeriod   int
}

// ForFrequency returns the band configuration for the given sampling
// frequency. Monthly gets its own partition; anything else falls back to
// the daily band layout with no annualization scaling, matching the
// behavior of an unrecognized mode in the reference methodology.
func ForFrequency(f Frequency) Config {
	switch f {
	case Daily:
		return Config{
			Freq: Daily,
			Bands: []Band{
				{Name: ShortTerm, Low: 0.04, High: 0.5},        // 2-25 day cycles
				{Name: MediumTerm, Low: 0.008, High: 0.04},     // 25-125 days
				{Name: BusinessCycle, Low: 0.002, High: 0.008}, // 125-500 days
				{Name: LongTerm, Low: 0, High: 0.002},          // 500+ days
			},
			AnnualScale: 252,
			STLPeriod:   21,
		}
	case Monthly:
		return Config{
			Freq: Monthly,
			Bands: []Band{
				{Name: ShortTerm, Low: 1.0 / 3, High: 0.5},           // 2-3 months
				{Name: MediumTerm, Low: 1.0 / 12, High: 1.0 / 3},     // 3-12 months
				{Name: BusinessCycle, Low: 1.0 / 60, High: 1.0 / 12}, // 1-5 years
				{Name: LongTerm, Low: 0, High: 1.0 / 60},             // 5+ years
			},
			AnnualScale: 12,
			STLPeriod:   12,
		}
	default:
		cfg := ForFrequency(Daily)
		cfg.Freq = f
		cfg.AnnualScale = 1
		cfg.STLPeriod = 12
		return cfg
	}
}

// AnnualizeReturn rescales a per-period mean return to a yearly magnitude.
func (c Config) AnnualizeReturn(mean float64) float64 {
	return mean * c.AnnualScale
}

// AnnualizeVolatility rescales a per-period standard deviation to a yearly
// magnitude.
func (c Config) AnnualizeVolatility(vol float64) float64 {
	return vol * math.Sqrt(c.AnnualScale)
}
