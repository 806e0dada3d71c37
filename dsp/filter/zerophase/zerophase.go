package zerophase

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/quantfreq/freqdomain/dsp/filter/biquad"
	"github.com/quantfreq/freqdomain/dsp/filter/design/pass"
)

// DefaultOrder is the Butterworth order used by the band splitter. Higher
// orders sharpen the band edges but destabilize the design at the very low
// cutoffs the long-term band requires.
const DefaultOrder = 3

const (
	nyquist = 0.5

	// Cutoffs are clamped away from DC and Nyquist (as fractions of the
	// Nyquist frequency). Designing at either extreme yields degenerate
	// coefficients.
	minNormalized = 0.001
	maxNormalized = 0.95
)

// Filter applies a zero-phase Butterworth filter to data and returns a new
// slice of the same length. The input is never modified.
//
// A nil low bound selects a lowpass at high; a nil high bound selects a
// highpass at low; both set selects a bandpass; both nil returns an
// unmodified copy. Bounds are cycle frequencies in [0, 0.5] and are
// normalized by the Nyquist frequency, then clamped to keep the design
// stable. A band whose clamped low edge is at or above its high edge
// yields an all-zero result by policy, not an error.
//
// The filter runs forward and backward over the input so the output has no
// phase lag; per-band outputs stay time-aligned with the raw series, which
// downstream variance and covariance comparisons rely on. If the design is
// numerically unstable, a warning is logged and an all-zero series is
// returned so a single bad band cannot abort a multi-asset batch.
func Filter(data []float64, low, high *float64, order int) []float64 {
	if low == nil && high == nil {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}
	if order <= 0 {
		order = DefaultOrder
	}

	var sections []biquad.Coefficients

	switch {
	case low == nil:
		hn := clampNormalized(*high / nyquist)
		sections = pass.ButterworthLP(hn*nyquist, order, 1)
	case high == nil:
		ln := clampNormalized(*low / nyquist)
		sections = pass.ButterworthHP(ln*nyquist, order, 1)
	default:
		ln := clampNormalized(*low / nyquist)
		hn := clampNormalized(*high / nyquist)
		if ln >= hn {
			return make([]float64, len(data))
		}
		// Bandpass as a lowpass at the upper edge cascaded with a
		// highpass at the lower edge.
		sections = pass.ButterworthLP(hn*nyquist, order, 1)
		sections = append(sections, pass.ButterworthHP(ln*nyquist, order, 1)...)
	}

	if !stable(sections) {
		evt := log.Warn().Int("order", order)
		if low != nil {
			evt = evt.Float64("low", *low)
		}
		if high != nil {
			evt = evt.Float64("high", *high)
		}
		evt.Msg("unstable zero-phase filter design, substituting zeros")

		return make([]float64, len(data))
	}

	return filtfilt(sections, data, order)
}

// Lowpass applies a zero-phase lowpass at the given cutoff.
func Lowpass(data []float64, high float64, order int) []float64 {
	return Filter(data, nil, &high, order)
}

// Highpass applies a zero-phase highpass at the given cutoff.
func Highpass(data []float64, low float64, order int) []float64 {
	return Filter(data, &low, nil, order)
}

// Bandpass applies a zero-phase bandpass between the given cutoffs.
func Bandpass(data []float64, low, high float64, order int) []float64 {
	return Filter(data, &low, &high, order)
}

func clampNormalized(f float64) float64 {
	return math.Min(math.Max(f, minNormalized), maxNormalized)
}

// stable reports whether every section has finite coefficients and poles
// strictly inside the unit circle. An empty design is treated as unstable.
func stable(sections []biquad.Coefficients) bool {
	if len(sections) == 0 {
		return false
	}
	for _, s := range sections {
		for _, c := range []float64{s.B0, s.B1, s.B2, s.A1, s.A2} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
		// Jury criterion for a quadratic 1 + A1 z^-1 + A2 z^-2.
		if math.Abs(s.A2) >= 1 || math.Abs(s.A1) >= 1+s.A2 {
			return false
		}
		// An all-zero section means the designer rejected the parameters.
		if s.B0 == 0 && s.B1 == 0 && s.B2 == 0 && s.A1 == 0 && s.A2 == 0 {
			return false
		}
	}
	return true
}

// filtfilt runs the cascade forward and backward over data with odd
// reflection padding on both ends, cancelling the phase response.
//
// Each pass starts from the cascade's constant-input steady state for the
// first extended sample rather than from zero state: the reflection padding
// is far shorter than the settling time of the low-frequency designs, so a
// zero-state start would leak a long decaying transient into the output. A
// constant input comes back as the same constant, bit-for-bit up to
// roundoff.
func filtfilt(sections []biquad.Coefficients, data []float64, order int) []float64 {
	n := len(data)
	if n == 0 {
		return []float64{}
	}

	padlen := 3 * (order + 1)
	if padlen >= n {
		padlen = n - 1
	}

	ext := make([]float64, padlen+n+padlen)
	for i := 0; i < padlen; i++ {
		ext[i] = 2*data[0] - data[padlen-i]
	}
	copy(ext[padlen:], data)
	for i := 0; i < padlen; i++ {
		ext[padlen+n+i] = 2*data[n-1] - data[n-2-i]
	}

	chain := biquad.NewChain(sections)
	chain.SetSteadyState(ext[0])
	chain.ProcessBlock(ext)
	reverse(ext)
	chain.SetSteadyState(ext[0])
	chain.ProcessBlock(ext)
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[padlen:padlen+n])
	return out
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
