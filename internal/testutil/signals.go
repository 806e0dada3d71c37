package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a sinusoid at the given normalized frequency, in cycles
// per sample.
func Sine(freq, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freq
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// GaussianReturns generates a zero-mean normal return series with the
// given per-period standard deviation.
func GaussianReturns(seed int64, stddev float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * stddev
	}
	return out
}

// SeasonalReturns generates a return series with a linear trend, a
// sinusoidal seasonal cycle of the given period, and seeded noise. The
// slope is per sample.
func SeasonalReturns(seed int64, period int, slope, seasonalAmp, noiseAmp float64, length int) []float64 {
	out := Noise(seed, noiseAmp, length)
	step := 2 * math.Pi / float64(period)
	for i := range out {
		out[i] += slope*float64(i) + seasonalAmp*math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Constant generates a constant-valued series.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
