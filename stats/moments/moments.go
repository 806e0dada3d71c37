// Package moments provides the population (ddof=0) mean and variance used
// throughout the volatility estimators. The population convention matters:
// every reported volatility is sqrt of a population variance, and mixing in
// sample-variance (n-1) helpers would silently shift all of them.
package moments

import "math"

// Mean returns the arithmetic mean of the signal using Kahan summation for
// numerical stability. Returns 0 for an empty input.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Variance returns the population variance of the signal using Welford's
// online algorithm. Returns 0 for an empty input.
func Variance(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return 0
	}

	var mean, m2 float64
	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return m2 / float64(n)
}

// StdDev returns the population standard deviation of the signal.
func StdDev(signal []float64) float64 {
	return math.Sqrt(Variance(signal))
}
