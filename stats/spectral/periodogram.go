package spectral

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/quantfreq/freqdomain/stats/moments"
)

// Periodogram computes a one-sided power spectral density estimate of the
// signal with density scaling at unit sample rate, so that the integral of
// psd over frequency approximates the signal variance. The mean is removed
// before transforming (constant detrend), which zeroes the DC bin and keeps
// a nonzero mean from masquerading as long-term variance.
//
// The returned frequencies are k/N cycles per sample, k = 0..N/2. Both
// slices are nil when the signal is shorter than two samples.
func Periodogram(signal []float64) (freqs, psd []float64) {
	n := len(signal)
	if n < 2 {
		return nil, nil
	}

	mean := moments.Mean(signal)
	detrended := make([]float64, n)
	for i, x := range signal {
		detrended[i] = x - mean
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, detrended)

	bins := len(coeffs)
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i, c := range coeffs {
		re[i] = real(c)
		im[i] = imag(c)
	}

	psd = make([]float64, bins)
	vecmath.Power(psd, re, im)

	freqs = make([]float64, bins)
	scale := 1 / float64(n)
	for k := range psd {
		freqs[k] = fft.Freq(k)
		psd[k] *= scale
		// One-sided spectrum: interior bins carry the energy of their
		// negative-frequency twins. DC has none; Nyquist (even N only)
		// has none either.
		if k > 0 && !(n%2 == 0 && k == bins-1) {
			psd[k] *= 2
		}
	}

	return freqs, psd
}
