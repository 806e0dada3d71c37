package biquad

import (
	"math"
	"math/cmplx"
)

// Response returns the complex frequency response of the section at the
// given frequency (same units as sampleRate).
func (s *Section) Response(freq, sampleRate float64) complex128 {
	w := 2 * math.Pi * freq / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(s.B0, 0) + complex(s.B1, 0)*z1 + complex(s.B2, 0)*z2
	den := complex(1, 0) + complex(s.A1, 0)*z1 + complex(s.A2, 0)*z2
	if den == 0 {
		return complex(math.Inf(1), 0)
	}

	return num / den
}

// MagnitudeDB returns the magnitude response of the section in dB.
func (s *Section) MagnitudeDB(freq, sampleRate float64) float64 {
	m := cmplx.Abs(s.Response(freq, sampleRate))
	if m == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(m)
}

// MagnitudeDB returns the combined magnitude response of the cascade in dB.
func (c *Chain) MagnitudeDB(freq, sampleRate float64) float64 {
	sum := 0.0
	for i := range c.sections {
		sum += c.sections[i].MagnitudeDB(freq, sampleRate)
	}

	return sum
}
