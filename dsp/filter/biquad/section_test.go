package biquad

import (
	"math"
	"testing"
)

func TestSectionImpulseResponse(t *testing.T) {
	// Pure feedforward section: impulse response equals the B coefficients.
	s := NewSection(Coefficients{B0: 0.5, B1: 0.25, B2: 0.125})

	got := []float64{
		s.ProcessSample(1),
		s.ProcessSample(0),
		s.ProcessSample(0),
		s.ProcessSample(0),
	}
	want := []float64{0.5, 0.25, 0.125, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSectionFeedback(t *testing.T) {
	// One-pole recursion y[n] = x[n] + 0.5*y[n-1] via A1 = -0.5.
	s := NewSection(Coefficients{B0: 1, A1: -0.5})

	prev := 0.0
	for i := 0; i < 16; i++ {
		x := 0.0
		if i == 0 {
			x = 1
		}
		y := s.ProcessSample(x)
		want := x + 0.5*prev
		if math.Abs(y-want) > 1e-15 {
			t.Fatalf("sample %d: got %v, want %v", i, y, want)
		}
		prev = y
	}
}

func TestSectionProcessBlockMatchesSamples(t *testing.T) {
	c := Coefficients{B0: 0.3, B1: 0.2, B2: 0.1, A1: -0.4, A2: 0.15}
	a := NewSection(c)
	b := NewSection(c)

	in := []float64{1, -0.5, 0.25, 0.75, -1, 0.1, 0, 0.9}
	block := make([]float64, len(in))
	copy(block, in)
	a.ProcessBlock(block)

	for i, x := range in {
		want := b.ProcessSample(x)
		if math.Abs(block[i]-want) > 1e-15 {
			t.Fatalf("sample %d: block %v, per-sample %v", i, block[i], want)
		}
	}
}

func TestSectionReset(t *testing.T) {
	c := Coefficients{B0: 1, B1: 0.5, A1: -0.3}
	s := NewSection(c)

	first := s.ProcessSample(1)
	s.ProcessSample(0.5)
	s.Reset()

	if got := s.ProcessSample(1); got != first {
		t.Fatalf("after reset: got %v, want %v", got, first)
	}
}

func TestSectionSetSteadyStateNoTransient(t *testing.T) {
	// Primed with the steady state for x, a constant input produces the
	// DC-gained constant from the very first sample.
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.3}
	s := NewSection(c)

	x := 0.7
	want := s.SetSteadyState(x)

	gain := (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
	if math.Abs(want-gain*x) > 1e-15 {
		t.Fatalf("steady-state output %v, want %v", want, gain*x)
	}
	for i := 0; i < 50; i++ {
		if got := s.ProcessSample(x); math.Abs(got-want) > 1e-14 {
			t.Fatalf("sample %d: got %v, want steady %v", i, got, want)
		}
	}
}

func TestChainSetSteadyStateCascadesGain(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.5, B1: 0.25, A1: -0.25},
		{B0: 0.4, B1: 0.1, B2: 0.1, A1: -0.2, A2: 0.1},
	}
	chain := NewChain(coeffs)

	x := 1.0
	chain.SetSteadyState(x)

	want := x
	for _, c := range coeffs {
		want *= (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
	}
	for i := 0; i < 50; i++ {
		if got := chain.ProcessSample(x); math.Abs(got-want) > 1e-14 {
			t.Fatalf("sample %d: got %v, want steady %v", i, got, want)
		}
	}
}

func TestChainMatchesManualCascade(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.4, B1: 0.2, A1: -0.1},
		{B0: 0.7, B2: 0.3, A2: 0.05},
	}
	chain := NewChain(coeffs)
	s0 := NewSection(coeffs[0])
	s1 := NewSection(coeffs[1])

	in := []float64{1, 0.5, -0.25, 0, 0.125, -1}
	for i, x := range in {
		want := s1.ProcessSample(s0.ProcessSample(x))
		if got := chain.ProcessSample(x); math.Abs(got-want) > 1e-15 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}

	if chain.NumSections() != 2 {
		t.Fatalf("NumSections: got %d, want 2", chain.NumSections())
	}
}

func TestChainMagnitudeDBSumsSections(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.5, B1: 0.5},
		{B0: 0.9, B1: -0.1},
	}
	chain := NewChain(coeffs)

	freq, rate := 0.1, 1.0
	want := NewSection(coeffs[0]).MagnitudeDB(freq, rate) + NewSection(coeffs[1]).MagnitudeDB(freq, rate)
	if got := chain.MagnitudeDB(freq, rate); math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v dB, want %v dB", got, want)
	}
}

func TestResponseAtDC(t *testing.T) {
	// At DC, z = 1: H = (B0+B1+B2) / (1+A1+A2).
	s := NewSection(Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.1})
	want := (0.2 + 0.4 + 0.2) / (1 - 0.3 + 0.1)
	got := real(s.Response(0, 1))
	if math.Abs(got-want) > 1e-15 {
		t.Fatalf("got %v, want %v", got, want)
	}
}
