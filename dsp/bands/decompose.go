package bands

import "github.com/quantfreq/freqdomain/dsp/filter/zerophase"

// Decompose splits a series into one zero-phase filtered series per band in
// cfg. The lowest band reaches down to DC and is realized as a lowpass at
// its upper edge; every other band is a bandpass between its edges. Each
// output has the same length as the input.
//
// Decompose is a pure function of its inputs: repeated calls on the same
// data yield bit-identical results.
func Decompose(cfg Config, data []float64) map[string][]float64 {
	out := make(map[string][]float64, len(cfg.Bands))
	for _, b := range cfg.Bands {
		if b.Low == 0 {
			out[b.Name] = zerophase.Lowpass(data, b.High, zerophase.DefaultOrder)
		} else {
			out[b.Name] = zerophase.Bandpass(data, b.Low, b.High, zerophase.DefaultOrder)
		}
	}
	return out
}
