// Package biquad implements second-order IIR filter sections and cascades
// in Direct Form II Transposed. Cascades realize the higher-order
// Butterworth filters used by the zero-phase band splitter.
package biquad
