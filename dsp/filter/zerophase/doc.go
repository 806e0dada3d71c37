// Package zerophase applies Butterworth filters forward and backward so
// the output carries no phase lag relative to the input. It is the filter
// bank behind the frequency-band decomposition of return series.
package zerophase
