// Package pass designs lowpass and highpass filters as cascades of biquad
// sections. Only the Butterworth family is provided: the band splitter uses
// low-order Butterworth responses for their flat passband and benign
// roll-off, which keeps per-band variance attribution well behaved.
package pass
