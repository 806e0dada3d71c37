// Package bands defines the named frequency bands that partition [0, 0.5]
// for each sampling frequency, together with the matching annualization
// scalars, and decomposes return series into per-band components.
package bands
