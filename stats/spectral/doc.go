// Package spectral estimates how the variance of a return series
// distributes across frequency. A density-scaled periodogram is integrated
// over each configured band to attribute volatility to time scales, while
// whole-series statistics stay in the time domain.
package spectral
