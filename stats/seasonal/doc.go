// Package seasonal decomposes return series into trend, seasonal, and
// residual components with locally-weighted smoothing, and scores the
// strength of the extracted seasonality against a noise baseline.
package seasonal
