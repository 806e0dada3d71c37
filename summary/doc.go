// Package summary drives the band, spectral, correlation, and seasonal
// estimators across a collection of assets and assembles the tabular
// results the presentation layer consumes. Per-asset work is independent
// and fans out concurrently.
package summary
