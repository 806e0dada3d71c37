// Package timeseries holds the caller-side data model: ordered return
// series and frames of one series per asset. The analysis packages operate
// on read-only float views of this data and allocate their own outputs.
package timeseries

import (
	"fmt"
	"time"
)

// Series is an ordered sequence of (timestamp, return) observations with
// strictly increasing timestamps.
type Series struct {
	Name   string
	Times  []time.Time
	Values []float64
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Values) }

// Frame is a date index with one numeric return column per asset.
type Frame struct {
	times   []time.Time
	assets  []string
	columns map[string][]float64
}

// NewFrame builds a frame from a shared time index and per-asset columns.
// Every column must match the index length and the index must be strictly
// increasing.
func NewFrame(times []time.Time, assets []string, columns map[string][]float64) (*Frame, error) {
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			return nil, fmt.Errorf("time index not strictly increasing at position %d (%s)", i, times[i])
		}
	}
	for _, asset := range assets {
		col, ok := columns[asset]
		if !ok {
			return nil, fmt.Errorf("missing column for asset %q", asset)
		}
		if len(col) != len(times) {
			return nil, fmt.Errorf("asset %q: column length %d != index length %d", asset, len(col), len(times))
		}
	}

	return &Frame{times: times, assets: assets, columns: columns}, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.times) }

// Assets returns the asset names in column order.
func (f *Frame) Assets() []string { return f.assets }

// Times returns the shared time index.
func (f *Frame) Times() []time.Time { return f.times }

// Column returns the return values for one asset.
func (f *Frame) Column(asset string) ([]float64, error) {
	col, ok := f.columns[asset]
	if !ok {
		return nil, fmt.Errorf("unknown asset %q", asset)
	}
	return col, nil
}

// Series returns one asset as a standalone Series.
func (f *Frame) Series(asset string) (Series, error) {
	col, err := f.Column(asset)
	if err != nil {
		return Series{}, err
	}
	return Series{Name: asset, Times: f.times, Values: col}, nil
}
