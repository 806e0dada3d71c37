package summary

import (
	"time"

	"github.com/quantfreq/freqdomain/dsp/bands"
	"github.com/quantfreq/freqdomain/stats/spectral"
	"github.com/quantfreq/freqdomain/timeseries"
)

// Default rolling parameters for daily data: one-year windows advanced by
// one quarter.
const (
	DefaultRollingWindow = 252
	DefaultRollingStep   = 63
)

// RollingRow is the annualized total volatility of every asset over one
// window, stamped with the window's last date.
type RollingRow struct {
	Date time.Time
	Vols map[string]float64
}

// RollingVolatility tracks how total volatility evolves over time: for
// each window of the given length, advancing by step, it reports the
// annualized whole-series volatility per asset. Non-positive window or
// step values select the defaults.
func RollingVolatility(cfg bands.Config, frame *timeseries.Frame, window, step int) ([]RollingRow, error) {
	if window <= 0 {
		window = DefaultRollingWindow
	}
	if step <= 0 {
		step = DefaultRollingStep
	}

	times := frame.Times()
	assets := frame.Assets()

	var rows []RollingRow
	for start := 0; start < frame.Len()-window; start += step {
		end := start + window

		vols := make(map[string]float64, len(assets))
		for _, asset := range assets {
			data, err := frame.Column(asset)
			if err != nil {
				return nil, err
			}
			vols[asset] = spectral.Volatility(cfg, data[start:end], true)[spectral.TotalKey]
		}

		rows = append(rows, RollingRow{Date: times[end-1], Vols: vols})
	}

	return rows, nil
}
