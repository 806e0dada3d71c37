package summary

import (
	"golang.org/x/sync/errgroup"

	"github.com/quantfreq/freqdomain/dsp/bands"
	"github.com/quantfreq/freqdomain/stats/moments"
	"github.com/quantfreq/freqdomain/stats/seasonal"
	"github.com/quantfreq/freqdomain/timeseries"
)

// STLRow is one asset's line in the seasonal decomposition summary.
type STLRow struct {
	Asset            string
	TrendVol         float64
	SeasonalVol      float64
	ResidualVol      float64
	SeasonalStrength float64
	Method           seasonal.Method
}

// STLSummary decomposes every asset and reports annualized component
// volatilities plus the bias-corrected seasonal strength. A zero
// scfg.Period selects the sampling frequency's default seasonal period.
func STLSummary(cfg bands.Config, frame *timeseries.Frame, scfg seasonal.Config) ([]STLRow, error) {
	if scfg.Period <= 0 {
		scfg.Period = cfg.STLPeriod
	}

	assets := frame.Assets()
	rows := make([]STLRow, len(assets))

	var g errgroup.Group
	for i, asset := range assets {
		g.Go(func() error {
			data, err := frame.Column(asset)
			if err != nil {
				return err
			}

			res := seasonal.DecomposeConfig(data, scfg)
			vols := seasonal.VolBreakdown{
				Trend:    cfg.AnnualizeVolatility(moments.StdDev(res.Trend)),
				Seasonal: cfg.AnnualizeVolatility(moments.StdDev(res.Seasonal)),
				Residual: cfg.AnnualizeVolatility(moments.StdDev(res.Residual)),
				Total:    cfg.AnnualizeVolatility(moments.StdDev(data)),
			}

			rows[i] = STLRow{
				Asset:            asset,
				TrendVol:         vols.Trend,
				SeasonalVol:      vols.Seasonal,
				ResidualVol:      vols.Residual,
				SeasonalStrength: seasonal.Strength(vols, scfg.NoiseBaseline),
				Method:           res.Method,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

// STLResults decomposes every asset and returns the full component bundles
// keyed by asset name, for consumers that plot or export the series
// themselves.
func STLResults(cfg bands.Config, frame *timeseries.Frame, scfg seasonal.Config) (map[string]seasonal.Result, error) {
	if scfg.Period <= 0 {
		scfg.Period = cfg.STLPeriod
	}

	assets := frame.Assets()
	results := make([]seasonal.Result, len(assets))

	var g errgroup.Group
	for i, asset := range assets {
		g.Go(func() error {
			data, err := frame.Column(asset)
			if err != nil {
				return err
			}
			results[i] = seasonal.DecomposeConfig(data, scfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]seasonal.Result, len(assets))
	for i, asset := range assets {
		out[asset] = results[i]
	}
	return out, nil
}
