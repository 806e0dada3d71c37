package summary

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/quantfreq/freqdomain/dsp/bands"
	"github.com/quantfreq/freqdomain/stats/correlation"
	"github.com/quantfreq/freqdomain/stats/spectral"
	"github.com/quantfreq/freqdomain/timeseries"
)

// Row is one asset's line in the cross-asset summary table.
type Row struct {
	Asset            string
	ExpectedReturn   float64
	Volatility       float64
	Sharpe           float64
	ShortTermVol     float64
	MediumTermVol    float64
	BusinessCycleVol float64
	LongTermVol      float64
}

// Matrix is a symmetric correlation matrix indexed by asset name, with a
// unit diagonal.
type Matrix struct {
	Assets []string
	Data   *mat.SymDense
}

// At returns the correlation between the i-th and j-th assets.
func (m Matrix) At(i, j int) float64 { return m.Data.At(i, j) }

// Summarize builds the summary table and the pairwise correlation matrix
// for every asset in the frame. Assets are processed concurrently; each
// asset's statistics are independent of every other's.
//
// Off-diagonal correlations are computed once per unordered pair and
// mirrored; the diagonal is exactly 1.
func Summarize(cfg bands.Config, frame *timeseries.Frame) ([]Row, Matrix, error) {
	assets := frame.Assets()
	rows := make([]Row, len(assets))

	var g errgroup.Group
	for i, asset := range assets {
		g.Go(func() error {
			data, err := frame.Column(asset)
			if err != nil {
				return err
			}
			rows[i] = summarizeAsset(cfg, asset, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Matrix{}, err
	}

	m, err := correlationMatrix(cfg, frame)
	if err != nil {
		return nil, Matrix{}, err
	}

	return rows, m, nil
}

func summarizeAsset(cfg bands.Config, asset string, data []float64) Row {
	ret := spectral.ExpectedReturn(cfg, data, true)[spectral.TotalKey]
	vol := spectral.Volatility(cfg, data, true)

	sharpe := 0.0
	if vol[spectral.TotalKey] > 0 {
		sharpe = ret / vol[spectral.TotalKey]
	}

	return Row{
		Asset:            asset,
		ExpectedReturn:   ret,
		Volatility:       vol[spectral.TotalKey],
		Sharpe:           sharpe,
		ShortTermVol:     vol[bands.ShortTerm],
		MediumTermVol:    vol[bands.MediumTerm],
		BusinessCycleVol: vol[bands.BusinessCycle],
		LongTermVol:      vol[bands.LongTerm],
	}
}

func correlationMatrix(cfg bands.Config, frame *timeseries.Frame) (Matrix, error) {
	assets := frame.Assets()
	n := len(assets)

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	coeffs := make([]float64, len(pairs))
	var g errgroup.Group
	for k, p := range pairs {
		g.Go(func() error {
			a, err := frame.Column(assets[p.i])
			if err != nil {
				return err
			}
			b, err := frame.Column(assets[p.j])
			if err != nil {
				return err
			}
			coeffs[k] = correlation.Correlate(cfg, a, b)[spectral.TotalKey]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Matrix{}, err
	}

	data := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		data.SetSym(i, i, 1)
	}
	for k, p := range pairs {
		data.SetSym(p.i, p.j, coeffs[k])
	}

	return Matrix{Assets: assets, Data: data}, nil
}

// BandVolRow is one asset's annualized volatility per frequency band plus
// the whole-series total.
type BandVolRow struct {
	Asset string
	Vols  map[string]float64
}

// VolatilityTable computes the volatility-by-band breakdown for every
// asset in the frame.
func VolatilityTable(cfg bands.Config, frame *timeseries.Frame) ([]BandVolRow, error) {
	assets := frame.Assets()
	rows := make([]BandVolRow, len(assets))

	var g errgroup.Group
	for i, asset := range assets {
		g.Go(func() error {
			data, err := frame.Column(asset)
			if err != nil {
				return err
			}
			rows[i] = BandVolRow{Asset: asset, Vols: spectral.Volatility(cfg, data, true)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
