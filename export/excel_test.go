package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/quantfreq/freqdomain/dsp/bands"
	"github.com/quantfreq/freqdomain/summary"
)

func fixture() ([]summary.Row, summary.Matrix, []summary.BandVolRow) {
	rows := []summary.Row{
		{Asset: "SPX", ExpectedReturn: 0.08, Volatility: 0.15, Sharpe: 0.533,
			ShortTermVol: 0.10, MediumTermVol: 0.07, BusinessCycleVol: 0.05, LongTermVol: 0.02},
		{Asset: "TLT", ExpectedReturn: 0.03, Volatility: 0.10, Sharpe: 0.3,
			ShortTermVol: 0.06, MediumTermVol: 0.05, BusinessCycleVol: 0.04, LongTermVol: 0.01},
	}

	data := mat.NewSymDense(2, nil)
	data.SetSym(0, 0, 1)
	data.SetSym(1, 1, 1)
	data.SetSym(0, 1, -0.4)
	matrix := summary.Matrix{Assets: []string{"SPX", "TLT"}, Data: data}

	vols := []summary.BandVolRow{
		{Asset: "SPX", Vols: map[string]float64{
			bands.ShortTerm: 0.10, bands.MediumTerm: 0.07,
			bands.BusinessCycle: 0.05, bands.LongTerm: 0.02, "total": 0.15,
		}},
		{Asset: "TLT", Vols: map[string]float64{
			bands.ShortTerm: 0.06, bands.MediumTerm: 0.05,
			bands.BusinessCycle: 0.04, bands.LongTerm: 0.01, "total": 0.10,
		}},
	}

	return rows, matrix, vols
}

func TestWorkbookSheets(t *testing.T) {
	rows, matrix, vols := fixture()

	f, err := Workbook(rows, matrix, vols, bands.Names())
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{SheetSummary, SheetCorrelation, SheetVolatility}, f.GetSheetList())
}

func TestWorkbookSummarySheet(t *testing.T) {
	rows, matrix, vols := fixture()

	f, err := Workbook(rows, matrix, vols, bands.Names())
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(SheetSummary, "A2")
	require.NoError(t, err)
	assert.Equal(t, "SPX", got)

	got, err = f.GetCellValue(SheetSummary, "C3")
	require.NoError(t, err)
	assert.Equal(t, "0.1", got)
}

func TestWorkbookCorrelationSheet(t *testing.T) {
	rows, matrix, vols := fixture()

	f, err := Workbook(rows, matrix, vols, bands.Names())
	require.NoError(t, err)
	defer f.Close()

	// Header row names the assets; the matrix body mirrors across the
	// diagonal.
	got, err := f.GetCellValue(SheetCorrelation, "B1")
	require.NoError(t, err)
	assert.Equal(t, "SPX", got)

	upper, err := f.GetCellValue(SheetCorrelation, "C2")
	require.NoError(t, err)
	lower, err := f.GetCellValue(SheetCorrelation, "B3")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.Equal(t, "-0.4", upper)
}

func TestWorkbookVolatilitySheet(t *testing.T) {
	rows, matrix, vols := fixture()

	f, err := Workbook(rows, matrix, vols, bands.Names())
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(SheetVolatility, "B1")
	require.NoError(t, err)
	assert.Equal(t, bands.ShortTerm, got)

	got, err = f.GetCellValue(SheetVolatility, "F1")
	require.NoError(t, err)
	assert.Equal(t, "total", got)

	got, err = f.GetCellValue(SheetVolatility, "F3")
	require.NoError(t, err)
	assert.Equal(t, "0.1", got)
}

func TestWriteWorkbook(t *testing.T) {
	rows, matrix, vols := fixture()
	path := t.TempDir() + "/report.xlsx"

	require.NoError(t, WriteWorkbook(path, rows, matrix, vols, bands.Names()))

	assert.FileExists(t, path)
}
