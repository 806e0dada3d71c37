package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/quantfreq/freqdomain/stats/spectral"
	"github.com/quantfreq/freqdomain/summary"
)

// Sheet names in the generated workbook.
const (
	SheetSummary     = "Summary"
	SheetCorrelation = "Correlation"
	SheetVolatility  = "Volatility"
)

// Workbook assembles the analysis results into a three-sheet Excel
// workbook: the per-asset summary, the correlation matrix, and the
// volatility-by-band breakdown. The caller owns closing the file.
func Workbook(rows []summary.Row, m summary.Matrix, vols []summary.BandVolRow, bandNames []string) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSummary(f, rows); err != nil {
		return nil, err
	}
	if err := writeCorrelation(f, m); err != nil {
		return nil, err
	}
	if err := writeVolatility(f, vols, bandNames); err != nil {
		return nil, err
	}

	// Drop the default sheet so the workbook opens on the summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(SheetSummary)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	return f, nil
}

// WriteWorkbook builds the workbook and saves it at path.
func WriteWorkbook(path string, rows []summary.Row, m summary.Matrix, vols []summary.BandVolRow, bandNames []string) error {
	f, err := Workbook(rows, m, vols, bandNames)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, rows []summary.Row) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("create %s sheet: %w", SheetSummary, err)
	}

	header := []any{
		"Asset", "Expected Return", "Volatility", "Sharpe Ratio",
		"Short-Term Vol", "Medium-Term Vol", "Business-Cycle Vol", "Long-Term Vol",
	}
	if err := f.SetSheetRow(SheetSummary, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.Asset, r.ExpectedReturn, r.Volatility, r.Sharpe,
			r.ShortTermVol, r.MediumTermVol, r.BusinessCycleVol, r.LongTermVol,
		}
		if err := f.SetSheetRow(SheetSummary, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeCorrelation(f *excelize.File, m summary.Matrix) error {
	if _, err := f.NewSheet(SheetCorrelation); err != nil {
		return fmt.Errorf("create %s sheet: %w", SheetCorrelation, err)
	}

	header := make([]any, 0, len(m.Assets)+1)
	header = append(header, "")
	for _, a := range m.Assets {
		header = append(header, a)
	}
	if err := f.SetSheetRow(SheetCorrelation, "A1", &header); err != nil {
		return err
	}

	for i, a := range m.Assets {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := make([]any, 0, len(m.Assets)+1)
		row = append(row, a)
		for j := range m.Assets {
			row = append(row, m.At(i, j))
		}
		if err := f.SetSheetRow(SheetCorrelation, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeVolatility(f *excelize.File, vols []summary.BandVolRow, bandNames []string) error {
	if _, err := f.NewSheet(SheetVolatility); err != nil {
		return fmt.Errorf("create %s sheet: %w", SheetVolatility, err)
	}

	header := make([]any, 0, len(bandNames)+2)
	header = append(header, "Asset")
	for _, b := range bandNames {
		header = append(header, b)
	}
	header = append(header, spectral.TotalKey)
	if err := f.SetSheetRow(SheetVolatility, "A1", &header); err != nil {
		return err
	}

	for i, r := range vols {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := make([]any, 0, len(bandNames)+2)
		row = append(row, r.Asset)
		for _, b := range bandNames {
			row = append(row, r.Vols[b])
		}
		row = append(row, r.Vols[spectral.TotalKey])
		if err := f.SetSheetRow(SheetVolatility, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
