package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// dateLayouts are tried in order when parsing the index column.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

// ReadCSV parses a returns table: a header row naming the date column and
// one asset per remaining column, then one row per period. Values are
// period returns, not prices.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("csv needs a date column and at least one asset column, got %d columns", len(header))
	}

	assets := make([]string, len(header)-1)
	copy(assets, header[1:])

	var times []time.Time
	columns := make(map[string][]float64, len(assets))
	for _, a := range assets {
		columns[a] = nil
	}

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", row, err)
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("csv row %d: %d fields, want %d", row, len(rec), len(header))
		}

		ts, err := parseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", row, err)
		}
		times = append(times, ts)

		for i, a := range assets {
			v, err := strconv.ParseFloat(rec[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("csv row %d, asset %q: %w", row, a, err)
			}
			columns[a] = append(columns[a], v)
		}
	}

	return NewFrame(times, assets, columns)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
