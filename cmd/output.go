package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/viper"
)

const defaultPrecision = 4

// fmtFloat formats a value with the configured decimal precision.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', viper.GetInt("precision"), 64)
}

// renderTable prints a right-aligned table to stdout.
func renderTable(headers []string, data [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("populate table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
