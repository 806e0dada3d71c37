package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantfreq/freqdomain/summary"
)

// rollingCmd tracks total volatility over sliding windows.
var rollingCmd = &cobra.Command{
	Use:   "rolling <returns.csv>",
	Short: "Track annualized volatility over sliding windows.",
	Long: `Compute each asset's annualized total volatility over windows of
fixed length advancing by a fixed step, stamped with the window's last
date. Defaults cover one trading year advanced by one quarter.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, args []string) error {
		frame, err := loadFrame(args)
		if err != nil {
			return err
		}
		cfg := bandConfig()

		rows, err := summary.RollingVolatility(cfg, frame, viper.GetInt("window"), viper.GetInt("step"))
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("Series shorter than one window; nothing to report.")
			return nil
		}

		fmt.Println("Rolling Volatility")
		headers := append([]string{"Date"}, frame.Assets()...)
		var data [][]string
		for _, r := range rows {
			row := []string{r.Date.Format("2006-01-02")}
			for _, a := range frame.Assets() {
				row = append(row, fmtFloat(r.Vols[a]))
			}
			data = append(data, row)
		}
		return renderTable(headers, data)
	},
}
