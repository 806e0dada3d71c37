// Package cmd defines the command-line interface for freqdomain.
package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/quantfreq/freqdomain/stats/seasonal"
	"github.com/quantfreq/freqdomain/summary"
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(stlCmd)
	rootCmd.AddCommand(rollingCmd)

	rootCmd.PersistentFlags().StringP("frequency", "f", "D", "Sampling frequency of the input series: D (daily) or M (monthly)")
	rootCmd.PersistentFlags().Int("precision", defaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	bindFlags(rootCmd.PersistentFlags())

	analyzeCmd.Flags().String("export", "", "Optional path to write an Excel workbook of the results")
	bindFlags(analyzeCmd.Flags())

	stlCmd.Flags().Int("period", 0, "Seasonal period in samples (0 = frequency default)")
	stlCmd.Flags().Float64("baseline", seasonal.DefaultNoiseBaseline, "Raw-strength level treated as pure noise")
	bindFlags(stlCmd.Flags())

	rollingCmd.Flags().Int("window", summary.DefaultRollingWindow, "Window length in samples")
	rollingCmd.Flags().Int("step", summary.DefaultRollingStep, "Step between windows in samples")
	bindFlags(rollingCmd.Flags())
}

func bindFlags(flags *pflag.FlagSet) {
	if err := viper.BindPFlags(flags); err != nil {
		log.Error().Err(err).Msg("binding flags")
		os.Exit(1)
	}
}
