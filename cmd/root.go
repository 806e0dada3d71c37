package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantfreq/freqdomain/dsp/bands"
	"github.com/quantfreq/freqdomain/timeseries"
)

// Set by the release tooling at build time.
var version = "dev"

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:           "freqdomain",
	Short:         "Frequency-domain analysis of asset return series.",
	Long:          `Freqdomain splits return series into frequency bands and reports per-band volatility, correlation, and seasonal structure.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".freqdomain")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("FREQDOMAIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("frequency", string(bands.Daily))
	viper.SetDefault("precision", defaultPrecision)
}

// loadConfigFile merges the optional config file into Viper. A missing
// file is fine; defaults, env, and flags still apply.
func loadConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// sharedSetup loads the config file; it runs before every analysis
// subcommand.
func sharedSetup(_ *cobra.Command, _ []string) error {
	return loadConfigFile()
}

// bandConfig resolves the sampling frequency from Viper into a band
// configuration.
func bandConfig() bands.Config {
	return bands.ForFrequency(bands.Frequency(strings.ToUpper(viper.GetString("frequency"))))
}

// loadFrame reads the returns CSV named by the positional argument.
func loadFrame(args []string) (*timeseries.Frame, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one returns CSV path")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open returns file: %w", err)
	}
	defer f.Close()

	frame, err := timeseries.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", args[0], err)
	}
	return frame, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
