// Package cmd defines the command-line interface for podium.
package cmd

import (
	"github.com/huangsam/podium/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add subcommands to the root command
	rootCmd.AddCommand(contributorsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringP("tmpdir", "t", "", "Directory holding the local working copies (default: system temp dir)")
	rootCmd.PersistentFlags().BoolP("init", "i", false, "Clone missing repositories and fetch existing ones before computing stats")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of rows to display per leaderboard")
	rootCmd.PersistentFlags().String("start", "", "Start date (YYYY-MM-DD or RFC3339); empty means unbounded")
	rootCmd.PersistentFlags().String("end", "", "End date (YYYY-MM-DD or RFC3339); empty means unbounded")
	rootCmd.PersistentFlags().String("output", "text", "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored section titles in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Register -v as the version shorthand; Cobra fills in the behavior
	// because rootCmd.Version is set.
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
