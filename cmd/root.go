package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/podium/core"
	"github.com/huangsam/podium/internal/contract"
	"github.com/huangsam/podium/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint. Running it without a subcommand
// computes and prints the contributor leaderboards.
var rootCmd = &cobra.Command{
	Use:   "podium",
	Short: "Rank contributors across a set of Git repositories.",
	Long: `Podium aggregates per-contributor statistics (commit counts, file and line
churn, keyword mentions in commit messages) across the configured Git
repositories and prints ranked leaderboards.

Repositories, keywords and the working directory come from a YAML config
file (.podium.yaml in the current directory or $HOME, or --config):

  tmpdir: /tmp
  wordlist: [fix, revert]
  repositories:
    - https://github.com/example/service.git

Examples:
  # Clone/update the configured repositories, then print leaderboards
  podium --init

  # Leaderboards for one calendar year, top 5 rows per section
  podium --start 2024-01-01 --end 2024-12-31 --limit 5

  # Machine-readable output
  podium --output json --output-file boards.json`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteStats(rootCtx, cfg, contract.NewLocalGitClient())
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".podium") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("PODIUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
	viper.SetDefault("tmpdir", "")
	viper.SetDefault("wordlist", []string{})
	viper.SetDefault("repositories", []string{})
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, _ []string) error {
	// 1. An explicitly referenced config file must exist.
	if configFile := viper.GetString("config"); configFile != "" {
		if info, err := os.Stat(configFile); err != nil || info.IsDir() {
			return contract.Argumentf("specified config does not exist: %s", configFile)
		}
		viper.SetConfigFile(configFile)
	}

	// 2. Read config file. A malformed or unreadable config is reported on
	// stderr and the run continues with defaults.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			contract.LogWarn("cannot read config file, using defaults", err)
		}
		// Config file not found is fine; we'll use defaults/env/flags.
	}

	// 3. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 4. Run all validation and populate the final 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// sharedSetupWrapper adapts sharedSetup to Cobra's PreRunE signature.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
