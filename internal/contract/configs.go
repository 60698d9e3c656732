package contract

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/podium/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 10
	MaxResultLimit     = 1000
)

// DateOnlyFormat is the calendar date representation accepted on the command
// line and passed to git log range arguments.
const DateOnlyFormat = "2006-01-02"

// Config holds the runtime configuration for one leaderboard run.
// This struct remains the "final, validated" config; it is constructed once
// at startup and passed by parameter to every component.
type Config struct {
	TmpDir       string            // Directory holding local working copies
	Repositories []string          // Remote repository URLs
	Wordlist     []string          // Keywords scored against commit messages
	Init         bool              // Clone/fetch repositories before computing stats
	ResultLimit  int               // Rows shown per leaderboard section
	StartTime    time.Time         // Start of date range (zero = unbounded)
	EndTime      time.Time         // End of date range (zero = unbounded)
	Output       schema.OutputMode // Report format (text, csv, json)
	OutputFile   string            // Optional path to write output to
	UseColors    bool              // Enable colored section titles in table output
	Width        int               // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	TmpDir       string   `mapstructure:"tmpdir"`
	Repositories []string `mapstructure:"repositories"`
	Wordlist     []string `mapstructure:"wordlist"`
	Init         bool     `mapstructure:"init"`
	Limit        int      `mapstructure:"limit"`
	Start        string   `mapstructure:"start"`
	End          string   `mapstructure:"end"`
	Output       string   `mapstructure:"output"`
	OutputFile   string   `mapstructure:"output-file"`
	Color        string   `mapstructure:"color"`
	Width        int      `mapstructure:"width"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct. All violations are argument errors.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- Simple transfers ---
	cfg.Repositories = input.Repositories
	cfg.Wordlist = input.Wordlist
	cfg.Init = input.Init
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- TmpDir Validation ---
	cfg.TmpDir = input.TmpDir
	if cfg.TmpDir == "" {
		cfg.TmpDir = os.TempDir()
	}
	if info, err := os.Stat(cfg.TmpDir); err != nil || !info.IsDir() {
		return Argumentf("tmpdir is not an existing directory: %s", cfg.TmpDir)
	}

	// --- ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return Argumentf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- Output Validation ---
	cfg.Output = schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return Argumentf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- Color Flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return Argumentf("invalid --color value: %v", err)
	}
	cfg.UseColors = colors

	// --- Date Range ---
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}

	return nil
}

// processTimeRange parses the optional date range bounds. An absent bound
// leaves the log query unbounded on that side.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	if input.Start != "" {
		t, err := parseDate(input.Start)
		if err != nil {
			return Argumentf("invalid start date '%s'. Expected %s or RFC3339", input.Start, DateOnlyFormat)
		}
		cfg.StartTime = t
	}
	if input.End != "" {
		t, err := parseDate(input.End)
		if err != nil {
			return Argumentf("invalid end date '%s'. Expected %s or RFC3339", input.End, DateOnlyFormat)
		}
		cfg.EndTime = t
	}
	if !cfg.StartTime.IsZero() && !cfg.EndTime.IsZero() && cfg.StartTime.After(cfg.EndTime) {
		return Argumentf("start date (%s) cannot be after end date (%s)",
			cfg.StartTime.Format(DateOnlyFormat), cfg.EndTime.Format(DateOnlyFormat))
	}
	return nil
}

// parseDate accepts a calendar date or a full RFC3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateOnlyFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Argumentf builds an argument error. Callers map these to exit status 2.
func Argumentf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrArgument)...)
}
