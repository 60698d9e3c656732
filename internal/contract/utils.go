package contract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ErrArgument tags errors caused by bad flags or nonexistent paths passed via
// flags. The process exits with status 2 for these, before any statistics are
// computed.
var ErrArgument = errors.New("invalid argument")

// TitleColor renders leaderboard section titles in table output.
var TitleColor = color.New(color.FgCyan, color.Bold)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateEmail truncates a contributor email to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both content
// and the ellipsis.
func TruncateEmail(email string, maxWidth int) string {
	runes := []rune(email)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return email
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
