// Package outwriter has output and writer logic for leaderboard reports.
package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/podium/internal/contract"
	"github.com/huangsam/podium/schema"
	"golang.org/x/term"
)

// WriteBoards prints the leaderboard sections, dispatching on the configured
// output format.
func WriteBoards(boards []schema.Board, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, boards)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVBoards(w, boards)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBoardTables(w, boards, cfg)
		}, "Wrote tables")
	}
}

// GetMaxEmailWidth calculates the maximum width for contributor emails in
// table output based on terminal width and table configuration.
func GetMaxEmailWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the count column, borders and padding
	available := termWidth - 20
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer and
// returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "%s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeCSVBoards writes every board as board,rank,value,email rows.
func writeCSVBoards(w io.Writer, boards []schema.Board) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{"board", "rank", "value", "email"}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, b := range boards {
		for i, row := range b.Rows {
			record := []string{
				b.Metric,
				fmt.Sprintf("%d", i+1),
				fmt.Sprintf("%d", row.Value),
				row.Email,
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}
	return nil
}
