package outwriter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/podium/internal/contract"
	"github.com/huangsam/podium/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeBoardTables renders every leaderboard as a bordered table section.
// Rows show a right-aligned comma-grouped value next to the contributor email.
func writeBoardTables(w io.Writer, boards []schema.Board, cfg *contract.Config) error {
	maxEmailWidth := GetMaxEmailWidth(cfg)
	for _, b := range boards {
		if err := writeBoardTable(w, b, cfg, maxEmailWidth); err != nil {
			return err
		}
	}
	return nil
}

// writeBoardTable renders a single leaderboard section.
func writeBoardTable(w io.Writer, board schema.Board, cfg *contract.Config, maxEmailWidth int) error {
	title := " " + board.Title
	if cfg.UseColors {
		title = contract.TitleColor.Sprint(title)
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Count", "Contributor"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignRight, tw.AlignLeft}
	})

	var data [][]string
	for _, row := range board.Rows {
		data = append(data, []string{
			humanize.Comma(int64(row.Value)),
			contract.TruncateEmail(row.Email, maxEmailWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
