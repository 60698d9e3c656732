package outwriter

import (
	"sort"

	"github.com/huangsam/podium/schema"
)

// BuildBoards assembles every leaderboard section: one per numeric metric and
// one per configured keyword, in report order. Each board is sorted descending
// by its metric (stable for equal values), drops zero-valued entries and is
// capped at limit rows. An empty wordlist yields no keyword boards.
func BuildBoards(stats []schema.ContributorStats, wordlist []string, limit int) []schema.Board {
	boards := make([]schema.Board, 0, len(schema.AllMetricKeys)+len(wordlist))

	for _, key := range schema.AllMetricKeys {
		boards = append(boards, buildBoard(stats, string(key), key.Title(), limit, func(s *schema.ContributorStats) int {
			return s.Value(key)
		}))
	}
	for _, word := range wordlist {
		boards = append(boards, buildBoard(stats, "word:"+word, "WORD: "+word, limit, func(s *schema.ContributorStats) int {
			return s.WordValue(word)
		}))
	}
	return boards
}

// buildBoard ranks all records by one metric and keeps the top rows.
func buildBoard(stats []schema.ContributorStats, metric, title string, limit int, value func(*schema.ContributorStats) int) schema.Board {
	ranked := make([]schema.ContributorStats, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return value(&ranked[i]) > value(&ranked[j])
	})

	board := schema.Board{Metric: metric, Title: title}
	for i := range ranked {
		if len(board.Rows) >= limit {
			break
		}
		v := value(&ranked[i])
		if v <= 0 {
			continue
		}
		board.Rows = append(board.Rows, schema.BoardRow{Value: v, Email: ranked[i].Email})
	}
	return board
}
