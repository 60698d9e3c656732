package outwriter

import (
	"testing"

	"github.com/huangsam/podium/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStats() []schema.ContributorStats {
	return []schema.ContributorStats{
		{Email: "a@x.com", Commits: 5, Files: 12, Adds: 100, Dels: 40, MaxFiles: 6, MaxAdds: 80, MaxDels: 30, Words: map[string]int{"fix": 3}},
		{Email: "b@x.com", Commits: 9, Files: 4, Adds: 20, Dels: 90, MaxFiles: 2, MaxAdds: 15, MaxDels: 70, Words: map[string]int{"fix": 0}},
		{Email: "c@x.com", Commits: 1, Files: 1, Adds: 1, Dels: 1, MaxFiles: 1, MaxAdds: 1, MaxDels: 1, Words: map[string]int{"fix": 1}},
	}
}

func TestBuildBoardsOrderAndTitles(t *testing.T) {
	boards := BuildBoards(sampleStats(), []string{"fix", "merge"}, 10)
	require.Len(t, boards, len(schema.AllMetricKeys)+2)

	var metrics []string
	for _, b := range boards {
		metrics = append(metrics, b.Metric)
	}
	assert.Equal(t, []string{
		"commits", "files", "max_files", "adds", "max_adds", "dels", "max_dels",
		"word:fix", "word:merge",
	}, metrics)

	assert.Equal(t, "NUMBER OF COMMITS", boards[0].Title)
	assert.Equal(t, "WORD: fix", boards[7].Title)
	assert.Equal(t, "WORD: merge", boards[8].Title)
}

func TestBuildBoardsSortsDescending(t *testing.T) {
	boards := BuildBoards(sampleStats(), nil, 10)

	commits := boards[0]
	require.Len(t, commits.Rows, 3)
	assert.Equal(t, schema.BoardRow{Value: 9, Email: "b@x.com"}, commits.Rows[0])
	assert.Equal(t, schema.BoardRow{Value: 5, Email: "a@x.com"}, commits.Rows[1])
	assert.Equal(t, schema.BoardRow{Value: 1, Email: "c@x.com"}, commits.Rows[2])
}

func TestBuildBoardsExcludesZeroValues(t *testing.T) {
	boards := BuildBoards(sampleStats(), []string{"fix"}, 10)

	fix := boards[len(boards)-1]
	require.Len(t, fix.Rows, 2)
	for _, row := range fix.Rows {
		assert.NotEqual(t, "b@x.com", row.Email)
		assert.Positive(t, row.Value)
	}
}

func TestBuildBoardsCapsAtLimit(t *testing.T) {
	boards := BuildBoards(sampleStats(), nil, 2)
	for _, b := range boards {
		assert.LessOrEqual(t, len(b.Rows), 2, "board %s", b.Metric)
	}
	assert.Equal(t, "b@x.com", boards[0].Rows[0].Email)
	assert.Equal(t, "a@x.com", boards[0].Rows[1].Email)
}

func TestBuildBoardsEmptyWordlist(t *testing.T) {
	boards := BuildBoards(sampleStats(), nil, 10)
	assert.Len(t, boards, len(schema.AllMetricKeys))
}

func TestBuildBoardsNoStats(t *testing.T) {
	boards := BuildBoards(nil, []string{"fix"}, 10)
	require.Len(t, boards, len(schema.AllMetricKeys)+1)
	for _, b := range boards {
		assert.Empty(t, b.Rows)
	}
}

// Equal values keep their input order, so reruns produce identical reports.
func TestBuildBoardsStableForTies(t *testing.T) {
	stats := []schema.ContributorStats{
		{Email: "first@x.com", Commits: 4},
		{Email: "second@x.com", Commits: 4},
	}
	boards := BuildBoards(stats, nil, 10)
	require.Len(t, boards[0].Rows, 2)
	assert.Equal(t, "first@x.com", boards[0].Rows[0].Email)
	assert.Equal(t, "second@x.com", boards[0].Rows[1].Email)
}
