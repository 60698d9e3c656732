// Package schema has configs, models and constants for all parts of podium.
package schema

// ContributorStats holds the aggregated Git activity for a single contributor
// identity across all configured repositories. A contributor is keyed by the
// raw email string as emitted by git (case-sensitive, no alias merging).
type ContributorStats struct {
	Email    string         // Contributor email as emitted by %aE / %cE
	Commits  int            // Total number of commits by this contributor
	Files    int            // Cumulative files changed across all commits
	Adds     int            // Cumulative lines inserted across all commits
	Dels     int            // Cumulative lines deleted across all commits
	MaxFiles int            // Most files changed in any single commit
	MaxAdds  int            // Most lines inserted in any single commit
	MaxDels  int            // Most lines deleted in any single commit
	Words    map[string]int // Commit message matches per configured keyword
}

// Value returns the numeric value of the given metric for this contributor.
func (s *ContributorStats) Value(key MetricKey) int {
	switch key {
	case CommitsMetric:
		return s.Commits
	case FilesMetric:
		return s.Files
	case MaxFilesMetric:
		return s.MaxFiles
	case AddsMetric:
		return s.Adds
	case MaxAddsMetric:
		return s.MaxAdds
	case DelsMetric:
		return s.Dels
	case MaxDelsMetric:
		return s.MaxDels
	default:
		return 0
	}
}

// WordValue returns the occurrence count for a configured keyword, or zero
// when the keyword was never initialized for this contributor.
func (s *ContributorStats) WordValue(word string) int {
	if s.Words == nil {
		return 0
	}
	return s.Words[word]
}

// BoardRow is a single leaderboard entry.
type BoardRow struct {
	Value int    `json:"value"`
	Email string `json:"email"`
}

// Board is one ranked, truncated leaderboard section.
type Board struct {
	Metric string     `json:"metric"` // Metric key or "word:<keyword>"
	Title  string     `json:"title"`
	Rows   []BoardRow `json:"entries"`
}
