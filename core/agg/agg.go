// Package agg has aggregation logic for per-contributor Git activity.
package agg

import (
	"context"
	"strings"
	"time"

	"github.com/huangsam/podium/internal/contract"
	"github.com/huangsam/podium/schema"
)

// DiscoverContributors collects the union of committer and author email
// identities across all repositories within the date range. The returned
// slice is deduplicated but has no guaranteed order; the reporter imposes
// order, not the aggregator.
func DiscoverContributors(ctx context.Context, client contract.GitClient, repoPaths []string, startTime, endTime time.Time) []string {
	seen := make(map[string]struct{})
	for _, path := range repoPaths {
		committers := contract.LogText(ctx, client, path, startTime, endTime, "--format=%cE")
		authors := contract.LogText(ctx, client, path, startTime, endTime, "--format=%aE")
		for _, email := range strings.Fields(committers) {
			seen[email] = struct{}{}
		}
		for _, email := range strings.Fields(authors) {
			seen[email] = struct{}{}
		}
	}
	contributors := make([]string, 0, len(seen))
	for email := range seen {
		contributors = append(contributors, email)
	}
	return contributors
}

// BuildStats assembles one ContributorStats record per discovered contributor,
// summing contributions from every repository. Failing log queries contribute
// zero rather than aborting the run.
func BuildStats(ctx context.Context, client contract.GitClient, repoPaths []string, startTime, endTime time.Time, wordlist *Wordlist) []schema.ContributorStats {
	contributors := DiscoverContributors(ctx, client, repoPaths, startTime, endTime)

	stats := make([]schema.ContributorStats, 0, len(contributors))
	for _, email := range contributors {
		stats = append(stats, buildContributorStats(ctx, client, repoPaths, email, startTime, endTime, wordlist))
	}
	return stats
}

// buildContributorStats runs the three metric parsers for one contributor
// across all repositories.
func buildContributorStats(ctx context.Context, client contract.GitClient, repoPaths []string, email string, startTime, endTime time.Time, wordlist *Wordlist) schema.ContributorStats {
	record := schema.ContributorStats{
		Email: email,
		Words: make(map[string]int, len(wordlist.Words())),
	}
	for _, w := range wordlist.Words() {
		record.Words[w] = 0
	}

	var churn ChurnTotals
	for _, path := range repoPaths {
		hashes := SplitLines(contract.LogText(ctx, client, path, startTime, endTime,
			"--author="+email, "--format=%H"))
		record.Commits += CountCommits(hashes)

		statLines := SplitLines(contract.LogText(ctx, client, path, startTime, endTime,
			"--author="+email, "--oneline", "--shortstat"))
		churn.Accumulate(statLines)

		messages := SplitLines(contract.LogText(ctx, client, path, startTime, endTime,
			"--author="+email, "--oneline"))
		for w, n := range wordlist.CountMatches(messages) {
			record.Words[w] += n
		}
	}

	record.Files = churn.Files
	record.Adds = churn.Adds
	record.Dels = churn.Dels
	record.MaxFiles = churn.MaxFiles
	record.MaxAdds = churn.MaxAdds
	record.MaxDels = churn.MaxDels
	return record
}
