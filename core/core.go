// Package core orchestrates a leaderboard run end to end.
package core

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/huangsam/podium/core/agg"
	"github.com/huangsam/podium/internal/contract"
	"github.com/huangsam/podium/internal/outwriter"
	"github.com/huangsam/podium/internal/provision"
)

// ExecuteStats provisions the configured repositories, aggregates one record
// per contributor, and prints the ranked leaderboards. The whole run is one
// synchronous batch computation; every log query runs to completion before
// the next begins.
func ExecuteStats(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	repoPaths, err := provision.Provision(ctx, client, cfg)
	if err != nil {
		return err
	}

	wordlist := agg.NewWordlist(cfg.Wordlist)
	stats := agg.BuildStats(ctx, client, repoPaths, cfg.StartTime, cfg.EndTime, wordlist)

	boards := outwriter.BuildBoards(stats, cfg.Wordlist, cfg.ResultLimit)
	return outwriter.WriteBoards(boards, cfg)
}

// ExecuteContributors provisions the configured repositories and prints the
// distinct contributor identities found in the date range, sorted, one per
// line.
func ExecuteContributors(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	repoPaths, err := provision.Provision(ctx, client, cfg)
	if err != nil {
		return err
	}

	contributors := agg.DiscoverContributors(ctx, client, repoPaths, cfg.StartTime, cfg.EndTime)
	sort.Strings(contributors)
	for _, email := range contributors {
		if _, err := fmt.Fprintln(os.Stdout, email); err != nil {
			return err
		}
	}
	return nil
}
