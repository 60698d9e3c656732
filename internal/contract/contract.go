// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"
)

// GitClient defines the Git operations needed for leaderboard aggregation and
// repository provisioning. This allows the core logic to be tested without
// needing a real git executable.
type GitClient interface {
	// Run executes a git command inside repoPath and returns its output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// Log returns the raw multi-line output of a git log query. The date
	// range bounds are optional; a zero time leaves that side unbounded.
	Log(ctx context.Context, repoPath string, startTime, endTime time.Time, extraArgs ...string) ([]byte, error)

	// CheckRepo returns nil if path is a valid Git working copy.
	CheckRepo(ctx context.Context, path string) error

	// Clone clones the remote url into path.
	Clone(ctx context.Context, url, path string) error

	// Fetch updates an existing working copy from its origin remote.
	Fetch(ctx context.Context, path string) error
}

// LogText runs a log query and degrades any failure to an empty result.
// A repository with no commits, a missing ref or a bad path all count as
// "no data" rather than an error; the run continues with zero contribution.
func LogText(ctx context.Context, c GitClient, repoPath string, startTime, endTime time.Time, extraArgs ...string) string {
	out, err := c.Log(ctx, repoPath, startTime, endTime, extraArgs...)
	if err != nil {
		return ""
	}
	return string(out)
}
