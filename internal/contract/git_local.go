package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// Log implements the GitClient interface. The date range produces one of four
// mutually exclusive query shapes depending on which bounds are present.
func (c *LocalGitClient) Log(ctx context.Context, repoPath string, startTime, endTime time.Time, extraArgs ...string) ([]byte, error) {
	return c.Run(ctx, repoPath, logArgs(startTime, endTime, extraArgs...)...)
}

// logArgs builds the argument vector for a git log query.
func logArgs(startTime, endTime time.Time, extraArgs ...string) []string {
	args := []string{"log"}
	switch {
	case !startTime.IsZero() && !endTime.IsZero():
		args = append(args,
			"--after="+startTime.Format(DateOnlyFormat),
			"--before="+endTime.Format(DateOnlyFormat))
	case !startTime.IsZero():
		args = append(args, "--after="+startTime.Format(DateOnlyFormat))
	case !endTime.IsZero():
		args = append(args, "--before="+endTime.Format(DateOnlyFormat))
	}
	return append(args, extraArgs...)
}

// CheckRepo implements the GitClient interface.
func (c *LocalGitClient) CheckRepo(ctx context.Context, path string) error {
	_, err := c.Run(ctx, path, "rev-parse", "--git-dir")
	return err
}

// Clone implements the GitClient interface.
func (c *LocalGitClient) Clone(ctx context.Context, url, path string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", url, path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone %q failed: %s", url, strings.TrimSpace(string(out)))
	}
	return nil
}

// Fetch implements the GitClient interface.
func (c *LocalGitClient) Fetch(ctx context.Context, path string) error {
	if _, err := c.Run(ctx, path, "fetch", "origin"); err != nil {
		return fmt.Errorf("git fetch in %q failed: %w", path, err)
	}
	return nil
}
