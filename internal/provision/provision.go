// Package provision resolves configured remote repositories to local working
// copies under the configured tmpdir, cloning or fetching them on demand.
package provision

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/huangsam/podium/internal/contract"
)

// repoNamePattern extracts the repository name from a remote URL. The remote
// must end in ".git"; the name is everything after the final path separator.
var repoNamePattern = regexp.MustCompile(`(?i)^.+?/([-_a-zA-Z0-9.]+)\.git$`)

// RepoName extracts the bare repository name from a remote URL.
func RepoName(url string) (string, error) {
	m := repoNamePattern.FindStringSubmatch(url)
	if m == nil {
		return "", contract.Argumentf("cannot derive repository name from URL %q", url)
	}
	return m[1], nil
}

// LocalPath computes the expected working copy path for a remote URL.
func LocalPath(tmpDir, url string) (string, error) {
	name, err := RepoName(url)
	if err != nil {
		return "", err
	}
	return filepath.Join(tmpDir, name), nil
}

// Provision maps every configured remote URL to a local repository path.
// With cfg.Init set it fetches working copies that already exist and clones
// the ones that do not; otherwise it only computes the expected paths without
// touching the network. Every resulting path must be a valid repository or
// the whole run fails.
func Provision(ctx context.Context, client contract.GitClient, cfg *contract.Config) ([]string, error) {
	paths := make([]string, 0, len(cfg.Repositories))
	for _, url := range cfg.Repositories {
		path, err := LocalPath(cfg.TmpDir, url)
		if err != nil {
			return nil, err
		}
		if cfg.Init {
			if err := initRepo(ctx, client, url, path); err != nil {
				return nil, err
			}
		}
		paths = append(paths, path)
	}
	if err := validateRepos(ctx, client, paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// initRepo fetches an existing working copy or clones a missing one.
func initRepo(ctx context.Context, client contract.GitClient, url, path string) error {
	sp := newSpinner(fmt.Sprintf("Updating %s", path))
	sp.Start()
	defer sp.Stop()

	if client.CheckRepo(ctx, path) == nil {
		if err := client.Fetch(ctx, path); err != nil {
			return fmt.Errorf("cannot update repository %s: %w", path, err)
		}
		return nil
	}
	sp.UpdateMessage(fmt.Sprintf("Cloning %s", path))
	if err := client.Clone(ctx, url, path); err != nil {
		return fmt.Errorf("cannot clone repository %s: %w", url, err)
	}
	return nil
}

// validateRepos ensures every local path already holds a valid repository.
func validateRepos(ctx context.Context, client contract.GitClient, paths []string) error {
	for _, path := range paths {
		if err := client.CheckRepo(ctx, path); err != nil {
			return fmt.Errorf("repository does not yet exist: %s (run with --init first, see --help)", path)
		}
	}
	return nil
}
