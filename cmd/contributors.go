package cmd

import (
	"github.com/huangsam/podium/core"
	"github.com/huangsam/podium/internal/contract"
	"github.com/spf13/cobra"
)

// contributorsCmd lists the distinct contributor identities.
var contributorsCmd = &cobra.Command{
	Use:   "contributors",
	Short: "List the contributor emails found across the configured repositories.",
	Long: `Print the union of author and committer emails discovered across all
configured repositories, restricted to the date range if one is given.

Identities are raw email strings as emitted by git; contributors using
multiple emails appear once per email.

Examples:
  # Everyone who ever touched the configured repositories
  podium contributors

  # Contributors active in 2024
  podium contributors --start 2024-01-01 --end 2024-12-31`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteContributors(rootCtx, cfg, contract.NewLocalGitClient())
	},
}
