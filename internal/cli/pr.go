package cli

import (
	"fmt"
	"strings"

	"github.com/alanmeadows/prvars/internal/provider/github"
	"github.com/spf13/cobra"
)

var (
	prRepo string

	prCmd = &cobra.Command{
		Use:   "pr <number | owner/repo#number | url>",
		Short: "Fetch a pull request body from GitHub and extract its variables",
		Long: `Fetch the pull request description over the GitHub API and run the
pipeline on it, instead of requiring the body in TO_PARSE. A bare PR
number needs --repo to name the repository; owner/repo#number and full
URLs are self-contained. The token comes from GITHUB_TOKEN and may be
omitted for public repositories.`,
		Example: `  prvars pr https://github.com/org/repo/pull/42
  prvars pr org/repo#42 --format shell
  prvars pr 42 --repo org/repo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo := splitRepo(prRepo)
			fetcher := github.NewFetcher(owner, repo, appConfig.GitHubToken)
			body, err := fetcher.PRBody(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fetching PR body: %w", err)
			}
			return emit(cmd, body)
		},
	}
)

func init() {
	prCmd.Flags().StringVar(&prRepo, "repo", "", "Default repository as owner/name, for bare PR numbers")
}

// splitRepo splits an owner/name reference; either half may come back
// empty when the flag is unset or malformed.
func splitRepo(ref string) (owner, repo string) {
	owner, repo, _ = strings.Cut(ref, "/")
	return owner, repo
}
