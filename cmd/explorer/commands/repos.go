package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewReposCommand creates the user repository listing command.
func NewReposCommand() *cobra.Command {
	var (
		language string
		topN     int
	)

	cmd := &cobra.Command{
		Use:   "repos <login>",
		Short: "List a user's top repositories (1000+ stars), ranked by stars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}

			repos, err := service.TopUserRepos(cmd.Context(), args[0], language, topN)
			if err != nil {
				color.Red("Failed to fetch repositories: %v", err)
				return err
			}
			if len(repos) == 0 {
				color.Yellow("No repositories with 1000+ stars match the filter")
				return nil
			}

			renderRepoTable(repos)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "All", "Language filter (All, Go, Java, Flutter, Elixir, ...)")
	cmd.Flags().IntVarP(&topN, "top", "n", 10, "Number of results to show")
	return cmd
}
