package commands

import (
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/thep200/github-explorer/internal/githubapi"
)

const descriptionLimit = 80

// NewSearchCommand creates the repository search command.
func NewSearchCommand() *cobra.Command {
	var (
		language string
		topN     int
	)

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search repositories with at least 1000 stars, ranked by stars",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}

			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}

			repos, err := service.SearchTop(cmd.Context(), keyword, language, topN)
			if err != nil {
				color.Red("Search failed: %v", err)
				return err
			}

			renderRepoTable(repos)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "All", "Language filter (All, Go, Java, Flutter, Elixir, ...)")
	cmd.Flags().IntVarP(&topN, "top", "n", 10, "Number of results to show")
	return cmd
}

func renderRepoTable(repos []githubapi.RepoResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Repository", "Stars", "Forks", "Language", "Description"})
	for i, r := range repos {
		desc := r.Description
		if len(desc) > descriptionLimit {
			desc = desc[:descriptionLimit] + "..."
		}
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		name := r.FullName
		if name == "" {
			name = r.Name
		}
		t.AppendRow(table.Row{
			i + 1,
			name,
			humanize.Comma(r.StargazersCount),
			humanize.Comma(r.ForksCount),
			lang,
			strings.ReplaceAll(desc, "\n", " "),
		})
	}
	t.Render()
}
