package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/thep200/github-explorer/internal/starhistory"
	"github.com/thep200/github-explorer/internal/ui"
)

var ErrInvalidRepoRef = errors.New("repository must be given as owner/repo")

// NewStarsCommand creates the star-history command.
func NewStarsCommand() *cobra.Command {
	var (
		pages    int
		trailing bool
		out      string
	)

	cmd := &cobra.Command{
		Use:   "stars <owner/repo>",
		Short: "Plot a repository's cumulative star history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := strings.SplitN(args[0], "/", 2)
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				return ErrInvalidRepoRef
			}

			service, err := newService()
			if err != nil {
				return err
			}

			mode := starhistory.WindowFull
			if trailing {
				mode = starhistory.WindowTrailing5Y
			}

			result, err := service.StarHistory(cmd.Context(), parts[0], parts[1], pages, mode)
			if err != nil {
				color.Red("Failed to build star history: %v", err)
				return err
			}

			if result.Truncated {
				color.Yellow("Warning: pagination capped, history is incomplete; final point reconciled against the reported total")
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendRow(table.Row{"Repository", args[0]})
			t.AppendRow(table.Row{"Reported stars", humanize.Comma(int64(result.Total))})
			t.AppendRow(table.Row{"Days in series", len(result.Series)})
			if n := len(result.Series); n > 0 {
				first := result.Series[0]
				last := result.Series[n-1]
				t.AppendRow(table.Row{"Window", fmt.Sprintf("%s .. %s", first.Date.Format("2006-01-02"), last.Date.Format("2006-01-02"))})
				t.AppendRow(table.Row{"Cumulative at end", humanize.Comma(int64(last.Stars))})
			}
			t.Render()

			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := ui.RenderStarChart(f, result); err != nil {
					return err
				}
				fmt.Printf("Chart written to %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&pages, "pages", "p", 0, "Maximum stargazer pages to fetch, 100 events per page (0 uses the configured cap)")
	cmd.Flags().BoolVar(&trailing, "trailing", false, "Use a fixed 5-year trailing window ending today instead of the full history")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the chart as an HTML page to this file")
	return cmd
}
