package commands

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewUserCommand creates the user lookup command.
func NewUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user <login>",
		Short: "Look up a GitHub user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService()
			if err != nil {
				return err
			}

			user, err := service.GetUser(cmd.Context(), args[0])
			if err != nil {
				color.Red("Failed to fetch user: %v", err)
				return err
			}

			name := user.Name
			if name == "" {
				name = user.Login
			}
			fmt.Println(color.New(color.Bold).Sprint(name))
			if user.Bio != "" {
				fmt.Println(user.Bio)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendRow(table.Row{"Followers", humanize.Comma(int64(user.Followers))})
			t.AppendRow(table.Row{"Following", humanize.Comma(int64(user.Following))})
			t.AppendRow(table.Row{"Public repos", humanize.Comma(int64(user.PublicRepos))})
			if user.Company != "" {
				t.AppendRow(table.Row{"Company", user.Company})
			}
			if user.Location != "" {
				t.AppendRow(table.Row{"Location", user.Location})
			}
			if user.Blog != "" {
				t.AppendRow(table.Row{"Website", user.Blog})
			}
			t.Render()
			return nil
		},
	}
	return cmd
}
