package commands

import (
	"github.com/spf13/cobra"

	"github.com/thep200/github-explorer/cfg"
	"github.com/thep200/github-explorer/internal/explorer"
	"github.com/thep200/github-explorer/internal/githubapi"
	"github.com/thep200/github-explorer/pkg/cache"
	"github.com/thep200/github-explorer/pkg/log"
)

// NewRootCommand creates the explorer CLI root.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "explorer",
		Short: "Explore GitHub users, repositories and star history",
		Long: `Explore GitHub through its public REST API: look up users, search
repositories by keyword/language ranked by stars, and plot a repository's
cumulative star history.`,
		SilenceUsage: true,
	}

	root.AddCommand(NewUserCommand())
	root.AddCommand(NewSearchCommand())
	root.AddCommand(NewReposCommand())
	root.AddCommand(NewStarsCommand())
	return root
}

// newService wires the service stack. The yaml config is optional for the
// CLI; defaults cover the public API.
func newService() (*explorer.Service, error) {
	logger, _ := log.NewCslLogger()

	viperLoader, _ := cfg.NewViperLoader()
	config, err := viperLoader.Load()
	if err != nil {
		mockLoader, _ := cfg.NewMockLoader()
		config, err = mockLoader.Load()
		if err != nil {
			return nil, err
		}
	}

	fetcher, err := githubapi.NewFetcher(logger, cache.NewCache())
	if err != nil {
		return nil, err
	}
	api, err := githubapi.NewCaller(logger, config, fetcher)
	if err != nil {
		return nil, err
	}
	return explorer.NewService(logger, config, api)
}
