package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarsRejectsBadRepoRef(t *testing.T) {
	cmd := NewStarsCommand()
	err := cmd.RunE(cmd, []string{"no-slash-here"})
	require.ErrorIs(t, err, ErrInvalidRepoRef)

	err = cmd.RunE(cmd, []string{"/repo"})
	require.ErrorIs(t, err, ErrInvalidRepoRef)
}

func TestStarsFlagDefaults(t *testing.T) {
	cmd := NewStarsCommand()
	pages, err := cmd.Flags().GetInt("pages")
	require.NoError(t, err)
	assert.Equal(t, 0, pages, "0 defers to the configured page cap")

	trailing, err := cmd.Flags().GetBool("trailing")
	require.NoError(t, err)
	assert.False(t, trailing)
}

func TestRootHasSubcommands(t *testing.T) {
	root := NewRootCommand()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "user")
	assert.Contains(t, names, "search")
	assert.Contains(t, names, "repos")
	assert.Contains(t, names, "stars")
}
