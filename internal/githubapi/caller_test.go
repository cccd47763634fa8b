package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thep200/github-explorer/cfg"
	"github.com/thep200/github-explorer/pkg/cache"
	"github.com/thep200/github-explorer/pkg/log"
)

func newTestCaller(t *testing.T, apiUrl string) *Caller {
	t.Helper()
	loader, _ := cfg.NewMockLoader()
	config, err := loader.Load()
	require.NoError(t, err)
	config.GithubApi.ApiUrl = apiUrl

	logger, _ := log.NewNopLogger()
	fetcher, _ := NewFetcher(logger, cache.NewCache())
	caller, err := NewCaller(logger, config, fetcher)
	require.NoError(t, err)
	return caller
}

func TestCallerUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		fmt.Fprint(w, `{"login":"octocat","id":1,"name":"The Octocat","followers":42,"public_repos":8}`)
	}))
	defer srv.Close()

	caller := newTestCaller(t, srv.URL)
	user, err := caller.User(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "The Octocat", user.Name)
	assert.Equal(t, 42, user.Followers)
}

func TestCallerRepoSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/golang/go", r.URL.Path)
		fmt.Fprint(w, `{"id":23096959,"name":"go","full_name":"golang/go","stargazers_count":120000}`)
	}))
	defer srv.Close()

	caller := newTestCaller(t, srv.URL)
	repo, err := caller.Repo(context.Background(), "golang", "go")
	require.NoError(t, err)
	assert.Equal(t, int64(120000), repo.StargazersCount)
}

func TestCallerStargazerPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/golang/go/stargazers", r.URL.Path)
		assert.Equal(t, "application/vnd.github.v3.star+json", r.Header.Get("Accept"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		fmt.Fprint(w, `[{"starred_at":"2023-01-01T10:00:00Z","user":{"login":"a"}},{"starred_at":"2023-01-02T11:00:00Z","user":{"login":"b"}}]`)
	}))
	defer srv.Close()

	caller := newTestCaller(t, srv.URL)
	page, err := caller.StargazerPage(context.Background(), "golang", "go", 2, 100)
	require.NoError(t, err)
	assert.False(t, page.End)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "2023-01-01T10:00:00Z", page.Items[0].StarredAt)
}

func TestCallerStargazerPageEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	caller := newTestCaller(t, srv.URL)
	page, err := caller.StargazerPage(context.Background(), "golang", "go", 1, 100)
	require.NoError(t, err)
	assert.True(t, page.End)
	assert.Empty(t, page.Items)
}

func TestCallerStargazerPageUnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// GitHub returns an object, not an array, for some failure modes.
		fmt.Fprint(w, `{"message":"Validation Failed"}`)
	}))
	defer srv.Close()

	caller := newTestCaller(t, srv.URL)
	page, err := caller.StargazerPage(context.Background(), "golang", "go", 1, 100)
	require.NoError(t, err, "a non-array body is a graceful stop, not an error")
	assert.True(t, page.End)
}
