package starhistory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thep200/github-explorer/internal/githubapi"
	"github.com/thep200/github-explorer/pkg/log"
)

// fakeSource serves scripted pages and records how many were requested.
type fakeSource struct {
	pages    []githubapi.StargazerPage
	err      error
	requests int
}

func (f *fakeSource) StargazerPage(ctx context.Context, owner, repo string, page, perPage int) (githubapi.StargazerPage, error) {
	f.requests++
	if f.err != nil {
		return githubapi.StargazerPage{}, f.err
	}
	if page-1 < len(f.pages) {
		return f.pages[page-1], nil
	}
	return githubapi.StargazerPage{End: true}, nil
}

func fullPage(day int) githubapi.StargazerPage {
	items := make([]githubapi.StargazerResponse, PerPage)
	for i := range items {
		items[i] = githubapi.StargazerResponse{
			StarredAt: fmt.Sprintf("2023-01-%02dT12:00:00Z", day),
		}
	}
	return githubapi.StargazerPage{Items: items}
}

func newTestCollector(t *testing.T, source Source, maxPages int) *Collector {
	t.Helper()
	logger, _ := log.NewNopLogger()
	collector, err := NewCollector(logger, source, maxPages)
	require.NoError(t, err)
	return collector
}

func TestCollectStopsOnEmptyPage(t *testing.T) {
	source := &fakeSource{pages: []githubapi.StargazerPage{
		fullPage(1), fullPage(2), fullPage(3), {End: true},
	}}
	collector := newTestCollector(t, source, 10)

	outcome, err := collector.Collect(context.Background(), "golang", "go")
	require.NoError(t, err)
	assert.Len(t, outcome.Events, 300)
	assert.False(t, outcome.Truncated)
	assert.Equal(t, 4, source.requests, "collection stops right after the empty page")
}

func TestCollectHitsPageCap(t *testing.T) {
	pages := make([]githubapi.StargazerPage, 20)
	for i := range pages {
		pages[i] = fullPage(i%28 + 1)
	}
	source := &fakeSource{pages: pages}
	collector := newTestCollector(t, source, 10)

	outcome, err := collector.Collect(context.Background(), "golang", "go")
	require.NoError(t, err)
	assert.Len(t, outcome.Events, 10*PerPage)
	assert.True(t, outcome.Truncated)
	assert.Equal(t, 10, source.requests)
}

func TestCollectStopsOnShortPage(t *testing.T) {
	short := githubapi.StargazerPage{Items: []githubapi.StargazerResponse{
		{StarredAt: "2023-01-01T00:00:00Z"},
	}}
	source := &fakeSource{pages: []githubapi.StargazerPage{fullPage(1), short, fullPage(3)}}
	collector := newTestCollector(t, source, 10)

	outcome, err := collector.Collect(context.Background(), "golang", "go")
	require.NoError(t, err)
	assert.Len(t, outcome.Events, 101)
	assert.False(t, outcome.Truncated)
	assert.Equal(t, 2, source.requests)
}

func TestCollectSkipsMalformedTimestamps(t *testing.T) {
	page := githubapi.StargazerPage{Items: []githubapi.StargazerResponse{
		{StarredAt: "2023-01-01T10:00:00Z"},
		{StarredAt: "not-a-timestamp"},
		{StarredAt: "2023-01-02T11:00:00Z"},
	}}
	source := &fakeSource{pages: []githubapi.StargazerPage{page}}
	collector := newTestCollector(t, source, 10)

	outcome, err := collector.Collect(context.Background(), "golang", "go")
	require.NoError(t, err, "malformed timestamps must never abort collection")
	assert.Len(t, outcome.Events, 2)
}

func TestCollectSkipsMissingTimestamps(t *testing.T) {
	page := githubapi.StargazerPage{Items: []githubapi.StargazerResponse{
		{StarredAt: "2023-01-01T10:00:00Z"},
		{User: &githubapi.Owner{Login: "ghost"}},
	}}
	source := &fakeSource{pages: []githubapi.StargazerPage{page}}
	collector := newTestCollector(t, source, 10)

	outcome, err := collector.Collect(context.Background(), "golang", "go")
	require.NoError(t, err)
	assert.Len(t, outcome.Events, 1)
}

func TestCollectPropagatesFatalError(t *testing.T) {
	source := &fakeSource{err: &githubapi.ApiError{Kind: githubapi.KindProtocol, StatusCode: 403, Message: "Forbidden"}}
	collector := newTestCollector(t, source, 10)

	outcome, err := collector.Collect(context.Background(), "golang", "go")
	require.Error(t, err)
	assert.Nil(t, outcome)
}

// A mid-collection shape error keeps the partial result and does not flag
// truncation.
func TestCollectShapeErrorKeepsPartial(t *testing.T) {
	source := &fakeSource{pages: []githubapi.StargazerPage{fullPage(1), {End: true}, fullPage(3)}}
	collector := newTestCollector(t, source, 10)

	outcome, err := collector.Collect(context.Background(), "golang", "go")
	require.NoError(t, err)
	assert.Len(t, outcome.Events, PerPage)
	assert.False(t, outcome.Truncated)
}

func TestCollectDefaultMaxPages(t *testing.T) {
	collector := newTestCollector(t, &fakeSource{}, 0)
	assert.Equal(t, DefaultMaxPages, collector.MaxPages)
}

// An absurd page cap must be clamped, not crash or pre-allocate.
func TestCollectClampsAbsurdPageCap(t *testing.T) {
	source := &fakeSource{pages: []githubapi.StargazerPage{fullPage(1), {End: true}}}
	collector := newTestCollector(t, source, 100000000000000000)
	assert.Equal(t, MaxPagesLimit, collector.MaxPages)

	outcome, err := collector.Collect(context.Background(), "golang", "go")
	require.NoError(t, err)
	assert.Len(t, outcome.Events, PerPage)
	assert.False(t, outcome.Truncated)
}
