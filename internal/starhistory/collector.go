// Collector thu thập toàn bộ sự kiện star của một repository qua các trang
// tuần tự. Trang sau chỉ được gọi khi trang trước còn đầy dữ liệu.

package starhistory

import (
	"context"
	"time"

	"github.com/thep200/github-explorer/internal/githubapi"
	"github.com/thep200/github-explorer/pkg/log"
)

const (
	DefaultMaxPages = 10
	PerPage         = 100
	// MaxPagesLimit bounds caller-supplied page caps. GitHub lists at most
	// 400 stargazer pages (40,000 stars) regardless of per_page.
	MaxPagesLimit = 400
)

// StarEvent là một sự kiện star đã được parse, chỉ giữ lại thời điểm.
type StarEvent struct {
	StarredAt time.Time
}

// Outcome giữ danh sách sự kiện theo thứ tự trang và cờ truncated khi số
// bản ghi thu được chạm trần MaxPages*PerPage.
type Outcome struct {
	Events    []StarEvent
	Truncated bool
}

// Source is the page-level API the collector drives. githubapi.Caller
// implements it; tests substitute their own.
type Source interface {
	StargazerPage(ctx context.Context, owner, repo string, page, perPage int) (githubapi.StargazerPage, error)
}

type Collector struct {
	Logger   log.Logger
	Source   Source
	MaxPages int
}

func NewCollector(logger log.Logger, source Source, maxPages int) (*Collector, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if maxPages > MaxPagesLimit {
		maxPages = MaxPagesLimit
	}
	return &Collector{
		Logger:   logger,
		Source:   source,
		MaxPages: maxPages,
	}, nil
}

// Collect issues pages 1..MaxPages and stops early on an empty page, a short
// page, or an unexpected body shape. A transport or protocol error aborts the
// whole collection; partial progress is dropped since the caller treats any
// error as fatal for this operation.
func (c *Collector) Collect(ctx context.Context, owner, repo string) (*Outcome, error) {
	events := make([]StarEvent, 0, PerPage)

	for page := 1; page <= c.MaxPages; page++ {
		result, err := c.Source.StargazerPage(ctx, owner, repo, page, PerPage)
		if err != nil {
			c.Logger.Error(ctx, "Cannot fetch stargazer page %d of %s/%s: %v", page, owner, repo, err)
			return nil, err
		}
		if result.End {
			break
		}

		for _, item := range result.Items {
			if item.StarredAt == "" {
				// Record without a timestamp does not count anywhere.
				continue
			}
			starredAt, err := time.Parse(time.RFC3339, item.StarredAt)
			if err != nil {
				c.Logger.Debug(ctx, "Skipping malformed starred_at %q", item.StarredAt)
				continue
			}
			events = append(events, StarEvent{StarredAt: starredAt})
		}

		// A short page means there is no further data upstream.
		if len(result.Items) < PerPage {
			break
		}
	}

	outcome := &Outcome{
		Events:    events,
		Truncated: len(events) >= c.MaxPages*PerPage,
	}
	if outcome.Truncated {
		c.Logger.Warn(ctx, "Star collection for %s/%s hit the %d page cap, history is incomplete", owner, repo, c.MaxPages)
	}
	return outcome, nil
}
