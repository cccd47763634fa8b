// Gói explorer là lớp dịch vụ phía trên GitHub API: tra cứu người dùng,
// tìm kiếm repository xếp hạng theo star và dựng lịch sử star tích luỹ.

package explorer

import (
	"context"
	"sort"
	"strings"

	"github.com/thep200/github-explorer/cfg"
	"github.com/thep200/github-explorer/internal/githubapi"
	"github.com/thep200/github-explorer/internal/starhistory"
	"github.com/thep200/github-explorer/pkg/log"
)

const (
	// MinStars is the fixed floor applied to search and listing results.
	MinStars = 1000
	// DefaultTopN bounds ranked result lists when the caller passes no limit.
	DefaultTopN = 10
)

// languageAliases maps UI language names onto what GitHub reports.
// Flutter repos carry language "Dart".
var languageAliases = map[string]string{
	"Flutter": "Dart",
}

type Service struct {
	Logger log.Logger
	Config *cfg.Config
	Api    *githubapi.Caller
}

func NewService(logger log.Logger, config *cfg.Config, api *githubapi.Caller) (*Service, error) {
	return &Service{
		Logger: logger,
		Config: config,
		Api:    api,
	}, nil
}

// StarHistoryResult is what hosts render: the cumulative series plus the
// truncation warning and the repository's own reported total.
type StarHistoryResult struct {
	Owner     string             `json:"owner"`
	Repo      string             `json:"repo"`
	Series    starhistory.Series `json:"series"`
	Truncated bool               `json:"truncated"`
	Total     int                `json:"total"`
}

// GetUser tra cứu hồ sơ công khai của một người dùng.
func (s *Service) GetUser(ctx context.Context, login string) (*githubapi.UserResponse, error) {
	return s.Api.User(ctx, login)
}

// SearchTop tìm repository theo keyword/language, cố định stars:>=1000,
// trả về topN kết quả xếp theo số star giảm dần.
func (s *Service) SearchTop(ctx context.Context, keyword, language string, topN int) ([]githubapi.RepoResponse, error) {
	query := buildSearchQuery(keyword, language)
	result, err := s.Api.SearchRepos(ctx, query)
	if err != nil {
		return nil, err
	}
	return rankByStars(result.Items, topN), nil
}

// TopUserRepos liệt kê repository công khai của một người dùng, lọc theo
// ngôn ngữ và sàn star, xếp theo star giảm dần.
func (s *Service) TopUserRepos(ctx context.Context, login, language string, topN int) ([]githubapi.RepoResponse, error) {
	repos, err := s.Api.UserRepos(ctx, login)
	if err != nil {
		return nil, err
	}

	match := resolveLanguage(language)
	filtered := make([]githubapi.RepoResponse, 0, len(repos))
	for _, r := range repos {
		if match != "" && !strings.EqualFold(r.Language, match) {
			continue
		}
		if r.StargazersCount < MinStars {
			continue
		}
		filtered = append(filtered, r)
	}
	return rankByStars(filtered, topN), nil
}

// StarHistory chạy toàn bộ pipeline: thu thập, gom theo ngày, dựng chuỗi
// tích luỹ và đối chiếu với tổng số star do GitHub báo cáo khi bị cắt trang.
func (s *Service) StarHistory(ctx context.Context, owner, repo string, maxPages int, mode starhistory.WindowMode) (*StarHistoryResult, error) {
	if maxPages <= 0 {
		maxPages = s.Config.GithubApi.StarPageCap
	}
	collector, err := starhistory.NewCollector(s.Logger, s.Api, maxPages)
	if err != nil {
		return nil, err
	}

	outcome, err := collector.Collect(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	buckets := starhistory.BucketByDay(outcome.Events)
	series := starhistory.BuildSeries(buckets, mode)

	// The authoritative total only matters for reconciling a capped series;
	// failing to fetch it degrades to no reconciliation.
	total := 0
	if summary, err := s.Api.Repo(ctx, owner, repo); err != nil {
		s.Logger.Warn(ctx, "Cannot fetch repo summary for %s/%s: %v", owner, repo, err)
	} else {
		total = int(summary.StargazersCount)
	}

	series, warn := starhistory.Reconcile(series, outcome.Truncated, total)
	return &StarHistoryResult{
		Owner:     owner,
		Repo:      repo,
		Series:    series,
		Truncated: warn,
		Total:     total,
	}, nil
}

func resolveLanguage(language string) string {
	if language == "" || language == "All" {
		return ""
	}
	if mapped, ok := languageAliases[language]; ok {
		return mapped
	}
	return language
}

func buildSearchQuery(keyword, language string) string {
	parts := make([]string, 0, 3)
	if keyword != "" {
		parts = append(parts, strings.ReplaceAll(keyword, " ", "+"))
	}
	if lang := resolveLanguage(language); lang != "" {
		parts = append(parts, "language:"+lang)
	}
	parts = append(parts, "stars:>=1000")
	return strings.Join(parts, "+")
}

func rankByStars(repos []githubapi.RepoResponse, topN int) []githubapi.RepoResponse {
	if topN <= 0 {
		topN = DefaultTopN
	}
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].StargazersCount > repos[j].StargazersCount
	})
	if len(repos) > topN {
		repos = repos[:topN]
	}
	return repos
}
