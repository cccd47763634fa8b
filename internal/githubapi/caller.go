// Caller chịu trách nhiệm thực hiện yêu cầu đến GitHub API.
// Nó xử lý xác thực bằng mã thông báo truy cập nếu được cung cấp.

package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/thep200/github-explorer/cfg"
	"github.com/thep200/github-explorer/pkg/log"
)

const (
	mediaTypeV3 = "application/vnd.github.v3+json"
	// star+json embeds starred_at alongside the starring user.
	mediaTypeStar = "application/vnd.github.v3.star+json"

	userAgent = "github-explorer"
)

type Caller struct {
	Logger  log.Logger
	Config  *cfg.Config
	Fetcher *Fetcher
}

func NewCaller(logger log.Logger, config *cfg.Config, fetcher *Fetcher) (*Caller, error) {
	return &Caller{
		Logger:  logger,
		Config:  config,
		Fetcher: fetcher,
	}, nil
}

func (c *Caller) headers(accept string) map[string]string {
	h := map[string]string{
		"Accept":     accept,
		"User-Agent": userAgent,
	}
	if c.Config.GithubApi.AccessToken != "" {
		h["Authorization"] = fmt.Sprintf("token %s", c.Config.GithubApi.AccessToken)
	}
	return h
}

func (c *Caller) lookupTimeout() time.Duration {
	return time.Duration(c.Config.GithubApi.LookupTimeout) * time.Second
}

func (c *Caller) lookupTtl() time.Duration {
	return time.Duration(c.Config.GithubApi.LookupCacheTtl) * time.Second
}

// getJSON fetches a lightweight endpoint and decodes it into target.
func (c *Caller) getJSON(ctx context.Context, url string, target interface{}) error {
	body, err := c.Fetcher.Get(ctx, url, c.headers(mediaTypeV3), c.lookupTimeout(), c.lookupTtl())
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return decodeError(err)
	}
	return nil
}

// User lấy thông tin của một người dùng GitHub.
func (c *Caller) User(ctx context.Context, login string) (*UserResponse, error) {
	url := fmt.Sprintf("%s/users/%s", c.Config.GithubApi.ApiUrl, login)
	c.Logger.Info(ctx, "Calling GitHub API: %s", url)

	user := &UserResponse{}
	if err := c.getJSON(ctx, url, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserRepos lấy danh sách repository công khai của một người dùng.
func (c *Caller) UserRepos(ctx context.Context, login string) ([]RepoResponse, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=100", c.Config.GithubApi.ApiUrl, login)
	c.Logger.Info(ctx, "Calling GitHub API: %s", url)

	var repos []RepoResponse
	if err := c.getJSON(ctx, url, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// SearchRepos tìm kiếm repository theo chuỗi truy vấn đã được dựng sẵn.
func (c *Caller) SearchRepos(ctx context.Context, query string) (*SearchResponse, error) {
	url := fmt.Sprintf("%s/search/repositories?q=%s&per_page=100", c.Config.GithubApi.ApiUrl, query)
	c.Logger.Info(ctx, "Calling GitHub API: %s", url)

	result := &SearchResponse{}
	if err := c.getJSON(ctx, url, result); err != nil {
		return nil, err
	}
	c.Logger.Info(ctx, "Total repositories found: %d, items received: %d", result.TotalCount, len(result.Items))
	return result, nil
}

// Repo lấy thông tin tóm tắt của một repository, bao gồm stargazers_count.
func (c *Caller) Repo(ctx context.Context, owner, repo string) (*RepoResponse, error) {
	url := fmt.Sprintf("%s/repos/%s/%s", c.Config.GithubApi.ApiUrl, owner, repo)
	c.Logger.Info(ctx, "Calling GitHub API: %s", url)

	summary := &RepoResponse{}
	if err := c.getJSON(ctx, url, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// StargazerPage lấy một trang stargazer với media type star+json.
// Body không phải mảng JSON được coi là kết thúc dữ liệu, không phải lỗi.
func (c *Caller) StargazerPage(ctx context.Context, owner, repo string, page, perPage int) (StargazerPage, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/stargazers?per_page=%d&page=%d", c.Config.GithubApi.ApiUrl, owner, repo, perPage, page)
	c.Logger.Info(ctx, "Calling GitHub API: %s", url)

	timeout := time.Duration(c.Config.GithubApi.StarPageTimeout) * time.Second
	ttl := time.Duration(c.Config.GithubApi.StarCacheTtl) * time.Second
	body, err := c.Fetcher.Get(ctx, url, c.headers(mediaTypeStar), timeout, ttl)
	if err != nil {
		return StargazerPage{}, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		c.Logger.Warn(ctx, "Unexpected stargazer response shape for %s/%s page %d", owner, repo, page)
		return StargazerPage{End: true}, nil
	}

	var items []StargazerResponse
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return StargazerPage{}, decodeError(err)
	}
	if len(items) == 0 {
		return StargazerPage{End: true}, nil
	}
	return StargazerPage{Items: items}, nil
}
