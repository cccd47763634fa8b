// Fetcher thực hiện một GET request duy nhất với timeout, trả về body JSON.
// Mọi lỗi transport/protocol được chuẩn hoá thành ApiError.

package githubapi

import (
	"context"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/thep200/github-explorer/pkg/cache"
	"github.com/thep200/github-explorer/pkg/log"
)

type Fetcher struct {
	Logger log.Logger
	Cache  *cache.Cache
}

func NewFetcher(logger log.Logger, cache *cache.Cache) (*Fetcher, error) {
	return &Fetcher{
		Logger: logger,
		Cache:  cache,
	}, nil
}

// cacheKey joins the URL with the sorted header set so the same URL requested
// with a different media type does not collide.
func cacheKey(url string, headers map[string]string) string {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(url)
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(headers[k])
	}
	return b.String()
}

// Get performs the request and returns the raw body. Responses are served
// from the cache when a fresh entry exists for the same URL+headers.
func (f *Fetcher) Get(ctx context.Context, url string, headers map[string]string, timeout time.Duration, ttl time.Duration) ([]byte, error) {
	key := cacheKey(url, headers)
	if body, ok := f.Cache.Get(key); ok {
		f.Logger.Debug(ctx, "Cache hit: %s", url)
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, transportError(err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{
		Timeout: timeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		f.Logger.Error(ctx, "Cannot send request: %v", err)
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// resp.Status is "403 Forbidden"; keep only the reason phrase.
		reason := resp.Status
		if idx := strings.Index(resp.Status, " "); idx >= 0 {
			reason = resp.Status[idx+1:]
		}
		f.Logger.Warn(ctx, "Non-2xx response from %s: %s", url, resp.Status)
		return nil, protocolError(resp.StatusCode, reason)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	f.Cache.Set(key, body, ttl)
	return body, nil
}
