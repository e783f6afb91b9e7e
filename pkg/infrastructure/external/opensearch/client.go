// Package opensearch calls the Open API document search endpoints
// (blog/cafe/web/news) for per-channel result totals.
package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kwlab-go-backend/config"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/usecase/keypool"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Channel is one document search vertical.
type Channel string

const (
	ChannelBlog Channel = "blog"
	ChannelCafe Channel = "cafearticle"
	ChannelWeb  Channel = "webkr"
	ChannelNews Channel = "news"
)

// Channels lists the verticals in collection order.
func Channels() []Channel {
	return []Channel{ChannelBlog, ChannelCafe, ChannelWeb, ChannelNews}
}

type searchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

type searchResponse struct {
	Total int          `json:"total"`
	Start int          `json:"start"`
	Items []searchItem `json:"items"`
}

// SearchItem is one sanitized result entry of the integrated search variant.
type SearchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// SearchResult is the integrated search response for one channel.
type SearchResult struct {
	Total int          `json:"total"`
	Items []SearchItem `json:"items"`
}

// Client calls the Open API search endpoints with credentials from a key
// pool. Requests are paced by a shared rate limiter because four channel
// calls fan out per keyword.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pool       *keypool.Pool
	limiter    *rate.Limiter
	sanitizer  *bluemonday.Policy
	logger     *zap.SugaredLogger
}

// NewClient creates an Open API client from config.
func NewClient(pool *keypool.Pool, logger *zap.SugaredLogger) *Client {
	cfg := config.C.OpenAPI

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 8
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		pool:      pool,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), perSecond),
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// Total returns the reported document total of one channel for a keyword.
// Only one result row is requested since the total is all we need.
func (c *Client) Total(ctx context.Context, channel Channel, keyword string) (int, error) {
	res, err := c.search(ctx, channel, keyword, 1)
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}

// Search is the richer integrated-search variant. Markup is stripped from
// every title and description before the result leaves this package.
func (c *Client) Search(ctx context.Context, channel Channel, keyword string, display int) (*SearchResult, error) {
	return c.search(ctx, channel, keyword, display)
}

func (c *Client) search(ctx context.Context, channel Channel, keyword string, display int) (*SearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, model.NewInvalidParamError(fmt.Errorf("empty keyword"))
	}
	if display < 1 {
		display = 1
	}

	cred, err := c.pool.Select()
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s.json", c.baseURL, channel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("display", fmt.Sprintf("%d", display))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("X-Naver-Client-Id", cred.APIKey)
	req.Header.Set("X-Naver-Client-Secret", cred.Secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &model.TransientError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.TransientError{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &model.RateLimitedError{}
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusUnauthorized:
		c.pool.DeactivateAuthFailure(cred)
		return nil, &model.AuthInvalidError{CredentialName: cred.Name}
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, &model.TransientError{Status: resp.StatusCode, Err: fmt.Errorf("%s", strings.TrimSpace(string(body)))}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s search returned status %d: %s", channel, resp.StatusCode, string(body))
	}

	c.pool.RecordUsage(cred, 1)

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Warnw("open search returned unparseable body, treating as zero",
			"channel", channel, "error", err)
		return &SearchResult{}, nil
	}

	out := &SearchResult{Total: parsed.Total}
	for _, item := range parsed.Items {
		out.Items = append(out.Items, SearchItem{
			Title:       c.sanitizer.Sanitize(item.Title),
			Link:        item.Link,
			Description: c.sanitizer.Sanitize(item.Description),
		})
	}
	return out, nil
}
