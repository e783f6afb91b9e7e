package searchad

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"kwlab-go-backend/config"
	"kwlab-go-backend/pkg/entity/model"
	"kwlab-go-backend/pkg/usecase/usecase/keypool"
	"kwlab-go-backend/pkg/util/numparse"

	"go.uber.org/zap"
)

const keywordToolPath = "/keywordstool"

// MaxHintKeywords is the provider-documented limit on comma-joined hint
// keywords per call.
const MaxHintKeywords = 5

// keywordToolItem is the raw provider shape. Numeric fields may arrive as
// numbers or as decorated strings ("< 10"), so they are decoded loosely.
type keywordToolItem struct {
	RelKeyword             string      `json:"relKeyword"`
	MonthlyPcQcCnt         interface{} `json:"monthlyPcQcCnt"`
	MonthlyMobileQcCnt     interface{} `json:"monthlyMobileQcCnt"`
	MonthlyAvePcClkCnt     interface{} `json:"monthlyAvePcClkCnt"`
	MonthlyAveMobileClkCnt interface{} `json:"monthlyAveMobileClkCnt"`
	MonthlyAvePcCtr        interface{} `json:"monthlyAvePcCtr"`
	MonthlyAveMobileCtr    interface{} `json:"monthlyAveMobileCtr"`
	PlAvgDepth             interface{} `json:"plAvgDepth"`
	CompIdx                string      `json:"compIdx"`
}

type keywordToolResponse struct {
	KeywordList []keywordToolItem `json:"keywordList"`
}

// Client calls the SearchAd keyword tool using credentials from a key pool.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pool       *keypool.Pool
	logger     *zap.SugaredLogger
}

// NewClient creates a SearchAd client from config.
func NewClient(pool *keypool.Pool, logger *zap.SugaredLogger) *Client {
	cfg := config.C.SearchAd

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		pool:   pool,
		logger: logger,
	}
}

// RelatedKeywords expands up to MaxHintKeywords seed terms into related
// keywords. It selects a fresh credential per call, signs the request, and
// classifies failures so the retry layer can react. The raw response body
// is returned alongside the normalized result for archival. An empty result
// set is a valid, non-error outcome.
func (c *Client) RelatedKeywords(ctx context.Context, seeds []string) ([]*model.RelatedKeyword, []byte, error) {
	hints := make([]string, 0, len(seeds))
	for _, s := range seeds {
		s = strings.TrimSpace(s)
		if s != "" {
			hints = append(hints, s)
		}
	}
	if len(hints) == 0 {
		return nil, nil, model.NewInvalidParamError(fmt.Errorf("no seed keywords given"))
	}
	if len(hints) > MaxHintKeywords {
		return nil, nil, model.NewInvalidParamError(fmt.Errorf("at most %d hint keywords per call, got %d", MaxHintKeywords, len(hints)))
	}

	cred, err := c.pool.Select()
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+keywordToolPath, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := url.Values{}
	q.Set("hintKeywords", strings.Join(hints, ","))
	q.Set("showDetail", "1")
	req.URL.RawQuery = q.Encode()

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	req.Header.Set("X-Timestamp", timestamp)
	req.Header.Set("X-API-KEY", cred.APIKey)
	req.Header.Set("X-Customer", cred.CustomerID)
	req.Header.Set("X-Signature", Sign(timestamp, http.MethodGet, keywordToolPath, cred.Secret))
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, &model.TransientError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &model.TransientError{Err: err}
	}

	c.logger.Debugw("keyword tool response",
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
		"bytes", len(body),
		"credential", cred.Name,
	)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, body, &model.RateLimitedError{RetryAfter: retryAfter}
	case resp.StatusCode == http.StatusForbidden:
		c.pool.DeactivateAuthFailure(cred)
		return nil, body, &model.AuthInvalidError{CredentialName: cred.Name}
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, body, &model.TransientError{Status: resp.StatusCode, Err: fmt.Errorf("%s", strings.TrimSpace(string(body)))}
	case resp.StatusCode != http.StatusOK:
		return nil, body, fmt.Errorf("keyword tool returned status %d: %s", resp.StatusCode, string(body))
	}

	c.pool.RecordUsage(cred, 1)

	var parsed keywordToolResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Malformed body on a 200 is treated as an empty result set.
		c.logger.Warnw("keyword tool returned unparseable body, treating as empty", "error", err)
		return nil, body, nil
	}

	out := make([]*model.RelatedKeyword, 0, len(parsed.KeywordList))
	for _, item := range parsed.KeywordList {
		kw := normalize(item)
		if kw.Keyword == "" {
			continue
		}
		out = append(out, kw)
	}
	return out, body, nil
}

// normalize converts a raw provider entry into the internal shape.
// avg_monthly_search is always the sum of the two normalized search-volume
// fields, never a provider-supplied total.
func normalize(item keywordToolItem) *model.RelatedKeyword {
	pc := numparse.Count(item.MonthlyPcQcCnt)
	mobile := numparse.Count(item.MonthlyMobileQcCnt)

	return &model.RelatedKeyword{
		Keyword:             strings.TrimSpace(item.RelKeyword),
		MonthlyPcSearch:     pc,
		MonthlyMobileSearch: mobile,
		AvgMonthlySearch:    pc + mobile,
		MonthlyClickPc:      numparse.Rate(item.MonthlyAvePcClkCnt),
		MonthlyClickMobile:  numparse.Rate(item.MonthlyAveMobileClkCnt),
		CtrPc:               numparse.Rate(item.MonthlyAvePcCtr),
		CtrMobile:           numparse.Rate(item.MonthlyAveMobileCtr),
		AdDepth:             numparse.Count(item.PlAvgDepth),
		Competition:         item.CompIdx,
	}
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
