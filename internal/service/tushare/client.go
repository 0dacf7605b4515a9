package tushare

import (
	"context"
	"fmt"
	"time"

	"FinFlow/internal/domain/repository"
	"FinFlow/internal/ratelimit"
	pkghttp "FinFlow/pkg/http"
	applogger "FinFlow/pkg/logger"
)

const defaultBaseURL = "http://api.waditu.com"

// Client talks to the tushare pro HTTP API. Every call goes through the
// shared rate limiter and retries transient failures with exponential
// backoff.
type Client struct {
	http       *pkghttp.Client
	token      string
	baseURL    string
	limiter    *ratelimit.Limiter
	log        *applogger.Logger
	metrics    repository.Metrics
	maxRetries int
	retryDelay time.Duration
}

type Config struct {
	Token       string
	BaseURL     string
	MaxRequests int
	TimeWindow  time.Duration
	Timeout     time.Duration
	MaxRetries  int
}

func NewClient(cfg Config, log *applogger.Logger, metrics repository.Metrics) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("tushare token required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}

	limiter, err := ratelimit.NewLimiter(cfg.MaxRequests, cfg.TimeWindow)
	if err != nil {
		return nil, fmt.Errorf("tushare limiter: %w", err)
	}

	return &Client{
		http:       pkghttp.NewClient(pkghttp.WithTimeout(cfg.Timeout)),
		token:      cfg.Token,
		baseURL:    cfg.BaseURL,
		limiter:    limiter,
		log:        log,
		metrics:    metrics,
		maxRetries: cfg.MaxRetries,
		retryDelay: time.Second,
	}, nil
}

// apiRequest is the tushare pro wire envelope.
type apiRequest struct {
	APIName string            `json:"api_name"`
	Token   string            `json:"token"`
	Params  map[string]string `json:"params"`
	Fields  string            `json:"fields,omitempty"`
}

type apiResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Fields []string `json:"fields"`
		Items  [][]any  `json:"items"`
	} `json:"data"`
}

// query performs one rate-limited API call and decodes the column/row
// payload into field-keyed rows. An empty result set is valid data.
func (c *Client) query(ctx context.Context, apiName string, params map[string]string, fields string) ([]map[string]any, error) {
	var lastErr error
	delay := c.retryDelay

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.log.Warn("tushare retry",
				applogger.String("api", apiName),
				applogger.Int("attempt", attempt),
				applogger.Error(lastErr))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= 2
		}

		if err := c.limiter.Acquire(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
		c.metrics.RecordFetch("tushare", apiName)

		var resp apiResponse
		err := c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
			Method: pkghttp.MethodPost,
			URL:    c.baseURL,
			Body: apiRequest{
				APIName: apiName,
				Token:   c.token,
				Params:  params,
				Fields:  fields,
			},
		}, &resp)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.Code != 0 {
			lastErr = fmt.Errorf("tushare %s: code %d: %s", apiName, resp.Code, resp.Msg)
			continue
		}

		return zipRows(resp.Data.Fields, resp.Data.Items), nil
	}

	c.metrics.RecordError("tushare_" + apiName)
	return nil, fmt.Errorf("tushare %s failed after %d attempts: %w", apiName, c.maxRetries+1, lastErr)
}

// zipRows joins the column names with each item tuple. Ragged tuples keep
// the columns they have.
func zipRows(fields []string, items [][]any) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		row := make(map[string]any, len(fields))
		for i, f := range fields {
			if i < len(item) {
				row[f] = item[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// asFloat coerces a JSON cell to float64. Missing and null cells are 0.
func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	}
	return 0
}

// asString coerces a JSON cell to string.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
