package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
	"FinFlow/internal/ratelimit"
	pkghttp "FinFlow/pkg/http"
	applogger "FinFlow/pkg/logger"
	"FinFlow/pkg/util"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches US market bars from the Yahoo Finance chart API.
type Client struct {
	http    *pkghttp.Client
	baseURL string
	limiter *ratelimit.Limiter
	log     *applogger.Logger
	metrics repository.Metrics
}

type Config struct {
	BaseURL     string
	MaxRequests int
	TimeWindow  time.Duration
	Timeout     time.Duration
}

func NewClient(cfg Config, log *applogger.Logger, metrics repository.Metrics) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = 60
	}
	if cfg.TimeWindow <= 0 {
		cfg.TimeWindow = time.Minute
	}

	limiter, err := ratelimit.NewLimiter(cfg.MaxRequests, cfg.TimeWindow)
	if err != nil {
		return nil, fmt.Errorf("yahoo limiter: %w", err)
	}

	return &Client{
		http:    pkghttp.NewClient(pkghttp.WithTimeout(cfg.Timeout)),
		baseURL: cfg.BaseURL,
		limiter: limiter,
		log:     log,
		metrics: metrics,
	}, nil
}

// chartResponse is the envelope of the Yahoo chart API. OHLCV arrays use
// interface{} cells because Yahoo emits nulls for holidays.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []any `json:"open"`
					High   []any `json:"high"`
					Low    []any `json:"low"`
					Close  []any `json:"close"`
					Volume []any `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func intervalForFreq(freq repository.Freq) (string, error) {
	switch freq {
	case repository.FreqDaily:
		return "1d", nil
	case repository.FreqWeekly:
		return "1wk", nil
	case repository.FreqMonthly:
		return "1mo", nil
	default:
		return "", fmt.Errorf("unsupported frequency %q", freq)
	}
}

// Bars implements repository.BarSource. Null bars (holidays) are skipped
// and the result is ascending by trade date. No data is an empty slice,
// not an error.
func (c *Client) Bars(ctx context.Context, symbol string, freq repository.Freq, start, end string) ([]models.Bar, error) {
	interval, err := intervalForFreq(freq)
	if err != nil {
		return nil, err
	}
	period1, period2, err := periodRange(start, end)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	c.metrics.RecordFetch("yahoo", "chart")

	var chart chartResponse
	err = c.http.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method:  pkghttp.MethodGet,
		URL:     fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol)),
		Headers: map[string]string{"User-Agent": "Mozilla/5.0"},
		QueryParams: map[string][]string{
			"interval": {interval},
			"period1":  {strconv.FormatInt(period1, 10)},
			"period2":  {strconv.FormatInt(period2, 10)},
		},
	}, &chart)
	if err != nil {
		c.metrics.RecordError("yahoo_chart")
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	if chart.Chart.Error != nil {
		c.metrics.RecordError("yahoo_chart")
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return []models.Bar{}, nil
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return []models.Bar{}, nil
	}
	quote := result.Indicators.Quote[0]

	bars := make([]models.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := toFloat(at(quote.Open, i))
		h := toFloat(at(quote.High, i))
		l := toFloat(at(quote.Low, i))
		cl := toFloat(at(quote.Close, i))
		if o == 0 && h == 0 && l == 0 && cl == 0 {
			continue // null bar (holiday etc.)
		}
		bars = append(bars, models.Bar{
			Symbol:    symbol,
			TradeDate: time.Unix(ts, 0).UTC().Format(util.DateCompact),
			Open:      o,
			High:      h,
			Low:       l,
			Close:     cl,
			Volume:    toFloat(at(quote.Volume, i)),
		})
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].TradeDate < bars[j].TradeDate })
	return bars, nil
}

func at(xs []any, i int) any {
	if i < len(xs) {
		return xs[i]
	}
	return nil
}

// periodRange converts compact trade dates to the unix bounds the chart
// API expects. The end bound is exclusive, so it advances one day.
func periodRange(start, end string) (int64, int64, error) {
	startT, err := util.ParseTradeDate(start)
	if err != nil {
		return 0, 0, fmt.Errorf("start: %w", err)
	}
	endT, err := util.ParseTradeDate(end)
	if err != nil {
		return 0, 0, fmt.Errorf("end: %w", err)
	}
	return startT.Unix(), endT.AddDate(0, 0, 1).Unix(), nil
}
