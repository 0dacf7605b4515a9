package tushare

import (
	"context"

	"FinFlow/internal/domain/models"
)

// Announcements returns company filings with the exchange for a symbol.
func (c *Client) Announcements(ctx context.Context, symbol, start, end string) ([]models.NewsItem, error) {
	rows, err := c.query(ctx, "anns", map[string]string{
		"ts_code":    symbol,
		"start_date": start,
		"end_date":   end,
	}, "ts_code,ann_date,title,url")
	if err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.NewsItem{
			Title:    asString(row["title"]),
			Source:   "exchange",
			Datetime: asString(row["ann_date"]),
			URL:      asString(row["url"]),
		})
	}
	return items, nil
}

// MarketNews returns market-wide flash news for a date range.
func (c *Client) MarketNews(ctx context.Context, start, end string) ([]models.NewsItem, error) {
	rows, err := c.query(ctx, "news", map[string]string{
		"src":        "sina",
		"start_date": start,
		"end_date":   end,
	}, "datetime,title,content,channels")
	if err != nil {
		return nil, err
	}

	items := make([]models.NewsItem, 0, len(rows))
	for _, row := range rows {
		title := asString(row["title"])
		if title == "" {
			title = asString(row["content"])
		}
		items = append(items, models.NewsItem{
			Title:    title,
			Source:   "sina",
			Datetime: asString(row["datetime"]),
		})
	}
	return items, nil
}
