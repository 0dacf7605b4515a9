package tushare

import (
	"context"

	"FinFlow/internal/domain/models"
)

// MarketMetrics returns daily_basic valuation and turnover metrics per
// trade date, newest first.
func (c *Client) MarketMetrics(ctx context.Context, symbol, start, end string) ([]models.Row, error) {
	rows, err := c.query(ctx, "daily_basic", map[string]string{
		"ts_code":    symbol,
		"start_date": start,
		"end_date":   end,
	}, "")
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

// MoneyFlow returns per-order-size capital flow rows for the symbol.
func (c *Client) MoneyFlow(ctx context.Context, symbol, start, end string) ([]models.Row, error) {
	rows, err := c.query(ctx, "moneyflow", map[string]string{
		"ts_code":    symbol,
		"start_date": start,
		"end_date":   end,
	}, "")
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

// MarginDetail returns per-symbol margin trading balances for one day.
func (c *Client) MarginDetail(ctx context.Context, date string) ([]models.Row, error) {
	rows, err := c.query(ctx, "margin_detail", map[string]string{
		"trade_date": date,
	}, "")
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

// TopList returns the daily dragon-tiger list of unusually traded symbols.
func (c *Client) TopList(ctx context.Context, date string) ([]models.Row, error) {
	rows, err := c.query(ctx, "top_list", map[string]string{
		"trade_date": date,
	}, "")
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

// TopInst returns institutional seats behind the dragon-tiger list.
func (c *Client) TopInst(ctx context.Context, date string) ([]models.Row, error) {
	rows, err := c.query(ctx, "top_inst", map[string]string{
		"trade_date": date,
	}, "")
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}
