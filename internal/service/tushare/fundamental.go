package tushare

import (
	"context"

	"FinFlow/internal/domain/models"
)

// CompanyInfo returns the registration profile of the listed company.
func (c *Client) CompanyInfo(ctx context.Context, symbol string) ([]models.Row, error) {
	rows, err := c.query(ctx, "stock_company", map[string]string{
		"ts_code": symbol,
	}, "")
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

// Fundamentals returns financial indicator rows, one per reporting
// period, newest first.
func (c *Client) Fundamentals(ctx context.Context, symbol string) ([]models.Row, error) {
	rows, err := c.query(ctx, "fina_indicator", map[string]string{
		"ts_code": symbol,
	}, "")
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

// IncomeStatement returns income statement rows for the period range.
func (c *Client) IncomeStatement(ctx context.Context, symbol, start, end string) ([]models.Row, error) {
	return c.statement(ctx, "income", symbol, start, end)
}

// BalanceSheet returns balance sheet rows for the period range.
func (c *Client) BalanceSheet(ctx context.Context, symbol, start, end string) ([]models.Row, error) {
	return c.statement(ctx, "balancesheet", symbol, start, end)
}

// CashflowStatement returns cash flow statement rows for the period range.
func (c *Client) CashflowStatement(ctx context.Context, symbol, start, end string) ([]models.Row, error) {
	return c.statement(ctx, "cashflow", symbol, start, end)
}

func (c *Client) statement(ctx context.Context, api, symbol, start, end string) ([]models.Row, error) {
	params := map[string]string{"ts_code": symbol}
	if start != "" {
		params["start_date"] = start
	}
	if end != "" {
		params["end_date"] = end
	}
	rows, err := c.query(ctx, api, params, "")
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

func toRows(in []map[string]any) []models.Row {
	out := make([]models.Row, len(in))
	for i, r := range in {
		out[i] = models.Row(r)
	}
	return out
}
