package tushare

import (
	"context"

	"FinFlow/internal/domain/models"
)

const stockListFields = "ts_code,symbol,name,area,industry,market,list_date"

// StockList returns currently listed symbols, optionally filtered by board.
func (c *Client) StockList(ctx context.Context, market string) ([]models.Row, error) {
	params := map[string]string{"list_status": "L"}
	if market != "" {
		params["market"] = market
	}
	rows, err := c.query(ctx, "stock_basic", params, stockListFields)
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}

// TradingCalendar returns open/closed flags per calendar day for an exchange.
func (c *Client) TradingCalendar(ctx context.Context, exchange, start, end string) ([]models.Row, error) {
	params := map[string]string{"exchange": exchange}
	if start != "" {
		params["start_date"] = start
	}
	if end != "" {
		params["end_date"] = end
	}
	rows, err := c.query(ctx, "trade_cal", params, "exchange,cal_date,is_open,pretrade_date")
	if err != nil {
		return nil, err
	}
	return toRows(rows), nil
}
