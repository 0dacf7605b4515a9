package tushare

import (
	"context"
	"fmt"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
)

const barFields = "ts_code,trade_date,open,high,low,close,pre_close,change,pct_chg,vol,amount"

func apiForFreq(freq repository.Freq) (string, error) {
	switch freq {
	case repository.FreqDaily:
		return "daily", nil
	case repository.FreqWeekly:
		return "weekly", nil
	case repository.FreqMonthly:
		return "monthly", nil
	default:
		return "", fmt.Errorf("unsupported frequency %q", freq)
	}
}

// Bars implements repository.BarSource. Tushare returns newest-first;
// callers normalize ordering.
func (c *Client) Bars(ctx context.Context, symbol string, freq repository.Freq, start, end string) ([]models.Bar, error) {
	api, err := apiForFreq(freq)
	if err != nil {
		return nil, err
	}

	rows, err := c.query(ctx, api, map[string]string{
		"ts_code":    symbol,
		"start_date": start,
		"end_date":   end,
	}, barFields)
	if err != nil {
		return nil, err
	}

	bars := make([]models.Bar, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, models.Bar{
			Symbol:    asString(row["ts_code"]),
			TradeDate: asString(row["trade_date"]),
			Open:      asFloat(row["open"]),
			High:      asFloat(row["high"]),
			Low:       asFloat(row["low"]),
			Close:     asFloat(row["close"]),
			PreClose:  asFloat(row["pre_close"]),
			Change:    asFloat(row["change"]),
			PctChg:    asFloat(row["pct_chg"]),
			Volume:    asFloat(row["vol"]),
			Amount:    asFloat(row["amount"]),
		})
	}
	return bars, nil
}

// AdjustedBars merges adjustment factors into raw bars. adjust "qfq"
// rebases prices to the latest factor, "hfq" multiplies by the raw factor.
func (c *Client) AdjustedBars(ctx context.Context, symbol string, freq repository.Freq, start, end, adjust string) ([]models.Bar, error) {
	if adjust != "qfq" && adjust != "hfq" {
		return nil, fmt.Errorf("unsupported adjust %q", adjust)
	}

	bars, err := c.Bars(ctx, symbol, freq, start, end)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return bars, nil
	}

	factors, err := c.adjFactors(ctx, symbol, start, end)
	if err != nil {
		return nil, err
	}
	if len(factors) == 0 {
		return bars, nil
	}

	// Latest factor rebases qfq so the most recent close stays unadjusted.
	latest := 0.0
	latestDate := ""
	for date, f := range factors {
		if date > latestDate {
			latestDate = date
			latest = f
		}
	}

	out := make([]models.Bar, len(bars))
	for i, b := range bars {
		f, ok := factors[b.TradeDate]
		if !ok {
			out[i] = b
			continue
		}
		scale := f
		if adjust == "qfq" && latest > 0 {
			scale = f / latest
		}
		b.Open *= scale
		b.High *= scale
		b.Low *= scale
		b.Close *= scale
		b.PreClose *= scale
		b.Change = b.Close - b.PreClose
		out[i] = b
	}
	return out, nil
}

func (c *Client) adjFactors(ctx context.Context, symbol, start, end string) (map[string]float64, error) {
	rows, err := c.query(ctx, "adj_factor", map[string]string{
		"ts_code":    symbol,
		"start_date": start,
		"end_date":   end,
	}, "ts_code,trade_date,adj_factor")
	if err != nil {
		return nil, err
	}
	factors := make(map[string]float64, len(rows))
	for _, row := range rows {
		factors[asString(row["trade_date"])] = asFloat(row["adj_factor"])
	}
	return factors, nil
}
