package models

import "time"

// Bar is a single OHLCV record for one symbol at one trade date.
type Bar struct {
	Symbol    string  `json:"symbol"`
	TradeDate string  `json:"trade_date"` // YYYYMMDD
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	PreClose  float64 `json:"pre_close"`
	Change    float64 `json:"change"`
	PctChg    float64 `json:"pct_chg"`
	Volume    float64 `json:"vol"`
	Amount    float64 `json:"amount"`
}

// Row is a generic provider record keyed by upstream field name.
// Fundamental, valuation and news payloads keep the provider's
// column names rather than forcing a fixed schema.
type Row map[string]any

// Quote is a realtime price update from the streaming feed.
type Quote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Volume    float64   `json:"volume"`
	Timestamp time.Time `json:"timestamp"`
}

// NewsItem is one headline with its publication metadata.
type NewsItem struct {
	Title    string `json:"title"`
	Source   string `json:"source"`
	Datetime string `json:"datetime"`
	URL      string `json:"url,omitempty"`
}

// Sentiment is a keyword-based score over a batch of headlines.
type Sentiment struct {
	Score      float64 `json:"score"`      // -1..1
	Label      string  `json:"label"`      // "positive", "negative", "neutral"
	Confidence float64 `json:"confidence"` // 0..1
	Analyzed   int     `json:"analyzed"`   // number of headlines scored
}
