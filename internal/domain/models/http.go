package models

// Requests for data endpoints. Defined in domain for consistency and reuse.

type KlineRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	Market string `query:"market" json:"market" default:"cn" validate:"oneof=cn hk us"`
	Freq   string `query:"freq" json:"freq" default:"daily" validate:"oneof=daily weekly monthly"`
	Adjust string `query:"adjust" json:"adjust" default:"none" validate:"oneof=none qfq hfq"`
	Start  string `query:"start" json:"start" validate:"omitempty,len=8"`
	End    string `query:"end" json:"end" validate:"omitempty,len=8"`
	Limit  int    `query:"limit" json:"limit" default:"120" validate:"gte=1,lte=5000"`
}

// ComprehensiveRequest selects which sections to fetch. Include flags are
// pointers so an explicit false can be told apart from an omitted flag;
// omitted means included.
type ComprehensiveRequest struct {
	Symbol           string `query:"symbol" json:"symbol" validate:"required"`
	Market           string `query:"market" json:"market" default:"cn" validate:"oneof=cn hk us"`
	IncludeKline     *bool  `query:"include_kline" json:"include_kline"`
	IncludeFinancial *bool  `query:"include_financial" json:"include_financial"`
	IncludeMarket    *bool  `query:"include_market" json:"include_market"`
	IncludeNews      *bool  `query:"include_news" json:"include_news"`
	KlineDays        int    `query:"kline_days" json:"kline_days" default:"120" validate:"gte=1,lte=2000"`
	NewsDays         int    `query:"news_days" json:"news_days" default:"7" validate:"gte=1,lte=90"`
}

// OverviewRequest asks for a market-wide snapshot of one trading day.
// Date defaults to today.
type OverviewRequest struct {
	Date        string `query:"date" json:"date" validate:"omitempty,len=8"`
	IncludeNews *bool  `query:"include_news" json:"include_news"`
}

type IndicatorsRequest struct {
	Symbol     string   `json:"symbol" validate:"required"`
	Market     string   `json:"market" default:"cn" validate:"oneof=cn hk us"`
	Freq       string   `json:"freq" default:"daily" validate:"oneof=daily weekly monthly"`
	Start      string   `json:"start" validate:"omitempty,len=8"`
	End        string   `json:"end" validate:"omitempty,len=8"`
	Limit      int      `json:"limit" default:"250" validate:"gte=1,lte=5000"`
	Indicators []string `json:"indicators" validate:"omitempty,dive,oneof=ma rsi kdj boll macd"`
}

type StockListRequest struct {
	// Board filter passed through to the provider, e.g. main board or STAR.
	Market string `query:"market" json:"market" validate:"omitempty,max=16"`
}

type CalendarRequest struct {
	Exchange string `query:"exchange" json:"exchange" default:"SSE" validate:"oneof=SSE SZSE"`
	Start    string `query:"start" json:"start" validate:"omitempty,len=8"`
	End      string `query:"end" json:"end" validate:"omitempty,len=8"`
}
