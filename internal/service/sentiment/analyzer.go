package sentiment

import (
	"math"
	"strings"

	"FinFlow/internal/domain/models"
)

// Analyzer scores headlines with a keyword lexicon. Positive and negative
// hits push each headline's score toward +1 or -1; the batch result is
// the mean over non-empty headlines.
type Analyzer struct {
	positive []string
	negative []string
}

// NewAnalyzer creates an analyzer with the default CN/EN lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		positive: []string{
			"上涨", "利好", "增长", "盈利", "突破", "买入", "推荐",
			"surge", "beat", "growth", "profit", "upgrade", "buy", "record",
		},
		negative: []string{
			"下跌", "利空", "亏损", "风险", "下调", "卖出", "减持",
			"drop", "miss", "loss", "risk", "downgrade", "sell", "fraud",
		},
	}
}

// Analyze implements service.SentimentAnalyzer.
func (a *Analyzer) Analyze(headlines []string) models.Sentiment {
	var sum, confSum float64
	analyzed := 0

	for _, h := range headlines {
		if strings.TrimSpace(h) == "" {
			continue
		}
		score := a.scoreOne(h)
		sum += score
		if score != 0 {
			confSum += math.Abs(score)
		} else {
			confSum += 0.5
		}
		analyzed++
	}

	if analyzed == 0 {
		return models.Sentiment{Label: "neutral", Confidence: 0, Analyzed: 0}
	}

	mean := sum / float64(analyzed)
	label := "neutral"
	switch {
	case mean > 0:
		label = "positive"
	case mean < 0:
		label = "negative"
	}

	return models.Sentiment{
		Score:      mean,
		Label:      label,
		Confidence: confSum / float64(analyzed),
		Analyzed:   analyzed,
	}
}

// scoreOne maps keyword hit counts to [-1, 1]. A tie is neutral.
func (a *Analyzer) scoreOne(text string) float64 {
	lower := strings.ToLower(text)

	var pos, neg int
	for _, kw := range a.positive {
		if strings.Contains(lower, kw) {
			pos++
		}
	}
	for _, kw := range a.negative {
		if strings.Contains(lower, kw) {
			neg++
		}
	}

	switch {
	case pos > neg:
		return math.Min(float64(pos)/float64(len(a.positive)), 1)
	case neg > pos:
		return -math.Min(float64(neg)/float64(len(a.negative)), 1)
	default:
		return 0
	}
}
