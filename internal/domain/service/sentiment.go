package service

import "FinFlow/internal/domain/models"

// SentimentAnalyzer scores a batch of headlines.
type SentimentAnalyzer interface {
	Analyze(headlines []string) models.Sentiment
}
