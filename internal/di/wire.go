//go:build wireinject
// +build wireinject

package di

import (
	"FinFlow/pkg/config"
	"FinFlow/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Provider clients
		ProvideTushareClient,
		ProvideYahooClient,
		ProvideBarSources,
		ProvideSentimentAnalyzer,

		// Use cases
		ProvideKlineUseCase,
		ProvideComprehensiveUseCase,
		ProvideOverviewUseCase,
		ProvideIndicatorsUseCase,
		ProvideReferenceUseCase,

		// Transport
		ProvideHTTPHandler,
		ProvideKafkaProducer,
		ProvideQuoteCollector,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
