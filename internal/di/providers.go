package di

import (
	"fmt"

	"FinFlow/internal/domain/repository"
	"FinFlow/internal/domain/service"
	"FinFlow/internal/handler/api"
	"FinFlow/internal/middleware"
	internalrepo "FinFlow/internal/repository"
	"FinFlow/internal/service/sentiment"
	"FinFlow/internal/service/stream"
	"FinFlow/internal/service/tushare"
	"FinFlow/internal/service/yahoo"
	"FinFlow/internal/usecase"
	"FinFlow/pkg/config"
	xhttp "FinFlow/pkg/http"
	pkgkafka "FinFlow/pkg/kafka"
	applogger "FinFlow/pkg/logger"
	"FinFlow/pkg/metrics"
	"FinFlow/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := cfg.Log.Level
	if level == "" {
		level = "info"
	}
	format := cfg.Log.Format
	if format == "" {
		format = "console"
	}
	output := cfg.Log.Output
	if output == "" {
		output = "stdout"
	}
	return applogger.New(&applogger.Config{Level: level, Format: format, Output: output})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideTushareClient creates the tushare provider client.
func ProvideTushareClient(cfg *config.Config, log *applogger.Logger, m repository.Metrics) (*tushare.Client, error) {
	client, err := tushare.NewClient(tushare.Config{
		Token:       cfg.Tushare.Token,
		BaseURL:     cfg.Tushare.BaseURL,
		MaxRequests: cfg.Tushare.MaxRequests,
		TimeWindow:  cfg.Tushare.TimeWindow,
		Timeout:     cfg.Tushare.Timeout,
		MaxRetries:  cfg.Tushare.MaxRetries,
	}, log, m)
	if err != nil {
		return nil, fmt.Errorf("tushare client: %w", err)
	}
	return client, nil
}

// ProvideYahooClient creates the yahoo provider client.
func ProvideYahooClient(cfg *config.Config, log *applogger.Logger, m repository.Metrics) (*yahoo.Client, error) {
	client, err := yahoo.NewClient(yahoo.Config{
		BaseURL:     cfg.Yahoo.BaseURL,
		MaxRequests: cfg.Yahoo.MaxRequests,
		TimeWindow:  cfg.Yahoo.TimeWindow,
		Timeout:     cfg.Yahoo.Timeout,
	}, log, m)
	if err != nil {
		return nil, fmt.Errorf("yahoo client: %w", err)
	}
	return client, nil
}

// ProvideBarSources maps each market to its bar provider.
func ProvideBarSources(ts *tushare.Client, yh *yahoo.Client) map[string]repository.BarSource {
	return map[string]repository.BarSource{
		"cn": ts,
		"hk": ts,
		"us": yh,
	}
}

// ProvideSentimentAnalyzer creates the keyword sentiment analyzer.
func ProvideSentimentAnalyzer() service.SentimentAnalyzer {
	return sentiment.NewAnalyzer()
}

// ProvideKlineUseCase creates the kline use case.
func ProvideKlineUseCase(sources map[string]repository.BarSource, log *applogger.Logger, m repository.Metrics) *usecase.KlineUseCase {
	return usecase.NewKlineUseCase(sources, log, m)
}

// ProvideComprehensiveUseCase creates the composite fetch use case.
func ProvideComprehensiveUseCase(
	kline *usecase.KlineUseCase,
	ts *tushare.Client,
	analyzer service.SentimentAnalyzer,
	log *applogger.Logger,
	m repository.Metrics,
) *usecase.ComprehensiveUseCase {
	return usecase.NewComprehensiveUseCase(kline, ts, ts, ts, analyzer, log, m)
}

// ProvideOverviewUseCase creates the market overview use case.
func ProvideOverviewUseCase(ts *tushare.Client, analyzer service.SentimentAnalyzer, log *applogger.Logger, m repository.Metrics) *usecase.OverviewUseCase {
	return usecase.NewOverviewUseCase(ts, ts, analyzer, log, m)
}

// ProvideReferenceUseCase creates the reference data use case.
func ProvideReferenceUseCase(ts *tushare.Client, log *applogger.Logger, m repository.Metrics) *usecase.ReferenceUseCase {
	return usecase.NewReferenceUseCase(ts, log, m)
}

// ProvideIndicatorsUseCase creates the indicators use case.
func ProvideIndicatorsUseCase(kline *usecase.KlineUseCase, log *applogger.Logger, m repository.Metrics) *usecase.IndicatorsUseCase {
	return usecase.NewIndicatorsUseCase(kline, log, m)
}

// ProvideHTTPHandler creates the Echo data handler.
func ProvideHTTPHandler(
	log *applogger.Logger,
	kline *usecase.KlineUseCase,
	comprehensive *usecase.ComprehensiveUseCase,
	overview *usecase.OverviewUseCase,
	indicators *usecase.IndicatorsUseCase,
	reference *usecase.ReferenceUseCase,
) xhttp.Handler {
	return api.NewDataEchoHandler(log, kline, comprehensive, overview, indicators, reference)
}

// ProvideKafkaProducer creates a Kafka producer, or nil when the realtime
// stream is disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Stream.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideQuoteCollector wires stream, processor and publisher, or returns
// nil when the realtime stream is disabled.
func ProvideQuoteCollector(cfg *config.Config, producer *pkgkafka.Producer, log *applogger.Logger, m repository.Metrics) *usecase.QuoteCollector {
	if !cfg.Stream.Enabled || producer == nil {
		return nil
	}
	pub := internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
	proc := usecase.NewQuoteProcessor(pub, m)
	pipe := middleware.NewRealtimePipeline(proc, m)
	quoteStream := stream.New(
		cfg.Stream.WebSocketURL,
		cfg.Stream.Symbols,
		cfg.Stream.ReconnectDelay,
		cfg.Stream.PingInterval,
		log,
	)
	return usecase.NewQuoteCollector(quoteStream, proc, m, pipe)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	collector *usecase.QuoteCollector,
	producer *pkgkafka.Producer,
) *server.App {
	return server.New(cfg, log, handler, collector, producer)
}
