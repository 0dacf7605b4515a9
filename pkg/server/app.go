package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FinFlow/internal/repository"
	"FinFlow/internal/usecase"
	"FinFlow/pkg/config"
	xhttp "FinFlow/pkg/http"
	pkgkafka "FinFlow/pkg/kafka"
	applogger "FinFlow/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	handler    xhttp.Handler
	collector  *usecase.QuoteCollector
	producer   *pkgkafka.Producer
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies. collector and
// producer are nil when the realtime stream is disabled.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	collector *usecase.QuoteCollector,
	producer *pkgkafka.Producer,
) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		handler:   handler,
		collector: collector,
		producer:  producer,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ship aggregated error logs through Kafka when a broker is around.
	if a.producer != nil && a.cfg.Kafka.LogTopic != "" {
		a.log.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   time.Minute,
			CountThreshold: 100,
			Topic:          a.cfg.Kafka.LogTopic,
			Publisher:      repository.NewLogPublisher(a.producer),
		})
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if a.collector != nil {
		go func() {
			if err := a.collector.Start(ctx); err != nil {
				a.log.Error("collector error", applogger.Error(err))
			}
		}()
		a.log.Info("quote collector started", applogger.Strings("symbols", a.cfg.Stream.Symbols))
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	if a.collector != nil {
		if err := a.collector.Shutdown(ctx); err != nil {
			a.log.Warn("collector stop error", applogger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	// final log flush needs the producer, close it last
	a.log.RemoveCollector()
	if a.collector != nil {
		a.collector.Processor().Close()
	}

	a.log.Info("shutdown complete")
	return nil
}
