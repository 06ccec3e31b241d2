// Command monitor runs the storm monitoring service: it sweeps the roster of
// monitored cities on an interval, persists detected storm events, and feeds
// them to the downstream agent topic.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/treehub/storm-monitor/internal/adapter/clickhouse"
	httpadapter "github.com/treehub/storm-monitor/internal/adapter/http"
	kafkaadapter "github.com/treehub/storm-monitor/internal/adapter/kafka"
	"github.com/treehub/storm-monitor/internal/adapter/openweather"
	"github.com/treehub/storm-monitor/internal/config"
	"github.com/treehub/storm-monitor/internal/observability"
	"github.com/treehub/storm-monitor/internal/scanner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	source := openweather.NewClient(cfg.OWMAPIKey, cfg.OWMBaseURL, cfg.FetchTimeout, metrics, logger)

	store, err := clickhouse.New(cfg.ClickHouseAddr, cfg.ClickHouseDatabase, cfg.ClickHouseUsername, cfg.ClickHousePassword, logger)
	if err != nil {
		logger.Error("failed to connect to event store", "error", err)
		os.Exit(1)
	}

	var publisher scanner.EventPublisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic, logger)
		publisher = kafkaPublisher
		logger.Info("kafka event feed enabled", "topic", cfg.KafkaEventsTopic)
	} else {
		logger.Info("kafka event feed disabled")
	}

	s := scanner.New(source, store, publisher, cfg.Locations, cfg.ForecastPoints, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, s, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := s.Run(ctx, cfg.ScanInterval); err != nil {
			logger.Error("scanner error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}
	if err := store.Close(); err != nil {
		logger.Error("event store close error", "error", err)
	}

	logger.Info("shutdown complete")
}
