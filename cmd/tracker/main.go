package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/adawallet/walletcore-backend/internal/metrics"
	"github.com/adawallet/walletcore-backend/internal/wallet/nodeclient"
	"github.com/adawallet/walletcore-backend/internal/wallet/repository/clickhouse"
	"github.com/adawallet/walletcore-backend/internal/wallet/service"
)

var config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"TRACKER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	NodeURL       string        `long:"node-url" env:"TRACKER_NODE_URL" description:"wallet node base URL" default:"http://127.0.0.1:8090"`
	PollInterval  time.Duration `long:"poll-interval" env:"TRACKER_POLL_INTERVAL" description:"delay between tracker passes" default:"10s"`
	MetricsAddr   string        `long:"metrics-addr" env:"TRACKER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	if config.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("pending tracker failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	startMetricsServer(ctx, config.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewHistoryRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	node, err := nodeclient.NewClient(config.NodeURL, metrics.NewNodeClient())
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}
	tracker, err := service.NewPendingTrackerService(
		repo,
		node,
		metrics.NewPendingTracker(),
		config.PollInterval,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init pending tracker: %w", err)
	}
	return tracker.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
