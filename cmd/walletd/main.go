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
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/adawallet/walletcore-backend/internal/metrics"
	"github.com/adawallet/walletcore-backend/internal/transport"
	"github.com/adawallet/walletcore-backend/internal/wallet/fees"
	"github.com/adawallet/walletcore-backend/internal/wallet/nodeclient"
	"github.com/adawallet/walletcore-backend/internal/wallet/repository/clickhouse"
	"github.com/adawallet/walletcore-backend/internal/wallet/selection"
	"github.com/adawallet/walletcore-backend/internal/wallet/service"
)

var config struct {
	Addr          string `long:"addr" env:"WALLETD_ADDR" description:"HTTP listen address" default:":8000"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"WALLETD_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	NodeURL       string `long:"node-url" env:"WALLETD_NODE_URL" description:"wallet node base URL" default:"http://127.0.0.1:8090"`

	FeeBase           uint64 `long:"fee-base" env:"WALLETD_FEE_BASE" description:"fee model constant, lovelace" default:"155381"`
	FeePerInput       uint64 `long:"fee-per-input" env:"WALLETD_FEE_PER_INPUT" description:"fee per transaction input, lovelace" default:"44000"`
	FeePerOutput      uint64 `long:"fee-per-output" env:"WALLETD_FEE_PER_OUTPUT" description:"fee per transaction output, lovelace" default:"39000"`
	FeePerCertificate uint64 `long:"fee-per-certificate" env:"WALLETD_FEE_PER_CERTIFICATE" description:"fee per delegation certificate, lovelace" default:"35000"`
	FeePerWithdrawal  uint64 `long:"fee-per-withdrawal" env:"WALLETD_FEE_PER_WITHDRAWAL" description:"fee per reward withdrawal, lovelace" default:"22000"`
	MinUTXOValue      uint64 `long:"min-utxo-value" env:"WALLETD_MIN_UTXO_VALUE" description:"minimum output coin, lovelace" default:"1000000"`
	PerAssetByte      uint64 `long:"per-asset-byte" env:"WALLETD_PER_ASSET_BYTE" description:"minimum coin surcharge per serialized asset byte, lovelace" default:"6000"`
	KeyDeposit        uint64 `long:"key-deposit" env:"WALLETD_KEY_DEPOSIT" description:"stake key registration deposit, lovelace" default:"2000000"`
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

	if err := run(ctx, logger); err != nil {
		logger.Fatal("walletd failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewHistoryRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	node, err := nodeclient.NewClient(config.NodeURL, metrics.NewNodeClient())
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}
	estimator, err := fees.NewEstimator(fees.Model{
		Base:           config.FeeBase,
		PerInput:       config.FeePerInput,
		PerOutput:      config.FeePerOutput,
		PerCertificate: config.FeePerCertificate,
		PerWithdrawal:  config.FeePerWithdrawal,
		MinUTXOValue:   config.MinUTXOValue,
		PerAssetByte:   config.PerAssetByte,
		KeyDeposit:     config.KeyDeposit,
	})
	if err != nil {
		return fmt.Errorf("init fee estimator: %w", err)
	}
	engine, err := selection.NewEngine(estimator, node, logger)
	if err != nil {
		return fmt.Errorf("init selection engine: %w", err)
	}
	svc, err := service.NewTransactionsService(
		repo,
		node,
		node,
		node,
		node,
		engine,
		estimator,
		metrics.NewTransactionsService(),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init transactions service: %w", err)
	}
	router, err := transport.NewRouter(svc, logger)
	if err != nil {
		return fmt.Errorf("init router: %w", err)
	}

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(router),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
