package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"basepay/internal/config"
	"basepay/internal/core"
	"basepay/internal/db"
	"basepay/internal/ethereum"
	"basepay/internal/flow"
	"basepay/internal/http/handler"
	"basepay/internal/http/handler/middleware"
	"basepay/internal/http/payload"
	"basepay/internal/http/server"
	"basepay/internal/repository"
	"basepay/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("basepay", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewMarketRepository(dbConn)

	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}

	watcher := ethereum.NewReceiptWatcher(client, config.ReceiptPollInterval, config.ReceiptTimeout)

	// reconciler
	reconciler := core.NewReconciler(logger, repo)

	// orchestrator + pending sweeper
	staleSet := flow.NewStaleSet(logger)
	orchestrator := flow.NewOrchestrator(logger, reconciler, watcher, staleSet)

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go orchestrator.RunSweeper(sweepCtx, config.SweepInterval)

	// handlers
	validator := payload.DecodeValidator{}
	txHlr := handler.NewTransactionHandler(logger, validator, reconciler)
	orderHlr := handler.NewOrderHandler(logger, validator, reconciler)
	insightsHlr := handler.NewInsightsHandler(logger, reconciler)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.CreateTransaction, txHlr.HandleCreateTransaction)
	mux.HandleFunc(handler.ListTransactions, txHlr.HandleListTransactions)
	mux.HandleFunc(handler.GetTransaction, txHlr.HandleGetTransaction)
	mux.HandleFunc(handler.UpdateTransaction, txHlr.HandleUpdateTransaction)
	mux.HandleFunc(handler.ListOrders, orderHlr.HandleListOrders)
	mux.HandleFunc(handler.GetOrder, orderHlr.HandleGetOrder)
	mux.HandleFunc(handler.UpdateOrder, orderHlr.HandleUpdateOrder)
	mux.HandleFunc(handler.ListTips, insightsHlr.HandleListTips)
	mux.HandleFunc(handler.GetStats, insightsHlr.HandleGetStats)
	mux.HandleFunc(handler.GetHealth, insightsHlr.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
