package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	ethNodeEnvKey      = "ETH_NODE_URL"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	pollIntervalEnvKey = "RECEIPT_POLL_INTERVAL"
	receiptWaitEnvKey  = "RECEIPT_TIMEOUT"
	sweepEnvKey        = "PENDING_SWEEP_INTERVAL"
)

const (
	defaultPollInterval  = 4 * time.Second
	defaultReceiptWait   = 3 * time.Minute
	defaultSweepInterval = time.Minute
)

type App struct {
	Port                string
	NodeURL             string
	DBConnectionURL     string
	ReceiptPollInterval time.Duration
	ReceiptTimeout      time.Duration
	SweepInterval       time.Duration
}

func NewApp() (App, error) {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	pollInterval, err := durationFromEnv(pollIntervalEnvKey, defaultPollInterval)
	if err != nil {
		return App{}, err
	}

	receiptTimeout, err := durationFromEnv(receiptWaitEnvKey, defaultReceiptWait)
	if err != nil {
		return App{}, err
	}

	sweepInterval, err := durationFromEnv(sweepEnvKey, defaultSweepInterval)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:                port,
		NodeURL:             nodeURL,
		DBConnectionURL:     dbConn,
		ReceiptPollInterval: pollInterval,
		ReceiptTimeout:      receiptTimeout,
		SweepInterval:       sweepInterval,
	}, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return d, nil
}
