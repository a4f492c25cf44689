package handler

import (
	"context"
	"net/http"

	"basepay/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	CreateTransaction(ctx context.Context, msg core.SubmitMessage) (core.TransactionRecord, error)
	GetTransaction(ctx context.Context, txHash string) (core.TransactionRecord, error)
	ApplyStatus(ctx context.Context, txHash string, msg core.StatusMessage) (core.TransactionRecord, error)
	ListTransactions(ctx context.Context, filter core.TransactionFilter) ([]core.TransactionRecord, int64, error)
}

//counterfeiter:generate -o fake -fake-name OrderService . OrderService
type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (core.OrderRecord, error)
	UpdateOrder(ctx context.Context, orderID string, msg core.OrderUpdateMessage) (core.OrderRecord, error)
	ListOrders(ctx context.Context, filter core.OrderFilter) ([]core.OrderRecord, int64, error)
}

//counterfeiter:generate -o fake -fake-name InsightsService . InsightsService
type InsightsService interface {
	ListTips(ctx context.Context, filter core.TipFilter) ([]core.TipRecord, int64, string, error)
	Stats(ctx context.Context) (core.PlatformStats, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
