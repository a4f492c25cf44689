package core

import (
	"context"
	"time"

	"basepay/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateTransaction(ctx context.Context, tx repository.Transaction) (repository.Transaction, bool, error)
	GetTransactionByHash(ctx context.Context, txHash string) (repository.Transaction, error)
	UpdateTransaction(ctx context.Context, txHash string, updates map[string]any) (repository.Transaction, error)
	ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]repository.Transaction, int64, error)
	CreateOrder(ctx context.Context, order repository.Order) (repository.Order, error)
	CreateTip(ctx context.Context, tip repository.Tip) (repository.Tip, error)
	DecrementProductStock(ctx context.Context, productID string) error
	IncrementSellerSales(ctx context.Context, wallet string) error
	MarkUserOnChain(ctx context.Context, wallet string, at time.Time) error
	LinkProductContract(ctx context.Context, productID string, contractID int64, at time.Time) error
	IncrementContentTips(ctx context.Context, contentID string, at time.Time) error
	GetOrderByID(ctx context.Context, orderID string) (repository.Order, error)
	UpdateOrder(ctx context.Context, orderID string, updates map[string]any) (repository.Order, error)
	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]repository.Order, int64, error)
	ListTips(ctx context.Context, filter repository.TipFilter) ([]repository.Tip, int64, error)
	TipVolume(ctx context.Context, filter repository.TipFilter) (string, error)
	Stats(ctx context.Context) (repository.PlatformStats, error)
}
