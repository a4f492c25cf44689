package flow

import (
	"context"

	"basepay/internal/core"
	"basepay/internal/ethereum"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	CreateTransaction(ctx context.Context, msg core.SubmitMessage) (core.TransactionRecord, error)
	ApplyStatus(ctx context.Context, txHash string, msg core.StatusMessage) (core.TransactionRecord, error)
	GetTransaction(ctx context.Context, txHash string) (core.TransactionRecord, error)
	ListTransactions(ctx context.Context, filter core.TransactionFilter) ([]core.TransactionRecord, int64, error)
}

//counterfeiter:generate -o fake -fake-name ReceiptWaiter . ReceiptWaiter
type ReceiptWaiter interface {
	WaitForReceipt(ctx context.Context, txHash string) (ethereum.ReceiptResult, error)
}

// Invalidator receives the entity collections made stale by a processed
// transaction, so consumers can drop cached query results explicitly instead
// of relying on a global cache.
//
//counterfeiter:generate -o fake -fake-name Invalidator . Invalidator
type Invalidator interface {
	Invalidate(collections ...string)
}
