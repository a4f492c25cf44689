package ethereum

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ReceiptWatcher polls an Ethereum node for transaction receipts under a
// bounded timeout.
type ReceiptWatcher struct {
	client       EthClient
	pollInterval time.Duration
	timeout      time.Duration
}

func NewReceiptWatcher(client EthClient, pollInterval, timeout time.Duration) *ReceiptWatcher {
	return &ReceiptWatcher{
		client:       client,
		pollInterval: pollInterval,
		timeout:      timeout,
	}
}

// WaitForReceipt blocks until the transaction is mined, reverted, or the
// timeout elapses. A not-yet-mined transaction keeps the poll going; any
// other client error aborts the wait. Cancelling ctx stops the wait early
// with the context's error.
func (w *ReceiptWatcher) WaitForReceipt(ctx context.Context, txHash string) (ReceiptResult, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	hash := common.HexToHash(txHash)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := w.client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return fromReceipt(receipt), nil
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return timedOut(), nil
		case !errors.Is(err, goethereum.NotFound):
			return ReceiptResult{}, fmt.Errorf("transaction receipt %q: %w", txHash, err)
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return timedOut(), nil
			}
			return ReceiptResult{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func timedOut() ReceiptResult {
	return ReceiptResult{
		Outcome: OutcomeTimedOut,
		Reason:  "receipt wait timed out",
	}
}

func fromReceipt(receipt *types.Receipt) ReceiptResult {
	result := ReceiptResult{
		Outcome:     OutcomeConfirmed,
		BlockNumber: receipt.BlockNumber.Uint64(),
		BlockHash:   receipt.BlockHash.Hex(),
		GasUsed:     strconv.FormatUint(receipt.GasUsed, 10),
	}

	if receipt.Status == types.ReceiptStatusFailed {
		result.Outcome = OutcomeReverted
		result.Reason = "transaction reverted"
	}

	return result
}
