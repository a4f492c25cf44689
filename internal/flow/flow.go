package flow

import (
	"context"
	"fmt"
	"time"

	"basepay/internal/core"
	"basepay/internal/ethereum"
	"basepay/internal/metrics"

	"go.uber.org/zap"
)

// SubmitMessage is everything the orchestrator needs to take a freshly
// broadcast transaction to its terminal state: the pending record fields plus
// the type-specific payload captured before submission.
type SubmitMessage struct {
	core.SubmitMessage
	OrderData *core.OrderData
	TipData   *core.TipData
}

// Orchestrator bridges a wallet's fire-and-forget transaction submission to
// the transaction store: record as pending, wait for the receipt, then apply
// the confirm or fail transition.
type Orchestrator struct {
	logs        *zap.SugaredLogger
	service     TransactionService
	waiter      ReceiptWaiter
	invalidator Invalidator
}

func NewOrchestrator(logger *zap.SugaredLogger, service TransactionService, waiter ReceiptWaiter, invalidator Invalidator) *Orchestrator {
	return &Orchestrator{
		logs:        logger,
		service:     service,
		waiter:      waiter,
		invalidator: invalidator,
	}
}

// Execute runs the full reconciliation for one transaction and returns the
// terminal record. A failed or timed-out receipt marks the record failed and
// still returns it; only infrastructure errors propagate as errors.
func (o *Orchestrator) Execute(ctx context.Context, msg SubmitMessage) (core.TransactionRecord, error) {
	pending, err := o.service.CreateTransaction(ctx, msg.SubmitMessage)
	if err != nil {
		return core.TransactionRecord{}, fmt.Errorf("submit transaction: %w", err)
	}

	o.logs.Infow("awaiting receipt", "txHash", pending.TxHash, "type", pending.Type)

	waitStart := time.Now()
	result, err := o.waiter.WaitForReceipt(ctx, pending.TxHash)
	if err != nil {
		return core.TransactionRecord{}, fmt.Errorf("wait for receipt: %w", err)
	}
	metrics.ReceiptWait.Observe(time.Since(waitStart).Seconds())

	return o.settle(ctx, pending, result, msg.OrderData, msg.TipData)
}

// Resume picks up a transaction whose pending record already exists, e.g.
// after the submitting session went away mid-wait. Terminal records are
// returned as they are.
func (o *Orchestrator) Resume(ctx context.Context, txHash string, orderData *core.OrderData, tipData *core.TipData) (core.TransactionRecord, error) {
	record, err := o.service.GetTransaction(ctx, txHash)
	if err != nil {
		return core.TransactionRecord{}, fmt.Errorf("get transaction: %w", err)
	}

	if record.Status == core.StatusProcessed || record.Status == core.StatusFailed {
		return record, nil
	}

	result, err := o.waiter.WaitForReceipt(ctx, txHash)
	if err != nil {
		return core.TransactionRecord{}, fmt.Errorf("wait for receipt: %w", err)
	}

	return o.settle(ctx, record, result, orderData, tipData)
}

func (o *Orchestrator) settle(ctx context.Context, record core.TransactionRecord, result ethereum.ReceiptResult, orderData *core.OrderData, tipData *core.TipData) (core.TransactionRecord, error) {
	var msg core.StatusMessage

	switch result.Outcome {
	case ethereum.OutcomeConfirmed:
		msg = core.StatusMessage{
			Status:      core.StatusConfirmed,
			BlockNumber: result.BlockNumber,
			BlockHash:   result.BlockHash,
			GasUsed:     result.GasUsed,
			OrderData:   orderData,
			TipData:     tipData,
		}
	case ethereum.OutcomeReverted, ethereum.OutcomeTimedOut:
		msg = core.StatusMessage{
			Status: core.StatusFailed,
			Error:  result.Reason,
		}
	default:
		return core.TransactionRecord{}, fmt.Errorf("unknown receipt outcome: %q", result.Outcome)
	}

	final, err := o.service.ApplyStatus(ctx, record.TxHash, msg)
	if err != nil {
		metrics.Reconciliations.WithLabelValues(string(record.Type), "error").Inc()
		return core.TransactionRecord{}, fmt.Errorf("apply status: %w", err)
	}

	metrics.Reconciliations.WithLabelValues(string(record.Type), string(final.Status)).Inc()

	if final.Status == core.StatusProcessed && o.invalidator != nil {
		o.invalidator.Invalidate(core.StaleCollections(final.Type)...)
	}

	o.logs.Infow("transaction settled",
		"txHash", final.TxHash,
		"type", final.Type,
		"status", final.Status)

	return final, nil
}
