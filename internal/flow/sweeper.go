package flow

import (
	"context"
	"errors"
	"time"

	"basepay/internal/core"
)

const sweepBatchSize = 100

// SweepPending resumes transactions stuck in pending, typically because the
// submitting session disappeared mid-wait. Purchases and tips whose
// side-effect payload only the client holds end up confirmed and are finished
// later by a client retry; everything else settles fully.
func (o *Orchestrator) SweepPending(ctx context.Context) {
	records, _, err := o.service.ListTransactions(ctx, core.TransactionFilter{
		Status: string(core.StatusPending),
		Limit:  sweepBatchSize,
	})
	if err != nil {
		o.logs.Errorw("pending sweep failed to list transactions", "error", err)
		return
	}

	for _, record := range records {
		if _, err := o.Resume(ctx, record.TxHash, nil, nil); err != nil {
			if errors.Is(err, core.ErrMissingPayload) {
				o.logs.Warnw("pending sweep left transaction confirmed, awaiting client payload",
					"txHash", record.TxHash, "type", record.Type)
				continue
			}
			o.logs.Errorw("pending sweep failed to resume transaction",
				"txHash", record.TxHash, "error", err)
		}
	}
}

// RunSweeper loops SweepPending until ctx is cancelled.
func (o *Orchestrator) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.SweepPending(ctx)
		}
	}
}
