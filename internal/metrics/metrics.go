package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Reconciliations counts transaction flows by type and final outcome.
	Reconciliations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "basepay",
		Name:      "reconciliations_total",
		Help:      "Completed transaction reconciliations by type and outcome",
	}, []string{"type", "outcome"})

	// ReceiptWait observes how long the chain took to produce a receipt.
	ReceiptWait = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "basepay",
		Name:      "receipt_wait_seconds",
		Help:      "Time spent waiting for a transaction receipt",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)
