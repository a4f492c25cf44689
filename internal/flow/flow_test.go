package flow_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"basepay/internal/core"
	"basepay/internal/ethereum"
	"basepay/internal/flow"
	"basepay/internal/flow/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Orchestrator", func() {
	var (
		orchestrator    *flow.Orchestrator
		fakeService     *fake.TransactionService
		fakeWaiter      *fake.ReceiptWaiter
		fakeInvalidator *fake.Invalidator
		ctx             context.Context

		txHash  string
		fakeErr error
	)

	BeforeEach(func() {
		fakeService = new(fake.TransactionService)
		fakeWaiter = new(fake.ReceiptWaiter)
		fakeInvalidator = new(fake.Invalidator)
		ctx = context.Background()

		txHash = "0x" + strings.Repeat("ab", 32)
		fakeErr = errors.New("fake error")

		orchestrator = flow.NewOrchestrator(zap.NewNop().Sugar(), fakeService, fakeWaiter, fakeInvalidator)
	})

	Describe("Execute", func() {
		var (
			msg    flow.SubmitMessage
			record core.TransactionRecord
			err    error
		)

		BeforeEach(func() {
			msg = flow.SubmitMessage{
				SubmitMessage: core.SubmitMessage{
					TxHash: txHash,
					Type:   core.TypePurchase,
					From:   "0xbuyer",
				},
				OrderData: &core.OrderData{DeliveryType: "pickup"},
			}

			fakeService.CreateTransactionReturns(core.TransactionRecord{
				TxHash: txHash,
				Type:   core.TypePurchase,
				Status: core.StatusPending,
			}, nil)
			fakeWaiter.WaitForReceiptReturns(ethereum.ReceiptResult{
				Outcome:     ethereum.OutcomeConfirmed,
				BlockNumber: 1234,
				BlockHash:   "0xabc",
				GasUsed:     "21000",
			}, nil)
			fakeService.ApplyStatusReturns(core.TransactionRecord{
				TxHash: txHash,
				Type:   core.TypePurchase,
				Status: core.StatusProcessed,
			}, nil)
		})

		JustBeforeEach(func() {
			record, err = orchestrator.Execute(ctx, msg)
		})

		When("the transaction confirms", func() {
			It("records, waits and settles as processed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(core.StatusProcessed))

				Expect(fakeService.CreateTransactionCallCount()).To(Equal(1))
				_, argMsg := fakeService.CreateTransactionArgsForCall(0)
				Expect(argMsg.TxHash).To(Equal(txHash))

				Expect(fakeWaiter.WaitForReceiptCallCount()).To(Equal(1))
				_, argHash := fakeWaiter.WaitForReceiptArgsForCall(0)
				Expect(argHash).To(Equal(txHash))

				Expect(fakeService.ApplyStatusCallCount()).To(Equal(1))
				_, _, argStatus := fakeService.ApplyStatusArgsForCall(0)
				Expect(argStatus.Status).To(Equal(core.StatusConfirmed))
				Expect(argStatus.BlockNumber).To(Equal(uint64(1234)))
				Expect(argStatus.OrderData).To(Equal(msg.OrderData))
			})

			It("marks the touched collections stale", func() {
				Expect(fakeInvalidator.InvalidateCallCount()).To(Equal(1))
				collections := fakeInvalidator.InvalidateArgsForCall(0)
				Expect(collections).To(ConsistOf("transactions", "orders", "products", "users"))
			})
		})

		When("the transaction reverts", func() {
			BeforeEach(func() {
				fakeWaiter.WaitForReceiptReturns(ethereum.ReceiptResult{
					Outcome: ethereum.OutcomeReverted,
					Reason:  "transaction reverted",
				}, nil)
				fakeService.ApplyStatusReturns(core.TransactionRecord{
					TxHash: txHash,
					Type:   core.TypePurchase,
					Status: core.StatusFailed,
					Error:  "transaction reverted",
				}, nil)
			})

			It("settles as failed without invalidating", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(core.StatusFailed))

				_, _, argStatus := fakeService.ApplyStatusArgsForCall(0)
				Expect(argStatus.Status).To(Equal(core.StatusFailed))
				Expect(argStatus.Error).To(Equal("transaction reverted"))

				Expect(fakeInvalidator.InvalidateCallCount()).To(Equal(0))
			})
		})

		When("the receipt wait times out", func() {
			BeforeEach(func() {
				fakeWaiter.WaitForReceiptReturns(ethereum.ReceiptResult{
					Outcome: ethereum.OutcomeTimedOut,
					Reason:  "receipt wait timed out",
				}, nil)
				fakeService.ApplyStatusReturns(core.TransactionRecord{
					TxHash: txHash,
					Status: core.StatusFailed,
				}, nil)
			})

			It("settles as failed", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, argStatus := fakeService.ApplyStatusArgsForCall(0)
				Expect(argStatus.Status).To(Equal(core.StatusFailed))
				Expect(argStatus.Error).To(Equal("receipt wait timed out"))
			})
		})

		When("recording the submission fails", func() {
			BeforeEach(func() {
				fakeService.CreateTransactionReturns(core.TransactionRecord{}, fakeErr)
			})

			It("stops before waiting", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeWaiter.WaitForReceiptCallCount()).To(Equal(0))
			})
		})

		When("the wait fails", func() {
			BeforeEach(func() {
				fakeWaiter.WaitForReceiptReturns(ethereum.ReceiptResult{}, fakeErr)
			})

			It("returns the error without settling", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeService.ApplyStatusCallCount()).To(Equal(0))
			})
		})

		When("settling fails", func() {
			BeforeEach(func() {
				fakeService.ApplyStatusReturns(core.TransactionRecord{}, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeInvalidator.InvalidateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Resume", func() {
		var (
			record core.TransactionRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = orchestrator.Resume(ctx, txHash, nil, nil)
		})

		When("the transaction is still pending", func() {
			BeforeEach(func() {
				fakeService.GetTransactionReturns(core.TransactionRecord{
					TxHash: txHash,
					Type:   core.TypeRegister,
					Status: core.StatusPending,
				}, nil)
				fakeWaiter.WaitForReceiptReturns(ethereum.ReceiptResult{
					Outcome: ethereum.OutcomeConfirmed,
				}, nil)
				fakeService.ApplyStatusReturns(core.TransactionRecord{
					TxHash: txHash,
					Type:   core.TypeRegister,
					Status: core.StatusProcessed,
				}, nil)
			})

			It("waits and settles", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(core.StatusProcessed))
				Expect(fakeWaiter.WaitForReceiptCallCount()).To(Equal(1))
			})
		})

		When("the transaction already reached a terminal state", func() {
			BeforeEach(func() {
				fakeService.GetTransactionReturns(core.TransactionRecord{
					TxHash: txHash,
					Status: core.StatusProcessed,
				}, nil)
			})

			It("returns the record without waiting", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(core.StatusProcessed))
				Expect(fakeWaiter.WaitForReceiptCallCount()).To(Equal(0))
			})
		})

		When("the transaction is unknown", func() {
			BeforeEach(func() {
				fakeService.GetTransactionReturns(core.TransactionRecord{}, core.ErrTransactionNotFound)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(core.ErrTransactionNotFound))
			})
		})
	})

	Describe("SweepPending", func() {
		BeforeEach(func() {
			fakeService.ListTransactionsReturns([]core.TransactionRecord{
				{TxHash: txHash, Type: core.TypeRegister, Status: core.StatusPending},
			}, 1, nil)
			fakeService.GetTransactionReturns(core.TransactionRecord{
				TxHash: txHash,
				Type:   core.TypeRegister,
				Status: core.StatusPending,
			}, nil)
			fakeWaiter.WaitForReceiptReturns(ethereum.ReceiptResult{
				Outcome: ethereum.OutcomeConfirmed,
			}, nil)
			fakeService.ApplyStatusReturns(core.TransactionRecord{
				TxHash: txHash,
				Type:   core.TypeRegister,
				Status: core.StatusProcessed,
			}, nil)
		})

		JustBeforeEach(func() {
			orchestrator.SweepPending(ctx)
		})

		It("resumes every stuck pending transaction", func() {
			Expect(fakeService.ListTransactionsCallCount()).To(Equal(1))
			_, argFilter := fakeService.ListTransactionsArgsForCall(0)
			Expect(argFilter.Status).To(Equal("pending"))
			Expect(argFilter.Limit).To(Equal(100))

			Expect(fakeService.ApplyStatusCallCount()).To(Equal(1))
			_, _, argStatus := fakeService.ApplyStatusArgsForCall(0)
			Expect(argStatus.OrderData).To(BeNil())
		})

		When("a purchase is missing its client payload", func() {
			BeforeEach(func() {
				fakeService.ApplyStatusReturns(core.TransactionRecord{},
					fmt.Errorf("apply side effects: %w", core.ErrMissingPayload))
			})

			It("leaves it for a client retry without failing the sweep", func() {
				Expect(fakeService.ApplyStatusCallCount()).To(Equal(1))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeService.ListTransactionsReturns(nil, 0, fakeErr)
			})

			It("skips the sweep", func() {
				Expect(fakeService.GetTransactionCallCount()).To(Equal(0))
			})
		})
	})
})

var _ = Describe("StaleSet", func() {
	It("accumulates collections and drains them once", func() {
		set := flow.NewStaleSet(zap.NewNop().Sugar())

		set.Invalidate("orders", "products")
		set.Invalidate("orders", "transactions")

		Expect(set.Drain()).To(ConsistOf("orders", "products", "transactions"))
		Expect(set.Drain()).To(BeEmpty())
	})
})
