package core_test

import (
	"context"
	"errors"
	"strings"

	"basepay/internal/core"
	"basepay/internal/core/fake"
	"basepay/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Reconciler", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		reconciler *core.Reconciler

		txHash  string
		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		reconciler = core.NewReconciler(fakeLogger, fakeRepo)

		txHash = "0x" + strings.Repeat("ab", 32)
		fakeErr = errors.New("fake error")
	})

	Describe("CreateTransaction", func() {
		var (
			msg    core.SubmitMessage
			record core.TransactionRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.SubmitMessage{
				TxHash: txHash,
				Type:   core.TypePurchase,
				From:   "0xBUYER",
				To:     "0xSELLER",
				Amount: "1000000000000000000",
				Fee:    "25000000000000000",
			}

			fakeRepo.CreateTransactionStub = func(_ context.Context, tx repository.Transaction) (repository.Transaction, bool, error) {
				tx.Status = "pending"
				return tx, false, nil
			}
		})

		JustBeforeEach(func() {
			record, err = reconciler.CreateTransaction(ctx, msg)
		})

		When("the submission is valid", func() {
			It("records a pending transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.TxHash).To(Equal(txHash))
				Expect(record.Status).To(Equal(core.StatusPending))

				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(1))
				_, argTx := fakeRepo.CreateTransactionArgsForCall(0)
				Expect(argTx.From).To(Equal("0xbuyer"))
				Expect(argTx.To).To(Equal("0xseller"))
				Expect(argTx.Type).To(Equal("purchase"))
			})

			It("defaults the payment token to the zero address", func() {
				_, argTx := fakeRepo.CreateTransactionArgsForCall(0)
				Expect(argTx.PaymentToken).To(Equal(core.ZeroAddress))
			})
		})

		When("a payment token is supplied", func() {
			BeforeEach(func() {
				msg.PaymentToken = "0xTOKEN"
			})

			It("stores it lowercased", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argTx := fakeRepo.CreateTransactionArgsForCall(0)
				Expect(argTx.PaymentToken).To(Equal("0xtoken"))
			})
		})

		When("the hash was already submitted", func() {
			BeforeEach(func() {
				fakeRepo.CreateTransactionReturns(repository.Transaction{
					TxHash: txHash,
					Status: "processed",
				}, true, nil)
			})

			It("returns the stored record unchanged", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(core.StatusProcessed))
				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(1))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				msg.TxHash = "0x123"
			})

			It("rejects the submission", func() {
				Expect(err).To(MatchError(core.ErrInvalidTxHash))
				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the type is unknown", func() {
			BeforeEach(func() {
				msg.Type = "refund"
			})

			It("rejects the submission", func() {
				Expect(err).To(MatchError(core.ErrInvalidType))
			})
		})

		When("the from address is missing", func() {
			BeforeEach(func() {
				msg.From = ""
			})

			It("rejects the submission", func() {
				Expect(err).To(MatchError(core.ErrInvalidType))
			})
		})

		When("the amount is not a decimal", func() {
			BeforeEach(func() {
				msg.Amount = "a lot"
			})

			It("rejects the submission", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeRepo.CreateTransactionCallCount()).To(Equal(0))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateTransactionStub = nil
				fakeRepo.CreateTransactionReturns(repository.Transaction{}, false, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTransaction", func() {
		var (
			record core.TransactionRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = reconciler.GetTransaction(ctx, txHash)
		})

		When("the transaction exists", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionByHashReturns(repository.Transaction{
					TxHash: txHash,
					Status: "pending",
				}, nil)
			})

			It("returns the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.TxHash).To(Equal(txHash))
				_, argHash := fakeRepo.GetTransactionByHashArgsForCall(0)
				Expect(argHash).To(Equal(txHash))
			})
		})

		When("the transaction does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionByHashReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("returns not found", func() {
				Expect(err).To(MatchError(core.ErrTransactionNotFound))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				txHash = "nonsense"
			})

			It("rejects the hash without touching the store", func() {
				Expect(err).To(MatchError(core.ErrInvalidTxHash))
				Expect(fakeRepo.GetTransactionByHashCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ListTransactions", func() {
		var (
			filter  core.TransactionFilter
			records []core.TransactionRecord
			total   int64
			err     error
		)

		BeforeEach(func() {
			filter = core.TransactionFilter{From: "0xBUYER", Status: "pending"}
			fakeRepo.ListTransactionsReturns([]repository.Transaction{
				{TxHash: txHash, Status: "pending"},
			}, 1, nil)
		})

		JustBeforeEach(func() {
			records, total, err = reconciler.ListTransactions(ctx, filter)
		})

		It("lowercases the wallet and applies the default page size", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(total).To(Equal(int64(1)))

			_, argFilter := fakeRepo.ListTransactionsArgsForCall(0)
			Expect(argFilter.From).To(Equal("0xbuyer"))
			Expect(argFilter.Limit).To(Equal(20))
		})

		When("the requested page size is too large", func() {
			BeforeEach(func() {
				filter.Limit = 5000
			})

			It("clamps it", func() {
				_, argFilter := fakeRepo.ListTransactionsArgsForCall(0)
				Expect(argFilter.Limit).To(Equal(100))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeRepo.ListTransactionsReturns(nil, 0, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ApplyStatus", func() {
		var (
			msg    core.StatusMessage
			stored repository.Transaction
			record core.TransactionRecord
			err    error
		)

		BeforeEach(func() {
			stored = repository.Transaction{
				TxHash:    txHash,
				Type:      "purchase",
				Status:    "pending",
				From:      "0xbuyer",
				To:        "0xseller",
				Amount:    "1000000000000000000",
				ProductID: "prod-1",
			}
			msg = core.StatusMessage{
				Status:      core.StatusConfirmed,
				BlockNumber: 1234,
				BlockHash:   "0xblock",
				GasUsed:     "21000",
				OrderData:   &core.OrderData{DeliveryType: "shipping", ShippingAddress: "1 Main St"},
			}

			fakeRepo.GetTransactionByHashStub = func(context.Context, string) (repository.Transaction, error) {
				return stored, nil
			}
			fakeRepo.CreateOrderStub = func(_ context.Context, order repository.Order) (repository.Order, error) {
				order.ID = "order-1"
				return order, nil
			}
			fakeRepo.UpdateTransactionStub = func(_ context.Context, hash string, updates map[string]any) (repository.Transaction, error) {
				updated := stored
				updated.Status = updates["status"].(string)
				return updated, nil
			}
		})

		JustBeforeEach(func() {
			record, err = reconciler.ApplyStatus(ctx, txHash, msg)
		})

		When("a pending purchase confirms", func() {
			It("creates the order exactly once and marks the transaction processed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(core.StatusProcessed))

				Expect(fakeRepo.CreateOrderCallCount()).To(Equal(1))
				_, argOrder := fakeRepo.CreateOrderArgsForCall(0)
				Expect(argOrder.Buyer).To(Equal("0xbuyer"))
				Expect(argOrder.Seller).To(Equal("0xseller"))
				Expect(argOrder.Status).To(Equal("confirmed"))
				Expect(argOrder.DeliveryType).To(Equal("shipping"))
				Expect(argOrder.TxHash).To(Equal(txHash))

				Expect(fakeRepo.DecrementProductStockCallCount()).To(Equal(1))
				Expect(fakeRepo.IncrementSellerSalesCallCount()).To(Equal(1))

				Expect(fakeRepo.UpdateTransactionCallCount()).To(Equal(1))
				_, _, updates := fakeRepo.UpdateTransactionArgsForCall(0)
				Expect(updates["status"]).To(Equal("processed"))
				Expect(updates["order_id"]).To(Equal("order-1"))
				Expect(updates["block_number"]).To(Equal(uint64(1234)))
				Expect(updates).To(HaveKey("processed_at"))
				Expect(updates).To(HaveKey("confirmed_at"))
			})
		})

		When("the purchase already produced an order", func() {
			BeforeEach(func() {
				stored.OrderID = "order-0"
			})

			It("does not create a second order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateOrderCallCount()).To(Equal(0))

				_, _, updates := fakeRepo.UpdateTransactionArgsForCall(0)
				Expect(updates["order_id"]).To(Equal("order-0"))
			})
		})

		When("the order payload is missing", func() {
			BeforeEach(func() {
				msg.OrderData = nil
			})

			It("leaves the transaction confirmed and reports the missing payload", func() {
				Expect(err).To(MatchError(core.ErrMissingPayload))
				Expect(fakeRepo.CreateOrderCallCount()).To(Equal(0))

				Expect(fakeRepo.UpdateTransactionCallCount()).To(Equal(1))
				_, _, updates := fakeRepo.UpdateTransactionArgsForCall(0)
				Expect(updates["status"]).To(Equal("confirmed"))
				Expect(updates).NotTo(HaveKey("processed_at"))
			})
		})

		When("a tip confirms", func() {
			BeforeEach(func() {
				stored.Type = "tip"
				stored.ProductID = ""
				stored.ContentID = "content-1"
				msg.OrderData = nil
				msg.TipData = &core.TipData{ContentID: "content-1"}

				fakeRepo.CreateTipStub = func(_ context.Context, tip repository.Tip) (repository.Tip, error) {
					tip.ID = "tip-1"
					return tip, nil
				}
			})

			It("records the tip and bumps the content counter", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateTipCallCount()).To(Equal(1))
				_, argTip := fakeRepo.CreateTipArgsForCall(0)
				Expect(argTip.ContentID).To(Equal("content-1"))
				Expect(argTip.TxHash).To(Equal(txHash))

				Expect(fakeRepo.IncrementContentTipsCallCount()).To(Equal(1))
				_, argContent, _ := fakeRepo.IncrementContentTipsArgsForCall(0)
				Expect(argContent).To(Equal("content-1"))

				_, _, updates := fakeRepo.UpdateTransactionArgsForCall(0)
				Expect(updates["tip_id"]).To(Equal("tip-1"))
				Expect(updates["status"]).To(Equal("processed"))
			})
		})

		When("a registration confirms", func() {
			BeforeEach(func() {
				stored.Type = "register"
				msg.OrderData = nil
			})

			It("flags the user as registered on chain", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.MarkUserOnChainCallCount()).To(Equal(1))
				_, argWallet, _ := fakeRepo.MarkUserOnChainArgsForCall(0)
				Expect(argWallet).To(Equal("0xbuyer"))
			})
		})

		When("a product listing confirms", func() {
			BeforeEach(func() {
				stored.Type = "create_product"
				stored.ContractProductID = 42
				msg.OrderData = nil
			})

			It("links the product to its contract id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.LinkProductContractCallCount()).To(Equal(1))
				_, argProduct, argContract, _ := fakeRepo.LinkProductContractArgsForCall(0)
				Expect(argProduct).To(Equal("prod-1"))
				Expect(argContract).To(Equal(int64(42)))
			})
		})

		When("the transaction was already processed", func() {
			BeforeEach(func() {
				stored.Status = "processed"
			})

			It("ignores the repeated confirmation", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(core.StatusProcessed))
				Expect(fakeRepo.UpdateTransactionCallCount()).To(Equal(0))
				Expect(fakeRepo.CreateOrderCallCount()).To(Equal(0))
			})
		})

		When("a failed transaction is confirmed", func() {
			BeforeEach(func() {
				stored.Status = "failed"
			})

			It("rejects the transition", func() {
				Expect(err).To(MatchError(core.ErrInvalidTransition))
			})
		})

		When("a processed transaction is failed", func() {
			BeforeEach(func() {
				stored.Status = "processed"
				msg = core.StatusMessage{Status: core.StatusFailed}
			})

			It("rejects the transition", func() {
				Expect(err).To(MatchError(core.ErrInvalidTransition))
			})
		})

		When("the transaction fails on chain", func() {
			BeforeEach(func() {
				msg = core.StatusMessage{Status: core.StatusFailed, Error: "out of gas"}
				fakeRepo.UpdateTransactionStub = func(_ context.Context, hash string, updates map[string]any) (repository.Transaction, error) {
					updated := stored
					updated.Status = updates["status"].(string)
					updated.Error = updates["error"].(string)
					return updated, nil
				}
			})

			It("marks it failed and performs no side effects", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(core.StatusFailed))
				Expect(record.Error).To(Equal("out of gas"))

				Expect(fakeRepo.CreateOrderCallCount()).To(Equal(0))
				Expect(fakeRepo.CreateTipCallCount()).To(Equal(0))
				Expect(fakeRepo.DecrementProductStockCallCount()).To(Equal(0))
			})

			When("no reason is given", func() {
				BeforeEach(func() {
					msg.Error = ""
				})

				It("records a generic one", func() {
					_, _, updates := fakeRepo.UpdateTransactionArgsForCall(0)
					Expect(updates["error"]).To(Equal("transaction failed"))
				})
			})

			When("the transaction already failed", func() {
				BeforeEach(func() {
					stored.Status = "failed"
				})

				It("is a no-op", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(fakeRepo.UpdateTransactionCallCount()).To(Equal(0))
				})
			})
		})

		When("the requested status is pending", func() {
			BeforeEach(func() {
				msg = core.StatusMessage{Status: core.StatusPending}
			})

			It("returns the stored record without writes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.TxHash).To(Equal(txHash))
				Expect(fakeRepo.UpdateTransactionCallCount()).To(Equal(0))
			})
		})

		When("the status is unknown", func() {
			BeforeEach(func() {
				msg = core.StatusMessage{Status: "settled"}
			})

			It("rejects the request", func() {
				Expect(err).To(MatchError(core.ErrInvalidStatus))
				Expect(fakeRepo.GetTransactionByHashCallCount()).To(Equal(0))
			})
		})

		When("the transaction does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionByHashStub = nil
				fakeRepo.GetTransactionByHashReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("returns not found", func() {
				Expect(err).To(MatchError(core.ErrTransactionNotFound))
			})
		})

		When("a side-effect write fails", func() {
			BeforeEach(func() {
				fakeRepo.DecrementProductStockReturns(fakeErr)
			})

			It("keeps the record confirmed and surfaces the error", func() {
				Expect(err).To(MatchError(fakeErr))

				_, _, updates := fakeRepo.UpdateTransactionArgsForCall(0)
				Expect(updates["status"]).To(Equal("confirmed"))
				Expect(updates).NotTo(HaveKey("processed_at"))
			})
		})
	})

	Describe("StaleCollections", func() {
		It("names the collections touched per transaction type", func() {
			Expect(core.StaleCollections(core.TypePurchase)).To(ConsistOf("transactions", "orders", "products", "users"))
			Expect(core.StaleCollections(core.TypeTip)).To(ConsistOf("transactions", "tips", "content"))
			Expect(core.StaleCollections(core.TypeRegister)).To(ConsistOf("transactions", "users"))
			Expect(core.StaleCollections(core.TypeCreateProduct)).To(ConsistOf("transactions", "products"))
			Expect(core.StaleCollections("unknown")).To(ConsistOf("transactions"))
		})
	})
})
