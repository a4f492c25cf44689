package core_test

import (
	"context"
	"errors"

	"basepay/internal/core"
	"basepay/internal/core/fake"
	"basepay/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Reconciler orders and insights", func() {
	var (
		fakeRepo   *fake.Repository
		ctx        context.Context
		reconciler *core.Reconciler
		fakeErr    error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		ctx = context.Background()
		reconciler = core.NewReconciler(zap.NewNop().Sugar(), fakeRepo)
		fakeErr = errors.New("fake error")
	})

	Describe("GetOrder", func() {
		When("the order exists", func() {
			BeforeEach(func() {
				fakeRepo.GetOrderByIDReturns(repository.Order{ID: "order-1", Buyer: "0xbuyer"}, nil)
			})

			It("returns the order", func() {
				order, err := reconciler.GetOrder(ctx, "order-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(order.ID).To(Equal("order-1"))
			})
		})

		When("the order does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetOrderByIDReturns(repository.Order{}, repository.ErrOrderNotFound)
			})

			It("returns not found", func() {
				_, err := reconciler.GetOrder(ctx, "missing")
				Expect(err).To(MatchError(core.ErrOrderNotFound))
			})
		})
	})

	Describe("UpdateOrder", func() {
		var (
			msg   core.OrderUpdateMessage
			order core.OrderRecord
			err   error
		)

		BeforeEach(func() {
			msg = core.OrderUpdateMessage{
				UserWallet: "0xSELLER",
				Status:     "shipped",
			}

			fakeRepo.GetOrderByIDReturns(repository.Order{
				ID:     "order-1",
				Buyer:  "0xbuyer",
				Seller: "0xseller",
				Status: "confirmed",
			}, nil)
			fakeRepo.UpdateOrderStub = func(_ context.Context, id string, updates map[string]any) (repository.Order, error) {
				return repository.Order{ID: id, Status: updates["status"].(string)}, nil
			}
		})

		JustBeforeEach(func() {
			order, err = reconciler.UpdateOrder(ctx, "order-1", msg)
		})

		When("the seller updates the status", func() {
			It("applies the change", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(order.Status).To(Equal("shipped"))

				Expect(fakeRepo.UpdateOrderCallCount()).To(Equal(1))
				_, _, updates := fakeRepo.UpdateOrderArgsForCall(0)
				Expect(updates["status"]).To(Equal("shipped"))
			})
		})

		When("tracking info is supplied", func() {
			BeforeEach(func() {
				msg.TrackingInfo = "DHL 1234"
			})

			It("persists it alongside the status", func() {
				_, _, updates := fakeRepo.UpdateOrderArgsForCall(0)
				Expect(updates["tracking_info"]).To(Equal("DHL 1234"))
			})
		})

		When("a stranger attempts the update", func() {
			BeforeEach(func() {
				msg.UserWallet = "0xsomeoneelse"
			})

			It("is rejected", func() {
				Expect(err).To(MatchError(core.ErrNotOrderParty))
				Expect(fakeRepo.UpdateOrderCallCount()).To(Equal(0))
			})
		})

		When("the status is not part of the order lifecycle", func() {
			BeforeEach(func() {
				msg.Status = "teleported"
			})

			It("is rejected", func() {
				Expect(err).To(MatchError(core.ErrInvalidOrderStatus))
				Expect(fakeRepo.GetOrderByIDCallCount()).To(Equal(0))
			})
		})

		When("the order does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetOrderByIDReturns(repository.Order{}, repository.ErrOrderNotFound)
			})

			It("returns not found", func() {
				Expect(err).To(MatchError(core.ErrOrderNotFound))
			})
		})
	})

	Describe("ListOrders", func() {
		BeforeEach(func() {
			fakeRepo.ListOrdersReturns([]repository.Order{{ID: "order-1"}}, 1, nil)
		})

		It("lowercases wallets and clamps the page size", func() {
			records, total, err := reconciler.ListOrders(ctx, core.OrderFilter{Buyer: "0xBUYER", Limit: 500})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(total).To(Equal(int64(1)))

			_, argFilter := fakeRepo.ListOrdersArgsForCall(0)
			Expect(argFilter.Buyer).To(Equal("0xbuyer"))
			Expect(argFilter.Limit).To(Equal(100))
		})
	})

	Describe("ListTips", func() {
		BeforeEach(func() {
			fakeRepo.ListTipsReturns([]repository.Tip{
				{ID: "tip-1", Amount: "100"},
				{ID: "tip-2", Amount: "250"},
			}, 2, nil)
			fakeRepo.TipVolumeReturns("350", nil)
		})

		It("returns the tips together with their volume", func() {
			records, total, volume, err := reconciler.ListTips(ctx, core.TipFilter{ContentID: "content-1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(total).To(Equal(int64(2)))
			Expect(volume).To(Equal("350"))

			_, argFilter := fakeRepo.ListTipsArgsForCall(0)
			Expect(argFilter.ContentID).To(Equal("content-1"))
		})

		When("the volume query fails", func() {
			BeforeEach(func() {
				fakeRepo.TipVolumeReturns("", fakeErr)
			})

			It("returns the error", func() {
				_, _, _, err := reconciler.ListTips(ctx, core.TipFilter{})
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Stats", func() {
		BeforeEach(func() {
			fakeRepo.StatsReturns(repository.PlatformStats{
				Users:       10,
				Orders:      4,
				Tips:        7,
				OrderVolume: "4000",
				TipVolume:   "350",
			}, nil)
		})

		It("returns the platform totals", func() {
			stats, err := reconciler.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Users).To(Equal(int64(10)))
			Expect(stats.OrderVolume).To(Equal("4000"))
			Expect(stats.TipVolume).To(Equal("350"))
		})
	})
})
