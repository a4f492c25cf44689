package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"basepay/internal/core"
	"basepay/internal/http/handler"
	"basepay/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("OrderHandler", func() {
	var (
		oh            *handler.OrderHandler
		fakeService   *fake.OrderService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.OrderService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		oh = handler.NewOrderHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleGetOrder", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/orders/order-1", nil)
			req.SetPathValue("id", "order-1")

			fakeService.GetOrderReturns(core.OrderRecord{ID: "order-1", Status: "confirmed"}, nil)
		})

		JustBeforeEach(func() {
			oh.HandleGetOrder(w, req)
		})

		When("the order exists", func() {
			It("should return it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, argId := fakeService.GetOrderArgsForCall(0)
				Expect(argId).To(Equal("order-1"))
			})
		})

		When("the order does not exist", func() {
			BeforeEach(func() {
				fakeService.GetOrderReturns(core.OrderRecord{}, core.ErrOrderNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleUpdateOrder", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"status":"shipped","trackingInfo":"DHL 1234","userWallet":"0xseller"}`)
			req = httptest.NewRequest("PATCH", "/api/orders/order-1", body)
			req.SetPathValue("id", "order-1")

			fakeService.UpdateOrderReturns(core.OrderRecord{ID: "order-1", Status: "shipped"}, nil)
		})

		JustBeforeEach(func() {
			oh.HandleUpdateOrder(w, req)
		})

		When("the seller ships the order", func() {
			It("should apply the update", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.UpdateOrderCallCount()).To(Equal(1))
				_, argId, argMsg := fakeService.UpdateOrderArgsForCall(0)
				Expect(argId).To(Equal("order-1"))
				Expect(argMsg.Status).To(Equal("shipped"))
				Expect(argMsg.TrackingInfo).To(Equal("DHL 1234"))
				Expect(argMsg.UserWallet).To(Equal("0xseller"))
			})
		})

		When("the caller is not a party to the order", func() {
			BeforeEach(func() {
				fakeService.UpdateOrderReturns(core.OrderRecord{}, core.ErrNotOrderParty)
			})

			It("should return status 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdateOrderCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleListOrders", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/orders?buyer=0xbuyer&status=confirmed", nil)
			fakeService.ListOrdersReturns([]core.OrderRecord{{ID: "order-1"}}, 1, nil)
		})

		JustBeforeEach(func() {
			oh.HandleListOrders(w, req)
		})

		It("should pass the filters through", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, argFilter := fakeService.ListOrdersArgsForCall(0)
			Expect(argFilter.Buyer).To(Equal("0xbuyer"))
			Expect(argFilter.Status).To(Equal("confirmed"))

			var resp struct {
				Data struct {
					Orders  []core.OrderRecord `json:"orders"`
					HasMore bool               `json:"hasMore"`
				} `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Data.Orders).To(HaveLen(1))
			Expect(resp.Data.HasMore).To(BeFalse())
		})
	})
})
