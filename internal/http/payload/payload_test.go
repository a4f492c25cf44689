package payload_test

import (
	"net/http/httptest"
	"strings"

	"basepay/internal/core"
	"basepay/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var (
		validator payload.DecodeValidator
		txHash    string
	)

	BeforeEach(func() {
		validator = payload.DecodeValidator{}
		txHash = "0x" + strings.Repeat("ab", 32)
	})

	Describe("SubmitTransactionRequest", func() {
		var req payload.SubmitTransactionRequest

		BeforeEach(func() {
			req = payload.SubmitTransactionRequest{}
		})

		When("the payload is complete", func() {
			It("decodes and validates", func() {
				body := `{"txHash":"` + txHash + `","type":"tip","from":"0xfan","to":"0xcreator","amount":"100"}`
				r := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))

				Expect(validator.DecodeJSONPayload(r, &req)).To(Succeed())

				msg := req.ToMessage()
				Expect(msg.Type).To(Equal(core.TypeTip))
				Expect(msg.From).To(Equal("0xfan"))
			})
		})

		When("the hash is malformed", func() {
			It("fails validation", func() {
				body := `{"txHash":"0x123","type":"tip","from":"0xfan"}`
				r := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))

				err := validator.DecodeJSONPayload(r, &req)
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
				Expect(err.Error()).To(ContainSubstring("txHash"))
			})
		})

		When("the type is not recognised", func() {
			It("fails validation", func() {
				body := `{"txHash":"` + txHash + `","type":"airdrop","from":"0xfan"}`
				r := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))

				Expect(validator.DecodeJSONPayload(r, &req)).To(MatchError(ContainSubstring("validating payload")))
			})
		})

		When("the payload carries unknown fields", func() {
			It("fails decoding", func() {
				body := `{"txHash":"` + txHash + `","type":"tip","from":"0xfan","bogus":true}`
				r := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(body))

				Expect(validator.DecodeJSONPayload(r, &req)).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})
	})

	Describe("StatusUpdateRequest", func() {
		var req payload.StatusUpdateRequest

		BeforeEach(func() {
			req = payload.StatusUpdateRequest{}
		})

		It("carries the side-effect payloads through to the message", func() {
			body := `{"status":"confirmed","blockNumber":1234,"tipData":{"contentId":"content-1","to":"0xcreator","amount":"100"}}`
			r := httptest.NewRequest("PATCH", "/api/transactions/"+txHash, strings.NewReader(body))

			Expect(validator.DecodeJSONPayload(r, &req)).To(Succeed())

			msg := req.ToMessage()
			Expect(msg.Status).To(Equal(core.StatusConfirmed))
			Expect(msg.BlockNumber).To(Equal(uint64(1234)))
			Expect(msg.OrderData).To(BeNil())
			Expect(msg.TipData).NotTo(BeNil())
			Expect(msg.TipData.ContentID).To(Equal("content-1"))
		})

		When("the status is not part of the lifecycle", func() {
			It("fails validation", func() {
				body := `{"status":"settled"}`
				r := httptest.NewRequest("PATCH", "/api/transactions/"+txHash, strings.NewReader(body))

				Expect(validator.DecodeJSONPayload(r, &req)).To(MatchError(ContainSubstring("validating payload")))
			})
		})
	})

	Describe("OrderUpdateRequest", func() {
		It("accepts lifecycle statuses and passes the caller wallet through", func() {
			var req payload.OrderUpdateRequest
			body := `{"status":"shipped","trackingInfo":"DHL 1234","userWallet":"0xseller"}`
			r := httptest.NewRequest("PATCH", "/api/orders/order-1", strings.NewReader(body))

			Expect(validator.DecodeJSONPayload(r, &req)).To(Succeed())

			msg := req.ToMessage()
			Expect(msg.Status).To(Equal("shipped"))
			Expect(msg.UserWallet).To(Equal("0xseller"))
		})

		When("the status is unknown", func() {
			It("fails validation", func() {
				var req payload.OrderUpdateRequest
				body := `{"status":"teleported"}`
				r := httptest.NewRequest("PATCH", "/api/orders/order-1", strings.NewReader(body))

				Expect(validator.DecodeJSONPayload(r, &req)).To(MatchError(ContainSubstring("validating payload")))
			})
		})
	})
})
