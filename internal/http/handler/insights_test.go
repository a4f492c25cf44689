package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"basepay/internal/core"
	"basepay/internal/http/handler"
	"basepay/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("InsightsHandler", func() {
	var (
		ih          *handler.InsightsHandler
		fakeService *fake.InsightsService
		w           *httptest.ResponseRecorder
		req         *http.Request
		fakeErr     error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.InsightsService)
		w = httptest.NewRecorder()
		ih = handler.NewInsightsHandler(zap.NewNop().Sugar(), fakeService)
	})

	Describe("HandleListTips", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/tips?contentId=content-1", nil)

			fakeService.ListTipsReturns([]core.TipRecord{
				{ID: "tip-1", Amount: "100"},
				{ID: "tip-2", Amount: "250"},
			}, 2, "350", nil)
		})

		JustBeforeEach(func() {
			ih.HandleListTips(w, req)
		})

		It("should return tips with their aggregate stats", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, argFilter := fakeService.ListTipsArgsForCall(0)
			Expect(argFilter.ContentID).To(Equal("content-1"))

			var resp struct {
				Data struct {
					Tips  []core.TipRecord `json:"tips"`
					Total int64            `json:"total"`
					Stats struct {
						TotalAmount string `json:"totalAmount"`
						Count       int64  `json:"count"`
					} `json:"stats"`
				} `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Data.Tips).To(HaveLen(2))
			Expect(resp.Data.Stats.TotalAmount).To(Equal("350"))
			Expect(resp.Data.Stats.Count).To(Equal(int64(2)))
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeService.ListTipsReturns(nil, 0, "", fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetStats", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/stats", nil)

			fakeService.StatsReturns(core.PlatformStats{
				Users:       10,
				Orders:      4,
				TipVolume:   "350",
				OrderVolume: "4000",
			}, nil)
		})

		JustBeforeEach(func() {
			ih.HandleGetStats(w, req)
		})

		It("should return the platform totals", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Data core.PlatformStats `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Data.Users).To(Equal(int64(10)))
			Expect(resp.Data.OrderVolume).To(Equal("4000"))
		})
	})

	Describe("HandleHealth", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/health", nil)
		})

		It("should report ok", func() {
			ih.HandleHealth(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("ok"))
		})
	})
})
