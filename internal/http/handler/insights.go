package handler

import (
	"net/http"

	"basepay/internal/core"

	"go.uber.org/zap"
)

type InsightsHandler struct {
	logs     *zap.SugaredLogger
	insights InsightsService
}

func NewInsightsHandler(logger *zap.SugaredLogger, insightsService InsightsService) *InsightsHandler {
	return &InsightsHandler{
		logs:     logger,
		insights: insightsService,
	}
}

func (h *InsightsHandler) HandleListTips(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	filter := core.TipFilter{
		From:      r.URL.Query().Get("from"),
		To:        r.URL.Query().Get("to"),
		ContentID: r.URL.Query().Get("contentId"),
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "skip", 0),
	}

	records, total, volume, err := h.insights.ListTips(r.Context(), filter)
	if err != nil {
		code := statusFromError(err)
		respond(h.logs, w, Response{
			Message: "Could not retrieve tips",
			Error:   errorDetail(err, code),
		}, code, requestId)
		h.logs.Errorw("failed to list tips",
			"error", err,
			"handler", ListTips,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"tips":    records,
		"total":   total,
		"hasMore": int64(filter.Offset+len(records)) < total,
		"stats": map[string]any{
			"totalAmount": volume,
			"count":       total,
		},
	}

	respond(h.logs, w, Response{Data: resp}, http.StatusOK, requestId)
}

func (h *InsightsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	stats, err := h.insights.Stats(r.Context())
	if err != nil {
		code := statusFromError(err)
		respond(h.logs, w, Response{
			Message: "Could not retrieve statistics",
			Error:   errorDetail(err, code),
		}, code, requestId)
		h.logs.Errorw("failed to get platform stats",
			"error", err,
			"handler", GetStats,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: stats}, http.StatusOK, requestId)
}

func (h *InsightsHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respond(h.logs, w, Response{Message: "ok"}, http.StatusOK, requestID(r))
}
