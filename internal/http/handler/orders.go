package handler

import (
	"fmt"
	"net/http"

	"basepay/internal/core"
	"basepay/internal/http/payload"

	"go.uber.org/zap"
)

type OrderHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	orders           OrderService
}

func NewOrderHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, orderService OrderService) *OrderHandler {
	return &OrderHandler{
		logs:             logger,
		requestValidator: requestValidator,
		orders:           orderService,
	}
}

func (h *OrderHandler) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	orderId := r.PathValue("id")

	record, err := h.orders.GetOrder(r.Context(), orderId)
	if err != nil {
		code := statusFromError(err)
		respond(h.logs, w, Response{
			Message: "Could not retrieve order",
			Error:   errorDetail(err, code),
		}, code, requestId)
		h.logs.Errorw("failed to get order",
			"error", err,
			"orderId", orderId,
			"handler", GetOrder,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: record}, http.StatusOK, requestId)
}

func (h *OrderHandler) HandleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	orderId := r.PathValue("id")

	var req payload.OrderUpdateRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not update order",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateOrder,
			"request_id", requestId)
		return
	}

	record, err := h.orders.UpdateOrder(r.Context(), orderId, req.ToMessage())
	if err != nil {
		code := statusFromError(err)
		respond(h.logs, w, Response{
			Message: "Could not update order",
			Error:   errorDetail(err, code),
		}, code, requestId)
		h.logs.Errorw("failed to update order",
			"error", err,
			"orderId", orderId,
			"handler", UpdateOrder,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: record}, http.StatusOK, requestId)
}

func (h *OrderHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	filter := core.OrderFilter{
		Buyer:  r.URL.Query().Get("buyer"),
		Seller: r.URL.Query().Get("seller"),
		Status: r.URL.Query().Get("status"),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "skip", 0),
	}

	records, total, err := h.orders.ListOrders(r.Context(), filter)
	if err != nil {
		code := statusFromError(err)
		respond(h.logs, w, Response{
			Message: "Could not retrieve orders",
			Error:   errorDetail(err, code),
		}, code, requestId)
		h.logs.Errorw("failed to list orders",
			"error", err,
			"handler", ListOrders,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"orders":  records,
		"total":   total,
		"hasMore": int64(filter.Offset+len(records)) < total,
	}

	respond(h.logs, w, Response{Data: resp}, http.StatusOK, requestId)
}
