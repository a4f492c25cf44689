package handler

import (
	"fmt"
	"net/http"

	"basepay/internal/core"
	"basepay/internal/http/payload"

	"go.uber.org/zap"
)

type TransactionHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	transactions     TransactionService
}

func NewTransactionHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, transactionService TransactionService) *TransactionHandler {
	return &TransactionHandler{
		logs:             logger,
		requestValidator: requestValidator,
		transactions:     transactionService,
	}
}

func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.SubmitTransactionRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not record transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateTransaction,
			"request_id", requestId)
		return
	}

	record, err := h.transactions.CreateTransaction(r.Context(), req.ToMessage())
	if err != nil {
		code := statusFromError(err)
		respond(h.logs, w, Response{
			Message: "Could not record transaction",
			Error:   errorDetail(err, code),
		}, code, requestId)
		h.logs.Errorw("failed to create transaction",
			"error", err,
			"handler", CreateTransaction,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: record}, http.StatusOK, requestId)
}

func (h *TransactionHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	txHash := r.PathValue("txHash")

	record, err := h.transactions.GetTransaction(r.Context(), txHash)
	if err != nil {
		code := statusFromError(err)
		respond(h.logs, w, Response{
			Message: "Could not retrieve transaction",
			Error:   errorDetail(err, code),
		}, code, requestId)
		h.logs.Errorw("failed to get transaction",
			"error", err,
			"txHash", txHash,
			"handler", GetTransaction,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: record}, http.StatusOK, requestId)
}

func (h *TransactionHandler) HandleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	txHash := r.PathValue("txHash")

	var req payload.StatusUpdateRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not update transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateTransaction,
			"request_id", requestId)
		return
	}

	h.logs.Infow("status transition requested",
		"txHash", txHash,
		"status", req.Status,
		"handler", UpdateTransaction,
		"request_id", requestId)

	record, err := h.transactions.ApplyStatus(r.Context(), txHash, req.ToMessage())
	if err != nil {
		code := statusFromError(err)
		respond(h.logs, w, Response{
			Message: "Could not update transaction",
			Error:   errorDetail(err, code),
		}, code, requestId)
		h.logs.Errorw("failed to apply transaction status",
			"error", err,
			"txHash", txHash,
			"handler", UpdateTransaction,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{Data: record}, http.StatusOK, requestId)
}

func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	filter := core.TransactionFilter{
		From:   r.URL.Query().Get("from"),
		Type:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "skip", 0),
	}

	records, total, err := h.transactions.ListTransactions(r.Context(), filter)
	if err != nil {
		code := statusFromError(err)
		respond(h.logs, w, Response{
			Message: "Could not retrieve transactions",
			Error:   errorDetail(err, code),
		}, code, requestId)
		h.logs.Errorw("failed to list transactions",
			"error", err,
			"handler", ListTransactions,
			"request_id", requestId)
		return
	}

	resp := map[string]any{
		"transactions": records,
		"total":        total,
		"hasMore":      int64(filter.Offset+len(records)) < total,
	}

	respond(h.logs, w, Response{Data: resp}, http.StatusOK, requestId)
}
