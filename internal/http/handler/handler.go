package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"basepay/internal/core"
	"basepay/internal/http/handler/middleware"

	"go.uber.org/zap"
)

// Route patterns, registered on the standard mux.
var (
	CreateTransaction = "POST /api/transactions"
	ListTransactions  = "GET /api/transactions"
	GetTransaction    = "GET /api/transactions/{txHash}"
	UpdateTransaction = "PATCH /api/transactions/{txHash}"
	ListOrders        = "GET /api/orders"
	GetOrder          = "GET /api/orders/{id}"
	UpdateOrder       = "PATCH /api/orders/{id}"
	ListTips          = "GET /api/tips"
	GetStats          = "GET /api/stats"
	GetHealth         = "GET /api/health"
)

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

func respond(logs *zap.SugaredLogger, w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidTxHash),
		errors.Is(err, core.ErrInvalidType),
		errors.Is(err, core.ErrInvalidStatus),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidOrderStatus),
		errors.Is(err, core.ErrMissingPayload):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrTransactionNotFound),
		errors.Is(err, core.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrNotOrderParty):
		return http.StatusForbidden
	case errors.Is(err, core.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorDetail hides internals behind a generic message for unexpected errors.
func errorDetail(err error, code int) string {
	if code == http.StatusInternalServerError {
		return "unexpected error occurred"
	}
	return err.Error()
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
