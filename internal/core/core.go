package core

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"basepay/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidTxHash error = errors.New("invalid transaction hash")
var ErrInvalidType error = errors.New("invalid transaction type")
var ErrInvalidStatus error = errors.New("invalid transaction status")
var ErrInvalidTransition error = errors.New("invalid status transition")
var ErrInvalidAmount error = errors.New("invalid amount")
var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrOrderNotFound error = errors.New("order not found")
var ErrInvalidOrderStatus error = errors.New("invalid order status")
var ErrNotOrderParty error = errors.New("wallet is neither buyer nor seller of the order")
var ErrMissingPayload error = errors.New("missing side-effect payload")

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

var orderStatuses = map[string]struct{}{
	"pending": {}, "confirmed": {}, "ready": {}, "shipped": {},
	"delivered": {}, "disputed": {}, "cancelled": {},
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Reconciler tracks blockchain transactions through their lifecycle and
// applies the derived writes (orders, tips, user and product flags) once a
// transaction confirms.
type Reconciler struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewReconciler(logger *zap.SugaredLogger, repo Repository) *Reconciler {
	return &Reconciler{
		logs: logger,
		repo: repo,
	}
}

// CreateTransaction records a wallet-submitted transaction as pending. A
// repeated hash returns the stored record unchanged.
func (r *Reconciler) CreateTransaction(ctx context.Context, msg SubmitMessage) (TransactionRecord, error) {
	if !txHashPattern.MatchString(msg.TxHash) {
		return TransactionRecord{}, ErrInvalidTxHash
	}

	switch msg.Type {
	case TypePurchase, TypeTip, TypeRegister, TypeCreateProduct:
	default:
		return TransactionRecord{}, fmt.Errorf("%w: %q", ErrInvalidType, msg.Type)
	}

	if msg.From == "" {
		return TransactionRecord{}, fmt.Errorf("%w: from address is required", ErrInvalidType)
	}

	for _, amount := range []string{msg.Amount, msg.Fee} {
		if amount == "" {
			continue
		}
		if _, err := decimal.NewFromString(amount); err != nil {
			return TransactionRecord{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
		}
	}

	paymentToken := strings.ToLower(msg.PaymentToken)
	if paymentToken == "" {
		paymentToken = ZeroAddress
	}

	tx := repository.Transaction{
		TxHash:            msg.TxHash,
		Type:              string(msg.Type),
		From:              strings.ToLower(msg.From),
		To:                strings.ToLower(msg.To),
		Amount:            msg.Amount,
		Fee:               msg.Fee,
		PaymentToken:      paymentToken,
		ProductID:         msg.ProductID,
		ContentID:         msg.ContentID,
		ContractProductID: msg.ContractProductID,
	}

	saved, existed, err := r.repo.CreateTransaction(ctx, tx)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("create transaction: %w", err)
	}

	if existed {
		r.logs.Infow("duplicate transaction submission absorbed", "txHash", msg.TxHash)
	} else {
		r.logs.Infow("transaction recorded", "txHash", msg.TxHash, "type", msg.Type)
	}

	return toRecord(saved), nil
}

func (r *Reconciler) GetTransaction(ctx context.Context, txHash string) (TransactionRecord, error) {
	if !txHashPattern.MatchString(txHash) {
		return TransactionRecord{}, ErrInvalidTxHash
	}

	tx, err := r.repo.GetTransactionByHash(ctx, txHash)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return TransactionRecord{}, ErrTransactionNotFound
		}
		return TransactionRecord{}, fmt.Errorf("get transaction: %w", err)
	}

	return toRecord(tx), nil
}

func (r *Reconciler) ListTransactions(ctx context.Context, filter TransactionFilter) ([]TransactionRecord, int64, error) {
	repoFilter := repository.TransactionFilter{
		From:   strings.ToLower(filter.From),
		Type:   filter.Type,
		Status: filter.Status,
		Limit:  clampPageSize(filter.Limit),
		Offset: filter.Offset,
	}

	transactions, total, err := r.repo.ListTransactions(ctx, repoFilter)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}

	records := make([]TransactionRecord, len(transactions))
	for i, tx := range transactions {
		records[i] = toRecord(tx)
	}

	return records, total, nil
}

// ApplyStatus moves a transaction through its lifecycle. Confirmation runs
// the type-specific side effects and, when they all succeed, elevates the
// record straight to processed; confirmed never persists as an end state on
// the happy path. Repeating a confirmation of an already processed
// transaction is a no-op returning the stored record.
func (r *Reconciler) ApplyStatus(ctx context.Context, txHash string, msg StatusMessage) (TransactionRecord, error) {
	if !txHashPattern.MatchString(txHash) {
		return TransactionRecord{}, ErrInvalidTxHash
	}

	switch msg.Status {
	case StatusPending, StatusConfirmed, StatusProcessed, StatusFailed:
	default:
		return TransactionRecord{}, fmt.Errorf("%w: %q", ErrInvalidStatus, msg.Status)
	}

	existing, err := r.repo.GetTransactionByHash(ctx, txHash)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return TransactionRecord{}, ErrTransactionNotFound
		}
		return TransactionRecord{}, fmt.Errorf("get transaction: %w", err)
	}

	switch msg.Status {
	case StatusPending:
		// nothing to transition to
		return toRecord(existing), nil
	case StatusConfirmed, StatusProcessed:
		return r.confirm(ctx, existing, msg)
	default:
		return r.fail(ctx, existing, msg)
	}
}

func (r *Reconciler) confirm(ctx context.Context, existing repository.Transaction, msg StatusMessage) (TransactionRecord, error) {
	if existing.Status == string(StatusProcessed) {
		r.logs.Infow("transaction already processed, confirmation ignored", "txHash", existing.TxHash)
		return toRecord(existing), nil
	}
	if existing.Status == string(StatusFailed) {
		return TransactionRecord{}, fmt.Errorf("%w: %s -> confirmed", ErrInvalidTransition, existing.Status)
	}

	now := time.Now().UTC()
	updates := map[string]any{
		"status":       string(StatusConfirmed),
		"confirmed_at": now,
	}
	if msg.BlockNumber != 0 {
		updates["block_number"] = msg.BlockNumber
	}
	if msg.BlockHash != "" {
		updates["block_hash"] = msg.BlockHash
	}
	if msg.GasUsed != "" {
		updates["gas_used"] = msg.GasUsed
	}

	// Dispatch on the stored type, never the caller's payload: a tip
	// transaction cannot be redirected into purchase side effects.
	effectErr := r.applySideEffects(ctx, existing, msg, updates, now)
	if effectErr == nil {
		updates["status"] = string(StatusProcessed)
		updates["processed_at"] = now
	}

	updated, err := r.repo.UpdateTransaction(ctx, existing.TxHash, updates)
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("update transaction: %w", err)
	}

	if effectErr != nil {
		// the record stays confirmed; a retried confirmation picks up
		// where this one stopped
		r.logs.Errorw("side effects incomplete, transaction left confirmed",
			"txHash", existing.TxHash,
			"type", existing.Type,
			"error", effectErr)
		return toRecord(updated), fmt.Errorf("apply side effects: %w", effectErr)
	}

	r.logs.Infow("transaction processed",
		"txHash", existing.TxHash,
		"type", existing.Type,
		"blockNumber", msg.BlockNumber)

	return toRecord(updated), nil
}

func (r *Reconciler) fail(ctx context.Context, existing repository.Transaction, msg StatusMessage) (TransactionRecord, error) {
	if existing.Status == string(StatusFailed) {
		return toRecord(existing), nil
	}
	if existing.Status == string(StatusProcessed) {
		return TransactionRecord{}, fmt.Errorf("%w: %s -> failed", ErrInvalidTransition, existing.Status)
	}

	reason := msg.Error
	if reason == "" {
		reason = "transaction failed"
	}

	updated, err := r.repo.UpdateTransaction(ctx, existing.TxHash, map[string]any{
		"status": string(StatusFailed),
		"error":  reason,
	})
	if err != nil {
		return TransactionRecord{}, fmt.Errorf("update transaction: %w", err)
	}

	r.logs.Infow("transaction marked failed", "txHash", existing.TxHash, "reason", reason)

	return toRecord(updated), nil
}

func (r *Reconciler) applySideEffects(ctx context.Context, tx repository.Transaction, msg StatusMessage, updates map[string]any, now time.Time) error {
	switch TransactionType(tx.Type) {
	case TypePurchase:
		return r.processPurchase(ctx, tx, msg.OrderData, updates)
	case TypeTip:
		return r.processTip(ctx, tx, msg.TipData, updates, now)
	case TypeRegister:
		return r.repo.MarkUserOnChain(ctx, tx.From, now)
	case TypeCreateProduct:
		if tx.ProductID == "" || tx.ContractProductID == 0 {
			return nil
		}
		return r.repo.LinkProductContract(ctx, tx.ProductID, tx.ContractProductID, now)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidType, tx.Type)
	}
}

func (r *Reconciler) processPurchase(ctx context.Context, tx repository.Transaction, data *OrderData, updates map[string]any) error {
	if data == nil {
		// without the order payload there is no order to derive and the
		// record stays confirmed
		return fmt.Errorf("%w: orderData", ErrMissingPayload)
	}

	if tx.OrderID == "" {
		order := repository.Order{
			ProductID:       firstNonEmpty(tx.ProductID, data.ProductID),
			Buyer:           tx.From,
			Seller:          strings.ToLower(firstNonEmpty(tx.To, data.Seller)),
			Amount:          firstNonEmpty(tx.Amount, data.Amount),
			Fee:             firstNonEmpty(tx.Fee, data.Fee, "0"),
			PaymentToken:    tx.PaymentToken,
			Status:          "confirmed",
			DeliveryType:    firstNonEmpty(data.DeliveryType, "pickup"),
			ShippingAddress: data.ShippingAddress,
			TxHash:          tx.TxHash,
		}

		created, err := r.repo.CreateOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		tx.OrderID = created.ID
		r.logs.Infow("order created", "orderId", created.ID, "txHash", tx.TxHash)
	}
	updates["order_id"] = tx.OrderID

	if tx.ProductID != "" {
		if err := r.repo.DecrementProductStock(ctx, tx.ProductID); err != nil {
			return err
		}
	}

	if tx.To != "" {
		if err := r.repo.IncrementSellerSales(ctx, tx.To); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reconciler) processTip(ctx context.Context, tx repository.Transaction, data *TipData, updates map[string]any, now time.Time) error {
	if data == nil {
		return fmt.Errorf("%w: tipData", ErrMissingPayload)
	}

	if tx.TipID == "" {
		tip := repository.Tip{
			ContentID:    firstNonEmpty(tx.ContentID, data.ContentID),
			From:         tx.From,
			To:           strings.ToLower(firstNonEmpty(tx.To, data.To)),
			Amount:       firstNonEmpty(tx.Amount, data.Amount),
			PaymentToken: tx.PaymentToken,
			TxHash:       tx.TxHash,
		}

		created, err := r.repo.CreateTip(ctx, tip)
		if err != nil {
			return fmt.Errorf("create tip: %w", err)
		}
		tx.TipID = created.ID
		r.logs.Infow("tip recorded", "tipId", created.ID, "txHash", tx.TxHash)
	}
	updates["tip_id"] = tx.TipID

	contentID := firstNonEmpty(tx.ContentID, data.ContentID)
	if contentID != "" {
		if err := r.repo.IncrementContentTips(ctx, contentID, now); err != nil {
			return err
		}
	}

	return nil
}

// StaleCollections names the entity collections a consumer should refetch
// after a transaction of the given type is processed.
func StaleCollections(t TransactionType) []string {
	switch t {
	case TypePurchase:
		return []string{"transactions", "orders", "products", "users"}
	case TypeTip:
		return []string{"transactions", "tips", "content"}
	case TypeRegister:
		return []string{"transactions", "users"}
	case TypeCreateProduct:
		return []string{"transactions", "products"}
	default:
		return []string{"transactions"}
	}
}

func toRecord(tx repository.Transaction) TransactionRecord {
	return TransactionRecord{
		TxHash:            tx.TxHash,
		Type:              TransactionType(tx.Type),
		Status:            TransactionStatus(tx.Status),
		From:              tx.From,
		To:                tx.To,
		Amount:            tx.Amount,
		Fee:               tx.Fee,
		PaymentToken:      tx.PaymentToken,
		ProductID:         tx.ProductID,
		ContentID:         tx.ContentID,
		ContractProductID: tx.ContractProductID,
		OrderID:           tx.OrderID,
		TipID:             tx.TipID,
		BlockNumber:       tx.BlockNumber,
		BlockHash:         tx.BlockHash,
		GasUsed:           tx.GasUsed,
		Error:             tx.Error,
		CreatedAt:         tx.CreatedAt,
		UpdatedAt:         tx.UpdatedAt,
		ConfirmedAt:       tx.ConfirmedAt,
		ProcessedAt:       tx.ProcessedAt,
	}
}

func clampPageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
