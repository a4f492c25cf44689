package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"basepay/internal/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrOrderNotFound error = errors.New("order not found")

type TransactionFilter struct {
	From   string
	Type   string
	Status string
	Limit  int
	Offset int
}

type OrderFilter struct {
	Buyer  string
	Seller string
	Status string
	Limit  int
	Offset int
}

type TipFilter struct {
	From      string
	To        string
	ContentID string
	Limit     int
	Offset    int
}

type PlatformStats struct {
	Users       int64
	Products    int64
	Content     int64
	Orders      int64
	Tips        int64
	OrderVolume string
	TipVolume   string
}

type MarketRepository struct {
	db Storage
}

func NewMarketRepository(db Storage) *MarketRepository {
	return &MarketRepository{
		db: db,
	}
}

func (r *MarketRepository) Migrate() error {
	err := r.db.MigrateTable(
		&Transaction{},
		&Order{},
		&Tip{},
		&User{},
		&Product{},
		&Content{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateTransaction inserts a pending transaction record. When a record with
// the same hash already exists it is returned unchanged and the second return
// value is true; duplicate submissions are absorbed, not rejected.
func (r *MarketRepository) CreateTransaction(ctx context.Context, tx Transaction) (Transaction, bool, error) {
	var existing Transaction
	err := r.db.GetOneBy(ctx, "tx_hash", tx.TxHash, &existing)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return Transaction{}, false, fmt.Errorf("lookup transaction: %w", err)
	}

	now := time.Now().UTC()
	tx.Status = "pending"
	tx.CreatedAt = now
	tx.UpdatedAt = now

	records := []Transaction{tx}
	if err := r.db.SaveToTable(ctx, &records); err != nil {
		return Transaction{}, false, fmt.Errorf("save transaction: %w", err)
	}

	return records[0], false, nil
}

func (r *MarketRepository) GetTransactionByHash(ctx context.Context, txHash string) (Transaction, error) {
	var tx Transaction
	err := r.db.GetOneBy(ctx, "tx_hash", txHash, &tx)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by hash: %w", err)
	}

	return tx, nil
}

// UpdateTransaction merges the given fields into the record and stamps
// updated_at, returning the record as persisted.
func (r *MarketRepository) UpdateTransaction(ctx context.Context, txHash string, updates map[string]any) (Transaction, error) {
	updates["updated_at"] = time.Now().UTC()

	err := r.db.UpdateOneBy(ctx, "tx_hash", txHash, &Transaction{}, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("update transaction: %w", err)
	}

	return r.GetTransactionByHash(ctx, txHash)
}

func (r *MarketRepository) ListTransactions(ctx context.Context, filter TransactionFilter) ([]Transaction, int64, error) {
	conds := map[string]any{}
	if filter.From != "" {
		conds["from_wallet"] = filter.From
	}
	if filter.Type != "" {
		conds["type"] = filter.Type
	}
	if filter.Status != "" {
		conds["status"] = filter.Status
	}

	q := db.Query{
		Conds:   conds,
		OrderBy: "created_at DESC",
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}

	transactions := []Transaction{}
	if err := r.db.Find(ctx, &transactions, q); err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}

	total, err := r.db.Count(ctx, &Transaction{}, db.Query{Conds: conds})
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	return transactions, total, nil
}

func (r *MarketRepository) CreateOrder(ctx context.Context, order Order) (Order, error) {
	order.ID = uuid.NewString()
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	records := []Order{order}
	if err := r.db.SaveToTable(ctx, &records); err != nil {
		return Order{}, fmt.Errorf("save order: %w", err)
	}

	return records[0], nil
}

func (r *MarketRepository) CreateTip(ctx context.Context, tip Tip) (Tip, error) {
	tip.ID = uuid.NewString()
	tip.CreatedAt = time.Now().UTC()

	records := []Tip{tip}
	if err := r.db.SaveToTable(ctx, &records); err != nil {
		return Tip{}, fmt.Errorf("save tip: %w", err)
	}

	return records[0], nil
}

// DecrementProductStock lowers the product stock by one. A missing product is
// not an error; the on-chain purchase already happened either way.
func (r *MarketRepository) DecrementProductStock(ctx context.Context, productID string) error {
	err := r.db.UpdateOneBy(ctx, "id", productID, &Product{}, map[string]any{
		"stock": gorm.Expr("stock - ?", 1),
	})
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("decrement product stock: %w", err)
	}
	return nil
}

func (r *MarketRepository) IncrementSellerSales(ctx context.Context, wallet string) error {
	err := r.db.UpdateOneBy(ctx, "wallet", wallet, &User{}, map[string]any{
		"total_sales_count": gorm.Expr("total_sales_count + ?", 1),
	})
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("increment seller sales: %w", err)
	}
	return nil
}

func (r *MarketRepository) MarkUserOnChain(ctx context.Context, wallet string, at time.Time) error {
	err := r.db.UpdateOneBy(ctx, "wallet", wallet, &User{}, map[string]any{
		"is_on_chain":            true,
		"on_chain_registered_at": at,
	})
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("mark user on chain: %w", err)
	}
	return nil
}

func (r *MarketRepository) LinkProductContract(ctx context.Context, productID string, contractID int64, at time.Time) error {
	err := r.db.UpdateOneBy(ctx, "id", productID, &Product{}, map[string]any{
		"contract_id":        contractID,
		"is_on_chain":        true,
		"on_chain_linked_at": at,
	})
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("link product contract: %w", err)
	}
	return nil
}

func (r *MarketRepository) IncrementContentTips(ctx context.Context, contentID string, at time.Time) error {
	err := r.db.UpdateOneBy(ctx, "id", contentID, &Content{}, map[string]any{
		"tips_count":  gorm.Expr("tips_count + ?", 1),
		"last_tip_at": at,
	})
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("increment content tips: %w", err)
	}
	return nil
}

func (r *MarketRepository) GetOrderByID(ctx context.Context, orderID string) (Order, error) {
	var order Order
	err := r.db.GetOneBy(ctx, "id", orderID, &order)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Order{}, ErrOrderNotFound
		}
		return Order{}, fmt.Errorf("get order by id: %w", err)
	}

	return order, nil
}

func (r *MarketRepository) UpdateOrder(ctx context.Context, orderID string, updates map[string]any) (Order, error) {
	updates["updated_at"] = time.Now().UTC()

	err := r.db.UpdateOneBy(ctx, "id", orderID, &Order{}, updates)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Order{}, ErrOrderNotFound
		}
		return Order{}, fmt.Errorf("update order: %w", err)
	}

	return r.GetOrderByID(ctx, orderID)
}

func (r *MarketRepository) ListOrders(ctx context.Context, filter OrderFilter) ([]Order, int64, error) {
	conds := map[string]any{}
	if filter.Buyer != "" {
		conds["buyer"] = filter.Buyer
	}
	if filter.Seller != "" {
		conds["seller"] = filter.Seller
	}
	if filter.Status != "" {
		conds["status"] = filter.Status
	}

	q := db.Query{
		Conds:   conds,
		OrderBy: "created_at DESC",
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}

	orders := []Order{}
	if err := r.db.Find(ctx, &orders, q); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	total, err := r.db.Count(ctx, &Order{}, db.Query{Conds: conds})
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	return orders, total, nil
}

func (r *MarketRepository) ListTips(ctx context.Context, filter TipFilter) ([]Tip, int64, error) {
	conds := tipConds(filter)

	q := db.Query{
		Conds:   conds,
		OrderBy: "created_at DESC",
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}

	tips := []Tip{}
	if err := r.db.Find(ctx, &tips, q); err != nil {
		return nil, 0, fmt.Errorf("list tips: %w", err)
	}

	total, err := r.db.Count(ctx, &Tip{}, db.Query{Conds: conds})
	if err != nil {
		return nil, 0, fmt.Errorf("count tips: %w", err)
	}

	return tips, total, nil
}

// TipVolume sums tip amounts as decimals. Amounts live in the database as
// strings because token amounts overflow float64.
func (r *MarketRepository) TipVolume(ctx context.Context, filter TipFilter) (string, error) {
	amounts := []string{}
	err := r.db.Pluck(ctx, &Tip{}, "amount", db.Query{Conds: tipConds(filter)}, &amounts)
	if err != nil {
		return "", fmt.Errorf("pluck tip amounts: %w", err)
	}

	return sumDecimalStrings(amounts)
}

func (r *MarketRepository) Stats(ctx context.Context) (PlatformStats, error) {
	stats := PlatformStats{}

	counts := []struct {
		model any
		conds map[string]any
		dest  *int64
	}{
		{&User{}, map[string]any{"is_active": true}, &stats.Users},
		{&Product{}, map[string]any{"is_active": true}, &stats.Products},
		{&Content{}, nil, &stats.Content},
		{&Order{}, nil, &stats.Orders},
		{&Tip{}, nil, &stats.Tips},
	}

	for _, c := range counts {
		n, err := r.db.Count(ctx, c.model, db.Query{Conds: c.conds})
		if err != nil {
			return PlatformStats{}, fmt.Errorf("platform stats: %w", err)
		}
		*c.dest = n
	}

	orderAmounts := []string{}
	if err := r.db.Pluck(ctx, &Order{}, "amount", db.Query{}, &orderAmounts); err != nil {
		return PlatformStats{}, fmt.Errorf("pluck order amounts: %w", err)
	}
	orderVolume, err := sumDecimalStrings(orderAmounts)
	if err != nil {
		return PlatformStats{}, err
	}
	stats.OrderVolume = orderVolume

	tipAmounts := []string{}
	if err := r.db.Pluck(ctx, &Tip{}, "amount", db.Query{}, &tipAmounts); err != nil {
		return PlatformStats{}, fmt.Errorf("pluck tip amounts: %w", err)
	}
	tipVolume, err := sumDecimalStrings(tipAmounts)
	if err != nil {
		return PlatformStats{}, err
	}
	stats.TipVolume = tipVolume

	return stats, nil
}

func tipConds(filter TipFilter) map[string]any {
	conds := map[string]any{}
	if filter.From != "" {
		conds["from_wallet"] = filter.From
	}
	if filter.To != "" {
		conds["to_wallet"] = filter.To
	}
	if filter.ContentID != "" {
		conds["content_id"] = filter.ContentID
	}
	return conds
}

func sumDecimalStrings(amounts []string) (string, error) {
	total := decimal.Zero
	for _, raw := range amounts {
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return "", fmt.Errorf("parse amount %q: %w", raw, err)
		}
		total = total.Add(d)
	}
	return total.String(), nil
}
