package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"basepay/internal/repository"
)

// Order, tip and statistics operations adjacent to the reconciliation flow.
// Orders have their own lifecycle once created; the originating transaction
// is never touched again.

func (r *Reconciler) GetOrder(ctx context.Context, orderID string) (OrderRecord, error) {
	order, err := r.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return OrderRecord{}, ErrOrderNotFound
		}
		return OrderRecord{}, fmt.Errorf("get order: %w", err)
	}

	return toOrderRecord(order), nil
}

// UpdateOrder applies a buyer- or seller-initiated change. Anyone else is
// rejected with ErrNotOrderParty.
func (r *Reconciler) UpdateOrder(ctx context.Context, orderID string, msg OrderUpdateMessage) (OrderRecord, error) {
	if msg.Status != "" {
		if _, ok := orderStatuses[msg.Status]; !ok {
			return OrderRecord{}, fmt.Errorf("%w: %q", ErrInvalidOrderStatus, msg.Status)
		}
	}

	existing, err := r.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return OrderRecord{}, ErrOrderNotFound
		}
		return OrderRecord{}, fmt.Errorf("get order: %w", err)
	}

	wallet := strings.ToLower(msg.UserWallet)
	if wallet != "" && wallet != existing.Buyer && wallet != existing.Seller {
		return OrderRecord{}, ErrNotOrderParty
	}

	updates := map[string]any{}
	if msg.Status != "" {
		updates["status"] = msg.Status
	}
	if msg.TrackingInfo != "" {
		updates["tracking_info"] = msg.TrackingInfo
	}

	updated, err := r.repo.UpdateOrder(ctx, orderID, updates)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return OrderRecord{}, ErrOrderNotFound
		}
		return OrderRecord{}, fmt.Errorf("update order: %w", err)
	}

	r.logs.Infow("order updated", "orderId", orderID, "status", updated.Status)

	return toOrderRecord(updated), nil
}

func (r *Reconciler) ListOrders(ctx context.Context, filter OrderFilter) ([]OrderRecord, int64, error) {
	repoFilter := repository.OrderFilter{
		Buyer:  strings.ToLower(filter.Buyer),
		Seller: strings.ToLower(filter.Seller),
		Status: filter.Status,
		Limit:  clampPageSize(filter.Limit),
		Offset: filter.Offset,
	}

	orders, total, err := r.repo.ListOrders(ctx, repoFilter)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	records := make([]OrderRecord, len(orders))
	for i, order := range orders {
		records[i] = toOrderRecord(order)
	}

	return records, total, nil
}

// ListTips returns the matching tips together with their summed volume.
func (r *Reconciler) ListTips(ctx context.Context, filter TipFilter) ([]TipRecord, int64, string, error) {
	repoFilter := repository.TipFilter{
		From:      strings.ToLower(filter.From),
		To:        strings.ToLower(filter.To),
		ContentID: filter.ContentID,
		Limit:     clampPageSize(filter.Limit),
		Offset:    filter.Offset,
	}

	tips, total, err := r.repo.ListTips(ctx, repoFilter)
	if err != nil {
		return nil, 0, "", fmt.Errorf("list tips: %w", err)
	}

	volume, err := r.repo.TipVolume(ctx, repoFilter)
	if err != nil {
		return nil, 0, "", fmt.Errorf("tip volume: %w", err)
	}

	records := make([]TipRecord, len(tips))
	for i, tip := range tips {
		records[i] = TipRecord{
			ID:           tip.ID,
			ContentID:    tip.ContentID,
			From:         tip.From,
			To:           tip.To,
			Amount:       tip.Amount,
			PaymentToken: tip.PaymentToken,
			TxHash:       tip.TxHash,
			CreatedAt:    tip.CreatedAt,
		}
	}

	return records, total, volume, nil
}

func (r *Reconciler) Stats(ctx context.Context) (PlatformStats, error) {
	stats, err := r.repo.Stats(ctx)
	if err != nil {
		return PlatformStats{}, fmt.Errorf("platform stats: %w", err)
	}

	return PlatformStats{
		Users:       stats.Users,
		Products:    stats.Products,
		Content:     stats.Content,
		Orders:      stats.Orders,
		Tips:        stats.Tips,
		OrderVolume: stats.OrderVolume,
		TipVolume:   stats.TipVolume,
	}, nil
}

func toOrderRecord(order repository.Order) OrderRecord {
	return OrderRecord{
		ID:              order.ID,
		ProductID:       order.ProductID,
		Buyer:           order.Buyer,
		Seller:          order.Seller,
		Amount:          order.Amount,
		Fee:             order.Fee,
		PaymentToken:    order.PaymentToken,
		Status:          order.Status,
		DeliveryType:    order.DeliveryType,
		ShippingAddress: order.ShippingAddress,
		TrackingInfo:    order.TrackingInfo,
		TxHash:          order.TxHash,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
