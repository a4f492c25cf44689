package core

import "time"

type TransactionType string

const (
	TypePurchase      TransactionType = "purchase"
	TypeTip           TransactionType = "tip"
	TypeRegister      TransactionType = "register"
	TypeCreateProduct TransactionType = "create_product"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusProcessed TransactionStatus = "processed"
	StatusFailed    TransactionStatus = "failed"
)

// ZeroAddress is the payment token recorded for native-currency transfers.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// SubmitMessage carries a wallet-submitted transaction into the store.
type SubmitMessage struct {
	TxHash            string
	Type              TransactionType
	From              string
	To                string
	Amount            string
	Fee               string
	PaymentToken      string
	ProductID         string
	ContentID         string
	ContractProductID int64
}

// OrderData is the purchase payload assembled by the client before
// submission; it fills order fields the transaction record lacks.
type OrderData struct {
	ProductID       string
	Seller          string
	Amount          string
	Fee             string
	DeliveryType    string
	ShippingAddress string
}

// TipData is the tip payload counterpart of OrderData.
type TipData struct {
	ContentID string
	To        string
	Amount    string
}

// StatusMessage requests a status transition. OrderData and TipData are only
// consulted when the stored transaction type calls for them.
type StatusMessage struct {
	Status      TransactionStatus
	BlockNumber uint64
	BlockHash   string
	GasUsed     string
	Error       string
	OrderData   *OrderData
	TipData     *TipData
}

type TransactionRecord struct {
	TxHash            string            `json:"txHash"`
	Type              TransactionType   `json:"type"`
	Status            TransactionStatus `json:"status"`
	From              string            `json:"from"`
	To                string            `json:"to,omitempty"`
	Amount            string            `json:"amount,omitempty"`
	Fee               string            `json:"fee,omitempty"`
	PaymentToken      string            `json:"paymentToken,omitempty"`
	ProductID         string            `json:"productId,omitempty"`
	ContentID         string            `json:"contentId,omitempty"`
	ContractProductID int64             `json:"contractProductId,omitempty"`
	OrderID           string            `json:"orderId,omitempty"`
	TipID             string            `json:"tipId,omitempty"`
	BlockNumber       uint64            `json:"blockNumber,omitempty"`
	BlockHash         string            `json:"blockHash,omitempty"`
	GasUsed           string            `json:"gasUsed,omitempty"`
	Error             string            `json:"error,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	ConfirmedAt       *time.Time        `json:"confirmedAt,omitempty"`
	ProcessedAt       *time.Time        `json:"processedAt,omitempty"`
}

type OrderRecord struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId,omitempty"`
	Buyer           string    `json:"buyer"`
	Seller          string    `json:"seller"`
	Amount          string    `json:"amount"`
	Fee             string    `json:"fee"`
	PaymentToken    string    `json:"paymentToken,omitempty"`
	Status          string    `json:"status"`
	DeliveryType    string    `json:"deliveryType"`
	ShippingAddress string    `json:"shippingAddress,omitempty"`
	TrackingInfo    string    `json:"trackingInfo,omitempty"`
	TxHash          string    `json:"txHash"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type TipRecord struct {
	ID           string    `json:"id"`
	ContentID    string    `json:"contentId,omitempty"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Amount       string    `json:"amount"`
	PaymentToken string    `json:"paymentToken,omitempty"`
	TxHash       string    `json:"txHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OrderUpdateMessage mutates an order after creation. UserWallet identifies
// the caller; only the buyer or the seller may update an order.
type OrderUpdateMessage struct {
	UserWallet   string
	Status       string
	TrackingInfo string
}

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
	Users       int64  `json:"users"`
	Products    int64  `json:"products"`
	Content     int64  `json:"content"`
	Orders      int64  `json:"orders"`
	Tips        int64  `json:"tips"`
	OrderVolume string `json:"orderVolume"`
	TipVolume   string `json:"tipVolume"`
}
